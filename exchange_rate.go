package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// refScale is the number of digits after the decimal point kept when an
// amount is multiplied by the reference value of its currency.
const refScale = 8

// ExchangeRate represents a unidirectional conversion between two currencies.
// The rate is never stored: it is implied by the reference values of the base
// and quote currencies.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base  Currency // currency being exchanged
	quote Currency // currency being obtained in exchange for the base currency
}

// NewExchRate returns the exchange rate between the base and quote currencies.
//
// NewExchRate returns [ErrInvalidCurrency] if either currency has no
// positive reference value.
func NewExchRate(base, quote Currency) (ExchangeRate, error) {
	if !base.Reference().IsPos() {
		return ExchangeRate{}, fmt.Errorf("%w: base %q has no reference value", ErrInvalidCurrency, base.Code())
	}
	if !quote.Reference().IsPos() {
		return ExchangeRate{}, fmt.Errorf("%w: quote %q has no reference value", ErrInvalidCurrency, quote.Code())
	}
	return ExchangeRate{base: base, quote: quote}, nil
}

// ExchRate returns the exchange rate between two registered currencies.
//
// ExchRate returns [ErrUnknownCurrency] if either code is not registered.
func (r *Registry) ExchRate(base, quote string) (ExchangeRate, error) {
	b, err := r.Lookup(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency: %w", err)
	}
	q, err := r.Lookup(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency: %w", err)
	}
	return NewExchRate(b, q)
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Value returns how many units of the quote currency one unit of the base
// currency is worth, that is base reference / quote reference.
// It is informational: [ExchangeRate.Conv] does not multiply by this value.
func (r ExchangeRate) Value() (decimal.Decimal, error) {
	d, err := r.base.Reference().Quo(r.quote.Reference())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing %v/%v rate: %w", r.base, r.quote, err)
	}
	return d, nil
}

// Inv returns the exchange rate in the opposite direction.
func (r ExchangeRate) Inv() ExchangeRate {
	return ExchangeRate{base: r.quote, quote: r.base}
}

// CanConv returns true if [ExchangeRate.Conv] can be used to convert the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr().Code() == r.Base().Code() &&
		r.base.Reference().IsPos() &&
		r.quote.Reference().IsPos()
}

// Conv returns the amount converted from the base currency to the quote currency:
//
//	round(amount * base reference, 8) / quote reference
//
// The quotient is rounded to the guard scale of the quote currency.
// Each step rounds on its own, so converting along A→B→C is not guaranteed to
// match A→C to the last guard digit.
//
// Conv returns an error if the currency of the amount is not the base
// currency or if an intermediate result overflows.
func (r ExchangeRate) Conv(b Amount) (Amount, error) {
	if !r.CanConv(b) {
		return Amount{}, fmt.Errorf("converting [%v] with %v: %w", b, r, errCurrencyMismatch)
	}
	// The product keeps as many digits after the decimal point as the
	// integer part leaves room for, up to refScale.
	d, err := b.value.MulExact(r.base.Reference(), 0)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] to %v: %w", b, r.quote, err)
	}
	d = d.Round(refScale)
	d, err = d.QuoExact(r.quote.Reference(), r.quote.guardScale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] to %v: %w", b, r.quote, err)
	}
	return newAmount(b.reg, r.quote, d)
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "USD/EUR 1.176470588235294118".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	s := r.base.Code() + "/" + r.quote.Code()
	v, err := r.Value()
	if err != nil {
		return s + " ?"
	}
	return s + " " + v.String()
}
