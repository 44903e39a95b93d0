package money

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	ssdecimal "github.com/shopspring/decimal"
)

var (
	// ErrAmountOverflow is returned when a result does not fit the decimal
	// engine at the guard scale of its currency.
	ErrAmountOverflow = errors.New("amount overflow")
	// ErrFloatAmount is returned when an amount is given as a binary
	// floating-point number.
	ErrFloatAmount = errors.New("floating-point amounts are not accepted")

	errUnsupportedAmount = errors.New("unsupported amount type")
	errCurrencyMismatch  = errors.New("currency mismatch")
)

// Amount type represents a monetary amount.
// An amount keeps one guard digit beyond the scale of its currency so that
// every read (string conversion, comparison, display) rounds correctly.
// Arithmetic never mutates an amount; every operation returns a new one.
//
// Amounts are created from a [Registry] and carry a snapshot of their
// currency descriptor.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	reg   *Registry       // registry used by Convert and Display
	curr  Currency        // currency snapshot
	value decimal.Decimal // monetary value at curr.guardScale()
}

// newAmount rounds d to the guard scale of currency c and zero-pads it if needed.
func newAmount(r *Registry, c Currency, d decimal.Decimal) (Amount, error) {
	scale := c.guardScale()
	d = d.Round(scale)
	if d.Scale() < scale {
		d = d.Pad(scale)
		if d.Scale() < scale {
			return Amount{}, fmt.Errorf("padding amount: %w", ErrAmountOverflow)
		}
	}
	return Amount{reg: r, curr: c, value: d}, nil
}

// NewAmount returns an amount in the given currency.
// If curr is empty, the registry default currency is used.
// The amount can be one of:
//   - string, parsed with [decimal.Parse];
//   - [decimal.Decimal];
//   - a github.com/shopspring/decimal Decimal;
//   - int, int32 or int64.
//
// NewAmount returns an error if:
//   - the currency is not registered ([ErrUnknownCurrency]);
//   - curr is empty and no default is set ([ErrNoDefaultCurrency]);
//   - the amount is a float32 or float64 ([ErrFloatAmount]);
//   - the amount cannot be represented at the guard scale ([ErrAmountOverflow]).
func (r *Registry) NewAmount(curr string, amount any) (Amount, error) {
	c, err := r.resolve(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("resolving currency: %w", err)
	}
	d, err := toDecimal(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %T: %w", amount, err)
	}
	return newAmount(r, c, d)
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case string:
		return decimal.Parse(v)
	case decimal.Decimal:
		return v, nil
	case ssdecimal.Decimal:
		return decimal.Parse(v.String())
	case int:
		return decimal.New(int64(v), 0)
	case int32:
		return decimal.New(int64(v), 0)
	case int64:
		return decimal.New(v, 0)
	case float32, float64:
		return decimal.Decimal{}, ErrFloatAmount
	}
	return decimal.Decimal{}, errUnsupportedAmount
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If curr is empty, the registry default currency is used.
// See also constructor [decimal.Parse].
func (r *Registry) ParseAmount(curr, amount string) (Amount, error) {
	c, err := r.resolve(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("resolving currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newAmount(r, c, d)
}

// MustParseAmount is like [Registry.ParseAmount] but panics if any of the
// strings cannot be parsed.
func (r *Registry) MustParseAmount(curr, amount string) Amount {
	a, err := r.ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// See also method [Amount.Decimal].
func (r *Registry) NewAmountFromDecimal(curr string, amount decimal.Decimal) (Amount, error) {
	return r.NewAmount(curr, amount)
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
func (r *Registry) NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	c, err := r.resolve(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("resolving currency: %w", err)
	}
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	return newAmount(r, c, d)
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the stored value, including the guard digit.
// Use [Amount.String] or [Amount.MinorUnits] for the value rounded to the
// currency scale.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// round returns the value rounded to the currency scale using
// rounding half to even.
func (a Amount) round() decimal.Decimal {
	return a.value.Round(a.curr.Scale())
}

// MinorUnits returns the amount, rounded to the currency scale, in minor
// units of currency (e.g. cents, pennies, fens).
// See also constructor [Registry.NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	d := a.round()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if the stored value is 0.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.value.IsNeg()
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.value.IsPos()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{reg: a.reg, curr: a.curr, value: a.value.Abs()}
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{reg: a.reg, curr: a.curr, value: a.value.Neg()}
}

// convTo converts the amount into currency c, keeping the amount unchanged
// when the codes already match.
func (a Amount) convTo(c Currency) (Amount, error) {
	if a.curr.Code() == c.Code() {
		return a, nil
	}
	r, err := NewExchRate(a.curr, c)
	if err != nil {
		return Amount{}, err
	}
	return r.Conv(a)
}

// Add returns the sum of amounts a and b in the currency of a.
// Amount b is converted into the currency of a first.
//
// Add returns an error if the conversion or the sum overflows.
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	b, err := b.convTo(a.curr)
	if err != nil {
		return Amount{}, err
	}
	d, err := a.value.AddExact(b.value, a.curr.guardScale())
	if err != nil {
		return Amount{}, err
	}
	return newAmount(a.reg, a.curr, d)
}

// Sub returns the difference between amounts a and b in the currency of a.
// Amount b is converted into the currency of a first.
//
// Sub returns an error if the conversion or the difference overflows.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	b, err := b.convTo(a.curr)
	if err != nil {
		return Amount{}, err
	}
	d, err := a.value.SubExact(b.value, a.curr.guardScale())
	if err != nil {
		return Amount{}, err
	}
	return newAmount(a.reg, a.curr, d)
}

// Mul returns the product of amount a and factor e, rounded to the guard
// scale of the currency.
//
// Mul returns an error if the integer part of the result does not fit
// the decimal engine.
func (a Amount) Mul(e decimal.Decimal) (Amount, error) {
	c, err := a.mul(e)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e decimal.Decimal) (Amount, error) {
	d, err := a.value.MulExact(e, a.curr.guardScale())
	if err != nil {
		return Amount{}, err
	}
	return newAmount(a.reg, a.curr, d)
}

// Convert returns the amount expressed in the currency registered under code.
// If code is the currency of the amount, the amount is returned unchanged.
// See also method [ExchangeRate.Conv].
//
// Convert returns [ErrUnknownCurrency] if code is not registered.
func (a Amount) Convert(code string) (Amount, error) {
	if normCode(code) == a.curr.Code() {
		return a, nil
	}
	b, err := a.convert(code)
	if err != nil {
		return Amount{}, fmt.Errorf("converting [%v] to %v: %w", a, code, err)
	}
	return b, nil
}

func (a Amount) convert(code string) (Amount, error) {
	if a.reg == nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	q, err := a.reg.Lookup(code)
	if err != nil {
		return Amount{}, err
	}
	r, err := NewExchRate(a.curr, q)
	if err != nil {
		return Amount{}, err
	}
	return r.Conv(a)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Both amounts are rounded to the scale of the currency of a before
// comparing, after b has been converted into that currency.
// Amounts that differ only in their guard digit are therefore equal.
//
// Cmp returns an error if the conversion of b overflows.
func (a Amount) Cmp(b Amount) (int, error) {
	e, err := b.convTo(a.curr)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	return a.round().Cmp(e.round()), nil
}

// Equal returns true if a = b. See [Amount.Cmp].
func (a Amount) Equal(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c == 0, err
}

// Less returns true if a < b. See [Amount.Cmp].
func (a Amount) Less(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c < 0, err
}

// LessOrEqual returns true if a <= b. See [Amount.Cmp].
func (a Amount) LessOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c <= 0, err
}

// Greater returns true if a > b. See [Amount.Cmp].
func (a Amount) Greater(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c > 0, err
}

// GreaterOrEqual returns true if a >= b. See [Amount.Cmp].
func (a Amount) GreaterOrEqual(b Amount) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c >= 0, err
}

// String implements the [fmt.Stringer] interface and returns the currency
// code followed by the amount rounded to the currency scale, e.g. "USD 10.00".
// See also methods [Amount.Format], [Amount.Display].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	if a.curr.Code() == "" {
		return a.round().String()
	}
	return a.curr.Code() + " " + a.round().String()
}
