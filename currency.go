package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

// MaxScale is the largest number of minor-unit digits a currency may declare.
// Amounts keep one guard digit beyond the currency scale and conversions need
// room for a couple of integer digits, so the limit is below [decimal.MaxScale].
const MaxScale = decimal.MaxScale - 2

var (
	// ErrUnknownCurrency is returned when a currency code is not registered.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrUnknownField is returned when a descriptor field name is not recognised.
	ErrUnknownField = errors.New("unknown currency field")
	// ErrNoDefaultCurrency is returned when an amount is constructed without
	// a currency and the registry has no default.
	ErrNoDefaultCurrency = errors.New("no default currency")
	// ErrInvalidCurrency is returned when a descriptor violates its invariants.
	ErrInvalidCurrency = errors.New("invalid currency")
)

// Descriptor field names accepted by [Registry.LookupField].
const (
	FieldName      = "name"
	FieldSymbol    = "symbol"
	FieldPrecision = "precision"
	FieldReference = "reference_value"
)

// Currency describes a registered currency: its code, display name, symbol,
// scale and reference value.
// The reference value expresses the currency in a common unit of account.
// Conversion rates between two currencies are always derived from their
// reference values; direct rates are never stored.
//
// Currency values are snapshots. Re-registering a code in a [Registry] does
// not alter descriptors already held by amounts.
// The zero value is an unnamed currency with scale 0 and no reference value.
type Currency struct {
	code   string
	name   string
	symbol string
	scale  int
	ref    decimal.Decimal
}

func newCurrency(code, name, symbol string, scale int, ref decimal.Decimal) (Currency, error) {
	code = normCode(code)
	switch {
	case code == "":
		return Currency{}, fmt.Errorf("%w: empty code", ErrInvalidCurrency)
	case scale < 0 || scale > MaxScale:
		return Currency{}, fmt.Errorf("%w: %v: precision %v out of range [0, %v]", ErrInvalidCurrency, code, scale, MaxScale)
	case !ref.IsPos():
		return Currency{}, fmt.Errorf("%w: %v: reference value %v must be positive", ErrInvalidCurrency, code, ref)
	}
	return Currency{code: code, name: name, symbol: symbol, scale: scale, ref: ref}, nil
}

func normCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Code returns the code the currency was registered under, in upper case.
func (c Currency) Code() string {
	return c.code
}

// Name returns the display name of the currency.
func (c Currency) Name() string {
	return c.name
}

// Symbol returns the currency symbol used by [Amount.Display], such as "$".
func (c Currency) Symbol() string {
	return c.symbol
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
//   - A scale of 0 indicates currencies without minor units, such as the Japanese Yen.
//   - A scale of 2 indicates currencies with 2-digit minor units, such as the US Dollar.
//   - A scale of 3 indicates currencies with 3-digit minor units, such as the Omani Rial.
func (c Currency) Scale() int {
	return c.scale
}

// Reference returns the value of one unit of the currency in the common unit
// of account.
func (c Currency) Reference() decimal.Decimal {
	return c.ref
}

// guardScale is the scale amounts in this currency are stored at.
func (c Currency) guardScale() int {
	return c.scale + 1
}

// unit returns the smallest positive amount representable at the currency scale.
func (c Currency) unit() decimal.Decimal {
	return decimal.MustNew(1, c.scale)
}

// field returns a single descriptor field rendered as a string.
func (c Currency) field(name string) (string, error) {
	switch strings.ToLower(name) {
	case FieldName:
		return c.Name(), nil
	case FieldSymbol:
		return c.Symbol(), nil
	case FieldPrecision:
		return fmt.Sprint(c.Scale()), nil
	case FieldReference, "reference":
		return c.Reference().String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// String method implements the [fmt.Stringer] interface and returns
// the currency code.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q':
		pad(state, `"`+c.Code()+`"`)
	case 's', 'S', 'v', 'V', 'c', 'C':
		pad(state, c.Code())
	default:
		badVerb(state, verb, "money.Currency", c.Code())
	}
}
