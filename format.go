package money

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// Formatter renders amounts for display.
// FormatAmount receives the stored value of the amount, including its guard
// digit, and the currency descriptor. Rounding is up to the formatter.
type Formatter interface {
	FormatAmount(amount decimal.Decimal, curr Currency) string
}

// FormatterFunc is an adapter to allow the use of ordinary functions as
// a [Formatter].
type FormatterFunc func(amount decimal.Decimal, curr Currency) string

// FormatAmount calls f(amount, curr).
func (f FormatterFunc) FormatAmount(amount decimal.Decimal, curr Currency) string {
	return f(amount, curr)
}

// Display returns the amount as shown to people.
// If the registry the amount was created from has a [Formatter], its result
// is returned verbatim. Otherwise the amount is rounded to the currency scale
// and rendered with the currency symbol and thousands separators:
//
//	$1,234,567.89
//	$-0.50
//
// See also methods [Amount.DisplayWith], [Registry.SetFormatter].
func (a Amount) Display() string {
	return a.DisplayWith(a.reg.formatter())
}

// DisplayWith is like [Amount.Display] but uses f instead of the registry
// formatter. A nil f selects the built-in rendering.
func (a Amount) DisplayWith(f Formatter) string {
	if f != nil {
		return f.FormatAmount(a.value, a.curr)
	}
	return a.curr.Symbol() + group(a.round().String())
}

// group inserts a comma every 3 digits of the integer part of a decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, ok := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(sign) + len(s) + len(whole)/3)
	b.WriteString(sign)
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	if ok {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.68    | Currency and amount        |
//	| %q     | "USD 5.68"  | Quoted currency and amount |
//	| %f     | 5.68        | Amount                     |
//	| %d     | 568         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with %f and %d.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V':
		pad(state, a.String())
	case 'q', 'Q':
		pad(state, `"`+a.String()+`"`)
	case 'c', 'C':
		pad(state, a.curr.Code())
	case 'f', 'F':
		d := a.round()
		if p, ok := state.Precision(); ok {
			d = a.value.Rescale(p)
		}
		pad(state, plus(state, d.String()))
	case 'd', 'D':
		d := a.round()
		s := strconv.FormatUint(d.Coef(), 10)
		if d.IsNeg() {
			s = "-" + s
		}
		pad(state, plus(state, s))
	default:
		badVerb(state, verb, "money.Amount", a.String())
	}
}

// plus prefixes non-negative numbers with '+' when the '+' flag is set.
func plus(state fmt.State, s string) string {
	if state.Flag('+') && !strings.HasPrefix(s, "-") {
		return "+" + s
	}
	return s
}

// pad writes s to state, honouring the width and the '-' flag.
func pad(state fmt.State, s string) {
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(s); n > 0 {
			fill := strings.Repeat(" ", n)
			if state.Flag('-') {
				s += fill
			} else {
				s = fill + s
			}
		}
	}
	io.WriteString(state, s) //nolint:errcheck
}

func badVerb(state fmt.State, verb rune, typ, s string) {
	fmt.Fprintf(state, "%%!%c(%s=%s)", verb, typ, s)
}
