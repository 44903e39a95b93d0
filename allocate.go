package money

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
)

// ErrInvalidRatioSum is returned by [Amount.Allocate] when the ratios do not
// add up to 1.
var ErrInvalidRatioSum = errors.New("ratios must sum to 1")

// ratioScale is the number of digits after the decimal point at which the
// sum of allocation ratios must equal 1.
const ratioScale = 10

// Allocate splits the amount into len(ratios) parts, in ratio order.
// After rounding to the currency scale, the parts sum to exactly the rounded
// amount.
//
// Each part starts as amount * ratio truncated to the currency scale.
// The shortfall left by truncation is then handed out one minor unit at a
// time, round-robin from the first part, so earlier ratios receive remainder
// units first. A ratio of 0 yields a zero part that may still receive a unit.
// The distribution is deterministic.
// See also method [Amount.Split].
//
// Allocate returns [ErrInvalidRatioSum] if the ratios, rounded to 10 digits
// after the decimal point, do not sum to 1.
func (a Amount) Allocate(ratios []decimal.Decimal) ([]Amount, error) {
	res, err := a.allocate(ratios)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", a, ratios, err)
	}
	return res, nil
}

func (a Amount) allocate(ratios []decimal.Decimal) ([]Amount, error) {
	// Ratios
	sum := decimal.Zero
	for _, r := range ratios {
		var err error
		sum, err = sum.Add(r)
		if err != nil {
			return nil, err
		}
	}
	if sum.Round(ratioScale).Cmp(decimal.One) != 0 {
		return nil, fmt.Errorf("%w: ratios %v sum to %v", ErrInvalidRatioSum, ratios, sum)
	}

	// Truncated parts
	c := a.Curr()
	parts := make([]decimal.Decimal, len(ratios))
	total := decimal.Zero.Pad(c.Scale())
	for i, r := range ratios {
		p, err := a.value.MulExact(r, c.Scale())
		if err != nil {
			return nil, err
		}
		parts[i] = p.Trunc(c.Scale())
		total, err = total.AddExact(parts[i], c.Scale())
		if err != nil {
			return nil, err
		}
	}

	// Shortfall
	rem, err := a.round().SubExact(total, c.Scale())
	if err != nil {
		return nil, err
	}
	ulp := c.unit().CopySign(rem)

	// Shortfall distribution
	for i := 0; !rem.IsZero(); i = (i + 1) % len(parts) {
		parts[i], err = parts[i].AddExact(ulp, c.Scale())
		if err != nil {
			return nil, err
		}
		rem, err = rem.SubExact(ulp, c.Scale())
		if err != nil {
			return nil, err
		}
	}

	res := make([]Amount, len(parts))
	for i, p := range parts {
		res[i], err = newAmount(a.reg, c, p)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// rounded to the currency scale, ensuring the parts are as equal as possible.
// If the amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
// See also method [Amount.Allocate].
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

func (a Amount) split(parts int) ([]Amount, error) {
	// Parts
	if parts < 1 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	par, err := decimal.New(int64(parts), 0)
	if err != nil {
		return nil, err
	}

	// Quotient
	c, d := a.Curr(), a.round()
	quo, err := d.QuoExact(par, c.Scale())
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(c.Scale())

	// Reminder
	rem, err := quo.MulExact(par, c.Scale())
	if err != nil {
		return nil, err
	}
	rem, err = d.SubExact(rem, c.Scale())
	if err != nil {
		return nil, err
	}
	ulp := c.unit().CopySign(rem)

	res := make([]Amount, parts)
	for i := 0; i < parts; i++ {
		p := quo
		// Reminder distribution
		if !rem.IsZero() {
			rem, err = rem.SubExact(ulp, c.Scale())
			if err != nil {
				return nil, err
			}
			p, err = p.AddExact(ulp, c.Scale())
			if err != nil {
				return nil, err
			}
		}
		res[i], err = newAmount(a.reg, c, p)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
