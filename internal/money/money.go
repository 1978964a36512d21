// Package money provides the fixed-point amount type used for balances and
// transaction amounts.
//
// Invariants:
//   - Every value carries exactly two fraction digits.
//   - Every arithmetic result is rounded half away from zero to two digits.
//   - Values are never represented as binary floating point.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits every amount carries.
const Places = 2

// maxExponent bounds the decimal exponent Parse accepts. Rounding rescales by
// 10^|exponent|, so text such as "1e-400000000" must be refused up front.
const maxExponent = 32

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("invalid amount")

	errExponent = errors.New("exponent out of range")
)

// ParseError reports text that could not be read as an amount.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v %q", ErrParse, e.Input)
	}
	return fmt.Sprintf("%v %q: %v", ErrParse, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for any ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Money is an exact decimal amount with two fraction digits.
//
// The zero value is 0.00. Compare values with Equal or Cmp, not ==.
type Money struct {
	d decimal.Decimal
}

// Zero is 0.00.
var Zero = Money{d: decimal.Zero.Round(Places)}

// New rounds d half-up to two fraction digits.
func New(d decimal.Decimal) Money {
	return Money{d: d.Round(Places)}
}

// FromCents builds an amount from a count of hundredths.
func FromCents(cents int64) Money {
	return New(decimal.New(cents, -Places))
}

// Parse reads plain decimal text such as "50", "20.5" or "0.125".
// Results with more than two fraction digits are rounded half-up.
func Parse(s string) (Money, error) {
	if s == "" {
		return Money{}, &ParseError{Input: s}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, &ParseError{Input: s, Err: err}
	}
	if exp := d.Exponent(); exp < -maxExponent || exp > maxExponent {
		return Money{}, &ParseError{Input: s, Err: errExponent}
	}
	return New(d), nil
}

// MustParse is Parse for constants and tests; it panics on bad input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("money.MustParse(%q): %v", s, err))
	}
	return m
}

// Add returns m + o.
func (m Money) Add(o Money) Money { return New(m.d.Add(o.d)) }

// Sub returns m - o. The result may be negative; callers that must keep a
// balance non-negative check with Cmp first.
func (m Money) Sub(o Money) Money { return New(m.d.Sub(o.d)) }

// Cmp returns -1, 0 or +1 as m is less than, equal to, or greater than o.
func (m Money) Cmp(o Money) int { return m.d.Cmp(o.d) }

// Equal reports whether m and o have the same value.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// IsZero reports whether m is 0.00.
func (m Money) IsZero() bool { return m.d.IsZero() }

// IsPositive reports whether m is greater than zero.
func (m Money) IsPositive() bool { return m.d.IsPositive() }

// IsNegative reports whether m is less than zero.
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// Decimal exposes the underlying value.
func (m Money) Decimal() decimal.Decimal { return m.d }

// String formats m as plain decimal text with exactly two fraction digits and
// no thousands separator. This is the persisted form.
func (m Money) String() string { return m.d.StringFixed(Places) }
