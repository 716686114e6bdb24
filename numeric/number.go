// Package numeric implements Folio's arbitrary-precision decimal kernel.
//
// A Number is Coeff * 10^Exponent, an unbounded-precision decimal built on
// math/big.Int the way github.com/cockroachdb/apd builds its Decimal, but
// with a narrower, spec-driven contract: every operation either returns a
// Number or a typed *Error (ParseError, DivisionByZero, DomainError,
// Overflow) and none of them ever panic.
package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPrecision is the number of decimal digits used for approximating
// operations (sqrt, ln, exp, trig, non-integer power) when the caller does
// not request a specific precision.
const DefaultPrecision = 50

var bigTen = big.NewInt(10)

// Number is an arbitrary-precision decimal: Coeff * 10^Exponent.
type Number struct {
	Coeff    big.Int
	Exponent int32
}

// New creates a Number from an int64 coefficient and an exponent.
func New(coeff int64, exponent int32) *Number {
	n := &Number{Exponent: exponent}
	n.Coeff.SetInt64(coeff)
	return n
}

// NewFromBigInt creates a Number from a big.Int coefficient and an exponent.
// The big.Int is copied; the caller retains ownership of i.
func NewFromBigInt(i *big.Int, exponent int32) *Number {
	n := &Number{Exponent: exponent}
	n.Coeff.Set(i)
	return n
}

// Zero returns a fresh Number equal to 0.
func Zero() *Number { return New(0, 0) }

func ratParts(s string) (num, den string, isRat bool) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return s, "", false
	}
	num, den = s[:i], s[i+1:]
	if num == "" || den == "" {
		return s, "", false
	}
	for _, r := range num + den {
		if r == '-' || r == '+' {
			continue
		}
		if r < '0' || r > '9' {
			return s, "", false
		}
	}
	return num, den, true
}

// parseIntOrDecimal parses an integer or decimal-point literal (with an
// optional integer-mantissa scientific suffix already stripped by the
// caller) into a coefficient and the exponent its decimal point implies, preserving
// full precision for integer mantissas (no float64 round trip).
func parseIntOrDecimal(s string) (coeff *big.Int, exp int64, err error) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		fracDigits := int64(len(s) - i - 1)
		s = s[:i] + s[i+1:]
		if s == "" || s == "-" || s == "+" {
			return nil, 0, errors.Errorf("parse mantissa: %q", s)
		}
		c, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, 0, errors.Errorf("parse mantissa: %q", s)
		}
		return c, -fracDigits, nil
	}
	c, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, 0, errors.Errorf("parse mantissa: %q", s)
	}
	return c, 0, nil
}

// Parse parses a Folio number literal: an integer (-42), a decimal (3.14),
// a simple rational of two integers (1/3), or scientific notation with an
// integer-or-decimal mantissa (1.5e2, 602214076e15, 662607015e-42). The
// integer-mantissa scientific form is preserved exactly, without a float64
// intermediate, so that physical-constant literals keep full precision.
func Parse(s string) (*Number, *Error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, newErr(ParseError, "empty number literal")
	}

	if num, den, ok := ratParts(s); ok {
		n, derr := Parse(num)
		if derr != nil {
			return nil, derr
		}
		d, derr := Parse(den)
		if derr != nil {
			return nil, derr
		}
		return n.CheckedDiv(d, DefaultPrecision)
	}

	mantissa, sciExp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa = s[:i]
		e, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return nil, wrapErr(ParseError, errors.Wrapf(err, "parse exponent %q", s[i+1:]), "invalid scientific exponent in %q", s)
		}
		sciExp = e
	}

	coeff, fracExp, err := parseIntOrDecimal(mantissa)
	if err != nil {
		return nil, wrapErr(ParseError, err, "invalid number literal %q", s)
	}

	total := fracExp + sciExp
	if total > int64(1<<30) || total < -int64(1<<30) {
		return nil, newErr(Overflow, "exponent out of range in %q", s)
	}
	return NewFromBigInt(coeff, int32(total)), nil
}

// String is a synonym for ToSci.
func (n *Number) String() string { return n.ToSci() }

// ToSci renders n in scientific notation when an exponent is needed,
// otherwise in plain decimal form. Adapted from apd's Decimal.ToSci.
func (n *Number) ToSci() string {
	s := n.Coeff.String()
	if s == "0" {
		return s
	}
	neg := n.Coeff.Sign() < 0
	if neg {
		s = s[1:]
	}
	adj := int(n.Exponent) + (len(s) - 1)
	if n.Exponent <= 0 && adj >= -6 {
		if n.Exponent < 0 {
			if left := -int(n.Exponent) - len(s); left > 0 {
				s = "0." + strings.Repeat("0", left) + s
			} else if left < 0 {
				offset := -left
				s = s[:offset] + "." + s[offset:]
			} else {
				s = "0." + s
			}
		}
	} else {
		dot := ""
		if len(s) > 1 {
			dot = "." + s[1:]
		}
		s = s[:1] + dot + "E" + sign(adj) + strconv.Itoa(abs(adj))
	}
	if neg {
		s = "-" + s
	}
	return s
}

func sign(v int) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ToStandard renders n without an exponent part. This can produce long
// strings for large exponents.
func (n *Number) ToStandard() string {
	s := n.Coeff.String()
	switch {
	case n.Exponent < 0:
		neg := strings.HasPrefix(s, "-")
		if neg {
			s = s[1:]
		}
		if left := -int(n.Exponent) - len(s); left > 0 {
			s = "0." + strings.Repeat("0", left) + s
		} else if left < 0 {
			offset := -left
			s = s[:offset] + "." + s[offset:]
		} else {
			s = "0." + s
		}
		if neg {
			s = "-" + s
		}
	case n.Exponent > 0:
		s += strings.Repeat("0", int(n.Exponent))
	}
	return s
}

// NumDigits returns the number of decimal digits in n's coefficient.
func (n *Number) NumDigits() int64 {
	s := n.Coeff.String()
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "0" {
		return 1
	}
	return int64(len(s))
}

// Set sets n to x and returns n.
func (n *Number) Set(x *Number) *Number {
	n.Coeff.Set(&x.Coeff)
	n.Exponent = x.Exponent
	return n
}

// Sign returns -1, 0, or +1 as n is negative, zero, or positive.
func (n *Number) Sign() int { return n.Coeff.Sign() }

// IsZero reports whether n is exactly zero.
func (n *Number) IsZero() bool { return n.Coeff.Sign() == 0 }

// Neg returns -n.
func (n *Number) Neg() *Number {
	r := new(Number)
	r.Coeff.Neg(&n.Coeff)
	r.Exponent = n.Exponent
	return r
}

// Abs returns |n|.
func (n *Number) Abs() *Number {
	r := new(Number)
	r.Coeff.Abs(&n.Coeff)
	r.Exponent = n.Exponent
	return r
}

// upscale returns a and b's coefficients rescaled to a common exponent, and
// that exponent. Adapted from apd's upscale.
func upscale(a, b *Number) (*big.Int, *big.Int, int32) {
	if a.Exponent == b.Exponent {
		return &a.Coeff, &b.Coeff, a.Exponent
	}
	swapped := false
	if a.Exponent < b.Exponent {
		swapped = true
		a, b = b, a
	}
	s := int64(a.Exponent) - int64(b.Exponent)
	e := new(big.Int).Exp(bigTen, big.NewInt(s), nil)
	y := new(big.Int).Mul(&a.Coeff, e)
	x := &b.Coeff
	if swapped {
		x, y = y, x
	}
	return y, x, b.Exponent
}

// Cmp compares n and x: -1 if n < x, 0 if equal, +1 if n > x.
func (n *Number) Cmp(x *Number) int {
	ns, xs := n.Sign(), x.Sign()
	if ns < xs {
		return -1
	} else if ns > xs {
		return 1
	} else if ns == 0 {
		return 0
	}
	a, b, _ := upscale(n, x)
	return a.Cmp(b)
}

// Equal reports whether n and x represent the same value (after aligning
// exponents); it does not require identical Exponent fields.
func (n *Number) Equal(x *Number) bool { return n.Cmp(x) == 0 }

// Add returns n + x. Addition never fails.
func (n *Number) Add(x *Number) *Number {
	a, b, e := upscale(n, x)
	r := new(Number)
	r.Coeff.Add(a, b)
	r.Exponent = e
	return r
}

// Sub returns n - x. Subtraction never fails.
func (n *Number) Sub(x *Number) *Number {
	return n.Add(x.Neg())
}

// Mul returns n * x. Multiplication never fails.
func (n *Number) Mul(x *Number) *Number {
	r := new(Number)
	r.Coeff.Mul(&n.Coeff, &x.Coeff)
	r.Exponent = n.Exponent + x.Exponent
	return r
}

// CheckedDiv returns n / x rounded to precision decimal digits. It fails
// with DivisionByZero if x is zero.
func (n *Number) CheckedDiv(x *Number, precision uint32) (*Number, *Error) {
	if x.IsZero() {
		return nil, newErr(DivisionByZero, "division by zero")
	}
	if n.IsZero() {
		return Zero(), nil
	}
	if precision == 0 {
		precision = DefaultPrecision
	}
	// Scale the dividend up so that integer division leaves `precision`
	// significant digits, then fix up the exponent.
	shift := int64(precision) + x.NumDigits() + 2
	scaled := new(big.Int).Mul(&n.Coeff, new(big.Int).Exp(bigTen, big.NewInt(shift), nil))
	q, r := new(big.Int).QuoRem(scaled, &x.Coeff, new(big.Int))
	exp := n.Exponent - x.Exponent - int32(shift)
	result := NewFromBigInt(q, exp)
	result = result.round(precision)
	_ = r
	return result, nil
}

// Modf splits n into an integer part and a fractional part such that
// n = integ + frac.
func (n *Number) Modf() (integ, frac *Number) {
	integ, frac = new(Number), new(Number)
	if n.Exponent >= 0 {
		frac.Exponent = 0
		integ.Set(n)
		return
	}
	nd := n.NumDigits()
	exp := -int64(n.Exponent)
	if exp > nd {
		integ.Exponent = 0
		frac.Set(n)
		return
	}
	e := new(big.Int).Exp(bigTen, big.NewInt(exp), nil)
	integ.Coeff.QuoRem(&n.Coeff, e, &frac.Coeff)
	integ.Exponent = 0
	frac.Exponent = n.Exponent
	return
}

// ToI64 returns n as an int64 if it is an exact integer that fits; ok is
// false otherwise.
func (n *Number) ToI64() (v int64, ok bool) {
	integ, frac := n.Modf()
	if frac.Sign() != 0 {
		return 0, false
	}
	if !integ.Coeff.IsInt64() {
		return 0, false
	}
	base := integ.Coeff.Int64()
	if integ.Exponent == 0 {
		return base, true
	}
	if integ.Exponent < 0 {
		return 0, false
	}
	result := big.NewInt(base)
	result.Mul(result, new(big.Int).Exp(bigTen, big.NewInt(int64(integ.Exponent)), nil))
	if !result.IsInt64() {
		return 0, false
	}
	return result.Int64(), true
}

// ToF64 returns n as a float64. ok is false when n's exponent falls outside
// float64's representable range.
func (n *Number) ToF64() (v float64, ok bool) {
	f, _, err := big.ParseFloat(n.ToSci(), 10, 200, big.ToNearestEven)
	if err != nil {
		return 0, false
	}
	r, _ := f.Float64()
	if r == 0 && n.Sign() != 0 {
		return 0, false
	}
	if math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// round rounds n's coefficient to at most `precision` significant digits,
// away from zero on ties, adjusting the exponent to compensate.
func (n *Number) round(precision uint32) *Number {
	nd := n.NumDigits()
	if int64(precision) >= nd || precision == 0 {
		return n
	}
	drop := nd - int64(precision)
	divisor := new(big.Int).Exp(bigTen, big.NewInt(drop), nil)
	q, r := new(big.Int).QuoRem(&n.Coeff, divisor, new(big.Int))
	half := new(big.Int).Mul(new(big.Int).Abs(r), big.NewInt(2))
	if half.CmpAbs(divisor) >= 0 {
		if q.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return NewFromBigInt(q, n.Exponent+int32(drop))
}

// Round returns n rounded to `precision` significant decimal digits.
func (n *Number) Round(precision uint32) *Number {
	return n.round(precision)
}
