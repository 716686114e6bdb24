package numeric

import (
	"math/big"
	"strconv"
	"strings"
)

// order returns the base-10 order of magnitude of n (the exponent e such
// that 10^e <= |n| < 10^(e+1)), or 0 for zero.
func (n *Number) order() int {
	if n.IsZero() {
		return 0
	}
	return int(n.Exponent) + int(n.NumDigits()) - 1
}

// DisplayFixed renders n with exactly `places` digits after the decimal
// point, rounding away from zero on ties.
func (n *Number) DisplayFixed(places int) string {
	if places < 0 {
		places = 0
	}
	target := int32(-places)
	scaled := n.rescale(target)
	s := scaled.Coeff.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if places == 0 {
		if neg && s != "0" {
			return "-" + s
		}
		return s
	}
	for len(s) <= places {
		s = "0" + s
	}
	whole, frac := s[:len(s)-places], s[len(s)-places:]
	out := whole + "." + frac
	if neg && scaled.Coeff.Sign() != 0 {
		out = "-" + out
	}
	return out
}

// rescale returns n rounded (away from zero on ties) so its Exponent
// equals target.
func (n *Number) rescale(target int32) *Number {
	if n.Exponent == target {
		return n
	}
	if n.Exponent > target {
		e := new(big.Int).Exp(bigTen, big.NewInt(int64(n.Exponent)-int64(target)), nil)
		c := new(big.Int).Mul(&n.Coeff, e)
		return NewFromBigInt(c, target)
	}
	drop := int64(target) - int64(n.Exponent)
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
	return NewFromBigInt(q, target)
}

// Display renders n in fixed-decimal mode with `places` digits after the
// point, except that a tiny nonzero magnitude (|n| < 1e-6) is instead given
// enough decimal places to reveal three significant digits, since a fixed
// small `places` would otherwise print as indistinguishable from zero.
func (n *Number) Display(places int) string {
	if n.IsZero() {
		return n.DisplayFixed(places)
	}
	ord := n.order()
	if ord >= -6 {
		return n.DisplayFixed(places)
	}
	needed := -ord + 2
	if needed > places {
		return n.DisplayFixed(needed)
	}
	return n.DisplayFixed(places)
}

// DisplaySigFigs renders n with N significant figures, switching to
// scientific notation (mantissa E exponent) when the magnitude's order of
// magnitude falls outside [-3, 4]. The tiny-magnitude widening of
// fixed-decimal mode lives in Display, not here; here, out-of-range
// magnitudes always go scientific regardless of sign.
func (n *Number) DisplaySigFigs(sigfigs int) string {
	if sigfigs < 1 {
		sigfigs = 1
	}
	if n.IsZero() {
		if sigfigs <= 1 {
			return "0"
		}
		return "0." + strings.Repeat("0", sigfigs-1)
	}
	rounded := n.round(uint32(sigfigs))
	ord := rounded.order()
	if ord < -3 || ord > 4 {
		return rounded.sciNotation(sigfigs)
	}
	places := sigfigs - ord - 1
	if places < 0 {
		places = 0
	}
	return rounded.DisplayFixed(places)
}

// sciNotation renders n as d.dddEnn with sigfigs significant digits; a
// negative exponent carries a '-', a positive one carries no sign.
func (n *Number) sciNotation(sigfigs int) string {
	s := n.Coeff.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for len(s) < sigfigs {
		s += "0"
	}
	s = s[:sigfigs]
	adj := n.order()
	mantissa := s[:1]
	if sigfigs > 1 {
		mantissa += "." + s[1:]
	}
	out := mantissa + "E" + strconv.Itoa(adj)
	if neg {
		out = "-" + out
	}
	return out
}
