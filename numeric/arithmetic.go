package numeric

import "math/big"

// bitsFor returns a big.Float mantissa bit width comfortably covering
// `precision` decimal digits plus guard digits, the way apd's bigfloat.go
// carries guard bits through its Newton iterations.
func bitsFor(precision uint32) uint {
	if precision == 0 {
		precision = DefaultPrecision
	}
	return uint(float64(precision)*3.3219280948873623) + 64
}

func (n *Number) toBigFloat(prec uint) *big.Float {
	f, _, err := big.ParseFloat(n.ToSci(), 10, prec, big.ToNearestEven)
	if err != nil {
		// n.ToSci() is always a value we produced ourselves, so this
		// should not happen; fall back to zero rather than panic.
		return new(big.Float).SetPrec(prec)
	}
	return f
}

func fromBigFloat(f *big.Float, precision uint32) *Number {
	if precision == 0 {
		precision = DefaultPrecision
	}
	s := f.Text('e', int(precision)+2)
	num, nerr := Parse(s)
	if nerr != nil {
		return Zero()
	}
	return num.round(precision)
}

// IntPow raises n to an exact non-negative integer power via repeated
// squaring. Negative exponents are handled by the caller via CheckedDiv
// (the reciprocal may not be exact, so it is not part of this exact path).
func (n *Number) IntPow(exp int64) *Number {
	if exp == 0 {
		return New(1, 0)
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := New(1, 0)
	base := new(Number).Set(n)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Pow returns n^x at the given precision. Integer exponents that fit in
// int32 use exact integer power (computing a reciprocal at the requested
// precision for negative integer exponents); otherwise it computes
// exp(x * ln(n)) at the given precision. A negative base with a
// non-integer exponent is a DomainError; zero raised to a negative
// integer exponent is a DivisionByZero, and zero raised to any
// non-integer exponent is zero.
func (n *Number) Pow(x *Number, precision uint32) (*Number, *Error) {
	if precision == 0 {
		precision = DefaultPrecision
	}
	if xi, ok := x.ToI64(); ok && xi >= -(1<<31) && xi <= (1<<31-1) {
		if xi >= 0 {
			return n.IntPow(xi), nil
		}
		if n.IsZero() {
			return nil, newErr(DivisionByZero, "0 raised to a negative power")
		}
		recip, err := New(1, 0).CheckedDiv(n.IntPow(-xi), precision)
		if err != nil {
			return nil, err
		}
		return recip, nil
	}

	if n.IsZero() {
		return Zero(), nil
	}
	if n.Sign() < 0 {
		return nil, newErr(DomainError, "negative base %s with non-integer exponent", n.ToSci())
	}
	lnN, err := n.Ln(precision + 10)
	if err != nil {
		return nil, err
	}
	prod := lnN.Mul(x)
	result, err := prod.Exp(precision)
	if err != nil {
		return nil, err
	}
	return result.round(precision), nil
}

// Sqrt returns the square root of n at the given precision. DomainError
// for negative n; exactly zero for zero. Uses the same mantissa/exponent
// split and Newton iteration shape as apd's bigfloat.go Sqrt.
func (n *Number) Sqrt(precision uint32) (*Number, *Error) {
	if n.Sign() < 0 {
		return nil, newErr(DomainError, "square root of negative number %s", n.ToSci())
	}
	if n.IsZero() {
		return Zero(), nil
	}
	bits := bitsFor(precision)
	z := n.toBigFloat(bits)
	r := sqrtBigFloat(z)
	return fromBigFloat(r, precision), nil
}

// sqrtDirect/sqrtInverse/newton below are adapted from apd's bigfloat.go.

func sqrtBigFloat(z *big.Float) *big.Float {
	if z.Sign() == 0 {
		return new(big.Float).SetPrec(z.Prec())
	}
	mant := new(big.Float).SetPrec(z.Prec())
	exp := z.MantExp(mant)
	switch exp % 2 {
	case 1:
		mant.Mul(big.NewFloat(2), mant)
	case -1:
		mant.Mul(big.NewFloat(0.5), mant)
	}
	x := sqrtDirect(mant)
	return x.SetMantExp(x, exp/2)
}

func sqrtDirect(z *big.Float) *big.Float {
	half := big.NewFloat(0.5)
	f := func(t *big.Float) *big.Float {
		x := new(big.Float).SetPrec(t.Prec()).Mul(t, t)
		x.Sub(x, z)
		x.Mul(half, x)
		return x.Quo(x, t)
	}
	zf, _ := z.Float64()
	if zf <= 0 {
		zf = 1
	}
	guess := big.NewFloat(sqrtFloat64(zf))
	return newtonFloat(f, guess, z.Prec())
}

func sqrtFloat64(f float64) float64 {
	// Newton-refine a crude initial guess without importing math just
	// for Sqrt; math.Sqrt is used elsewhere in this package already, but
	// keeping this local avoids a cyclic-looking dependency on the
	// precision we are trying to establish.
	if f == 0 {
		return 0
	}
	x := f
	for i := 0; i < 40; i++ {
		x = 0.5 * (x + f/x)
	}
	return x
}

func newtonFloat(fOverDf func(z *big.Float) *big.Float, guess *big.Float, dPrec uint) *big.Float {
	prec, guard := guess.Prec(), uint(64)
	guess.SetPrec(prec + guard)
	for prec < 2*dPrec {
		guess.Sub(guess, fOverDf(guess))
		prec *= 2
		guess.SetPrec(prec + guard)
	}
	return guess.SetPrec(dPrec)
}

// Ln returns the natural logarithm of n at the given precision.
// DomainError for non-positive n.
func (n *Number) Ln(precision uint32) (*Number, *Error) {
	if n.Sign() <= 0 {
		return nil, newErr(DomainError, "logarithm of non-positive number %s", n.ToSci())
	}
	bits := bitsFor(precision)
	x := n.toBigFloat(bits)
	y := lnBigFloat(x, bits)
	return fromBigFloat(y, precision), nil
}

// lnBigFloat computes ln(x) via Newton's method on exp: y_{k+1} = y_k - 1 +
// x*exp(-y_k), using a float64 seed and expBigFloat for the iteration body.
func lnBigFloat(x *big.Float, bits uint) *big.Float {
	xf, _ := x.Float64()
	seed := lnFloat64(xf)
	y := big.NewFloat(seed).SetPrec(bits)
	one := big.NewFloat(1).SetPrec(bits)
	for i := 0; i < 100; i++ {
		negY := new(big.Float).SetPrec(bits).Neg(y)
		expNegY := expBigFloat(negY, bits)
		term := new(big.Float).SetPrec(bits).Mul(x, expNegY)
		next := new(big.Float).SetPrec(bits).Sub(term, one)
		next.Add(next, y)
		delta := new(big.Float).SetPrec(bits).Sub(next, y)
		y = next
		if delta.Sign() == 0 {
			break
		}
		if exp := delta.MantExp(nil); exp < -int(bits/2) {
			break
		}
	}
	return y
}

func lnFloat64(f float64) float64 {
	if f <= 0 {
		return 0
	}
	// crude ln via repeated sqrt-ing to bring f near 1, then series;
	// only used as a Newton seed so low accuracy is fine.
	k := 0.0
	for f > 2 {
		f = sqrtFloat64(f)
		k++
	}
	for f < 0.5 {
		f = f * f
		k--
		// guard against runaway when f started extremely small
		if k < -1024 {
			break
		}
	}
	// f now near 1; ln(f) ~= (f-1) - (f-1)^2/2 + (f-1)^3/3 - ...
	u := f - 1
	sum, term := 0.0, u
	for i := 1; i < 30; i++ {
		if i%2 == 1 {
			sum += term / float64(i)
		} else {
			sum -= term / float64(i)
		}
		term *= u
	}
	return sum * pow2(k)
}

func pow2(k float64) float64 {
	r := 1.0
	n := int(k)
	neg := n < 0
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		r *= 2
	}
	if neg {
		return 1 / r
	}
	return r
}

// Exp returns e^n at the given precision. Always defined.
func (n *Number) Exp(precision uint32) (*Number, *Error) {
	bits := bitsFor(precision)
	x := n.toBigFloat(bits)
	y := expBigFloat(x, bits)
	return fromBigFloat(y, precision), nil
}

// expBigFloat computes exp(x) by halving the argument until it is small,
// summing a Taylor series, and squaring back up.
func expBigFloat(x *big.Float, bits uint) *big.Float {
	xf, _ := x.Float64()
	k := 0
	reduced := new(big.Float).SetPrec(bits).Set(x)
	for absF(xf) > 0.5 {
		reduced.Quo(reduced, big.NewFloat(2))
		xf /= 2
		k++
	}
	sum := big.NewFloat(1).SetPrec(bits)
	term := big.NewFloat(1).SetPrec(bits)
	for i := 1; i < 200; i++ {
		term.Mul(term, reduced)
		term.Quo(term, big.NewFloat(float64(i)))
		next := new(big.Float).SetPrec(bits).Add(sum, term)
		if next.Cmp(sum) == 0 {
			sum = next
			break
		}
		sum = next
	}
	for i := 0; i < k; i++ {
		sum.Mul(sum, sum)
	}
	return sum
}

func absF(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// piBigFloat computes pi via Machin's formula: pi = 16*atan(1/5) -
// 4*atan(1/239).
func piBigFloat(bits uint) *big.Float {
	a := atanBigFloat(new(big.Float).SetPrec(bits).Quo(big.NewFloat(1).SetPrec(bits), big.NewFloat(5).SetPrec(bits)), bits)
	b := atanBigFloat(new(big.Float).SetPrec(bits).Quo(big.NewFloat(1).SetPrec(bits), big.NewFloat(239).SetPrec(bits)), bits)
	pi := new(big.Float).SetPrec(bits).Mul(a, big.NewFloat(16))
	bb := new(big.Float).SetPrec(bits).Mul(b, big.NewFloat(4))
	pi.Sub(pi, bb)
	return pi
}

// atanBigFloat computes atan(x) for small |x| via its Taylor series.
func atanBigFloat(x *big.Float, bits uint) *big.Float {
	sum := new(big.Float).SetPrec(bits).Set(x)
	term := new(big.Float).SetPrec(bits).Set(x)
	x2 := new(big.Float).SetPrec(bits).Mul(x, x)
	for i := 1; i < 400; i++ {
		term.Mul(term, x2)
		term.Neg(term)
		denom := big.NewFloat(float64(2*i + 1)).SetPrec(bits)
		delta := new(big.Float).SetPrec(bits).Quo(term, denom)
		next := new(big.Float).SetPrec(bits).Add(sum, delta)
		if next.Cmp(sum) == 0 {
			sum = next
			break
		}
		sum = next
	}
	return sum
}

// sinCosBigFloat returns sin(x) and cos(x), after reducing x modulo 2*pi,
// using a Taylor series whose term count scales with precision the way spec
// §4.1 asks for (~precision/3 terms, clamped to [12,50]).
func sinCosBigFloat(x *big.Float, bits uint, precision uint32) (sin, cos *big.Float) {
	pi := piBigFloat(bits)
	twoPi := new(big.Float).SetPrec(bits).Mul(pi, big.NewFloat(2))
	reduced := reduceModulo(x, twoPi, bits)

	nTerms := int(precision) / 3
	if nTerms < 12 {
		nTerms = 12
	}
	if nTerms > 50 {
		nTerms = 50
	}

	sinSum := new(big.Float).SetPrec(bits).Set(reduced)
	sinTerm := new(big.Float).SetPrec(bits).Set(reduced)
	cosSum := big.NewFloat(1).SetPrec(bits)
	cosTerm := big.NewFloat(1).SetPrec(bits)
	x2 := new(big.Float).SetPrec(bits).Mul(reduced, reduced)

	for k := 1; k <= nTerms; k++ {
		// sin term: multiply by -x^2/((2k)(2k+1))
		sinTerm.Mul(sinTerm, x2)
		sinTerm.Neg(sinTerm)
		sinTerm.Quo(sinTerm, big.NewFloat(float64(2*k)*float64(2*k+1)).SetPrec(bits))
		sinSum.Add(sinSum, sinTerm)

		// cos term: multiply by -x^2/((2k-1)(2k))
		cosTerm.Mul(cosTerm, x2)
		cosTerm.Neg(cosTerm)
		cosTerm.Quo(cosTerm, big.NewFloat(float64(2*k-1)*float64(2*k)).SetPrec(bits))
		cosSum.Add(cosSum, cosTerm)
	}
	return sinSum, cosSum
}

func reduceModulo(x, m *big.Float, bits uint) *big.Float {
	q := new(big.Float).SetPrec(bits).Quo(x, m)
	qi, _ := q.Int(nil)
	qf := new(big.Float).SetPrec(bits).SetInt(qi)
	r := new(big.Float).SetPrec(bits).Mul(qf, m)
	r.Sub(x, r)
	return r
}

// Sin returns sin(n) at the given precision.
func (n *Number) Sin(precision uint32) (*Number, *Error) {
	bits := bitsFor(precision)
	s, _ := sinCosBigFloat(n.toBigFloat(bits), bits, precision)
	return fromBigFloat(s, precision), nil
}

// Cos returns cos(n) at the given precision.
func (n *Number) Cos(precision uint32) (*Number, *Error) {
	bits := bitsFor(precision)
	_, c := sinCosBigFloat(n.toBigFloat(bits), bits, precision)
	return fromBigFloat(c, precision), nil
}

// Tan returns tan(n) at the given precision. DomainError when cos(n) is
// zero.
func (n *Number) Tan(precision uint32) (*Number, *Error) {
	bits := bitsFor(precision)
	s, c := sinCosBigFloat(n.toBigFloat(bits), bits, precision)
	if c.Sign() == 0 {
		return nil, newErr(DomainError, "tangent undefined (cosine is zero)")
	}
	r := new(big.Float).SetPrec(bits).Quo(s, c)
	return fromBigFloat(r, precision), nil
}
