package numeric

// Pi returns the constant pi to the given precision.
func Pi(precision uint32) *Number {
	bits := bitsFor(precision)
	return fromBigFloat(piBigFloat(bits), precision)
}

// E returns Euler's number to the given precision.
func E(precision uint32) *Number {
	n, _ := New(1, 0).Exp(precision)
	return n
}

// Phi returns the golden ratio (1 + sqrt(5)) / 2 to the given precision.
func Phi(precision uint32) *Number {
	five, _ := New(5, 0).Sqrt(precision + 10)
	sum := New(1, 0).Add(five)
	q, _ := sum.CheckedDiv(New(2, 0), precision)
	return q
}

// Sqrt2 returns the square root of 2 to the given precision.
func Sqrt2(precision uint32) *Number {
	n, _ := New(2, 0).Sqrt(precision)
	return n
}

// Sqrt3 returns the square root of 3 to the given precision.
func Sqrt3(precision uint32) *Number {
	n, _ := New(3, 0).Sqrt(precision)
	return n
}
