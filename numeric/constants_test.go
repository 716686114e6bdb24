package numeric

import (
	"strings"
	"testing"
)

// leadingDigits strips the sign and decimal point so two renderings of a
// constant at different precisions can be compared digit-by-digit.
func leadingDigits(s string) string {
	s = strings.TrimPrefix(s, "-")
	return strings.ReplaceAll(s, ".", "")
}

func TestPi(t *testing.T) {
	got := Pi(20).String()
	want := "3.1415926535897932384"
	if !strings.HasPrefix(leadingDigits(got), leadingDigits(want)[:15]) {
		t.Errorf("Pi(20) = %s, want a prefix matching %s", got, want)
	}
}

func TestPiPrecisionIsMonotonic(t *testing.T) {
	// Pi(10) is correctly rounded, so it is compared with Pi(40) rounded to
	// the same 10 significant digits.
	low := leadingDigits(Pi(10).String())
	high := leadingDigits(Pi(40).Round(10).String())
	n := len(low)
	if n > len(high) {
		n = len(high)
	}
	if n < 8 {
		t.Fatalf("not enough digits to compare: low=%q high=%q", low, high)
	}
	if low[:n] != high[:n] {
		t.Errorf("increasing precision changed leading digits: low=%s high=%s", low, high)
	}
}

func TestE(t *testing.T) {
	got := E(20).String()
	want := "2.7182818284590452353"
	if !strings.HasPrefix(leadingDigits(got), leadingDigits(want)[:15]) {
		t.Errorf("E(20) = %s, want a prefix matching %s", got, want)
	}
}

func TestPhi(t *testing.T) {
	got := Phi(20).String()
	want := "1.6180339887498948482"
	if !strings.HasPrefix(leadingDigits(got), leadingDigits(want)[:12]) {
		t.Errorf("Phi(20) = %s, want a prefix matching %s", got, want)
	}
}

func TestSqrt2Constant(t *testing.T) {
	got := Sqrt2(20).String()
	want := "1.4142135623730950488"
	if !strings.HasPrefix(leadingDigits(got), leadingDigits(want)[:12]) {
		t.Errorf("Sqrt2(20) = %s, want a prefix matching %s", got, want)
	}
}

func TestSqrt3Constant(t *testing.T) {
	got := Sqrt3(20).String()
	want := "1.7320508075688772935"
	if !strings.HasPrefix(leadingDigits(got), leadingDigits(want)[:12]) {
		t.Errorf("Sqrt3(20) = %s, want a prefix matching %s", got, want)
	}
}
