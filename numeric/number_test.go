package numeric

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"3.14", "3.14"},
		{"0", "0"},
		{"1.5e2", "1.5E+2"},
		{"602214076e15", "6.02214076E+23"},
		{"662607015e-42", "6.62607015E-34"},
		{"  7  ", "7"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got.String() != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "1e", "1/0/2"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q): expected an error", input)
		}
	}
}

func TestParseDivisionByZeroRational(t *testing.T) {
	_, err := Parse("1/0")
	if err == nil || err.Kind != DivisionByZero {
		t.Fatalf("Parse(\"1/0\") = %v, want DivisionByZero", err)
	}
}

func TestAddSubMul(t *testing.T) {
	a, _ := Parse("2.5")
	b, _ := Parse("1.25")
	if got := a.Add(b).String(); got != "3.75" {
		t.Errorf("Add = %q, want 3.75", got)
	}
	if got := a.Sub(b).String(); got != "1.25" {
		t.Errorf("Sub = %q, want 1.25", got)
	}
	if got := a.Mul(b).String(); got != "3.125" {
		t.Errorf("Mul = %q, want 3.125", got)
	}
}

func TestCheckedDiv(t *testing.T) {
	a, _ := Parse("10")
	b, _ := Parse("4")
	got, err := a.CheckedDiv(b, 10)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Parse("2.5")
	if !got.Equal(want) {
		t.Errorf("got %q, want a value equal to 2.5", got.String())
	}
	if got.Round(2).String() != "2.5" {
		t.Errorf("rounded got %q, want 2.5", got.Round(2).String())
	}
}

func TestRationalLiteralDivision(t *testing.T) {
	n, err := Parse("1/4")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Parse("0.25")
	if !n.Equal(want) {
		t.Errorf("Parse(\"1/4\") = %q, want a value equal to 0.25", n.String())
	}
}

func TestCheckedDivByZero(t *testing.T) {
	a, _ := Parse("10")
	zero := Zero()
	_, err := a.CheckedDiv(zero, 10)
	if err == nil || err.Kind != DivisionByZero {
		t.Fatalf("got %v, want DivisionByZero", err)
	}
}

func TestCmpAndEqual(t *testing.T) {
	a, _ := Parse("1.50")
	b, _ := Parse("1.5")
	if !a.Equal(b) {
		t.Errorf("expected 1.50 == 1.5")
	}
	c, _ := Parse("2")
	if a.Cmp(c) >= 0 {
		t.Errorf("expected 1.5 < 2")
	}
	if c.Cmp(a) <= 0 {
		t.Errorf("expected 2 > 1.5")
	}
}

func TestNegAbs(t *testing.T) {
	a, _ := Parse("-3.5")
	if got := a.Neg().String(); got != "3.5" {
		t.Errorf("Neg = %q, want 3.5", got)
	}
	if got := a.Abs().String(); got != "3.5" {
		t.Errorf("Abs = %q, want 3.5", got)
	}
}

func TestToI64(t *testing.T) {
	tests := []struct {
		input  string
		want   int64
		wantOk bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"4.5", 0, false},
		{"300e2", 30000, true},
	}
	for _, tt := range tests {
		n, _ := Parse(tt.input)
		v, ok := n.ToI64()
		if ok != tt.wantOk {
			t.Errorf("ToI64(%q) ok = %v, want %v", tt.input, ok, tt.wantOk)
			continue
		}
		if ok && v != tt.want {
			t.Errorf("ToI64(%q) = %d, want %d", tt.input, v, tt.want)
		}
	}
}

func TestToF64(t *testing.T) {
	n, _ := Parse("3.5")
	f, ok := n.ToF64()
	if !ok || f != 3.5 {
		t.Errorf("ToF64 = %v, %v, want 3.5, true", f, ok)
	}
}

func TestModf(t *testing.T) {
	n, _ := Parse("12.375")
	integ, frac := n.Modf()
	if integ.String() != "12" {
		t.Errorf("integ = %q, want 12", integ.String())
	}
	if frac.String() != "0.375" {
		t.Errorf("frac = %q, want 0.375", frac.String())
	}
}

func TestRound(t *testing.T) {
	n, _ := Parse("3.14159")
	if got := n.Round(3).String(); got != "3.14" {
		t.Errorf("Round(3) = %q, want 3.14", got)
	}
}

func TestIsZero(t *testing.T) {
	z := Zero()
	if !z.IsZero() {
		t.Errorf("expected Zero() to be zero")
	}
	n, _ := Parse("0.0")
	if !n.IsZero() {
		t.Errorf("expected 0.0 to be zero")
	}
}
