package stdfuncs

import (
	"strings"

	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// digitPatternAnalyzer flags round numbers (trailing zeros in the
// coefficient) and repeating-digit coefficients ("7777", "1111"), per
// the analyzer plugin contract of spec §6.
type digitPatternAnalyzer struct{}

func (digitPatternAnalyzer) Meta() registry.AnalyzerMeta {
	return registry.AnalyzerMeta{
		Name:        "digitpattern",
		Description: "Detects round numbers and repeating-digit coefficients.",
		Detects:     []string{"round_number", "repeating_digit"},
	}
}

func digits(n *numeric.Number) string {
	s := n.Coeff.String()
	return strings.TrimPrefix(s, "-")
}

func trailingZeros(s string) int {
	count := 0
	for i := len(s) - 1; i >= 0 && s[i] == '0'; i-- {
		count++
	}
	return count
}

func isRepeatingDigit(s string) (rune, bool) {
	if len(s) < 2 {
		return 0, false
	}
	first := rune(s[0])
	for _, r := range s[1:] {
		if r != first {
			return 0, false
		}
	}
	return first, true
}

func (digitPatternAnalyzer) Confidence(n *numeric.Number, ctx registry.Context) float64 {
	if n.IsZero() {
		return 0
	}
	s := digits(n)
	if _, ok := isRepeatingDigit(s); ok {
		return 0.9
	}
	tz := trailingZeros(s)
	if tz == 0 {
		return 0
	}
	switch {
	case tz >= len(s)-1:
		return 0.8
	case tz >= 2:
		return 0.4
	default:
		return 0.15
	}
}

func (digitPatternAnalyzer) Analyze(n *numeric.Number, ctx registry.Context) *value.Value {
	s := digits(n)
	fields := map[string]*value.Value{}
	if digit, ok := isRepeatingDigit(s); ok {
		fields["pattern"] = value.Text("repeating_digit")
		fields["digit"] = value.Text(string(digit))
		return value.Obj(fields)
	}
	tz := trailingZeros(s)
	fields["pattern"] = value.Text("round_number")
	fields["trailing_zeros"] = value.Number(numeric.New(int64(tz), 0))
	return value.Obj(fields)
}
