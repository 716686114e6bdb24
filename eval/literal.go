package eval

import (
	"strings"

	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

// EvalLiteral interprets a cell's raw text when parse.ParseCellText
// decided it is not an expression (nil Expr, nil error): a numeric
// literal, an ISO-8601 instant, a boolean keyword, Null for empty text or
// "null", or else plain text with any surrounding quotes stripped.
func EvalLiteral(raw string) *value.Value {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	case "", "null":
		return value.Null()
	}
	if n, err := numeric.Parse(trimmed); err == nil {
		return value.Number(n)
	}
	if dt, err := datetime.ParseISO8601(trimmed); err == nil {
		return value.DateTimeVal(dt)
	}
	if unquoted, ok := stripQuotes(trimmed); ok {
		return value.Text(unquoted)
	}
	return value.Text(trimmed)
}

func stripQuotes(s string) (string, bool) {
	if len(s) < 2 {
		return s, false
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return s[1 : len(s)-1], true
	}
	return s, false
}
