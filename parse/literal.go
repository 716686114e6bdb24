package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/ferr"
)

// ParseCellText classifies and, if needed, parses a cell's raw value
// text per spec §4.2. A leading '=' always forces expression parsing of
// the remainder. Otherwise the text is parsed as an expression only if
// it looks like one; a nil Expr with no error means the text should be
// stored as a literal and resolved against the Number/Text model at
// evaluation time.
func ParseCellText(raw string) (*ast.Expr, *ferr.FolioError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "=") {
		return ParseExpression(strings.TrimSpace(trimmed[1:]))
	}
	if isPureNumericLiteral(trimmed) {
		return nil, nil
	}
	if looksLikeExpression(trimmed) {
		return ParseExpression(trimmed)
	}
	return nil, nil
}

// isPureNumericLiteral recognizes the literal numeral shapes spec §4.1
// hands straight to numeric.Parse without going through the expression
// parser: integer, decimal, scientific, and simple "n/d" rationals, with
// no internal whitespace.
func isPureNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}
	if i >= len(s) {
		return false
	}
	hasDigit := false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
			i++
		case c == '.' || c == '/':
			i++
		case c == 'e' || c == 'E':
			i++
			if i < len(s) && (s[i] == '+' || s[i] == '-') {
				i++
			}
		default:
			return false
		}
	}
	return hasDigit
}

// looksLikeExpression implements the heuristic of spec §4.2: a bracketed
// list, an identifier-leading token (which also covers function calls,
// since "name(" starts with a letter), or an operator appearing outside
// a leading sign and outside any quoted string, all mark the text as an
// expression rather than a literal.
func looksLikeExpression(s string) bool {
	if strings.HasPrefix(s, "[") {
		return true
	}
	r0, _ := utf8.DecodeRuneInString(s)
	if isIdentStart(r0) {
		return true
	}

	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	inSingle, inDouble := false, false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
			// inside a string literal: not an operator signal.
		case strings.IndexByte("+-*/^<>=!", c) >= 0:
			return true
		}
	}
	return false
}
