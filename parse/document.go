package parse

import (
	"strings"

	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/ferr"
)

// Cell is a named row in a section's table: either a literal (Expr is
// nil) or a parsed formula.
type Cell struct {
	Name string
	Expr *ast.Expr
	Raw  string
}

// Section is a "# "/"## "-headed block with per-section attributes and
// the ordered cells of its table.
type Section struct {
	Name  string
	Attrs map[string]string
	Cells []*Cell
}

// Document is the ordered sequence of Sections a template parses into.
type Document struct {
	Sections []*Section
}

// DefaultSectionName is the synthetic section any content appearing
// before the first header is collected under.
const DefaultSectionName = "Default"

// ParseDocument parses a Folio template: section headers, per-section
// attribute tails, and pipe-delimited cell tables, per spec §4.2.
func ParseDocument(source string) (*Document, *ferr.FolioError) {
	lines := strings.Split(source, "\n")
	doc := &Document{}
	current := &Section{Name: DefaultSectionName, Attrs: map[string]string{}}
	hasCurrentContent := false

	flush := func() {
		if hasCurrentContent || len(current.Cells) > 0 {
			doc.Sections = append(doc.Sections, current)
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if isHeaderLine(trimmed) {
			flush()
			name, attrs := parseHeader(trimmed)
			current = &Section{Name: name, Attrs: attrs}
			hasCurrentContent = false
			i++
			continue
		}

		if strings.HasPrefix(trimmed, "|") {
			cells, consumed, err := parseTable(lines, i)
			if err != nil {
				return nil, err
			}
			current.Cells = append(current.Cells, cells...)
			hasCurrentContent = true
			i += consumed
			continue
		}

		if trimmed != "" {
			hasCurrentContent = true
		}
		i++
	}
	flush()
	return doc, nil
}

func isHeaderLine(trimmed string) bool {
	if strings.HasPrefix(trimmed, "## ") {
		return true
	}
	if strings.HasPrefix(trimmed, "# ") {
		return true
	}
	return false
}

// parseHeader splits a header line into its section name and attribute
// map. "# " and "## " are equivalent. Attribute fields look like
// "@key:value" and may be separated by whitespace or commas.
func parseHeader(trimmed string) (string, map[string]string) {
	rest := strings.TrimLeft(trimmed, "#")
	rest = strings.TrimSpace(rest)

	attrs := map[string]string{}
	nameFields := []string{}
	for _, field := range strings.Fields(rest) {
		for _, part := range strings.Split(field, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.HasPrefix(part, "@") {
				kv := strings.SplitN(part[1:], ":", 2)
				if len(kv) == 2 {
					attrs[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
				}
				continue
			}
			if len(attrs) == 0 {
				nameFields = append(nameFields, part)
			}
		}
	}
	name := strings.Join(nameFields, " ")
	if name == "" {
		name = DefaultSectionName
	}
	return name, attrs
}

// parseTable reads a pipe-delimited header row, a separator row, and the
// data rows that follow, starting at lines[start]. It returns the parsed
// cells and how many lines were consumed. Parsing stops at a blank line.
func parseTable(lines []string, start int) ([]*Cell, int, *ferr.FolioError) {
	i := start
	if i >= len(lines) {
		return nil, 0, nil
	}
	// header row (column names are not otherwise used by the core).
	i++
	if i < len(lines) && isSeparatorRow(lines[i]) {
		i++
	}

	var cells []*Cell
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			break
		}
		if !strings.HasPrefix(trimmed, "|") {
			break
		}
		cols := splitRow(trimmed)
		if len(cols) < 2 {
			return nil, 0, ferr.Fatalf(ferr.CodeParseError, "table row %q needs at least a name and a formula column", trimmed)
		}
		name := strings.TrimSpace(cols[0])
		raw := strings.TrimSpace(cols[1])
		expr, err := ParseCellText(raw)
		if err != nil {
			return nil, 0, err
		}
		cells = append(cells, &Cell{Name: name, Expr: expr, Raw: raw})
		i++
	}
	return cells, i - start, nil
}

// isSeparatorRow reports whether line contains only pipes, dashes,
// colons, and whitespace, per spec §4.2's table-separator grammar.
func isSeparatorRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '|' && r != '-' && r != ':' && r != ' ' && r != '\t' {
			return false
		}
	}
	return strings.ContainsRune(trimmed, '-')
}

func splitRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	return strings.Split(trimmed, "|")
}
