// Package render turns an evaluated document back into Markdown, per
// spec §4.6: an External Variables table (when any were supplied),
// followed by one section per input section, each restoring its
// attribute tail and rendering its cells as a three-column table.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/foliolang/folio/value"
)

// CellResult pairs a cell's name and source formula with its evaluated
// value, for one row of a section's output table.
type CellResult struct {
	Name    string
	Formula string
	Value   *value.Value
}

// SectionResult is one rendered section: its name, its attribute tail
// (an ordered slice, rendered in the order the caller supplies it; the
// parsed attribute map keeps no original order), and its cell rows.
type SectionResult struct {
	Name  string
	Attrs []AttrPair
	Cells []CellResult
}

// AttrPair is one "@key:value" entry in a section's header tail.
type AttrPair struct {
	Key, Value string
}

const defaultDecimalPlaces = 10

// Document renders the full Markdown output: an External Variables
// table first (omitted if externals is empty), then one table per
// section.
func Document(externals []CellResult, sections []SectionResult) string {
	var b strings.Builder
	if len(externals) > 0 {
		b.WriteString("# External Variables\n\n")
		writeTable(&b, externals, numberFormat{places: defaultDecimalPlaces}, dateFormat{})
		b.WriteString("\n")
	}
	for i, sec := range sections {
		if i > 0 || len(externals) > 0 {
			b.WriteString("\n")
		}
		writeSectionHeader(&b, sec)
		nf := numberFormatFor(sec.Attrs)
		df := dateFormatFor(sec.Attrs)
		writeTable(&b, sec.Cells, nf, df)
	}
	return b.String()
}

func writeSectionHeader(b *strings.Builder, sec SectionResult) {
	b.WriteString("# ")
	b.WriteString(sec.Name)
	for _, a := range sec.Attrs {
		b.WriteString(fmt.Sprintf(" @%s:%s", a.Key, a.Value))
	}
	b.WriteString("\n\n")
}

func writeTable(b *strings.Builder, cells []CellResult, nf numberFormat, df dateFormat) {
	b.WriteString("| name | formula | result |\n")
	b.WriteString("|------|---------|--------|\n")
	for _, c := range cells {
		b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", c.Name, c.Formula, FormatValue(c.Value, nf, df)))
	}
}

// numberFormat carries the per-section number-rendering mode: either
// fixed decimal places (the default) or a significant-figures count
// when the section's header specifies @sigfigs.
type numberFormat struct {
	sigfigs int
	places  int
}

// DefaultNumberFormat returns the fixed-decimal-places mode FormatValue
// uses when a section carries no @sigfigs attribute, for callers
// formatting a Value outside of Document's own per-section rendering
// (e.g. cmd/foliod's wire responses).
func DefaultNumberFormat() numberFormat { return numberFormat{places: defaultDecimalPlaces} }

// DefaultDateFormat returns the ISO-8601 default date/time rendering
// mode, for the same out-of-section use as DefaultNumberFormat.
func DefaultDateFormat() dateFormat { return dateFormat{} }

func numberFormatFor(attrs []AttrPair) numberFormat {
	for _, a := range attrs {
		if a.Key == "sigfigs" {
			if n, err := strconv.Atoi(a.Value); err == nil {
				return numberFormat{sigfigs: n}
			}
		}
	}
	return numberFormat{places: defaultDecimalPlaces}
}

type dateFormat struct {
	dateLayout     string
	timeLayout     string
	datetimeLayout string
}

func dateFormatFor(attrs []AttrPair) dateFormat {
	var df dateFormat
	for _, a := range attrs {
		switch a.Key {
		case "dateFmt":
			df.dateLayout = a.Value
		case "timeFmt":
			df.timeLayout = a.Value
		case "datetimeFmt":
			df.datetimeLayout = a.Value
		}
	}
	return df
}

// FormatValue renders a single Value for a result column, per spec
// §4.6's per-Kind rendering rules.
func FormatValue(v *value.Value, nf numberFormat, df dateFormat) string {
	if v == nil {
		return "null"
	}
	switch v.Kind {
	case value.KindNumber:
		if nf.sigfigs > 0 {
			return v.Num.DisplaySigFigs(nf.sigfigs)
		}
		return v.Num.Display(nf.places)
	case value.KindText:
		return v.Text
	case value.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case value.KindDateTime:
		layout := df.datetimeLayout
		if layout == "" {
			layout = df.dateLayout
		}
		if layout == "" {
			return v.DateTime.String()
		}
		return v.DateTime.Format(layout)
	case value.KindDuration:
		return v.Duration.Format()
	case value.KindObject:
		return "[Object]"
	case value.KindList:
		return formatList(v.List, nf, df)
	case value.KindNull:
		return "null"
	case value.KindError:
		return "#ERROR: " + string(v.Err.Code)
	default:
		return ""
	}
}

func formatList(items []*value.Value, nf numberFormat, df dateFormat) string {
	if len(items) > 5 {
		return fmt.Sprintf("[%d]", len(items))
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = FormatValue(it, nf, df)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
