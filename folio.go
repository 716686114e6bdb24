// Package folio is the library entry point named in spec §6: parse a
// template, resolve its cells in dependency order, evaluate each one
// with the standard registry, and render the result back to Markdown.
package folio

import (
	"sort"
	"strconv"

	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/depgraph"
	"github.com/foliolang/folio/eval"
	"github.com/foliolang/folio/evalctx"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/parse"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/render"
	"github.com/foliolang/folio/stdfuncs"
	"github.com/foliolang/folio/value"
)

// DefaultPrecision is the working precision (digits) used when Eval is
// called with precision 0, per spec §6's eval() default.
const DefaultPrecision = 50

// EvalResult is the outcome of one document evaluation: the rendered
// Markdown, every cell's computed Value, and the errors/warnings
// accumulated along the way, per spec §6.
type EvalResult struct {
	Markdown string
	Values   map[string]*value.Value
	Errors   []*ferr.FolioError
	Warnings []*ferr.FolioError
}

// NewRegistry builds a Registry carrying the standard function,
// constant, and analyzer library (stdfuncs). Callers that evaluate many
// documents (cmd/foliod) should build one and reuse it via
// EvalWithRegistry, since a Registry is immutable once built and safe
// to share.
func NewRegistry() *registry.Registry {
	reg := registry.New()
	stdfuncs.Register(reg)
	return reg
}

// Eval parses template, resolves and evaluates its cells, and renders
// the result, using a fresh standard registry. This is the convenience
// form of the library entry point in spec §6.
func Eval(template string, variables map[string]*value.Value, precision uint32) *EvalResult {
	return EvalWithRegistry(template, variables, precision, NewRegistry())
}

// EvalWithRegistry is Eval against a caller-supplied Registry, so a host
// that evaluates many documents can build the registry once.
func EvalWithRegistry(template string, variables map[string]*value.Value, precision uint32, reg *registry.Registry) *EvalResult {
	doc, perr := parse.ParseDocument(template)
	if perr != nil {
		return &EvalResult{
			Markdown: "# Error\n\n#ERROR: " + string(perr.Code) + ": " + perr.Message + "\n",
			Values:   map[string]*value.Value{},
			Errors:   []*ferr.FolioError{perr},
		}
	}

	if precision == 0 {
		precision = DefaultPrecision
	}
	ctx := evalctx.New(reg).WithVariables(variables).WithPrecision(precision)

	cells, bySection := flattenCells(doc)
	refs := make([]depgraph.CellRef, len(cells))
	for i, c := range cells {
		refs[i] = depgraph.CellRef{Name: c.Name, Expr: c.Expr}
	}
	order := depgraph.Resolve(refs)

	values := map[string]*value.Value{}
	var diagnostics []*ferr.FolioError

	if len(order.Cycle) > 0 {
		cycleErr := ferr.CircularRef(order.Cycle)
		for _, name := range order.Cycle {
			v := value.Error(cycleErr)
			values[name] = v
			ctx.SetVariable(name, v)
		}
		diagnostics = append(diagnostics, cycleErr)
	}

	byName := make(map[string]*parse.Cell, len(cells))
	for _, c := range cells {
		byName[c.Name] = c
	}

	for _, name := range order.Order {
		cell := byName[name]
		sec := bySection[name]

		restore := ctx.SetPrecision(sectionPrecision(sec, precision))
		v := evalCell(cell, ctx)
		restore()

		values[name] = v
		ctx.SetVariable(name, v)
		if v.IsError() {
			diagnostics = append(diagnostics, v.AsError())
		}
		if ctx.Tracing() {
			ctx.RecordTrace(evalctx.TraceStep{
				Cell:         name,
				Formula:      cell.Raw,
				Result:       v,
				Dependencies: ast.RootIdentifiers(cell.Expr),
			})
		}
	}

	md := renderDocument(doc, variables, values)

	var errs, warnings []*ferr.FolioError
	for _, d := range diagnostics {
		if d.Severity == ferr.Warning {
			warnings = append(warnings, d)
		} else {
			errs = append(errs, d)
		}
	}

	return &EvalResult{Markdown: md, Values: values, Errors: errs, Warnings: warnings}
}

// evalCell evaluates a single cell: a literal cell takes its value from
// an external-variable override if one was supplied for its name (spec
// §8 P4), otherwise from interpreting its raw text; a formula cell is
// evaluated as an expression.
func evalCell(cell *parse.Cell, ctx *evalctx.EvalContext) *value.Value {
	if cell.Expr == nil {
		if bound, ok := ctx.Variable(cell.Name); ok {
			return bound
		}
		return eval.EvalLiteral(cell.Raw)
	}
	return eval.Eval(cell.Expr, ctx)
}

// flattenCells collects every cell across every section of doc, in
// document order, along with a name-to-section lookup so each cell can
// be evaluated under its own section's @precision attribute. Dependency
// resolution itself runs once over the flattened set: a formula may
// reference a cell defined in any section of the document, per spec
// §4.4/§8 P3.
func flattenCells(doc *parse.Document) ([]*parse.Cell, map[string]*parse.Section) {
	var cells []*parse.Cell
	bySection := map[string]*parse.Section{}
	for _, sec := range doc.Sections {
		for _, c := range sec.Cells {
			cells = append(cells, c)
			bySection[c.Name] = sec
		}
	}
	return cells, bySection
}

func sectionPrecision(sec *parse.Section, fallback uint32) uint32 {
	raw, ok := sec.Attrs["precision"]
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(n)
}

// renderDocument builds the render package's input from doc's sections
// plus the externally supplied variables and every cell's computed
// value, and renders it to Markdown.
func renderDocument(doc *parse.Document, variables map[string]*value.Value, values map[string]*value.Value) string {
	externals := make([]render.CellResult, 0, len(variables))
	for _, name := range sortedKeys(variables) {
		externals = append(externals, render.CellResult{Name: name, Formula: "(external)", Value: variables[name]})
	}

	sections := make([]render.SectionResult, 0, len(doc.Sections))
	for _, sec := range doc.Sections {
		attrs := make([]render.AttrPair, 0, len(sec.Attrs))
		for _, key := range sortedKeys(sec.Attrs) {
			attrs = append(attrs, render.AttrPair{Key: key, Value: sec.Attrs[key]})
		}
		cells := make([]render.CellResult, 0, len(sec.Cells))
		for _, c := range sec.Cells {
			cells = append(cells, render.CellResult{Name: c.Name, Formula: c.Raw, Value: values[c.Name]})
		}
		sections = append(sections, render.SectionResult{Name: sec.Name, Attrs: attrs, Cells: cells})
	}

	return render.Document(externals, sections)
}

// sortedKeys returns m's keys (string-keyed, any value type) sorted, so
// rendering and introspection output is deterministic regardless of Go's
// randomized map iteration order, per spec §8 P1.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
