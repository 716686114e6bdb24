// Package registry holds Folio's pluggable surface: functions, commands,
// named constants, and analyzers, looked up by case-normalized name with
// Unicode/ASCII alias support, per spec §4.3. Once built a Registry is
// read-only and safe to share across concurrent evaluations.
package registry

import (
	"strings"

	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

// Context is the narrow view of an evaluation a plugin needs. It is
// satisfied by evalctx.EvalContext; registry does not import evalctx
// itself, which is what lets evalctx hold a Registry handle without a
// import cycle between the two packages.
type Context interface {
	Precision() uint32
	Variable(name string) (*value.Value, bool)
	Tracing() bool
	Registry() *Registry
}

// ArgMeta documents one formal argument of a function.
type ArgMeta struct {
	Name        string
	Type        string
	Description string
	Optional    bool
	Default     string
}

// FunctionMeta is the self-describing metadata every function plugin
// carries, per the function plugin contract of spec §6.
type FunctionMeta struct {
	Name        string
	Description string
	Usage       string
	Args        []ArgMeta
	Returns     string
	Examples    []string
	Category    string
	Source      string
	Related     []string
	// Aliases are additional names (typically ASCII transliterations of
	// a Unicode name) that resolve to the same Function.
	Aliases []string
}

// Function is the call contract: receive evaluated arguments and the
// context, return a Value. Implementations must never panic; arity and
// type mismatches are reported through the standard ARG_COUNT/ARG_TYPE
// constructors in ferr.
type Function interface {
	Meta() FunctionMeta
	Call(args []*value.Value, ctx Context) *value.Value
}

// AnalyzerMeta is the self-describing metadata an analyzer plugin
// carries, per the analyzer plugin contract of spec §6.
type AnalyzerMeta struct {
	Name        string
	Description string
	Detects     []string
}

// Analyzer inspects a Number and, when confident enough, contributes a
// pattern-decomposition Object to the evaluator's output, per spec §9.
type Analyzer interface {
	Meta() AnalyzerMeta
	Confidence(n *numeric.Number, ctx Context) float64
	Analyze(n *numeric.Number, ctx Context) *value.Value
}

// CommandMeta documents a command plugin.
type CommandMeta struct {
	Name        string
	Description string
}

// Command is the "execute" capability named alongside call and
// confidence+analyze in spec §9's plugin dispatch design note.
type Command interface {
	Meta() CommandMeta
	Execute(args []*value.Value, ctx Context) *value.Value
}

// Constant is a named value resolvable at a given precision. Formula is
// either a literal numeric form ("299792458") or a keyword the
// evaluator recognizes ("pi", "exp(1)", "sqrt(2)", "sqrt(3)",
// "(1 + sqrt(5)) / 2"), per spec §4.3/§6.
type Constant struct {
	Name     string
	Formula  string
	Source   string
	Category string
	Aliases  []string
}

// Registry is the immutable-after-construction lookup table for
// functions, commands, constants, and analyzers.
type Registry struct {
	functions map[string]Function
	commands  map[string]Command
	constants map[string]Constant
	analyzers []Analyzer
}

// New returns an empty Registry ready for Register* calls.
func New() *Registry {
	return &Registry{
		functions: map[string]Function{},
		commands:  map[string]Command{},
		constants: map[string]Constant{},
	}
}

func normalize(name string) string { return strings.ToLower(name) }

// RegisterFunction adds fn under its own name and every alias its Meta
// declares.
func (r *Registry) RegisterFunction(fn Function) {
	meta := fn.Meta()
	r.functions[normalize(meta.Name)] = fn
	for _, alias := range meta.Aliases {
		r.functions[normalize(alias)] = fn
	}
}

// RegisterCommand adds cmd under its own name.
func (r *Registry) RegisterCommand(cmd Command) {
	r.commands[normalize(cmd.Meta().Name)] = cmd
}

// RegisterConstant adds c under its own name and every declared alias.
func (r *Registry) RegisterConstant(c Constant) {
	r.constants[normalize(c.Name)] = c
	for _, alias := range c.Aliases {
		r.constants[normalize(alias)] = c
	}
}

// RegisterAnalyzer appends a to the ordered analyzer list.
func (r *Registry) RegisterAnalyzer(a Analyzer) {
	r.analyzers = append(r.analyzers, a)
}

// Function looks up a function by case-normalized name.
func (r *Registry) Function(name string) (Function, bool) {
	fn, ok := r.functions[normalize(name)]
	return fn, ok
}

// Command looks up a command by case-normalized name.
func (r *Registry) Command(name string) (Command, bool) {
	cmd, ok := r.commands[normalize(name)]
	return cmd, ok
}

// Constant looks up a constant by case-normalized name.
func (r *Registry) Constant(name string) (Constant, bool) {
	c, ok := r.constants[normalize(name)]
	return c, ok
}

// Analyzers returns the ordered analyzer list.
func (r *Registry) Analyzers() []Analyzer { return r.analyzers }

// FunctionNames returns every distinct registered function name
// (including aliases), for list_functions() introspection.
func (r *Registry) FunctionNames() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}

// ConstantNames returns every distinct registered constant name
// (including aliases), for list_constants() introspection.
func (r *Registry) ConstantNames() []string {
	names := make([]string, 0, len(r.constants))
	for name := range r.constants {
		names = append(names, name)
	}
	return names
}
