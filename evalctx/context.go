// Package evalctx implements the EvalContext C6 threads through a single
// document evaluation: working precision, the external-variable map, a
// shared registry handle, and an optional trace buffer.
package evalctx

import (
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// TraceStep records one cell's evaluation when tracing is enabled.
// Tracing changes no semantics; it only populates this buffer.
type TraceStep struct {
	Cell         string
	Formula      string
	Result       *value.Value
	Dependencies []string
}

// EvalContext is owned exclusively by one document evaluation and never
// shared across evaluations; the Registry it holds a handle to is
// immutable and may be shared across concurrently running evaluations.
type EvalContext struct {
	precision uint32
	variables map[string]*value.Value
	registry  *registry.Registry
	tracing   bool
	trace     []TraceStep
}

// New builds an EvalContext at the default precision (50 digits) with no
// external variables.
func New(reg *registry.Registry) *EvalContext {
	return &EvalContext{precision: 50, variables: map[string]*value.Value{}, registry: reg}
}

// WithVariables returns ctx with its external variable map replaced.
func (ctx *EvalContext) WithVariables(vars map[string]*value.Value) *EvalContext {
	if vars == nil {
		vars = map[string]*value.Value{}
	}
	ctx.variables = vars
	return ctx
}

// WithPrecision sets the default working precision (digits).
func (ctx *EvalContext) WithPrecision(p uint32) *EvalContext {
	if p > 0 {
		ctx.precision = p
	}
	return ctx
}

// WithTracing enables or disables trace recording.
func (ctx *EvalContext) WithTracing(on bool) *EvalContext {
	ctx.tracing = on
	return ctx
}

// Precision returns the context's current working precision.
func (ctx *EvalContext) Precision() uint32 { return ctx.precision }

// SetPrecision temporarily overrides the working precision, for a
// section's @precision attribute (spec §4.5). Callers are expected to
// restore the previous value once the section is done.
func (ctx *EvalContext) SetPrecision(p uint32) (restore func()) {
	prev := ctx.precision
	if p > 0 {
		ctx.precision = p
	}
	return func() { ctx.precision = prev }
}

// Variable looks up an external variable binding.
func (ctx *EvalContext) Variable(name string) (*value.Value, bool) {
	v, ok := ctx.variables[name]
	return v, ok
}

// SetVariable binds name to v in the context's variable map, used when a
// cell's computed result is recorded for later reference.
func (ctx *EvalContext) SetVariable(name string, v *value.Value) {
	ctx.variables[name] = v
}

// Variables returns the full external-variable map.
func (ctx *EvalContext) Variables() map[string]*value.Value { return ctx.variables }

// Registry returns the shared, read-only registry handle.
func (ctx *EvalContext) Registry() *registry.Registry { return ctx.registry }

// Tracing reports whether trace recording is enabled.
func (ctx *EvalContext) Tracing() bool { return ctx.tracing }

// RecordTrace appends a TraceStep when tracing is enabled; it is a no-op
// otherwise.
func (ctx *EvalContext) RecordTrace(step TraceStep) {
	if ctx.tracing {
		ctx.trace = append(ctx.trace, step)
	}
}

// Trace returns the accumulated trace buffer.
func (ctx *EvalContext) Trace() []TraceStep { return ctx.trace }
