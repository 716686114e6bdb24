package evalctx

import (
	"testing"

	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

func TestDefaultPrecision(t *testing.T) {
	ctx := New(registry.New())
	if ctx.Precision() != 50 {
		t.Errorf("default precision = %d, want 50", ctx.Precision())
	}
}

func TestSetPrecisionRestores(t *testing.T) {
	ctx := New(registry.New()).WithPrecision(50)
	restore := ctx.SetPrecision(10)
	if ctx.Precision() != 10 {
		t.Fatalf("precision = %d, want 10", ctx.Precision())
	}
	restore()
	if ctx.Precision() != 50 {
		t.Fatalf("precision after restore = %d, want 50", ctx.Precision())
	}
}

func TestVariableLookup(t *testing.T) {
	ctx := New(registry.New()).WithVariables(map[string]*value.Value{"x": value.Bool(true)})
	v, ok := ctx.Variable("x")
	if !ok || !v.Bool {
		t.Fatal("expected variable 'x' to resolve to true")
	}
	if _, ok := ctx.Variable("y"); ok {
		t.Fatal("expected lookup miss for unbound variable")
	}
}

func TestTracingDisabledByDefault(t *testing.T) {
	ctx := New(registry.New())
	ctx.RecordTrace(TraceStep{Cell: "a"})
	if len(ctx.Trace()) != 0 {
		t.Fatal("expected no trace steps recorded while tracing disabled")
	}
}

func TestTracingRecordsSteps(t *testing.T) {
	ctx := New(registry.New()).WithTracing(true)
	ctx.RecordTrace(TraceStep{Cell: "a", Dependencies: []string{"b"}})
	if len(ctx.Trace()) != 1 || ctx.Trace()[0].Cell != "a" {
		t.Fatalf("expected recorded trace step, got %+v", ctx.Trace())
	}
}
