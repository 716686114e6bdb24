package eval

import (
	"testing"

	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/evalctx"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/parse"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// dateFn/daysFn are minimal stand-ins for the stdfuncs date()/days()
// functions, just enough to exercise DateTime/Duration dispatch here
// without importing stdfuncs (which itself exercises eval).
type dateFn struct{}

func (dateFn) Meta() registry.FunctionMeta { return registry.FunctionMeta{Name: "date"} }
func (dateFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	y, _ := args[0].Num.ToI64()
	m, _ := args[1].Num.ToI64()
	d, _ := args[2].Num.ToI64()
	dt, err := datetime.Date(y, int(m), int(d))
	if err != nil {
		return value.Error(ferr.Wrap(ferr.CodeInvalidDate, err, err.Error()))
	}
	return value.DateTimeVal(dt)
}

type daysFn struct{}

func (daysFn) Meta() registry.FunctionMeta { return registry.FunctionMeta{Name: "days"} }
func (daysFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	n, _ := args[0].Num.ToI64()
	return value.DurationVal(datetime.Days(n))
}

func mustParse(t *testing.T, src string) *value.Value {
	t.Helper()
	e, err := parse.ParseExpression(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	ctx := evalctx.New(registry.New())
	return Eval(e, ctx)
}

func TestSimpleArithmetic(t *testing.T) {
	v := mustParse(t, "10 + 32")
	if v.IsError() {
		t.Fatal(v.AsError())
	}
	i, _ := v.Num.ToI64()
	if i != 42 {
		t.Errorf("got %d, want 42", i)
	}
}

func TestDivisionByZero(t *testing.T) {
	v := mustParse(t, "1 / 0")
	if !v.IsError() || v.AsError().Code != ferr.CodeDivZero {
		t.Fatalf("expected DIV_ZERO, got %+v", v)
	}
}

func TestUndefinedVariable(t *testing.T) {
	v := mustParse(t, "nonexistent_cell_name")
	if !v.IsError() || v.AsError().Code != ferr.CodeUndefinedVar {
		t.Fatalf("expected UNDEFINED_VAR, got %+v", v)
	}
}

func TestUndefinedFunction(t *testing.T) {
	v := mustParse(t, "bogus_fn(1)")
	if !v.IsError() || v.AsError().Code != ferr.CodeUndefinedFunc {
		t.Fatalf("expected UNDEFINED_FUNC, got %+v", v)
	}
}

func TestErrorPropagationThroughBinaryOp(t *testing.T) {
	v := mustParse(t, "(1/0) + 1")
	if !v.IsError() {
		t.Fatal("expected error to propagate through +")
	}
	if v.AsError().Code != ferr.CodeDivZero {
		t.Errorf("expected original DIV_ZERO code preserved, got %s", v.AsError().Code)
	}
	notes := v.AsError().NoteChain()
	if len(notes) == 0 || notes[len(notes)-1] != "from left operand" {
		t.Errorf("expected propagation note 'from left operand', got %v", notes)
	}
}

func TestExternalVariableOverride(t *testing.T) {
	reg := registry.New()
	ctx := evalctx.New(reg).WithVariables(map[string]*value.Value{
		"principal": value.Number(numeric.New(5000, 0)),
	})
	e, err := parse.ParseExpression("principal * 2")
	if err != nil {
		t.Fatal(err)
	}
	got := Eval(e, ctx)
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	i, _ := got.Num.ToI64()
	if i != 10000 {
		t.Errorf("got %d, want 10000", i)
	}
}

func TestPiConstantResolves(t *testing.T) {
	reg := registry.New()
	reg.RegisterConstant(registry.Constant{Name: "pi", Formula: "pi"})
	ctx := evalctx.New(reg).WithPrecision(10)
	e, _ := parse.ParseExpression("pi")
	got := Eval(e, ctx)
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Num.Display(5) != numeric.Pi(10).Display(5) {
		t.Errorf("pi mismatch: %s", got.Num.Display(5))
	}
}

func TestDateTimeMinusDateTimeYieldsDuration(t *testing.T) {
	reg := registry.New()
	reg.RegisterFunction(&dateFn{})
	reg.RegisterFunction(&daysFn{})
	ctx := evalctx.New(reg)
	e, err := parse.ParseExpression("date(2025, 7, 1) - date(2025, 6, 1)")
	if err != nil {
		t.Fatal(err)
	}
	got := Eval(e, ctx)
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Kind != value.KindDuration {
		t.Fatalf("expected Duration, got %v", got.Kind)
	}
	if days := got.Duration.AsDays(); days != 30 {
		t.Errorf("gap = %v days, want 30", days)
	}
}
