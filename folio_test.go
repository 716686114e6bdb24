package folio

import (
	"strings"
	"testing"

	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/value"
)

func TestEvalSimpleArithmetic(t *testing.T) {
	template := "## T\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| a | 10 | |\n" +
		"| b | 32 | |\n" +
		"| c | =a + b | |\n"

	res := Eval(template, nil, 0)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	c := res.Values["c"]
	if c == nil || c.IsError() {
		t.Fatalf("expected c to evaluate, got %+v", c)
	}
	if c.Num.DisplayFixed(0) != "42" {
		t.Errorf("got %q, want 42", c.Num.DisplayFixed(0))
	}
}

func TestEvalExternalOverride(t *testing.T) {
	template := "## Loan\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| principal | 300000 | |\n" +
		"| doubled | =principal * 2 | |\n"

	vars := map[string]*value.Value{"principal": numVal(t, "5000")}
	res := Eval(template, vars, 0)

	if got := res.Values["principal"]; got == nil || got.Num.DisplayFixed(0) != "5000" {
		t.Fatalf("expected overridden principal 5000, got %+v", got)
	}
	if got := res.Values["doubled"]; got == nil || got.Num.DisplayFixed(0) != "10000" {
		t.Fatalf("expected doubled 10000, got %+v", got)
	}
}

func TestEvalCycleIsolated(t *testing.T) {
	template := "## Cyc\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| x | =y + 1 | |\n" +
		"| y | =x + 1 | |\n" +
		"| z | 7 | |\n"

	res := Eval(template, nil, 0)

	x := res.Values["x"]
	y := res.Values["y"]
	if !x.IsError() || x.AsError().Code != ferr.CodeCircularRef {
		t.Errorf("expected x to be CIRCULAR_REF, got %+v", x)
	}
	if !y.IsError() || y.AsError().Code != ferr.CodeCircularRef {
		t.Errorf("expected y to be CIRCULAR_REF, got %+v", y)
	}
	z := res.Values["z"]
	if z == nil || z.IsError() {
		t.Errorf("expected z to evaluate normally despite the x/y cycle, got %+v", z)
	}
}

func TestEvalScientificMantissaPrecision(t *testing.T) {
	template := "## Sci\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| av | 602214076e15 | |\n"

	res := Eval(template, nil, 0)
	av := res.Values["av"]
	if av == nil || av.IsError() {
		t.Fatalf("expected av to evaluate, got %+v", av)
	}
	if got := av.Num.DisplaySigFigs(4); got != "6.022E23" {
		t.Errorf("got %q, want 6.022E23", got)
	}
}

func TestEvalDateTimeArithmetic(t *testing.T) {
	template := "## Dates\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| d1 | =date(2025, 6, 1) | |\n" +
		"| d2 | =d1 + days(30) | |\n" +
		"| gap | =d2 - d1 | |\n"

	res := Eval(template, nil, 0)
	d2 := res.Values["d2"]
	if d2 == nil || d2.IsError() {
		t.Fatalf("expected d2 to evaluate, got %+v", d2)
	}
	if got := d2.DateTime.String(); !strings.HasPrefix(got, "2025-07-01") {
		t.Errorf("got %q, want a 2025-07-01 date", got)
	}
	gap := res.Values["gap"]
	if gap == nil || gap.IsError() || gap.Kind != value.KindDuration {
		t.Fatalf("expected gap to be a Duration, got %+v", gap)
	}
	if gap.Duration.AsDays() != 30 {
		t.Errorf("got %v days, want 30", gap.Duration.AsDays())
	}
}

func TestEvalSectionPrecisionAndSigfigs(t *testing.T) {
	template := "## X @precision:50 @sigfigs:6\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| pi_val | =pi | |\n"

	res := Eval(template, nil, 0)
	if !strings.Contains(res.Markdown, "3.14159") {
		t.Errorf("expected rendered markdown to contain 3.14159, got:\n%s", res.Markdown)
	}
}

func TestEvalIsDeterministic(t *testing.T) {
	template := "## D\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| a | 10 | |\n" +
		"| b | =a * 2 | |\n"

	r1 := Eval(template, nil, 0)
	r2 := Eval(template, nil, 0)
	if r1.Markdown != r2.Markdown {
		t.Errorf("expected identical markdown across two evaluations")
	}
	if r1.Values["b"].Num.DisplayFixed(0) != r2.Values["b"].Num.DisplayFixed(0) {
		t.Errorf("expected identical values across two evaluations")
	}
}

func TestEvalEmptyDocument(t *testing.T) {
	res := Eval("", nil, 0)
	if len(res.Values) != 0 {
		t.Errorf("expected no cells, got %+v", res.Values)
	}
	if res.Markdown != "" {
		t.Errorf("expected empty markdown, got %q", res.Markdown)
	}
}

func TestEvalUnknownFunctionDoesNotPanic(t *testing.T) {
	template := "## U\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| a | =bogus(1, 2) | |\n"

	res := Eval(template, nil, 0)
	a := res.Values["a"]
	if !a.IsError() || a.AsError().Code != ferr.CodeUndefinedFunc {
		t.Errorf("expected UNDEFINED_FUNC, got %+v", a)
	}
}

func TestEvalErrorPropagationNoteChain(t *testing.T) {
	template := "## P\n" +
		"| name | formula | result |\n" +
		"|------|---------|--------|\n" +
		"| a | =1 / 0 | |\n" +
		"| b | =a + 1 | |\n"

	res := Eval(template, nil, 0)
	b := res.Values["b"]
	if !b.IsError() {
		t.Fatalf("expected b to be an Error, got %+v", b)
	}
	if b.AsError().Code != ferr.CodeDivZero {
		t.Errorf("expected propagated DIV_ZERO, got %s", b.AsError().Code)
	}
	found := false
	for _, note := range b.AsError().NoteChain() {
		if strings.Contains(note, "operand") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a propagation note, got %+v", b.AsError().NoteChain())
	}
}

func numVal(t *testing.T, s string) *value.Value {
	t.Helper()
	template := "## S\n| name | formula | result |\n|------|---------|--------|\n| n | " + s + " | |\n"
	v := Eval(template, nil, 0).Values["n"]
	if v == nil || v.IsError() {
		t.Fatalf("failed to build numeric test value from %q: %+v", s, v)
	}
	return v
}
