package eval

import (
	"testing"

	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

func TestDurationTimesNumberExact(t *testing.T) {
	d := datetime.Days(2)
	got := durationNumberOp(ast.Mul, d, numeric.New(3, 0))
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Duration.AsDays() != 6 {
		t.Errorf("got %v days, want 6", got.Duration.AsDays())
	}
}

func TestDurationDivZeroNumber(t *testing.T) {
	d := datetime.Hours(1)
	got := durationNumberOp(ast.Div, d, numeric.New(0, 0))
	if !got.IsError() || got.AsError().Code != ferr.CodeDivZero {
		t.Fatalf("expected DIV_ZERO, got %+v", got)
	}
}

func TestDurationOverDurationYieldsNumber(t *testing.T) {
	a := datetime.Hours(6)
	b := datetime.Hours(2)
	got := durationDurationOp(ast.Div, a, b)
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	i, _ := got.Num.ToI64()
	if i != 3 {
		t.Errorf("got %d, want 3", i)
	}
}

func TestDateTimePlusDateTimeIsTypeError(t *testing.T) {
	d1, _ := datetime.Date(2025, 1, 1)
	d2, _ := datetime.Date(2025, 1, 2)
	got := dateTimeDateTimeOp(ast.Add, d1, d2)
	if !got.IsError() || got.AsError().Code != ferr.CodeTypeError {
		t.Fatalf("expected TYPE_ERROR, got %+v", got)
	}
}

func TestNumberComparisons(t *testing.T) {
	got := numberOp(ast.Lt, numeric.New(1, 0), numeric.New(2, 0), nil)
	if got.IsError() || !got.Bool {
		t.Fatalf("expected 1 < 2 == true, got %+v", got)
	}
}

func TestMismatchedTypesYieldTypeError(t *testing.T) {
	got := dispatchBinary(ast.Add, value.Text("x"), value.Bool(true), nil)
	if !got.IsError() || got.AsError().Code != ferr.CodeTypeError {
		t.Fatalf("expected TYPE_ERROR, got %+v", got)
	}
}
