package stdfuncs

import (
	"testing"

	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

func TestRangeAscending(t *testing.T) {
	start := value.Number(numeric.New(0, 0))
	end := value.Number(numeric.New(5, 0))
	got := rangeFn{}.Call([]*value.Value{start, end}, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if len(got.List) != 5 {
		t.Fatalf("got %d elements, want 5", len(got.List))
	}
	if i, _ := got.List[4].Num.ToI64(); i != 4 {
		t.Errorf("last element = %d, want 4", i)
	}
}

func TestRangeWithStep(t *testing.T) {
	start := value.Number(numeric.New(0, 0))
	end := value.Number(numeric.New(10, 0))
	step := value.Number(numeric.New(2, 0))
	got := rangeFn{}.Call([]*value.Value{start, end, step}, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if len(got.List) != 5 {
		t.Fatalf("got %d elements, want 5", len(got.List))
	}
}

func TestRangeZeroStepIsError(t *testing.T) {
	start := value.Number(numeric.New(0, 0))
	end := value.Number(numeric.New(5, 0))
	step := value.Number(numeric.New(0, 0))
	got := rangeFn{}.Call([]*value.Value{start, end, step}, newCtx())
	if !got.IsError() {
		t.Fatal("expected DOMAIN_ERROR for zero step")
	}
}

func TestFirstAndLast(t *testing.T) {
	list := numList(1, 2, 3)
	f := firstFn{}.Call([]*value.Value{list}, newCtx())
	l := lastFn{}.Call([]*value.Value{list}, newCtx())
	if i, _ := f.Num.ToI64(); i != 1 {
		t.Errorf("first = %d, want 1", i)
	}
	if i, _ := l.Num.ToI64(); i != 3 {
		t.Errorf("last = %d, want 3", i)
	}
}

func TestFirstOnEmptyListIsError(t *testing.T) {
	got := firstFn{}.Call([]*value.Value{value.List(nil)}, newCtx())
	if !got.IsError() {
		t.Fatal("expected DOMAIN_ERROR for empty list")
	}
}
