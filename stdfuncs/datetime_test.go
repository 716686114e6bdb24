package stdfuncs

import (
	"testing"

	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

func TestDateConstructsMidnight(t *testing.T) {
	y := value.Number(numeric.New(2025, 0))
	m := value.Number(numeric.New(7, 0))
	d := value.Number(numeric.New(4, 0))
	got := dateFn{}.Call([]*value.Value{y, m, d}, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.DateTime.Year() != 2025 || got.DateTime.Month() != 7 || got.DateTime.Day() != 4 {
		t.Errorf("got %s", got.DateTime.String())
	}
}

func TestDateRejectsInvalidMonth(t *testing.T) {
	y := value.Number(numeric.New(2025, 0))
	m := value.Number(numeric.New(13, 0))
	d := value.Number(numeric.New(1, 0))
	got := dateFn{}.Call([]*value.Value{y, m, d}, newCtx())
	if !got.IsError() {
		t.Fatal("expected INVALID_DATE for month 13")
	}
}

func TestDaysBuildsDuration(t *testing.T) {
	got := daysFn{}.Call([]*value.Value{value.Number(numeric.New(3, 0))}, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Duration.AsDays() != 3 {
		t.Errorf("got %v days, want 3", got.Duration.AsDays())
	}
}

func TestNowReturnsDateTime(t *testing.T) {
	got := nowFn{}.Call(nil, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Kind != value.KindDateTime {
		t.Fatalf("expected DateTime, got %v", got.Kind)
	}
}

func TestEomReturnsMonthEnd(t *testing.T) {
	dt := dateFn{}.Call([]*value.Value{
		value.Number(numeric.New(2025, 0)),
		value.Number(numeric.New(2, 0)),
		value.Number(numeric.New(10, 0)),
	}, newCtx())
	got := eomFn{}.Call([]*value.Value{dt}, newCtx())
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.DateTime.Day() != 28 {
		t.Errorf("eom(2025-02-10).Day() = %d, want 28", got.DateTime.Day())
	}
}
