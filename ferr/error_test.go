package ferr

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := New(CodeDivZero, "division by zero")
	if got := e.Error(); got != "DIV_ZERO: division by zero" {
		t.Errorf("Error() = %q, want %q", got, "DIV_ZERO: division by zero")
	}
}

func TestErrorStringWithNotes(t *testing.T) {
	e := New(CodeDivZero, "division by zero").Note("from left operand")
	want := "DIV_ZERO: division by zero (from left operand)"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewDefaultsToErrorSeverity(t *testing.T) {
	e := New(CodeTypeError, "bad type")
	if e.Severity != Error {
		t.Errorf("Severity = %v, want Error", e.Severity)
	}
}

func TestFatalfSetsFatalSeverity(t *testing.T) {
	e := Fatalf(CodeCircularRef, "cycle detected")
	if e.Severity != Fatal {
		t.Errorf("Severity = %v, want Fatal", e.Severity)
	}
}

func TestPropagateAccumulatesNotes(t *testing.T) {
	e := New(CodeDivZero, "division by zero")
	p1 := e.Propagate("from left operand")
	p2 := p1.Propagate("in argument 1 of mean()")

	if len(e.NoteChain()) != 0 {
		t.Errorf("Propagate should not mutate the original: got %v", e.NoteChain())
	}
	if got := p1.NoteChain(); len(got) != 1 || got[0] != "from left operand" {
		t.Errorf("p1.NoteChain() = %v", got)
	}
	got := p2.NoteChain()
	want := []string{"from left operand", "in argument 1 of mean()"}
	if len(got) != len(want) {
		t.Fatalf("p2.NoteChain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("p2.NoteChain()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if p2.Code != CodeDivZero {
		t.Errorf("Propagate changed Code to %v", p2.Code)
	}
}

func TestNoteMutatesInPlace(t *testing.T) {
	e := New(CodeDomainError, "out of domain")
	e.Note("in sqrt()")
	if got := e.NoteChain(); len(got) != 1 || got[0] != "in sqrt()" {
		t.Errorf("NoteChain() = %v", got)
	}
}

func TestWithSuggestionAndContext(t *testing.T) {
	e := New(CodeUndefinedVar, "undefined variable").
		WithSuggestion("did you mean total?").
		WithContext(&Context{Cell: "x", Line: 3})
	if e.Suggestion != "did you mean total?" {
		t.Errorf("Suggestion = %q", e.Suggestion)
	}
	if e.Context == nil || e.Context.Cell != "x" || e.Context.Line != 3 {
		t.Errorf("Context = %+v", e.Context)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	root := errors.New("strconv: invalid syntax")
	e := Wrap(CodeParseError, root, "could not parse number")
	if e.Cause() == nil {
		t.Fatal("expected a non-nil Cause()")
	}
	if !strings.Contains(e.Cause().Error(), "invalid syntax") {
		t.Errorf("Cause() = %v, want it to mention the root cause", e.Cause())
	}
	if !errors.Is(e, e) {
		t.Errorf("expected errors.Is(e, e) to hold")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{Warning, "Warning"},
		{Error, "Error"},
		{Fatal, "Fatal"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
