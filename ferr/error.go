// Package ferr implements Folio's structured error model: errors are
// values that flow through expression evaluation and accumulate in the
// final result, never exceptions that abort it (short of a genuine Fatal).
package ferr

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Code is a stable, machine-readable error tag.
type Code string

// The error codes named in spec §3.
const (
	CodeParseError      Code = "PARSE_ERROR"
	CodeDivZero         Code = "DIV_ZERO"
	CodeUndefinedVar    Code = "UNDEFINED_VAR"
	CodeUndefinedFunc   Code = "UNDEFINED_FUNC"
	CodeFieldNotFound   Code = "FIELD_NOT_FOUND"
	CodeTypeError       Code = "TYPE_ERROR"
	CodeArgCount        Code = "ARG_COUNT"
	CodeArgType         Code = "ARG_TYPE"
	CodeDomainError     Code = "DOMAIN_ERROR"
	CodeOverflow        Code = "OVERFLOW"
	CodeCircularRef     Code = "CIRCULAR_REF"
	CodeInvalidDate     Code = "INVALID_DATE"
	CodeInvalidTime     Code = "INVALID_TIME"
	CodeDateParseError  Code = "DATE_PARSE_ERROR"
	CodeDateOverflow    Code = "DATE_OVERFLOW"
	CodeInternal        Code = "INTERNAL"
)

// Severity distinguishes how far an error's effect reaches.
type Severity int

const (
	// Warning: computation continued with a degraded value.
	Warning Severity = iota
	// Error: this cell failed; dependents receive a propagated error.
	Error
	// Fatal: document-level; aborts evaluation entirely.
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "Error"
	}
}

// Context carries the site of an error: which cell and formula it came
// from, and any free-form diagnostic notes appended as it propagates.
type Context struct {
	Cell    string
	Formula string
	Line    int
	Column  int
	Notes   []string
}

// FolioError is the structured error value threaded through evaluation
// instead of a panic or a plain Go error. It satisfies the error
// interface so it can also be returned from Go-facing APIs.
type FolioError struct {
	Code       Code
	Message    string
	Suggestion string
	Context    *Context
	Severity   Severity
	// cause is the underlying Go error this FolioError was translated
	// from, if any (e.g. a numeric.Error or a strconv error wrapped by
	// github.com/pkg/errors along the way).
	cause error
}

// New creates a FolioError with Error severity.
func New(code Code, message string) *FolioError {
	return &FolioError{Code: code, Message: message, Severity: Error}
}

// Newf creates a FolioError with a formatted message.
func Newf(code Code, format string, args ...interface{}) *FolioError {
	return New(code, fmt.Sprintf(format, args...))
}

// Fatalf creates a Fatal-severity FolioError.
func Fatalf(code Code, format string, args ...interface{}) *FolioError {
	e := Newf(code, format, args...)
	e.Severity = Fatal
	return e
}

// Wrap translates an underlying Go error (e.g. from numeric or datetime)
// into a FolioError, preserving it as the Cause() chain via
// github.com/pkg/errors, the way apd wraps strconv failures in
// decimal.go.
func Wrap(code Code, cause error, message string) *FolioError {
	return &FolioError{
		Code:     code,
		Message:  message,
		Severity: Error,
		cause:    errors.Wrap(cause, message),
	}
}

// Cause implements the github.com/pkg/errors Causer interface.
func (e *FolioError) Cause() error { return e.cause }

// Unwrap supports errors.Is/errors.As against the underlying cause.
func (e *FolioError) Unwrap() error { return e.cause }

// WithSuggestion sets the Suggestion field and returns e for chaining.
func (e *FolioError) WithSuggestion(s string) *FolioError {
	e.Suggestion = s
	return e
}

// WithContext sets Context and returns e for chaining.
func (e *FolioError) WithContext(ctx *Context) *FolioError {
	e.Context = ctx
	return e
}

// WithSeverity overrides the severity and returns e for chaining.
func (e *FolioError) WithSeverity(s Severity) *FolioError {
	e.Severity = s
	return e
}

// Note appends a propagation note to e's context (creating the context if
// necessary) and returns e. Notes record the site an error passed through,
// e.g. "from left operand" or "in argument 2 of mean()".
func (e *FolioError) Note(note string) *FolioError {
	if e.Context == nil {
		e.Context = &Context{}
	}
	e.Context.Notes = append(e.Context.Notes, note)
	return e
}

// Propagate returns a copy of e with an additional note describing where
// it was re-raised from. The original code, message, and suggestion are
// preserved, matching the propagation policy of spec §7.
func (e *FolioError) Propagate(note string) *FolioError {
	cp := *e
	if e.Context != nil {
		ctxCopy := *e.Context
		ctxCopy.Notes = append(append([]string{}, e.Context.Notes...), note)
		cp.Context = &ctxCopy
	} else {
		cp.Context = &Context{Notes: []string{note}}
	}
	return &cp
}

// Error implements the error interface.
func (e *FolioError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Context != nil && len(e.Context.Notes) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Context.Notes, "; "))
		b.WriteString(")")
	}
	return b.String()
}

// NoteChain returns the note strings accumulated on e's context, in the
// order they were appended (outermost propagation last).
func (e *FolioError) NoteChain() []string {
	if e.Context == nil {
		return nil
	}
	return e.Context.Notes
}
