// Package value implements Folio's polymorphic Value model: a closed sum
// over Number, Text, Bool, DateTime, Duration, Object, List, Null, and
// Error, the way the evaluator and renderer pass data between each other.
// Accessors never panic; a missing field or a bad coercion produces an
// Error-variant Value instead.
package value

import (
	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindBool
	KindDateTime
	KindDuration
	KindObject
	KindList
	KindNull
	KindError
)

// String names a Kind the way error messages and ARG_TYPE diagnostics
// reference it.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindText:
		return "Text"
	case KindBool:
		return "Bool"
	case KindDateTime:
		return "DateTime"
	case KindDuration:
		return "Duration"
	case KindObject:
		return "Object"
	case KindList:
		return "List"
	case KindNull:
		return "Null"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Value is a tagged union; only the field matching Kind is meaningful.
type Value struct {
	Kind     Kind
	Num      *numeric.Number
	Text     string
	Bool     bool
	DateTime *datetime.DateTime
	Duration *datetime.Duration
	Object   map[string]*Value
	List     []*Value
	Err      *ferr.FolioError
}

// Number wraps a numeric.Number as a Value.
func Number(n *numeric.Number) *Value { return &Value{Kind: KindNumber, Num: n} }

// Text wraps a string as a Value.
func Text(s string) *Value { return &Value{Kind: KindText, Text: s} }

// Bool wraps a bool as a Value.
func Bool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// DateTimeVal wraps a datetime.DateTime as a Value.
func DateTimeVal(d *datetime.DateTime) *Value { return &Value{Kind: KindDateTime, DateTime: d} }

// DurationVal wraps a datetime.Duration as a Value.
func DurationVal(d *datetime.Duration) *Value { return &Value{Kind: KindDuration, Duration: d} }

// Obj wraps a field map as an Object Value. The map's insertion order is
// irrelevant, per spec §9.
func Obj(fields map[string]*Value) *Value { return &Value{Kind: KindObject, Object: fields} }

// List wraps an ordered slice of Values as a List Value.
func List(items []*Value) *Value { return &Value{Kind: KindList, List: items} }

// Null returns the singleton-shaped Null value.
func Null() *Value { return &Value{Kind: KindNull} }

// Error wraps a *ferr.FolioError as an Error Value.
func Error(e *ferr.FolioError) *Value { return &Value{Kind: KindError, Err: e} }

// IsError reports whether v is the Error variant.
func (v *Value) IsError() bool { return v != nil && v.Kind == KindError }

// AsError returns v's FolioError, or nil if v is not an Error Value.
func (v *Value) AsError() *ferr.FolioError {
	if v == nil || v.Kind != KindError {
		return nil
	}
	return v.Err
}

// TypeName returns the display name of v's variant, for ARG_TYPE and
// TYPE_ERROR diagnostics.
func (v *Value) TypeName() string { return v.Kind.String() }

// Field navigates an Object's field map. A missing field yields
// FIELD_NOT_FOUND with a suggestion listing the available fields;
// accessing a field on a non-Object yields a TYPE_ERROR. Neither panics.
func (v *Value) Field(name string) *Value {
	if v.Kind == KindError {
		return v
	}
	if v.Kind != KindObject {
		return Error(ferr.Newf(ferr.CodeTypeError, "cannot access field %q on a %s", name, v.TypeName()))
	}
	if f, ok := v.Object[name]; ok {
		return f
	}
	available := make([]string, 0, len(v.Object))
	for k := range v.Object {
		available = append(available, k)
	}
	return Error(ferr.FieldNotFound(name, available))
}
