package value

import (
	"strings"

	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
)

// ToNumber coerces v to a Number Value. Accepts Number (identity), Text
// (parsed the way numeric.Parse accepts), and Bool (true→1, false→0).
// Anything else yields TYPE_ERROR.
func (v *Value) ToNumber() *Value {
	switch v.Kind {
	case KindError:
		return v
	case KindNumber:
		return v
	case KindText:
		n, err := numeric.Parse(strings.TrimSpace(v.Text))
		if err != nil {
			return Error(ferr.Wrap(ferr.CodeParseError, err, "cannot convert text to a number"))
		}
		return Number(n)
	case KindBool:
		if v.Bool {
			return Number(numeric.New(1, 0))
		}
		return Number(numeric.New(0, 0))
	default:
		return Error(ferr.Newf(ferr.CodeTypeError, "cannot convert %s to Number", v.TypeName()))
	}
}

// ToText coerces v to a Text Value. Every variant has a textual form, so
// this coercion never fails except when v is already an Error.
func (v *Value) ToText() *Value {
	switch v.Kind {
	case KindError:
		return v
	case KindText:
		return v
	case KindNumber:
		return Text(v.Num.Display(10))
	case KindBool:
		if v.Bool {
			return Text("true")
		}
		return Text("false")
	case KindDateTime:
		return Text(v.DateTime.String())
	case KindDuration:
		return Text(v.Duration.Format())
	case KindNull:
		return Text("null")
	case KindObject:
		return Text("[Object]")
	case KindList:
		return Text(listSummary(v.List))
	default:
		return Text("")
	}
}

// ToBool coerces v to a Bool Value. Accepts Bool (identity), Number
// (nonzero is true), and Text ("true"/"false", case-insensitive).
// Anything else yields TYPE_ERROR.
func (v *Value) ToBool() *Value {
	switch v.Kind {
	case KindError:
		return v
	case KindBool:
		return v
	case KindNumber:
		return Bool(!v.Num.IsZero())
	case KindText:
		switch strings.ToLower(strings.TrimSpace(v.Text)) {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		default:
			return Error(ferr.Newf(ferr.CodeTypeError, "cannot convert text %q to Bool", v.Text))
		}
	default:
		return Error(ferr.Newf(ferr.CodeTypeError, "cannot convert %s to Bool", v.TypeName()))
	}
}

// ToDateTime coerces v to a DateTime Value. Accepts DateTime (identity)
// and Text (parsed as ISO-8601). Anything else yields TYPE_ERROR.
func (v *Value) ToDateTime() *Value {
	switch v.Kind {
	case KindError:
		return v
	case KindDateTime:
		return v
	case KindText:
		d, err := datetime.ParseISO8601(v.Text)
		if err != nil {
			return Error(ferr.Wrap(ferr.CodeDateParseError, err, "cannot parse text as a DateTime"))
		}
		return DateTimeVal(d)
	default:
		return Error(ferr.Newf(ferr.CodeTypeError, "cannot convert %s to DateTime", v.TypeName()))
	}
}

// ToDuration coerces v to a Duration Value. Accepts Duration (identity)
// and Number (interpreted as a count of seconds). Anything else yields
// TYPE_ERROR.
func (v *Value) ToDuration() *Value {
	switch v.Kind {
	case KindError:
		return v
	case KindDuration:
		return v
	case KindNumber:
		f, ok := v.Num.ToF64()
		if !ok {
			return Error(ferr.Newf(ferr.CodeTypeError, "number out of range to convert to Duration"))
		}
		return DurationVal(datetime.Seconds(1).MulFloat(f))
	default:
		return Error(ferr.Newf(ferr.CodeTypeError, "cannot convert %s to Duration", v.TypeName()))
	}
}

func listSummary(items []*Value) string {
	if len(items) > 5 {
		return "[" + itoaSmall(len(items)) + "]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.ToText().Text)
	}
	b.WriteByte(']')
	return b.String()
}

func itoaSmall(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
