package stdfuncs

import (
	stdtime "time"

	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// dateFn implements date(year, month, day), constructing a midnight UTC
// DateTime, per spec §4.7's full-validation constructor.
type dateFn struct{}

func (dateFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "date",
		Description: "Constructs a DateTime at midnight from a calendar year, month, and day.",
		Usage:       "date(year, month, day)",
		Args: []registry.ArgMeta{
			{Name: "year", Type: "Number"},
			{Name: "month", Type: "Number"},
			{Name: "day", Type: "Number"},
		},
		Returns:  "DateTime",
		Category: "datetime",
	}
}

func (dateFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("date", args, 3); err != nil {
		return errVal(err)
	}
	y, err := argInt("date", args, 0, "year")
	if err != nil {
		return errVal(err)
	}
	m, err := argInt("date", args, 1, "month")
	if err != nil {
		return errVal(err)
	}
	d, err := argInt("date", args, 2, "day")
	if err != nil {
		return errVal(err)
	}
	dt, dateErr := datetime.Date(y, int(m), int(d))
	if dateErr != nil {
		return errVal(translateDateErr("date", dateErr))
	}
	return value.DateTimeVal(dt)
}

// daysFn implements days(n), a Duration of n whole days.
type daysFn struct{}

func (daysFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "days",
		Description: "Builds a Duration of the given number of whole days.",
		Usage:       "days(n)",
		Args:        []registry.ArgMeta{{Name: "n", Type: "Number"}},
		Returns:     "Duration",
		Category:    "datetime",
	}
}

func (daysFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("days", args, 1); err != nil {
		return errVal(err)
	}
	n, err := argInt("days", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	return value.DurationVal(datetime.Days(n))
}

// nowFn implements now(), reading the system clock at call time.
type nowFn struct{}

func (nowFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "now",
		Description: "Returns the current instant, read from the system clock.",
		Usage:       "now()",
		Returns:     "DateTime",
		Category:    "datetime",
	}
}

func (nowFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("now", args, 0); err != nil {
		return errVal(err)
	}
	t := stdtime.Now()
	_, offset := t.Zone()
	dt, dateErr := datetime.New(
		int64(t.Year()), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		int32(offset),
	)
	if dateErr != nil {
		return errVal(translateDateErr("now", dateErr))
	}
	return value.DateTimeVal(dt)
}

// eomFn implements eom(dt): the end-of-month instant for dt's month.
type eomFn struct{}

func (eomFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "eom",
		Description: "Returns the last instant of the month containing dt.",
		Usage:       "eom(dt)",
		Args:        []registry.ArgMeta{{Name: "dt", Type: "DateTime"}},
		Returns:     "DateTime",
		Category:    "datetime",
	}
}

func (eomFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("eom", args, 1); err != nil {
		return errVal(err)
	}
	v := args[0]
	if v.Kind != value.KindDateTime {
		return errVal(ferr.ArgType("eom", "dt", "DateTime", v.TypeName()))
	}
	return value.DateTimeVal(v.DateTime.EndOfMonth())
}

func translateDateErr(fn string, err *datetime.Error) *ferr.FolioError {
	return ferr.Newf(codeFor(err), "%s(): %s", fn, err.Message)
}

func codeFor(err *datetime.Error) ferr.Code {
	switch err.Kind {
	case datetime.InvalidDate:
		return ferr.CodeInvalidDate
	case datetime.InvalidTime:
		return ferr.CodeInvalidTime
	case datetime.ParseError:
		return ferr.CodeDateParseError
	case datetime.Overflow:
		return ferr.CodeDateOverflow
	default:
		return ferr.CodeInternal
	}
}
