// Package stdfuncs is Folio's standard function/constant/analyzer
// library: arithmetic and statistics helpers, sequence utilities,
// datetime constructors, named mathematical and physical constants,
// and a digit-pattern analyzer, all built against the registry (C5)
// and evaluator (C8) plugin contracts of spec §6.
package stdfuncs

import (
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

// checkArity returns an ARG_COUNT error unless len(args) == want.
func checkArity(fn string, args []*value.Value, want int) *ferr.FolioError {
	if len(args) != want {
		return ferr.ArgCount(fn, itoa(want), len(args))
	}
	return nil
}

// checkArityRange returns an ARG_COUNT error unless min <= len(args) <= max.
func checkArityRange(fn string, args []*value.Value, min, max int) *ferr.FolioError {
	if len(args) < min || len(args) > max {
		return ferr.ArgCount(fn, rangeText(min, max), len(args))
	}
	return nil
}

func rangeText(min, max int) string {
	if min == max {
		return itoa(min)
	}
	return itoa(min) + "-" + itoa(max)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// argNumber extracts a Number argument, reporting ARG_TYPE on mismatch.
func argNumber(fn string, args []*value.Value, i int, name string) (*numeric.Number, *ferr.FolioError) {
	v := args[i]
	if v.Kind != value.KindNumber {
		return nil, ferr.ArgType(fn, name, "Number", v.TypeName())
	}
	return v.Num, nil
}

// argInt extracts a Number argument that must be an exact integer,
// reporting ARG_TYPE on mismatch or DOMAIN_ERROR if it has a fractional
// part or doesn't fit in an int64.
func argInt(fn string, args []*value.Value, i int, name string) (int64, *ferr.FolioError) {
	n, err := argNumber(fn, args, i, name)
	if err != nil {
		return 0, err
	}
	iv, ok := n.ToI64()
	if !ok {
		return 0, ferr.Domain(fn, name+" must fit in a 64-bit integer")
	}
	return iv, nil
}

// argText extracts a Text argument, reporting ARG_TYPE on mismatch.
func argText(fn string, args []*value.Value, i int, name string) (string, *ferr.FolioError) {
	v := args[i]
	if v.Kind != value.KindText {
		return "", ferr.ArgType(fn, name, "Text", v.TypeName())
	}
	return v.Text, nil
}

func errVal(e *ferr.FolioError) *value.Value { return value.Error(e) }

// translateDomain converts a numeric.Error raised inside a math function
// into the function's DOMAIN_ERROR, preserving the underlying message.
func translateDomain(fn string, err *numeric.Error) *ferr.FolioError {
	return ferr.Domain(fn, err.Message)
}
