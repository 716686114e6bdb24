package stdfuncs

import (
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// roundFn implements round(n, places?), rounding away from zero on ties.
type roundFn struct{}

func (roundFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "round",
		Description: "Rounds a number to the given number of decimal places (0 by default).",
		Usage:       "round(n, places?)",
		Args: []registry.ArgMeta{
			{Name: "n", Type: "Number"},
			{Name: "places", Type: "Number", Optional: true, Default: "0"},
		},
		Returns:  "Number",
		Category: "arithmetic",
	}
}

func (roundFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArityRange("round", args, 1, 2); err != nil {
		return errVal(err)
	}
	n, err := argNumber("round", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	places := int64(0)
	if len(args) == 2 {
		places, err = argInt("round", args, 1, "places")
		if err != nil {
			return errVal(err)
		}
	}
	if places < 0 {
		places = 0
	}
	rounded, perr := numeric.Parse(n.DisplayFixed(int(places)))
	if perr != nil {
		return value.Number(n)
	}
	return value.Number(rounded)
}

// absFn implements abs(n).
type absFn struct{}

func (absFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "abs",
		Description: "Returns the absolute value of a number.",
		Usage:       "abs(n)",
		Args:        []registry.ArgMeta{{Name: "n", Type: "Number"}},
		Returns:     "Number",
		Category:    "arithmetic",
	}
}

func (absFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("abs", args, 1); err != nil {
		return errVal(err)
	}
	n, err := argNumber("abs", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	return value.Number(n.Abs())
}

// sqrtFn implements sqrt(n).
type sqrtFn struct{}

func (sqrtFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "sqrt",
		Description: "Returns the square root of a non-negative number.",
		Usage:       "sqrt(n)",
		Args:        []registry.ArgMeta{{Name: "n", Type: "Number"}},
		Returns:     "Number",
		Category:    "arithmetic",
	}
}

func (sqrtFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("sqrt", args, 1); err != nil {
		return errVal(err)
	}
	n, err := argNumber("sqrt", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	result, serr := n.Sqrt(ctx.Precision())
	if serr != nil {
		return errVal(translateDomain("sqrt", serr))
	}
	return value.Number(result)
}

// expFn implements exp(n), Euler's number raised to n. It exists as a
// callable function chiefly so the "e" constant's Formula ("exp(1)") can
// resolve like any other formula-defined constant.
type expFn struct{}

func (expFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "exp",
		Description: "Returns e (Euler's number) raised to n.",
		Usage:       "exp(n)",
		Args:        []registry.ArgMeta{{Name: "n", Type: "Number"}},
		Returns:     "Number",
		Category:    "arithmetic",
	}
}

func (expFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("exp", args, 1); err != nil {
		return errVal(err)
	}
	n, err := argNumber("exp", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	result, eerr := n.Exp(ctx.Precision())
	if eerr != nil {
		return errVal(translateDomain("exp", eerr))
	}
	return value.Number(result)
}

// powFn implements pow(base, exponent).
type powFn struct{}

func (powFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "pow",
		Description: "Raises base to exponent.",
		Usage:       "pow(base, exponent)",
		Args: []registry.ArgMeta{
			{Name: "base", Type: "Number"},
			{Name: "exponent", Type: "Number"},
		},
		Returns:  "Number",
		Category: "arithmetic",
	}
}

func (powFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("pow", args, 2); err != nil {
		return errVal(err)
	}
	base, err := argNumber("pow", args, 0, "base")
	if err != nil {
		return errVal(err)
	}
	exp, err := argNumber("pow", args, 1, "exponent")
	if err != nil {
		return errVal(err)
	}
	result, perr := base.Pow(exp, ctx.Precision())
	if perr != nil {
		return errVal(translateDomain("pow", perr))
	}
	return value.Number(result)
}
