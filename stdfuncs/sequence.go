package stdfuncs

import (
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// rangeFn implements range(start, end, step?): a List of Numbers from
// start up to (but not including) end, stepping by step (default 1).
type rangeFn struct{}

func (rangeFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "range",
		Description: "Builds a list of numbers from start up to (excluding) end.",
		Usage:       "range(start, end, step?)",
		Args: []registry.ArgMeta{
			{Name: "start", Type: "Number"},
			{Name: "end", Type: "Number"},
			{Name: "step", Type: "Number", Optional: true, Default: "1"},
		},
		Returns:  "List",
		Category: "sequence",
	}
}

func (rangeFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArityRange("range", args, 2, 3); err != nil {
		return errVal(err)
	}
	start, err := argNumber("range", args, 0, "start")
	if err != nil {
		return errVal(err)
	}
	end, err := argNumber("range", args, 1, "end")
	if err != nil {
		return errVal(err)
	}
	step := numeric.New(1, 0)
	if len(args) == 3 {
		step, err = argNumber("range", args, 2, "step")
		if err != nil {
			return errVal(err)
		}
	}
	if step.IsZero() {
		return errVal(ferr.Domain("range", "step must not be zero"))
	}
	var items []*value.Value
	ascending := step.Sign() > 0
	cur := start
	for i := 0; i < 1_000_000; i++ {
		if ascending && cur.Cmp(end) >= 0 {
			break
		}
		if !ascending && cur.Cmp(end) <= 0 {
			break
		}
		items = append(items, value.Number(cur))
		cur = cur.Add(step)
	}
	return value.List(items)
}

type firstFn struct{}

func (firstFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "first",
		Description: "Returns the first element of a list.",
		Usage:       "first(list)",
		Args:        []registry.ArgMeta{{Name: "list", Type: "List"}},
		Returns:     "Value",
		Category:    "sequence",
	}
}

func (firstFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("first", args, 1); err != nil {
		return errVal(err)
	}
	list := args[0]
	if list.Kind != value.KindList {
		return errVal(ferr.ArgType("first", "list", "List", list.TypeName()))
	}
	if len(list.List) == 0 {
		return errVal(ferr.Domain("first", "list is empty"))
	}
	return list.List[0]
}

type lastFn struct{}

func (lastFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "last",
		Description: "Returns the last element of a list.",
		Usage:       "last(list)",
		Args:        []registry.ArgMeta{{Name: "list", Type: "List"}},
		Returns:     "Value",
		Category:    "sequence",
	}
}

func (lastFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("last", args, 1); err != nil {
		return errVal(err)
	}
	list := args[0]
	if list.Kind != value.KindList {
		return errVal(ferr.ArgType("last", "list", "List", list.TypeName()))
	}
	if len(list.List) == 0 {
		return errVal(ferr.Domain("last", "list is empty"))
	}
	return list.List[len(list.List)-1]
}
