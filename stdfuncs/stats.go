package stdfuncs

import (
	"sort"

	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// numberArgs flattens a function's arguments into a slice of Numbers,
// accepting either a single List argument or a variadic Number list, per
// the shape most apd-style statistics helpers expose.
func numberArgs(fn string, args []*value.Value) ([]*numeric.Number, *ferr.FolioError) {
	if len(args) == 1 && args[0].Kind == value.KindList {
		items := args[0].List
		out := make([]*numeric.Number, len(items))
		for i, v := range items {
			if v.Kind != value.KindNumber {
				return nil, ferr.ArgType(fn, "list element", "Number", v.TypeName())
			}
			out[i] = v.Num
		}
		return out, nil
	}
	out := make([]*numeric.Number, len(args))
	for i, v := range args {
		if v.Kind != value.KindNumber {
			return nil, ferr.ArgType(fn, "argument", "Number", v.TypeName())
		}
		out[i] = v.Num
	}
	return out, nil
}

type sumFn struct{}

func (sumFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "sum",
		Description: "Sums a list of numbers, or its variadic arguments.",
		Usage:       "sum(list) or sum(a, b, ...)",
		Returns:     "Number",
		Category:    "statistics",
	}
}

func (sumFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	nums, err := numberArgs("sum", args)
	if err != nil {
		return errVal(err)
	}
	total := numeric.New(0, 0)
	for _, n := range nums {
		total = total.Add(n)
	}
	return value.Number(total)
}

type meanFn struct{}

func (meanFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "mean",
		Description: "Returns the arithmetic mean of a list of numbers.",
		Usage:       "mean(list) or mean(a, b, ...)",
		Returns:     "Number",
		Category:    "statistics",
	}
}

func (meanFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	nums, err := numberArgs("mean", args)
	if err != nil {
		return errVal(err)
	}
	if len(nums) == 0 {
		return errVal(ferr.Domain("mean", "at least one value is required"))
	}
	total := numeric.New(0, 0)
	for _, n := range nums {
		total = total.Add(n)
	}
	result, divErr := total.CheckedDiv(numeric.New(int64(len(nums)), 0), ctx.Precision())
	if divErr != nil {
		return errVal(translateDomain("mean", divErr))
	}
	return value.Number(result)
}

type minFn struct{}

func (minFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "min",
		Description: "Returns the smallest of a list of numbers.",
		Usage:       "min(list) or min(a, b, ...)",
		Returns:     "Number",
		Category:    "statistics",
	}
}

func (minFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	nums, err := numberArgs("min", args)
	if err != nil {
		return errVal(err)
	}
	if len(nums) == 0 {
		return errVal(ferr.Domain("min", "at least one value is required"))
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) < 0 {
			best = n
		}
	}
	return value.Number(best)
}

type maxFn struct{}

func (maxFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "max",
		Description: "Returns the largest of a list of numbers.",
		Usage:       "max(list) or max(a, b, ...)",
		Returns:     "Number",
		Category:    "statistics",
	}
}

func (maxFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	nums, err := numberArgs("max", args)
	if err != nil {
		return errVal(err)
	}
	if len(nums) == 0 {
		return errVal(ferr.Domain("max", "at least one value is required"))
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) > 0 {
			best = n
		}
	}
	return value.Number(best)
}

type medianFn struct{}

func (medianFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "median",
		Description: "Returns the median of a list of numbers.",
		Usage:       "median(list) or median(a, b, ...)",
		Returns:     "Number",
		Category:    "statistics",
	}
}

func (medianFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	nums, err := numberArgs("median", args)
	if err != nil {
		return errVal(err)
	}
	if len(nums) == 0 {
		return errVal(ferr.Domain("median", "at least one value is required"))
	}
	sorted := append([]*numeric.Number(nil), nums...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Cmp(sorted[j]) < 0 })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return value.Number(sorted[mid])
	}
	sum := sorted[mid-1].Add(sorted[mid])
	result, divErr := sum.CheckedDiv(numeric.New(2, 0), ctx.Precision())
	if divErr != nil {
		return errVal(translateDomain("median", divErr))
	}
	return value.Number(result)
}
