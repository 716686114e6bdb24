package stdfuncs

import (
	"sort"

	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// helpFn implements the introspection entry point named in spec §6:
// help() summarizes the registry; help(name) describes one function or
// constant by name.
type helpFn struct{}

func (helpFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "help",
		Description: "Describes a registered function or constant, or summarizes the whole registry when called with no argument.",
		Usage:       "help(name?)",
		Args: []registry.ArgMeta{
			{Name: "name", Type: "Text", Description: "function or constant name to describe", Optional: true},
		},
		Returns:  "Object",
		Category: "introspection",
	}
}

func (helpFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArityRange("help", args, 0, 1); err != nil {
		return errVal(err)
	}
	if len(args) == 0 {
		return value.Obj(map[string]*value.Value{
			"functions": listFunctions(ctx.Registry(), ""),
			"constants": listConstants(ctx.Registry()),
		})
	}
	name, err := argText("help", args, 0, "name")
	if err != nil {
		return errVal(err)
	}
	if fn, ok := ctx.Registry().Function(name); ok {
		return functionMetaToValue(fn.Meta())
	}
	if c, ok := ctx.Registry().Constant(name); ok {
		return constantToValue(c)
	}
	return errVal(ctx.Registry().UndefinedFunctionError(name))
}

// listFunctionsFn implements list_functions(category?).
type listFunctionsFn struct{}

func (listFunctionsFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "list_functions",
		Description: "Lists every registered function, optionally filtered to one category.",
		Usage:       "list_functions(category?)",
		Args: []registry.ArgMeta{
			{Name: "category", Type: "Text", Description: "restrict the list to this category", Optional: true},
		},
		Returns:  "List<Object>",
		Category: "introspection",
	}
}

func (listFunctionsFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArityRange("list_functions", args, 0, 1); err != nil {
		return errVal(err)
	}
	category := ""
	if len(args) == 1 {
		c, err := argText("list_functions", args, 0, "category")
		if err != nil {
			return errVal(err)
		}
		category = c
	}
	return listFunctions(ctx.Registry(), category)
}

// listConstantsFn implements list_constants().
type listConstantsFn struct{}

func (listConstantsFn) Meta() registry.FunctionMeta {
	return registry.FunctionMeta{
		Name:        "list_constants",
		Description: "Lists every registered named constant.",
		Usage:       "list_constants()",
		Returns:     "List<Object>",
		Category:    "introspection",
	}
}

func (listConstantsFn) Call(args []*value.Value, ctx registry.Context) *value.Value {
	if err := checkArity("list_constants", args, 0); err != nil {
		return errVal(err)
	}
	return listConstants(ctx.Registry())
}

func listFunctions(reg *registry.Registry, category string) *value.Value {
	seen := map[string]bool{}
	var items []*value.Value
	for _, name := range sortedStrings(reg.FunctionNames()) {
		fn, ok := reg.Function(name)
		if !ok {
			continue
		}
		meta := fn.Meta()
		if seen[meta.Name] {
			continue
		}
		seen[meta.Name] = true
		if category != "" && meta.Category != category {
			continue
		}
		items = append(items, functionMetaToValue(meta))
	}
	return value.List(items)
}

func listConstants(reg *registry.Registry) *value.Value {
	seen := map[string]bool{}
	var items []*value.Value
	for _, name := range sortedStrings(reg.ConstantNames()) {
		c, ok := reg.Constant(name)
		if !ok || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		items = append(items, constantToValue(c))
	}
	return value.List(items)
}

func functionMetaToValue(m registry.FunctionMeta) *value.Value {
	args := make([]*value.Value, len(m.Args))
	for i, a := range m.Args {
		args[i] = argMetaToValue(a)
	}
	return value.Obj(map[string]*value.Value{
		"name":        value.Text(m.Name),
		"description": value.Text(m.Description),
		"usage":       value.Text(m.Usage),
		"args":        value.List(args),
		"returns":     value.Text(m.Returns),
		"examples":    textList(m.Examples),
		"category":    value.Text(m.Category),
		"source":      value.Text(m.Source),
		"related":     textList(m.Related),
	})
}

func argMetaToValue(a registry.ArgMeta) *value.Value {
	return value.Obj(map[string]*value.Value{
		"name":        value.Text(a.Name),
		"type":        value.Text(a.Type),
		"description": value.Text(a.Description),
		"optional":    value.Bool(a.Optional),
		"default":     value.Text(a.Default),
	})
}

func constantToValue(c registry.Constant) *value.Value {
	return value.Obj(map[string]*value.Value{
		"name":     value.Text(c.Name),
		"formula":  value.Text(c.Formula),
		"source":   value.Text(c.Source),
		"category": value.Text(c.Category),
	})
}

func textList(ss []string) *value.Value {
	items := make([]*value.Value, len(ss))
	for i, s := range ss {
		items[i] = value.Text(s)
	}
	return value.List(items)
}

func sortedStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	sort.Strings(out)
	return out
}
