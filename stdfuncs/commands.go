package stdfuncs

import (
	"github.com/foliolang/folio/eval"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// patternsCmd exposes the registered analyzers as an explicit command,
// per the "execute" capability named alongside call and confidence+analyze
// in spec §9's plugin dispatch design note: patterns(n) runs every
// analyzer against n and returns the merged pattern object, nesting a
// field under its analyzer's name when two analyzers collide on it.
type patternsCmd struct{}

func (patternsCmd) Meta() registry.CommandMeta {
	return registry.CommandMeta{
		Name:        "patterns",
		Description: "Runs every registered analyzer against a Number and returns the merged pattern object.",
	}
}

func (patternsCmd) Execute(args []*value.Value, ctx registry.Context) *value.Value {
	if len(args) != 1 {
		return value.Error(ferr.ArgCount("patterns", "1", len(args)))
	}
	n, err := argNumber("patterns", args, 0, "n")
	if err != nil {
		return errVal(err)
	}
	return eval.RunAnalyzers(n, ctx)
}
