package eval

import (
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

// RunAnalyzers runs every registered analyzer against n, keeps those
// whose confidence is at least 0.1, and merges their Object outputs by
// field name. A field name two different analyzers both produce is a
// collision: instead of one silently overwriting the other, both
// analyzers' full outputs are re-keyed under their own analyzer name,
// per spec §6/§9's "merge by key-union, keyed by analyzer name on
// collision" wording. This is the shared implementation behind both the
// "patterns" command and any direct analyzer inspection.
func RunAnalyzers(n *numeric.Number, ctx registry.Context) *value.Value {
	type contribution struct {
		analyzer string
		result   *value.Value
	}
	var contributions []contribution
	for _, a := range ctx.Registry().Analyzers() {
		if a.Confidence(n, ctx) < 0.1 {
			continue
		}
		result := a.Analyze(n, ctx)
		if result.Kind != value.KindObject {
			continue
		}
		contributions = append(contributions, contribution{a.Meta().Name, result})
	}

	fieldOwners := map[string][]string{}
	for _, c := range contributions {
		for field := range c.result.Object {
			fieldOwners[field] = append(fieldOwners[field], c.analyzer)
		}
	}

	merged := map[string]*value.Value{}
	for _, c := range contributions {
		collided := false
		for field := range c.result.Object {
			if len(fieldOwners[field]) > 1 {
				collided = true
				break
			}
		}
		if collided {
			merged[c.analyzer] = c.result
			continue
		}
		for field, v := range c.result.Object {
			merged[field] = v
		}
	}
	return value.Obj(merged)
}
