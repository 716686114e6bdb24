package eval

import (
	"testing"

	"github.com/foliolang/folio/evalctx"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

type stubAnalyzer struct {
	name  string
	conf  float64
	field string
}

func (s stubAnalyzer) Meta() registry.AnalyzerMeta { return registry.AnalyzerMeta{Name: s.name} }
func (s stubAnalyzer) Confidence(n *numeric.Number, ctx registry.Context) float64 { return s.conf }
func (s stubAnalyzer) Analyze(n *numeric.Number, ctx registry.Context) *value.Value {
	return value.Obj(map[string]*value.Value{s.field: value.Bool(true)})
}

func TestRunAnalyzersMergesDistinctFields(t *testing.T) {
	reg := registry.New()
	reg.RegisterAnalyzer(stubAnalyzer{name: "a", conf: 0.5, field: "fieldA"})
	reg.RegisterAnalyzer(stubAnalyzer{name: "b", conf: 0.2, field: "fieldB"})
	ctx := evalctx.New(reg)
	result := RunAnalyzers(numeric.New(100, 0), ctx)
	if _, ok := result.Object["fieldA"]; !ok {
		t.Error("expected fieldA present")
	}
	if _, ok := result.Object["fieldB"]; !ok {
		t.Error("expected fieldB present")
	}
}

func TestRunAnalyzersSkipsLowConfidence(t *testing.T) {
	reg := registry.New()
	reg.RegisterAnalyzer(stubAnalyzer{name: "a", conf: 0.05, field: "fieldA"})
	ctx := evalctx.New(reg)
	result := RunAnalyzers(numeric.New(100, 0), ctx)
	if len(result.Object) != 0 {
		t.Errorf("expected no contributions below confidence threshold, got %+v", result.Object)
	}
}

func TestRunAnalyzersNestsOnCollision(t *testing.T) {
	reg := registry.New()
	reg.RegisterAnalyzer(stubAnalyzer{name: "a", conf: 0.5, field: "pattern"})
	reg.RegisterAnalyzer(stubAnalyzer{name: "b", conf: 0.5, field: "pattern"})
	ctx := evalctx.New(reg)
	result := RunAnalyzers(numeric.New(100, 0), ctx)
	if _, ok := result.Object["a"]; !ok {
		t.Error("expected analyzer a's output nested under its own name on collision")
	}
	if _, ok := result.Object["b"]; !ok {
		t.Error("expected analyzer b's output nested under its own name on collision")
	}
}
