package stdfuncs

import (
	"testing"

	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/value"
)

func TestHelpDescribesKnownFunction(t *testing.T) {
	reg := newRegistryForIntrospection()
	got := helpFn{}.Call([]*value.Value{value.Text("round")}, newCtxWithRegistry(reg))
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Object["name"].Text != "round" {
		t.Errorf("got %+v", got.Object)
	}
}

func TestHelpDescribesKnownConstant(t *testing.T) {
	reg := newRegistryForIntrospection()
	got := helpFn{}.Call([]*value.Value{value.Text("sqrt2")}, newCtxWithRegistry(reg))
	if got.IsError() {
		t.Fatal(got.AsError())
	}
	if got.Object["formula"].Text != "sqrt(2)" {
		t.Errorf("got %+v", got.Object)
	}
}

func TestHelpUnknownNameIsUndefinedFunc(t *testing.T) {
	reg := newRegistryForIntrospection()
	got := helpFn{}.Call([]*value.Value{value.Text("not_a_thing")}, newCtxWithRegistry(reg))
	if !got.IsError() {
		t.Fatal("expected an error for an unknown name")
	}
}

func TestListFunctionsFiltersByCategory(t *testing.T) {
	reg := newRegistryForIntrospection()
	got := listFunctionsFn{}.Call([]*value.Value{value.Text("datetime")}, newCtxWithRegistry(reg))
	if len(got.List) == 0 {
		t.Fatal("expected at least one datetime function")
	}
	for _, item := range got.List {
		if item.Object["category"].Text != "datetime" {
			t.Errorf("got non-datetime function in filtered list: %+v", item.Object)
		}
	}
}

func TestListConstantsIncludesPhysicsAndMath(t *testing.T) {
	reg := newRegistryForIntrospection()
	got := listConstantsFn{}.Call(nil, newCtxWithRegistry(reg))
	categories := map[string]bool{}
	for _, item := range got.List {
		categories[item.Object["category"].Text] = true
	}
	if !categories["math"] || !categories["physics"] {
		t.Errorf("expected both math and physics constants, got categories %+v", categories)
	}
}

func newRegistryForIntrospection() *registry.Registry {
	reg := registry.New()
	Register(reg)
	return reg
}
