package stdfuncs

import (
	"testing"

	"github.com/foliolang/folio/registry"
)

func TestRegisterConstantsIncludesMathAndSI(t *testing.T) {
	reg := registry.New()
	RegisterConstants(reg)

	for _, name := range []string{"pi", "e", "phi", "sqrt2", "sqrt3", "c", "h", "m_e"} {
		if _, ok := reg.Constant(name); !ok {
			t.Errorf("expected constant %q to be registered", name)
		}
	}
}

func TestRegisterConstantsUnicodeAlias(t *testing.T) {
	reg := registry.New()
	RegisterConstants(reg)

	unicode, ok := reg.Constant("α")
	if !ok {
		t.Fatal("expected α to be registered")
	}
	ascii, ok := reg.Constant("alpha")
	if !ok {
		t.Fatal("expected ascii alias 'alpha' to resolve")
	}
	if unicode.Formula != ascii.Formula {
		t.Errorf("alias formula mismatch: %q vs %q", unicode.Formula, ascii.Formula)
	}
}
