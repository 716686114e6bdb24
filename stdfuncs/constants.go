package stdfuncs

import "github.com/foliolang/folio/registry"

// mathConstants are the keyword-formula constants the evaluator's
// ResolveConstant special-cases or recursively parses, per spec §4.3/§6.
var mathConstants = []registry.Constant{
	{Name: "π", Formula: "pi", Source: "mathematical constant", Category: "math", Aliases: []string{"pi"}},
	{Name: "e", Formula: "exp(1)", Source: "mathematical constant", Category: "math"},
	{Name: "φ", Formula: "(1 + sqrt(5)) / 2", Source: "golden ratio", Category: "math", Aliases: []string{"phi"}},
	{Name: "sqrt2", Formula: "sqrt(2)", Source: "mathematical constant", Category: "math"},
	{Name: "sqrt3", Formula: "sqrt(3)", Source: "mathematical constant", Category: "math"},
}

// siConstants are literal-valued physical constants (2018 CODATA, exact
// or best-known values), registered with ASCII aliases for their
// Unicode names per spec §4.3's alias rule.
var siConstants = []registry.Constant{
	{Name: "c", Formula: "299792458", Source: "speed of light in vacuum (m/s, exact)", Category: "physics"},
	{Name: "h", Formula: "6.62607015E-34", Source: "Planck constant (J*s, exact)", Category: "physics"},
	{Name: "m_e", Formula: "9.1093837015E-31", Source: "electron mass (kg)", Category: "physics", Aliases: []string{"me"}},
	{Name: "m_μ", Formula: "1.883531627E-28", Source: "muon mass (kg)", Category: "physics", Aliases: []string{"m_mu"}},
	{Name: "m_τ", Formula: "3.16754E-27", Source: "tau mass (kg)", Category: "physics", Aliases: []string{"m_tau"}},
	{Name: "α", Formula: "0.0072973525693", Source: "fine-structure constant (dimensionless)", Category: "physics", Aliases: []string{"alpha"}},
}

// RegisterConstants adds every standard constant (math and SI) to reg.
func RegisterConstants(reg *registry.Registry) {
	for _, c := range mathConstants {
		reg.RegisterConstant(c)
	}
	for _, c := range siConstants {
		reg.RegisterConstant(c)
	}
}
