package stdfuncs

import "github.com/foliolang/folio/registry"

// Register wires every standard function, constant, and analyzer into
// reg. Call once when building the registry a folio.Eval() call will use.
func Register(reg *registry.Registry) {
	reg.RegisterFunction(roundFn{})
	reg.RegisterFunction(absFn{})
	reg.RegisterFunction(sqrtFn{})
	reg.RegisterFunction(powFn{})
	reg.RegisterFunction(expFn{})

	reg.RegisterFunction(sumFn{})
	reg.RegisterFunction(meanFn{})
	reg.RegisterFunction(minFn{})
	reg.RegisterFunction(maxFn{})
	reg.RegisterFunction(medianFn{})

	reg.RegisterFunction(rangeFn{})
	reg.RegisterFunction(firstFn{})
	reg.RegisterFunction(lastFn{})

	reg.RegisterFunction(dateFn{})
	reg.RegisterFunction(daysFn{})
	reg.RegisterFunction(nowFn{})
	reg.RegisterFunction(eomFn{})

	RegisterConstants(reg)

	reg.RegisterFunction(helpFn{})
	reg.RegisterFunction(listFunctionsFn{})
	reg.RegisterFunction(listConstantsFn{})

	reg.RegisterAnalyzer(digitPatternAnalyzer{})
	reg.RegisterCommand(patternsCmd{})
}
