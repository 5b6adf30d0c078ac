package eclass

// GenCondDep is reserved for conditional dependency generation handled by
// the wider ecosystem. It accepts anything and does nothing.
func GenCondDep(_ ...string) {}

// GenImplDep is reserved for per-implementation dependency generation
// handled by the wider ecosystem. It accepts anything and does nothing.
func GenImplDep(_ ...string) {}
