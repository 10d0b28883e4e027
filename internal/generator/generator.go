package generator

import "svw.info/twentyfour/internal/ports"

// SolvableGenerator deals random puzzles and keeps only those the
// provided Solver can actually solve at the requested difficulty.
type SolvableGenerator struct {
	Solver ports.Solver
}

// NewSolvableGenerator wires a generator that uses the given solver for
// solvability checks.
func NewSolvableGenerator(s ports.Solver) *SolvableGenerator {
	return &SolvableGenerator{Solver: s}
}
