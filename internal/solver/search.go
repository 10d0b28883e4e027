// Package solver implements the exhaustive solution search: operand
// permutations × operator tuples × tree shapes, evaluated exactly.
package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/expr"
	"svw.info/twentyfour/internal/ports"
	"svw.info/twentyfour/internal/rational"
)

// ExhaustiveSolver walks the full candidate space (24 × ≤64 × 5 for four
// operands) straight through on the calling goroutine.
type ExhaustiveSolver struct{}

func NewExhaustiveSolver() *ExhaustiveSolver { return &ExhaustiveSolver{} }

// FindAll collects every distinct canonical rendering that evaluates to
// the target exactly.
func (s *ExhaustiveSolver) FindAll(ctx context.Context, spec domain.PuzzleSpec) ([]string, ports.Stats, error) {
	return s.search(ctx, spec, false)
}

// FindFirst stops at the first hit; a fresh puzzle is presented to the
// player only if this returns ok.
func (s *ExhaustiveSolver) FindFirst(ctx context.Context, spec domain.PuzzleSpec) (string, bool, ports.Stats, error) {
	sols, st, err := s.search(ctx, spec, true)
	if err != nil || len(sols) == 0 {
		return "", false, st, err
	}
	return sols[0], true, st, nil
}

func (s *ExhaustiveSolver) search(ctx context.Context, spec domain.PuzzleSpec, firstOnly bool) ([]string, ports.Stats, error) {
	start := time.Now()
	if len(spec.Operands) < 2 || len(spec.Allowed) == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, errors.New("spec needs at least two operands and one operator")
	}

	target := rational.FromInt(int64(spec.Target))
	shapes := expr.ShapesFor(len(spec.Operands))
	perms := permutations(len(spec.Operands))
	opCount := len(spec.Operands) - 1
	tuples := intPow(len(spec.Allowed), opCount)

	operands := make([]domain.Operand, len(spec.Operands))
	opsBuf := make([]domain.Operator, opCount)
	seen := make(map[string]struct{})
	var out []string
	candidates := 0

	for _, perm := range perms {
		if err := ctx.Err(); err != nil {
			return out, ports.Stats{Candidates: candidates, Duration: time.Since(start)}, err
		}
		for i, idx := range perm {
			operands[i] = spec.Operands[idx]
		}
		for t := 0; t < tuples; t++ {
			opTuple(spec.Allowed, t, opsBuf)
			for _, shape := range shapes {
				candidates++
				tree, err := expr.Build(shape, operands, opsBuf)
				if err != nil {
					return nil, ports.Stats{Candidates: candidates, Duration: time.Since(start)}, err
				}
				v, err := tree.Eval()
				if err != nil {
					// Division by zero just rules the candidate out.
					continue
				}
				if !v.Equal(target) {
					continue
				}
				r := tree.String()
				if _, dup := seen[r]; dup {
					continue
				}
				seen[r] = struct{}{}
				out = append(out, r)
				if firstOnly {
					return out, ports.Stats{Candidates: candidates, Duration: time.Since(start)}, nil
				}
			}
		}
	}
	return out, ports.Stats{Candidates: candidates, Duration: time.Since(start)}, nil
}
