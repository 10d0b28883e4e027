// Package hint turns the solver's first solution into a
// difficulty-appropriate nudge without giving the answer away.
package hint

import (
	"context"
	"strings"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// Tiered implements ports.Hinter: the lower the difficulty, the more
// the hint reveals.
type Tiered struct {
	Solver ports.Solver
}

func NewTiered(s ports.Solver) *Tiered { return &Tiered{Solver: s} }

func (h *Tiered) Hint(ctx context.Context, spec domain.PuzzleSpec, d domain.Difficulty) (domain.Hint, bool, error) {
	first, ok, _, err := h.Solver.FindFirst(ctx, spec)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if !ok {
		return domain.Hint{Message: "No solution exists for these numbers!"}, true, nil
	}

	switch d {
	case domain.Easy:
		return domain.Hint{Message: "Try combining the numbers with " + operatorList(spec.Allowed)}, true, nil
	case domain.Normal:
		if isLeftChain(first) {
			return domain.Hint{Message: "Try working through the numbers left to right, no parentheses needed"}, true, nil
		}
		return domain.Hint{Message: "Try using parentheses to group operations"}, true, nil
	default:
		return domain.Hint{Message: "You'll need these operators: " + operatorList(operatorsIn(first))}, true, nil
	}
}

// isLeftChain reports whether a canonical rendering is a pure left-deep
// chain, i.e. evaluates correctly read left to right. Such renderings
// open with all their parentheses up front: "((a + b) * c) + d".
func isLeftChain(rendered string) bool {
	rest := strings.TrimLeft(rendered, "(")
	return !strings.Contains(rest, "(")
}

// operatorsIn extracts the distinct operators a rendering uses, in
// enum order.
func operatorsIn(rendered string) []domain.Operator {
	var out []domain.Operator
	for _, op := range []domain.Operator{domain.OpAdd, domain.OpSub, domain.OpMul, domain.OpDiv} {
		if strings.Contains(rendered, " "+op.Symbol()+" ") {
			out = append(out, op)
		}
	}
	return out
}

func operatorList(ops []domain.Operator) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.Display()
	}
	return strings.Join(parts, ", ")
}
