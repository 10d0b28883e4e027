// Package expr holds the immutable expression trees the solver generates
// and the checker parses, plus the tree topologies ("shapes") used to
// enumerate every parenthesization.
package expr

import (
	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/rational"
)

// Node is a fully parenthesized arithmetic expression over operand slots.
type Node interface {
	// Eval computes the exact value, post-order. The only failure mode
	// is a zero divisor (rational.ErrDivisionByZero).
	Eval() (rational.Rat, error)
	// String renders the canonical text form (see render.go).
	String() string
	appendLeaves(dst []domain.Operand) []domain.Operand
}

// Leaf is a single operand occurrence.
type Leaf struct {
	Operand domain.Operand
}

// Binary applies an operator to two owned subtrees.
type Binary struct {
	Op    domain.Operator
	Left  Node
	Right Node
}

// Leaves returns the operands under n, left to right.
func Leaves(n Node) []domain.Operand {
	return n.appendLeaves(nil)
}

func (l *Leaf) appendLeaves(dst []domain.Operand) []domain.Operand {
	return append(dst, l.Operand)
}

func (b *Binary) appendLeaves(dst []domain.Operand) []domain.Operand {
	dst = b.Left.appendLeaves(dst)
	return b.Right.appendLeaves(dst)
}
