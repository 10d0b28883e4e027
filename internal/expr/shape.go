package expr

import (
	"fmt"

	"svw.info/twentyfour/internal/domain"
)

// Shape is an unlabeled binary-tree topology. Nil children mean a leaf.
// Shapes carry no operands or operators; they are pure parenthesization
// templates, generated once per operand count and reused.
type Shape struct {
	Left  *Shape
	Right *Shape
}

func (s *Shape) leafCount() int {
	if s.Left == nil {
		return 1
	}
	return s.Left.leafCount() + s.Right.leafCount()
}

var leaf = &Shape{}

// ShapesFor enumerates every topology with k leaves: split k into a left
// group of i and a right group of k-i for each split point and cross the
// sub-results. k=4 yields the 5 Catalan topologies.
func ShapesFor(k int) []*Shape {
	if k <= 1 {
		return []*Shape{leaf}
	}
	var out []*Shape
	for i := 1; i < k; i++ {
		lefts := ShapesFor(i)
		rights := ShapesFor(k - i)
		for _, l := range lefts {
			for _, r := range rights {
				out = append(out, &Shape{Left: l, Right: r})
			}
		}
	}
	return out
}

// Build labels a shape with operands in left-to-right order and
// operators in pre-order, yielding a concrete expression tree.
func Build(s *Shape, operands []domain.Operand, ops []domain.Operator) (Node, error) {
	if n := s.leafCount(); n != len(operands) {
		return nil, fmt.Errorf("shape has %d leaves, got %d operands", n, len(operands))
	}
	if want := len(operands) - 1; want != len(ops) {
		return nil, fmt.Errorf("need %d operators, got %d", want, len(ops))
	}
	oi, pi := 0, 0
	var build func(s *Shape) Node
	build = func(s *Shape) Node {
		if s.Left == nil {
			n := &Leaf{Operand: operands[oi]}
			oi++
			return n
		}
		op := ops[pi]
		pi++
		left := build(s.Left)
		right := build(s.Right)
		return &Binary{Op: op, Left: left, Right: right}
	}
	return build(s), nil
}
