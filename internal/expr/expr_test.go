package expr

import (
	"errors"
	"testing"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/rational"
)

func TestShapesForCatalan(t *testing.T) {
	// Topology counts follow the Catalan numbers.
	cases := []struct {
		leaves int
		want   int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 5},
		{5, 14},
	}
	for _, tc := range cases {
		if got := len(ShapesFor(tc.leaves)); got != tc.want {
			t.Fatalf("ShapesFor(%d) = %d shapes, want %d", tc.leaves, got, tc.want)
		}
	}
}

func operands(values ...int) []domain.Operand {
	out := make([]domain.Operand, len(values))
	for i, v := range values {
		out[i] = domain.Operand{Slot: i, Value: v}
	}
	return out
}

func TestBuildEvalRender(t *testing.T) {
	// ((1 + 2) + 3) * 4 on the left-comb shape with pre-order operators.
	shapes := ShapesFor(4)
	ops := []domain.Operator{domain.OpMul, domain.OpAdd, domain.OpAdd}
	var tree Node
	for _, s := range shapes {
		n, err := Build(s, operands(1, 2, 3, 4), ops)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if n.String() == "((1 + 2) + 3) * 4" {
			tree = n
			break
		}
	}
	if tree == nil {
		t.Fatalf("no shape produced the left-comb rendering")
	}
	v, err := tree.Eval()
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if !v.Equal(rational.FromInt(24)) {
		t.Fatalf("Eval = %s, want 24", v)
	}
}

func TestLeavesKeepSlotOrder(t *testing.T) {
	tree, err := Build(ShapesFor(4)[0], operands(3, 3, 8, 8),
		[]domain.Operator{domain.OpAdd, domain.OpAdd, domain.OpAdd})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	leaves := Leaves(tree)
	if len(leaves) != 4 {
		t.Fatalf("got %d leaves, want 4", len(leaves))
	}
	for i, l := range leaves {
		if l.Slot != i {
			t.Fatalf("leaf %d carries slot %d", i, l.Slot)
		}
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	// 1 / (2 - 2)
	tree := &Binary{
		Op:   domain.OpDiv,
		Left: &Leaf{Operand: domain.Operand{Slot: 0, Value: 1}},
		Right: &Binary{
			Op:    domain.OpSub,
			Left:  &Leaf{Operand: domain.Operand{Slot: 1, Value: 2}},
			Right: &Leaf{Operand: domain.Operand{Slot: 2, Value: 2}},
		},
	}
	if _, err := tree.Eval(); !errors.Is(err, rational.ErrDivisionByZero) {
		t.Fatalf("got %v, want ErrDivisionByZero", err)
	}
}

func TestBuildRejectsArityMismatch(t *testing.T) {
	if _, err := Build(ShapesFor(4)[0], operands(1, 2, 3), []domain.Operator{domain.OpAdd, domain.OpAdd, domain.OpAdd}); err == nil {
		t.Fatalf("Build accepted 3 operands for a 4-leaf shape")
	}
	if _, err := Build(ShapesFor(4)[0], operands(1, 2, 3, 4), []domain.Operator{domain.OpAdd}); err == nil {
		t.Fatalf("Build accepted 1 operator for 3 internal nodes")
	}
}

func TestPretty(t *testing.T) {
	if got := Pretty("(8 / 8 + 3) * 3 - 1"); got != "(8 ÷ 8 + 3) × 3 − 1" {
		t.Fatalf("Pretty = %q", got)
	}
}
