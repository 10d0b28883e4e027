package hint

import (
	"context"
	"strings"
	"testing"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/solver"
)

func TestHintTiers(t *testing.T) {
	h := NewTiered(solver.NewExhaustiveSolver())
	ctx := context.Background()

	easy := domain.NewSpec([]int{3, 6, 7, 8}, domain.Target, domain.Easy.Operators())
	got, found, err := h.Hint(ctx, easy, domain.Easy)
	if err != nil || !found {
		t.Fatalf("easy hint: found=%v err=%v", found, err)
	}
	if !strings.Contains(got.Message, "+") || !strings.Contains(got.Message, "−") {
		t.Fatalf("easy hint should name the operators, got %q", got.Message)
	}

	normal := domain.NewSpec([]int{1, 2, 3, 4}, domain.Target, domain.Normal.Operators())
	got, found, err = h.Hint(ctx, normal, domain.Normal)
	if err != nil || !found {
		t.Fatalf("normal hint: found=%v err=%v", found, err)
	}
	if got.Message == "" {
		t.Fatalf("normal hint empty")
	}

	hard := domain.NewSpec([]int{3, 3, 8, 8}, domain.Target, domain.Hard.Operators())
	got, found, err = h.Hint(ctx, hard, domain.Hard)
	if err != nil || !found {
		t.Fatalf("hard hint: found=%v err=%v", found, err)
	}
	// The only way into 24 from 3,3,8,8 uses − and ÷.
	if !strings.Contains(got.Message, "÷") {
		t.Fatalf("hard hint should reveal ÷, got %q", got.Message)
	}
}

func TestHintNoSolution(t *testing.T) {
	h := NewTiered(solver.NewExhaustiveSolver())
	spec := domain.NewSpec([]int{1, 1, 1, 1}, domain.Target, domain.Normal.Operators())
	got, found, err := h.Hint(context.Background(), spec, domain.Normal)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !found || !strings.Contains(got.Message, "No solution") {
		t.Fatalf("expected a no-solution message, got found=%v %q", found, got.Message)
	}
}

func TestIsLeftChain(t *testing.T) {
	if !isLeftChain("((1 + 2) + 3) * 4") {
		t.Fatalf("left comb not recognized")
	}
	if isLeftChain("8 / (3 - (8 / 3))") {
		t.Fatalf("right-nested tree misread as left chain")
	}
}
