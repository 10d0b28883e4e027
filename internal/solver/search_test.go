package solver

import (
	"context"
	"testing"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/parser"
)

func spec(values ...int) domain.PuzzleSpec {
	return domain.NewSpec(values, domain.Target, domain.Normal.Operators())
}

func TestFindAllClassicPuzzles(t *testing.T) {
	s := NewExhaustiveSolver()
	check := parser.New()

	cases := []struct {
		name     string
		spec     domain.PuzzleSpec
		solvable bool
		contains string
	}{
		{"3,3,8,8", spec(3, 3, 8, 8), true, "8 / (3 - (8 / 3))"},
		{"1,2,3,4", spec(1, 2, 3, 4), true, "((1 + 2) + 3) * 4"},
		{"1,1,1,1", spec(1, 1, 1, 1), false, ""},
		{"1,5,5,5", spec(1, 5, 5, 5), true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			sols, st, err := s.FindAll(ctx, tc.spec)
			if err != nil {
				t.Fatalf("FindAll failed: %v (candidates=%d dur=%v)", err, st.Candidates, st.Duration)
			}
			if tc.solvable != (len(sols) > 0) {
				t.Fatalf("solvable=%v but got %d solutions", tc.solvable, len(sols))
			}

			// Every rendering must be distinct and must independently
			// re-evaluate to the target.
			seen := make(map[string]bool, len(sols))
			for _, sol := range sols {
				if seen[sol] {
					t.Fatalf("duplicate rendering %q", sol)
				}
				seen[sol] = true
				v, err := check.Check(ctx, sol, tc.spec)
				if err != nil {
					t.Fatalf("solution %q rejected by checker: %v", sol, err)
				}
				if v != int64(tc.spec.Target) {
					t.Fatalf("solution %q = %d, want %d", sol, v, tc.spec.Target)
				}
			}
			if tc.contains != "" && !seen[tc.contains] {
				t.Fatalf("expected %q among %d solutions", tc.contains, len(sols))
			}
		})
	}
}

func TestFindFirstAgreesWithFindAll(t *testing.T) {
	s := NewExhaustiveSolver()
	specs := []domain.PuzzleSpec{
		spec(3, 3, 8, 8),
		spec(1, 1, 1, 1),
		spec(2, 2, 6, 6),
		spec(1, 1, 1, 9),
	}
	for _, sp := range specs {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		all, _, err := s.FindAll(ctx, sp)
		if err != nil {
			cancel()
			t.Fatalf("FindAll failed: %v", err)
		}
		first, ok, _, err := s.FindFirst(ctx, sp)
		cancel()
		if err != nil {
			t.Fatalf("FindFirst failed: %v", err)
		}
		if ok != (len(all) > 0) {
			t.Fatalf("FindFirst ok=%v but FindAll returned %d", ok, len(all))
		}
		if ok && first != all[0] {
			t.Fatalf("FindFirst %q != head of FindAll %q", first, all[0])
		}
	}
}

func TestFindAllDeterministic(t *testing.T) {
	s := NewExhaustiveSolver()
	ctx := context.Background()
	a, _, err := s.FindAll(ctx, spec(2, 4, 6, 8))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, _, err := s.FindAll(ctx, spec(2, 4, 6, 8))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("runs disagree: %d vs %d solutions", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestRestrictedOperators(t *testing.T) {
	s := NewExhaustiveSolver()
	ctx := context.Background()

	easy := domain.NewSpec([]int{3, 6, 7, 8}, domain.Target, domain.Easy.Operators())
	sols, _, err := s.FindAll(ctx, easy)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(sols) == 0 {
		t.Fatalf("3+6+7+8 should solve under +,− alone")
	}
	for _, sol := range sols {
		for _, c := range sol {
			if c == '*' || c == '/' {
				t.Fatalf("solution %q uses an operator outside the easy set", sol)
			}
		}
	}
}

func TestDivisionByZeroCandidatesAreSkipped(t *testing.T) {
	// Plenty of candidates for [0,0,6,4] divide by zero; the search must
	// survive them and still find e.g. 6 * 4 + 0 + 0.
	s := NewExhaustiveSolver()
	sols, _, err := s.FindAll(context.Background(), spec(0, 0, 6, 4))
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(sols) == 0 {
		t.Fatalf("expected solutions despite zero operands")
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	s := NewExhaustiveSolver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := s.FindAll(ctx, spec(3, 3, 8, 8)); err == nil {
		t.Fatalf("expected error from canceled context")
	}
}
