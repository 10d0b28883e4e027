package storage

import (
	"context"
	"testing"

	"svw.info/twentyfour/internal/domain"
)

func TestPuzzleRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	p := &domain.Puzzle{
		ID:         "hard-42",
		Seed:       42,
		Difficulty: domain.Hard,
		Numbers:    []int{3, 3, 8, 8},
		Target:     24,
		CreatedAt:  1700000000,
		Solved:     true,
		Expression: "8 / (3 - (8 / 3))",
	}
	if err := fs.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := fs.Load(ctx, "hard-42")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ID != p.ID || got.Difficulty != p.Difficulty || got.Expression != p.Expression {
		t.Fatalf("Load mismatch: %+v", got)
	}

	metas, err := fs.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "hard-42" || !metas[0].Solved {
		t.Fatalf("List = %+v", metas)
	}
}

func TestSaveRequiresID(t *testing.T) {
	fs := NewFS(t.TempDir())
	if err := fs.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatalf("Save accepted a puzzle without ID")
	}
}

func TestStatsRoundTrip(t *testing.T) {
	fs := NewFS(t.TempDir())
	ctx := context.Background()

	// Fresh directory reads back as a zero scoreboard, not an error.
	s, err := fs.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats on empty dir failed: %v", err)
	}
	if s.GamesPlayed != 0 {
		t.Fatalf("fresh stats not zero: %+v", s)
	}

	s.GamesPlayed = 3
	s.RecordSolve(9500)
	s.RecordSolve(4200)
	if err := fs.SaveStats(ctx, s); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}
	got, err := fs.LoadStats(ctx)
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if got.GamesSolved != 2 || got.BestMillis != 4200 || got.TotalMillis != 13700 {
		t.Fatalf("stats mismatch: %+v", got)
	}
}
