package ports

import (
	"context"
	"time"

	"svw.info/twentyfour/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Candidates int
	Duration   time.Duration
}

// Solver exhaustively searches a puzzle for target-hitting expressions.
type Solver interface {
	FindAll(ctx context.Context, spec domain.PuzzleSpec) ([]string, Stats, error)
	FindFirst(ctx context.Context, spec domain.PuzzleSpec) (string, bool, Stats, error)
}

// Generator creates new solvable puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Checker judges a player-submitted expression against a puzzle.
// Rejections come back as *domain.ParseError.
type Checker interface {
	Check(ctx context.Context, text string, spec domain.PuzzleSpec) (int64, error)
}

// Hinter produces a difficulty-appropriate hint for the current puzzle.
type Hinter interface {
	Hint(ctx context.Context, spec domain.PuzzleSpec, d domain.Difficulty) (domain.Hint, bool, error)
}

// Storage persists puzzles and the session scoreboard as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	SaveStats(ctx context.Context, s *domain.SessionStats) error
	LoadStats(ctx context.Context) (*domain.SessionStats, error)
}
