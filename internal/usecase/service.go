package usecase

import (
	"context"
	"errors"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Checker   ports.Checker
	Hinter    ports.Hinter
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, c ports.Checker, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Checker: c, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solutions(ctx context.Context, spec domain.PuzzleSpec) ([]string, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.FindAll(ctx, spec)
}

func (u *Service) FirstSolution(ctx context.Context, spec domain.PuzzleSpec) (string, bool, ports.Stats, error) {
	if u.Solver == nil {
		return "", false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.FindFirst(ctx, spec)
}

func (u *Service) NewPuzzle(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Check(ctx context.Context, text string, spec domain.PuzzleSpec) (int64, error) {
	if u.Checker == nil {
		return 0, errNotConfigured
	}
	return u.Checker.Check(ctx, text, spec)
}

func (u *Service) Hint(ctx context.Context, spec domain.PuzzleSpec, d domain.Difficulty) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, spec, d)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}

// Scoreboard bookkeeping. Load-modify-save keeps the stats file the
// single source of truth across the TUI and the web adapter.

func (u *Service) Stats(ctx context.Context) (*domain.SessionStats, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.LoadStats(ctx)
}

func (u *Service) RecordPlayed(ctx context.Context) (*domain.SessionStats, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	s, err := u.Storage.LoadStats(ctx)
	if err != nil {
		return nil, err
	}
	s.GamesPlayed++
	return s, u.Storage.SaveStats(ctx, s)
}

func (u *Service) RecordSolve(ctx context.Context, millis int64) (*domain.SessionStats, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	s, err := u.Storage.LoadStats(ctx)
	if err != nil {
		return nil, err
	}
	s.RecordSolve(millis)
	return s, u.Storage.SaveStats(ctx, s)
}
