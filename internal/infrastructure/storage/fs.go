// Package storage persists puzzles and the session scoreboard as JSON
// files under a data directory, puzzles bucketed by difficulty.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/twentyfour/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

const statsFile = "stats.json"

func diffDir(d domain.Difficulty) string { return d.String() }

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, diffDir(d), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	// Probe every difficulty bucket; the caller only knows the ID.
	dirs := []domain.Difficulty{domain.Easy, domain.Normal, domain.Hard, domain.Expert}
	var data []byte
	for _, d := range dirs {
		path := s.pathFor(id, d)
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	dirs := []domain.Difficulty{domain.Easy, domain.Normal, domain.Hard, domain.Expert}
	for _, d := range dirs {
		path := filepath.Join(s.dir, diffDir(d))
		ents, err := os.ReadDir(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(path, e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Difficulty: p.Difficulty,
				CreatedAt:  p.CreatedAt,
				Solved:     p.Solved,
			})
		}
	}
	return out, nil
}

// SaveStats writes the scoreboard to stats.json in the data root.
func (s *FS) SaveStats(ctx context.Context, st *domain.SessionStats) error {
	if st == nil {
		return errors.New("invalid stats: nil")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(s.dir, statsFile))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}

// LoadStats returns a zero scoreboard when none has been saved yet.
func (s *FS) LoadStats(ctx context.Context) (*domain.SessionStats, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, statsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.SessionStats{}, nil
		}
		return nil, err
	}
	var out domain.SessionStats
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
