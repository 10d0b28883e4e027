package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

const maxAttempts = 50

// fallbackNormal are known-solvable puzzles for the full operator set,
// used when random draws keep missing within the attempt budget.
var fallbackNormal = [][]int{
	{1, 1, 8, 8}, // (8 + 8) * 1 + 8
	{1, 2, 3, 4}, // (1 + 2 + 3) * 4
	{2, 2, 6, 6}, // 6 * 2 + 6 * 2
	{1, 3, 4, 6}, // 6 / (1 - 3 / 4)
	{2, 3, 4, 4}, // (4 + 4 - 2) * 3 ... via (4 - 2) * 3 * 4
	{3, 3, 8, 8}, // 8 / (3 - 8 / 3)
	{1, 5, 5, 5}, // 5 * (5 - 1 / 5)
	{2, 4, 6, 8}, // 8 * 6 / (4 - 2)
}

// fallbackEasy reach 24 with + and − alone.
var fallbackEasy = [][]int{
	{3, 6, 7, 8}, // 3 + 6 + 7 + 8
	{1, 6, 8, 9}, // 1 + 6 + 8 + 9
	{2, 5, 8, 9}, // 2 + 5 + 8 + 9
	{4, 5, 7, 8}, // 4 + 5 + 7 + 8
	{1, 7, 9, 9}, // 9 + 9 + 7 − 1
}

// Generate deals four random numbers in 1..9, keeps the first solvable
// draw, and for expert additionally rejects puzzles with an obvious way
// in. Deterministic for a given seed and difficulty.
func (g *SolvableGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	deadline := start.Add(900 * time.Millisecond)
	allowed := diff.Operators()
	candidates := 0

	attempts := maxAttempts
	if diff == domain.Expert {
		// Expert redraws more; the anti-trivial filter discards a lot.
		attempts = 4 * maxAttempts
	}
	for i := 0; i < attempts && time.Now().Before(deadline); i++ {
		nums := draw(rng)
		spec := domain.NewSpec(nums, domain.Target, allowed)
		_, ok, st, err := g.Solver.FindFirst(ctx, spec)
		candidates += st.Candidates
		if err != nil {
			return nil, ports.Stats{Candidates: candidates, Duration: time.Since(start)}, err
		}
		if !ok {
			continue
		}
		if diff == domain.Expert && hasTrivialSolution(nums) {
			continue
		}
		return newPuzzle(seed, diff, nums), ports.Stats{Candidates: candidates, Duration: time.Since(start)}, nil
	}

	// Budget exhausted: hand out a known-solvable puzzle instead.
	nums := pickFallback(rng, diff)
	return newPuzzle(seed, diff, nums), ports.Stats{Candidates: candidates, Duration: time.Since(start)}, nil
}

func draw(rng *rand.Rand) []int {
	nums := make([]int, domain.OperandCount)
	for i := range nums {
		nums[i] = rng.Intn(9) + 1
	}
	return nums
}

func newPuzzle(seed int64, diff domain.Difficulty, nums []int) *domain.Puzzle {
	return &domain.Puzzle{
		ID:         fmt.Sprintf("%s-%d", diff, seed),
		Seed:       seed,
		Difficulty: diff,
		Numbers:    nums,
		Target:     domain.Target,
		CreatedAt:  time.Now().UnixNano(),
	}
}

func pickFallback(rng *rand.Rand, diff domain.Difficulty) []int {
	table := fallbackNormal
	if diff == domain.Easy {
		table = fallbackEasy
	}
	if diff == domain.Expert {
		var filtered [][]int
		for _, nums := range table {
			if !hasTrivialSolution(nums) {
				filtered = append(filtered, nums)
			}
		}
		table = filtered
	}
	nums := table[rng.Intn(len(table))]
	return append([]int(nil), nums...)
}

// hasTrivialSolution flags puzzles an experienced player cracks at a
// glance: the numbers sum to the target, or some number divides the
// target with the cofactor sitting right there.
func hasTrivialSolution(nums []int) bool {
	sum := 0
	for _, n := range nums {
		sum += n
	}
	if sum == domain.Target {
		return true
	}
	for i, n := range nums {
		if domain.Target%n != 0 {
			continue
		}
		want := domain.Target / n
		for j, m := range nums {
			if j != i && m == want {
				return true
			}
		}
	}
	return false
}
