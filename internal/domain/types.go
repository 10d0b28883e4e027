package domain

// Target is the value every round asks players to reach.
const Target = 24

// OperandCount is the number of operands dealt per round.
const OperandCount = 4

// Operand is one input number, identified by slot so that duplicate
// values (two 3's, say) remain distinct when checking "use each once".
type Operand struct {
	Slot  int `json:"slot"`
	Value int `json:"value"`
}

// PuzzleSpec is one round as seen by the engine: operands, target and
// the operator set the current difficulty allows. Read-only.
type PuzzleSpec struct {
	Operands []Operand
	Target   int
	Allowed  []Operator
}

// NewSpec assigns slots to values in order.
func NewSpec(values []int, target int, allowed []Operator) PuzzleSpec {
	ops := make([]Operand, len(values))
	for i, v := range values {
		ops[i] = Operand{Slot: i, Value: v}
	}
	return PuzzleSpec{Operands: ops, Target: target, Allowed: allowed}
}

// Values returns the operand values in slot order.
func (s PuzzleSpec) Values() []int {
	out := make([]int, len(s.Operands))
	for i, o := range s.Operands {
		out[i] = o.Value
	}
	return out
}

// Puzzle is a persisted round with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Numbers    []int      `json:"numbers"`
	Target     int        `json:"target"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Filled in once the player solves the round.
	Solved      bool   `json:"solved,omitempty"`
	SolveMillis int64  `json:"solveMillis,omitempty"`
	Expression  string `json:"expression,omitempty"`
}

// Spec builds the engine-facing view of this puzzle.
func (p *Puzzle) Spec() PuzzleSpec {
	return NewSpec(p.Numbers, p.Target, p.Difficulty.Operators())
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
	Solved     bool       `json:"solved,omitempty"`
}

// Hint is a suggestion for the UI.
type Hint struct {
	Message string `json:"message,omitempty"`
}

// SessionStats is the player's running scoreboard.
type SessionStats struct {
	GamesPlayed int   `json:"gamesPlayed"`
	GamesSolved int   `json:"gamesSolved"`
	TotalMillis int64 `json:"totalMillis"`
	BestMillis  int64 `json:"bestMillis,omitempty"` // 0 = no solve yet
}

// RecordSolve folds one successful round into the stats.
func (s *SessionStats) RecordSolve(millis int64) {
	s.GamesSolved++
	s.TotalMillis += millis
	if s.BestMillis == 0 || millis < s.BestMillis {
		s.BestMillis = millis
	}
}

// SuccessRate is in percent.
func (s *SessionStats) SuccessRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return 100 * float64(s.GamesSolved) / float64(s.GamesPlayed)
}

// AverageMillis is the mean solve time across solved rounds.
func (s *SessionStats) AverageMillis() int64 {
	if s.GamesSolved == 0 {
		return 0
	}
	return s.TotalMillis / int64(s.GamesSolved)
}
