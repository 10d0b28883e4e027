package domain

// Difficulty selects the operator set and hint verbosity for a round.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "normal"
	}
}

// ParseDifficulty maps a user-supplied label to a Difficulty,
// defaulting to Normal.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Normal
	}
}

// Operators returns the operator set players may use at this difficulty.
func (d Difficulty) Operators() []Operator {
	if d == Easy {
		return []Operator{OpAdd, OpSub}
	}
	return []Operator{OpAdd, OpSub, OpMul, OpDiv}
}

// Operator is one of the four binary arithmetic operations.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Symbol is the ASCII form used in canonical renderings and parsing.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	default:
		return "/"
	}
}

// Display is the glyph shown to players (×, ÷, −).
func (o Operator) Display() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "−"
	case OpMul:
		return "×"
	default:
		return "÷"
	}
}
