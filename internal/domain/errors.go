package domain

// ParseErrorKind classifies why a submitted expression was rejected.
type ParseErrorKind int

const (
	ParseSyntax ParseErrorKind = iota
	ParseOperandMismatch
	ParseOperatorNotAllowed
	ParseDivisionByZero
	ParseWrongValue
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseSyntax:
		return "syntax"
	case ParseOperandMismatch:
		return "operand_mismatch"
	case ParseOperatorNotAllowed:
		return "operator_not_allowed"
	case ParseDivisionByZero:
		return "division_by_zero"
	default:
		return "wrong_value"
	}
}

// ParseError is a typed rejection of a player-submitted expression.
// Every rejection is recoverable; nothing in the checker is fatal.
type ParseError struct {
	Kind ParseErrorKind
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }
