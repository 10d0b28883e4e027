package parser

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/expr"
	"svw.info/twentyfour/internal/rational"
)

// Checker implements ports.Checker.
type Checker struct{}

func New() *Checker { return &Checker{} }

// Check normalizes, tokenizes, parses and validates text against spec,
// then evaluates it exactly. On success the returned value equals
// spec.Target; every failure is a *domain.ParseError.
func (c *Checker) Check(ctx context.Context, text string, spec domain.PuzzleSpec) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	toks, perr := tokenize(normalize(text))
	if perr != nil {
		return 0, perr
	}
	tree, perr := parse(toks)
	if perr != nil {
		return 0, perr
	}
	if perr := checkOperands(tree, spec); perr != nil {
		return 0, perr
	}
	if perr := checkOperators(toks, spec); perr != nil {
		return 0, perr
	}
	v, err := tree.Eval()
	if err != nil {
		if errors.Is(err, rational.ErrDivisionByZero) {
			return 0, &domain.ParseError{Kind: domain.ParseDivisionByZero, Msg: "division by zero"}
		}
		return 0, err
	}
	if !v.Equal(rational.FromInt(int64(spec.Target))) {
		return 0, &domain.ParseError{
			Kind: domain.ParseWrongValue,
			Msg:  fmt.Sprintf("result is %s, not %d", v.String(), spec.Target),
		}
	}
	n, _ := v.Int()
	return n, nil
}

// checkOperands compares the parsed leaves, as a multiset, against the
// spec's operand values: each number used exactly once.
func checkOperands(tree expr.Node, spec domain.PuzzleSpec) *domain.ParseError {
	remaining := make(map[int]int, len(spec.Operands))
	for _, o := range spec.Operands {
		remaining[o.Value]++
	}
	leaves := expr.Leaves(tree)
	for _, l := range leaves {
		if remaining[l.Value] == 0 {
			return operandErr(spec)
		}
		remaining[l.Value]--
	}
	if len(leaves) != len(spec.Operands) {
		return operandErr(spec)
	}
	return nil
}

func operandErr(spec domain.PuzzleSpec) *domain.ParseError {
	vals := spec.Values()
	sort.Ints(vals)
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return &domain.ParseError{
		Kind: domain.ParseOperandMismatch,
		Msg:  "you must use each of " + strings.Join(parts, ", ") + " exactly once",
	}
}

// checkOperators rejects any operator outside the allowed set.
func checkOperators(toks []token, spec domain.PuzzleSpec) *domain.ParseError {
	allowed := make(map[domain.Operator]bool, len(spec.Allowed))
	for _, o := range spec.Allowed {
		allowed[o] = true
	}
	for _, t := range toks {
		if t.kind == tokOperator && !allowed[t.op] {
			return &domain.ParseError{
				Kind: domain.ParseOperatorNotAllowed,
				Msg:  fmt.Sprintf("operator %s is not allowed at this difficulty", t.op.Display()),
			}
		}
	}
	return nil
}
