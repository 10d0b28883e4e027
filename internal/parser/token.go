package parser

import (
	"fmt"
	"strings"

	"svw.info/twentyfour/internal/domain"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	op   domain.Operator
	num  int
	pos  int
}

// normalize maps the display glyphs players may type back to ASCII and
// drops whitespace. Must mirror expr.Pretty exactly or round-tripping
// rendered solutions breaks.
func normalize(text string) string {
	r := strings.NewReplacer("×", "*", "÷", "/", "−", "-", " ", "", "\t", "")
	return r.Replace(text)
}

func syntaxErr(format string, args ...any) *domain.ParseError {
	return &domain.ParseError{Kind: domain.ParseSyntax, Msg: fmt.Sprintf(format, args...)}
}

// tokenize splits normalized text into numbers, operators and parens.
// Any other rune is a syntax error.
func tokenize(text string) ([]token, *domain.ParseError) {
	var toks []token
	runes := []rune(text)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch {
		case c >= '0' && c <= '9':
			start := i
			n := 0
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				n = n*10 + int(runes[i]-'0')
				i++
			}
			toks = append(toks, token{kind: tokNumber, num: n, pos: start})
		case c == '+':
			toks = append(toks, token{kind: tokOperator, op: domain.OpAdd, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokOperator, op: domain.OpSub, pos: i})
			i++
		case c == '*':
			toks = append(toks, token{kind: tokOperator, op: domain.OpMul, pos: i})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokOperator, op: domain.OpDiv, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		default:
			return nil, syntaxErr("invalid character %q in expression; use numbers, + − × ÷ and parentheses", string(c))
		}
	}
	if len(toks) == 0 {
		return nil, syntaxErr("empty expression")
	}
	return toks, nil
}
