// Package parser judges player-submitted expressions. It is the one
// place the engine builds a tree from untrusted input: a closed grammar
// of numbers, the four operators and parentheses, evaluated with the
// same exact arithmetic as the search.
package parser

import (
	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/expr"
)

// precedence per operator; × and ÷ bind tighter than + and −.
var precedence = map[domain.Operator]int{
	domain.OpAdd: 1,
	domain.OpSub: 1,
	domain.OpMul: 2,
	domain.OpDiv: 2,
}

// parser is a precedence climber over the token stream.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parse consumes the whole stream into a tree. Leaves get slot -1 until
// validation binds them to spec operands.
func parse(toks []token) (expr.Node, *domain.ParseError) {
	p := &parser{toks: toks}
	node, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if t, ok := p.peek(); ok {
		if t.kind == tokRParen {
			return nil, syntaxErr("unbalanced parentheses: unexpected ')'")
		}
		return nil, syntaxErr("unexpected token after expression")
	}
	return node, nil
}

func (p *parser) parseExpr(minPrec int) (expr.Node, *domain.ParseError) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOperator || precedence[t.op] < minPrec {
			break
		}
		p.pos++
		// All four operators are left-associative.
		rhs, err := p.parseExpr(precedence[t.op] + 1)
		if err != nil {
			return nil, err
		}
		lhs = &expr.Binary{Op: t.op, Left: lhs, Right: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAtom() (expr.Node, *domain.ParseError) {
	t, ok := p.next()
	if !ok {
		return nil, syntaxErr("expression ends where a number was expected")
	}
	switch t.kind {
	case tokNumber:
		return &expr.Leaf{Operand: domain.Operand{Slot: -1, Value: t.num}}, nil
	case tokLParen:
		inner, err := p.parseExpr(1)
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.kind != tokRParen {
			return nil, syntaxErr("unbalanced parentheses: missing ')'")
		}
		return inner, nil
	case tokOperator:
		return nil, syntaxErr("operator %q where a number was expected", t.op.Display())
	default:
		return nil, syntaxErr("empty sub-expression")
	}
}
