package expr

import (
	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/rational"
)

func (l *Leaf) Eval() (rational.Rat, error) {
	return rational.FromInt(int64(l.Operand.Value)), nil
}

func (b *Binary) Eval() (rational.Rat, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return rational.Rat{}, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return rational.Rat{}, err
	}
	switch b.Op {
	case domain.OpAdd:
		return left.Add(right), nil
	case domain.OpSub:
		return left.Sub(right), nil
	case domain.OpMul:
		return left.Mul(right), nil
	default:
		return left.Div(right)
	}
}
