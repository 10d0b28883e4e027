// Package rational provides the exact fraction arithmetic the engine and
// the expression checker share. Values are immutable; every operation
// returns a new reduced fraction with a positive denominator.
package rational

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero reports a zero divisor. The search prunes on it,
// the checker surfaces it to the player.
var ErrDivisionByZero = errors.New("division by zero")

// Rat is an exact fraction. The zero value is 0/1.
type Rat struct {
	r *big.Rat
}

// FromInt lifts an integer.
func FromInt(n int64) Rat {
	return Rat{r: new(big.Rat).SetInt64(n)}
}

func (a Rat) val() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

func (a Rat) Add(b Rat) Rat {
	return Rat{r: new(big.Rat).Add(a.val(), b.val())}
}

func (a Rat) Sub(b Rat) Rat {
	return Rat{r: new(big.Rat).Sub(a.val(), b.val())}
}

func (a Rat) Mul(b Rat) Rat {
	return Rat{r: new(big.Rat).Mul(a.val(), b.val())}
}

// Div returns a/b, or ErrDivisionByZero when b is zero.
func (a Rat) Div(b Rat) (Rat, error) {
	bv := b.val()
	if bv.Sign() == 0 {
		return Rat{}, ErrDivisionByZero
	}
	return Rat{r: new(big.Rat).Quo(a.val(), bv)}, nil
}

func (a Rat) Equal(b Rat) bool {
	return a.val().Cmp(b.val()) == 0
}

// Int returns the value as an integer when the denominator is 1.
func (a Rat) Int() (int64, bool) {
	v := a.val()
	if !v.IsInt() {
		return 0, false
	}
	return v.Num().Int64(), true
}

// String renders "n" or "n/d" in lowest terms.
func (a Rat) String() string {
	return a.val().RatString()
}
