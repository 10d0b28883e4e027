package rational

import (
	"errors"
	"testing"
)

func TestArithmeticStaysExact(t *testing.T) {
	// 8 / (3 - 8/3) = 24, the classic case float math gets wrong.
	three := FromInt(3)
	eight := FromInt(8)

	q, err := eight.Div(three)
	if err != nil {
		t.Fatalf("8/3 failed: %v", err)
	}
	denom := three.Sub(q) // 1/3
	out, err := eight.Div(denom)
	if err != nil {
		t.Fatalf("8/(1/3) failed: %v", err)
	}
	if !out.Equal(FromInt(24)) {
		t.Fatalf("8/(3-8/3) = %s, want 24", out)
	}
	if n, ok := out.Int(); !ok || n != 24 {
		t.Fatalf("Int() = %d,%v, want 24,true", n, ok)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt(5).Div(FromInt(0))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Div by zero: got %v, want ErrDivisionByZero", err)
	}
	// A computed zero divisor must fail the same way.
	zero := FromInt(7).Sub(FromInt(7))
	if _, err := FromInt(1).Div(zero); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Div by computed zero: got %v", err)
	}
}

func TestIntProjection(t *testing.T) {
	half, err := FromInt(1).Div(FromInt(2))
	if err != nil {
		t.Fatalf("1/2 failed: %v", err)
	}
	if _, ok := half.Int(); ok {
		t.Fatalf("1/2 reported as whole number")
	}
	if half.String() != "1/2" {
		t.Fatalf("String() = %q, want 1/2", half.String())
	}
	// 1/2 + 1/2 reduces back to a whole number.
	if n, ok := half.Add(half).Int(); !ok || n != 1 {
		t.Fatalf("1/2+1/2 Int() = %d,%v, want 1,true", n, ok)
	}
}

func TestZeroValue(t *testing.T) {
	var zero Rat
	if !zero.Equal(FromInt(0)) {
		t.Fatalf("zero value != 0")
	}
	if got := zero.Add(FromInt(3)); !got.Equal(FromInt(3)) {
		t.Fatalf("0+3 = %s", got)
	}
}
