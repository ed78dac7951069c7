package rational

import (
	"testing"

	"dimensional/internal/errors"
)

func TestNewReduces(t *testing.T) {
	tests := []struct {
		num, den         int64
		wantNum, wantDen int64
	}{
		{2, 4, 1, 2},
		{-6, 9, -2, 3},
		{6, -9, -2, 3},
		{-6, -9, 2, 3},
		{0, 5, 0, 1},
		{7, 1, 7, 1},
	}

	for _, tt := range tests {
		r := New(tt.num, tt.den)
		if r.Num() != tt.wantNum || r.Den() != tt.wantDen {
			t.Errorf("New(%d, %d) = %d/%d, want %d/%d", tt.num, tt.den, r.Num(), r.Den(), tt.wantNum, tt.wantDen)
		}
	}
}

func TestNewZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic for zero denominator")
		}
	}()
	_ = New(1, 0)
}

func TestArithmetic(t *testing.T) {
	third := New(1, 3)
	half := New(1, 2)

	if got := third.Add(half); !got.Equal(New(5, 6)) {
		t.Errorf("1/3 + 1/2 = %s", got)
	}
	if got := third.Sub(half); !got.Equal(New(-1, 6)) {
		t.Errorf("1/3 - 1/2 = %s", got)
	}
	if got := third.Mul(Int(3)); !got.Equal(One) || !got.IsInt() {
		t.Errorf("1/3 * 3 = %s", got)
	}
	if got := New(-3, 4).Inv(); !got.Equal(New(-4, 3)) {
		t.Errorf("inverse of -3/4 = %s", got)
	}
	if got := third.Add(third.Neg()); !got.IsZero() {
		t.Errorf("1/3 - 1/3 = %s", got)
	}
}

func TestCmp(t *testing.T) {
	if New(1, 3).Cmp(New(1, 2)) != -1 {
		t.Error("1/3 should be less than 1/2")
	}
	if New(2, 4).Cmp(New(1, 2)) != 0 {
		t.Error("2/4 should equal 1/2")
	}
	if Int(-1).Cmp(New(-3, 2)) != 1 {
		t.Error("-1 should be greater than -3/2")
	}
}

func TestZeroValueIsZero(t *testing.T) {
	var r Rational
	if !r.IsZero() || !r.IsInt() || r.Den() != 1 {
		t.Errorf("zero value should behave as 0/1, got %d/%d", r.Num(), r.Den())
	}
	if !r.Equal(Zero) {
		t.Error("zero value should equal Zero")
	}
}

func TestString(t *testing.T) {
	tests := map[Rational]string{
		Int(2):      "2",
		Int(-1):     "-1",
		New(1, 3):   "1/3",
		New(-3, 2):  "-3/2",
		Zero:        "0",
		New(10, 20): "1/2",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestOverflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic on overflow")
		}
		if err, ok := r.(*errors.Error); !ok || err.Type != errors.TypeInternal {
			t.Errorf("Expected internal error panic, got %T: %v", r, r)
		}
	}()
	big := Int(1 << 62)
	_ = big.Mul(Int(4))
}
