package errors

import (
	"fmt"
	"strings"
	"testing"
)

type name string

func (n name) String() string { return string(n) }

func TestErrorFormatting(t *testing.T) {
	err := InvalidArgument("scale must be positive")
	if got := err.Error(); got != "[INVALID_ARGUMENT] scale must be positive" {
		t.Errorf("unexpected message: %s", got)
	}

	wrapped := Config("failed to read config", fmt.Errorf("boom"))
	if !strings.HasSuffix(wrapped.Error(), ": boom") {
		t.Errorf("expected cause in message, got %s", wrapped.Error())
	}
}

func TestIsTypeWalksChain(t *testing.T) {
	inner := DimensionMismatch("add", name("length^1"), name("time^1"))
	outer := Wrap(TypeInternal, "check failed", fmt.Errorf("step: %w", inner))

	if !IsType(outer, TypeInternal) {
		t.Error("expected outer type to match")
	}
	if !IsType(outer, TypeDimensionMismatch) {
		t.Error("expected wrapped dimension mismatch to be found")
	}
	if IsType(outer, TypeUnitMismatch) {
		t.Error("unit mismatch should not match")
	}
	if IsType(fmt.Errorf("plain"), TypeInternal) {
		t.Error("plain errors carry no type")
	}
	if IsType(nil, TypeInternal) {
		t.Error("nil carries no type")
	}
}

func TestMismatchContext(t *testing.T) {
	err := UnitMismatch("compare", name("1 length^1"), name("1000 length^1"))
	if err.Context["left"] != "1 length^1" || err.Context["right"] != "1000 length^1" {
		t.Errorf("unexpected context: %v", err.Context)
	}
	if !err.Is(TypeUnitMismatch) {
		t.Error("expected unit mismatch type")
	}
}
