package expr

import (
	"testing"

	"github.com/oisee/symexpr/pkg/op"
)

func mustConst(t *testing.T, v uint64, w uint8) *Expr {
	t.Helper()
	e, err := BuildConstant(v, w)
	if err != nil {
		t.Fatalf("BuildConstant: %v", err)
	}
	return e
}

func mustVar(t *testing.T, name string, w uint8) *Expr {
	t.Helper()
	e, err := BuildVariable(StringIdent(name), w)
	if err != nil {
		t.Fatalf("BuildVariable: %v", err)
	}
	return e
}

func TestStructuralEqualityImpliesDerivedFieldsEqual(t *testing.T) {
	a, err := BuildBinary(op.ADD, mustVar(t, "x", 32), mustConst(t, 5, 32))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildBinary(op.ADD, mustVar(t, "x", 32), mustConst(t, 5, 32))
	if err != nil {
		t.Fatal(err)
	}
	if !a.StructurallyEqual(b) {
		t.Fatal("expected structural equality")
	}
	if a.Hash != b.Hash || a.Signature != b.Signature || a.Complexity != b.Complexity || a.Depth != b.Depth {
		t.Fatal("structurally equal expressions must have identical derived fields")
	}
}

func TestMismatchedWidthIsStructuralError(t *testing.T) {
	_, err := BuildBinary(op.ADD, mustVar(t, "x", 32), mustVar(t, "y", 16))
	if err == nil {
		t.Fatal("expected a structural error for width mismatch")
	}
	if _, ok := err.(*StructuralError); !ok {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
}

func TestShiftAllowsDifferentOperandWidth(t *testing.T) {
	x := mustVar(t, "x", 32)
	amt := mustConst(t, 3, 8)
	e, err := BuildBinary(op.LSHL, x, amt)
	if err != nil {
		t.Fatalf("shift with differing operand width should be allowed: %v", err)
	}
	if e.Width != 32 {
		t.Errorf("shift result width = %d, want 32 (inherited from lhs)", e.Width)
	}
}

func TestComparisonYieldsWidthOne(t *testing.T) {
	e, err := BuildBinary(op.ULT, mustVar(t, "x", 32), mustConst(t, 1, 32))
	if err != nil {
		t.Fatal(err)
	}
	if e.Width != 1 {
		t.Errorf("comparison width = %d, want 1", e.Width)
	}
}

func TestCastUsesConstantTargetWidth(t *testing.T) {
	x := mustVar(t, "x", 8)
	e, err := Resize(x, 32, true)
	if err != nil {
		t.Fatal(err)
	}
	if e.Width != 32 {
		t.Errorf("resize width = %d, want 32", e.Width)
	}
}

func TestDepthBoundIsEnforced(t *testing.T) {
	e := mustVar(t, "x", 8)
	var err error
	for i := 0; i < MaxDepth+5; i++ {
		e, err = BuildUnary(op.NOT, e)
		if err != nil {
			break
		}
	}
	if err == nil {
		t.Fatal("expected a structural error once MaxDepth is exceeded")
	}
}

func TestConstantIsFullyKnown(t *testing.T) {
	c := mustConst(t, 0x2A, 8)
	if !c.IsFullyKnown() {
		t.Fatal("a constant must be fully known")
	}
	if c.KnownOne&c.KnownZero != 0 {
		t.Fatal("known_one & known_zero must be 0")
	}
	full := bitvecAllOnes(8)
	if c.KnownOne|c.KnownZero != full {
		t.Fatal("a constant's known_one|known_zero must be all-ones")
	}
}

func TestIfBuildsTernaryOverPair(t *testing.T) {
	cond := mustConst(t, 1, 1)
	a := mustVar(t, "a", 32)
	b := mustVar(t, "b", 32)
	e, err := BuildIf(cond, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if e.Width != 32 {
		t.Errorf("IF width = %d, want 32", e.Width)
	}
	if e.Op != op.IF {
		t.Errorf("expected top operator IF")
	}
}

func bitvecAllOnes(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func TestSignatureSubsetIsReflexive(t *testing.T) {
	e, err := BuildBinary(op.AND, mustVar(t, "x", 16), mustConst(t, 0xFF, 16))
	if err != nil {
		t.Fatal(err)
	}
	if !CanMatch(e.Signature, e.Signature) {
		t.Fatal("a signature must be a subset of itself")
	}
}
