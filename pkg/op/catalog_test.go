package op

import (
	"testing"

	"github.com/oisee/symexpr/pkg/bitvec"
)

func TestEvaluatorsAgreeWithPartialEvalOnFullyKnownInputs(t *testing.T) {
	width := uint8(8)
	binaryOps := []Operator{AND, OR, XOR, ADD, SUB, MUL, UDIV, SDIV, ULT, SGT, EQ, NE, UMAX, SMIN, LOR}

	for _, o := range binaryOps {
		lhs := bitvec.New(0x5A, width)
		rhs := bitvec.New(0x0F, width)
		if o == UDIV || o == SDIV {
			rhs = bitvec.New(3, width)
		}

		want := Eval(o, lhs, rhs)
		got := EvalBits(o, width, bitvec.Full(lhs), bitvec.Full(rhs))

		resultWidth := width
		if IsComparison(o) {
			resultWidth = 1
		}
		if !got.IsFullyKnown(resultWidth) {
			t.Errorf("%s: partial eval on fully-known inputs must be fully known", o)
			continue
		}
		if got.AsValue(resultWidth).Raw != want.Raw {
			t.Errorf("%s: Eval=%s EvalBits=%s disagree", o, want, got.AsValue(resultWidth))
		}
	}
}

func TestEvalBitsUnaryAgreesOnFullyKnown(t *testing.T) {
	a := bitvec.New(0x3C, 8)
	for _, o := range []Operator{NOT, NEG, POPCNT, LZCNT} {
		want := EvalUnary(o, a)
		got := EvalBitsUnary(o, 8, bitvec.Full(a))
		if !got.IsFullyKnown(8) || got.AsValue(8).Raw != want.Raw {
			t.Errorf("%s: EvalUnary=%s EvalBitsUnary=%s disagree", o, want, got.AsValue(8))
		}
	}
}

func TestKnownBitsAndOr(t *testing.T) {
	// bit0 known-one in both, bit1 known-zero in lhs only -> AND result
	// must keep bit1 known-zero; OR must keep bit0 known-one.
	lhs := bitvec.KnownBits{One: 0b01, Zero: 0b10}
	rhs := bitvec.KnownBits{One: 0b01, Zero: 0b00}

	and := EvalBits(AND, 4, lhs, rhs)
	if and.One&0b01 == 0 {
		t.Errorf("AND should keep known-one bit0")
	}
	if and.Zero&0b10 == 0 {
		t.Errorf("AND should propagate known-zero bit1 from either operand")
	}

	or := EvalBits(OR, 4, lhs, rhs)
	if or.One&0b01 == 0 {
		t.Errorf("OR should keep known-one bit0")
	}
}

func TestNotFlipsKnownBits(t *testing.T) {
	a := bitvec.KnownBits{One: 0b0101, Zero: 0b1010}
	got := EvalBitsUnary(NOT, 4, a)
	if got.One != 0b1010 || got.Zero != 0b0101 {
		t.Errorf("NOT should swap known-one/known-zero, got one=%b zero=%b", got.One, got.Zero)
	}
}

func TestDivisionByZeroInPartialEvalDoesNotPanic(t *testing.T) {
	zero := bitvec.Full(bitvec.New(0, 8))
	nonzero := bitvec.Full(bitvec.New(5, 8))
	got := EvalBits(UDIV, 8, nonzero, zero)
	if !got.IsFullyKnown(8) {
		t.Fatal("division by a known-zero constant should still fully evaluate (saturating convention)")
	}
}
