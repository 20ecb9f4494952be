package expr

import (
	"fmt"

	"github.com/oisee/symexpr/pkg/bitvec"
	"github.com/oisee/symexpr/pkg/op"
)

// MaxDepth bounds expression depth (spec.md §5's resource bound); building
// an expression deeper than this returns a StructuralError.
const MaxDepth = 1024

// StructuralError reports a width or depth rule violation while building an
// expression — spec.md §7's "Structural" error kind, surfaced to the caller.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string { return "expr: structural error: " + e.Reason }

func structErr(format string, args ...any) error {
	return &StructuralError{Reason: fmt.Sprintf(format, args...)}
}

// BuildConstant builds a Const node, masking value to width.
func BuildConstant(value uint64, width uint8) (*Expr, error) {
	if width == 0 || width > bitvec.MaxWidth {
		return nil, structErr("invalid width %d", width)
	}
	raw := value & bitvec.Mask(width)
	k := bitvec.Full(bitvec.New(raw, width))
	return &Expr{
		Kind:       KindConst,
		ConstValue: raw,
		Width:      width,
		Depth:      0,
		Complexity: constComplexity,
		KnownOne:   k.One,
		KnownZero:  k.Zero,
		Signature:  constSignature(raw),
		Hash:       constHash(width, raw),
	}, nil
}

// BuildVariable builds a Var node.
func BuildVariable(id Identifier, width uint8) (*Expr, error) {
	if width == 0 || width > bitvec.MaxWidth {
		return nil, structErr("invalid width %d", width)
	}
	return &Expr{
		Kind:       KindVar,
		Ident:      id,
		Width:      width,
		Depth:      0,
		Complexity: varComplexity,
		KnownOne:   0,
		KnownZero:  0,
		Signature:  varSignature(),
		Hash:       varHash(width, id),
	}, nil
}

// BuildUnary builds a Unary(op, operand) node.
func BuildUnary(o op.Operator, operand *Expr) (*Expr, error) {
	if o.ArityOf() != op.Unary {
		return nil, structErr("operator %s is not unary", o)
	}
	if operand == nil {
		return nil, structErr("nil operand")
	}
	depth := operand.Depth + 1
	if depth > MaxDepth {
		return nil, structErr("expression depth %d exceeds MaxDepth %d", depth, MaxDepth)
	}
	width := operand.Width

	known := op.EvalBitsUnary(o, width, bitvec.KnownBits{One: operand.KnownOne, Zero: operand.KnownZero})

	return &Expr{
		Kind:       KindUnary,
		Op:         o,
		RHS:        operand,
		Width:      width,
		Depth:      depth,
		Complexity: 1 + operand.Complexity + float64(o.Weight()),
		KnownOne:   known.One,
		KnownZero:  known.Zero,
		Signature:  unarySignature(o, operand.Signature),
		Hash:       unaryHash(width, o, operand.Hash),
	}, nil
}

// BuildBinary builds a Binary(op, lhs, rhs) node, enforcing spec.md §3's
// width rules: operands must share a width except for shifts/rotates
// (rhs is a shift amount, width-independent) and casts (rhs carries the
// target width as a constant); comparisons and BITSELECT yield width 1.
func BuildBinary(o op.Operator, lhs, rhs *Expr) (*Expr, error) {
	if o.ArityOf() != op.Binary {
		return nil, structErr("operator %s is not binary", o)
	}
	if lhs == nil || rhs == nil {
		return nil, structErr("nil operand")
	}
	depth := maxInt(lhs.Depth, rhs.Depth) + 1
	if depth > MaxDepth {
		return nil, structErr("expression depth %d exceeds MaxDepth %d", depth, MaxDepth)
	}

	if o == op.PAIR {
		if lhs.Width != rhs.Width {
			return nil, structErr("PAIR then/else width mismatch: %d vs %d", lhs.Width, rhs.Width)
		}
		return buildPair(lhs, rhs, depth)
	}

	if op.IsCast(o) {
		return buildCast(o, lhs, rhs, depth)
	}

	if o == op.IF {
		return buildIf(lhs, rhs, depth)
	}

	isShift := o == op.LSHL || o == op.LSHR || o == op.ASHR || o == op.ROL || o == op.ROR
	if !isShift && lhs.Width != rhs.Width {
		return nil, structErr("operand width mismatch for %s: %d vs %d", o, lhs.Width, rhs.Width)
	}

	resultWidth := lhs.Width
	if op.IsComparison(o) || o == op.BITSELECT {
		resultWidth = 1
	}

	known := op.EvalBits(o, lhs.Width, bitvec.KnownBits{One: lhs.KnownOne, Zero: lhs.KnownZero}, bitvec.KnownBits{One: rhs.KnownOne, Zero: rhs.KnownZero})

	return &Expr{
		Kind:       KindBinary,
		Op:         o,
		LHS:        lhs,
		RHS:        rhs,
		Width:      resultWidth,
		Depth:      depth,
		Complexity: 1 + lhs.Complexity + rhs.Complexity + float64(o.Weight()),
		KnownOne:   known.One,
		KnownZero:  known.Zero,
		Signature:  binarySignature(o, lhs.Signature, rhs.Signature),
		Hash:       binaryHash(resultWidth, o, lhs.Hash, rhs.Hash),
	}, nil
}

// buildPair packs then/else for a ternary IF: see spec.md §3's Open
// Question resolution recorded in DESIGN.md.
func buildPair(then, els *Expr, depth int) (*Expr, error) {
	return &Expr{
		Kind:       KindBinary,
		Op:         op.PAIR,
		LHS:        then,
		RHS:        els,
		Width:      then.Width,
		Depth:      depth,
		Complexity: then.Complexity + els.Complexity,
		KnownOne:   then.KnownOne & els.KnownOne,
		KnownZero:  then.KnownZero & els.KnownZero,
		Signature:  binarySignature(op.PAIR, then.Signature, els.Signature),
		Hash:       binaryHash(then.Width, op.PAIR, then.Hash, els.Hash),
	}, nil
}

func buildIf(cond, pair *Expr, depth int) (*Expr, error) {
	if cond.Width != 1 {
		return nil, structErr("IF condition must be width 1, got %d", cond.Width)
	}
	if pair.Kind != KindBinary || pair.Op != op.PAIR {
		return nil, structErr("IF's second operand must be a PAIR(then, else) node")
	}
	width := pair.Width
	then, els := pair.LHS, pair.RHS

	var known bitvec.KnownBits
	if cond.IsFullyKnown() {
		if cond.KnownOne != 0 {
			known = bitvec.KnownBits{One: then.KnownOne, Zero: then.KnownZero}
		} else {
			known = bitvec.KnownBits{One: els.KnownOne, Zero: els.KnownZero}
		}
	} else {
		known = bitvec.KnownBits{
			One:  then.KnownOne & els.KnownOne,
			Zero: then.KnownZero & els.KnownZero,
		}
	}

	return &Expr{
		Kind:       KindBinary,
		Op:         op.IF,
		LHS:        cond,
		RHS:        pair,
		Width:      width,
		Depth:      depth,
		Complexity: 1 + cond.Complexity + pair.Complexity + float64(op.IF.Weight()),
		KnownOne:   known.One,
		KnownZero:  known.Zero,
		Signature:  binarySignature(op.IF, cond.Signature, pair.Signature),
		Hash:       binaryHash(width, op.IF, cond.Hash, pair.Hash),
	}, nil
}

func buildCast(o op.Operator, lhs, rhs *Expr, depth int) (*Expr, error) {
	if !rhs.IsConst() {
		return nil, structErr("%s target width operand must be a constant", o)
	}
	newWidth := uint8(rhs.ConstValue)
	if newWidth == 0 || newWidth > bitvec.MaxWidth {
		return nil, structErr("%s target width %d out of range", o, newWidth)
	}

	var known bitvec.KnownBits
	if lhs.IsFullyKnown() {
		resized := bitvec.Resize(bitvec.New(lhs.KnownOne, lhs.Width), newWidth, o == op.CAST)
		known = bitvec.Full(resized)
	} else {
		known = bitvec.Unconstrained(newWidth)
	}

	return &Expr{
		Kind:       KindBinary,
		Op:         o,
		LHS:        lhs,
		RHS:        rhs,
		Width:      newWidth,
		Depth:      depth,
		Complexity: 1 + lhs.Complexity + rhs.Complexity + float64(o.Weight()),
		KnownOne:   known.One,
		KnownZero:  known.Zero,
		Signature:  binarySignature(o, lhs.Signature, rhs.Signature),
		Hash:       binaryHash(newWidth, o, lhs.Hash, rhs.Hash),
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
