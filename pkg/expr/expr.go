// Package expr implements the expression IR: an immutable tagged tree of
// constants, variables, and unary/binary operators over fixed-width
// bit-vectors, with every derived field (width, depth, complexity,
// known-one/known-zero masks, signature, hash) memoized at construction.
//
// Modeled on the teacher's pkg/inst.Instruction: a small, trivially-copyable
// value type, built through smart constructors rather than mutated in
// place — the teacher's Instruction is {Op, Imm}; ours additionally needs a
// tree shape, so Expr carries child pointers, but the "build once, never
// mutate" discipline is the same.
package expr

import "github.com/oisee/symexpr/pkg/op"

// Kind tags which of the four node shapes an Expr is.
type Kind uint8

const (
	KindConst Kind = iota
	KindVar
	KindUnary
	KindBinary
)

// Expr is an immutable expression tree node. Every field below Kind/Op/
// Const/Ident/LHS/RHS is derived purely from structure and is computed once,
// at construction, by the Build* functions in build.go.
type Expr struct {
	Kind Kind
	Op   op.Operator // valid for KindUnary/KindBinary

	ConstValue uint64     // valid for KindConst (raw, already masked to Width)
	Ident      Identifier // valid for KindVar

	LHS *Expr // valid for KindBinary
	RHS *Expr // valid for KindUnary (operand) and KindBinary

	Width uint8

	// Derived fields (spec.md §3's table). All must be stable under
	// structural equality.
	Depth      int
	Complexity float64
	KnownOne   uint64
	KnownZero  uint64
	Signature  Signature
	Hash       uint64
}

// UnknownMask returns the bits of Width that are neither known-one nor
// known-zero.
func (e *Expr) UnknownMask() uint64 {
	mask := maskOf(e.Width)
	return mask &^ (e.KnownOne | e.KnownZero)
}

// IsConst reports whether e is a Const node.
func (e *Expr) IsConst() bool { return e.Kind == KindConst }

// IsVar reports whether e is a Var node.
func (e *Expr) IsVar() bool { return e.Kind == KindVar }

// IsOp reports whether e is a Unary or Binary node.
func (e *Expr) IsOp() bool { return e.Kind == KindUnary || e.Kind == KindBinary }

// IsFullyKnown reports whether every bit of e's value is determined.
func (e *Expr) IsFullyKnown() bool {
	return e.UnknownMask() == 0
}

// StructurallyEqual reports deep structural equality: same kind, same
// operator/const/identifier, and recursively equal children. Two
// structurally-equal expressions must have identical derived fields (the
// invariant spec.md §3 requires), which Equal below uses as a fast path.
func (a *Expr) StructurallyEqual(b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Width != b.Width {
		return false
	}
	switch a.Kind {
	case KindConst:
		return a.ConstValue == b.ConstValue
	case KindVar:
		return a.Ident.Equal(b.Ident)
	case KindUnary:
		return a.Op == b.Op && a.RHS.StructurallyEqual(b.RHS)
	case KindBinary:
		return a.Op == b.Op && a.LHS.StructurallyEqual(b.LHS) && a.RHS.StructurallyEqual(b.RHS)
	}
	return false
}

// Equal is a fast structural-equality check that compares the memoized
// Hash, Width and Kind first, falling back to the full recursive compare
// only when all three agree (guards against hash collisions).
func (a *Expr) Equal(b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Hash != b.Hash || a.Width != b.Width || a.Kind != b.Kind {
		return false
	}
	return a.StructurallyEqual(b)
}

func maskOf(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}
