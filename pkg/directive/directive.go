// Package directive implements the Directive IR: pattern/replacement trees
// structurally similar to the expression IR, but whose leaves may be match
// variables under a type constraint and whose internal nodes may be either
// ordinary operators or translator-only meta-operators.
//
// Modeled on the teacher's pkg/inst in the same spirit as pkg/expr: a small
// tagged struct per node, built through constructors, never mutated.
package directive

import "github.com/oisee/symexpr/pkg/op"

// Kind tags the shape of a Directive node.
type Kind uint8

const (
	KindConst Kind = iota
	KindMatchVar
	KindUnary
	KindBinary
	KindNullaryMeta // Unreachable: a leaf with no operands
)

// MatchingType constrains what a match variable may bind to (spec.md §3).
type MatchingType uint8

const (
	MatchAny MatchingType = iota
	MatchVariable
	MatchConstant
	MatchExpression
	MatchNonConstant
	MatchNonExpression
)

func (m MatchingType) String() string {
	switch m {
	case MatchAny:
		return "any"
	case MatchVariable:
		return "variable"
	case MatchConstant:
		return "constant"
	case MatchExpression:
		return "expression"
	case MatchNonConstant:
		return "non-constant"
	case MatchNonExpression:
		return "non-expression"
	}
	return "?"
}

// MetaOp enumerates the translator-only meta-operators of spec.md §4.4.
type MetaOp uint8

const (
	MetaSimplify MetaOp = iota
	MetaTrySimplify
	MetaOrAlso
	MetaIff
	MetaMaskUnknown
	MetaMaskOne
	MetaMaskZero
	MetaUnreachable
	MetaWarning
)

func (m MetaOp) String() string {
	switch m {
	case MetaSimplify:
		return "Simplify"
	case MetaTrySimplify:
		return "TrySimplify"
	case MetaOrAlso:
		return "OrAlso"
	case MetaIff:
		return "Iff"
	case MetaMaskUnknown:
		return "MaskUnknown"
	case MetaMaskOne:
		return "MaskOne"
	case MetaMaskZero:
		return "MaskZero"
	case MetaUnreachable:
		return "Unreachable"
	case MetaWarning:
		return "Warning"
	}
	return "?"
}

// Directive is one pattern/replacement tree node.
type Directive struct {
	Kind Kind

	// Operator carrier: exactly one of IsMeta's branches is meaningful,
	// selected by IsMeta, for KindUnary/KindBinary/KindNullaryMeta nodes.
	IsMeta bool
	Op     op.Operator
	Meta   MetaOp

	// KindConst
	ConstValue uint64
	ConstWidth uint8 // 0 means "inherit the target width at translation time"

	// KindMatchVar
	Name        string
	LookupIndex int
	Constraint  MatchingType

	LHS *Directive
	RHS *Directive

	// Priority orders binary-operand translation (spec.md §4.4): higher
	// priority translates first, so a translation that's going to fail
	// fails before doing the other operand's work.
	Priority int
}

// Const builds a constant-leaf directive. width=0 means "use the target
// width at translation time".
func Const(value uint64, width uint8) *Directive {
	return &Directive{Kind: KindConst, ConstValue: value, ConstWidth: width}
}

// MatchVar builds a match-variable leaf.
func MatchVar(name string, lookupIndex int, constraint MatchingType) *Directive {
	return &Directive{Kind: KindMatchVar, Name: name, LookupIndex: lookupIndex, Constraint: constraint}
}

// Unary builds an ordinary unary-operator directive node.
func Unary(o op.Operator, rhs *Directive) *Directive {
	return &Directive{Kind: KindUnary, Op: o, RHS: rhs}
}

// Binary builds an ordinary binary-operator directive node. priority
// defaults to 0; use WithPriority to set it explicitly.
func Binary(o op.Operator, lhs, rhs *Directive) *Directive {
	return &Directive{Kind: KindBinary, Op: o, LHS: lhs, RHS: rhs}
}

// WithPriority returns d with Priority set, for fluent construction in rule
// definitions.
func (d *Directive) WithPriority(p int) *Directive {
	d.Priority = p
	return d
}

// MetaUnary builds a unary meta-operator directive (Simplify, TrySimplify,
// MaskUnknown, MaskOne, MaskZero, Warning).
func MetaUnary(m MetaOp, operand *Directive) *Directive {
	return &Directive{Kind: KindUnary, IsMeta: true, Meta: m, RHS: operand}
}

// MetaBinary builds a binary meta-operator directive (OrAlso, Iff).
func MetaBinary(m MetaOp, a, b *Directive) *Directive {
	return &Directive{Kind: KindBinary, IsMeta: true, Meta: m, LHS: a, RHS: b}
}

// Unreachable builds the nullary Unreachable assertion directive.
func Unreachable() *Directive {
	return &Directive{Kind: KindNullaryMeta, IsMeta: true, Meta: MetaUnreachable}
}

// IsOrdinaryOp reports whether d is an operator node using a real
// expression operator rather than a meta-operator.
func (d *Directive) IsOrdinaryOp() bool {
	return (d.Kind == KindUnary || d.Kind == KindBinary) && !d.IsMeta
}
