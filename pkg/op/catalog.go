package op

import "github.com/oisee/symexpr/pkg/bitvec"

// Catalog is the static operator metadata table, filled in init() exactly
// the way the teacher's pkg/inst.Catalog is filled: one entry per enum
// value, built once at package load.
var Catalog [OperatorCount]Info

func init() {
	set := func(o Operator, info Info) { Catalog[o] = info }

	set(NOT, Info{"~", Unary, false, false, 1})
	set(AND, Info{"&", Binary, true, true, 2})
	set(OR, Info{"|", Binary, true, true, 2})
	set(XOR, Info{"^", Binary, true, true, 2})

	set(NEG, Info{"-", Unary, false, false, 1})
	set(ADD, Info{"+", Binary, true, true, 2})
	set(SUB, Info{"-", Binary, false, false, 2})
	set(MUL, Info{"*", Binary, true, true, 3})

	set(UDIV, Info{"u/", Binary, false, false, 4})
	set(SDIV, Info{"s/", Binary, false, false, 4})
	set(UMOD, Info{"u%", Binary, false, false, 4})
	set(SMOD, Info{"s%", Binary, false, false, 4})

	set(LSHL, Info{"<<", Binary, false, false, 2})
	set(LSHR, Info{">>u", Binary, false, false, 2})
	set(ASHR, Info{">>s", Binary, false, false, 2})

	set(ROL, Info{"rol", Binary, false, false, 2})
	set(ROR, Info{"ror", Binary, false, false, 2})

	set(ULT, Info{"u<", Binary, false, false, 3})
	set(ULE, Info{"u<=", Binary, false, false, 3})
	set(UGE, Info{"u>=", Binary, false, false, 3})
	set(UGT, Info{"u>", Binary, false, false, 3})
	set(SLT, Info{"s<", Binary, false, false, 3})
	set(SLE, Info{"s<=", Binary, false, false, 3})
	set(SGE, Info{"s>=", Binary, false, false, 3})
	set(SGT, Info{"s>", Binary, false, false, 3})
	set(EQ, Info{"==", Binary, true, false, 3})
	set(NE, Info{"!=", Binary, true, false, 3})

	set(IF, Info{"if", Binary, false, false, 2})

	set(BITSELECT, Info{"bitselect", Binary, false, false, 2})
	set(POPCNT, Info{"popcnt", Unary, false, false, 3})
	set(LZCNT, Info{"lzcnt", Unary, false, false, 3})

	set(CAST, Info{"cast", Binary, false, false, 1})
	set(UCAST, Info{"ucast", Binary, false, false, 1})

	set(UMAX, Info{"umax", Binary, true, true, 2})
	set(UMIN, Info{"umin", Binary, true, true, 2})
	set(SMAX, Info{"smax", Binary, true, true, 2})
	set(SMIN, Info{"smin", Binary, true, true, 2})

	set(LOR, Info{"||", Binary, true, true, 2})

	// PAIR only carries IF's then/else operands; buildPair adds no weight
	// for it, so a ternary costs what IF and its three operands cost.
	set(PAIR, Info{"pair", Binary, false, false, 0})
}

// Eval evaluates a binary operator on two concrete bit-vector values.
// The result width matches the spec's width rules: comparisons yield
// width-1, casts yield the width carried by rhs (the caller must build rhs
// as a constant of the target width), everything else inherits lhs.Width.
//
// IF (ternary) is NOT evaluated here: it needs a third operand (else) that
// doesn't fit this two-value signature. The expr package's evaluator
// special-cases Binary(IF, cond, Binary(PAIR, then, else)) and calls
// EvalIf directly; see expr/eval.go.
func Eval(o Operator, lhs, rhs bitvec.Value) bitvec.Value {
	switch o {
	case AND:
		return bitvec.And(lhs, rhs)
	case OR:
		return bitvec.Or(lhs, rhs)
	case XOR:
		return bitvec.Xor(lhs, rhs)
	case ADD:
		return bitvec.Add(lhs, rhs)
	case SUB:
		return bitvec.Sub(lhs, rhs)
	case MUL:
		return bitvec.Mul(lhs, rhs)
	case UDIV:
		return bitvec.UDiv(lhs, rhs)
	case SDIV:
		return bitvec.SDiv(lhs, rhs)
	case UMOD:
		return bitvec.UMod(lhs, rhs)
	case SMOD:
		return bitvec.SMod(lhs, rhs)
	case LSHL:
		return bitvec.Lshl(lhs, rhs)
	case LSHR:
		return bitvec.Lshr(lhs, rhs)
	case ASHR:
		return bitvec.Ashr(lhs, rhs)
	case ROL:
		return bitvec.Rol(lhs, rhs)
	case ROR:
		return bitvec.Ror(lhs, rhs)
	case ULT:
		return bitvec.ULt(lhs, rhs)
	case ULE:
		return bitvec.ULe(lhs, rhs)
	case UGE:
		return bitvec.UGe(lhs, rhs)
	case UGT:
		return bitvec.UGt(lhs, rhs)
	case SLT:
		return bitvec.SLt(lhs, rhs)
	case SLE:
		return bitvec.SLe(lhs, rhs)
	case SGE:
		return bitvec.SGe(lhs, rhs)
	case SGT:
		return bitvec.SGt(lhs, rhs)
	case EQ:
		return bitvec.Eq(lhs, rhs)
	case NE:
		return bitvec.Ne(lhs, rhs)
	case BITSELECT:
		return bitvec.BitSelect(lhs, rhs)
	case CAST:
		return bitvec.SignExtend(lhs, uint8(rhs.Raw))
	case UCAST:
		return bitvec.ZeroExtend(lhs, uint8(rhs.Raw))
	case UMAX:
		return bitvec.UMax(lhs, rhs)
	case UMIN:
		return bitvec.UMin(lhs, rhs)
	case SMAX:
		return bitvec.SMax(lhs, rhs)
	case SMIN:
		return bitvec.SMin(lhs, rhs)
	case LOR:
		return bitvec.LogicalOr(lhs, rhs)
	case PAIR:
		// Never evaluated directly; IF's caller extracts lhs/rhs itself.
		return lhs
	}
	panic("op: Eval called with non-binary or unknown operator: " + o.String())
}

// EvalUnary evaluates a unary operator.
func EvalUnary(o Operator, a bitvec.Value) bitvec.Value {
	switch o {
	case NOT:
		return bitvec.Not(a)
	case NEG:
		return bitvec.Neg(a)
	case POPCNT:
		return bitvec.Popcnt(a)
	case LZCNT:
		return bitvec.Lzcnt(a)
	}
	panic("op: EvalUnary called with non-unary or unknown operator: " + o.String())
}

// EvalIf evaluates the ternary IF directly: the expr layer calls this once
// it has pulled `then`/`else` out of the packed PAIR node.
func EvalIf(cond, then, els bitvec.Value) bitvec.Value {
	if cond.Raw != 0 {
		return then
	}
	return els
}

// EvalBits partially evaluates a binary operator over known-bit lattices.
// Bitwise AND/OR/XOR/NOT get exact bit-level propagation; every other
// operator falls back to "fully known operands -> fully known result,
// otherwise unconstrained" (spec.md's Open Question on partial-evaluation
// depth is resolved at this level of effort — see DESIGN.md).
func EvalBits(o Operator, width uint8, lhs, rhs bitvec.KnownBits) bitvec.KnownBits {
	switch o {
	case AND:
		return bitvec.KnownBits{
			One:  lhs.One & rhs.One,
			Zero: lhs.Zero | rhs.Zero,
		}
	case OR:
		return bitvec.KnownBits{
			One:  lhs.One | rhs.One,
			Zero: lhs.Zero & rhs.Zero,
		}
	case XOR:
		bothKnown := (lhs.One | lhs.Zero) & (rhs.One | rhs.Zero)
		one := bothKnown & (lhs.One ^ rhs.One)
		zero := bothKnown &^ one
		return bitvec.KnownBits{One: one, Zero: zero}
	}
	if lhs.IsFullyKnown(width) && rhs.IsFullyKnown(width) {
		lv := lhs.AsValue(width)
		var rv bitvec.Value
		if IsCast(o) {
			rv = rhs.AsValue(8) // cast RHS directive carries the target width, not width-wide
		} else {
			rv = rhs.AsValue(width)
		}
		return bitvec.Full(Eval(o, lv, rv))
	}
	resultWidth := width
	if IsComparison(o) {
		resultWidth = 1
	}
	return bitvec.Unconstrained(resultWidth)
}

// EvalBitsUnary partially evaluates a unary operator.
func EvalBitsUnary(o Operator, width uint8, a bitvec.KnownBits) bitvec.KnownBits {
	if o == NOT {
		mask := bitvec.Mask(width)
		return bitvec.KnownBits{One: a.Zero & mask, Zero: a.One & mask}
	}
	if a.IsFullyKnown(width) {
		return bitvec.Full(EvalUnary(o, a.AsValue(width)))
	}
	return bitvec.Unconstrained(width)
}
