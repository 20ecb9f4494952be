package rules

import "github.com/oisee/symexpr/pkg/op"

// Universal holds identity, annihilation and self-cancellation rules that
// apply to any expression regardless of the surrounding boolean/arithmetic
// rule families below (spec.md §4.5's "universal" family).
var Universal = []Rule{
	New("add-zero", bin(op.ADD, mvar("a", 0), cst(0)), mvar("a", 0)),
	New("sub-zero", bin(op.SUB, mvar("a", 0), cst(0)), mvar("a", 0)),
	New("sub-self", bin(op.SUB, mvar("a", 0), mvar("a", 0)), cst(0)),
	New("xor-self", bin(op.XOR, mvar("a", 0), mvar("a", 0)), cst(0)),
	New("and-self", bin(op.AND, mvar("a", 0), mvar("a", 0)), mvar("a", 0)),
	New("or-self", bin(op.OR, mvar("a", 0), mvar("a", 0)), mvar("a", 0)),
	New("and-zero", bin(op.AND, mvar("a", 0), cst(0)), cst(0)),
	New("or-zero", bin(op.OR, mvar("a", 0), cst(0)), mvar("a", 0)),
	New("xor-zero", bin(op.XOR, mvar("a", 0), cst(0)), mvar("a", 0)),
	New("mul-one", bin(op.MUL, mvar("a", 0), cst(1)), mvar("a", 0)),
	New("mul-zero", bin(op.MUL, mvar("a", 0), cst(0)), cst(0)),
	New("udiv-one", bin(op.UDIV, mvar("a", 0), cst(1)), mvar("a", 0)),
	New("not-not", un(op.NOT, un(op.NOT, mvar("a", 0))), mvar("a", 0)),
	New("neg-neg", un(op.NEG, un(op.NEG, mvar("a", 0))), mvar("a", 0)),
	New("shl-zero", bin(op.LSHL, mvar("a", 0), cst(0)), mvar("a", 0)),
	New("lshr-zero", bin(op.LSHR, mvar("a", 0), cst(0)), mvar("a", 0)),
}
