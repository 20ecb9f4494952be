package rules

import "github.com/oisee/symexpr/pkg/op"

// Boolean holds comparison and single-bit logical identities (spec.md
// §4.5's "boolean" family): reflexive comparisons fold to a known
// constant, negated comparisons rewrite to their direct counterpart, and
// an IF whose condition is a constant collapses to the selected branch.
var Boolean = []Rule{
	New("eq-self", bin(op.EQ, mvar("a", 0), mvar("a", 0)), cstw(1, 1)),
	New("ne-self", bin(op.NE, mvar("a", 0), mvar("a", 0)), cstw(0, 1)),
	New("ult-self", bin(op.ULT, mvar("a", 0), mvar("a", 0)), cstw(0, 1)),
	New("ugt-self", bin(op.UGT, mvar("a", 0), mvar("a", 0)), cstw(0, 1)),
	New("ule-self", bin(op.ULE, mvar("a", 0), mvar("a", 0)), cstw(1, 1)),
	New("uge-self", bin(op.UGE, mvar("a", 0), mvar("a", 0)), cstw(1, 1)),
	New("slt-self", bin(op.SLT, mvar("a", 0), mvar("a", 0)), cstw(0, 1)),
	New("sgt-self", bin(op.SGT, mvar("a", 0), mvar("a", 0)), cstw(0, 1)),
	New("sle-self", bin(op.SLE, mvar("a", 0), mvar("a", 0)), cstw(1, 1)),
	New("sge-self", bin(op.SGE, mvar("a", 0), mvar("a", 0)), cstw(1, 1)),

	New("not-eq", un(op.NOT, bin(op.EQ, mvar("a", 0), mvar("b", 1))),
		bin(op.NE, mvar("a", 0), mvar("b", 1))),
	New("not-ne", un(op.NOT, bin(op.NE, mvar("a", 0), mvar("b", 1))),
		bin(op.EQ, mvar("a", 0), mvar("b", 1))),
	New("not-ult", un(op.NOT, bin(op.ULT, mvar("a", 0), mvar("b", 1))),
		bin(op.UGE, mvar("a", 0), mvar("b", 1))),
	New("not-uge", un(op.NOT, bin(op.UGE, mvar("a", 0), mvar("b", 1))),
		bin(op.ULT, mvar("a", 0), mvar("b", 1))),
	New("not-ugt", un(op.NOT, bin(op.UGT, mvar("a", 0), mvar("b", 1))),
		bin(op.ULE, mvar("a", 0), mvar("b", 1))),

	New("xor-one-is-not", bin(op.XOR, mvar("a", 0), cstw(1, 1)), un(op.NOT, mvar("a", 0))),

	New("if-true", bin(op.IF, cstw(1, 1), bin(op.PAIR, mvar("a", 0), mvar("b", 1))), mvar("a", 0)),
	New("if-false", bin(op.IF, cstw(0, 1), bin(op.PAIR, mvar("a", 0), mvar("b", 1))), mvar("b", 1)),
}
