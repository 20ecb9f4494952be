package rules

import "github.com/oisee/symexpr/pkg/op"

// Join holds rules that fold two related subexpressions together — De
// Morgan-style cancellation, distributivity, negation pull-through (spec.md
// §4.5's "join" family). Several wrap their replacement in Simplify so an
// immediately-available further reduction (e.g. XOR(a,b) collapsing to 0
// when a and b are themselves equal) happens without waiting for the next
// fixed-point pass.
var Join = []Rule{
	New("xor-not-not",
		bin(op.XOR, un(op.NOT, mvar("a", 0)), un(op.NOT, mvar("b", 1))),
		simplifyD(bin(op.XOR, mvar("a", 0), mvar("b", 1)))),

	New("add-neg-neg",
		bin(op.ADD, un(op.NEG, mvar("a", 0)), un(op.NEG, mvar("b", 1))),
		un(op.NEG, simplifyD(bin(op.ADD, mvar("a", 0), mvar("b", 1))))),

	New("and-or-distribute",
		bin(op.AND,
			bin(op.OR, mvar("a", 0), mvar("b", 1)),
			bin(op.OR, mvar("a", 0), mvar("c", 2))),
		bin(op.OR, mvar("a", 0), simplifyD(bin(op.AND, mvar("b", 1), mvar("c", 2))))),

	New("or-and-distribute",
		bin(op.OR,
			bin(op.AND, mvar("a", 0), mvar("b", 1)),
			bin(op.AND, mvar("a", 0), mvar("c", 2))),
		bin(op.AND, mvar("a", 0), simplifyD(bin(op.OR, mvar("b", 1), mvar("c", 2))))),
}
