package miner

import (
	"math/rand/v2"

	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
)

// Mutator applies random structural mutations to an Expr tree, grounded on
// the teacher's stoke.Mutator (weighted random choice among a small set of
// edits, always returning a new tree rather than mutating the input).
type Mutator struct {
	rng  *rand.Rand
	pool []*expr.Expr // candidate leaves (variables and small constants) for subtree replacement
}

// NewMutator builds a Mutator drawing replacement leaves from pool.
func NewMutator(rng *rand.Rand, pool []*expr.Expr) *Mutator {
	return &Mutator{rng: rng, pool: pool}
}

// Mutate returns a new tree derived from e by one random edit: swapping a
// node's operator for another of the same arity, swapping a binary node's
// operands, or replacing a random subtree with a leaf from the pool. A
// mutation that would violate a width rule is simply discarded (the
// unmodified tree is returned) rather than treated as an error — the MCMC
// chain sees it as a zero-cost-delta no-op and moves on.
func (m *Mutator) Mutate(e *expr.Expr) *expr.Expr {
	nodes := flatten(e)
	target := nodes[m.rng.IntN(len(nodes))]

	switch m.rng.IntN(3) {
	case 0:
		return m.replaceOperator(e, target)
	case 1:
		return m.swapOperands(e, target)
	default:
		return m.replaceWithLeaf(e, target)
	}
}

func flatten(e *expr.Expr) []*expr.Expr {
	var out []*expr.Expr
	var walk func(*expr.Expr)
	walk = func(n *expr.Expr) {
		out = append(out, n)
		switch n.Kind {
		case expr.KindUnary:
			walk(n.RHS)
		case expr.KindBinary:
			walk(n.LHS)
			walk(n.RHS)
		}
	}
	walk(e)
	return out
}

func (m *Mutator) replaceOperator(root, target *expr.Expr) *expr.Expr {
	switch target.Kind {
	case expr.KindUnary:
		choices := opsOfArity(op.Unary)
		newOp := choices[m.rng.IntN(len(choices))]
		rebuilt, err := expr.BuildUnary(newOp, target.RHS)
		if err != nil {
			return root
		}
		return replaceNode(root, target, rebuilt)
	case expr.KindBinary:
		choices := opsOfArity(op.Binary)
		newOp := choices[m.rng.IntN(len(choices))]
		rebuilt, err := expr.BuildBinary(newOp, target.LHS, target.RHS)
		if err != nil {
			return root
		}
		return replaceNode(root, target, rebuilt)
	}
	return root
}

func (m *Mutator) swapOperands(root, target *expr.Expr) *expr.Expr {
	if target.Kind != expr.KindBinary {
		return root
	}
	rebuilt, err := expr.BuildBinary(target.Op, target.RHS, target.LHS)
	if err != nil {
		return root
	}
	return replaceNode(root, target, rebuilt)
}

func (m *Mutator) replaceWithLeaf(root, target *expr.Expr) *expr.Expr {
	var matches []*expr.Expr
	for _, leaf := range m.pool {
		if leaf.Width == target.Width {
			matches = append(matches, leaf)
		}
	}
	if len(matches) == 0 {
		return root
	}
	leaf := matches[m.rng.IntN(len(matches))]
	return replaceNode(root, target, leaf)
}

// replaceNode returns a copy of root with every occurrence (by pointer
// identity) of target replaced by replacement, rebuilding ancestors along
// the way. A rebuild failure (a width rule violation introduced by the
// substitution) leaves that ancestor, and everything above it, unchanged.
func replaceNode(root, target, replacement *expr.Expr) *expr.Expr {
	if root == target {
		return replacement
	}
	switch root.Kind {
	case expr.KindUnary:
		newRHS := replaceNode(root.RHS, target, replacement)
		if newRHS == root.RHS {
			return root
		}
		out, err := expr.BuildUnary(root.Op, newRHS)
		if err != nil {
			return root
		}
		return out
	case expr.KindBinary:
		newLHS := replaceNode(root.LHS, target, replacement)
		newRHS := replaceNode(root.RHS, target, replacement)
		if newLHS == root.LHS && newRHS == root.RHS {
			return root
		}
		out, err := expr.BuildBinary(root.Op, newLHS, newRHS)
		if err != nil {
			return root
		}
		return out
	}
	return root
}

func opsOfArity(a op.Arity) []op.Operator {
	var out []op.Operator
	for o := op.Operator(0); o < op.OperatorCount; o++ {
		if o == op.PAIR {
			continue
		}
		if o.ArityOf() == a {
			out = append(out, o)
		}
	}
	return out
}
