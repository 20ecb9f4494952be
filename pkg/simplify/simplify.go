package simplify

import (
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
	"github.com/oisee/symexpr/pkg/rules"
	"github.com/oisee/symexpr/pkg/translate"
)

// Simplify reduces e to a fixed point under idx's indexed rule set: operands
// are simplified innermost-out, every applicable rule is tried at each
// node, and the whole process repeats until a pass leaves the tree
// unchanged. Results are memoized in s's cache, keyed by structural
// equality so two differently-built-but-equal expressions share one entry.
func (s *State) Simplify(idx *rules.Index, e *expr.Expr) *expr.Expr {
	if cached, ok := s.cache.get(e); ok {
		return cached
	}
	result := s.fixedPoint(idx, e)
	s.cache.put(e, result)
	return result
}

func (s *State) fixedPoint(idx *rules.Index, e *expr.Expr) *expr.Expr {
	current := e
	for {
		next := s.step(idx, current)
		if next.Equal(current) {
			return next
		}
		current = next
	}
}

// step folds an operator node whose every bit is already known (by
// partial evaluation) to the equivalent constant; otherwise it simplifies
// the node's operands (if any), rebuilds the node if they changed, then
// tries every rule indexed for the rebuilt node's top-level operator,
// picking the lowest-complexity rewrite among every one that successfully
// translates. A PAIR node is never folded, since IF needs it intact.
func (s *State) step(idx *rules.Index, e *expr.Expr) *expr.Expr {
	if e.IsOp() && e.Op != op.PAIR && e.IsFullyKnown() {
		if folded, err := expr.BuildConstant(e.KnownOne, e.Width); err == nil {
			return folded
		}
	}
	switch e.Kind {
	case expr.KindConst, expr.KindVar:
		return e
	case expr.KindUnary:
		rhs := s.Simplify(idx, e.RHS)
		return s.tryRules(idx, rebuildUnary(e, rhs))
	case expr.KindBinary:
		lhs := s.Simplify(idx, e.LHS)
		rhs := s.Simplify(idx, e.RHS)
		return s.tryRules(idx, rebuildBinary(e, lhs, rhs))
	}
	return e
}

// tryRules collects every successful rewrite of e from every candidate
// rule (and, within a rule, every surviving symbol table) and returns the
// lowest-complexity one, per spec.md §4.6 steps 5-6. A rewrite whose
// complexity does not strictly decrease relative to e is discarded: it is
// not an improvement, and accepting it could cycle the fixed-point loop.
func (s *State) tryRules(idx *rules.Index, e *expr.Expr) *expr.Expr {
	ctx := &translate.Context{Simplify: s.boundedSimplify(idx), Log: s.logger()}
	best := e
	for _, r := range idx.Candidates(e) {
		for _, out := range r.Apply(ctx, e) {
			if out.Complexity < best.Complexity {
				best = out
			}
		}
	}
	return best
}

// boundedSimplify is the callback the translator's Simplify/TrySimplify
// meta-operators invoke. It caps recursion at s.joinDepthLimit: once the
// limit is reached, it returns the operand unchanged rather than recursing
// further, bounding how deep a chain of Simplify-wrapping rules can nest.
func (s *State) boundedSimplify(idx *rules.Index) func(*expr.Expr) *expr.Expr {
	return func(e *expr.Expr) *expr.Expr {
		if s.joinDepth >= s.joinDepthLimit {
			return e
		}
		s.joinDepth++
		defer func() { s.joinDepth-- }()
		return s.Simplify(idx, e)
	}
}

func rebuildUnary(e *expr.Expr, rhs *expr.Expr) *expr.Expr {
	if rhs.Equal(e.RHS) {
		return e
	}
	out, err := expr.BuildUnary(e.Op, rhs)
	if err != nil {
		return e
	}
	return out
}

func rebuildBinary(e *expr.Expr, lhs, rhs *expr.Expr) *expr.Expr {
	if lhs.Equal(e.LHS) && rhs.Equal(e.RHS) {
		return e
	}
	out, err := expr.BuildBinary(e.Op, lhs, rhs)
	if err != nil {
		return e
	}
	return out
}
