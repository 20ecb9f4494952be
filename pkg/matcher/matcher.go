// Package matcher implements the Fast Matcher: recursive, backtracking
// matching of a Directive pattern against an Expr candidate, producing
// every symbol table consistent with the match.
//
// Modeled on the teacher's pkg/inst decode switch for the per-node shape
// dispatch, generalized with the symbol-table cloning pkg/search.Pruner's
// bitmask branching suggested for exploring commutative operand orders:
// a commutative binary node tries both (lhs,rhs) and (rhs,lhs) against the
// pattern's (left, right) children and keeps every table that succeeds,
// each starting from its own clone so the two branches never share state.
package matcher

import (
	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/symtab"
)

// Match attempts to match pattern against candidate starting from tab. It
// returns one symtab.Table per successful way of matching — usually one,
// but a commutative operator produces up to two branches per node it
// appears at, so a pattern with several nested commutative operators can
// yield several tables. An empty, non-nil slice-or-nil result means no
// match exists along this branch.
func Match(pattern *directive.Directive, candidate *expr.Expr, tab symtab.Table) []symtab.Table {
	if pattern == nil || candidate == nil {
		return nil
	}

	switch pattern.Kind {
	case directive.KindConst:
		return matchConst(pattern, candidate, tab)
	case directive.KindMatchVar:
		return matchVar(pattern, candidate, tab)
	case directive.KindUnary:
		return matchUnary(pattern, candidate, tab)
	case directive.KindBinary:
		return matchBinary(pattern, candidate, tab)
	}
	return nil
}

func matchConst(pattern *directive.Directive, candidate *expr.Expr, tab symtab.Table) []symtab.Table {
	if !candidate.IsConst() {
		return nil
	}
	width := pattern.ConstWidth
	if width == 0 {
		width = candidate.Width
	}
	if candidate.Width != width {
		return nil
	}
	if candidate.ConstValue != pattern.ConstValue {
		return nil
	}
	return []symtab.Table{tab}
}

func matchVar(pattern *directive.Directive, candidate *expr.Expr, tab symtab.Table) []symtab.Table {
	bound, ok := tab.Bind(pattern.LookupIndex, candidate, pattern.Constraint)
	if !ok {
		return nil
	}
	return []symtab.Table{bound}
}

func matchUnary(pattern *directive.Directive, candidate *expr.Expr, tab symtab.Table) []symtab.Table {
	if pattern.IsMeta {
		// Meta-operators never appear in a matchable "from" pattern; a
		// well-formed rule set never reaches this branch.
		return nil
	}
	if candidate.Kind != expr.KindUnary || candidate.Op != pattern.Op {
		return nil
	}
	return Match(pattern.RHS, candidate.RHS, tab)
}

func matchBinary(pattern *directive.Directive, candidate *expr.Expr, tab symtab.Table) []symtab.Table {
	if pattern.IsMeta {
		return nil
	}
	if candidate.Kind != expr.KindBinary || candidate.Op != pattern.Op {
		return nil
	}

	var out []symtab.Table
	out = append(out, matchOrdered(pattern.LHS, pattern.RHS, candidate.LHS, candidate.RHS, tab)...)

	if pattern.Op.IsCommutative() {
		out = append(out, matchOrdered(pattern.LHS, pattern.RHS, candidate.RHS, candidate.LHS, tab)...)
	}
	return out
}

// matchOrdered matches (lp, rp) against (lc, rc) in that order, cloning tab
// independently for the left branch so each successful left-table seeds its
// own right-hand exploration without cross-contaminating siblings.
func matchOrdered(lp, rp *directive.Directive, lc, rc *expr.Expr, tab symtab.Table) []symtab.Table {
	leftTables := Match(lp, lc, tab.Clone())
	if len(leftTables) == 0 {
		return nil
	}
	var out []symtab.Table
	for _, lt := range leftTables {
		out = append(out, Match(rp, rc, lt)...)
	}
	return out
}
