// Package symtab implements the Symbol Table: the binding environment a
// Directive pattern accumulates as it matches against an Expr tree.
//
// A Table is a small fixed-size array of slots passed by value, the same
// trick the teacher's pkg/cpu/state.go uses for its flag/register words —
// copying the whole struct is cheaper than indirecting through a map, and
// it gives matcher backtracking free, correct-by-construction snapshots:
// assigning a Table to a new variable clones it.
package symtab

import (
	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
)

// Capacity is the number of lookup slots a Table provides. spec.md requires
// at least 12 distinct match-variable indices per rule; rule authors must
// keep LookupIndex below this bound.
const Capacity = 16

type slot struct {
	bound      *expr.Expr
	constraint directive.MatchingType
	occupied   bool
}

// Table is a symbol table: a fixed array of slots, each either empty or
// holding the expression a match variable has bound to. The zero value is
// an empty table.
type Table struct {
	slots [Capacity]slot
}

// Get returns the expression bound at index, if any.
func (t Table) Get(index int) (*expr.Expr, bool) {
	if index < 0 || index >= Capacity || !t.slots[index].occupied {
		return nil, false
	}
	return t.slots[index].bound, true
}

// Clone returns an independent copy of t. Because Table holds its slots in
// an array (not a slice or map), a plain value copy already clones deeply
// enough — this method exists so call sites documenting backtracking reads
// clearly, and so a future change to slot's shape doesn't silently break
// copy semantics.
func (t Table) Clone() Table {
	return t
}

// Satisfies reports whether e meets constraint (spec.md §3's MatchingType).
func Satisfies(e *expr.Expr, constraint directive.MatchingType) bool {
	switch constraint {
	case directive.MatchAny:
		return true
	case directive.MatchVariable:
		return e.IsVar()
	case directive.MatchConstant:
		return e.IsConst()
	case directive.MatchExpression:
		return e.IsOp()
	case directive.MatchNonConstant:
		return !e.IsConst()
	case directive.MatchNonExpression:
		return !e.IsOp()
	}
	return false
}

// Bind attempts to bind index to e under constraint. If index is already
// bound, the existing binding must be structurally equal to e (the same
// match variable appearing twice in a pattern must capture the same
// subexpression both times). Bind returns a new Table (t is left
// unmodified) and ok=false if the binding is inconsistent or e fails
// constraint.
func (t Table) Bind(index int, e *expr.Expr, constraint directive.MatchingType) (Table, bool) {
	if index < 0 || index >= Capacity {
		return t, false
	}
	if !Satisfies(e, constraint) {
		return t, false
	}
	if existing, ok := t.Get(index); ok {
		return t, existing.Equal(e)
	}
	out := t.Clone()
	out.slots[index] = slot{bound: e, constraint: constraint, occupied: true}
	return out, true
}

// Bindings returns every occupied (index, expr) pair, for translator
// lookups and diagnostics.
func (t Table) Bindings() map[int]*expr.Expr {
	out := map[int]*expr.Expr{}
	for i, s := range t.slots {
		if s.occupied {
			out[i] = s.bound
		}
	}
	return out
}
