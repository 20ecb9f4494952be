package expr

import (
	"github.com/oisee/symexpr/pkg/bitvec"
	"github.com/oisee/symexpr/pkg/op"
)

// Evaluate substitutes every Var in e with the value bound in env and folds
// the whole tree down to one bit-vector value. It returns ok=false if some
// variable has no binding in env. Used by pkg/propcheck to check "semantic
// equivalence on constants" (spec.md §8).
func Evaluate(e *Expr, env map[Identifier]bitvec.Value) (bitvec.Value, bool) {
	switch e.Kind {
	case KindConst:
		return bitvec.New(e.ConstValue, e.Width), true
	case KindVar:
		for id, v := range env {
			if id.Equal(e.Ident) {
				return v, true
			}
		}
		return bitvec.Value{}, false
	case KindUnary:
		rhs, ok := Evaluate(e.RHS, env)
		if !ok {
			return bitvec.Value{}, false
		}
		return op.EvalUnary(e.Op, rhs), true
	case KindBinary:
		return evalBinary(e, env)
	}
	return bitvec.Value{}, false
}

func evalBinary(e *Expr, env map[Identifier]bitvec.Value) (bitvec.Value, bool) {
	if e.Op == op.PAIR {
		// PAIR is never evaluated on its own; IF below pulls then/else out
		// of it directly.
		return bitvec.Value{}, false
	}
	if e.Op == op.IF {
		cond, ok := Evaluate(e.LHS, env)
		if !ok {
			return bitvec.Value{}, false
		}
		pair := e.RHS
		then, ok := Evaluate(pair.LHS, env)
		if !ok {
			return bitvec.Value{}, false
		}
		els, ok := Evaluate(pair.RHS, env)
		if !ok {
			return bitvec.Value{}, false
		}
		return op.EvalIf(cond, then, els), true
	}

	lhs, ok := Evaluate(e.LHS, env)
	if !ok {
		return bitvec.Value{}, false
	}
	rhs, ok := Evaluate(e.RHS, env)
	if !ok {
		return bitvec.Value{}, false
	}
	return op.Eval(e.Op, lhs, rhs), true
}

// FreeVars returns every distinct Var leaf reachable from e.
func FreeVars(e *Expr) []*Expr {
	seen := map[Identifier]bool{}
	var out []*Expr
	var walk func(*Expr)
	walk = func(n *Expr) {
		switch n.Kind {
		case KindVar:
			if !seen[n.Ident] {
				seen[n.Ident] = true
				out = append(out, n)
			}
		case KindUnary:
			walk(n.RHS)
		case KindBinary:
			walk(n.LHS)
			walk(n.RHS)
		}
	}
	walk(e)
	return out
}
