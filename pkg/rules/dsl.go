package rules

import (
	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/op"
)

// Small constructor aliases used by the rule-family files below, kept
// terse since a rule set reads as a table of shapes, not prose.

func mvar(name string, idx int) *directive.Directive {
	return directive.MatchVar(name, idx, directive.MatchAny)
}

func mconst(name string, idx int) *directive.Directive {
	return directive.MatchVar(name, idx, directive.MatchConstant)
}

func cst(v uint64) *directive.Directive { return directive.Const(v, 0) }

func cstw(v uint64, w uint8) *directive.Directive { return directive.Const(v, w) }

func un(o op.Operator, rhs *directive.Directive) *directive.Directive {
	return directive.Unary(o, rhs)
}

func bin(o op.Operator, lhs, rhs *directive.Directive) *directive.Directive {
	return directive.Binary(o, lhs, rhs)
}

func simplifyD(x *directive.Directive) *directive.Directive {
	return directive.MetaUnary(directive.MetaSimplify, x)
}

func iffD(cond, then *directive.Directive) *directive.Directive {
	return directive.MetaBinary(directive.MetaIff, cond, then)
}
