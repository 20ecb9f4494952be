// Package translate implements the Translator: it walks a replacement
// Directive tree under a bound symbol table and builds the Expr it
// describes, evaluating meta-operators along the way (spec.md §4.4).
//
// The translator never imports pkg/simplify — Simplify and TrySimplify
// call back into the driver through the Context's Simplify hook, the same
// inversion the teacher uses in pkg/search.Config.Run to call back into
// per-strategy closures without pkg/search depending on pkg/stoke.
package translate

import (
	"log/slog"

	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/symtab"
)

// Context carries everything the translator needs but cannot own itself.
type Context struct {
	// Simplify recursively simplifies e. Required for Simplify/TrySimplify.
	Simplify func(e *expr.Expr) *expr.Expr
	Log      *slog.Logger
}

func (c *Context) logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

// Translate builds the Expr described by pattern under tab, inheriting
// targetWidth for constant leaves that don't carry an explicit width
// (spec.md §4.4's width-inheritance rule). ok is false if the directive
// could not be translated — an unreachable assertion fired, an Iff guard
// was false or not fully known, or a TrySimplify produced no improvement.
func Translate(ctx *Context, pattern *directive.Directive, tab symtab.Table, targetWidth uint8) (*expr.Expr, bool) {
	if pattern == nil {
		return nil, false
	}

	switch pattern.Kind {
	case directive.KindConst:
		return translateConst(pattern, targetWidth)
	case directive.KindMatchVar:
		return tab.Get(pattern.LookupIndex)
	case directive.KindNullaryMeta:
		return translateNullaryMeta(ctx, pattern)
	case directive.KindUnary:
		if pattern.IsMeta {
			return translateUnaryMeta(ctx, pattern, tab, targetWidth)
		}
		return translateOrdinaryUnary(ctx, pattern, tab, targetWidth)
	case directive.KindBinary:
		if pattern.IsMeta {
			return translateBinaryMeta(ctx, pattern, tab, targetWidth)
		}
		return translateOrdinaryBinary(ctx, pattern, tab, targetWidth)
	}
	return nil, false
}

func translateConst(pattern *directive.Directive, targetWidth uint8) (*expr.Expr, bool) {
	width := pattern.ConstWidth
	if width == 0 {
		width = targetWidth
	}
	e, err := expr.BuildConstant(pattern.ConstValue, width)
	if err != nil {
		return nil, false
	}
	return e, true
}

func translateOrdinaryUnary(ctx *Context, pattern *directive.Directive, tab symtab.Table, targetWidth uint8) (*expr.Expr, bool) {
	operand, ok := Translate(ctx, pattern.RHS, tab, targetWidth)
	if !ok {
		return nil, false
	}
	e, err := expr.BuildUnary(pattern.Op, operand)
	if err != nil {
		return nil, false
	}
	return e, true
}

// translateOrdinaryBinary translates operands in descending Priority order
// (spec.md §4.4): the higher-priority operand translates first, and a
// failure there short-circuits before the lower-priority operand does any
// work.
func translateOrdinaryBinary(ctx *Context, pattern *directive.Directive, tab symtab.Table, targetWidth uint8) (*expr.Expr, bool) {
	// Directive construction stores one Priority per node; here "the
	// operand built first" is simply LHS unless the rule author marked
	// RHS as higher priority via WithPriority on that child.
	firstIsLHS := true
	if pattern.LHS != nil && pattern.RHS != nil && pattern.RHS.Priority > pattern.LHS.Priority {
		firstIsLHS = false
	}

	var lhs, rhs *expr.Expr
	var ok bool
	if firstIsLHS {
		if lhs, ok = Translate(ctx, pattern.LHS, tab, targetWidth); !ok {
			return nil, false
		}
		if rhs, ok = Translate(ctx, pattern.RHS, tab, targetWidth); !ok {
			return nil, false
		}
	} else {
		if rhs, ok = Translate(ctx, pattern.RHS, tab, targetWidth); !ok {
			return nil, false
		}
		if lhs, ok = Translate(ctx, pattern.LHS, tab, targetWidth); !ok {
			return nil, false
		}
	}

	e, err := expr.BuildBinary(pattern.Op, lhs, rhs)
	if err != nil {
		return nil, false
	}
	return e, true
}

func translateUnaryMeta(ctx *Context, pattern *directive.Directive, tab symtab.Table, targetWidth uint8) (*expr.Expr, bool) {
	operand, ok := Translate(ctx, pattern.RHS, tab, targetWidth)
	if !ok {
		return nil, false
	}

	switch pattern.Meta {
	case directive.MetaSimplify:
		return ctx.Simplify(operand), true

	case directive.MetaTrySimplify:
		simplified := ctx.Simplify(operand)
		if simplified.Equal(operand) {
			return nil, false
		}
		return simplified, true

	case directive.MetaMaskUnknown:
		return buildMaskConstant(operand.UnknownMask(), operand.Width)

	case directive.MetaMaskOne:
		return buildMaskConstant(operand.KnownOne, operand.Width)

	case directive.MetaMaskZero:
		return buildMaskConstant(operand.KnownZero, operand.Width)

	case directive.MetaWarning:
		ctx.logger().Warn("rule translation warning", "expr", operand.Signature)
		return operand, true
	}
	return nil, false
}

// buildMaskConstant builds the Const node a MaskUnknown/MaskOne/MaskZero
// meta-operator translates to (spec.md §4.4): masked results are always
// fully-known constants, never a shallow reinterpretation of the operand,
// so a Const operand's invariant (known_one | known_zero == all-ones(width))
// always holds for the result too.
func buildMaskConstant(value uint64, width uint8) (*expr.Expr, bool) {
	out, err := expr.BuildConstant(value, width)
	if err != nil {
		return nil, false
	}
	return out, true
}

func translateBinaryMeta(ctx *Context, pattern *directive.Directive, tab symtab.Table, targetWidth uint8) (*expr.Expr, bool) {
	switch pattern.Meta {
	case directive.MetaOrAlso:
		if a, ok := Translate(ctx, pattern.LHS, tab, targetWidth); ok {
			return a, true
		}
		return Translate(ctx, pattern.RHS, tab, targetWidth)

	case directive.MetaIff:
		cond, ok := Translate(ctx, pattern.LHS, tab, targetWidth)
		if !ok {
			return nil, false
		}
		cond = ctx.Simplify(cond)
		if !cond.IsFullyKnown() {
			return nil, false
		}
		if cond.KnownOne == 0 {
			return nil, false
		}
		return Translate(ctx, pattern.RHS, tab, targetWidth)
	}
	return nil, false
}

func translateNullaryMeta(ctx *Context, pattern *directive.Directive) (*expr.Expr, bool) {
	if pattern.Meta == directive.MetaUnreachable {
		ctx.logger().Error("rule translation hit an Unreachable directive")
		return nil, false
	}
	return nil, false
}
