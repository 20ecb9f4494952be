// Package rules catalogs directive-based rewrite rules and applies them to
// expressions: signature pre-filtering, backtracking match, translation.
//
// Grounded on the teacher's pkg/result.Table (a named, registerable catalog
// of discovered entries) for the idea of a flat rule list addressed by name,
// and on pkg/search/fingerprint.go's FingerprintMap for bucketing candidates
// by a cheap structural key before doing expensive work.
package rules

import (
	"github.com/oisee/symexpr/pkg/directive"
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/matcher"
	"github.com/oisee/symexpr/pkg/symtab"
	"github.com/oisee/symexpr/pkg/translate"
)

// Rule is one directive-based rewrite: From is the pattern, To is the
// replacement. Signatures holds one or two precomputed pattern signatures
// used to reject non-matching candidates in O(1) before invoking the
// backtracking matcher.
type Rule struct {
	Name       string
	From       *directive.Directive
	To         *directive.Directive
	Signatures []expr.Signature
}

// New builds a Rule, precomputing its signature(s). A commutative top-level
// pattern gets two signatures (authored order and operand-swapped order):
// expr.Signature's binary composition is asymmetric in operand order, so a
// single signature could reject a candidate the backtracking matcher would
// still have accepted via its own commutative exploration (DESIGN.md).
func New(name string, from, to *directive.Directive) Rule {
	sigs := []expr.Signature{patternSignature(from)}
	if from.Kind == directive.KindBinary && !from.IsMeta && from.Op.IsCommutative() {
		swapped := expr.BinarySignature(from.Op, patternSignature(from.RHS), patternSignature(from.LHS))
		sigs = append(sigs, swapped)
	}
	return Rule{Name: name, From: from, To: to, Signatures: sigs}
}

// CanMatch reports whether candidate's signature is a superset of at least
// one of the rule's precomputed signatures.
func (r Rule) CanMatch(candidate expr.Signature) bool {
	for _, s := range r.Signatures {
		if expr.CanMatch(s, candidate) {
			return true
		}
	}
	return false
}

// Apply tries to rewrite candidate using r, returning every successfully
// translated replacement across every table the matcher produces (multiple
// tables arise from commutative backtracking) — spec.md §4.6 step 5
// collects every successful result rather than stopping at the first.
func (r Rule) Apply(ctx *translate.Context, candidate *expr.Expr) []*expr.Expr {
	if !r.CanMatch(candidate.Signature) {
		return nil
	}
	tables := matcher.Match(r.From, candidate, symtab.Table{})
	var out []*expr.Expr
	for _, tab := range tables {
		if result, ok := translate.Translate(ctx, r.To, tab, candidate.Width); ok {
			out = append(out, result)
		}
	}
	return out
}

// patternSignature computes a structural signature over a directive
// pattern tree, treating every match variable as contributing the neutral
// (all-zero) signature VarSignature contributes for a real Expr — any
// candidate satisfies an all-zero lane, so match variables never cause the
// pre-filter to reject a candidate it shouldn't.
func patternSignature(d *directive.Directive) expr.Signature {
	switch d.Kind {
	case directive.KindConst:
		return expr.ConstSignature(d.ConstValue)
	case directive.KindMatchVar:
		return expr.VarSignature()
	case directive.KindNullaryMeta:
		return expr.Signature{}
	case directive.KindUnary:
		if d.IsMeta {
			return patternSignature(d.RHS)
		}
		return expr.UnarySignature(d.Op, patternSignature(d.RHS))
	case directive.KindBinary:
		if d.IsMeta {
			return expr.Signature{}
		}
		return expr.BinarySignature(d.Op, patternSignature(d.LHS), patternSignature(d.RHS))
	}
	return expr.Signature{}
}
