package rules

import (
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
)

// All is the full catalog the simplifier driver indexes by default.
var All = func() []Rule {
	var out []Rule
	out = append(out, Universal...)
	out = append(out, Boolean...)
	out = append(out, PackUnpack...)
	out = append(out, Join...)
	return out
}()

// Index buckets rules by their pattern's top-level operator, the same
// coarse-bucket-then-precise-check structure as the teacher's
// pkg/search/fingerprint.go FingerprintMap, so Candidates only runs the O(1)
// signature test against rules that could possibly apply to a given node.
type Index struct {
	byOp map[op.Operator][]Rule
}

// BuildIndex indexes rs. A rule whose pattern is not a top-level ordinary
// operator node (e.g. a bare match variable) is skipped — such a pattern
// would match every expression and isn't how this catalog's rules are
// written, but a caller constructing one manually gets it silently ignored
// rather than a panic.
func BuildIndex(rs []Rule) *Index {
	idx := &Index{byOp: map[op.Operator][]Rule{}}
	for _, r := range rs {
		if !r.From.IsOrdinaryOp() {
			continue
		}
		idx.byOp[r.From.Op] = append(idx.byOp[r.From.Op], r)
	}
	return idx
}

// Candidates returns every rule whose signature is a candidate for
// rewriting e, without running the backtracking matcher.
func (idx *Index) Candidates(e *expr.Expr) []Rule {
	if e.Kind != expr.KindUnary && e.Kind != expr.KindBinary {
		return nil
	}
	bucket := idx.byOp[e.Op]
	out := make([]Rule, 0, len(bucket))
	for _, r := range bucket {
		if r.CanMatch(e.Signature) {
			out = append(out, r)
		}
	}
	return out
}
