package propcheck

import (
	"github.com/oisee/symexpr/pkg/bitvec"
	"github.com/oisee/symexpr/pkg/expr"
)

// QuickCheck evaluates a and b across NumTestVectors trials over their
// combined free variables and reports whether every trial agrees. Trial i
// assigns variable j the vector TestVectors[(i+j) % NumTestVectors], so
// distinct variables get distinct values most of the time without paying
// for a full cross product. Agreement does not prove equivalence;
// disagreement proves non-equivalence.
func QuickCheck(a, b *expr.Expr) bool {
	vars := unionFreeVars(a, b)
	for trial := 0; trial < NumTestVectors; trial++ {
		env := assignment(vars, trial)
		av, aok := expr.Evaluate(a, env)
		bv, bok := expr.Evaluate(b, env)
		if !aok || !bok {
			continue
		}
		if !av.Equal(bv) {
			return false
		}
	}
	return true
}

// MismatchCount returns how many of the NumTestVectors trials a and b
// disagree on. Zero means a and b agree on every spot check (though, as
// with QuickCheck, that still doesn't prove full equivalence). Used by
// pkg/miner as the dominant term of its candidate cost function.
func MismatchCount(a, b *expr.Expr) int {
	vars := unionFreeVars(a, b)
	mismatches := 0
	for trial := 0; trial < NumTestVectors; trial++ {
		env := assignment(vars, trial)
		av, aok := expr.Evaluate(a, env)
		bv, bok := expr.Evaluate(b, env)
		if !aok || !bok || !av.Equal(bv) {
			mismatches++
		}
	}
	return mismatches
}

// MaxExhaustiveBits bounds ExhaustiveCheck's search space: enumerating
// every assignment of the combined free variables costs 2^totalBits
// evaluations, so a combined width beyond this is refused rather than run.
const MaxExhaustiveBits = 20

// ExhaustiveCheck enumerates every possible assignment of a and b's
// combined free variables and reports whether they agree on all of them.
// ok is false if the combined variable width exceeds MaxExhaustiveBits,
// in which case equivalent is meaningless.
func ExhaustiveCheck(a, b *expr.Expr) (equivalent bool, ok bool) {
	vars := unionFreeVars(a, b)
	total := 0
	for _, v := range vars {
		total += int(v.Width)
	}
	if total > MaxExhaustiveBits {
		return false, false
	}

	env := map[expr.Identifier]bitvec.Value{}
	equivalent = enumerate(vars, 0, env, func() bool {
		av, aok := expr.Evaluate(a, env)
		bv, bok := expr.Evaluate(b, env)
		return aok && bok && av.Equal(bv)
	})
	return equivalent, true
}

func enumerate(vars []*expr.Expr, idx int, env map[expr.Identifier]bitvec.Value, check func() bool) bool {
	if idx == len(vars) {
		return check()
	}
	v := vars[idx]
	count := uint64(1) << v.Width
	for raw := uint64(0); raw < count; raw++ {
		env[v.Ident] = bitvec.New(raw, v.Width)
		if !enumerate(vars, idx+1, env, check) {
			return false
		}
	}
	return true
}

func assignment(vars []*expr.Expr, trial int) map[expr.Identifier]bitvec.Value {
	env := map[expr.Identifier]bitvec.Value{}
	for i, v := range vars {
		raw := TestVectors[(trial+i)%NumTestVectors]
		env[v.Ident] = bitvec.New(raw, v.Width)
	}
	return env
}

func unionFreeVars(a, b *expr.Expr) []*expr.Expr {
	seen := map[expr.Identifier]bool{}
	var out []*expr.Expr
	for _, v := range expr.FreeVars(a) {
		if !seen[v.Ident] {
			seen[v.Ident] = true
			out = append(out, v)
		}
	}
	for _, v := range expr.FreeVars(b) {
		if !seen[v.Ident] {
			seen[v.Ident] = true
			out = append(out, v)
		}
	}
	return out
}
