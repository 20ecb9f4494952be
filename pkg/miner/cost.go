// Package miner stochastically searches for simpler expressions equivalent
// to a target, adapting the teacher's pkg/stoke Metropolis-Hastings
// instruction-sequence superoptimizer to mutation of pkg/expr trees
// instead of Z80 instruction sequences.
package miner

import (
	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/propcheck"
)

// Cost scores candidate as a replacement for target, grounded on the
// teacher's stoke.Cost: a heavy per-mismatch penalty dominates so the
// search first hill-climbs toward semantic equivalence, then candidate
// Complexity (spec.md's per-operator weight sum) breaks ties among
// equivalent-looking candidates, preferring the simpler expression.
func Cost(target, candidate *expr.Expr) int {
	mismatches := propcheck.MismatchCount(target, candidate)
	return 1000*mismatches + int(candidate.Complexity)
}
