package miner

import (
	"testing"

	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/op"
	"github.com/oisee/symexpr/pkg/propcheck"
)

func mustVar(t *testing.T, name string, w uint8) *expr.Expr {
	t.Helper()
	e, err := expr.BuildVariable(expr.StringIdent(name), w)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustConst(t *testing.T, v uint64, w uint8) *expr.Expr {
	t.Helper()
	e, err := expr.BuildConstant(v, w)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustBinary(t *testing.T, o op.Operator, l, r *expr.Expr) *expr.Expr {
	t.Helper()
	e, err := expr.BuildBinary(o, l, r)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func defaultPool(t *testing.T, x *expr.Expr) []*expr.Expr {
	t.Helper()
	return []*expr.Expr{x, mustConst(t, 0, x.Width), mustConst(t, 1, x.Width)}
}

func TestCostIsZeroForIdenticalExpressions(t *testing.T) {
	x := mustVar(t, "x", 8)
	if got := Cost(x, x); got != int(x.Complexity) {
		t.Fatalf("Cost(x,x) = %d, want %d (no mismatches, just complexity)", got, int(x.Complexity))
	}
}

func TestCostPenalizesMismatchesHeavily(t *testing.T) {
	x := mustVar(t, "x", 8)
	wrong := mustBinary(t, op.ADD, x, mustConst(t, 1, 8))
	if got := Cost(x, wrong); got < 1000 {
		t.Fatalf("Cost(x, ADD(x,1)) = %d, want >= 1000 from mismatch penalty", got)
	}
}

func TestChainNeverLosesBestBelowStartingCost(t *testing.T) {
	x := mustVar(t, "x", 8)
	target := mustBinary(t, op.ADD, x, mustConst(t, 0, 8))
	pool := defaultPool(t, x)

	chain := NewChain(target, pool, 1.0, 42)
	startCost := chain.cost
	for i := 0; i < 500; i++ {
		chain.Step(0.995)
	}
	_, bestCost := chain.Best()
	if bestCost > startCost {
		t.Fatalf("best cost %d must never exceed starting cost %d", bestCost, startCost)
	}
}

func TestChainFindsSimplerEquivalentForm(t *testing.T) {
	x := mustVar(t, "x", 8)
	target := mustBinary(t, op.ADD, x, mustConst(t, 0, 8))
	pool := defaultPool(t, x)

	chain := NewChain(target, pool, 1.0, 7)
	for i := 0; i < 3000; i++ {
		chain.Step(0.999)
	}
	best, _ := chain.Best()
	if !propcheck.QuickCheck(best, target) {
		t.Fatal("chain's best candidate must quick-check equivalent to the target")
	}
}

func TestRunReturnsAResultPerChainAllEquivalentToTarget(t *testing.T) {
	x := mustVar(t, "x", 8)
	target := mustBinary(t, op.ADD, x, mustConst(t, 0, 8))
	pool := defaultPool(t, x)

	results := Run(target, Config{
		Chains:      3,
		Iterations:  500,
		Temperature: 1.0,
		Decay:       0.995,
		Pool:        pool,
		Seed:        1,
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !propcheck.QuickCheck(r.Best, target) {
			t.Fatalf("chain %d's best result does not quick-check equivalent to target", r.Chain)
		}
	}

	winner, ok := Winner(results)
	if !ok {
		t.Fatal("Winner should report a winner for a non-empty result set")
	}
	for _, r := range results {
		if r.Cost < winner.Cost {
			t.Fatalf("Winner picked cost %d but chain %d found a lower cost %d", winner.Cost, r.Chain, r.Cost)
		}
	}
}

func TestWinnerOfEmptyResultsReportsNotOk(t *testing.T) {
	if _, ok := Winner(nil); ok {
		t.Fatal("Winner of an empty slice must report ok=false")
	}
}
