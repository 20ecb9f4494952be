package miner

import (
	"math"
	"math/rand/v2"

	"github.com/oisee/symexpr/pkg/expr"
)

// Chain is a single Metropolis-Hastings MCMC chain with simulated
// annealing, grounded on the teacher's stoke.Chain. It searches for a
// lower-Cost expression equivalent to target by repeatedly mutating its
// current candidate and accepting the mutation outright when it improves
// cost, or with probability e^(-delta/temperature) when it doesn't.
type Chain struct {
	current     *expr.Expr
	best        *expr.Expr
	cost        int
	bestCost    int
	temperature float64
	rng         *rand.Rand
	mutator     *Mutator
	target      *expr.Expr

	Accepted int64
	Rejected int64
}

// NewChain starts a chain from target itself (cost equal to target's own
// complexity, zero mismatches by construction), mutating with leaves drawn
// from pool.
func NewChain(target *expr.Expr, pool []*expr.Expr, temperature float64, seed uint64) *Chain {
	rng := rand.New(rand.NewPCG(seed, seed^0xD1A5CEDE))
	cost := Cost(target, target)
	return &Chain{
		current:     target,
		best:        target,
		cost:        cost,
		bestCost:    cost,
		temperature: temperature,
		rng:         rng,
		mutator:     NewMutator(rng, pool),
		target:      target,
	}
}

// Step performs one MCMC iteration and cools the chain's temperature by
// decay. It returns true if the mutation was accepted.
func (c *Chain) Step(decay float64) bool {
	candidate := c.mutator.Mutate(c.current)
	newCost := Cost(c.target, candidate)
	delta := newCost - c.cost

	accepted := false
	if delta <= 0 {
		accepted = true
	} else if c.temperature > 0 {
		prob := math.Exp(-float64(delta) / c.temperature)
		if c.rng.Float64() < prob {
			accepted = true
		}
	}

	if accepted {
		c.current = candidate
		c.cost = newCost
		c.Accepted++
		if newCost < c.bestCost {
			c.best = candidate
			c.bestCost = newCost
		}
	} else {
		c.Rejected++
	}

	c.temperature *= decay
	return accepted
}

// Best returns the lowest-cost candidate the chain has seen, and its cost.
func (c *Chain) Best() (*expr.Expr, int) { return c.best, c.bestCost }
