package miner

import (
	"sync"

	"github.com/oisee/symexpr/pkg/expr"
)

// Config controls a mining run, grounded on the teacher's stoke.Config.
type Config struct {
	// Chains is the number of independent MCMC chains to run in parallel.
	Chains int
	// Iterations is the number of Step calls each chain performs.
	Iterations int
	// Temperature is each chain's starting annealing temperature.
	Temperature float64
	// Decay is the per-step multiplicative cooling factor, in (0, 1].
	Decay float64
	// Pool supplies candidate leaves for subtree replacement mutations.
	Pool []*expr.Expr
	// Seed seeds chain 0's rng; chain i is seeded with Seed+uint64(i).
	Seed uint64
}

func (c Config) withDefaults() Config {
	if c.Chains <= 0 {
		c.Chains = 4
	}
	if c.Iterations <= 0 {
		c.Iterations = 2000
	}
	if c.Temperature <= 0 {
		c.Temperature = 1.0
	}
	if c.Decay <= 0 || c.Decay > 1 {
		c.Decay = 0.999
	}
	return c
}

// Result reports one chain's best finding.
type Result struct {
	Chain    int
	Best     *expr.Expr
	Cost     int
	Accepted int64
	Rejected int64
}

// Run launches cfg.Chains independent MCMC chains against target in
// parallel goroutines and returns every chain's best result, grounded on
// the teacher's stoke.Run fan-out over parallel search workers.
func Run(target *expr.Expr, cfg Config) []Result {
	cfg = cfg.withDefaults()
	results := make([]Result, cfg.Chains)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Chains; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			chain := NewChain(target, cfg.Pool, cfg.Temperature, cfg.Seed+uint64(idx))
			for step := 0; step < cfg.Iterations; step++ {
				chain.Step(cfg.Decay)
			}
			best, cost := chain.Best()
			results[idx] = Result{
				Chain:    idx,
				Best:     best,
				Cost:     cost,
				Accepted: chain.Accepted,
				Rejected: chain.Rejected,
			}
		}(i)
	}
	wg.Wait()

	return results
}

// Winner returns the lowest-cost result across results, or ok=false if
// results is empty.
func Winner(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Cost < best.Cost {
			best = r
		}
	}
	return best, true
}
