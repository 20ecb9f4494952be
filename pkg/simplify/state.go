// Package simplify implements the fixed-point simplifier driver: repeatedly
// rewriting an expression tree with an indexed rule set until no rule
// applies, with a bounded memo cache and a depth cap on nested Simplify
// meta-operator recursion.
package simplify

import "log/slog"

// State is per-worker simplifier state: a bounded cache and a join-depth
// counter. Like the teacher's pkg/cpu machine state, a State is meant to be
// owned by one goroutine at a time — pkg/simplify's batch driver gives each
// worker goroutine its own State rather than sharing one across workers.
type State struct {
	cache          *cache
	joinDepth      int
	joinDepthLimit int
	diag           *Diagnostics
}

// NewState builds a State from cfg, applying defaults for unset fields.
func NewState(cfg Config) *State {
	cfg = cfg.withDefaults()
	return &State{
		cache:          newCache(cfg.CacheCapacity, cfg.PruneTarget),
		joinDepthLimit: cfg.JoinDepthLimit,
		diag:           NewDiagnostics(nil),
	}
}

// WithDiagnostics replaces s's diagnostics sink, returning s for chaining.
func (s *State) WithDiagnostics(d *Diagnostics) *State {
	s.diag = d
	return s
}

func (s *State) logger() *slog.Logger { return s.diag.Logger() }

// CacheLen reports how many entries the memo cache currently holds.
func (s *State) CacheLen() int { return s.cache.len() }

// SwapState replaces *slot with fresh and returns the previous value, so a
// long-running worker can recycle (or discard, resetting memory use) its
// State without the caller reaching into State's internals.
func SwapState(slot **State, fresh *State) *State {
	old := *slot
	*slot = fresh
	return old
}
