package simplify

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/rules"
)

// BatchConfig tunes RunBatch, mirroring the shape of the teacher's
// search.Config (NumWorkers defaulting to NumCPU, a Verbose progress
// reporter on a ticker).
type BatchConfig struct {
	NumWorkers  int
	Verbose     bool
	StateConfig Config
}

// BatchResult is one input expression's simplification outcome.
type BatchResult struct {
	Input  *expr.Expr
	Output *expr.Expr
}

type batchTask struct {
	index int
	expr  *expr.Expr
}

// RunBatch simplifies every expression in inputs concurrently. Each worker
// goroutine owns its own State — per spec.md, the simplifier core does no
// internal parallelism itself; concurrency is strictly an outer fan-out of
// one independent State per worker, grounded on the teacher's
// pkg/search.WorkerPool.RunTasks.
func RunBatch(idx *rules.Index, inputs []*expr.Expr, cfg BatchConfig) []BatchResult {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	results := make([]BatchResult, len(inputs))

	ch := make(chan batchTask, len(inputs))
	for i, e := range inputs {
		ch <- batchTask{index: i, expr: e}
	}
	close(ch)

	var completed atomic.Int64
	done := make(chan struct{})
	if cfg.Verbose {
		go reportBatchProgress(&completed, int64(len(inputs)), done)
	}

	var wg sync.WaitGroup
	for w := 0; w < cfg.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state := NewState(cfg.StateConfig)
			for t := range ch {
				out := state.Simplify(idx, t.expr)
				results[t.index] = BatchResult{Input: t.expr, Output: out}
				completed.Add(1)
			}
		}()
	}
	wg.Wait()
	if cfg.Verbose {
		close(done)
	}
	return results
}

func reportBatchProgress(completed *atomic.Int64, total int64, done chan struct{}) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c := completed.Load()
			slog.Info("batch simplify progress",
				"completed", c, "total", total, "elapsed", time.Since(start).Round(time.Second))
		}
	}
}
