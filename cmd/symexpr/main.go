package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/oisee/symexpr/pkg/expr"
	"github.com/oisee/symexpr/pkg/miner"
	"github.com/oisee/symexpr/pkg/propcheck"
	"github.com/oisee/symexpr/pkg/rules"
	"github.com/oisee/symexpr/pkg/simplify"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symexpr",
		Short: "Bit-vector expression simplifier — directive-based rewriting to a fixed point",
	}

	rootCmd.AddCommand(
		newSimplifyCmd(),
		newRulesCmd(),
		newBatchCmd(),
		newCheckCmd(),
		newMineCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readExprFile(path string) (*expr.Expr, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return expr.ParseJSON(data)
}

func newSimplifyCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Simplify a single expression to a fixed point",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("--in is required")
			}
			e, err := readExprFile(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}

			idx := rules.BuildIndex(rules.All)
			state := simplify.NewState(simplify.Config{})
			out := state.Simplify(idx, e)

			fmt.Printf("Input:  complexity %.1f, depth %d\n", e.Complexity, e.Depth)
			fmt.Printf("Output: complexity %.1f, depth %d\n", out.Complexity, out.Depth)
			fmt.Printf("Delta:  %.1f\n", out.Complexity-e.Complexity)

			data, err := expr.MarshalJSON(out)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Input expression JSON file")
	return cmd
}

func newRulesCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the static rewrite-rule corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			families := map[string][]rules.Rule{
				"universal":  rules.Universal,
				"boolean":    rules.Boolean,
				"packunpack": rules.PackUnpack,
				"join":       rules.Join,
			}

			var names []string
			if family != "" {
				if _, ok := families[family]; !ok {
					return fmt.Errorf("unknown family %q (want one of universal, boolean, packunpack, join)", family)
				}
				names = []string{family}
			} else {
				for name := range families {
					names = append(names, name)
				}
				sort.Strings(names)
			}

			for _, name := range names {
				fmt.Printf("# %s\n", name)
				for _, r := range families[name] {
					fmt.Printf("  %-24s %s  =>  %s\n", r.Name, r.From, r.To)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "Rule family: universal, boolean, packunpack, or join (default: all)")
	return cmd
}

func newBatchCmd() *cobra.Command {
	var dir string
	var workers int
	var checkpointPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Simplify every expression JSON file in a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				return fmt.Errorf("--dir is required")
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}

			var paths []string
			for _, ent := range entries {
				if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".json") {
					continue
				}
				paths = append(paths, filepath.Join(dir, ent.Name()))
			}
			sort.Strings(paths)

			inputs := make([]*expr.Expr, 0, len(paths))
			start := 0
			if checkpointPath != "" {
				if ckpt, err := simplify.LoadCheckpoint(checkpointPath); err == nil {
					start = ckpt.Completed
					fmt.Printf("Resuming from checkpoint: %d of %d already done\n", start, len(paths))
				}
			}
			for _, p := range paths[start:] {
				e, err := readExprFile(p)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", p, err)
				}
				inputs = append(inputs, e)
			}

			idx := rules.BuildIndex(rules.All)
			results := simplify.RunBatch(idx, inputs, simplify.BatchConfig{
				NumWorkers: workers,
				Verbose:    verbose,
			})

			fmt.Printf("Simplified %d expressions\n", len(results))
			for i, r := range results {
				fmt.Printf("  [%d] %s: complexity %.1f -> %.1f\n",
					start+i, paths[start+i], r.Input.Complexity, r.Output.Complexity)
			}

			if checkpointPath != "" {
				ckpt := &simplify.Checkpoint{Completed: len(paths), Results: results}
				if err := simplify.SaveCheckpoint(checkpointPath, ckpt); err != nil {
					return fmt.Errorf("failed to write checkpoint: %w", err)
				}
				fmt.Printf("Checkpoint written to %s\n", checkpointPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of expression JSON files")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Number of worker goroutines")
	cmd.Flags().StringVar(&checkpointPath, "checkpoint", "", "Checkpoint file for resumable runs")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose progress reporting")
	return cmd
}

func newCheckCmd() *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify an expression and its simplified form agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("--in is required")
			}
			e, err := readExprFile(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}

			idx := rules.BuildIndex(rules.All)
			state := simplify.NewState(simplify.Config{})
			out := state.Simplify(idx, e)

			quick := propcheck.QuickCheck(e, out)
			fmt.Printf("QuickCheck:      %v\n", quick)

			vars := expr.FreeVars(e)
			totalWidth := 0
			for _, v := range vars {
				totalWidth += int(v.Width)
			}
			if totalWidth <= 16 && len(vars) <= 2 {
				equivalent, ok := propcheck.ExhaustiveCheck(e, out)
				if ok {
					fmt.Printf("ExhaustiveCheck: %v\n", equivalent)
					if !equivalent {
						return fmt.Errorf("simplification is NOT exhaustively equivalent to the input")
					}
				}
			} else {
				fmt.Println("ExhaustiveCheck: skipped (too many free variable bits)")
			}

			if !quick {
				return fmt.Errorf("simplification failed its quick equivalence check")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Input expression JSON file")
	return cmd
}

func newMineCmd() *cobra.Command {
	var in string
	var iters int
	var chains int
	var decay float64
	var seed uint64

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Run the MCMC rule miner against a target expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("--in is required")
			}
			target, err := readExprFile(in)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}

			pool := miningPool(target)
			results := miner.Run(target, miner.Config{
				Chains:      chains,
				Iterations:  iters,
				Temperature: 1.0,
				Decay:       decay,
				Pool:        pool,
				Seed:        seed,
			})

			winner, ok := miner.Winner(results)
			if !ok {
				fmt.Println("no candidates found")
				return nil
			}

			fmt.Printf("Target complexity:  %.1f\n", target.Complexity)
			fmt.Printf("Best found cost:     %d\n", winner.Cost)
			fmt.Printf("Best found complexity: %.1f\n", winner.Best.Complexity)
			if !propcheck.QuickCheck(target, winner.Best) {
				fmt.Println("WARNING: best candidate does not quick-check equivalent to the target")
			}

			data, err := expr.MarshalJSON(winner.Best)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Input expression JSON file")
	cmd.Flags().IntVar(&iters, "iters", 10000, "Iterations per chain")
	cmd.Flags().IntVar(&chains, "chains", runtime.NumCPU(), "Number of parallel MCMC chains")
	cmd.Flags().Float64Var(&decay, "decay", 0.999, "Temperature decay factor")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "RNG seed for chain 0")
	return cmd
}

// miningPool seeds the mutator's leaf-replacement pool with target's own
// free variables plus the small constants a rewrite is likely to need.
func miningPool(target *expr.Expr) []*expr.Expr {
	var pool []*expr.Expr
	for _, v := range expr.FreeVars(target) {
		pool = append(pool, v)
		if zero, err := expr.BuildConstant(0, v.Width); err == nil {
			pool = append(pool, zero)
		}
		if one, err := expr.BuildConstant(1, v.Width); err == nil {
			pool = append(pool, one)
		}
	}
	return pool
}
