package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/spf13/cobra"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/bench"
	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
)

var log = core.Logger.With().Str("bench", "bst").Logger()

func main() {
	root := &cobra.Command{
		Use:   "bst-bench",
		Short: "Benchmark AVL, red-black, and splay tree engines.",
	}
	root.AddCommand(runCommand())
	root.AddCommand(demoCommand())

	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func runCommand() *cobra.Command {
	var (
		op      string
		pattern string
		sizes   []int
		seed    int64
		skew    float64
		out     string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one benchmark suite and write a results file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			labels := map[string]string{"op": op, "pattern": pattern}
			runner := &bench.Runner{
				Log:        log,
				Seed:       seed,
				SkewFactor: skew,
				MetricOpCount: promauto.NewCounter(prometheus.CounterOpts{
					Name:        "bst_bench_ops_total",
					Help:        "number of tree operations applied during benchmark passes",
					ConstLabels: labels,
				}),
				MetricTreeSize: promauto.NewGauge(prometheus.GaugeOpts{
					Name:        "bst_bench_tree_size",
					Help:        "tree size at the end of the last pass",
					ConstLabels: labels,
				}),
				Results: bench.NewResults(),
			}

			if err := runner.Run(op, pattern, sizes); err != nil {
				return err
			}
			if err := runner.Results.Save(out); err != nil {
				return fmt.Errorf("error saving results: %w", err)
			}
			log.Info().Str("file", out).Msg("results saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", "insert", "operation to benchmark (insert|search|delete|mixed)")
	cmd.Flags().StringVar(&pattern, "pattern", "random", "data pattern (random|sequential|skewed)")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{10_000, 50_000, 100_000}, "dataset sizes to test")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the data generators")
	cmd.Flags().Float64Var(&skew, "skew", bench.DefaultSkew, "Zipf skew factor for skewed searches")
	cmd.Flags().StringVar(&out, "out", "benchmark_results.json", "path for the results file")
	return cmd
}
