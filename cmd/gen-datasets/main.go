package main

import (
	"github.com/spf13/cobra"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/bench"
	"github.com/dina-adel/Advanced-Data-Structures-Analysis/core"
)

var log = core.Logger.With().Str("bench", "gen-datasets").Logger()

func main() {
	var seed int64
	var sizes []int
	cmd := &cobra.Command{
		Use:   "gen-datasets [out-dir]",
		Short: "Generate benchmark datasets for bst-bench",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := args[0]
			if err := bench.WriteDatasets(outDir, seed, sizes); err != nil {
				return err
			}
			log.Info().Str("dir", outDir).Ints("sizes", sizes).Msg("datasets saved")
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the data generators")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{10_000, 50_000, 100_000, 500_000, 1_000_000},
		"dataset sizes to generate")
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
