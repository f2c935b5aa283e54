package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dina-adel/Advanced-Data-Structures-Analysis/bench"
)

type demoChoice struct {
	label   string
	op      string
	pattern string
}

var demoChoices = map[string]demoChoice{
	"1": {"Insert - Random Data", "insert", "random"},
	"2": {"Insert - Sequential Data", "insert", "sequential"},
	"3": {"Search - Random Data", "search", "random"},
	"4": {"Search - Sequential Data", "search", "sequential"},
	"5": {"Search - Skewed Data", "search", "skewed"},
	"6": {"Delete - Random Data", "delete", "random"},
	"7": {"Delete - Sequential Data", "delete", "sequential"},
	"8": {"Mixed Workload (Random): 60% insert, 30% search, 10% delete", "mixed", "mixed"},
}

func demoCommand() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Interactively pick a benchmark and a dataset size.",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			for {
				printMenu(out)
				fmt.Fprint(out, "Enter your choice: ")
				if !in.Scan() {
					return in.Err()
				}
				choice := strings.ToLower(strings.TrimSpace(in.Text()))

				if choice == "q" {
					fmt.Fprintln(out, "Goodbye!")
					return nil
				}

				c, ok := demoChoices[choice]
				if !ok {
					fmt.Fprintf(out, "Invalid choice %q. Please try again.\n", choice)
					continue
				}

				size, err := promptSize(in, out)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "\nRunning [%s] for size %s...\n", c.label, humanize.Comma(int64(size)))
				runner := &bench.Runner{
					Log:     log,
					Seed:    seed,
					Results: bench.NewResults(),
				}
				if err := runner.Run(c.op, c.pattern, []int{size}); err != nil {
					return err
				}
				printTimings(out, runner.Results, c.op, c.pattern, size)
			}
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the data generators")
	return cmd
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\n--- Tree Benchmark Demo ---")
	fmt.Fprintln(out, "Please choose a benchmark to run:")
	for i := 1; i <= len(demoChoices); i++ {
		key := strconv.Itoa(i)
		fmt.Fprintf(out, "  [%s] %s\n", key, demoChoices[key].label)
	}
	fmt.Fprintln(out, "  ------------------------------")
	fmt.Fprintln(out, "  [q] Quit")
	fmt.Fprintln(out, "---------------------------------")
}

func promptSize(in *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "  ... Enter dataset size (e.g., 50000): ")
		if !in.Scan() {
			return 0, in.Err()
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			continue
		}
		size, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(out, "      Invalid input. Please enter a whole number.")
			continue
		}
		if size <= 0 {
			fmt.Fprintln(out, "      Size must be a positive number.")
			continue
		}
		return size, nil
	}
}

func printTimings(out io.Writer, results bench.Results, op, pattern string, size int) {
	key := fmt.Sprintf("%s_%d", pattern, size)
	for _, kind := range bench.TreeKinds {
		if secs, ok := results[kind][op][key]; ok {
			fmt.Fprintf(out, "    %-7s %.4fs\n", kind+":", secs)
		}
	}
	fmt.Fprintln(out, "\nBenchmark complete. Results are shown above.")
}
