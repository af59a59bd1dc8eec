package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PaperXLV/UspWeakness/internal/bench"
	"github.com/PaperXLV/UspWeakness/usp"
)

var (
	flagTrials  int
	flagMinN    int
	flagMaxN    int
	flagMinK    int
	flagMaxK    int
	flagSolver  string
	flagOut     string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uspweakness",
		Short:   "Benchmark USP-weakness solvers over a grid of puzzle shapes",
		Version: "0.1.0",
		RunE:    runBench,
	}

	cmd.Flags().IntVar(&flagTrials, "trials", 30, "number of timed trials per grid point")
	cmd.Flags().IntVar(&flagMinN, "min-n", 4, "minimum puzzle row count")
	cmd.Flags().IntVar(&flagMaxN, "max-n", 10, "maximum puzzle row count")
	cmd.Flags().IntVar(&flagMinK, "min-k", 4, "minimum puzzle column count")
	cmd.Flags().IntVar(&flagMaxK, "max-k", 10, "maximum puzzle column count")
	cmd.Flags().StringVar(&flagSolver, "solver", "cdcl", "solver to benchmark: basic, dpll, or cdcl")
	cmd.Flags().StringVar(&flagOut, "out", "runtime.csv", "output CSV path")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug-level solver tracing")

	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		usp.Log.SetLevel(logrus.DebugLevel)
	}

	solver, err := bench.SolverByName(flagSolver)
	if err != nil {
		return err
	}

	gen := usp.NewGeneratorFromClock()
	grid := bench.Grid(flagMinN, flagMaxN, flagMinK, flagMaxK)

	results := make([]bench.Result, 0, len(grid))
	for _, p := range grid {
		r, err := bench.Run(gen, solver, p, flagTrials)
		if err != nil {
			return fmt.Errorf("uspweakness: %w", err)
		}
		results = append(results, r)
		fmt.Fprintf(cmd.OutOrStdout(), "n=%d k=%d mean=%.4fms stddev=%.4fms\n", p.N, p.K, r.MeanMs, r.StdDevMs)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("uspweakness: create %s: %w", flagOut, err)
	}
	defer f.Close()

	if err := bench.WriteCSV(f, results); err != nil {
		return fmt.Errorf("uspweakness: %w", err)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
