// Package bench runs timed solver trials over a grid of puzzle shapes and
// writes the results as CSV, the same role the teacher's sat package filled
// for tracking solver statistics, adapted here to report wall-clock timings
// instead of conflict counts.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/PaperXLV/UspWeakness/usp"
)

// Solver is the shape shared by BasicSolver, DpllSolver and CdclSolver.
type Solver func(u *usp.Usp) (rho, sigma *usp.Permutation, ok bool)

// Point is one (rows, cols) grid coordinate to benchmark.
type Point struct {
	N int
	K int
}

// Grid enumerates every (n, k) pair with minN <= n <= maxN and
// minK <= k <= maxK, in row-major order.
func Grid(minN, maxN, minK, maxK int) []Point {
	var pts []Point
	for n := minN; n <= maxN; n++ {
		for k := minK; k <= maxK; k++ {
			pts = append(pts, Point{N: n, K: k})
		}
	}
	return pts
}

// Result is the outcome of running trials timed samples of solver at a
// single grid point.
type Result struct {
	Point
	MeanMs   float64
	StdDevMs float64
}

// Run times solver against trials freshly generated random puzzles of shape
// (p.N, p.K), drawn from gen, and returns the mean and population standard
// deviation of the elapsed milliseconds.
func Run(gen *usp.Generator, solver Solver, p Point, trials int) (Result, error) {
	samples := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		puzzle, err := gen.GenerateRandomPuzzle(p.N, p.K)
		if err != nil {
			return Result{}, fmt.Errorf("bench: generate puzzle %dx%d: %w", p.N, p.K, err)
		}

		start := time.Now()
		solver(puzzle)
		elapsed := time.Since(start)

		samples = append(samples, float64(elapsed.Microseconds())/1000.0)
	}

	return Result{
		Point:    p,
		MeanMs:   stat.Mean(samples, nil),
		StdDevMs: populationStdDev(samples),
	}, nil
}

// populationStdDev returns the population (ddof=0) standard deviation of
// samples. gonum/stat's StdDev and Variance apply Bessel's correction
// (ddof=1), which is not what a fixed-size benchmark grid point wants: every
// sample here is the entire population of trials run at that point, not a
// sample drawn from a larger one.
func populationStdDev(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := stat.Mean(samples, nil)
	var sumSq float64
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(samples)))
}

// WriteCSV writes results to w with the header row Depth,Width,Mean(ms),
// Deviation(ms), one data row per Result in order.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Depth", "Width", "Mean(ms)", "Deviation(ms)"}); err != nil {
		return fmt.Errorf("bench: write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.N),
			strconv.Itoa(r.K),
			strconv.FormatFloat(r.MeanMs, 'f', 4, 64),
			strconv.FormatFloat(r.StdDevMs, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write row %v: %w", r.Point, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SolverByName resolves a --solver flag value to a Solver, mirroring
// spec.md's three interchangeable deciders.
func SolverByName(name string) (Solver, error) {
	switch name {
	case "basic":
		return usp.BasicSolver, nil
	case "dpll":
		return usp.DpllSolver, nil
	case "cdcl":
		return usp.CdclSolver, nil
	default:
		return nil, fmt.Errorf("bench: unknown solver %q (want basic, dpll, or cdcl)", name)
	}
}
