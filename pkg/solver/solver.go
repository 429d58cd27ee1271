// Package solver ties the board, indexing and pattern-database layers
// together into optimal solvers for each supported board shape and
// metric (spec section 4.4-4.8).
package solver

import (
	"context"
	"fmt"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

var version = build.NewVersion(0, 1, 0)

// Version returns the solver package's version string, for CLI banners.
func Version() string {
	return fmt.Sprintf("slide-pdb %v", version)
}

// Options configure a Solve call.
type Options struct {
	// DepthCap, if present, bounds the search: if no solution of length
	// <= DepthCap (in the solver's metric) exists, Solve returns
	// ErrNoSolutionFound instead of searching without bound.
	DepthCap lang.Optional[int]
}

// IterStat reports the depth of one completed IDA* iteration (ported
// from the original solver's SolverIterationStats).
type IterStat struct {
	Depth int
}

// Stats reports search effort alongside a solution (supplemented from
// the original's solver statistics module).
type Stats struct {
	Nodes      uint64
	Iterations []IterStat
}

// Solver is an optimal solver for one board shape and metric.
type Solver interface {
	Width() int
	Height() int
	Metric() puzzle.Metric

	// Solve returns an optimal move sequence transforming b into the
	// solved board, under Solve's metric, or an error. b is assumed
	// solvable and of exactly this solver's shape; use the package-level
	// Solve to get both checks plus transpose handling.
	Solve(b puzzle.Board, opts Options) (puzzle.Moves, Stats, error)
}

// New builds the Solver best suited to shape (w,h) and metric: for the
// 4x4 board, the reduced-board double-probe solver (Mtm) or the
// partitioned-pattern-database solver (Stm); otherwise the
// whole-permutation solver (pkg/index, n <= 12). Its pattern
// database is loaded from cache when one matching the shape, metric and
// pattern is on disk, and built and saved otherwise; cacheOpts configure
// that cache (e.g. pdb.WithCacheDir, pdb.WithCompression). It panics if
// n > 12 and (w,h) != (4,4), since no pattern database covers that case
// (spec.md section 5 scope).
func New(ctx context.Context, w, h int, metric puzzle.Metric, cacheOpts ...pdb.Option) Solver {
	n := w * h
	logw.Infof(ctx, "building solver for %dx%d (%v)", w, h, metric)

	switch {
	case w == 4 && h == 4 && metric == puzzle.Mtm:
		return NewMtm4x4Solver(ctx, cacheOpts...)
	case w == 4 && h == 4 && metric == puzzle.Stm:
		return NewStm4x4Solver(ctx, cacheOpts...)
	case n <= 12:
		return NewSmallSolver(ctx, w, h, metric, cacheOpts...)
	default:
		panic(fmt.Sprintf("solver: no pattern database available for %dx%d", w, h))
	}
}

// Solve is the public entry point: it rejects boards whose shape is
// incompatible with s (accounting for the transposed shape, spec section
// 4.8), rejects unsolvable boards up front (spec section 4.7), and
// otherwise delegates to s.
func Solve(s Solver, b puzzle.Board, opts Options) (puzzle.Moves, Stats, error) {
	switch {
	case b.Width() == s.Width() && b.Height() == s.Height():
		return solveDirect(s, b, opts)

	case b.Width() == s.Height() && b.Height() == s.Width():
		moves, stats, err := solveDirect(s, b.Transpose(), opts)
		if err != nil {
			return nil, stats, err
		}
		return transposeMoves(moves), stats, nil

	default:
		return nil, Stats{}, fmt.Errorf("%w: solver is %dx%d, board is %dx%d",
			ErrIncompatiblePuzzleSize, s.Width(), s.Height(), b.Width(), b.Height())
	}
}

func solveDirect(s Solver, b puzzle.Board, opts Options) (puzzle.Moves, Stats, error) {
	if !puzzle.IsSolvable(b) {
		return nil, Stats{}, ErrUnsolvable
	}
	return s.Solve(b, opts)
}

// transposeMoves conjugates a move sequence found on a transposed board
// back into moves valid on the original board shape. Direction.Transpose
// is its own inverse, so this is the same mapping in either direction.
func transposeMoves(moves puzzle.Moves) puzzle.Moves {
	out := make(puzzle.Moves, len(moves))
	for i, m := range moves {
		out[i] = puzzle.Move{Direction: m.Direction.Transpose(), Amount: m.Amount}
	}
	return out
}
