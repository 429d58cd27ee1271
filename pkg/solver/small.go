package solver

import (
	"context"
	"fmt"

	"github.com/seekerror/logw"

	"github.com/fifteenpuzzle/solver/pkg/index"
	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

// SmallSolver is an optimal IDA* solver for boards with n = w*h <= 12
// tiles, built against a single permutation-indexed pattern database
// covering the whole reachable state space (spec section 4.6).
type SmallSolver struct {
	w, h   int
	metric puzzle.Metric
	table  []byte
}

// NewSmallSolver builds a SmallSolver for shape (w,h) and metric, loading
// its pattern database from cache when a matching one is on disk. n =
// w*h must be <= 12: the pattern database has n!/2 entries, so larger
// shapes are handled by the dedicated 4x4 solvers instead.
func NewSmallSolver(ctx context.Context, w, h int, metric puzzle.Metric, cacheOpts ...pdb.Option) *SmallSolver {
	n := w * h
	size := index.PermutationSpaceSize(n)
	solved := index.EncodePermutation(puzzle.Solved(w, h))

	c := pdb.NewCache(cacheOpts...)
	key := fmt.Sprintf("small-%dx%d-%v.pdb", w, h, metric)

	table, ok := c.LoadCached(ctx, key)
	if ok {
		logw.Infof(ctx, "pdb %v: cache hit", key)
	} else {
		logw.Infof(ctx, "pdb %v: cache miss, building", key)

		step := func(idx uint64, d puzzle.Direction) (uint64, bool) {
			b := index.DecodePermutation(idx, w, h)
			nb, ok := b.Move(d)
			if !ok {
				return 0, false
			}
			return index.EncodePermutation(nb), true
		}

		if metric == puzzle.Mtm {
			table = pdb.BuildMtm(size, solved, step)
		} else {
			table = pdb.BuildStm(size, solved, step)
		}
		if err := c.Save(ctx, key, table); err != nil {
			logw.Infof(ctx, "pdb %v: cache save failed, continuing uncached: %v", key, err)
		}
	}

	return &SmallSolver{w: w, h: h, metric: metric, table: table}
}

func (s *SmallSolver) Width() int            { return s.w }
func (s *SmallSolver) Height() int           { return s.h }
func (s *SmallSolver) Metric() puzzle.Metric { return s.metric }

// Solve runs IDA*, using the permutation-pattern-database lower bound to
// prune and increasing the search depth (by 2 for Stm, by 1 for Mtm)
// until a solution is found or the depth cap is exceeded (spec section
// 4.6).
func (s *SmallSolver) Solve(b puzzle.Board, opts Options) (puzzle.Moves, Stats, error) {
	depth := int(s.table[index.EncodePermutation(b)])
	if s.metric == puzzle.Stm {
		if md := manhattanLowerBound(b); md > depth {
			depth = md
		}
	}

	var stats Stats
	for {
		if cap, ok := opts.DepthCap.V(); ok && depth > cap {
			return nil, stats, ErrNoSolutionFound
		}

		var moves puzzle.Moves
		var found bool
		if s.metric == puzzle.Mtm {
			moves, found = s.dfsMtm(depth, -1, b, &stats)
		} else {
			moves, found = s.dfsStm(depth, -1, b, &stats)
		}
		stats.Iterations = append(stats.Iterations, IterStat{Depth: depth})

		if found {
			return moves, stats, nil
		}
		if s.metric == puzzle.Mtm {
			depth++
		} else {
			depth += 2
		}
	}
}

// dfsStm explores single-tile moves, pruning on the pattern-database
// lower bound and skipping the immediate inverse of the last move (spec
// section 4.6, "Stm: prune by inverse").
func (s *SmallSolver) dfsStm(depth int, invLast int, b puzzle.Board, stats *Stats) (puzzle.Moves, bool) {
	stats.Nodes++

	if int(s.table[index.EncodePermutation(b)]) > depth {
		return nil, false
	}
	if depth == 0 {
		return puzzle.Moves{}, true
	}

	for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
		if invLast == int(d) {
			continue
		}
		nb, ok := b.Move(d)
		if !ok {
			continue
		}
		if rest, found := s.dfsStm(depth-1, int(d.Inverse()), nb, stats); found {
			return append(puzzle.Moves{{Direction: d, Amount: 1}}, rest...), true
		}
	}
	return nil, false
}

// dfsMtm explores maximal colinear slide runs as a sequence of
// candidate Mtm moves (one per incremental slide length), pruning on the
// pattern-database lower bound and skipping the axis of the last move
// (spec section 4.6, "Mtm: prune by axis").
func (s *SmallSolver) dfsMtm(depth int, lastAxis int, b puzzle.Board, stats *Stats) (puzzle.Moves, bool) {
	stats.Nodes++

	if int(s.table[index.EncodePermutation(b)]) > depth {
		return nil, false
	}
	if depth == 0 {
		return puzzle.Moves{}, true
	}

	for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
		if lastAxis == int(d.Axis()) {
			continue
		}

		cur := b
		amount := 0
		for {
			nb, ok := cur.Move(d)
			if !ok {
				break
			}
			cur = nb
			amount++

			if rest, found := s.dfsMtm(depth-1, int(d.Axis()), cur, stats); found {
				return append(puzzle.Moves{{Direction: d, Amount: amount}}, rest...), true
			}
		}
	}
	return nil, false
}
