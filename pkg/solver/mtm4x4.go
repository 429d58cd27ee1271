package solver

import (
	"context"

	"github.com/seekerror/logw"

	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

// Mtm4x4Solver is the optimal Mtm solver for the 4x4 board. At every
// node it computes the transpose of the current board and takes the
// larger of the two lower bounds (the double-probe heuristic), both read
// from a single pattern database
// over the 5-class reduced-tile representation (spec section 4.3.1,
// 4.4).
type Mtm4x4Solver struct {
	table []byte
}

// mtm4x4CacheKey names the Mtm 4x4 reduced-board pattern database's cache
// entry. There is only one shape/metric combination here, unlike the
// small and Stm 4x4 solvers, so the key carries no parameters.
const mtm4x4CacheKey = "mtm4x4-reduced.pdb"

// NewMtm4x4Solver builds the reduced-board pattern database (151,351,200
// entries), loading it from cache when available, and returns a ready
// solver.
func NewMtm4x4Solver(ctx context.Context, cacheOpts ...pdb.Option) *Mtm4x4Solver {
	c := pdb.NewCache(cacheOpts...)

	table, ok := c.LoadCached(ctx, mtm4x4CacheKey)
	if ok {
		logw.Infof(ctx, "pdb %v: cache hit", mtm4x4CacheKey)
		return &Mtm4x4Solver{table: table}
	}
	logw.Infof(ctx, "pdb %v: cache miss, building", mtm4x4CacheKey)

	solved := pattern.EncodeReduced(pattern.Reduce(puzzle.Solved(4, 4).Tiles()))

	step := func(idx uint64, d puzzle.Direction) (uint64, bool) {
		classes := pattern.DecodeReduced(idx)
		gap := pattern.GapPosition(classes)
		w, h := 4, 4

		t := puzzle.TablesFor(w, h)
		dst := t.Neighbor(uint8(gap), d)
		if int(dst) == gap {
			return 0, false
		}

		next := append([]int(nil), classes...)
		next[gap], next[dst] = next[dst], next[gap]
		return pattern.EncodeReduced(next), true
	}

	table = pdb.BuildMtm(pattern.ReducedIndexSpaceSize(), solved, step)
	if err := c.Save(ctx, mtm4x4CacheKey, table); err != nil {
		logw.Infof(ctx, "pdb %v: cache save failed, continuing uncached: %v", mtm4x4CacheKey, err)
	}

	return &Mtm4x4Solver{table: table}
}

func (s *Mtm4x4Solver) Width() int            { return 4 }
func (s *Mtm4x4Solver) Height() int           { return 4 }
func (s *Mtm4x4Solver) Metric() puzzle.Metric { return puzzle.Mtm }

func (s *Mtm4x4Solver) heuristic(b puzzle.Board) int {
	idx := pattern.EncodeReduced(pattern.Reduce(b.Tiles()))
	return int(s.table[idx])
}

// Solve runs the Mtm double-probe IDA*: at every node it checks the
// lower bound of both b and its transpose, takes the max, and only then
// recurses (spec section 4.3.1, "double probe").
func (s *Mtm4x4Solver) Solve(b puzzle.Board, opts Options) (puzzle.Moves, Stats, error) {
	depth := s.bound(b)

	var stats Stats
	for {
		if cap, ok := opts.DepthCap.V(); ok && depth > cap {
			return nil, stats, ErrNoSolutionFound
		}

		moves, found := s.dfs(depth, -1, b, &stats)
		stats.Iterations = append(stats.Iterations, IterStat{Depth: depth})

		if found {
			return moves, stats, nil
		}
		depth++
	}
}

func (s *Mtm4x4Solver) bound(b puzzle.Board) int {
	h1 := s.heuristic(b)
	h2 := s.heuristic(b.Transpose())
	if h2 > h1 {
		return h2
	}
	return h1
}

func (s *Mtm4x4Solver) dfs(depth int, lastAxis int, b puzzle.Board, stats *Stats) (puzzle.Moves, bool) {
	stats.Nodes++

	if s.bound(b) > depth {
		return nil, false
	}
	if depth == 0 {
		// The reduced-board pattern database is a lossy relabeling (any
		// two tiles sharing a reduced class are interchangeable in it),
		// so a bound of 0 only means the reduced state is solved, not
		// that b itself is. Confirm against the real board.
		return puzzle.Moves{}, b.IsSolved()
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

			if rest, found := s.dfs(depth-1, int(d.Axis()), cur, stats); found {
				return append(puzzle.Moves{{Direction: d, Amount: amount}}, rest...), true
			}
		}
	}
	return nil, false
}
