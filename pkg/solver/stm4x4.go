package solver

import (
	"context"

	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"

	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
	"github.com/fifteenpuzzle/solver/pkg/transtable"
)

// Stm4x4Solver is the optimal Stm solver for the 4x4 board: an additive
// partitioned-pattern-database heuristic over 4 quadrant coordinates,
// 3 of them sharing the P4 pattern database via the whole-board
// reflection automorphisms and the 4th using the P3 pattern database
// directly (spec section 4.3.3, 4.5).
type Stm4x4Solver struct {
	tt4, tt3   *transtable.Table
	pdb4, pdb3 []byte
}

// NewStm4x4Solver builds both patterns' transposition tables and loads
// or builds their partitioned pattern databases. P4 and P3 share no
// state, so the two are built concurrently via errgroup.
func NewStm4x4Solver(ctx context.Context, cacheOpts ...pdb.Option) *Stm4x4Solver {
	s := &Stm4x4Solver{}
	c := pdb.NewCache(cacheOpts...)

	var g errgroup.Group
	g.Go(func() error {
		s.tt4 = transtable.Build(pattern.P4)
		s.pdb4 = loadOrBuildPartitioned(ctx, c, "stm4x4-p4.pdb", s.tt4, pattern.P4.SolvedIndex())
		return nil
	})
	g.Go(func() error {
		s.tt3 = transtable.Build(pattern.P3)
		s.pdb3 = loadOrBuildPartitioned(ctx, c, "stm4x4-p3.pdb", s.tt3, pattern.P3.SolvedIndex())
		return nil
	})
	_ = g.Wait()

	return s
}

func loadOrBuildPartitioned(ctx context.Context, c *pdb.Cache, key string, tt *transtable.Table, solvedIndex uint64) []byte {
	if table, ok := c.LoadCached(ctx, key); ok {
		logw.Infof(ctx, "pdb %v: cache hit", key)
		return table
	}
	logw.Infof(ctx, "pdb %v: cache miss, building", key)

	table := pdb.BuildPartitioned(tt, solvedIndex)
	if err := c.Save(ctx, key, table); err != nil {
		logw.Infof(ctx, "pdb %v: cache save failed, continuing uncached: %v", key, err)
	}
	return table
}

func (s *Stm4x4Solver) Width() int            { return 4 }
func (s *Stm4x4Solver) Height() int           { return 4 }
func (s *Stm4x4Solver) Metric() puzzle.Metric { return puzzle.Stm }

func (s *Stm4x4Solver) heuristic(coords [4]uint64) int {
	return int(s.pdb4[coords[0]]) + int(s.pdb4[coords[1]]) + int(s.pdb4[coords[2]]) + int(s.pdb3[coords[3]])
}

// Solve runs the additive-heuristic Stm IDA*, pruning by the immediate
// inverse of the last move and incrementing the search bound by 2 per
// iteration (spec section 4.3.3, 4.4).
func (s *Stm4x4Solver) Solve(b puzzle.Board, opts Options) (puzzle.Moves, Stats, error) {
	coords := pattern.QuadrantCoords(b.Tiles(), pattern.P4, pattern.P3)
	depth := s.heuristic(coords)
	if md := manhattanLowerBound(b); md > depth {
		depth = md
	}

	var stats Stats
	for {
		if cap, ok := opts.DepthCap.V(); ok && depth > cap {
			return nil, stats, ErrNoSolutionFound
		}

		moves, found := s.dfs(depth, -1, b, coords, &stats)
		stats.Iterations = append(stats.Iterations, IterStat{Depth: depth})

		if found {
			return moves, stats, nil
		}
		depth += 2
	}
}

// dfs recurses on the board directly (for move legality and replay) and
// on the 4 quadrant coordinates in parallel (for the heuristic),
// advancing each coordinate with the direction seen by its quadrant's
// reflection (spec section 4.5).
func (s *Stm4x4Solver) dfs(depth int, invLast int, b puzzle.Board, coords [4]uint64, stats *Stats) (puzzle.Moves, bool) {
	stats.Nodes++

	if s.heuristic(coords) > depth {
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

		next := coords
		next[0] = advance(s.tt4, coords[0], d)
		next[1] = advance(s.tt4, coords[1], d.ReflectLeftRight())
		next[2] = advance(s.tt4, coords[2], d.ReflectUpDown())
		next[3] = advance(s.tt3, coords[3], d)

		if rest, found := s.dfs(depth-1, int(d.Inverse()), nb, next, stats); found {
			return append(puzzle.Moves{{Direction: d, Amount: 1}}, rest...), true
		}
	}
	return nil, false
}

func advance(tt *transtable.Table, idx uint64, d puzzle.Direction) uint64 {
	e := tt.Rows[idx][d]
	if e.Blocked() {
		return idx
	}
	return uint64(e.Index())
}
