// Package pdb builds and caches the pattern databases behind every
// solver variant (spec section 4.3): layered breadth-first search over
// an index space, driven by a caller-supplied single-slide step
// function, plus the two-phase partitioned build used by the Stm 4x4
// solver.
package pdb

import (
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
	"github.com/fifteenpuzzle/solver/pkg/transtable"
)

// Unreached marks an index not yet visited by the layered BFS.
const Unreached byte = 0xFF

// Step attempts one single-tile slide from the state encoded as idx, in
// direction d, returning the resulting index and whether the slide was
// legal. Implementations decode idx, apply the move, and re-encode.
type Step func(idx uint64, d puzzle.Direction) (uint64, bool)

// BuildStm runs the layered BFS of spec section 4.3.2: every single-tile
// slide is one unit. The frontier (the set of indices at the current
// depth) is tracked explicitly rather than found by rescanning the dense
// array each round; this is the standard BFS optimization and produces
// the identical distance labeling.
func BuildStm(size, solved uint64, step Step) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = Unreached
	}
	d[solved] = 0

	frontier := []uint64{solved}
	depth := byte(0)
	for len(frontier) > 0 {
		var next []uint64
		for _, i := range frontier {
			for dir := puzzle.Direction(0); dir < puzzle.NumDirections; dir++ {
				j, ok := step(i, dir)
				if !ok || d[j] != Unreached {
					continue
				}
				d[j] = depth + 1
				next = append(next, j)
			}
		}
		frontier = next
		depth++
	}
	return d
}

// BuildMtm runs the layered BFS of spec section 4.3.1: one maximal
// colinear run of slides is one unit, and every intermediate state along
// a run is emitted (not just the final one), since an Mtm search step
// may need to land exactly there.
func BuildMtm(size, solved uint64, step Step) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = Unreached
	}
	d[solved] = 0

	frontier := []uint64{solved}
	depth := byte(0)
	for len(frontier) > 0 {
		var next []uint64
		for _, i := range frontier {
			for dir := puzzle.Direction(0); dir < puzzle.NumDirections; dir++ {
				cur := i
				for {
					j, ok := step(cur, dir)
					if !ok {
						break
					}
					if d[j] == Unreached {
						d[j] = depth + 1
						next = append(next, j)
					}
					cur = j
				}
			}
		}
		frontier = next
		depth++
	}
	return d
}

// BuildPartitioned runs the two-phase layered BFS of spec section 4.3.3
// against a precomputed transposition table: starting from solvedIndex,
// it repeatedly closes cost-0 edges (moves that displace only an
// untracked tile) at the current depth to a fixed point, then advances
// one depth via a single pass of cost-1 edges (moves that displace a
// tracked tile) from the previous depth's frontier. Ported from the
// original solver's make_pdb/pdb_bfs_pass.
func BuildPartitioned(tt *transtable.Table, solvedIndex uint64) []byte {
	size := uint64(len(tt.Rows))
	d := make([]byte, size)
	for i := range d {
		d[i] = Unreached
	}
	d[solvedIndex] = 0

	pass := func(depth, baseDepth byte) int {
		n := 0
		for i, row := range tt.Rows {
			if d[i] == Unreached || d[i] < baseDepth {
				continue
			}
			for _, e := range row {
				if e.Blocked() {
					continue
				}
				cost := byte(0)
				if e.MovedTracked() {
					cost = 1
				}
				j := e.Index()
				if d[j] == Unreached && d[i]+cost == depth {
					d[j] = depth
					n++
				}
			}
		}
		return n
	}

	var depth byte
	total := uint64(1)
	for total < size {
		for {
			n := pass(depth, depth)
			if n == 0 {
				break
			}
			total += uint64(n)
		}
		if total == size {
			break
		}
		depth++
		total += uint64(pass(depth, depth-1))
	}
	return d
}
