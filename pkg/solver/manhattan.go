package solver

import "github.com/fifteenpuzzle/solver/pkg/puzzle"

// manhattanLowerBound is the sum of each tile's Manhattan distance from
// its solved position (the gap excluded), under the row-grids solved
// labeling. It is a cheap, non-admissible-ignoring lower bound used only
// to pick the initial IDA* probe depth alongside the pattern-database
// bound, never inside the search loop itself (ported from the original
// solver's RowGrids Manhattan-distance heuristic).
func manhattanLowerBound(b puzzle.Board) int {
	w, h := b.Width(), b.Height()
	n := w * h

	total := 0
	for i := 0; i < n; i++ {
		tile := b.Tile(i)
		if tile == 0 {
			continue
		}

		x, y := i%w, i/w
		sx, sy := (tile-1)%w, (tile-1)/w

		total += abs(x-sx) + abs(y-sy)
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
