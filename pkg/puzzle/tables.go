package puzzle

import "sync"

// Tables holds the precomputed per-(gap,direction) move data for one board
// shape (W x H, N = W*H <= 16): the neighbor index, its nibble shift, and
// the swap mask for every tile value. Tables are built once per shape and
// cached for process lifetime (spec section 3, "Tables C2 are static").
//
// neighbor[g][d] is the index of the tile that swaps into the gap when a
// tile moves in direction d (equivalently the gap moves opposite); it
// equals g itself when the move is not legal at g. shift[g][d] is
// 4*neighbor[g][d] (only read when legal). mask[g][d][t] lets a move be
// applied with a single XOR: pieces ^= mask[g][d][t] swaps the (zero) gap
// nibble with the nibble holding tile value t.
type Tables struct {
	W, H     int
	neighbor [16][NumDirections]uint8
	shift    [16][NumDirections]uint8
	mask     [16][NumDirections][16]uint64
}

var (
	tablesMu    sync.Mutex
	tablesCache = map[[2]int]*Tables{}
)

// TablesFor returns the cached Tables for shape (w,h), building them on
// first use. w*h must be in [1,16].
func TablesFor(w, h int) *Tables {
	key := [2]int{w, h}

	tablesMu.Lock()
	defer tablesMu.Unlock()

	if t, ok := tablesCache[key]; ok {
		return t
	}
	t := buildTables(w, h)
	tablesCache[key] = t
	return t
}

func buildTables(w, h int) *Tables {
	n := w * h
	if n < 1 || n > 16 {
		panic("puzzle: board size out of range")
	}

	t := &Tables{W: w, H: h}
	for g := 0; g < n; g++ {
		row, col := g/w, g%w
		for d := Direction(0); d < NumDirections; d++ {
			nb := g
			switch d {
			case Up:
				if row < h-1 {
					nb = g + w
				}
			case Down:
				if row > 0 {
					nb = g - w
				}
			case Left:
				if col < w-1 {
					nb = g + 1
				}
			case Right:
				if col > 0 {
					nb = g - 1
				}
			}

			t.neighbor[g][d] = uint8(nb)
			if nb == g {
				continue // blocked: shift/mask never read
			}
			t.shift[g][d] = uint8(4 * nb)
			for tile := 0; tile < 16; tile++ {
				t.mask[g][d][tile] = (uint64(tile) << uint(4*g)) | (uint64(tile) << uint(4*nb))
			}
		}
	}
	return t
}

// Move applies direction d to a packed board with the given gap index. It
// returns the unchanged state and false if the move is not legal at gap.
func (t *Tables) Move(pieces uint64, gap uint8, d Direction) (uint64, uint8, bool) {
	nb := t.neighbor[gap][d]
	if nb == gap {
		return pieces, gap, false
	}
	tile := uint8((pieces >> t.shift[gap][d]) & 0xF)
	pieces ^= t.mask[gap][d][tile]
	return pieces, nb, true
}

// CanMove reports whether direction d is legal with the gap at index gap,
// without touching the piece word.
func (t *Tables) CanMove(gap uint8, d Direction) bool {
	return t.neighbor[gap][d] != gap
}

// Neighbor returns the position that would swap into gap under direction
// d, or gap itself if the move is not legal. Exposed for consumers (the
// pattern transposition tables) that need the move graph without the
// packed nibble representation.
func (t *Tables) Neighbor(gap uint8, d Direction) uint8 {
	return t.neighbor[gap][d]
}
