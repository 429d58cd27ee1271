package pattern

// board is a full, all-16-tiles-present position/inverse pair used only
// to compute the reflected coordinates the Stm 4x4 solver needs per
// quadrant (spec section 4.5). Unlike the sparse, pattern-local states
// the transposition table decodes (pkg/transtable), every entry here is
// a real tile id, so inverse stays globally consistent under relabeling.
type board struct {
	pieces  [16]uint8
	inverse [16]uint8
}

func newBoard(tiles []int) board {
	var b board
	for i, t := range tiles {
		b.pieces[i] = uint8(t)
		b.inverse[t] = uint8(i)
	}
	return b
}

func (b *board) positions(p Pattern) []int {
	pos := make([]int, p.K())
	for i, t := range p.Tiles {
		pos[i] = int(b.inverse[t])
	}
	return pos
}

func (b *board) swapTiles(a, bb uint8) {
	pa, pb := b.inverse[a], b.inverse[bb]
	b.pieces[pa], b.pieces[pb] = b.pieces[pb], b.pieces[pa]
	b.inverse[a], b.inverse[bb] = b.inverse[bb], b.inverse[a]
}

func (b *board) swapPositions(a, bb int) {
	b.pieces[a], b.pieces[bb] = b.pieces[bb], b.pieces[a]
	b.inverse[b.pieces[a]], b.inverse[b.pieces[bb]] = uint8(a), uint8(bb)
}

// reflectLeftRight mirrors the board across its vertical axis: relabels
// every tile pair that swaps place under a left/right mirror, and swaps
// the corresponding position pairs to match.
func (b *board) reflectLeftRight() {
	b.swapTiles(1, 4)
	b.swapTiles(2, 3)
	b.swapTiles(5, 8)
	b.swapTiles(6, 7)
	b.swapTiles(9, 12)
	b.swapTiles(10, 11)
	b.swapTiles(13, 15)
	b.swapPositions(0, 3)
	b.swapPositions(1, 2)
	b.swapPositions(4, 7)
	b.swapPositions(5, 6)
	b.swapPositions(8, 11)
	b.swapPositions(9, 10)
	b.swapPositions(12, 15)
	b.swapPositions(13, 14)
}

// reflectUpDown mirrors the board across its horizontal axis.
func (b *board) reflectUpDown() {
	b.swapTiles(1, 13)
	b.swapTiles(5, 9)
	b.swapTiles(2, 14)
	b.swapTiles(6, 10)
	b.swapTiles(3, 15)
	b.swapTiles(7, 11)
	b.swapTiles(4, 12)
	b.swapPositions(0, 12)
	b.swapPositions(4, 8)
	b.swapPositions(1, 13)
	b.swapPositions(5, 9)
	b.swapPositions(2, 14)
	b.swapPositions(6, 10)
	b.swapPositions(3, 15)
	b.swapPositions(7, 11)
}

// QuadrantCoords computes the 4 pattern-database coordinates the Stm 4x4
// solver needs for a board's full row-major tile sequence: p4 applied
// directly (top-left quadrant), after a left/right mirror (top-right),
// after an up/down mirror (bottom-left), and finally p3 applied directly
// (bottom-right, which needs no reflection) (spec section 4.5).
func QuadrantCoords(tiles []int, p4, p3 Pattern) [4]uint64 {
	b := newBoard(tiles)

	var coords [4]uint64
	coords[0] = p4.Encode(b.positions(p4))

	b.reflectLeftRight()
	coords[1] = p4.Encode(b.positions(p4))
	b.reflectLeftRight()

	b.reflectUpDown()
	coords[2] = p4.Encode(b.positions(p4))
	b.reflectUpDown()

	coords[3] = p3.Encode(b.positions(p3))
	return coords
}
