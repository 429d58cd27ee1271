package puzzle

import (
	"fmt"
	"strings"
)

// Board is a packed sliding-tile board: a 64-bit word whose nibble i holds
// the tile at row-major position i (0 denotes the gap), plus a cached gap
// index. Board is a small value type, copied freely during search (spec
// section 3, "Boards (C1) are value types").
type Board struct {
	w, h   int
	pieces uint64
	gap    uint8
	t      *Tables
}

// NewBoard builds a Board from a flat, row-major tile array of length
// w*h, with 0 denoting the gap. It validates that every value in [0,w*h)
// appears exactly once.
func NewBoard(tiles []int, w, h int) (Board, error) {
	n := w * h
	if n < 1 || n > 16 {
		return Board{}, &InvalidBoardError{Reason: fmt.Sprintf("unsupported size %dx%d", w, h)}
	}
	if len(tiles) != n {
		return Board{}, &InvalidBoardError{Reason: fmt.Sprintf("expected %d tiles, got %d", n, len(tiles))}
	}

	var seen uint32
	var pieces uint64
	gap := -1
	for i, v := range tiles {
		if v < 0 || v >= n {
			return Board{}, &InvalidBoardError{Reason: fmt.Sprintf("tile %d out of range at position %d", v, i)}
		}
		if seen&(1<<uint(v)) != 0 {
			return Board{}, &InvalidBoardError{Reason: fmt.Sprintf("duplicate tile %d", v)}
		}
		seen |= 1 << uint(v)
		pieces |= uint64(v) << uint(4*i)
		if v == 0 {
			gap = i
		}
	}
	if gap < 0 {
		return Board{}, &InvalidBoardError{Reason: "missing gap (tile 0)"}
	}

	return Board{w: w, h: h, pieces: pieces, gap: uint8(gap), t: TablesFor(w, h)}, nil
}

// Solved returns the solved board of the given shape: tiles in row-grids
// order 1,2,...,N-1,0.
func Solved(w, h int) Board {
	n := w * h
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	b, err := NewBoard(tiles, w, h)
	if err != nil {
		panic(err) // unreachable: solved tiles are always well-formed
	}
	return b
}

// Width and Height return the board's dimensions.
func (b Board) Width() int  { return b.w }
func (b Board) Height() int { return b.h }

// Gap returns the row-major index of the gap.
func (b Board) Gap() uint8 { return b.gap }

// Pieces returns the packed 64-bit nibble word.
func (b Board) Pieces() uint64 { return b.pieces }

// Tile returns the tile value at row-major position i.
func (b Board) Tile(i int) int {
	return int((b.pieces >> uint(4*i)) & 0xF)
}

// Tiles returns the flat row-major tile array.
func (b Board) Tiles() []int {
	n := b.w * b.h
	out := make([]int, n)
	for i := range out {
		out[i] = b.Tile(i)
	}
	return out
}

// IsSolved reports whether the board equals Solved(b.w, b.h).
func (b Board) IsSolved() bool {
	return b.pieces == Solved(b.w, b.h).pieces
}

// Move applies direction d, returning the resulting board and whether the
// move was legal. The receiver is left unmodified.
func (b Board) Move(d Direction) (Board, bool) {
	pieces, gap, ok := b.t.Move(b.pieces, b.gap, d)
	if !ok {
		return b, false
	}
	return Board{w: b.w, h: b.h, pieces: pieces, gap: gap, t: b.t}, true
}

// CanMove reports whether direction d is legal without applying it.
func (b Board) CanMove(d Direction) bool {
	return b.t.CanMove(b.gap, d)
}

// Slide repeatedly applies d while legal, returning the final board and
// the number of single-tile slides performed (0 if d is not legal at all,
// i.e. the board is returned unchanged). This is the maximal "slide-
// while-possible" traversal: one call is exactly one Mtm unit. The
// solvers' Mtm expansion does not call it, since it also needs every
// intermediate slide length.
func (b Board) Slide(d Direction) (Board, int) {
	cur := b
	n := 0
	for {
		next, ok := cur.Move(d)
		if !ok {
			return cur, n
		}
		cur = next
		n++
	}
}

func (b Board) String() string {
	var sb strings.Builder
	n := b.w * b.h
	for i := 0; i < n; i++ {
		if i > 0 && i%b.w == 0 {
			sb.WriteByte('/')
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", b.Tile(i))
	}
	return sb.String()
}

// Equals reports whether two boards have the same shape and hold the same
// tiles; shape is compared explicitly since pieces alone are ambiguous
// across shapes with the same N.
func (b Board) Equals(o Board) bool {
	return b.w == o.w && b.h == o.h && b.pieces == o.pieces
}

// Replay applies moves in sequence starting from b and returns the final
// board, or false if any move turns out to be illegal. Used to verify a
// proposed solution end-to-end (spec section 4.4 step 3, section 8 "verify
// by replay").
func (b Board) Replay(moves Moves) (Board, bool) {
	cur := b
	for _, m := range moves {
		for i := 0; i < m.Amount; i++ {
			next, ok := cur.Move(m.Direction)
			if !ok {
				return cur, false
			}
			cur = next
		}
	}
	return cur, true
}

// Transpose reflects the board across its main diagonal: it swaps W/H,
// remaps every tile's position (row,col) -> (col,row), and also relabels
// each tile value to the one whose solved home position is the
// transpose of its own solved home position, so that the solved board of
// shape w x h maps to the solved board of shape h x w (and, in general,
// Transpose(Move(b,d)) == Move(Transpose(b), d.Transpose())). Used by the
// Mtm 4x4 double-probe heuristic and by solver size-transpose
// conjugation (spec section 4.8).
func (b Board) Transpose() Board {
	tiles := make([]int, b.w*b.h)
	for i := 0; i < b.w*b.h; i++ {
		row, col := i/b.w, i%b.w
		j := col*b.h + row

		v := b.Tile(i)
		if v != 0 {
			vr, vc := (v-1)/b.w, (v-1)%b.w
			v = vc*b.h + vr + 1
		}
		tiles[j] = v
	}
	nb, err := NewBoard(tiles, b.h, b.w)
	if err != nil {
		panic(err) // unreachable: transposing a valid board stays valid
	}
	return nb
}
