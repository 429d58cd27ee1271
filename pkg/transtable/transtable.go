// Package transtable builds the per-pattern transposition tables behind
// the Stm 4x4 partitioned pattern databases (spec section 4.3.3): for
// every pattern index and direction, the destination index and whether
// the move displaced one of the pattern's own tracked tiles.
package transtable

import (
	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

// none marks a board position not held by any of the pattern's tracked
// tiles, mirroring the original's u8::MAX sentinel.
const none = 0xFF

// Entry packs one transposition table cell: the low 24 bits are the
// destination pattern index, and bit 24 flags whether the move moved one
// of the pattern's own tiles (cost 1, spec section 4.3.3) rather than an
// untracked one (cost 0). blocked marks a direction that is not legal at
// this index.
type Entry uint32

const (
	blocked   Entry = 0xFFFFFFFF
	movedFlag Entry = 1 << 24
)

// Blocked reports whether the direction is illegal at this index.
func (e Entry) Blocked() bool { return e == blocked }

// Index returns the destination pattern index. Only meaningful if !Blocked().
func (e Entry) Index() uint32 { return uint32(e) & 0xFFFFFF }

// MovedTracked reports whether the move displaced one of the pattern's
// own tracked tiles (cost 1) as opposed to an untracked one (cost 0).
func (e Entry) MovedTracked() bool { return e&movedFlag != 0 }

// Table is the per-pattern transposition table: one [4]Entry row per
// pattern index, one column per puzzle.Direction.
type Table struct {
	Pattern pattern.Pattern
	Rows    [][4]Entry
}

// Build constructs the transposition table for p over the 4x4 board, by
// decoding every index of its k-permutation space and applying each
// direction once.
func Build(p pattern.Pattern) *Table {
	size := p.IndexSpaceSize()
	rows := make([][4]Entry, size)
	tb := puzzle.TablesFor(4, 4)
	k := p.K()

	for i := uint64(0); i < size; i++ {
		pos := p.Decode(i)

		var pieces [16]uint8
		for j := range pieces {
			pieces[j] = none
		}
		var inverse [16]uint8
		for j, tile := range p.Tiles {
			pieces[pos[j]] = uint8(tile)
			inverse[tile] = uint8(pos[j])
		}
		gap := inverse[0]

		var row [4]Entry
		for d := puzzle.Direction(0); d < puzzle.NumDirections; d++ {
			nb := tb.Neighbor(gap, d)
			if nb == gap {
				row[d] = blocked
				continue
			}

			moved := pieces[nb]
			pieces[nb], pieces[gap] = pieces[gap], pieces[nb]
			inverse[0] = nb
			if moved != none {
				inverse[moved] = gap
			}

			newPos := make([]int, k)
			for j, tile := range p.Tiles {
				newPos[j] = int(inverse[tile])
			}
			entry := Entry(p.Encode(newPos))
			if moved != none {
				entry |= movedFlag
			}
			row[d] = entry

			// Undo, so later directions decode from the same state.
			pieces[nb], pieces[gap] = pieces[gap], pieces[nb]
			inverse[0] = gap
			if moved != none {
				inverse[moved] = nb
			}
		}
		rows[i] = row
	}

	return &Table{Pattern: p, Rows: rows}
}
