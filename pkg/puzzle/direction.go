// Package puzzle contains the compact sliding-tile board representation, its
// precomputed move tables, and solvability checks. It is the C1/C2 layer: an
// O(1)-move packed board plus the static tables that drive it.
package puzzle

import "fmt"

// Direction names the motion of a non-gap tile; the gap itself moves
// opposite. Values are chosen so that Axis, Inverse and Transpose are all
// cheap bit operations on the 2-bit code.
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// NumDirections is the number of directions.
const NumDirections = 4

// Axis classifies a Direction as moving along the board's vertical or
// horizontal axis. Two consecutive Mtm moves on the same axis are always
// reducible to at most one Mtm move, so the Mtm search prunes on Axis
// equality rather than immediate-inverse.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// Axis derives the axis of a Direction: Up/Down are Vertical, Left/Right
// are Horizontal. This relies on the direction encoding (Up=0, Left=1,
// Down=2, Right=3): bit 0 is 0 for Up/Down and 1 for Left/Right.
func (d Direction) Axis() Axis {
	return Axis(d & 1)
}

// Inverse returns the opposite direction: Up<->Down, Left<->Right.
func (d Direction) Inverse() Direction {
	return d ^ 2
}

// Transpose returns the direction obtained by reflecting the board across
// its main diagonal: Up<->Left, Down<->Right. Used by the solver's
// size-transpose conjugation to map moves found on a transposed board
// back to the original board.
func (d Direction) Transpose() Direction {
	return d ^ 1
}

// ReflectLeftRight returns the direction seen by an observer of the board
// mirrored across its vertical axis: Left<->Right, Up and Down fixed. Used
// by the Stm 4x4 partitioned solver, whose P4 pattern database is reused
// for the top-right quadrant by mirroring the whole board left-right
// (spec section 4.5).
func (d Direction) ReflectLeftRight() Direction {
	if d%2 == 1 {
		return d ^ 2
	}
	return d
}

// ReflectUpDown returns the direction seen by an observer of the board
// mirrored across its horizontal axis: Up<->Down, Left and Right fixed.
// Used by the Stm 4x4 partitioned solver's bottom-left quadrant (spec
// section 4.5).
func (d Direction) ReflectUpDown() Direction {
	if d%2 == 0 {
		return d ^ 2
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Left:
		return "L"
	case Down:
		return "D"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// ParseDirection parses one of the canonical single-letter codes U/L/D/R.
func ParseDirection(r byte) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return Up, true
	case 'L', 'l':
		return Left, true
	case 'D', 'd':
		return Down, true
	case 'R', 'r':
		return Right, true
	default:
		return 0, false
	}
}

func (a Axis) String() string {
	if a == Vertical {
		return "V"
	}
	return "H"
}

// errInvalidDirection is wrapped by ParseMove when a move does not start
// with a recognised direction letter.
var errInvalidDirection = fmt.Errorf("puzzle: invalid direction")
