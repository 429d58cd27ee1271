package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

func TestSolved(t *testing.T) {
	b := puzzle.Solved(3, 3)
	assert.True(t, b.IsSolved())
	assert.Equal(t, uint8(8), b.Gap())
	assert.Equal(t, "1 2 3/4 5 6/7 8 0", b.String())
}

func TestMove(t *testing.T) {
	b := puzzle.Solved(3, 3)

	nb, ok := b.Move(puzzle.Down)
	require.True(t, ok)
	assert.False(t, nb.IsSolved())
	assert.Equal(t, "1 2 3/4 5 0/7 8 6", nb.String())

	back, ok := nb.Move(puzzle.Up)
	require.True(t, ok)
	assert.True(t, back.IsSolved())
}

func TestMoveIllegalAtEdge(t *testing.T) {
	b := puzzle.Solved(3, 3)
	_, ok := b.Move(puzzle.Up)
	assert.False(t, ok)
	_, ok = b.Move(puzzle.Left)
	assert.False(t, ok)
}

func TestSlide(t *testing.T) {
	b := puzzle.Solved(3, 3)
	nb, n := b.Slide(puzzle.Down)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1 2 3/4 5 0/7 8 6", nb.String())

	_, n = b.Slide(puzzle.Up)
	assert.Equal(t, 0, n)
}

func TestReplay(t *testing.T) {
	b := puzzle.Solved(3, 3)
	moves, err := puzzle.ParseMoves("D R")
	require.NoError(t, err)

	final, ok := b.Replay(moves)
	require.True(t, ok)
	assert.False(t, final.IsSolved())
	assert.Equal(t, "1 2 3/4 0 5/7 8 6", final.String())
}

func TestReplayIllegal(t *testing.T) {
	b := puzzle.Solved(3, 3)
	moves, err := puzzle.ParseMoves("U")
	require.NoError(t, err)

	_, ok := b.Replay(moves)
	assert.False(t, ok)
}

func TestTranspose(t *testing.T) {
	tiles := []int{1, 2, 3, 4, 5, 6, 0, 7, 8}
	b, err := puzzle.NewBoard(tiles, 3, 3)
	require.NoError(t, err)

	tb := b.Transpose()
	assert.Equal(t, 3, tb.Width())
	assert.Equal(t, 3, tb.Height())

	back := tb.Transpose()
	assert.True(t, b.Equals(back))
}

func TestNewBoardInvalid(t *testing.T) {
	_, err := puzzle.NewBoard([]int{1, 2, 3}, 2, 2)
	assert.Error(t, err)

	_, err = puzzle.NewBoard([]int{1, 1, 0, 2}, 2, 2)
	assert.Error(t, err)

	_, err = puzzle.NewBoard([]int{1, 2, 3, 4}, 2, 2)
	assert.Error(t, err)
}
