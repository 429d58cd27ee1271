package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

func TestMoveString(t *testing.T) {
	assert.Equal(t, "U", puzzle.Move{Direction: puzzle.Up, Amount: 1}.String())
	assert.Equal(t, "D3", puzzle.Move{Direction: puzzle.Down, Amount: 3}.String())
}

func TestParseMoveRoundTrip(t *testing.T) {
	for _, s := range []string{"U", "D2", "L5", "R"} {
		m, err := puzzle.ParseMove(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}
}

func TestParseMoveInvalid(t *testing.T) {
	_, err := puzzle.ParseMove("")
	assert.Error(t, err)
	_, err = puzzle.ParseMove("X2")
	assert.Error(t, err)
	_, err = puzzle.ParseMove("U0")
	assert.Error(t, err)
}

func TestMovesString(t *testing.T) {
	moves := puzzle.Moves{{Direction: puzzle.Up, Amount: 1}, {Direction: puzzle.Left, Amount: 2}}
	assert.Equal(t, "U L2", moves.String())
}

func TestParseMoves(t *testing.T) {
	moves, err := puzzle.ParseMoves("U L2 D3")
	require.NoError(t, err)
	require.Len(t, moves, 3)
	assert.Equal(t, puzzle.Move{Direction: puzzle.Down, Amount: 3}, moves[2])
}

func TestMovesLen(t *testing.T) {
	moves := puzzle.Moves{{Direction: puzzle.Up, Amount: 1}, {Direction: puzzle.Left, Amount: 3}}
	assert.Equal(t, 4, moves.Len(puzzle.Stm))
	assert.Equal(t, 2, moves.Len(puzzle.Mtm))
}

func TestCompressDirections(t *testing.T) {
	dirs := []puzzle.Direction{puzzle.Up, puzzle.Up, puzzle.Left, puzzle.Left, puzzle.Left, puzzle.Down}
	got := puzzle.CompressDirections(dirs)
	want := puzzle.Moves{
		{Direction: puzzle.Up, Amount: 2},
		{Direction: puzzle.Left, Amount: 3},
		{Direction: puzzle.Down, Amount: 1},
	}
	assert.Equal(t, want, got)
}
