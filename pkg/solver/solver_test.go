package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
	"github.com/fifteenpuzzle/solver/pkg/solver"
)

func TestSolveRejectsUnsolvableBoard(t *testing.T) {
	// A single transposition of two non-gap tiles is always unsolvable.
	b, err := puzzle.NewBoard([]int{2, 1, 3, 4, 5, 6, 7, 8, 0}, 3, 3)
	require.NoError(t, err)

	s := solver.NewSmallSolver(context.Background(), 3, 3, puzzle.Stm, pdb.WithCacheDir(t.TempDir()))
	_, _, err = solver.Solve(s, b, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrUnsolvable)
}

func TestSolveRejectsIncompatibleShape(t *testing.T) {
	b := puzzle.Solved(3, 4)
	s := solver.NewSmallSolver(context.Background(), 3, 3, puzzle.Stm, pdb.WithCacheDir(t.TempDir()))

	_, _, err := solver.Solve(s, b, solver.Options{})
	assert.ErrorIs(t, err, solver.ErrIncompatiblePuzzleSize)
}

func TestSolveConjugatesTransposedBoard(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a full permutation pattern database")
	}

	s := solver.NewSmallSolver(context.Background(), 3, 2, puzzle.Stm, pdb.WithCacheDir(t.TempDir()))

	// A board whose shape is s's transpose (2x3 against a 3x2 solver),
	// built by transposing a known-solvable 3x2 board.
	c, ok := puzzle.Solved(3, 2).Move(puzzle.Right)
	require.True(t, ok)
	b := c.Transpose()
	require.True(t, puzzle.IsSolvable(b))

	moves, _, err := solver.Solve(s, b, solver.Options{})
	require.NoError(t, err)

	final, ok := b.Replay(moves)
	require.True(t, ok)
	assert.True(t, final.IsSolved())
}

func TestVersion(t *testing.T) {
	assert.Contains(t, solver.Version(), "slide-pdb")
}
