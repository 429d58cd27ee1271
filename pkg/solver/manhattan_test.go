package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

func TestManhattanLowerBoundSolved(t *testing.T) {
	assert.Equal(t, 0, manhattanLowerBound(puzzle.Solved(4, 4)))
}

func TestManhattanLowerBoundOneMoveAway(t *testing.T) {
	b, ok := puzzle.Solved(4, 4).Move(puzzle.Down)
	assert.True(t, ok)
	assert.Equal(t, 1, manhattanLowerBound(b))
}
