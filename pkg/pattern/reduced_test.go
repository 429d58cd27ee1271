package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

func TestReducedIndexSpaceSize(t *testing.T) {
	assert.Equal(t, uint64(151351200), pattern.ReducedIndexSpaceSize())
}

func TestReducedClassOfSumsToQuotas(t *testing.T) {
	var counts [5]int
	for tile := 0; tile < 16; tile++ {
		counts[pattern.ReducedClassOf[tile]]++
	}
	assert.Equal(t, pattern.ReducedQuotas, counts)
}

func TestReduceSolvedBoard(t *testing.T) {
	tiles := puzzle.Solved(4, 4).Tiles()
	classes := pattern.Reduce(tiles)

	idx := pattern.EncodeReduced(classes)
	decoded := pattern.DecodeReduced(idx)
	assert.Equal(t, classes, decoded)
}

func TestGapPosition(t *testing.T) {
	classes := pattern.Reduce(puzzle.Solved(4, 4).Tiles())
	assert.Equal(t, 15, pattern.GapPosition(classes))
}
