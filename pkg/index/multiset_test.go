package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fifteenpuzzle/solver/pkg/index"
)

func TestBinomial(t *testing.T) {
	assert.Equal(t, uint64(1), index.Binomial(5, 0))
	assert.Equal(t, uint64(5), index.Binomial(5, 1))
	assert.Equal(t, uint64(10), index.Binomial(5, 2))
	assert.Equal(t, uint64(0), index.Binomial(2, 5))
}

func TestMultinomialReducedBoard(t *testing.T) {
	// 16!/(1!2!4!5!4!), the Mtm 4x4 reduced-board index space.
	assert.Equal(t, uint64(151351200), index.Multinomial([]int{1, 2, 4, 5, 4}))
}

func TestMultinomialTrivial(t *testing.T) {
	assert.Equal(t, uint64(1), index.Multinomial([]int{3}))
	assert.Equal(t, uint64(6), index.Multinomial([]int{1, 1, 1}))
}

func TestEncodeDecodeMultisetRoundTrip(t *testing.T) {
	tally := []int{1, 2, 4, 5, 4}
	size := index.Multinomial(tally)

	seen := map[uint64]bool{}
	for _, arr := range [][]int{
		{0, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 4},
		{4, 4, 4, 4, 3, 3, 3, 3, 3, 2, 2, 2, 2, 1, 1, 0},
		{1, 0, 1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 4, 4, 4, 4},
	} {
		t_ := index.EncodeMultiset(arr, tally)
		assert.Less(t, t_, size)
		assert.False(t, seen[t_], "rank %d reused", t_)
		seen[t_] = true

		decoded := index.DecodeMultiset(t_, tally)
		assert.Equal(t, arr, decoded)
	}
}
