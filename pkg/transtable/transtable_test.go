package transtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/transtable"
)

func TestBuildP3Size(t *testing.T) {
	tt := transtable.Build(pattern.P3)
	assert.Equal(t, int(pattern.P3.IndexSpaceSize()), len(tt.Rows))
}

func TestBuildP3EveryRowHasALegalMove(t *testing.T) {
	tt := transtable.Build(pattern.P3)
	for i, row := range tt.Rows {
		ok := false
		for _, e := range row {
			if !e.Blocked() {
				ok = true
			}
		}
		require.True(t, ok, "index %d has no legal move", i)
	}
}

func TestBuildP3TransitionsAreReversible(t *testing.T) {
	tt := transtable.Build(pattern.P3)
	solved := pattern.P3.SolvedIndex()

	for d := 0; d < 4; d++ {
		e := tt.Rows[solved][d]
		if e.Blocked() {
			continue
		}
		dst := e.Index()
		back := tt.Rows[dst]
		found := false
		for _, be := range back {
			if !be.Blocked() && be.Index() == uint32(solved) {
				found = true
			}
		}
		assert.True(t, found, "no reverse edge from %d back to solved", dst)
	}
}
