package pdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fifteenpuzzle/solver/pkg/pattern"
	"github.com/fifteenpuzzle/solver/pkg/pdb"
	"github.com/fifteenpuzzle/solver/pkg/puzzle"
	"github.com/fifteenpuzzle/solver/pkg/transtable"
)

func TestBuildStm2x2(t *testing.T) {
	// The 2x2 board has only 12 reachable states (4!/2); this checks the
	// solved state's distance and one neighbour's.
	w, h := 2, 2
	solved := puzzle.Solved(w, h)

	index := func(b puzzle.Board) uint64 {
		// Trivial bijection: the packed nibble word itself, small enough
		// not to need real indexing for this sanity check.
		return b.Pieces()
	}

	step := func(idx uint64, d puzzle.Direction) (uint64, bool) {
		b := decode2x2(idx, w, h)
		nb, ok := b.Move(d)
		if !ok {
			return 0, false
		}
		return index(nb), true
	}

	size := uint64(1) << 16
	table := pdb.BuildStm(size, index(solved), step)
	assert.Equal(t, byte(0), table[index(solved)])

	nb, _ := solved.Move(puzzle.Down)
	assert.Equal(t, byte(1), table[index(nb)])
}

func decode2x2(pieces uint64, w, h int) puzzle.Board {
	tiles := make([]int, w*h)
	for i := range tiles {
		tiles[i] = int((pieces >> uint(4*i)) & 0xF)
	}
	b, err := puzzle.NewBoard(tiles, w, h)
	if err != nil {
		panic(err)
	}
	return b
}

func TestBuildPartitionedP3Size(t *testing.T) {
	tt := transtable.Build(pattern.P3)
	table := pdb.BuildPartitioned(tt, pattern.P3.SolvedIndex())

	assert.Equal(t, byte(0), table[pattern.P3.SolvedIndex()])

	unreached := 0
	for _, v := range table {
		if v == pdb.Unreached {
			unreached++
		}
	}
	assert.Equal(t, 0, unreached, "partitioned P3 PDB should cover every reachable index")
}
