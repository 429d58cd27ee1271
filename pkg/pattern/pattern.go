package pattern

// Pattern names a set of tracked tile ids (including the gap, tile 0)
// used by a Stm 4x4 pattern database. Tiles lists the ids in the order
// Encode and Decode operate on; the gap is always tracked, since its
// position is what the transposition table's moves pivot on (spec
// section 4.3.3).
type Pattern struct {
	Name  string
	Tiles []int
}

var (
	// P4 tracks tiles {1,2,5,6,0}. Its pattern database is reused for 3
	// of the 4x4 board's 4 quadrants via the reflectLeftRight/
	// reflectUpDown board automorphisms (see QuadrantCoords).
	P4 = Pattern{Name: "P4", Tiles: []int{1, 2, 5, 6, 0}}

	// P3 tracks tiles {11,12,15,0}, applied directly (no reflection) to
	// the bottom-right quadrant.
	P3 = Pattern{Name: "P3", Tiles: []int{11, 12, 15, 0}}
)

// K is the number of tracked tiles, including the gap.
func (p Pattern) K() int { return len(p.Tiles) }

// IndexSpaceSize is the k-permutation count product(16-i, i=0..K()-1):
// 524,160 for P4 and 43,680 for P3.
func (p Pattern) IndexSpaceSize() uint64 {
	size := uint64(1)
	for i := 0; i < p.K(); i++ {
		size *= uint64(16 - i)
	}
	return size
}

// SolvedPositions returns the solved board's position of each tracked
// tile, in Tiles order: tile t (t != 0) sits at t-1, the gap sits at 15.
func (p Pattern) SolvedPositions() []int {
	pos := make([]int, p.K())
	for i, t := range p.Tiles {
		if t == 0 {
			pos[i] = 15
		} else {
			pos[i] = t - 1
		}
	}
	return pos
}

// SolvedIndex is Encode(SolvedPositions()), the pattern database's root.
func (p Pattern) SolvedIndex() uint64 {
	return p.Encode(p.SolvedPositions())
}

// Encode ranks a tracked-tile position tuple (the position of each of
// the pattern's tiles, in Tiles order) against the k-permutation index
// space of size IndexSpaceSize. Encode works on a copy of pos and leaves
// the caller's slice unchanged.
func (p Pattern) Encode(pos []int) uint64 {
	n := p.K()
	work := append([]int(nil), pos...)

	var total uint64
	for i := 0; i < n-1; i++ {
		total += uint64(work[i])
		total *= uint64(15 - i)

		for j := i + 1; j < n; j++ {
			if work[i] < work[j] {
				work[j]--
			}
		}
	}
	total += uint64(work[n-1])
	return total
}

// Decode is the inverse of Encode.
func (p Pattern) Decode(idx uint64) []int {
	n := p.K()
	pos := make([]int, n)

	for i := n - 1; i >= 0; i-- {
		radix := uint64(16 - i)
		pos[i] = int(idx % radix)
		idx /= radix
	}

	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if pos[i] <= pos[j] {
				pos[j]++
			}
		}
	}
	return pos
}
