// Package pattern implements the two pattern representations behind the
// 4x4 pattern databases (spec section 4.3): the Mtm reduced board, a
// 5-class partition of the 16 tiles ranked by multiset index, and the
// Stm P4/P3 tracked-tile patterns, ranked by k-permutation index.
package pattern

import "github.com/fifteenpuzzle/solver/pkg/index"

// SolvedReducedWord is the authoritative 4x4 Mtm reduced-board partition:
// reading the solved board's tiles in row-major order, nibble i holds the
// reduced class of the tile at position i. This 64-bit word, not the
// equivalent prose grouping it can be read alongside, is the partition's
// definition.
const SolvedReducedWord uint64 = 0x0443443322332211

// ReducedQuotas holds the number of tiles in each of the 5 reduced
// classes (class 0 is the gap alone), derived from SolvedReducedWord.
var ReducedQuotas = [5]int{1, 2, 4, 5, 4}

// ReducedClassOf maps a tile value (0..15) to its reduced class (0..4),
// derived from SolvedReducedWord at init time so the class assignment
// and ReducedQuotas can never drift apart.
var ReducedClassOf [16]uint8

func init() {
	for i := 0; i < 16; i++ {
		tile := i + 1
		if i == 15 {
			tile = 0
		}
		ReducedClassOf[tile] = uint8((SolvedReducedWord >> uint(4*i)) & 0xF)
	}
}

// Reduce maps a board's row-major tile sequence to its reduced-class
// sequence, the representation indexed by the Mtm 4x4 pattern database.
func Reduce(tiles []int) []int {
	out := make([]int, len(tiles))
	for i, t := range tiles {
		out[i] = int(ReducedClassOf[t])
	}
	return out
}

// ReducedIndexSpaceSize is the Mtm 4x4 pattern database's index space:
// 16!/(1!2!4!5!4!) = 151,351,200.
func ReducedIndexSpaceSize() uint64 {
	return index.Multinomial(ReducedQuotas[:])
}

// EncodeReduced ranks a reduced-class sequence against ReducedIndexSpaceSize.
func EncodeReduced(classes []int) uint64 {
	return index.EncodeMultiset(classes, ReducedQuotas[:])
}

// DecodeReduced is the inverse of EncodeReduced.
func DecodeReduced(idx uint64) []int {
	return index.DecodeMultiset(idx, ReducedQuotas[:])
}

// GapPosition returns the index of the single gap-class (0) entry in a
// reduced-class sequence.
func GapPosition(classes []int) int {
	for i, c := range classes {
		if c == 0 {
			return i
		}
	}
	panic("pattern: reduced sequence has no gap class")
}
