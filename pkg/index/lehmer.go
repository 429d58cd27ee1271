package index

import (
	"math/bits"

	"github.com/fifteenpuzzle/solver/pkg/puzzle"
)

// PermutationSpaceSize returns the reachable-state index space for a
// board with n tiles (n = w*h, n<=12): n!/2. Exactly one inversion
// parity is reachable for a given gap position (spec section 4.7), so
// folding the Lehmer rank by two exactly halves the space (spec section
// 4.2).
func PermutationSpaceSize(n int) uint64 {
	return Factorial(n) / 2
}

// EncodePermutation maps a board to its index in
// [0, PermutationSpaceSize(w*h)). b must be solvable (spec section 4.7):
// the inversion-parity bit discarded by the fold below is never stored,
// and DecodePermutation recomputes it from the gap position and board
// width instead.
func EncodePermutation(b puzzle.Board) uint64 {
	tiles := b.Tiles()
	n := len(tiles)
	sz := n - 1 // non-gap tile count

	perm2 := make([]int, 0, sz)
	gap := 0
	for j, v := range tiles {
		if v == 0 {
			gap = j
			continue
		}
		perm2 = append(perm2, v-1)
	}

	code := make([]uint64, sz)
	var seen uint32
	for i := sz - 1; i >= 0; i-- {
		p := uint(perm2[i])
		code[i] = uint64(bits.OnesCount32(seen & ((1 << p) - 1)))
		seen |= 1 << p
	}

	var encoded uint64
	for i := 0; i < sz; i++ {
		encoded = encoded*uint64(sz-i) + code[i]
	}

	return (encoded/2)*uint64(n) + uint64(gap)
}

// DecodePermutation is the inverse of EncodePermutation for a board of
// shape w x h.
func DecodePermutation(k uint64, w, h int) puzzle.Board {
	n := w * h
	sz := n - 1
	gap := int(k % uint64(n))

	gapParity := ((n-1-gap)/w)%2 == 1
	widthParity := w%2 == 0

	rest := (k / uint64(n)) * 2
	code := make([]uint64, n)
	var total uint64
	for i := 0; i < sz; i++ {
		radix := uint64(i + 1)
		a := rest % radix
		total += a
		code[sz-i-1] = a
		rest /= radix
	}

	lehmerParity := total%2 == 1
	if (widthParity && gapParity) != lehmerParity {
		code[sz-2] = 1 - code[sz-2]
	}

	remaining := make([]int, sz)
	for i := range remaining {
		remaining[i] = i + 1
	}

	perm := make([]int, n)
	for i := 0; i < sz; i++ {
		c := code[i]
		perm[i] = remaining[c]
		remaining = append(remaining[:c], remaining[c+1:]...)
	}

	for i := n - 1; i > gap; i-- {
		perm[i] = perm[i-1]
	}
	perm[gap] = 0

	b, err := puzzle.NewBoard(perm, w, h)
	if err != nil {
		panic(err) // unreachable: k is always within the valid index space
	}
	return b
}
