// Package index implements the two state-indexing schemes of spec
// section 4.2: Lehmer-code permutation ranking (for boards with N<=12,
// reachable-space size N!/2) and multinomial ranking (for the Mtm 4x4
// reduced board's 5-class partition, index space 151,351,200).
package index

// factorials holds n! for n in [0,16], the largest board size supported
// (spec section 3, "N <= 16").
var factorials = [17]uint64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320,
	362880, 3628800, 39916800, 479001600,
	6227020800, 87178291200, 1307674368000, 20922789888000,
}

// Factorial returns n! for n in [0,16].
func Factorial(n int) uint64 {
	return factorials[n]
}
