package index

// Binomial returns the binomial coefficient C(n,k) via the standard
// multiplicative formula, used to build multiset ranks one class at a
// time without overflowing through a full factorial (spec section 4.2,
// "multiset/combinatorial-number-system indexing").
func Binomial(n, k int) uint64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := 0; i < k; i++ {
		result = result * uint64(n-i) / uint64(i+1)
	}
	return result
}

// Multinomial returns n! / (q0! * q1! * ...) where n is the sum of
// quotas: the number of distinct arrangements of a multiset whose classes
// occur with the given multiplicities, computed as a product of
// successive binomial coefficients against the shrinking remainder. Used
// to size the Mtm 4x4 reduced board's index space (151,351,200 for
// quotas [1,2,4,5,4]).
func Multinomial(quotas []int) uint64 {
	rem := 0
	for _, q := range quotas {
		rem += q
	}

	r := uint64(1)
	for _, q := range quotas {
		if q != 0 {
			r *= Binomial(rem, q)
			rem -= q
		}
	}
	return r
}

// EncodeMultiset ranks arr (a sequence of class labels in [0,len(tally)))
// against the multiset permutation index space defined by tally (the
// count of each class). It walks arr left to right, and for every class
// label strictly below the current symbol that still has remaining
// quota, adds the multinomial count of the arrangements that would have
// started with that smaller symbol instead.
func EncodeMultiset(arr []int, tally []int) uint64 {
	remaining := append([]int(nil), tally...)

	var t uint64
	for _, v := range arr {
		for s := 0; s < v; s++ {
			if remaining[s] > 0 {
				remaining[s]--
				t += Multinomial(remaining)
				remaining[s]++
			}
		}
		remaining[v]--
	}
	return t
}

// DecodeMultiset is the inverse of EncodeMultiset: it reconstructs the
// class-label sequence of length sum(tally) from its rank t.
func DecodeMultiset(t uint64, tally []int) []int {
	remaining := append([]int(nil), tally...)

	n := 0
	for _, c := range remaining {
		n += c
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		for s := 0; s < len(remaining); s++ {
			if remaining[s] == 0 {
				continue
			}
			remaining[s]--
			m := Multinomial(remaining)
			if t < m {
				out[i] = s
				break
			}
			t -= m
			remaining[s]++
		}
	}
	return out
}
