// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// SelectSubset moves a uniformly random subset of [k] elements of [seq], in
// uniformly random order, into the first [k] positions of [seq]. The remaining
// positions hold the other elements in an unspecified order.
//
// SelectSubset performs a partial Fisher-Yates shuffle: k draws and at most k
// swaps, with no allocations.
func SelectSubset[T any](rng RandomSource, seq Sequence[T], k int) error {
	n := seq.Len()
	if k < 0 || k > n {
		return fmt.Errorf("%w: can't select %d elements from a sequence of length %d",
			ErrInvalidArgument,
			k,
			n,
		)
	}

	for i := 0; i < k; i++ {
		r := i + int(rng.Uint64n(uint64(n-i)))
		if r != i {
			seq.Swap(i, r)
		}
	}
	return nil
}

// Shuffle uniformly permutes [s] in place.
func Shuffle[T any](rng RandomSource, s []T) {
	// Selecting every element can't fail.
	_ = SelectSubset[T](rng, Slice[T](s), len(s))
}
