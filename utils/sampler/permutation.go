// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Permutation returns a uniformly random permutation of [0, n).
func Permutation(rng RandomSource, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative permutation length %d", ErrInvalidArgument, n)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if err := SelectSubset[int](rng, Slice[int](perm), n); err != nil {
		return nil, err
	}
	return perm, nil
}

// Inverse returns the permutation that undoes [perm]. Applying [perm] and then
// its inverse to a sequence leaves the sequence unchanged.
func Inverse(perm []int) ([]int, error) {
	if err := verifyPermutation(perm, bitset.New(uint(len(perm)))); err != nil {
		return nil, err
	}

	inverse := make([]int, len(perm))
	for i, dst := range perm {
		inverse[dst] = i
	}
	return inverse, nil
}

// verifyPermutation returns an error unless [perm] is a bijection on
// [0, len(perm)). [seen] must be empty and is left with every bit in
// [0, len(perm)) set on success.
func verifyPermutation(perm []int, seen *bitset.BitSet) error {
	n := len(perm)
	for i, dst := range perm {
		if dst < 0 || dst >= n {
			return fmt.Errorf("%w: permutation entry %d at index %d is outside [0, %d)",
				ErrInvalidArgument,
				dst,
				i,
				n,
			)
		}
		if seen.Test(uint(dst)) {
			return fmt.Errorf("%w: permutation entry %d is repeated at index %d",
				ErrInvalidArgument,
				dst,
				i,
			)
		}
		seen.Set(uint(dst))
	}
	return nil
}
