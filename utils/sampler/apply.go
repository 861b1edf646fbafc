// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Apply reorders [seq] in place so that the element originally at index i
// ends up at index perm[i].
//
// [perm] must be a bijection on [0, seq.Len()); otherwise ErrInvalidArgument
// is returned and [seq] is not modified. [perm] is only read.
//
// Apply runs in O(n) time by rotating each cycle of [perm] through its first
// index. Visited positions are tracked in an n-bit side table, so every
// element not already in place is moved by exactly one swap.
func Apply[T any](seq Sequence[T], perm []int) error {
	n := seq.Len()
	if len(perm) != n {
		return fmt.Errorf("%w: permutation of length %d can't be applied to a sequence of length %d",
			ErrInvalidArgument,
			len(perm),
			n,
		)
	}

	moved := bitset.New(uint(n))
	if err := verifyPermutation(perm, moved); err != nil {
		return err
	}
	moved.ClearAll()

	for start := range perm {
		// seq[start] always holds the element that belongs at perm[next].
		for next := start; !moved.Test(uint(next)); next = perm[next] {
			if dst := perm[next]; dst != start {
				seq.Swap(start, dst)
			}
			moved.Set(uint(next))
		}
	}
	return nil
}
