// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "fmt"

// Uniform samples values without replacement in the provided range
type Uniform interface {
	// Initialize sets the range to [0, length) and resets the sampler.
	Initialize(length uint64)
	// Sample resets the sampler and returns [count] distinct values in a
	// uniformly random order.
	Sample(count int) ([]uint64, error)

	// Reset allows every value in the range to be drawn again.
	Reset()
	// Next returns a value that hasn't been drawn since the last Reset.
	Next() (uint64, error)
}

// NewUniform returns a new sampler backed by a virtual array. It uses
// O(count) memory regardless of the range length.
func NewUniform(rng RandomSource) Uniform {
	return &uniformReplacer{rng: rng}
}

// NewResampleUniform returns a new sampler that draws with replacement and
// retries on duplicates. It is only efficient when the number of draws is
// small relative to the range length.
func NewResampleUniform(rng RandomSource) Uniform {
	return &uniformResample{rng: rng}
}

// SelectIndices returns [k] distinct values from [0, n) in a uniformly random
// order, using O(k) memory.
func SelectIndices(rng RandomSource, n uint64, k int) ([]uint64, error) {
	s := NewUniform(rng)
	s.Initialize(n)
	return s.Sample(k)
}

func verifySampleCount(count int, length uint64) error {
	if count < 0 || uint64(count) > length {
		return fmt.Errorf("%w: can't sample %d values from a range of length %d",
			ErrInvalidArgument,
			count,
			length,
		)
	}
	return nil
}
