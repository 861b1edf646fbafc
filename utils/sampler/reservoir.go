// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"

	"github.com/ava-labs/randkit/utils/iterator"
)

// Reservoir returns [k] elements chosen uniformly at random from [it] in a
// single pass. If the iterator yields N elements, each one is included with
// probability k/N. Only [k] elements are held in memory at any time.
//
// The iterator is consumed until it is exhausted and released before
// returning. If the stream ends before [k] elements were seen,
// ErrStreamExhausted is returned and no partial sample is produced.
//
// The guarantee only holds for the whole stream. A caller that stops the
// underlying source early (for example by closing the reader behind it) gets
// a sample whose distribution is undefined.
func Reservoir[T any](rng RandomSource, it iterator.Iterator[T], k int) ([]T, error) {
	defer it.Release()

	switch {
	case k < 0:
		return nil, fmt.Errorf("%w: negative reservoir size %d", ErrInvalidArgument, k)
	case k == 0:
		return []T{}, nil
	}

	reservoir := make([]T, 0, k)
	for len(reservoir) < k && it.Next() {
		reservoir = append(reservoir, it.Value())
	}
	if len(reservoir) < k {
		return nil, fmt.Errorf("%w: wanted %d elements but the stream ended after %d",
			ErrStreamExhausted,
			k,
			len(reservoir),
		)
	}

	seen := uint64(k)
	for it.Next() {
		value := it.Value()
		seen++
		if r := rng.Uint64n(seen); r < uint64(k) {
			reservoir[r] = value
		}
	}
	return reservoir, nil
}
