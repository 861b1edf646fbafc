// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Sequence[int] = Slice[int](nil)

// Sequence is a fixed-length, indexable container whose elements can be
// replaced and swapped in place.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, value T)
	Swap(i, j int)
}

// Slice adapts a slice to the Sequence interface. Modifications are made to
// the underlying array of the slice.
type Slice[T any] []T

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Get(i int) T {
	return s[i]
}

func (s Slice[T]) Set(i int, value T) {
	s[i] = value
}

func (s Slice[T]) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
