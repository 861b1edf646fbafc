// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iterator

import "github.com/ava-labs/randkit/utils"

var _ Iterator[int] = (*slice[int])(nil)

// FromSlice returns an iterator over [elements] in order.
func FromSlice[T any](elements ...T) Iterator[T] {
	return &slice[T]{
		index:    -1,
		elements: elements,
	}
}

type slice[T any] struct {
	index    int
	elements []T
}

func (i *slice[T]) Next() bool {
	i.index++
	return i.index < len(i.elements)
}

func (i *slice[T]) Value() T {
	if i.index < 0 || i.index >= len(i.elements) {
		return utils.Zero[T]()
	}
	return i.elements[i.index]
}

func (i *slice[T]) Release() {
	i.index = len(i.elements)
	i.elements = nil
}
