// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

// VirtualArray is the identity array [0, 1, 2, ...] of unbounded length in
// which only positions whose occupant differs from their own index are
// stored. Reading a position that was never written returns the position.
//
// The zero value is an identity array ready for use.
type VirtualArray struct {
	occupants map[uint64]uint64
}

// Get returns the value currently stored at [index].
func (a *VirtualArray) Get(index uint64) uint64 {
	if value, ok := a.occupants[index]; ok {
		return value
	}
	return index
}

// Swap exchanges the values stored at [i] and [j].
func (a *VirtualArray) Swap(i, j uint64) {
	if i == j {
		return
	}
	vi := a.Get(i)
	vj := a.Get(j)
	a.set(i, vj)
	a.set(j, vi)
}

// Evict forgets the value stored at [index]. The position reads as its own
// index afterwards. Positions that will never be read again should be evicted
// to keep the array small.
func (a *VirtualArray) Evict(index uint64) {
	delete(a.occupants, index)
}

// Len returns the number of positions whose occupant differs from their
// index.
func (a *VirtualArray) Len() int {
	return len(a.occupants)
}

// Clear resets the array to the identity.
func (a *VirtualArray) Clear() {
	maps.Clear(a.occupants)
}

func (a *VirtualArray) set(index, value uint64) {
	if index == value {
		delete(a.occupants, index)
		return
	}
	if a.occupants == nil {
		a.occupants = make(map[uint64]uint64)
	}
	a.occupants[index] = value
}

// uniformReplacer allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by lazily running a Fisher-Yates shuffle over a
// VirtualArray covering the range. Draw i swaps position i with a uniformly
// chosen position in [i, length) and returns the value that lands at i. Once
// returned, position i is never read again and is evicted.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type uniformReplacer struct {
	rng        RandomSource
	length     uint64
	drawn      VirtualArray
	drawsCount uint64
}

func (s *uniformReplacer) Initialize(length uint64) {
	s.length = length
	s.Reset()
}

func (s *uniformReplacer) Sample(count int) ([]uint64, error) {
	if err := verifySampleCount(count, s.length); err != nil {
		return nil, err
	}

	s.Reset()
	results := make([]uint64, count)
	for i := range results {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformReplacer) Reset() {
	s.drawn.Clear()
	s.drawsCount = 0
}

func (s *uniformReplacer) Next() (uint64, error) {
	i := s.drawsCount
	if i >= s.length {
		return 0, ErrOutOfRange
	}

	draw := i + s.rng.Uint64n(s.length-i)
	s.drawn.Swap(i, draw)
	ret := s.drawn.Get(i)
	s.drawn.Evict(i)
	s.drawsCount++
	return ret, nil
}
