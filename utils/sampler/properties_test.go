// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/exp/slices"
)

func TestSamplerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("subset keeps every element and swaps at most k times", prop.ForAll(
		func(n int, k int, seed uint64) string {
			k %= n + 1

			elements := make([]int, n)
			for i := range elements {
				elements[i] = i
			}
			seq := &spySequence[int]{Slice: Slice[int](slices.Clone(elements))}
			if err := SelectSubset[int](newSeededSource(seed), seq, k); err != nil {
				return err.Error()
			}
			if seq.swaps > k {
				return fmt.Sprintf("performed %d swaps to select %d elements", seq.swaps, k)
			}

			selected := slices.Clone([]int(seq.Slice))
			slices.Sort(selected)
			if !slices.Equal(elements, selected) {
				return fmt.Sprintf("%v is not a rearrangement of %v", seq.Slice, elements)
			}
			return ""
		},
		gen.IntRange(0, 64),
		gen.IntRange(0, 64),
		gen.UInt64(),
	))

	properties.Property("uniform samples are distinct and in range", prop.ForAll(
		func(n uint64, k int, seed uint64) string {
			if uint64(k) > n {
				k = int(n)
			}

			s := &uniformReplacer{rng: newSeededSource(seed)}
			s.Initialize(n)
			val, err := s.Sample(k)
			if err != nil {
				return err.Error()
			}
			if len(val) != k {
				return fmt.Sprintf("sampled %d values, expected %d", len(val), k)
			}
			if s.drawn.Len() > k {
				return fmt.Sprintf("stored %d entries after %d draws", s.drawn.Len(), k)
			}

			seen := make(map[uint64]struct{}, k)
			for _, v := range val {
				if v >= n {
					return fmt.Sprintf("sampled %d outside [0, %d)", v, n)
				}
				if _, ok := seen[v]; ok {
					return fmt.Sprintf("sampled %d twice", v)
				}
				seen[v] = struct{}{}
			}
			return ""
		},
		gen.UInt64Range(0, 1<<40),
		gen.IntRange(0, 64),
		gen.UInt64(),
	))

	properties.Property("permutations are bijections", prop.ForAll(
		func(n int, seed uint64) string {
			perm, err := Permutation(newSeededSource(seed), n)
			if err != nil {
				return err.Error()
			}
			inverse, err := Inverse(perm)
			if err != nil {
				return err.Error()
			}
			for i, dst := range perm {
				if inverse[dst] != i {
					return fmt.Sprintf("inverse of %v is %v", perm, inverse)
				}
			}
			return ""
		},
		gen.IntRange(0, 64),
		gen.UInt64(),
	))

	properties.Property("apply moves element i to perm[i] and the inverse restores it", prop.ForAll(
		func(n int, seed uint64) string {
			perm, err := Permutation(newSeededSource(seed), n)
			if err != nil {
				return err.Error()
			}
			original := make([]int, n)
			for i := range original {
				original[i] = 100 + i
			}
			expected := make([]int, n)
			for i, dst := range perm {
				expected[dst] = original[i]
			}

			applied := slices.Clone(original)
			if err := Apply[int](Slice[int](applied), perm); err != nil {
				return err.Error()
			}
			if !slices.Equal(expected, applied) {
				return fmt.Sprintf("applying %v produced %v, expected %v", perm, applied, expected)
			}

			inverse, err := Inverse(perm)
			if err != nil {
				return err.Error()
			}
			if err := Apply[int](Slice[int](applied), inverse); err != nil {
				return err.Error()
			}
			if !slices.Equal(original, applied) {
				return fmt.Sprintf("inverse produced %v, expected %v", applied, original)
			}
			return ""
		},
		gen.IntRange(0, 64),
		gen.UInt64(),
	))

	properties.Property("virtual array matches a materialized array", prop.ForAll(
		func(swaps []uint8) string {
			const length = 16

			var virtual VirtualArray
			materialized := make([]uint64, length)
			for i := range materialized {
				materialized[i] = uint64(i)
			}

			// Each byte encodes a pair of positions.
			for _, swap := range swaps {
				i, j := uint64(swap>>4), uint64(swap&0x0f)
				virtual.Swap(i, j)
				materialized[i], materialized[j] = materialized[j], materialized[i]
			}

			moved := 0
			for i, value := range materialized {
				if got := virtual.Get(uint64(i)); got != value {
					return fmt.Sprintf("position %d holds %d, expected %d", i, got, value)
				}
				if value != uint64(i) {
					moved++
				}
			}
			if virtual.Len() != moved {
				return fmt.Sprintf("stored %d entries, expected %d", virtual.Len(), moved)
			}
			return ""
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}
