// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name          string
		elements      []string
		perm          []int
		expected      []string
		expectedSwaps int
		expectedErr   error
	}{
		{
			name:     "empty",
			elements: []string{},
			perm:     []int{},
			expected: []string{},
		},
		{
			name:     "identity",
			elements: []string{"A", "B", "C"},
			perm:     []int{0, 1, 2},
			expected: []string{"A", "B", "C"},
		},
		{
			name:          "single cycle",
			elements:      []string{"A", "B", "C", "D"},
			perm:          []int{3, 0, 1, 2},
			expected:      []string{"B", "C", "D", "A"},
			expectedSwaps: 3,
		},
		{
			name:          "disjoint swaps",
			elements:      []string{"A", "B", "C", "D"},
			perm:          []int{1, 0, 3, 2},
			expected:      []string{"B", "A", "D", "C"},
			expectedSwaps: 2,
		},
		{
			name:          "mixed cycles",
			elements:      []string{"A", "B", "C", "D", "E", "F"},
			perm:          []int{2, 1, 4, 5, 0, 3},
			expected:      []string{"E", "B", "A", "F", "C", "D"},
			expectedSwaps: 3,
		},
		{
			name:        "length mismatch",
			elements:    []string{"A", "B"},
			perm:        []int{0},
			expected:    []string{"A", "B"},
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "out of range",
			elements:    []string{"A", "B"},
			perm:        []int{1, 2},
			expected:    []string{"A", "B"},
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "negative",
			elements:    []string{"A", "B"},
			perm:        []int{-1, 0},
			expected:    []string{"A", "B"},
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "duplicate",
			elements:    []string{"A", "B", "C"},
			perm:        []int{1, 2, 1},
			expected:    []string{"A", "B", "C"},
			expectedErr: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			seq := &spySequence[string]{Slice: slices.Clone(tt.elements)}
			perm := slices.Clone(tt.perm)
			err := Apply[string](seq, perm)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, []string(seq.Slice))
			require.Equal(tt.expectedSwaps, seq.swaps)
			require.Equal(tt.perm, perm)
		})
	}
}

func TestApplyInverseRestores(t *testing.T) {
	require := require.New(t)

	rng := newSeededSource(3)
	original := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	for i := 0; i < 100; i++ {
		perm, err := Permutation(rng, len(original))
		require.NoError(err)
		inverse, err := Inverse(perm)
		require.NoError(err)

		elements := slices.Clone(original)
		require.NoError(Apply[int](Slice[int](elements), perm))
		for j, dst := range perm {
			require.Equal(original[j], elements[dst])
		}

		require.NoError(Apply[int](Slice[int](elements), inverse))
		require.Equal(original, elements)
	}
}
