// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutation(t *testing.T) {
	tests := []struct {
		name        string
		n           int
		draws       []draw
		expected    []int
		expectedErr error
	}{
		{
			name:     "empty",
			n:        0,
			expected: []int{},
		},
		{
			name: "single",
			n:    1,
			draws: []draw{
				{bound: 1, result: 0},
			},
			expected: []int{0},
		},
		{
			name: "reversed",
			n:    3,
			draws: []draw{
				{bound: 3, result: 2},
				{bound: 2, result: 0},
				{bound: 1, result: 0},
			},
			expected: []int{2, 1, 0},
		},
		{
			name: "rotated",
			n:    3,
			draws: []draw{
				{bound: 3, result: 1},
				{bound: 2, result: 1},
				{bound: 1, result: 0},
			},
			expected: []int{1, 2, 0},
		},
		{
			name:        "negative",
			n:           -1,
			expectedErr: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			rng := newScriptedSource(t, tt.draws...)
			perm, err := Permutation(rng, tt.n)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, perm)
		})
	}
}

func TestPermutationUnbiased(t *testing.T) {
	const trials = 60_000

	// Index the 3! orderings of [0, 1, 2] by the first two values.
	index := func(perm []int) int {
		return perm[0]*3 + perm[1]
	}
	orderings := map[int]int{
		index([]int{0, 1, 2}): 0,
		index([]int{0, 2, 1}): 1,
		index([]int{1, 0, 2}): 2,
		index([]int{1, 2, 0}): 3,
		index([]int{2, 0, 1}): 4,
		index([]int{2, 1, 0}): 5,
	}

	rng := newSeededSource(2)
	observed := make([]float64, len(orderings))
	for i := 0; i < trials; i++ {
		perm, err := Permutation(rng, 3)
		require.NoError(t, err)
		ordering, ok := orderings[index(perm)]
		require.True(t, ok)
		observed[ordering]++
	}

	expected := make([]float64, len(orderings))
	for i := range expected {
		expected[i] = trials / 6
	}
	requireUnbiased(t, observed, expected)
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name        string
		perm        []int
		expected    []int
		expectedErr error
	}{
		{
			name:     "empty",
			perm:     []int{},
			expected: []int{},
		},
		{
			name:     "identity",
			perm:     []int{0, 1, 2},
			expected: []int{0, 1, 2},
		},
		{
			name:     "rotation",
			perm:     []int{3, 0, 1, 2},
			expected: []int{1, 2, 3, 0},
		},
		{
			name:     "involution",
			perm:     []int{1, 0, 3, 2},
			expected: []int{1, 0, 3, 2},
		},
		{
			name:        "duplicate",
			perm:        []int{0, 0},
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "out of range",
			perm:        []int{0, 2},
			expectedErr: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			inverse, err := Inverse(tt.perm)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, inverse)
		})
	}
}
