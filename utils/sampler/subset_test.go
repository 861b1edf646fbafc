// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestSelectSubset(t *testing.T) {
	tests := []struct {
		name        string
		elements    []string
		k           int
		draws       []draw
		expected    []string
		expectedErr error
	}{
		{
			name:     "empty subset draws nothing",
			elements: []string{"a", "b", "c"},
			k:        0,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty sequence",
			elements: []string{},
			k:        0,
			expected: []string{},
		},
		{
			name:     "partial",
			elements: []string{"a", "b", "c", "d", "e"},
			k:        2,
			draws: []draw{
				{bound: 5, result: 4},
				{bound: 4, result: 2},
			},
			expected: []string{"e", "d", "c", "b", "a"},
		},
		{
			name:     "full",
			elements: []string{"a", "b", "c", "d"},
			k:        4,
			draws: []draw{
				{bound: 4, result: 3},
				{bound: 3, result: 0},
				{bound: 2, result: 1},
				{bound: 1, result: 0},
			},
			expected: []string{"d", "b", "a", "c"},
		},
		{
			name:        "too large",
			elements:    []string{"a", "b"},
			k:           3,
			expected:    []string{"a", "b"},
			expectedErr: ErrInvalidArgument,
		},
		{
			name:        "negative",
			elements:    []string{"a", "b"},
			k:           -1,
			expected:    []string{"a", "b"},
			expectedErr: ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			rng := newScriptedSource(t, tt.draws...)
			seq := &spySequence[string]{Slice: slices.Clone(tt.elements)}
			err := SelectSubset[string](rng, seq, tt.k)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, []string(seq.Slice))
			if tt.expectedErr != nil {
				require.Zero(seq.swaps)
			}
		})
	}
}

func TestSelectSubsetUnbiased(t *testing.T) {
	const (
		n      = 8
		k      = 3
		trials = 40_000
	)

	rng := newSeededSource(1)
	// observed[i*n+e] counts how often element e landed in position i.
	observed := make([]float64, k*n)
	for trial := 0; trial < trials; trial++ {
		elements := []int{0, 1, 2, 3, 4, 5, 6, 7}
		require.NoError(t, SelectSubset[int](rng, Slice[int](elements), k))
		for i, e := range elements[:k] {
			observed[i*n+e]++
		}
	}

	expected := make([]float64, n)
	for i := range expected {
		expected[i] = trials / n
	}
	for i := 0; i < k; i++ {
		requireUnbiased(t, observed[i*n:(i+1)*n], expected)
	}
}

func TestShuffle(t *testing.T) {
	require := require.New(t)

	rng := newScriptedSource(t,
		draw{bound: 3, result: 2},
		draw{bound: 2, result: 0},
		draw{bound: 1, result: 0},
	)
	s := []int{1, 2, 3}
	Shuffle(rng, s)
	require.Equal([]int{3, 2, 1}, s)
}
