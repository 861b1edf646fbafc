// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// significance is the p-value below which a frequency test is considered
// biased. Every statistical test uses a fixed seed, so a passing test keeps
// passing.
const significance = 1e-4

type draw struct {
	bound  uint64
	result uint64
}

// newScriptedSource returns a RandomSource that expects exactly [draws], in
// order.
func newScriptedSource(t *testing.T, draws ...draw) *MockRandomSource {
	ctrl := gomock.NewController(t)
	rng := NewMockRandomSource(ctrl)
	calls := make([]*gomock.Call, len(draws))
	for i, d := range draws {
		calls[i] = rng.EXPECT().Uint64n(d.bound).Return(d.result)
	}
	gomock.InOrder(calls...)
	return rng
}

func newSeededSource(seed uint64) RandomSource {
	return NewRandomSource(NewMT19937(seed))
}

// requireUnbiased fails the test if [observed] is unlikely to have been
// produced by a process with the [expected] frequencies.
func requireUnbiased(t *testing.T, observed []float64, expected []float64) {
	t.Helper()

	chiSquare := stat.ChiSquare(observed, expected)
	dist := distuv.ChiSquared{K: float64(len(observed) - 1)}
	p := dist.Survival(chiSquare)
	require.Greater(t, p, significance, "observed %v, expected %v, chi-square %f", observed, expected, chiSquare)
}

// spySequence counts the swaps performed on the wrapped slice.
type spySequence[T any] struct {
	Slice[T]
	swaps int
}

func (s *spySequence[T]) Swap(i, j int) {
	s.swaps++
	s.Slice.Swap(i, j)
}
