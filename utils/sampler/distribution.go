// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ava-labs/randkit/utils"
)

// WeightTolerance is the maximum distance from 1 that the sum of a
// distribution's weights may have.
const WeightTolerance = 1e-9

// SampleDistribution returns one of [outcomes], where outcomes[i] is chosen
// with probability weights[i].
//
// The weights must be non-negative and sum to 1 within WeightTolerance.
// Outcomes are scanned in order, so placing the most probable outcomes first
// makes sampling faster in expectation. Outcomes with a weight of zero are
// never returned.
//
// Sampling takes O(n) time and O(1) space. Use NewDistribution to sample the
// same table repeatedly.
func SampleDistribution[T any](rng RandomSource, outcomes []T, weights []float64) (T, error) {
	total, err := verifyWeights(len(outcomes), weights)
	if err != nil {
		return utils.Zero[T](), err
	}

	// Scaling by the total absorbs the rounding error of the weights. The
	// running sum below is computed in the same order as [total], so the last
	// positive weight always ends at or above the draw.
	r := rng.Float64() * total
	lower := 0.0
	for i, weight := range weights {
		if weight == 0 {
			continue
		}

		// The first interval is [0, w0]; every later one is (lower, upper].
		upper := lower + weight
		if (r > lower || r == 0) && r <= upper {
			return outcomes[i], nil
		}
		lower = upper
	}
	return utils.Zero[T](), fmt.Errorf("%w: %v is above the cumulative weight %v",
		ErrUnreachable,
		r,
		lower,
	)
}

// Distribution is a discrete probability distribution prepared for repeated
// sampling.
//
// Initialization takes O(n) time and space.
//
// Sampling is performed in O(log(n)) time by binary searching the cumulative
// weights.
type Distribution[T any] struct {
	outcomes   []T
	cumulative []float64
}

// NewDistribution returns a distribution over [outcomes] where outcomes[i]
// has probability weights[i]. The same requirements as SampleDistribution
// apply to [weights].
func NewDistribution[T any](outcomes []T, weights []float64) (*Distribution[T], error) {
	if _, err := verifyWeights(len(outcomes), weights); err != nil {
		return nil, err
	}
	return &Distribution[T]{
		outcomes:   slices.Clone(outcomes),
		cumulative: floats.CumSum(make([]float64, len(weights)), weights),
	}, nil
}

// Len returns the number of outcomes.
func (d *Distribution[T]) Len() int {
	return len(d.outcomes)
}

// Sample returns an outcome with the same interval rules as
// SampleDistribution.
func (d *Distribution[T]) Sample(rng RandomSource) (T, error) {
	total := d.cumulative[len(d.cumulative)-1]
	r := rng.Float64() * total

	var index int
	if r == 0 {
		// Zero-weight outcomes at the front share the upper bound 0 and must
		// be skipped.
		index = sort.Search(len(d.cumulative), func(i int) bool {
			return d.cumulative[i] > 0
		})
	} else {
		// A zero-weight outcome shares its upper bound with the outcome
		// before it, so the first match is always a positive weight.
		index = sort.SearchFloat64s(d.cumulative, r)
	}
	if index == len(d.cumulative) {
		return utils.Zero[T](), fmt.Errorf("%w: %v is above the cumulative weight %v",
			ErrUnreachable,
			r,
			total,
		)
	}
	return d.outcomes[index], nil
}

// verifyWeights returns the sum of [weights], accumulated in index order, or
// an error if they don't describe a probability distribution over
// [numOutcomes] outcomes.
func verifyWeights(numOutcomes int, weights []float64) (float64, error) {
	switch {
	case numOutcomes != len(weights):
		return 0, fmt.Errorf("%w: %d outcomes but %d weights",
			ErrInvalidArgument,
			numOutcomes,
			len(weights),
		)
	case len(weights) == 0:
		return 0, fmt.Errorf("%w: no outcomes", ErrInvalidArgument)
	case floats.HasNaN(weights):
		return 0, fmt.Errorf("%w: NaN weight", ErrInvalidArgument)
	case floats.Min(weights) < 0:
		return 0, fmt.Errorf("%w: negative weight %v", ErrInvalidArgument, floats.Min(weights))
	}

	total := 0.0
	for _, weight := range weights {
		total += weight
	}
	if !scalar.EqualWithinAbs(total, 1, WeightTolerance) {
		return 0, fmt.Errorf("%w: weights sum to %v", ErrInvalidArgument, total)
	}
	return total, nil
}
