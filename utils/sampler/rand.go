// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

var _ RandomSource = (*rng)(nil)

// Source is a raw generator of 64 random bits.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// RandomSource provides the uniform draws consumed by every sampler in this
// package. Implementations are not required to be safe for concurrent use.
type RandomSource interface {
	// Uint64n returns a uniformly random number in [0, bound). bound must be
	// positive.
	Uint64n(bound uint64) uint64

	// Float64 returns a uniformly random number in [0, 1).
	Float64() float64
}

// NewMT19937 returns a Mersenne Twister seeded with [seed].
func NewMT19937(seed uint64) Source {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(seed)
	return source
}

// NewPCG returns a PCG generator seeded with [seed].
func NewPCG(seed uint64) Source {
	return rand.NewSource(seed)
}

// NewRandomSource returns a RandomSource that draws its bits from [source].
//
// The returned value is not safe for concurrent use.
func NewRandomSource(source Source) RandomSource {
	return &rng{rng: source}
}

type rng struct {
	rng Source
}

func (r *rng) Uint64n(bound uint64) uint64 {
	if bound == 0 {
		panic("invalid argument to Uint64n")
	}
	return r.uint64Inclusive(bound - 1)
}

// Float64 uses the top 53 bits so that every returned value is exactly
// representable and strictly less than 1.
func (r *rng) Float64() float64 {
	return float64(r.rng.Uint64()>>11) / (1 << 53)
}

// uint64Inclusive returns a pseudo-random number in [0,n].
func (r *rng) uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.rng.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := r.rng.Uint64()
		for v > n {
			v = r.rng.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// uint63 returns a random number in [0, MaxInt64]
func (r *rng) uint63() uint64 {
	return r.rng.Uint64() & math.MaxInt64
}
