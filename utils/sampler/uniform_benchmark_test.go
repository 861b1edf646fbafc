// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"testing"
)

// BenchmarkAllUniform
func BenchmarkAllUniform(b *testing.B) {
	sizes := []uint64{
		30,
		35,
		500,
		10000,
		100000,
	}
	for _, s := range uniformSamplers {
		for _, size := range sizes {
			b.Run(fmt.Sprintf("%s %d", s.name, size), func(b *testing.B) {
				UniformBenchmark(b, s.sampler(newSeededSource(1)), size, 30)
			})
		}
	}
}

func UniformBenchmark(b *testing.B, s Uniform, size uint64, toSample int) {
	s.Initialize(size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample(toSample)
	}
}

func BenchmarkSampleDistribution(b *testing.B) {
	outcomes := []int{0, 1, 2, 3}
	weights := []float64{0.4, 0.3, 0.2, 0.1}
	rng := newSeededSource(1)

	b.Run("scan", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = SampleDistribution(rng, outcomes, weights)
		}
	})
	b.Run("search", func(b *testing.B) {
		dist, err := NewDistribution(outcomes, weights)
		if err != nil {
			b.Fatal(err)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = dist.Sample(rng)
		}
	})
}
