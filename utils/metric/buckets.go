// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import "time"

var (
	// Useful latency buckets

	NanosecondsBuckets = []float64{
		float64(100 * time.Nanosecond),
		float64(time.Microsecond),
		float64(10 * time.Microsecond),
		float64(100 * time.Microsecond),
		float64(time.Millisecond),
		float64(10 * time.Millisecond),
		float64(100 * time.Millisecond),
		float64(time.Second),
		// anything larger than a second will be bucketed together
	}

	// Useful count buckets

	CountBuckets = []float64{
		1,
		10,
		100,
		1_000,
		10_000,
		100_000,
		1_000_000,
		// anything larger than a million will be bucketed together
	}
)
