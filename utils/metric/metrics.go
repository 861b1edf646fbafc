// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/randkit/utils/wrappers"
)

const operationLabel = "operation"

// Metrics tracks the work done by sampling commands.
type Metrics struct {
	itemsRead      prometheus.Counter
	itemsEmitted   prometheus.Counter
	sampleSize     prometheus.Histogram
	sampleDuration *prometheus.HistogramVec
}

func NewMetrics(namespace string, registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		itemsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_read",
			Help:      "Number of input items read",
		}),
		itemsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_emitted",
			Help:      "Number of items written to the output",
		}),
		sampleSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_size",
			Help:      "Number of items produced by a single sample",
			Buckets:   CountBuckets,
		}),
		sampleDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sample_duration",
				Help:      "Time spent sampling (in ns)",
				Buckets:   NanosecondsBuckets,
			},
			[]string{operationLabel},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.itemsRead),
		registerer.Register(m.itemsEmitted),
		registerer.Register(m.sampleSize),
		registerer.Register(m.sampleDuration),
	)
	return m, errs.Err
}

func (m *Metrics) Read(count int) {
	m.itemsRead.Add(float64(count))
}

func (m *Metrics) Emitted(count int) {
	m.itemsEmitted.Add(float64(count))
	m.sampleSize.Observe(float64(count))
}

// Observe records the time [operation] took since [start].
func (m *Metrics) Observe(operation string, start time.Time) {
	m.sampleDuration.With(prometheus.Labels{
		operationLabel: operation,
	}).Observe(float64(time.Since(start)))
}
