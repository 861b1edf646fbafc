// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/iterator"
	"github.com/ava-labs/randkit/utils/sampler"
)

func reservoirCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "reservoir",
		Short: "Prints k input lines chosen uniformly at random in a single pass",
		Long:  "Streams the input, holding at most k lines in memory, and prints k lines chosen uniformly at random.",
		Args:  cobra.NoArgs,
	}
	c.Flags().Int(KKey, 1, "Number of lines to select")
	c.RunE = func(c *cobra.Command, _ []string) error {
		k, err := c.Flags().GetInt(KKey)
		if err != nil {
			return err
		}

		input, err := e.openInput(c.InOrStdin())
		if err != nil {
			return err
		}

		start := time.Now()
		lines := iterator.FromLines(input)
		it := &countingIterator[string]{Iterator: lines}
		sample, err := sampler.Reservoir[string](e.rng, it, k)
		e.metrics.Read(it.count)
		if err := lines.Err(); err != nil {
			return fmt.Errorf("couldn't read input: %w", err)
		}
		if err != nil {
			return err
		}
		return emit(e, c, "reservoir", start, sample)
	}
	return c
}

// countingIterator counts the elements read from the wrapped iterator.
type countingIterator[T any] struct {
	iterator.Iterator[T]
	count int
}

func (i *countingIterator[T]) Next() bool {
	if !i.Iterator.Next() {
		return false
	}
	i.count++
	return true
}
