// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/sampler"
)

func permCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "perm",
		Short: "Prints a uniformly random permutation of [0, n)",
		Long:  "Prints a uniformly random permutation of [0, n), one value per line. The value on line i is the destination of the element at index i.",
		Args:  cobra.NoArgs,
	}
	c.Flags().Int(NKey, 0, "Length of the permutation")
	c.RunE = func(c *cobra.Command, _ []string) error {
		n, err := c.Flags().GetInt(NKey)
		if err != nil {
			return err
		}

		start := time.Now()
		perm, err := sampler.Permutation(e.rng, n)
		if err != nil {
			return err
		}
		return emit(e, c, "perm", start, perm)
	}
	return c
}
