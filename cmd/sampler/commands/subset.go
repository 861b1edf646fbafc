// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/sampler"
)

const (
	KKey = "k"
	NKey = "n"
)

func subsetCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "subset",
		Short: "Prints k input lines chosen uniformly at random",
		Long:  "Reads every input line, then prints a uniformly random subset of k lines in a uniformly random order.",
		Args:  cobra.NoArgs,
	}
	c.Flags().Int(KKey, 1, "Number of lines to select")
	c.RunE = func(c *cobra.Command, _ []string) error {
		k, err := c.Flags().GetInt(KKey)
		if err != nil {
			return err
		}

		lines, err := e.readLines(c)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := sampler.SelectSubset[string](e.rng, sampler.Slice[string](lines), k); err != nil {
			return err
		}
		return emit(e, c, "subset", start, lines[:k])
	}
	return c
}
