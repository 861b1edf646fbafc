// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/sampler"
)

const (
	PermKey    = "perm"
	InverseKey = "inverse"
)

func applyCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "apply",
		Short: "Reorders the input lines by a permutation",
		Long:  "Reads every input line and moves the line at index i to index perm[i]. With --inverse the permutation is undone instead.",
		Args:  cobra.NoArgs,
	}
	flags := c.Flags()
	flags.IntSlice(PermKey, nil, "Permutation to apply, as comma separated destinations")
	flags.Bool(InverseKey, false, "Apply the inverse of the permutation")
	c.RunE = func(c *cobra.Command, _ []string) error {
		flags := c.Flags()
		perm, err := flags.GetIntSlice(PermKey)
		if err != nil {
			return err
		}
		inverse, err := flags.GetBool(InverseKey)
		if err != nil {
			return err
		}

		lines, err := e.readLines(c)
		if err != nil {
			return err
		}

		start := time.Now()
		if inverse {
			perm, err = sampler.Inverse(perm)
			if err != nil {
				return err
			}
		}
		if err := sampler.Apply[string](sampler.Slice[string](lines), perm); err != nil {
			return err
		}
		return emit(e, c, "apply", start, lines)
	}
	return c
}
