// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/sampler"
)

const (
	MethodKey = "method"

	methodReplacer = "replacer"
	methodResample = "resample"
)

var errUnknownMethod = errors.New("unknown sampling method")

func indicesCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "indices",
		Short: "Prints k distinct values chosen uniformly at random from [0, n)",
		Long:  "Prints k distinct values chosen uniformly at random from [0, n) using memory proportional to k.",
		Args:  cobra.NoArgs,
	}
	flags := c.Flags()
	flags.Uint64(NKey, 0, "Length of the range")
	flags.Int(KKey, 1, "Number of values to select")
	flags.String(MethodKey, methodReplacer, fmt.Sprintf("Sampling method. Should be one of {%s, %s}", methodReplacer, methodResample))
	c.RunE = func(c *cobra.Command, _ []string) error {
		flags := c.Flags()
		n, err := flags.GetUint64(NKey)
		if err != nil {
			return err
		}
		k, err := flags.GetInt(KKey)
		if err != nil {
			return err
		}
		method, err := flags.GetString(MethodKey)
		if err != nil {
			return err
		}

		var s sampler.Uniform
		switch method {
		case methodReplacer:
			s = sampler.NewUniform(e.rng)
		case methodResample:
			s = sampler.NewResampleUniform(e.rng)
		default:
			return fmt.Errorf("%w: %q", errUnknownMethod, method)
		}

		start := time.Now()
		s.Initialize(n)
		indices, err := s.Sample(k)
		if err != nil {
			return err
		}
		return emit(e, c, "indices", start, indices)
	}
	return c
}
