// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/ava-labs/randkit/utils/sampler"
)

const CountKey = "count"

var errMalformedOutcome = errors.New("malformed outcome")

func pickCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:   "pick",
		Short: "Prints values drawn from a discrete distribution",
		Long:  "Reads one outcome per line as a value followed by its probability, separated by whitespace, and prints count independent draws. Blank lines are skipped.",
		Args:  cobra.NoArgs,
	}
	c.Flags().Int(CountKey, 1, "Number of draws")
	c.RunE = func(c *cobra.Command, _ []string) error {
		count, err := c.Flags().GetInt(CountKey)
		if err != nil {
			return err
		}
		if count < 0 {
			return fmt.Errorf("%w: negative count %d", sampler.ErrInvalidArgument, count)
		}

		lines, err := e.readLines(c)
		if err != nil {
			return err
		}
		outcomes, weights, err := parseOutcomes(lines)
		if err != nil {
			return err
		}

		start := time.Now()
		draws := make([]string, count)
		if count == 1 {
			draws[0], err = sampler.SampleDistribution(e.rng, outcomes, weights)
			if err != nil {
				return err
			}
			return emit(e, c, "pick", start, draws)
		}

		dist, err := sampler.NewDistribution(outcomes, weights)
		if err != nil {
			return err
		}
		for i := range draws {
			draws[i], err = dist.Sample(e.rng)
			if err != nil {
				return err
			}
		}
		return emit(e, c, "pick", start, draws)
	}
	return c
}

// parseOutcomes splits each non-blank line at its last run of whitespace into
// a value and a weight.
func parseOutcomes(lines []string) ([]string, []float64, error) {
	var (
		outcomes []string
		weights  []float64
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sep := strings.LastIndexFunc(line, unicode.IsSpace)
		if sep < 0 {
			return nil, nil, fmt.Errorf("%w: line %d has no weight", errMalformedOutcome, i+1)
		}
		weight, err := strconv.ParseFloat(line[sep+1:], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %v", errMalformedOutcome, i+1, err)
		}
		outcomes = append(outcomes, strings.TrimRightFunc(line[:sep], unicode.IsSpace))
		weights = append(weights, weight)
	}
	return outcomes, weights, nil
}
