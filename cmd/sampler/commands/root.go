// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/randkit/config"
	"github.com/ava-labs/randkit/version"
)

func newRootCommand(e *env) *cobra.Command {
	c := &cobra.Command{
		Use:               version.Client,
		Short:             "Randomly samples and permutes line oriented input",
		PersistentPreRunE: e.initialize,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	config.AddFlags(c.PersistentFlags())
	c.AddCommand(
		subsetCommand(e),
		reservoirCommand(e),
		permCommand(e),
		indicesCommand(e),
		applyCommand(e),
		pickCommand(e),
		versionCommand(),
	)
	return c
}

// Execute runs the sampler with [args], reading input from [stdin] unless an
// input file is configured. Samples are written to [stdout] and logs to
// [stderr].
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	e := &env{}
	c := newRootCommand(e)
	c.SetArgs(args)
	c.SetIn(stdin)
	c.SetOut(stdout)
	c.SetErr(stderr)

	err := c.Execute()
	if err != nil {
		if e.log != nil {
			e.log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintf(stderr, "%s failed: %v\n", version.Client, err)
		}
	}
	if closeErr := e.close(); closeErr != nil {
		fmt.Fprintf(stderr, "%s failed to shut down: %v\n", version.Client, closeErr)
		if err == nil {
			err = closeErr
		}
	}
	return err
}
