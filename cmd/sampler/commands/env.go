// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/randkit/config"
	"github.com/ava-labs/randkit/utils/iterator"
	"github.com/ava-labs/randkit/utils/logging"
	"github.com/ava-labs/randkit/utils/metric"
	"github.com/ava-labs/randkit/utils/sampler"
	"github.com/ava-labs/randkit/utils/wrappers"
	"github.com/ava-labs/randkit/version"
)

const (
	loggerName       = "sampler"
	metricsNamespace = "sampler"
)

// env is the state shared by every subcommand. It is populated before a
// subcommand runs.
type env struct {
	config     config.Config
	logFactory logging.Factory
	log        logging.Logger
	rng        sampler.RandomSource
	registry   *prometheus.Registry
	metrics    *metric.Metrics
}

func (e *env) initialize(c *cobra.Command, _ []string) error {
	v, err := config.NewViper(c.Root().PersistentFlags())
	if err != nil {
		return err
	}
	e.config, err = config.GetConfig(v)
	if err != nil {
		return err
	}

	loggingConfig := e.config.LoggingConfig
	loggingConfig.DisplayWriter = nopCloser{Writer: c.ErrOrStderr()}
	e.logFactory = logging.NewFactory(loggingConfig)
	e.log, err = e.logFactory.Make(loggerName)
	if err != nil {
		return fmt.Errorf("couldn't create logger: %w", err)
	}

	e.registry = prometheus.NewRegistry()
	e.metrics, err = metric.NewMetrics(metricsNamespace, e.registry)
	if err != nil {
		return fmt.Errorf("couldn't register metrics: %w", err)
	}

	e.rng = e.config.NewRandomSource()

	fields := []zap.Field{
		zap.Stringer("version", version.Current),
		zap.String("command", c.Name()),
		zap.String("source", e.config.Source),
		zap.Uint64("seed", e.config.Seed),
	}
	if e.config.SeedPhrase != "" {
		fields = append(fields, logging.UserString("seedPhrase", e.config.SeedPhrase))
	}
	e.log.Debug("initialized sampler", fields...)
	return nil
}

// close writes the metrics file, if configured, and stops the logger.
func (e *env) close() error {
	errs := wrappers.Errs{}
	if e.registry != nil && e.config.MetricsFile != "" {
		errs.Add(metric.WriteTextfile(e.config.MetricsFile, e.registry))
	}
	if e.logFactory != nil {
		e.logFactory.Close()
	}
	return errs.Err
}

// openInput returns the configured input file or [stdin].
func (e *env) openInput(stdin io.Reader) (io.ReadCloser, error) {
	if e.config.InputFile == "" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(e.config.InputFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't open input: %w", err)
	}
	return f, nil
}

// readLines reads every line of the input.
func (e *env) readLines(c *cobra.Command) ([]string, error) {
	input, err := e.openInput(c.InOrStdin())
	if err != nil {
		return nil, err
	}

	lines := iterator.FromLines(input)
	defer lines.Release()

	var elements []string
	for lines.Next() {
		elements = append(elements, lines.Value())
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("couldn't read input: %w", err)
	}

	e.metrics.Read(len(elements))
	e.log.Debug("read input",
		zap.String("lines", humanize.Comma(int64(len(elements)))),
	)
	return elements, nil
}

// emit writes one value per line to the command's output.
func emit[T any](e *env, c *cobra.Command, operation string, start time.Time, values []T) error {
	e.metrics.Observe(operation, start)

	w := bufio.NewWriter(c.OutOrStdout())
	for _, value := range values {
		if _, err := fmt.Fprintln(w, value); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	e.metrics.Emitted(len(values))
	e.log.Info("sampled",
		zap.String("operation", operation),
		zap.String("emitted", humanize.Comma(int64(len(values)))),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
