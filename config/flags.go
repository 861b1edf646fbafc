// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/randkit/version"
)

const (
	SourceMT19937 = "mt19937"
	SourcePCG     = "pcg"

	// Environment variables are the upper-cased keys, with dashes replaced by
	// underscores, prefixed with RANDKIT_.
	envPrefix = "randkit"
)

// AddFlags adds every configuration flag to [fs].
func AddFlags(fs *pflag.FlagSet) {
	// Config
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is unset", ConfigFileKey))

	// Randomness
	fs.String(SeedKey, "", "Seed of the random source. Integers are used directly, any other value is hashed. Defaults to the current time")
	fs.String(SourceKey, SourceMT19937, fmt.Sprintf("Random source. Should be one of {%s, %s}", SourceMT19937, SourcePCG))

	// Input and output
	fs.String(InputKey, "", "File to read input lines from. Defaults to stdin")
	fs.String(MetricsFileKey, "", "If set, write metrics in the prometheus text format to this file on exit")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. If unset, logs are only displayed")
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight display logs. Default highlights when the output is a terminal. Otherwise, should be one of {auto, plain, colors, json}")
	fs.Uint(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogCompressKey, false, "Enables the compression of rotated log files through gzip")
}

// BuildFlagSet returns a complete set of flags for the sampler
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.Client, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// BuildViper parses [args] into [fs] and returns the resulting viper
// environment.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return NewViper(fs)
}

// NewViper returns a viper environment that resolves each key from, in order
// of precedence, the already parsed flags in [fs], the environment and the
// config file.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		filename := GetExpandedArg(v, ConfigFileKey)
		if filename != "" {
			v.SetConfigFile(filename)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}
