// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/viper"

	"github.com/ava-labs/randkit/utils/logging"
	"github.com/ava-labs/randkit/utils/sampler"
)

var errUnknownSource = errors.New("unknown random source")

// Config is the resolved configuration of the sampler.
type Config struct {
	// Seed is the seed the random source is created with.
	Seed uint64 `json:"seed"`
	// SeedPhrase is the non-numeric value Seed was derived from, if any.
	SeedPhrase string `json:"seedPhrase"`
	// Source is the name of the random source.
	Source string `json:"source"`

	InputFile   string `json:"inputFile"`
	MetricsFile string `json:"metricsFile"`

	LoggingConfig logging.Config `json:"loggingConfig"`
}

// NewRandomSource returns a new random source described by [c].
func (c *Config) NewRandomSource() sampler.RandomSource {
	switch c.Source {
	case SourcePCG:
		return sampler.NewRandomSource(sampler.NewPCG(c.Seed))
	default:
		return sampler.NewRandomSource(sampler.NewMT19937(c.Seed))
	}
}

// GetConfig resolves every key of [v] into a Config.
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		InputFile:   GetExpandedArg(v, InputKey),
		MetricsFile: GetExpandedArg(v, MetricsFileKey),
	}

	config.Source = strings.ToLower(v.GetString(SourceKey))
	switch config.Source {
	case SourceMT19937, SourcePCG:
	default:
		return Config{}, fmt.Errorf("%w: %q", errUnknownSource, v.GetString(SourceKey))
	}

	seed := v.GetString(SeedKey)
	config.Seed = ParseSeed(seed, time.Now)
	if _, err := strconv.ParseUint(seed, 10, 64); err != nil && seed != "" {
		config.SeedPhrase = seed
	}

	var err error
	config.LoggingConfig, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// ParseSeed converts [seed] into a seed for a random source. Decimal integers
// are used directly. Any other non-empty string is hashed. An empty string
// returns a seed derived from [now].
func ParseSeed(seed string, now func() time.Time) uint64 {
	if seed == "" {
		return uint64(now().UnixNano())
	}
	if parsed, err := strconv.ParseUint(seed, 10, 64); err == nil {
		return parsed
	}
	return xxhash.Sum64String(seed)
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = GetExpandedArg(v, LogsDirKey)
	loggingConfig.MaxSize = int(v.GetUint(LogMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogCompressKey)

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) && v.GetString(LogDisplayLevelKey) != "" {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}

	loggingConfig.DisplayHighlight, err = logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stderr.Fd())
	return loggingConfig, err
}

// GetExpandedArg gets the string in viper corresponding to [key] and expands
// any variables using the OS env.
func GetExpandedArg(v *viper.Viper, key string) string {
	return os.ExpandEnv(v.GetString(key))
}
