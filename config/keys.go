// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	SeedKey                = "seed"
	SourceKey              = "source"
	InputKey               = "input"
	MetricsFileKey         = "metrics-file"
	LogsDirKey             = "log-dir"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogMaxSizeKey          = "log-rotater-max-size"
	LogMaxFilesKey         = "log-rotater-max-files"
	LogMaxAgeKey           = "log-rotater-max-age"
	LogCompressKey         = "log-rotater-compress-enabled"
)
