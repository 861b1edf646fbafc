// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "io"

// RotatingWriterConfig configures the files written by a logger. Logs are
// only written to files when Directory is set.
type RotatingWriterConfig struct {
	MaxSize   int    `json:"maxSize"` // in megabytes
	MaxFiles  int    `json:"maxFiles"`
	MaxAge    int    `json:"maxAge"` // in days
	Directory string `json:"directory"`
	Compress  bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool      `json:"disableWriterDisplaying"`
	LogLevel                Level     `json:"logLevel"`
	DisplayLevel            Level     `json:"displayLevel"`
	DisplayHighlight        Highlight `json:"displayHighlight"`

	// DisplayWriter receives displayed logs. Defaults to stderr.
	DisplayWriter io.WriteCloser `json:"-"`
	LoggerName    string         `json:"-"`
}
