// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
	JSON
)

const termTimeFormat = "[01-02|15:04:05.000]"

var (
	errUnknownHighlight = errors.New("unknown highlight")

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	jsonEncoderConfig zapcore.EncoderConfig
)

func init() {
	jsonEncoderConfig = defaultEncoderConfig
	jsonEncoderConfig.EncodeLevel = jsonLevelEncoder
	jsonEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonEncoderConfig.EncodeDuration = zapcore.NanosDurationEncoder
}

// Highlight mode to apply to displayed logs
type Highlight int

// ToHighlight chooses a highlighting mode. "AUTO" picks Colors only when [fd]
// is a terminal.
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "JSON":
		return JSON, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %q", errUnknownHighlight, h)
	}
}

func (h Highlight) String() string {
	switch h {
	case Plain:
		return "PLAIN"
	case Colors:
		return "COLORS"
	case JSON:
		return "JSON"
	default:
		return "UNKNOWN"
	}
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	switch h {
	case Plain, Colors, JSON:
		return json.Marshal(h.String())
	default:
		return nil, errUnknownHighlight
	}
}

// ConsoleEncoder returns the encoder used for logs written to the display.
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	switch h {
	case Colors:
		config := defaultEncoderConfig
		config.EncodeLevel = colorLevelEncoder
		return zapcore.NewConsoleEncoder(config)
	case JSON:
		return zapcore.NewJSONEncoder(jsonEncoderConfig)
	default:
		return zapcore.NewConsoleEncoder(defaultEncoderConfig)
	}
}

// FileEncoder returns the encoder used for logs written to files. Files are
// always written as JSON.
func FileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(jsonEncoderConfig)
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	level := Level(l)
	enc.AppendString(level.Color().Wrap(level.String()))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(termTimeFormat))
}
