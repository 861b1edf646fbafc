// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

// Color is an ANSI escape sequence that changes the color of terminal output.
type Color string

const (
	Red         Color = "\033[0;31m"
	LightGreen  Color = "\033[1;32m"
	Orange      Color = "\033[0;33m"
	Yellow      Color = "\033[1;33m"
	LightBlue   Color = "\033[1;34m"
	LightPurple Color = "\033[1;35m"
	Reset       Color = "\033[0;0m"
)

func (lc Color) Wrap(text string) string {
	return string(lc) + text + string(Reset)
}

func (l Level) Color() Color {
	switch l {
	case Fatal:
		return Red
	case Error:
		return Orange
	case Warn:
		return Yellow
	case Info:
		// Rather than using white, use the default to better support terminals
		// with a white background.
		return Reset
	case Trace:
		return LightPurple
	case Debug:
		return LightBlue
	case Verbo:
		return LightGreen
	default:
		return Reset
	}
}
