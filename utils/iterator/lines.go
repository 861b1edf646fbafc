// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package iterator

import (
	"bufio"
	"io"
)

var _ Iterator[string] = (*Lines)(nil)

// maxLineSize bounds the length of a single line read by Lines.
const maxLineSize = 1 << 20

// Lines iterates over the newline separated lines of a reader without
// buffering more than a single line.
type Lines struct {
	scanner *bufio.Scanner
	closer  io.Closer
	value   string
	done    bool
}

// FromLines returns an iterator over the lines of [r]. If [r] is an
// io.Closer it is closed on Release.
func FromLines(r io.Reader) *Lines {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	closer, _ := r.(io.Closer)
	return &Lines{
		scanner: scanner,
		closer:  closer,
	}
}

func (l *Lines) Next() bool {
	if l.done {
		return false
	}
	if !l.scanner.Scan() {
		l.done = true
		l.value = ""
		return false
	}
	l.value = l.scanner.Text()
	return true
}

func (l *Lines) Value() string {
	return l.value
}

// Err returns the first non-EOF error encountered while reading.
func (l *Lines) Err() error {
	return l.scanner.Err()
}

func (l *Lines) Release() {
	l.done = true
	l.value = ""
	if l.closer != nil {
		_ = l.closer.Close()
		l.closer = nil
	}
}
