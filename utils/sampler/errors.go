// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	// ErrInvalidArgument is returned when sizes, bounds or tables passed to a
	// sampler are malformed. It is always reported before any caller-owned
	// data is modified.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStreamExhausted is returned by Reservoir when the stream ends before
	// the reservoir could be filled.
	ErrStreamExhausted = errors.New("stream exhausted")

	// ErrUnreachable is returned when a distribution draw matches no outcome.
	ErrUnreachable = errors.New("draw matched no outcome")

	// ErrOutOfRange is returned by Uniform.Next once every value has been
	// drawn.
	ErrOutOfRange = errors.New("out of range")
)
