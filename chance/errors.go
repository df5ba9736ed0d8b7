// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chance

import "errors"

var (
	// ErrInvalidSeed is returned when a Seed is neither absent, an integer,
	// nor an existing generator.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidBias is returned when a coin flip bias falls outside [0, 1].
	ErrInvalidBias = errors.New("invalid bias, expected 0 <= bias <= 1")

	// ErrInvalidSize is returned when a requested size is negative, or when a
	// without-replacement draw asks for more distinct elements than exist.
	ErrInvalidSize = errors.New("invalid size")

	// ErrEmptyRange is returned when an integer is drawn from a range whose
	// lower bound is not strictly below its upper bound.
	ErrEmptyRange = errors.New("empty range, expected lower < upper")

	// ErrExhausted is returned by IntStream.Next once the stream has produced
	// all of its elements.
	ErrExhausted = errors.New("stream exhausted")

	// ErrInvalidWeights is returned when a weighted draw is given weights that
	// don't match the items, or whose total is zero.
	ErrInvalidWeights = errors.New("invalid weights")
)
