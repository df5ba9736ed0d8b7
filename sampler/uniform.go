// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var ErrOutOfRange = errors.New("out of range")

// Uniform samples indices without replacement from [0, length), drawing from
// the RNG it was built with.
type Uniform interface {
	Initialize(length uint64)

	// Sample returns count distinct indices. It resets any progress made by
	// previous Sample or Next calls.
	Sample(count int) ([]uint64, error)

	Reset()

	// Next returns one more distinct index, or ErrOutOfRange once length
	// indices have been drawn since the last Reset.
	Next() (uint64, error)
}

// NewUniform returns a sampler suited to drawing a large fraction of the
// range, such as a full shuffle.
func NewUniform(rng *RNG) Uniform {
	return &uniformReplacer{rng: rng}
}

// NewUniformResample returns a sampler suited to drawing a sparse subset of
// the range.
func NewUniformResample(rng *RNG) Uniform {
	return &uniformResample{rng: rng}
}
