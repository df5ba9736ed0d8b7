// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chance

import (
	"errors"

	"github.com/purechance/purechance/sampler"
)

// IntStream is a lazy, single-pass, finite stream of bounded random integers.
// Producing an element advances the underlying generator exactly once.
// Elements are not cached, so a fully consumed stream yields nothing further.
type IntStream struct {
	rng       *sampler.RNG
	lower     int64
	upper     int64
	remaining int
}

// Integers returns a stream of size integers drawn independently and
// uniformly from [lower, upper).
//
// The bounds are validated lazily: constructing a stream with lower >= upper
// succeeds, and the first Next call reports ErrEmptyRange. A zero-size stream
// never touches the generator and never validates its bounds.
func Integers(size int, lower, upper int64, seed Seed) (*IntStream, error) {
	rng, err := GetRNG(seed)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}
	return &IntStream{
		rng:       rng,
		lower:     lower,
		upper:     upper,
		remaining: size,
	}, nil
}

// Next produces the stream's next integer. It returns ErrExhausted once size
// elements have been produced, and ErrEmptyRange if the stream was built with
// lower >= upper. A failed call never advances the generator.
func (s *IntStream) Next() (int64, error) {
	if s.remaining <= 0 {
		return 0, ErrExhausted
	}
	if s.lower >= s.upper {
		return 0, ErrEmptyRange
	}
	s.remaining--

	// The unsigned difference is exact even when upper - lower overflows
	// int64, and adding the draw back to lower wraps to the right value.
	span := uint64(s.upper) - uint64(s.lower)
	return s.lower + int64(s.rng.Uint64Inclusive(span-1)), nil
}

// Remaining returns how many integers the stream has yet to produce.
func (s *IntStream) Remaining() int {
	return s.remaining
}

// Collect eagerly drains the rest of the stream into a slice.
func (s *IntStream) Collect() ([]int64, error) {
	results := make([]int64, 0, s.remaining)
	for {
		v, err := s.Next()
		if errors.Is(err, ErrExhausted) {
			return results, nil
		}
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
}
