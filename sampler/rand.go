// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces the stream of pseudo-random words every draw consumes.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// RNG is a seedable pseudo-random generator. Every draw mutates it, so a
// generator shared across calls yields a single advancing sequence. RNGs are
// not safe for concurrent use; callers sharing one across goroutines must
// serialize access themselves.
type RNG struct {
	src Source
}

// NewRNG returns a generator seeded from the wall clock. Two generators
// created this way are not reproducibly related.
func NewRNG() *RNG {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(uint64(time.Now().UnixNano()))
	return &RNG{src: source}
}

// NewSeededRNG returns a generator deterministically seeded by seed. Equal
// seeds produce equal draw sequences.
func NewSeededRNG(seed int64) *RNG {
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return &RNG{src: source}
}

// NewRNGFromSource wraps an arbitrary word source in an RNG.
func NewRNGFromSource(src Source) *RNG {
	return &RNG{src: src}
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (r *RNG) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return r.uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := r.uint64()
		for v > n {
			v = r.uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := r.uint63()
		for v > maximum {
			v = r.uint63()
		}
		return v % (n + 1)
	}
}

// Float64 returns a pseudo-random number in [0,1). The draw carries 53 bits
// of precision, the same construction math/rand uses.
func (r *RNG) Float64() float64 {
	return float64(r.uint64()>>11) / (1 << 53)
}

// uint63 returns a random number in [0, MaxInt64]
func (r *RNG) uint63() uint64 {
	return r.uint64() & math.MaxInt64
}

// uint64 returns a random number in [0, MaxUint64]
func (r *RNG) uint64() uint64 {
	return r.src.Uint64()
}
