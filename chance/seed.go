// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chance

import "github.com/purechance/purechance/sampler"

type seedKind uint8

const (
	seedAbsent seedKind = iota
	seedInt
	seedRNG
)

// Seed selects the generator an operation draws from. The zero value is the
// absent seed.
//
// An absent seed resolves to a fresh entropy-seeded generator, so results are
// not reproducible across runs. An integer seed resolves to a fresh generator
// whose draw sequence is a pure function of that integer. A generator seed
// resolves to the given generator itself, shared by reference: successive
// calls observe its advancing state.
type Seed struct {
	kind seedKind
	n    int64
	rng  *sampler.RNG
}

// NoSeed returns the absent seed.
func NoSeed() Seed {
	return Seed{}
}

// IntSeed returns a reproducible seed.
func IntSeed(n int64) Seed {
	return Seed{
		kind: seedInt,
		n:    n,
	}
}

// RNGSeed returns a seed that reuses rng without copying it. The caller keeps
// ownership of rng and is responsible for serializing access to it.
func RNGSeed(rng *sampler.RNG) Seed {
	return Seed{
		kind: seedRNG,
		rng:  rng,
	}
}

// GetRNG resolves seed to a generator.
//
// Resolution never draws from a generator: a passed-in generator is returned
// as-is with its state untouched, and a freshly constructed one has performed
// no draws yet.
func GetRNG(seed Seed) (*sampler.RNG, error) {
	switch seed.kind {
	case seedAbsent:
		return sampler.NewRNG(), nil
	case seedInt:
		return sampler.NewSeededRNG(seed.n), nil
	case seedRNG:
		if seed.rng == nil {
			return nil, ErrInvalidSeed
		}
		return seed.rng, nil
	default:
		return nil, ErrInvalidSeed
	}
}
