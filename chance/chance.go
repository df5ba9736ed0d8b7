// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chance provides biased coin flips, sampling with and without
// replacement, weighted sampling, bounded random integer streams, and
// shuffling, all driven by a single seedable generator abstraction.
//
// Every operation resolves its Seed first and then draws from the resulting
// generator. Operations never mutate their inputs and always return freshly
// allocated results.
package chance

import (
	"github.com/purechance/purechance/sampler"
	safemath "github.com/purechance/purechance/utils/math"
)

// Coinflip reports the outcome of a simulated coin flip that lands true with
// probability bias. A bias of 0 is always false and a bias of 1 is always
// true.
func Coinflip(bias float64, seed Seed) (bool, error) {
	// The negated form also rejects NaN.
	if !(bias >= 0 && bias <= 1) {
		return false, ErrInvalidBias
	}
	rng, err := GetRNG(seed)
	if err != nil {
		return false, err
	}
	return rng.Float64() < bias, nil
}

// Draw returns a new slice of size elements randomly drawn from items.
//
// With replacement every draw is independent, so duplicates are possible and
// size may exceed len(items). Without replacement the result holds size
// distinct positions of items in randomized order, and size must not exceed
// len(items).
//
// An empty items or a zero size short-circuits to an empty result without
// advancing the generator.
func Draw[T any](items []T, replace bool, size int, seed Seed) ([]T, error) {
	rng, err := GetRNG(seed)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if len(items) == 0 || size == 0 {
		return []T{}, nil
	}

	if replace {
		results := make([]T, size)
		for i := range results {
			results[i] = items[rng.Uint64Inclusive(uint64(len(items)-1))]
		}
		return results, nil
	}

	if size > len(items) {
		return nil, ErrInvalidSize
	}
	indices, err := drawIndices(rng, uint64(len(items)), size)
	if err != nil {
		return nil, err
	}
	results := make([]T, size)
	for i, index := range indices {
		results[i] = items[index]
	}
	return results, nil
}

// Sparse draws reject duplicates faster than they would lazily shuffle; dense
// draws do the opposite.
func drawIndices(rng *sampler.RNG, length uint64, count int) ([]uint64, error) {
	var s sampler.Uniform
	if uint64(count)*4 <= length {
		s = sampler.NewUniformResample(rng)
	} else {
		s = sampler.NewUniform(rng)
	}
	s.Initialize(length)
	return s.Sample(count)
}

// DrawWeighted returns a new slice of size elements drawn from items with
// replacement, where the probability of selecting an element is proportional
// to its weight. An element with weight 0 is never selected.
//
// weights must have one entry per item and a positive, non-overflowing total.
func DrawWeighted[T any](items []T, weights []uint64, size int, seed Seed) ([]T, error) {
	rng, err := GetRNG(seed)
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if len(weights) != len(items) {
		return nil, ErrInvalidWeights
	}
	if len(items) == 0 || size == 0 {
		return []T{}, nil
	}

	totalWeight := uint64(0)
	for _, weight := range weights {
		newWeight, err := safemath.Add64(totalWeight, weight)
		if err != nil {
			return nil, err
		}
		totalWeight = newWeight
	}
	if totalWeight == 0 {
		return nil, ErrInvalidWeights
	}

	w := sampler.NewWeighted(len(weights))
	if err := w.Initialize(weights); err != nil {
		return nil, err
	}

	results := make([]T, size)
	for i := range results {
		index, err := w.Sample(rng.Uint64Inclusive(totalWeight - 1))
		if err != nil {
			return nil, err
		}
		results[i] = items[index]
	}
	return results, nil
}

// Shuffle returns a randomly ordered copy of items. items itself is never
// reordered, and the copy stays valid if items is mutated afterwards.
func Shuffle[T any](items []T, seed Seed) ([]T, error) {
	return Draw(items, false, len(items), seed)
}
