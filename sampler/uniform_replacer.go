// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

type defaultMap map[uint64]uint64

func (m defaultMap) get(key uint64, defaultVal uint64) uint64 {
	if val, ok := m[key]; ok {
		return val
	}
	return defaultVal
}

// uniformReplacer allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by lazily performing an array shuffle of the array
// [0, 1, ..., length - 1]. By performing the first count swaps of this
// shuffle, we can create an array of length count with elements sampled with
// uniform probability.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type uniformReplacer struct {
	rng          *RNG
	length       uint64
	drawn        uint64
	replacements defaultMap
}

func (s *uniformReplacer) Initialize(length uint64) {
	s.length = length
	s.drawn = 0
	s.replacements = make(defaultMap)
}

func (s *uniformReplacer) Sample(count int) ([]uint64, error) {
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *uniformReplacer) Reset() {
	s.drawn = 0
	maps.Clear(s.replacements)
}

func (s *uniformReplacer) Next() (uint64, error) {
	if s.drawn >= s.length {
		return 0, ErrOutOfRange
	}

	draw := s.rng.Uint64Inclusive(s.length-1-s.drawn) + s.drawn
	ret := s.replacements.get(draw, draw)
	s.replacements[draw] = s.replacements.get(s.drawn, s.drawn)
	s.drawn++
	return ret, nil
}
