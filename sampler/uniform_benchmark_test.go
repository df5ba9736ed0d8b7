// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "testing"

func UniformBenchmark(b *testing.B, s Uniform, size uint64, toSample int) {
	s.Initialize(size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Sample(toSample)
	}
}

func BenchmarkUniformReplacer30Of1000(b *testing.B) {
	UniformBenchmark(b, NewUniform(NewSeededRNG(101)), 1000, 30)
}

func BenchmarkUniformReplacer1000Of1000(b *testing.B) {
	UniformBenchmark(b, NewUniform(NewSeededRNG(101)), 1000, 1000)
}

func BenchmarkUniformResample30Of1000(b *testing.B) {
	UniformBenchmark(b, NewUniformResample(NewSeededRNG(101)), 1000, 30)
}
