// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Weighted defines how to sample a specified value based on a provided
// weighted distribution
type Weighted interface {
	Initialize(weights []uint64) error
	Sample(sampleValue uint64) (int, error)
}

// maxLinearScanSize caps the distribution size for which a linear scan beats
// heap traversal.
const maxLinearScanSize = 16

// NewWeighted returns a sampler appropriate for a distribution over size
// elements.
func NewWeighted(size int) Weighted {
	if size <= maxLinearScanSize {
		return &weightedLinear{}
	}
	return &weightedHeap{}
}
