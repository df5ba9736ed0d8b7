// Copyright (C) 2024-2026, Pure Chance Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purechance/purechance/sampler"
)

func TestIntegersBounds(t *testing.T) {
	tests := []struct {
		lower int64
		upper int64
	}{
		{lower: 0, upper: 1},
		{lower: 0, upper: 10},
		{lower: -5, upper: 5},
		{lower: -10, upper: -3},
		{lower: math.MinInt64, upper: math.MaxInt64},
	}

	for _, tt := range tests {
		stream, err := Integers(100, tt.lower, tt.upper, IntSeed(101))
		require.NoError(t, err)

		values, err := stream.Collect()
		require.NoError(t, err)
		require.Len(t, values, 100)
		for _, v := range values {
			require.GreaterOrEqual(t, v, tt.lower)
			require.Less(t, v, tt.upper)
		}
	}
}

func TestIntegersSingleElementRange(t *testing.T) {
	stream, err := Integers(10, 7, 8, IntSeed(101))
	require.NoError(t, err)

	values, err := stream.Collect()
	require.NoError(t, err)
	for _, v := range values {
		require.Equal(t, int64(7), v)
	}
}

func TestIntegersExhaustion(t *testing.T) {
	stream, err := Integers(2, 0, 10, IntSeed(101))
	require.NoError(t, err)
	require.Equal(t, 2, stream.Remaining())

	_, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, 1, stream.Remaining())

	_, err = stream.Next()
	require.NoError(t, err)
	require.Zero(t, stream.Remaining())

	_, err = stream.Next()
	require.ErrorIs(t, err, ErrExhausted)

	// A consumed stream stays consumed.
	values, err := stream.Collect()
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestIntegersLazyEmptyRange(t *testing.T) {
	// Construction succeeds even with an impossible range.
	stream, err := Integers(3, 5, 5, IntSeed(101))
	require.NoError(t, err)

	_, err = stream.Next()
	require.ErrorIs(t, err, ErrEmptyRange)

	// The failing draw produced nothing.
	require.Equal(t, 3, stream.Remaining())
	_, err = stream.Next()
	require.ErrorIs(t, err, ErrEmptyRange)

	stream, err = Integers(3, 5, 4, IntSeed(101))
	require.NoError(t, err)
	_, err = stream.Collect()
	require.ErrorIs(t, err, ErrEmptyRange)
}

func TestIntegersSizeZeroSkipsValidation(t *testing.T) {
	stream, err := Integers(0, 5, 5, IntSeed(101))
	require.NoError(t, err)

	_, err = stream.Next()
	require.ErrorIs(t, err, ErrExhausted)

	values, err := stream.Collect()
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestIntegersSizeZeroDoesNotAdvance(t *testing.T) {
	rng := sampler.NewSeededRNG(101)
	twin := sampler.NewSeededRNG(101)

	stream, err := Integers(0, 0, 10, RNGSeed(rng))
	require.NoError(t, err)
	_, err = stream.Collect()
	require.NoError(t, err)

	require.Equal(t, twin.Float64(), rng.Float64())
}

func TestIntegersNegativeSize(t *testing.T) {
	_, err := Integers(-1, 0, 10, IntSeed(101))
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestIntegersDeterminism(t *testing.T) {
	a, err := Integers(50, -100, 100, IntSeed(101))
	require.NoError(t, err)
	b, err := Integers(50, -100, 100, IntSeed(101))
	require.NoError(t, err)

	valuesA, err := a.Collect()
	require.NoError(t, err)
	valuesB, err := b.Collect()
	require.NoError(t, err)
	require.Equal(t, valuesA, valuesB)
}

func TestIntegersConsumesSharedGenerator(t *testing.T) {
	rng := sampler.NewSeededRNG(101)

	stream, err := Integers(3, 0, 10, RNGSeed(rng))
	require.NoError(t, err)

	// Each element advances the shared generator exactly once.
	whole, err := Integers(3, 0, 10, IntSeed(101))
	require.NoError(t, err)
	wantValues, err := whole.Collect()
	require.NoError(t, err)

	gotValues, err := stream.Collect()
	require.NoError(t, err)
	require.Equal(t, wantValues, gotValues)
}
