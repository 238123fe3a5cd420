package chunkgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chebyshev(v Vec3i) int32 {
	m := v.X
	if abs(v.Y) > abs(m) {
		m = v.Y
	}
	if abs(v.Z) > abs(m) {
		m = v.Z
	}
	return abs(m)
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestLayerCount_MatchesFormula(t *testing.T) {
	for l := 0; l <= 6; l++ {
		want := 1
		if l > 0 {
			want = 24*l*l + 2
		}
		assert.Equalf(t, want, LayerCount(l), "layer %d", l)
	}
}

func TestLayerCount_NegativeLayerPanics(t *testing.T) {
	assert.Panics(t, func() { LayerCount(-1) })
}

func TestLayer_EveryPositionIsAtExactlyThatChebyshevDistance(t *testing.T) {
	for l := 0; l <= 4; l++ {
		positions := Layer(l)
		require.Lenf(t, positions, LayerCount(l), "layer %d", l)
		for _, p := range positions {
			assert.Equalf(t, int32(l), chebyshev(p), "layer %d position %+v", l, p)
		}
	}
}

func TestLayer_PositionsAreUnique(t *testing.T) {
	for l := 0; l <= 3; l++ {
		seen := make(map[Vec3i]bool)
		for _, p := range Layer(l) {
			require.Falsef(t, seen[p], "layer %d produced duplicate position %+v", l, p)
			seen[p] = true
		}
	}
}

func TestCumulativeCount_IsRunningSumOfLayerCounts(t *testing.T) {
	sum := 0
	for l := 0; l <= 5; l++ {
		sum += LayerCount(l)
		assert.Equal(t, sum, CumulativeCount(l))
	}
}

func TestRange_MatchesPositionAtIndexForEachSlot(t *testing.T) {
	positions := Range(0, CumulativeCount(2))
	for i, p := range positions {
		assert.Equal(t, PositionAtIndex(i), p)
	}
}

func TestRange_EmptyWhenFromEqualsTo(t *testing.T) {
	assert.Empty(t, Range(5, 5))
}

func TestRange_PanicsWhenToBeforeFrom(t *testing.T) {
	assert.Panics(t, func() { Range(5, 4) })
}

func TestPositionAtIndex_ZeroIsCenterChunk(t *testing.T) {
	assert.Equal(t, Vec3i{}, PositionAtIndex(0))
}

func TestLayer_CoversEveryCubeShellCellExactlyOnce(t *testing.T) {
	const l = 2
	seen := make(map[Vec3i]bool)
	for _, p := range Layer(l) {
		seen[p] = true
	}

	count := 0
	for x := int32(-l); x <= l; x++ {
		for y := int32(-l); y <= l; y++ {
			for z := int32(-l); z <= l; z++ {
				v := Vec3i{x, y, z}
				if chebyshev(v) == l {
					require.Truef(t, seen[v], "shell layer %d missing cube-surface cell %+v", l, v)
					count++
				}
			}
		}
	}
	assert.Equal(t, count, LayerCount(l))
}
