package bitmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PanicsOutsideSizeRange(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(MaxSize + 1) })
	assert.NotPanics(t, func() { New(1) })
	assert.NotPanics(t, func() { New(MaxSize) })
}

func TestChunkBitmask_SetVoxel_SetsAllThreeAxes(t *testing.T) {
	b := New(8)
	b.SetVoxel(3, 5, 1)

	assert.True(t, b.IsSet(3, 5, 1))
	assert.True(t, b.Column(AxisX, 5, 1)&(1<<3) != 0)
	assert.True(t, b.Column(AxisY, 3, 1)&(1<<5) != 0)
	assert.True(t, b.Column(AxisZ, 3, 5)&(1<<1) != 0)

	assert.False(t, b.IsSet(3, 5, 2))
}

func TestChunkBitmask_SetCube_MatchesUnitByUnitSetVoxel(t *testing.T) {
	const size = 8
	cube := New(size)
	cube.SetCube(2, 1, 3, 4)

	voxels := New(size)
	for x := 2; x < 6; x++ {
		for y := 1; y < 5; y++ {
			for z := 3; z < 7; z++ {
				voxels.SetVoxel(x, y, z)
			}
		}
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				require.Equalf(t, voxels.IsSet(x, y, z), cube.IsSet(x, y, z), "mismatch at (%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestChunkBitmask_SetCube_FullWidthAtMaxSizeDoesNotPanic(t *testing.T) {
	b := New(MaxSize)
	assert.NotPanics(t, func() { b.SetCube(0, 0, 0, MaxSize) })
	assert.True(t, b.IsSet(0, 0, 0))
	assert.True(t, b.IsSet(MaxSize-1, MaxSize-1, MaxSize-1))
}

func TestWidthMask_ClampsShiftAtFullWidth(t *testing.T) {
	assert.Equal(t, ^uint64(0), widthMask(0, 64))
	assert.Equal(t, uint64(0b111), widthMask(0, 3))
	assert.Equal(t, uint64(0b111000), widthMask(3, 3))
}
