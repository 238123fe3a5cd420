package voxel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_InternColorAndMaterial_ReturnsSameValueOnRepeat(t *testing.T) {
	d := NewDataset()

	c1 := d.InternColor("grass", Color{R: 10, G: 200, B: 10})
	c2 := d.InternColor("grass", Color{R: 255, G: 255, B: 255})
	assert.Equal(t, c1, c2, "second Intern call for the same name must return the first value, not the new one")

	m1 := d.InternMaterial("rock", Material{Density: 10})
	m2 := d.InternMaterial("rock", Material{Density: 999})
	assert.Equal(t, m1, m2)
}

func TestDataset_InternCommonData_SharesPointerForEqualKey(t *testing.T) {
	d := NewDataset()
	c := Color{R: 1, G: 2, B: 3}
	m := Material{Density: 5}

	a := d.InternCommonData(c, m)
	b := d.InternCommonData(c, m)
	assert.Same(t, a, b, "same (color, material) pair must intern to the same *CommonData")

	other := d.InternCommonData(Color{R: 1, G: 2, B: 4}, m)
	assert.NotSame(t, a, other)
}

func TestDataset_InternVoxel_SharesPointerForEqualTags(t *testing.T) {
	d := NewDataset()
	common := d.InternCommonData(Color{R: 1, G: 2, B: 3}, Material{Density: 5})

	v1 := d.InternVoxel(common, nil)
	v2 := d.InternVoxel(common, nil)
	assert.Same(t, v1, v2)

	tagged := d.InternVoxel(common, []string{"flammable"})
	assert.NotSame(t, v1, tagged)
}

func TestDataset_Intern_IsIdempotentAndGrowsLenOncePerDistinctName(t *testing.T) {
	d := NewDataset()

	v1 := d.Intern("grass", Color{R: 10, G: 200, B: 10}, Material{Density: 10})
	v2 := d.Intern("grass", Color{R: 10, G: 200, B: 10}, Material{Density: 10})
	require.Same(t, v1, v2)
	assert.Equal(t, 1, d.Len())

	d.Intern("dirt", Color{R: 90, G: 60, B: 20}, Material{Density: 20})
	assert.Equal(t, 2, d.Len())
}

func TestDataset_Merge_LastWriteWinsAndGrowsTargetLen(t *testing.T) {
	d := NewDataset()
	d.Intern("grass", Color{R: 10, G: 200, B: 10}, Material{Density: 10})

	other := NewDataset()
	other.Intern("dirt", Color{R: 90, G: 60, B: 20}, Material{Density: 20})
	overwritten := other.Intern("grass", Color{R: 10, G: 200, B: 10}, Material{Density: 10})

	d.Merge(other)

	assert.Equal(t, 2, d.Len())
	v, ok := d.voxels[voxelKey(overwritten.Common, nil)]
	require.True(t, ok)
	assert.Same(t, overwritten, v, "merge must overwrite the target's entry for a shared key with other's value")
}
