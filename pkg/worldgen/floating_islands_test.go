package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
)

func TestFloatingIslandsGenerator_SetColors_OverridesBothColors(t *testing.T) {
	g := NewFloatingIslandsGenerator(1)
	interior := voxel.Color{R: 9, G: 9, B: 9}
	top := voxel.Color{R: 1, G: 2, B: 3}
	g.SetColors(interior, top)

	assert.Equal(t, interior, g.color)
	assert.Equal(t, top, g.colorTop)
}

func TestFloatingIslandsGenerator_GenerateChunk_IsDeterministic(t *testing.T) {
	g1 := NewFloatingIslandsGenerator(5)
	g2 := NewFloatingIslandsGenerator(5)
	ds1, ds2 := newTestDataset(), newTestDataset()

	pos := chunkgrid.ChunkPosition{X: 2, Y: 4, Z: -1}
	t1 := g1.GenerateChunk(ds1, pos, 16)
	t2 := g2.GenerateChunk(ds2, pos, 16)

	for x := uint32(0); x < 16; x++ {
		for y := uint32(0); y < 16; y++ {
			for z := uint32(0); z < 16; z++ {
				_, ok1 := t1.Get(x, y, z)
				_, ok2 := t2.Get(x, y, z)
				require.Equal(t, ok1, ok2)
			}
		}
	}
}
