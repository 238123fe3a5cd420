package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
)

func TestClampByte_ClampsBothEnds(t *testing.T) {
	assert.Equal(t, byte(0), clampByte(-5))
	assert.Equal(t, byte(255), clampByte(500))
	assert.Equal(t, byte(100), clampByte(100))
}

func TestPeaksAndValleysGenerator_FarBelowAmplitudeIsFullySolid(t *testing.T) {
	g := NewPeaksAndValleysGenerator(1)
	ds := newTestDataset()

	// origin.Y negative enough that worldOriginY+size is well under
	// -amplitude: the chunk must short-circuit to a single solid fill.
	pos := chunkgrid.ChunkPosition{X: 0, Y: -100, Z: 0}
	tree := g.GenerateChunk(ds, pos, 16)

	assert.Equal(t, 1, tree.LeafCount())
	_, ok := tree.Get(0, 0, 0)
	assert.True(t, ok)
}

func TestPeaksAndValleysGenerator_FarAboveAmplitudeIsEmpty(t *testing.T) {
	g := NewPeaksAndValleysGenerator(1)
	ds := newTestDataset()

	pos := chunkgrid.ChunkPosition{X: 0, Y: 100, Z: 0}
	tree := g.GenerateChunk(ds, pos, 16)

	assert.Equal(t, 1, tree.LeafCount())
	_, ok := tree.Get(0, 0, 0)
	assert.False(t, ok)
}

func TestPeaksAndValleysGenerator_NearSurfaceChunkMixesSolidAndAir(t *testing.T) {
	g := NewPeaksAndValleysGenerator(1)
	ds := newTestDataset()

	pos := chunkgrid.ChunkPosition{X: 0, Y: 0, Z: 0}
	tree := g.GenerateChunk(ds, pos, 16)

	solid, air := 0, 0
	for x := uint32(0); x < 16; x++ {
		for y := uint32(0); y < 16; y++ {
			for z := uint32(0); z < 16; z++ {
				if _, ok := tree.Get(x, y, z); ok {
					solid++
				} else {
					air++
				}
			}
		}
	}
	assert.Greater(t, solid, 0, "a chunk straddling the surface band should contain some solid voxels")
	assert.Greater(t, air, 0, "a chunk straddling the surface band should contain some air")
}
