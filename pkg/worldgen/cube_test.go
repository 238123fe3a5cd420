package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
)

func TestWrapMod_WrapsNegativeIntoRange(t *testing.T) {
	assert.Equal(t, int64(0), wrapMod(0, 10))
	assert.Equal(t, int64(9), wrapMod(-1, 10))
	assert.Equal(t, int64(5), wrapMod(15, 10))
	assert.Equal(t, int64(0), wrapMod(-10, 10))
}

func TestLerpByte_ClampsAndInterpolates(t *testing.T) {
	assert.Equal(t, byte(0), lerpByte(0, 100, 0))
	assert.Equal(t, byte(100), lerpByte(0, 100, 1))
	assert.Equal(t, byte(50), lerpByte(0, 100, 0.5))
}

func TestLerpColor_InterpolatesEachChannel(t *testing.T) {
	c1 := voxel.Color{R: 0, G: 0, B: 0}
	c2 := voxel.Color{R: 100, G: 200, B: 50}
	got := lerpColor(c1, c2, 0.5)
	assert.Equal(t, voxel.Color{R: 50, G: 100, B: 25}, got)
}

func TestCubeGenerator_GenerateChunk_OutOfBoundsChunkIsEmpty(t *testing.T) {
	g := NewCubeGenerator(1, 32, 32, 32)
	ds := newTestDataset()

	// dims are 32^3 with chunk size 16: valid chunk indices are 0 and 1
	// on each axis. Index 2 is out of bounds and must return an empty tree.
	tree := g.GenerateChunk(ds, chunkgrid.ChunkPosition{X: 2, Y: 0, Z: 0}, 16)
	assert.Equal(t, 1, tree.LeafCount())
	_, ok := tree.Get(0, 0, 0)
	assert.False(t, ok)
}

func TestCubeGenerator_GenerateChunk_NegativeOriginIsEmpty(t *testing.T) {
	g := NewCubeGenerator(1, 32, 32, 32)
	ds := newTestDataset()

	tree := g.GenerateChunk(ds, chunkgrid.ChunkPosition{X: -1, Y: 0, Z: 0}, 16)
	assert.Equal(t, 1, tree.LeafCount())
}

func TestCubeGenerator_GenerateChunk_IsDeterministic(t *testing.T) {
	g1 := NewCubeGenerator(99, 64, 64, 64)
	g2 := NewCubeGenerator(99, 64, 64, 64)
	ds1, ds2 := newTestDataset(), newTestDataset()

	pos := chunkgrid.ChunkPosition{X: 1, Y: 1, Z: 1}
	t1 := g1.GenerateChunk(ds1, pos, 16)
	t2 := g2.GenerateChunk(ds2, pos, 16)

	for x := uint32(0); x < 16; x++ {
		for y := uint32(0); y < 16; y++ {
			for z := uint32(0); z < 16; z++ {
				v1, ok1 := t1.Get(x, y, z)
				v2, ok2 := t2.Get(x, y, z)
				if ok1 != ok2 {
					t.Fatalf("occupancy mismatch at (%d,%d,%d)", x, y, z)
				}
				if ok1 && v1.Common.Color != v2.Common.Color {
					t.Fatalf("color mismatch at (%d,%d,%d)", x, y, z)
				}
			}
		}
	}
}
