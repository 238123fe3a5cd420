package chunkgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorldToChunkPosition_FloorDividesNegativeCoordinates(t *testing.T) {
	const size = 16

	cases := []struct {
		world int32
		want  int32
	}{
		{0, 0},
		{15, 0},
		{16, 1},
		{-1, -1},
		{-16, -1},
		{-17, -2},
	}
	for _, c := range cases {
		got := WorldToChunkPosition(c.world, 0, 0, size)
		assert.Equalf(t, c.want, got.X, "world x=%d", c.world)
	}
}

func TestChunkOrigin_RoundTripsWithWorldToChunkPosition(t *testing.T) {
	const size = 32
	pos := ChunkPosition{X: -3, Y: 2, Z: 5}
	origin := pos.ChunkOrigin(size)

	back := WorldToChunkPosition(origin.X, origin.Y, origin.Z, size)
	assert.Equal(t, pos, back)

	// One voxel inside the far corner of the chunk still maps back to it.
	back = WorldToChunkPosition(origin.X+size-1, origin.Y+size-1, origin.Z+size-1, size)
	assert.Equal(t, pos, back)
}

func TestChunkPosition_AddSub_AreInverses(t *testing.T) {
	a := ChunkPosition{X: 1, Y: -2, Z: 3}
	b := ChunkPosition{X: -4, Y: 5, Z: -6}

	assert.Equal(t, a, a.Add(b).Sub(b))
}
