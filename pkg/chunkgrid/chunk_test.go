package chunkgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

func TestNewChunk_StartsEmptyWithNoData(t *testing.T) {
	c := NewChunk(ChunkPosition{X: 1, Y: 2, Z: 3})

	assert.Equal(t, StateEmpty, c.State())
	assert.Nil(t, c.Bitmask())
	assert.Nil(t, c.Octree())
	assert.Nil(t, c.Faces())
	assert.Equal(t, ChunkPosition{X: 1, Y: 2, Z: 3}, c.Position())
}

func TestChunk_SetData_TransitionsEmptyToDirtyAndDerivesBitmask(t *testing.T) {
	c := NewChunk(ChunkPosition{})
	tree := octree.FromMaxSize[*voxel.Voxel](8)
	v := &voxel.Voxel{Common: &voxel.CommonData{}}
	tree.Insert(1, 1, 1, v)

	c.SetData(tree)

	require.Equal(t, StateDirty, c.State())
	require.NotNil(t, c.Bitmask())
	assert.True(t, c.Bitmask().IsSet(1, 1, 1))
	assert.Same(t, tree, c.Octree())
}

func TestChunk_SetFaces_TransitionsDirtyToMeshed(t *testing.T) {
	c := NewChunk(ChunkPosition{})
	c.SetData(octree.FromMaxSize[*voxel.Voxel](8))

	faces := []Face{{Pos: Vec3i{1, 2, 3}, Direction: DirPosY}}
	c.SetFaces(faces)

	assert.Equal(t, StateMeshed, c.State())
	assert.Equal(t, faces, c.Faces())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "dirty", StateDirty.String())
	assert.Equal(t, "meshed", StateMeshed.String())
}

func TestDirection_Offset(t *testing.T) {
	cases := map[Direction]Vec3i{
		DirPosY: {0, 1, 0},
		DirNegY: {0, -1, 0},
		DirPosX: {1, 0, 0},
		DirNegX: {-1, 0, 0},
		DirPosZ: {0, 0, 1},
		DirNegZ: {0, 0, -1},
	}
	for dir, want := range cases {
		assert.Equal(t, want, dir.Offset())
	}
}

func TestDirection_Offset_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { Direction(0).Offset() })
}
