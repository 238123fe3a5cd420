// Package worldgen produces voxel content for newly allocated chunks.
// Each Generator implements one terrain recipe; the worker pool invokes
// whichever one a world was configured with whenever a chunk transitions
// out of Empty (spec.md §4.7).
package worldgen

import (
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// Generator fills one chunk's worth of voxels. origin is the chunk's
// grid position (not a world-space voxel coordinate); size is the
// world's CHUNK_SIZE. Implementations intern every voxel they place
// through dataset so repeated colors/materials share storage.
type Generator interface {
	GenerateChunk(dataset *voxel.Dataset, origin chunkgrid.ChunkPosition, size int) *chunkgrid.VoxelOctree
}

// Kind tags the built-in generator recipes, so a world can be configured
// by name (e.g. from a config file or flag) rather than by constructing
// a Generator value directly.
type Kind string

const (
	KindCube            Kind = "cube"
	KindFloatingIslands Kind = "floating_islands"
	KindPeaksAndValleys Kind = "peaks_and_valleys"
	KindPlainsWithTrees Kind = "plains_with_trees"
)

// New constructs the built-in generator named by kind, seeded from seed.
// It panics on an unknown kind, the same way a misconfigured dispatch
// table would in the teacher's own command handling.
func New(kind Kind, seed int64) Generator {
	switch kind {
	case KindCube:
		return NewCubeGenerator(seed, 128, 128, 128)
	case KindFloatingIslands:
		return NewFloatingIslandsGenerator(seed)
	case KindPeaksAndValleys:
		return NewPeaksAndValleysGenerator(seed)
	case KindPlainsWithTrees:
		return NewPlainsWithTreesGenerator(seed)
	default:
		panic("worldgen: unknown generator kind " + string(kind))
	}
}
