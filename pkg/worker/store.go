// Package worker runs chunk generation and meshing on a fixed pool of
// background goroutines, fed by a single condition-variable-guarded
// command queue and reporting back through a buffered result channel
// (spec.md §4.4, §7).
package worker

import (
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// LoaderID names a registered chunk loader (typically one per player or
// camera) whose simulation/render windows the pool tracks as it moves.
type LoaderID uint64

// Store is the chunk map a Pool operates on. The World facade implements
// it; Pool never constructs a chunk map itself, so tests can swap in a
// fake without pulling in pkg/world.
type Store interface {
	// Get returns the chunk at pos if it has already been created.
	Get(pos chunkgrid.ChunkPosition) (*chunkgrid.Chunk, bool)
	// GetOrCreate returns the chunk at pos, creating an Empty one if
	// absent. created reports whether this call is the one that made it.
	GetOrCreate(pos chunkgrid.ChunkPosition) (chunk *chunkgrid.Chunk, created bool)
	// MergeDataset folds newly interned materials/colors/voxels from a
	// generation pass into the world's shared dataset.
	MergeDataset(d *voxel.Dataset)
}
