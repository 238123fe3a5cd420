package chunkgrid

import (
	"sync"

	"github.com/leterax/go-voxels/pkg/bitmask"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// State is a WorldChunk's position in the Empty -> Dirty -> Meshed
// lifecycle (spec.md §3).
type State int

const (
	StateEmpty State = iota
	StateDirty
	StateMeshed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDirty:
		return "dirty"
	case StateMeshed:
		return "meshed"
	default:
		return "unknown"
	}
}

// VoxelOctree is the concrete octree type chunks store: a sparse cube of
// interned voxel references.
type VoxelOctree = octree.Octree[*voxel.Voxel]

// Chunk is one cubic region of the world grid: its own lock guards the
// state machine, the generated octree and derived bitmask, and the last
// list of renderable faces produced by meshing. Neighbours are never
// stored by reference; the World looks them up by coordinate arithmetic
// in its chunk map.
type Chunk struct {
	mu sync.RWMutex

	pos   ChunkPosition
	state State
	tree  *VoxelOctree
	mask  *bitmask.ChunkBitmask
	faces []Face
}

// NewChunk returns an Empty chunk at pos with no data yet.
func NewChunk(pos ChunkPosition) *Chunk {
	return &Chunk{pos: pos, state: StateEmpty}
}

// Position returns the chunk's grid coordinate. Immutable, safe without
// locking.
func (c *Chunk) Position() ChunkPosition { return c.pos }

// State returns the chunk's current lifecycle state.
func (c *Chunk) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SetData installs a generated octree, derives its bitmask, and
// transitions Empty -> Dirty. Calling this on a non-Empty chunk is a
// caller error the worker pool is responsible for preventing by
// rechecking state before dispatch (spec.md §4.4 back-pressure rule).
func (c *Chunk) SetData(tree *VoxelOctree) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree = tree
	c.mask = tree.ToBitmask()
	c.state = StateDirty
}

// Bitmask returns the chunk's solidity bitmask, or nil if the chunk has
// no data yet (still Empty). Callers hold only a read lock for the
// duration of the read, matching the neighbour-bitmask access pattern
// spec.md §5 describes for remeshing.
func (c *Chunk) Bitmask() *bitmask.ChunkBitmask {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mask
}

// Octree returns the chunk's voxel octree, or nil if still Empty.
func (c *Chunk) Octree() *VoxelOctree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree
}

// Faces returns the last list of renderable faces produced by remesh.
// The returned slice is the chunk's own, not a copy; the read lock is
// held only while the slice header is read. SetFaces replaces the
// slice rather than mutating it.
func (c *Chunk) Faces() []Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.faces
}

// SetFaces installs a freshly computed face list and transitions
// Dirty -> Meshed.
func (c *Chunk) SetFaces(faces []Face) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.faces = faces
	c.state = StateMeshed
}
