// Package mesher implements the binary-greedy face mesher: given a
// chunk's solidity bitmask and its 26 neighbours' bitmasks, it produces
// the exact set of externally visible unit faces using bit-parallel
// column operations, one pass per axis (spec.md §4.2).
package mesher

import (
	"errors"
	"math/bits"

	"github.com/leterax/go-voxels/pkg/bitmask"
	"github.com/leterax/go-voxels/pkg/chunkgrid"
	"github.com/leterax/go-voxels/pkg/octree"
	"github.com/leterax/go-voxels/pkg/voxel"
)

// ErrNotReady is returned when one of the 26 neighbours has no bitmask
// yet (its chunk hasn't been generated). The caller is expected to retry
// once that neighbour becomes Dirty (spec.md §4.2 Failure, §7).
var ErrNotReady = errors.New("mesher: a neighbour chunk is not ready")

// NeighborOffsets enumerates the 26 signed unit offsets in {-1,0,1}^3
// excluding the zero offset, in a fixed dx-outer, dy-middle, dz-inner
// order. neighborIndexOf is the inverse of this table.
var NeighborOffsets, neighborIndexOf = buildNeighborOffsets()

func buildNeighborOffsets() ([26]chunkgrid.Vec3i, map[[3]int32]int) {
	var offsets [26]chunkgrid.Vec3i
	index := make(map[[3]int32]int, 26)
	i := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				off := chunkgrid.Vec3i{X: int32(dx), Y: int32(dy), Z: int32(dz)}
				offsets[i] = off
				index[[3]int32{off.X, off.Y, off.Z}] = i
				i++
			}
		}
	}
	return offsets, index
}

// NeighborIndex returns this offset's slot in NeighborOffsets / a
// Neighbors array. Panics if (dx, dy, dz) is not a unit offset.
func NeighborIndex(dx, dy, dz int32) int {
	idx, ok := neighborIndexOf[[3]int32{dx, dy, dz}]
	if !ok {
		panic("mesher: not a valid neighbour offset")
	}
	return idx
}

// Neighbors holds the 26 neighbouring chunks' bitmasks, ordered per
// NeighborOffsets. A nil entry means that neighbour hasn't been
// generated yet.
type Neighbors [26]*bitmask.ChunkBitmask

// Ready reports whether every neighbour has a bitmask.
func (n *Neighbors) Ready() bool {
	for _, m := range n {
		if m == nil {
			return false
		}
	}
	return true
}

func (n *Neighbors) get(dx, dy, dz int32) *bitmask.ChunkBitmask {
	return n[NeighborIndex(dx, dy, dz)]
}

func fullMask(size int) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(size)) - 1
}

// Mesh computes the exposed faces of one chunk. origin is the chunk's
// world-space minimum corner voxel. tree is the chunk's own octree,
// queried once per emitted face to resolve its color.
//
// Mesh returns ErrNotReady, writing no faces, if any of the 26 neighbours
// is missing its bitmask.
func Mesh(mask *bitmask.ChunkBitmask, neighbors *Neighbors, origin chunkgrid.Vec3i, tree *octree.Octree[*voxel.Voxel]) ([]chunkgrid.Face, error) {
	if !neighbors.Ready() {
		return nil, ErrNotReady
	}

	size := mask.Size
	full := fullMask(size)
	var faces []chunkgrid.Face

	type axisSpec struct {
		axis               bitmask.Axis
		plusDir, minusDir  chunkgrid.Direction
		plusOff, minusOff  chunkgrid.Vec3i
		cellAt             func(i, j, k int) (x, y, z int)
	}

	specs := [3]axisSpec{
		{
			axis: bitmask.AxisX, plusDir: chunkgrid.DirPosX, minusDir: chunkgrid.DirNegX,
			plusOff: chunkgrid.Vec3i{X: 1}, minusOff: chunkgrid.Vec3i{X: -1},
			cellAt: func(i, j, k int) (int, int, int) { return k, i, j },
		},
		{
			axis: bitmask.AxisY, plusDir: chunkgrid.DirPosY, minusDir: chunkgrid.DirNegY,
			plusOff: chunkgrid.Vec3i{Y: 1}, minusOff: chunkgrid.Vec3i{Y: -1},
			cellAt: func(i, j, k int) (int, int, int) { return i, k, j },
		},
		{
			axis: bitmask.AxisZ, plusDir: chunkgrid.DirPosZ, minusDir: chunkgrid.DirNegZ,
			plusOff: chunkgrid.Vec3i{Z: 1}, minusOff: chunkgrid.Vec3i{Z: -1},
			cellAt: func(i, j, k int) (int, int, int) { return i, j, k },
		},
	}

	for _, spec := range specs {
		plusNeighbor := neighbors.get(spec.plusOff.X, spec.plusOff.Y, spec.plusOff.Z)
		minusNeighbor := neighbors.get(spec.minusOff.X, spec.minusOff.Y, spec.minusOff.Z)

		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				c := mask.Column(spec.axis, i, j)
				if c == 0 {
					continue
				}
				na := minusNeighbor.Column(spec.axis, i, j)
				nb := plusNeighbor.Column(spec.axis, i, j)

				naTop := (na >> uint(size-1)) & 1
				nbBottom := nb & 1

				facePlus := c &^ ((c >> 1) | (nbBottom << uint(size-1)))
				faceMinus := c &^ ((c << 1) | naTop)
				facePlus &= full
				faceMinus &= full

				emitSet(&faces, facePlus, spec.plusDir, i, j, spec.cellAt, origin, tree)
				emitSet(&faces, faceMinus, spec.minusDir, i, j, spec.cellAt, origin, tree)
			}
		}
	}

	return faces, nil
}

func emitSet(
	faces *[]chunkgrid.Face,
	m uint64,
	dir chunkgrid.Direction,
	i, j int,
	cellAt func(i, j, k int) (x, y, z int),
	origin chunkgrid.Vec3i,
	tree *octree.Octree[*voxel.Voxel],
) {
	for m != 0 {
		k := bits.TrailingZeros64(m)
		x, y, z := cellAt(i, j, k)
		v, ok := tree.Get(uint32(x), uint32(y), uint32(z))
		if ok {
			*faces = append(*faces, chunkgrid.Face{
				Pos: chunkgrid.Vec3i{
					X: origin.X + int32(x),
					Y: origin.Y + int32(y),
					Z: origin.Z + int32(z),
				},
				Direction: dir,
				Color:     v.Common.Color,
			})
		}
		m &= m - 1
	}
}
