package chunkgrid

import "github.com/leterax/go-voxels/pkg/voxel"

// Direction numbers an exposed voxel face. The numbering is part of the
// renderer ABI (spec.md §6) and must not be renumbered.
type Direction uint8

const (
	DirPosY Direction = 1
	DirNegY Direction = 2
	DirPosX Direction = 3
	DirNegX Direction = 4
	DirPosZ Direction = 5
	DirNegZ Direction = 6
)

// Offset returns the unit coordinate offset this direction points to.
func (d Direction) Offset() Vec3i {
	switch d {
	case DirPosY:
		return Vec3i{0, 1, 0}
	case DirNegY:
		return Vec3i{0, -1, 0}
	case DirPosX:
		return Vec3i{1, 0, 0}
	case DirNegX:
		return Vec3i{-1, 0, 0}
	case DirPosZ:
		return Vec3i{0, 0, 1}
	case DirNegZ:
		return Vec3i{0, 0, -1}
	default:
		panic("chunkgrid: invalid direction")
	}
}

// Face (VoxelSide) is a single externally visible unit square produced by
// the mesher: a world-space integer position, a fixed direction, and the
// owning voxel's color.
type Face struct {
	Pos       Vec3i
	Direction Direction
	Color     voxel.Color
}
