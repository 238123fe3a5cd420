// Package bitmask holds the per-chunk solidity bitmask the octree exports
// and the binary-greedy mesher consumes. Keeping it apart from both
// avoids an import cycle between them.
package bitmask

import "fmt"

// MaxSize is the largest supported chunk edge: one bit per column word.
const MaxSize = 64

// Axis names a bit-column direction. The bit position within a word is the
// coordinate along Axis; the word's (i, j) position is the coordinate
// along the other two axes, in ascending axis order.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ChunkBitmask holds three S*S arrays of 64-bit columns, one per axis, for
// a cubic chunk of edge Size. Bit k of column (i, j) on AxisX is set iff
// the voxel at (x=k, y=i, z=j) is solid, and symmetrically for the other
// two axes.
type ChunkBitmask struct {
	Size    int
	Columns [3][]uint64
}

// New allocates an empty bitmask for a chunk of the given edge length.
// size must be in [1, MaxSize]; anything else is a precondition violation
// the caller must not make (spec.md §8 boundary cases exercise exactly the
// two ends of this range).
func New(size int) *ChunkBitmask {
	if size < 1 || size > MaxSize {
		panic(fmt.Sprintf("bitmask: chunk size %d out of range [1, %d]", size, MaxSize))
	}
	b := &ChunkBitmask{Size: size}
	n := size * size
	for a := range b.Columns {
		b.Columns[a] = make([]uint64, n)
	}
	return b
}

// index maps a 2D column coordinate to its slot in a Columns[axis] slice.
func (b *ChunkBitmask) index(i, j int) int {
	return i*b.Size + j
}

// Column returns the raw 64-bit word for column (i, j) on axis.
func (b *ChunkBitmask) Column(axis Axis, i, j int) uint64 {
	return b.Columns[axis][b.index(i, j)]
}

// SetColumn overwrites the raw word for column (i, j) on axis.
func (b *ChunkBitmask) SetColumn(axis Axis, i, j int, word uint64) {
	b.Columns[axis][b.index(i, j)] = word
}

// widthMask returns the `width`-bit mask 0b0..01..1 shifted left by
// `offset`. A width of 64 or more returns the all-ones word directly
// instead of shifting by the word width (spec.md §9).
func widthMask(offset, width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return ((uint64(1) << uint(width)) - 1) << uint(offset)
}

// SetVoxel marks the unit cell (x, y, z) solid in all three axis arrays.
func (b *ChunkBitmask) SetVoxel(x, y, z int) {
	b.Columns[AxisX][b.index(y, z)] |= uint64(1) << uint(x)
	b.Columns[AxisY][b.index(x, z)] |= uint64(1) << uint(y)
	b.Columns[AxisZ][b.index(x, y)] |= uint64(1) << uint(z)
}

// SetCube marks every unit cell of the axis-aligned cube with corner
// (x0, y0, z0) and edge length s solid, touching only O(s^2) words per
// axis instead of O(s^3) individual bits — the same surface-cost shape
// spec.md §4.1 requires of Octree.Fill.
func (b *ChunkBitmask) SetCube(x0, y0, z0, s int) {
	xMask := widthMask(x0, s)
	yMask := widthMask(y0, s)
	zMask := widthMask(z0, s)

	for y := y0; y < y0+s; y++ {
		for z := z0; z < z0+s; z++ {
			b.Columns[AxisX][b.index(y, z)] |= xMask
		}
	}
	for x := x0; x < x0+s; x++ {
		for z := z0; z < z0+s; z++ {
			b.Columns[AxisY][b.index(x, z)] |= yMask
		}
	}
	for x := x0; x < x0+s; x++ {
		for y := y0; y < y0+s; y++ {
			b.Columns[AxisZ][b.index(x, y)] |= zMask
		}
	}
}

// IsSet reports whether the unit cell (x, y, z) is solid.
func (b *ChunkBitmask) IsSet(x, y, z int) bool {
	word := b.Columns[AxisZ][b.index(x, y)]
	return word&(uint64(1)<<uint(z)) != 0
}
