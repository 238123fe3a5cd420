// Package octree implements the sparse voxel container spec.md §4.1
// describes: a tree over a cube of edge 2^D, with automatic compaction of
// uniform subtrees and a bitmask export used by the face mesher.
package octree

import (
	"fmt"
	"math/bits"

	"github.com/leterax/go-voxels/pkg/bitmask"
)

// Vec3i is an unsigned coordinate triple inside an Octree's cube.
type Vec3i struct {
	X, Y, Z uint32
}

func (v Vec3i) offset(childIndex int, half uint32) Vec3i {
	return Vec3i{
		X: v.X + uint32(childIndex&1)*half,
		Y: v.Y + uint32((childIndex>>1)&1)*half,
		Z: v.Z + uint32((childIndex>>2)&1)*half,
	}
}

// node is either a leaf (children == nil), carrying a possibly-zero value,
// or a branch with exactly 8 ordered children. The zero value of V
// represents "empty" (e.g. a nil *voxel.Voxel).
type node[V comparable] struct {
	value    V
	children *[8]*node[V]
}

// Octree is a sparse container over a cube of edge 2^depth voxels.
type Octree[V comparable] struct {
	depth uint8
	root  *node[V]
}

// New creates an empty octree of the given depth (edge length 2^depth).
func New[V comparable](depth uint8) *Octree[V] {
	return &Octree[V]{depth: depth, root: &node[V]{}}
}

// FromMaxSize creates an octree whose edge is the smallest power of two
// covering maxSize voxels: depth = ceil(log2(max(1, maxSize))).
func FromMaxSize[V comparable](maxSize uint32) *Octree[V] {
	if maxSize < 1 {
		maxSize = 1
	}
	depth := uint8(bits.Len32(maxSize - 1))
	return New[V](depth)
}

// Depth returns the tree's depth D; the cube edge is 2^D.
func (t *Octree[V]) Depth() uint8 { return t.depth }

// EdgeLength returns the cube's edge length, 2^D.
func (t *Octree[V]) EdgeLength() uint32 { return uint32(1) << t.depth }

func (t *Octree[V]) checkBounds(c Vec3i) {
	edge := t.EdgeLength()
	if c.X >= edge || c.Y >= edge || c.Z >= edge {
		panic(fmt.Sprintf("octree: coordinate %+v out of range [0, %d)", c, edge))
	}
}

func childIndex(c Vec3i, bit uint8) int {
	return int((c.X>>bit)&1) | int(((c.Y>>bit)&1)<<1) | int(((c.Z>>bit)&1)<<2)
}

// expand turns a leaf into a branch, copying the leaf's value into all 8
// children (spec.md §4.1 "Algorithmic details").
func (n *node[V]) expand() {
	children := &[8]*node[V]{}
	for i := range children {
		children[i] = &node[V]{value: n.value}
	}
	n.children = children
}

// tryCompact collapses n to a single leaf if all 8 children are leaves
// sharing the same value (pointer identity for reference-typed V).
func tryCompact[V comparable](n *node[V]) {
	if n.children == nil {
		return
	}
	first := n.children[0]
	if first.children != nil {
		return
	}
	v := first.value
	for _, c := range n.children[1:] {
		if c.children != nil || c.value != v {
			return
		}
	}
	n.value = v
	n.children = nil
}

// setCell installs v at the unit cell c and returns the value that
// occupied it beforehand (the covering leaf's value, even if that leaf
// spanned a larger subcube).
func setCell[V comparable](n *node[V], depth, target uint8, c Vec3i, v V) V {
	if depth == target {
		old := n.value
		n.value = v
		return old
	}
	if n.children == nil {
		old := n.value
		var zero V
		if old == v && v == zero {
			// Nothing to change; avoid needlessly expanding an empty
			// subtree just to re-collapse it.
			return old
		}
		n.expand()
	}
	bit := target - depth - 1
	idx := childIndex(c, bit)
	old := setCell(n.children[idx], depth+1, target, c, v)
	tryCompact(n)
	return old
}

func getCell[V comparable](n *node[V], depth, target uint8, c Vec3i) V {
	if n.children == nil {
		return n.value
	}
	bit := target - depth - 1
	idx := childIndex(c, bit)
	return getCell(n.children[idx], depth+1, target, c)
}

// Insert places v at the unit cell (x, y, z). Out-of-range coordinates are
// a precondition violation and panic.
func (t *Octree[V]) Insert(x, y, z uint32, v V) {
	c := Vec3i{x, y, z}
	t.checkBounds(c)
	setCell(t.root, 0, t.depth, c, v)
}

// Remove clears the unit cell (x, y, z) and returns the value previously
// stored there, if any.
func (t *Octree[V]) Remove(x, y, z uint32) (V, bool) {
	c := Vec3i{x, y, z}
	t.checkBounds(c)
	var zero V
	old := setCell(t.root, 0, t.depth, c, zero)
	return old, old != zero
}

// Get returns the value stored at (x, y, z), which may be the value of a
// larger leaf covering that cell, and whether any value is present.
func (t *Octree[V]) Get(x, y, z uint32) (V, bool) {
	c := Vec3i{x, y, z}
	t.checkBounds(c)
	v := getCell(t.root, 0, t.depth, c)
	var zero V
	return v, v != zero
}

// overlaps reports whether the cube [origin, origin+size) intersects the
// inclusive AABB [from, to].
func overlaps(origin Vec3i, size uint32, from, to Vec3i) bool {
	maxX, maxY, maxZ := origin.X+size-1, origin.Y+size-1, origin.Z+size-1
	if maxX < from.X || origin.X > to.X {
		return false
	}
	if maxY < from.Y || origin.Y > to.Y {
		return false
	}
	if maxZ < from.Z || origin.Z > to.Z {
		return false
	}
	return true
}

// containedBy reports whether the cube [origin, origin+size) lies entirely
// inside the inclusive AABB [from, to].
func containedBy(origin Vec3i, size uint32, from, to Vec3i) bool {
	maxX, maxY, maxZ := origin.X+size-1, origin.Y+size-1, origin.Z+size-1
	return origin.X >= from.X && maxX <= to.X &&
		origin.Y >= from.Y && maxY <= to.Y &&
		origin.Z >= from.Z && maxZ <= to.Z
}

func fillNode[V comparable](n *node[V], depth, target uint8, origin Vec3i, size uint32, from, to Vec3i, v V) {
	if !overlaps(origin, size, from, to) {
		return
	}
	if containedBy(origin, size, from, to) {
		n.children = nil
		n.value = v
		return
	}
	if depth == target {
		// A unit cube can only be fully outside or fully contained; this
		// is an unreachable safety net mirroring the original recursion.
		n.children = nil
		n.value = v
		return
	}
	if n.children == nil {
		n.expand()
	}
	half := size / 2
	for i, child := range n.children {
		childOrigin := origin.offset(i, half)
		fillNode(child, depth+1, target, childOrigin, half, from, to, v)
	}
	tryCompact(n)
}

// Fill replaces every cell in the inclusive AABB [from, to] with v.
// Subtrees fully inside the box collapse to a single leaf in O(1); only
// subtrees straddling the boundary are recursed into, giving O(surface)
// cost for large uniform fills rather than O(volume).
func (t *Octree[V]) Fill(from, to Vec3i, v V) {
	t.checkBounds(from)
	t.checkBounds(to)
	fillNode(t.root, 0, t.depth, Vec3i{}, t.EdgeLength(), from, to, v)
}

// LeafCount returns the number of leaves in the tree, the diagnostic
// spec.md §8's compaction invariants are observed through.
func (t *Octree[V]) LeafCount() int {
	var count func(n *node[V]) int
	count = func(n *node[V]) int {
		if n.children == nil {
			return 1
		}
		total := 0
		for _, c := range n.children {
			total += count(c)
		}
		return total
	}
	return count(t.root)
}

// ToBitmask traverses the tree and sets, for every occupied unit voxel,
// the corresponding bit in all three per-axis column arrays. Whole
// uniform leaves are written in one O(size^2)-per-axis call rather than
// per unit cell.
func (t *Octree[V]) ToBitmask() *bitmask.ChunkBitmask {
	size := int(t.EdgeLength())
	b := bitmask.New(size)
	var zero V

	var walk func(n *node[V], origin Vec3i, sz uint32)
	walk = func(n *node[V], origin Vec3i, sz uint32) {
		if n.children == nil {
			if n.value != zero {
				b.SetCube(int(origin.X), int(origin.Y), int(origin.Z), int(sz))
			}
			return
		}
		half := sz / 2
		for i, child := range n.children {
			walk(child, origin.offset(i, half), half)
		}
	}
	walk(t.root, Vec3i{}, t.EdgeLength())
	return b
}

// FloodFillVisible performs the optional flood-fill visibility walk
// spec.md §9 documents as present in the original pipeline but superseded
// by the bitmask mesher. It is not used by meshing or the worker pool;
// it exists for diagnostics and tests that want to reason about reachable
// empty space from a seed cell.
func (t *Octree[V]) FloodFillVisible(from Vec3i) map[Vec3i]struct{} {
	t.checkBounds(from)
	var zero V
	if v, _ := t.Get(from.X, from.Y, from.Z); v != zero {
		return map[Vec3i]struct{}{}
	}

	visited := map[Vec3i]struct{}{from: {}}
	queue := []Vec3i{from}
	edge := t.EdgeLength()

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors := [6]Vec3i{
			{cur.X + 1, cur.Y, cur.Z},
			{cur.X, cur.Y + 1, cur.Z},
			{cur.X, cur.Y, cur.Z + 1},
		}
		if cur.X > 0 {
			neighbors[3] = Vec3i{cur.X - 1, cur.Y, cur.Z}
		} else {
			neighbors[3] = cur
		}
		if cur.Y > 0 {
			neighbors[4] = Vec3i{cur.X, cur.Y - 1, cur.Z}
		} else {
			neighbors[4] = cur
		}
		if cur.Z > 0 {
			neighbors[5] = Vec3i{cur.X, cur.Y, cur.Z - 1}
		} else {
			neighbors[5] = cur
		}

		for _, n := range neighbors {
			if n.X >= edge || n.Y >= edge || n.Z >= edge {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			if v, _ := t.Get(n.X, n.Y, n.Z); v != zero {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return visited
}
