// Package quadtree implements a 2D heightmap tree: a bottom-up tree of
// sampled values where every branch caches the minimum of its four
// children. Its one caller in this module is the plains-with-trees
// generator, which stores per-column surface heights in it to pick tree
// planting spots.
package quadtree

import (
	"fmt"
	"math"
)

// Vec2i is an unsigned 2D coordinate inside a Quadtree's area.
type Vec2i struct {
	X, Y uint32
}

func (v Vec2i) offset(childIndex int, half uint32) Vec2i {
	return Vec2i{
		X: v.X + uint32(childIndex&1)*half,
		Y: v.Y + uint32((childIndex>>1)&1)*half,
	}
}

type node struct {
	value    float64 // meaningful only at leaves
	min      float64 // min of this subtree's leaf values
	children *[4]*node
}

// Quadtree is an immutable-after-construction 2D tree of edge 2^depth
// cells, built by sampling a user function over every cell.
type Quadtree struct {
	depth uint8
	root  *node
}

// Sample returns the noise value at a leaf coordinate.
type Sample func(x, y uint32) float64

// Build samples fn over the full 2^depth x 2^depth grid and assembles the
// tree bottom-up, caching the minimum sample at every branch.
func Build(depth uint8, fn Sample) *Quadtree {
	root := buildNode(0, depth, Vec2i{}, uint32(1)<<depth, fn)
	return &Quadtree{depth: depth, root: root}
}

func buildNode(depth, target uint8, origin Vec2i, size uint32, fn Sample) *node {
	if depth == target {
		v := fn(origin.X, origin.Y)
		return &node{value: v, min: v}
	}
	half := size / 2
	children := &[4]*node{}
	min := math.Inf(1)
	for i := range children {
		child := buildNode(depth+1, target, origin.offset(i, half), half, fn)
		children[i] = child
		if child.min < min {
			min = child.min
		}
	}
	return &node{children: children, min: min}
}

// Depth returns the tree depth; the area edge is 2^depth cells.
func (q *Quadtree) Depth() uint8 { return q.depth }

// EdgeLength returns the area's edge length in cells, 2^depth.
func (q *Quadtree) EdgeLength() uint32 { return uint32(1) << q.depth }

// Min returns the minimum sampled value over the whole area.
func (q *Quadtree) Min() float64 { return q.root.min }

func (q *Quadtree) checkBounds(c Vec2i) {
	edge := q.EdgeLength()
	if c.X >= edge || c.Y >= edge {
		panic(fmt.Sprintf("quadtree: coordinate %+v out of range [0, %d)", c, edge))
	}
}

// Value returns the sampled value at leaf (x, y).
func (q *Quadtree) Value(x, y uint32) float64 {
	c := Vec2i{x, y}
	q.checkBounds(c)
	n := q.root
	origin := Vec2i{}
	size := q.EdgeLength()
	for n.children != nil {
		half := size / 2
		idx := 0
		if x >= origin.X+half {
			idx |= 1
		}
		if y >= origin.Y+half {
			idx |= 2
		}
		origin = origin.offset(idx, half)
		size = half
		n = n.children[idx]
	}
	return n.value
}

// RegionMin returns the cached minimum over the aligned square region of
// edge `size` with corner (x0, y0); size must be a power of two dividing
// the tree's edge. A non-negative result guarantees every column in the
// region is grounded (no air samples), letting a generator skip a
// per-column air check over that whole region instead of sampling it
// cell by cell.
func (q *Quadtree) RegionMin(x0, y0, size uint32) float64 {
	q.checkBounds(Vec2i{x0, y0})
	n := q.root
	origin := Vec2i{}
	sz := q.EdgeLength()
	for sz > size {
		half := sz / 2
		idx := 0
		if x0 >= origin.X+half {
			idx |= 1
		}
		if y0 >= origin.Y+half {
			idx |= 2
		}
		origin = origin.offset(idx, half)
		sz = half
		n = n.children[idx]
	}
	return n.min
}
