package camera

import "github.com/go-gl/mathgl/mgl32"

// IntersectResult classifies an AABB against a Frustum.
type IntersectResult int

const (
	Outside IntersectResult = iota
	Intersect
	Inside
)

func (r IntersectResult) String() string {
	switch r {
	case Outside:
		return "outside"
	case Intersect:
		return "intersect"
	case Inside:
		return "inside"
	default:
		return "unknown"
	}
}

// plane is a normalized half-space ax + by + cz + d >= 0.
type plane struct {
	normal mgl32.Vec3
	d      float32
}

func (p plane) distance(pt mgl32.Vec3) float32 {
	return p.normal.Dot(pt) + p.d
}

// Frustum is the six half-spaces of a camera's view volume, extracted
// from its combined view-projection matrix using the Gribb-Hartmann
// method: each plane falls directly out of a row sum/difference of the
// matrix, with no per-plane trigonometry needed.
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// NewFrustum derives a Frustum from a projection*view matrix.
func NewFrustum(viewProjection mgl32.Mat4) *Frustum {
	row0 := viewProjection.Row(0)
	row1 := viewProjection.Row(1)
	row2 := viewProjection.Row(2)
	row3 := viewProjection.Row(3)

	raw := [6]mgl32.Vec4{
		row3.Add(row0),
		row3.Sub(row0),
		row3.Add(row1),
		row3.Sub(row1),
		row3.Add(row2),
		row3.Sub(row2),
	}

	var f Frustum
	for i, v := range raw {
		n := mgl32.Vec3{v[0], v[1], v[2]}
		length := n.Len()
		if length == 0 {
			length = 1
		}
		f.planes[i] = plane{normal: n.Mul(1 / length), d: v[3] / length}
	}
	return &f
}

// IntersectsAABB classifies the axis-aligned box [min, max] against the
// frustum: Outside if any plane fully excludes it, Inside if every
// plane fully contains it, Intersect otherwise.
func (f *Frustum) IntersectsAABB(min, max mgl32.Vec3) IntersectResult {
	result := Inside

	for _, p := range f.planes {
		var pos, neg mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if p.normal[axis] >= 0 {
				pos[axis] = max[axis]
				neg[axis] = min[axis]
			} else {
				pos[axis] = min[axis]
				neg[axis] = max[axis]
			}
		}

		if p.distance(pos) < 0 {
			return Outside
		}
		if p.distance(neg) < 0 {
			result = Intersect
		}
	}

	return result
}
