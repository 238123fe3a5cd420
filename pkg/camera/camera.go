// Package camera provides a headless free-fly camera: Euler-angle
// orientation, view/projection matrices, and a frustum usable for
// culling chunk renderables (spec.md §9, REDESIGN FLAGS). It carries no
// window, input, or GPU dependency; a caller feeds it position and
// rotation deltas from whatever input source it has.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultMoveSpeed   = 10.0
	DefaultRotateSpeed = 0.1

	DefaultYaw   = -90.0 // facing -Z
	DefaultPitch = 0.0

	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	MaxPitch = 89.0
	MinPitch = -89.0
)

// Camera is a 3D viewpoint: position, Euler-angle orientation, and the
// derived basis/projection matrices used for both rendering and
// frustum culling.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	yaw   float32
	pitch float32

	fov         float32
	moveSpeed   float32
	rotateSpeed float32

	near, far  float32
	projection mgl32.Mat4
	width      int
	height     int
}

// New creates a camera at position with sensible defaults and an
// 800x600 projection.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		front:       mgl32.Vec3{0, 0, -1},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		fov:         DefaultFOV,
		moveSpeed:   DefaultMoveSpeed,
		rotateSpeed: DefaultRotateSpeed,
		near:        0.1,
		far:         1000.0,
		width:       800,
		height:      600,
	}
	c.updateCameraVectors()
	c.updateProjectionMatrix()
	return c
}

func (c *Camera) updateCameraVectors() {
	front := mgl32.Vec3{
		float32(math.Cos(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.pitch)))),
		float32(math.Sin(float64(mgl32.DegToRad(c.yaw))) * math.Cos(float64(mgl32.DegToRad(c.pitch)))),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	aspect := float32(c.width) / float32(c.height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, c.near, c.far)
}

// SetViewport updates the projection matrix for a new aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the current look-at view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the current perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Translate moves the camera by delta in world space.
func (c *Camera) Translate(delta mgl32.Vec3) {
	c.position = c.position.Add(delta)
}

// Orientation returns the camera's yaw and pitch, in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// SetRotation sets yaw and pitch, clamping pitch to avoid gimbal lock.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	if pitch > MaxPitch {
		pitch = MaxPitch
	}
	if pitch < MinPitch {
		pitch = MinPitch
	}
	c.pitch = pitch
	c.updateCameraVectors()
}

// LookAt points the camera at target, recomputing yaw and pitch.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position).Normalize()
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(direction.Z()), float64(direction.X()))))
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(direction.Y()))))
	c.updateCameraVectors()
}

// FrontVector returns the camera's forward direction.
func (c *Camera) FrontVector() mgl32.Vec3 { return c.front }

// RightVector returns the camera's right direction.
func (c *Camera) RightVector() mgl32.Vec3 { return c.right }

// UpVector returns the camera's up direction.
func (c *Camera) UpVector() mgl32.Vec3 { return c.up }

// SetFOV sets the vertical field of view in degrees, clamped to
// [MinFOV, MaxFOV], and recomputes the projection matrix.
func (c *Camera) SetFOV(fov float32) {
	if fov < MinFOV {
		fov = MinFOV
	}
	if fov > MaxFOV {
		fov = MaxFOV
	}
	c.fov = fov
	c.updateProjectionMatrix()
}

// Frustum derives the current view frustum from this camera's
// view-projection matrix, for AABB culling of chunk renderables.
func (c *Camera) Frustum() *Frustum {
	return NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
}
