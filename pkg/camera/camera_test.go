package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNew_SetsDocumentedDefaults(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3})

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Position())
	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(DefaultYaw), yaw)
	assert.Equal(t, float32(DefaultPitch), pitch)

	// yaw=-90, pitch=0 faces -Z.
	front := c.FrontVector()
	assert.InDelta(t, 0, front.X(), 1e-5)
	assert.InDelta(t, 0, front.Y(), 1e-5)
	assert.InDelta(t, -1, front.Z(), 1e-5)
}

func TestSetPosition_And_Translate(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})

	c.SetPosition(mgl32.Vec3{5, 5, 5})
	assert.Equal(t, mgl32.Vec3{5, 5, 5}, c.Position())

	c.Translate(mgl32.Vec3{1, 0, -1})
	assert.Equal(t, mgl32.Vec3{6, 5, 4}, c.Position())
}

func TestSetRotation_ClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.SetRotation(10, 120)
	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(10), yaw)
	assert.Equal(t, float32(MaxPitch), pitch)

	c.SetRotation(10, -120)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)

	c.SetRotation(45, 30)
	yaw, pitch = c.Orientation()
	assert.Equal(t, float32(45), yaw)
	assert.Equal(t, float32(30), pitch)
}

func TestLookAt_DerivesYawAndPitchTowardTarget(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 0})

	c.LookAt(mgl32.Vec3{0, 0, -10})
	yaw, pitch := c.Orientation()
	assert.InDelta(t, -90, yaw, 1e-3)
	assert.InDelta(t, 0, pitch, 1e-3)

	c.LookAt(mgl32.Vec3{0, 10, 0})
	_, pitch = c.Orientation()
	assert.InDelta(t, 90, pitch, 1e-3)
}

func TestSetFOV_ClampsToRange(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.SetFOV(0)
	assert.InDelta(t, MinFOV, fovOf(c), 1e-6)

	c.SetFOV(90)
	assert.InDelta(t, MaxFOV, fovOf(c), 1e-6)

	c.SetFOV(30)
	assert.InDelta(t, 30, fovOf(c), 1e-6)
}

func fovOf(c *Camera) float32 { return c.fov }

func TestSetViewport_ChangesProjectionForNewAspectRatio(t *testing.T) {
	c := New(mgl32.Vec3{})
	square := c.ProjectionMatrix()

	c.SetViewport(1600, 900)
	wide := c.ProjectionMatrix()

	assert.NotEqual(t, square, wide)
}

func TestViewMatrix_LooksFromPositionAlongFront(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5})
	c.LookAt(mgl32.Vec3{0, 0, 0})

	view := c.ViewMatrix()
	// Transforming the camera's own position should land at the origin
	// of view space (roughly (0,0,0) with some numerical slack), and the
	// look target should land somewhere along -Z.
	transformedTarget := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Less(t, transformedTarget.Z(), float32(0))
}
