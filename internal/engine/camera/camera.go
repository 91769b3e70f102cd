// Package camera provides the free-look camera used to view the scene.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Movement directions for keyboard-driven camera motion.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Default camera parameters.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultZoom        = 80.0
	DefaultSpeed       = 20.0
	DefaultSensitivity = 0.1

	maxPitch = 89.0
	minZoom  = 1.0
	maxZoom  = 120.0
)

// StartPosition is where the camera sits when the scene opens and where
// the orthographic reset returns it.
var StartPosition = mgl32.Vec3{0, 5, 12}

// Camera is a yaw/pitch free-look camera.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32
}

// New returns a camera at the scene start position facing the scene.
func New() *Camera {
	c := &Camera{
		Position:         StartPosition,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the view matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProcessKeyboard moves the camera in the given direction, scaled by the
// elapsed frame time for frame-rate-independent motion.
func (c *Camera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement applies a look delta in screen units. Pitch is
// clamped so the view never flips over the vertical.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}

	c.updateVectors()
}

// ProcessMouseScroll adjusts the zoom (field of view) from scroll input.
func (c *Camera) ProcessMouseScroll(dy float32) {
	c.Zoom -= dy
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

// Reset returns the camera to the scene start pose and recomputes its basis.
func (c *Camera) Reset() {
	c.Position = StartPosition
	c.Yaw = DefaultYaw
	c.Pitch = DefaultPitch
	c.updateVectors()
}

// updateVectors derives the orthonormal basis from yaw and pitch.
func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	front := mgl32.Vec3{
		float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
