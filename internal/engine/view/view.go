// Package view derives the view and projection matrices from camera state
// and the active projection mode.
package view

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/engine/camera"
	"github.com/mwhitten/stillscene/internal/engine/shader"
	"github.com/mwhitten/stillscene/internal/logger"
)

// Mode selects the projection matrix formula.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

func (m Mode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Clip planes and orthographic extent, in world units.
const (
	nearPlane   = 0.1
	farPlane    = 100.0
	orthoExtent = 10.0
)

// Controller owns the camera and pushes view/projection state each frame.
type Controller struct {
	sink   shader.Sink
	cam    *camera.Camera
	mode   Mode
	aspect float32

	// firstLook suppresses the delta of the next look sample so the view
	// does not jump when free-look resumes.
	firstLook bool
}

// NewController creates a controller over a fresh camera.
func NewController(sink shader.Sink, width, height int) (*Controller, error) {
	if sink == nil {
		return nil, fmt.Errorf("view: nil sink")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("view: invalid viewport %dx%d", width, height)
	}
	return &Controller{
		sink:      sink,
		cam:       camera.New(),
		mode:      Perspective,
		aspect:    float32(width) / float32(height),
		firstLook: true,
	}, nil
}

// Camera exposes the owned camera for movement and configuration.
func (c *Controller) Camera() *camera.Camera { return c.cam }

// Mode returns the active projection mode.
func (c *Controller) Mode() Mode { return c.mode }

// Resize updates the aspect ratio after a viewport change.
func (c *Controller) Resize(width, height int) {
	if width > 0 && height > 0 {
		c.aspect = float32(width) / float32(height)
	}
}

// SetMode switches the projection mode. Entering Orthographic resets the
// camera to the fixed start pose and arms the first-look latch so the
// return to free look does not jump. Switching to Perspective only changes
// the matrix formula.
func (c *Controller) SetMode(mode Mode) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	if mode == Orthographic {
		c.cam.Reset()
		c.firstLook = true
	}
	logger.Info("projection mode switched", zap.Stringer("mode", mode))
}

// HandleLook applies a mouse look delta. Ignored entirely while
// orthographic; the first sample after re-entering free look is swallowed.
func (c *Controller) HandleLook(dx, dy float32) {
	if c.mode == Orthographic {
		return
	}
	if c.firstLook {
		c.firstLook = false
		return
	}
	c.cam.ProcessMouseMovement(dx, dy)
}

// HandleScroll feeds scroll input to the camera zoom. The zoom field keeps
// updating in orthographic mode but has no visible effect until the mode
// switches back.
func (c *Controller) HandleScroll(dy float32) {
	c.cam.ProcessMouseScroll(dy)
}

// HandleMove moves the camera, scaled by the frame time.
func (c *Controller) HandleMove(dir camera.Movement, dt float32) {
	c.cam.ProcessKeyboard(dir, dt)
}

// ViewMatrix returns the current view matrix.
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	return c.cam.ViewMatrix()
}

// ProjectionMatrix returns the projection matrix for the active mode.
func (c *Controller) ProjectionMatrix() mgl32.Mat4 {
	switch c.mode {
	case Orthographic:
		return mgl32.Ortho(
			-orthoExtent*c.aspect,
			orthoExtent*c.aspect,
			-orthoExtent,
			orthoExtent,
			nearPlane,
			farPlane,
		)
	default:
		return mgl32.Perspective(mgl32.DegToRad(c.cam.Zoom), c.aspect, nearPlane, farPlane)
	}
}

// Apply derives the per-frame matrices and pushes them with the camera
// world position to the sink.
func (c *Controller) Apply() {
	c.sink.SetMat4("view", c.ViewMatrix())
	c.sink.SetMat4("projection", c.ProjectionMatrix())
	c.sink.SetVec3("viewPosition", c.cam.Position)
}
