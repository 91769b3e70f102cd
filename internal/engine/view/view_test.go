package view

import (
	gomath "math"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwhitten/stillscene/internal/engine/camera"
	"github.com/mwhitten/stillscene/internal/engine/shader"
	"github.com/mwhitten/stillscene/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitWithRotation("error", logger.Rotation{}, false)
	os.Exit(m.Run())
}

func newTestController(t *testing.T) (*Controller, *shader.Recorder) {
	t.Helper()
	rec := shader.NewRecorder()
	c, err := NewController(rec, 1000, 800)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c, rec
}

func TestNewControllerValidation(t *testing.T) {
	if _, err := NewController(nil, 1000, 800); err == nil {
		t.Error("expected error for nil sink")
	}
	rec := shader.NewRecorder()
	if _, err := NewController(rec, 0, 800); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestInitialModeIsPerspective(t *testing.T) {
	c, _ := newTestController(t)
	if c.Mode() != Perspective {
		t.Errorf("initial mode: got %v, want perspective", c.Mode())
	}
}

func TestOrthographicSwitchResetsCamera(t *testing.T) {
	c, _ := newTestController(t)

	// Disturb the camera with free-look and movement.
	c.HandleLook(0, 0) // consume the startup latch
	c.HandleLook(300, -150)
	c.HandleMove(camera.Forward, 1.0)

	c.SetMode(Orthographic)

	cam := c.Camera()
	if cam.Position != camera.StartPosition {
		t.Errorf("position: got %v, want %v", cam.Position, camera.StartPosition)
	}
	if cam.Yaw != -90 {
		t.Errorf("yaw: got %f, want -90", cam.Yaw)
	}
	if cam.Pitch != 0 {
		t.Errorf("pitch: got %f, want 0", cam.Pitch)
	}
}

func TestPerspectiveSwitchDoesNotReset(t *testing.T) {
	c, _ := newTestController(t)

	c.HandleLook(0, 0)
	c.HandleLook(300, -150)
	c.HandleMove(camera.Forward, 1.0)
	cam := c.Camera()
	pos, yaw, pitch := cam.Position, cam.Yaw, cam.Pitch

	// Already perspective: a redundant switch is a no-op, and returning
	// from orthographic must not reset either.
	c.SetMode(Perspective)
	if cam.Position != pos || cam.Yaw != yaw || cam.Pitch != pitch {
		t.Error("redundant perspective switch changed camera state")
	}

	c.SetMode(Orthographic)
	c.SetMode(Perspective)
	if cam.Position != camera.StartPosition {
		t.Error("switch back to perspective moved the camera")
	}
}

func TestLookIgnoredWhileOrthographic(t *testing.T) {
	c, _ := newTestController(t)
	c.SetMode(Orthographic)

	cam := c.Camera()
	c.HandleLook(500, 500)
	c.HandleLook(-123, 77)

	if cam.Yaw != -90 || cam.Pitch != 0 {
		t.Errorf("look input applied in ortho: yaw %f pitch %f", cam.Yaw, cam.Pitch)
	}
}

func TestFirstLookSampleSwallowed(t *testing.T) {
	c, _ := newTestController(t)

	// The very first sample establishes a reference and applies no delta.
	c.HandleLook(400, 200)
	cam := c.Camera()
	if cam.Yaw != -90 || cam.Pitch != 0 {
		t.Errorf("first sample moved the camera: yaw %f pitch %f", cam.Yaw, cam.Pitch)
	}

	// The second sample applies normally.
	c.HandleLook(100, 0)
	if cam.Yaw == -90 {
		t.Error("second sample should turn the camera")
	}

	// Re-entering free look after orthographic re-arms the latch.
	c.SetMode(Orthographic)
	c.SetMode(Perspective)
	c.HandleLook(400, 200)
	if cam.Yaw != -90 || cam.Pitch != 0 {
		t.Errorf("latch not re-armed after mode switch: yaw %f pitch %f", cam.Yaw, cam.Pitch)
	}
}

func TestScrollStillTracksZoomInOrtho(t *testing.T) {
	c, _ := newTestController(t)
	c.SetMode(Orthographic)

	c.HandleScroll(10)
	if c.Camera().Zoom != 70 {
		t.Errorf("zoom: got %f, want 70", c.Camera().Zoom)
	}
}

func TestPerspectiveProjectionMatchesFormula(t *testing.T) {
	c, _ := newTestController(t)

	got := c.ProjectionMatrix()

	// Standard perspective projection evaluated independently:
	// zoom 80, aspect 1000/800, near 0.1, far 100.
	fov := 80.0 * gomath.Pi / 180.0
	aspect := 1000.0 / 800.0
	near, far := 0.1, 100.0
	f := 1.0 / gomath.Tan(fov/2.0)

	var want mgl32.Mat4
	want[0] = float32(f / aspect)
	want[5] = float32(f)
	want[10] = float32((far + near) / (near - far))
	want[11] = -1
	want[14] = float32(2 * far * near / (near - far))

	for i := 0; i < 16; i++ {
		d := float64(got[i] - want[i])
		if gomath.Abs(d) > 1e-5 {
			t.Errorf("projection element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestOrthographicProjectionExtents(t *testing.T) {
	c, _ := newTestController(t)
	c.SetMode(Orthographic)

	got := c.ProjectionMatrix()
	aspect := float32(1000.0 / 800.0)
	want := mgl32.Ortho(-10*aspect, 10*aspect, -10, 10, 0.1, 100)

	for i := 0; i < 16; i++ {
		d := float64(got[i] - want[i])
		if gomath.Abs(d) > 1e-6 {
			t.Errorf("ortho element %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestApplyPushesViewProjectionAndPosition(t *testing.T) {
	c, rec := newTestController(t)

	c.Apply()

	if _, ok := rec.Mat4s["view"]; !ok {
		t.Error("expected view matrix push")
	}
	if _, ok := rec.Mat4s["projection"]; !ok {
		t.Error("expected projection matrix push")
	}
	if got := rec.Vec3s["viewPosition"]; got != camera.StartPosition {
		t.Errorf("viewPosition: got %v, want %v", got, camera.StartPosition)
	}
}

func TestResizeChangesAspect(t *testing.T) {
	c, _ := newTestController(t)
	before := c.ProjectionMatrix()

	c.Resize(2000, 800)
	after := c.ProjectionMatrix()

	if before[0] == after[0] {
		t.Error("expected projection to change with aspect ratio")
	}
}
