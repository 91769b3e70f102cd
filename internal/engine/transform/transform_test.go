package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func matApproxEqual(t *testing.T, got, want mgl32.Mat4, context string) {
	t.Helper()
	for i := 0; i < 16; i++ {
		d := got[i] - want[i]
		if d < -1e-5 || d > 1e-5 {
			t.Errorf("%s: element %d: got %f, want %f", context, i, got[i], want[i])
		}
	}
}

// reference computes the expected matrix with explicit single steps so a
// regression in the composition order shows up against an independent path.
func reference(scale mgl32.Vec3, rx, ry, rz float32, pos, off mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos.X()+off.X(), pos.Y()+off.Y(), pos.Z()+off.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rz)))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(ry)))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rx)))
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return m
}

func TestComposeOrder(t *testing.T) {
	tests := []struct {
		name       string
		scale      mgl32.Vec3
		rx, ry, rz float32
		pos        mgl32.Vec3
		off        mgl32.Vec3
	}{
		{"identity", mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{}, mgl32.Vec3{}},
		{"translate only", mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{-10, 0.75, 0}, mgl32.Vec3{}},
		{"rotated torus", mgl32.Vec3{1.05, 1.05, 1.05}, 90, 0, 0, mgl32.Vec3{-10, 4.7, 0}, mgl32.Vec3{}},
		{"all axes", mgl32.Vec3{2, 4.5, 2}, 30, 45, 60, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}},
		{"with offset", mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 5, 0}},
		{"zero scale", mgl32.Vec3{0, 0, 0}, 15, 25, 35, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{}},
		{"negative position", mgl32.Vec3{1.1, 0.6, 1.1}, 180, 0, 0, mgl32.Vec3{0, -18.5, -7.5}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.scale, tt.rx, tt.ry, tt.rz, tt.pos, tt.off)
			want := reference(tt.scale, tt.rx, tt.ry, tt.rz, tt.pos, tt.off)
			matApproxEqual(t, got, want, tt.name)
		})
	}
}

func TestComposeRotationWraps(t *testing.T) {
	// A full turn around each axis is the same transform as no turn.
	base := Compose(mgl32.Vec3{1, 2, 3}, 0, 0, 0, mgl32.Vec3{5, 6, 7}, mgl32.Vec3{})
	wrapped := Compose(mgl32.Vec3{1, 2, 3}, 360, 360, 360, mgl32.Vec3{5, 6, 7}, mgl32.Vec3{})
	matApproxEqual(t, wrapped, base, "360 wrap")
}

func TestComposeTranslationColumn(t *testing.T) {
	// Position plus offset ends up in the last column untouched by rotation
	// applied after translation.
	m := Compose(mgl32.Vec3{1, 1, 1}, 45, 90, 135, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{10, 20, 30})
	col := m.Col(3)
	want := mgl32.Vec4{11, 22, 33, 1}
	for i := 0; i < 4; i++ {
		d := col[i] - want[i]
		if d < -1e-5 || d > 1e-5 {
			t.Errorf("translation column %d: got %f, want %f", i, col[i], want[i])
		}
	}
}

func TestComposeScaleBeforeRotation(t *testing.T) {
	// Scaling must apply in object space: a point on X scaled by 2 then
	// rotated 90 degrees about Y lands on -Z at distance 2.
	m := Compose(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{}, mgl32.Vec3{})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -2, 1}
	for i := 0; i < 4; i++ {
		d := p[i] - want[i]
		if d < -1e-5 || d > 1e-5 {
			t.Errorf("transformed point component %d: got %f, want %f", i, p[i], want[i])
		}
	}
}

func TestComposeAtMatchesZeroOffset(t *testing.T) {
	a := ComposeAt(mgl32.Vec3{1, 2, 3}, 10, 20, 30, mgl32.Vec3{4, 5, 6})
	b := Compose(mgl32.Vec3{1, 2, 3}, 10, 20, 30, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{})
	if a != b {
		t.Error("ComposeAt should equal Compose with zero offset")
	}
}
