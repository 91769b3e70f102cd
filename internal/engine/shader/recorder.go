package shader

import "github.com/go-gl/mathgl/mgl32"

// Recorder is a headless Sink that retains the last value pushed under
// each uniform name. It backs dry-run mode (rendering logic without a GL
// context) and the package tests.
type Recorder struct {
	Mat4s    map[string]mgl32.Mat4
	Vec2s    map[string]mgl32.Vec2
	Vec3s    map[string]mgl32.Vec3
	Vec4s    map[string]mgl32.Vec4
	Floats   map[string]float32
	Ints     map[string]int32
	Bools    map[string]bool
	Samplers map[string]int32
	Sequence []string // uniform names in push order
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Mat4s:    make(map[string]mgl32.Mat4),
		Vec2s:    make(map[string]mgl32.Vec2),
		Vec3s:    make(map[string]mgl32.Vec3),
		Vec4s:    make(map[string]mgl32.Vec4),
		Floats:   make(map[string]float32),
		Ints:     make(map[string]int32),
		Bools:    make(map[string]bool),
		Samplers: make(map[string]int32),
	}
}

// Reset clears all recorded values.
func (r *Recorder) Reset() {
	*r = *NewRecorder()
}

// Pushes returns the total number of recorded pushes.
func (r *Recorder) Pushes() int { return len(r.Sequence) }

func (r *Recorder) SetMat4(name string, v mgl32.Mat4) {
	r.Mat4s[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetVec2(name string, v mgl32.Vec2) {
	r.Vec2s[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetVec3(name string, v mgl32.Vec3) {
	r.Vec3s[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetVec4(name string, v mgl32.Vec4) {
	r.Vec4s[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetFloat(name string, v float32) {
	r.Floats[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetInt(name string, v int32) {
	r.Ints[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetBool(name string, v bool) {
	r.Bools[name] = v
	r.Sequence = append(r.Sequence, name)
}

func (r *Recorder) SetSampler2D(name string, slot int32) {
	r.Samplers[name] = slot
	r.Sequence = append(r.Sequence, name)
}
