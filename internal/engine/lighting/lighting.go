// Package lighting manages the fixed set of point lights pushed to the shader.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwhitten/stillscene/internal/engine/shader"
)

// MaxLights is the number of point light slots the shader declares.
const MaxLights = 4

// Light is a point light source. Contributions are falloff-free; an
// inactive light is skipped by the shader.
type Light struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// Stage owns the per-index light uniforms of the active shader program.
// Lights in this scene are static: SetLight runs once during setup.
type Stage struct {
	sink   shader.Sink
	lights [MaxLights]Light
}

// NewStage returns a Stage pushing to the given sink.
func NewStage(sink shader.Sink) (*Stage, error) {
	if sink == nil {
		return nil, fmt.Errorf("lighting: nil sink")
	}
	return &Stage{sink: sink}, nil
}

// SetLight stores the light at index and pushes all of its fields under
// the per-index uniform names.
func (s *Stage) SetLight(index int, l Light) error {
	if index < 0 || index >= MaxLights {
		return fmt.Errorf("lighting: index %d out of range [0,%d)", index, MaxLights)
	}
	s.lights[index] = l

	prefix := fmt.Sprintf("pointLights[%d]", index)
	s.sink.SetVec3(prefix+".position", l.Position)
	s.sink.SetVec3(prefix+".ambient", l.Ambient)
	s.sink.SetVec3(prefix+".diffuse", l.Diffuse)
	s.sink.SetVec3(prefix+".specular", l.Specular)
	s.sink.SetBool(prefix+".bActive", l.Active)
	return nil
}

// Light returns the stored light at index.
func (s *Stage) Light(index int) (Light, bool) {
	if index < 0 || index >= MaxLights {
		return Light{}, false
	}
	return s.lights[index], true
}

// SetEnabled pushes the global lighting flag. When false the shader falls
// back to unlit output.
func (s *Stage) SetEnabled(enabled bool) {
	s.sink.SetBool("bUseLighting", enabled)
}
