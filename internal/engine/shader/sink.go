package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/logger"
)

// Sink receives shader uniform values by name. It abstracts the active
// shading program so scene code can be exercised without a GL context.
type Sink interface {
	SetMat4(name string, v mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
	SetBool(name string, v bool)
	SetSampler2D(name string, slot int32)
}

// Program is a GL-backed Sink bound to a compiled shader program.
// Uniform locations are resolved lazily and cached; a name the program
// does not declare is reported once and then ignored.
type Program struct {
	id        uint32
	locations map[string]int32
	unknown   map[string]bool
}

// NewProgram compiles and links the given shader sources and wraps the
// resulting program as a Sink.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:        id,
		locations: make(map[string]int32),
		unknown:   make(map[string]bool),
	}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 { return p.id }

// Use makes this program the active one. Must be called before any
// uniform pushes each frame.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the GL program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 && !p.unknown[name] {
		p.unknown[name] = true
		logger.Warn("uniform not found in program",
			zap.String("name", name),
			zap.Uint32("program", p.id),
		)
	}
	p.locations[name] = loc
	return loc
}

// SetMat4 pushes a 4x4 matrix uniform.
func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

// SetVec2 pushes a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform2f(loc, v.X(), v.Y())
	}
}

// SetVec3 pushes a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetVec4 pushes a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform4f(loc, v.X(), v.Y(), v.Z(), v.W())
	}
}

// SetFloat pushes a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetInt pushes an int uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetBool pushes a bool uniform as an int.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

// SetSampler2D binds a sampler uniform to a texture unit.
func (p *Program) SetSampler2D(name string, slot int32) {
	p.SetInt(name, slot)
}
