// Package scene assembles the still life: registries, lights and the
// ordered draw list that renders it.
package scene

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/engine/lighting"
	"github.com/mwhitten/stillscene/internal/engine/material"
	"github.com/mwhitten/stillscene/internal/engine/mesh"
	"github.com/mwhitten/stillscene/internal/engine/shader"
	"github.com/mwhitten/stillscene/internal/engine/texture"
	"github.com/mwhitten/stillscene/internal/engine/transform"
	"github.com/mwhitten/stillscene/internal/logger"
)

// MeshKind selects which primitive a draw instruction renders.
type MeshKind int

const (
	Plane MeshKind = iota
	Box
	BoxFront
	BoxBack
	BoxLeft
	BoxRight
	BoxTop
	BoxBottom
	Cone
	Cylinder
	Prism
	Pyramid3
	Pyramid4
	Sphere
	TaperedCylinder
	Torus
)

var kindNames = map[MeshKind]string{
	Plane:           "plane",
	Box:             "box",
	BoxFront:        "box front",
	BoxBack:         "box back",
	BoxLeft:         "box left",
	BoxRight:        "box right",
	BoxTop:          "box top",
	BoxBottom:       "box bottom",
	Cone:            "cone",
	Cylinder:        "cylinder",
	Prism:           "prism",
	Pyramid3:        "pyramid3",
	Pyramid4:        "pyramid4",
	Sphere:          "sphere",
	TaperedCylinder: "tapered cylinder",
	Torus:           "torus",
}

func (k MeshKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Composer issues draw instructions: each one pushes the transform,
// surface and material uniforms for an object and dispatches the mesh.
type Composer struct {
	sink      shader.Sink
	library   mesh.Library
	materials *material.Registry
	textures  *texture.Registry
	lights    *lighting.Stage

	textureMisses int
}

// New creates a composer over the given uniform sink and mesh library.
func New(sink shader.Sink, library mesh.Library, textures *texture.Registry) (*Composer, error) {
	if sink == nil {
		return nil, errors.New("scene: nil uniform sink")
	}
	if library == nil {
		return nil, errors.New("scene: nil mesh library")
	}
	if textures == nil {
		return nil, errors.New("scene: nil texture registry")
	}
	lights, err := lighting.NewStage(sink)
	if err != nil {
		return nil, err
	}
	return &Composer{
		sink:      sink,
		library:   library,
		materials: material.NewRegistry(),
		textures:  textures,
		lights:    lights,
	}, nil
}

// Materials exposes the material registry.
func (c *Composer) Materials() *material.Registry { return c.materials }

// Textures exposes the texture registry.
func (c *Composer) Textures() *texture.Registry { return c.textures }

// Lights exposes the light stage.
func (c *Composer) Lights() *lighting.Stage { return c.lights }

// TextureMisses reports how many textured draws referenced an unknown tag.
func (c *Composer) TextureMisses() int { return c.textureMisses }

// DrawTextured renders one mesh with a texture applied. A tag that was
// never loaded keeps the previously bound sampler and is counted as a
// miss; the draw still happens.
func (c *Composer) DrawTextured(
	kind MeshKind,
	scale, pos, rot mgl32.Vec3,
	textureTag string,
	uTile, vTile float32,
	materialTag string,
	flags mesh.FaceFlags,
) {
	c.sink.SetBool("bUseTexture", true)
	if slot, ok := c.textures.SlotOf(textureTag); ok {
		c.sink.SetSampler2D("objectTexture", int32(slot))
	} else {
		c.textureMisses++
		logger.Warn("texture tag not loaded", zap.String("tag", textureTag))
	}
	c.sink.SetVec2("UVscale", mgl32.Vec2{uTile, vTile})
	c.sink.SetMat4("model", transform.ComposeAt(scale, rot.X(), rot.Y(), rot.Z(), pos))
	c.materials.Apply(c.sink, materialTag)
	c.dispatch(kind, flags)
}

// DrawSolid renders one mesh with a flat color instead of a texture.
func (c *Composer) DrawSolid(
	kind MeshKind,
	scale, pos, rot mgl32.Vec3,
	color mgl32.Vec4,
	materialTag string,
	flags mesh.FaceFlags,
) {
	c.sink.SetMat4("model", transform.ComposeAt(scale, rot.X(), rot.Y(), rot.Z(), pos))
	c.sink.SetBool("bUseTexture", false)
	c.sink.SetVec4("objectColor", color)
	c.materials.Apply(c.sink, materialTag)
	c.dispatch(kind, flags)
}

func (c *Composer) dispatch(kind MeshKind, flags mesh.FaceFlags) {
	switch kind {
	case Plane:
		c.library.DrawPlaneMesh()
	case Box:
		c.library.DrawBoxMesh()
	case BoxFront:
		c.library.DrawBoxMeshSide(mesh.BoxFront)
	case BoxBack:
		c.library.DrawBoxMeshSide(mesh.BoxBack)
	case BoxLeft:
		c.library.DrawBoxMeshSide(mesh.BoxLeft)
	case BoxRight:
		c.library.DrawBoxMeshSide(mesh.BoxRight)
	case BoxTop:
		c.library.DrawBoxMeshSide(mesh.BoxTop)
	case BoxBottom:
		c.library.DrawBoxMeshSide(mesh.BoxBottom)
	case Cone:
		c.library.DrawConeMesh(flags.Bottom)
	case Cylinder:
		c.library.DrawCylinderMesh(flags)
	case Prism:
		c.library.DrawPrismMesh()
	case Pyramid3:
		c.library.DrawPyramid3Mesh()
	case Pyramid4:
		c.library.DrawPyramid4Mesh()
	case Sphere:
		c.library.DrawSphereMesh()
	case TaperedCylinder:
		c.library.DrawTaperedCylinderMesh(flags)
	case Torus:
		c.library.DrawTorusMesh()
	default:
		logger.Warn("unknown mesh kind", zap.Int("kind", int(kind)))
	}
}
