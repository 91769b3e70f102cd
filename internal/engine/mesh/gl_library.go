package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/logger"
)

type shapeKind int

const (
	shapePlane shapeKind = iota
	shapeBox
	shapeCylinder
	shapeTaperedCylinder
	shapeCone
	shapeSphere
	shapeTorus
	shapePrism
	shapePyramid3
	shapePyramid4
)

var shapeNames = map[shapeKind]string{
	shapePlane:           "plane",
	shapeBox:             "box",
	shapeCylinder:        "cylinder",
	shapeTaperedCylinder: "tapered cylinder",
	shapeCone:            "cone",
	shapeSphere:          "sphere",
	shapeTorus:           "torus",
	shapePrism:           "prism",
	shapePyramid3:        "pyramid3",
	shapePyramid4:        "pyramid4",
}

// glMesh is an uploaded primitive: one VAO with interleaved vertex data
// and an element buffer addressed through part spans.
type glMesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	parts map[Part]Span
}

// GLLibrary is the OpenGL-backed mesh Library. It requires a current GL
// context. Loading the same shape twice is a no-op.
type GLLibrary struct {
	meshes map[shapeKind]*glMesh
}

// NewGLLibrary returns an empty library.
func NewGLLibrary() *GLLibrary {
	return &GLLibrary{meshes: make(map[shapeKind]*glMesh)}
}

// Destroy releases all GPU buffers held by the library.
func (l *GLLibrary) Destroy() {
	for _, m := range l.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
	}
	l.meshes = make(map[shapeKind]*glMesh)
}

func (l *GLLibrary) load(kind shapeKind, build func() *Geometry) {
	if _, loaded := l.meshes[kind]; loaded {
		return
	}
	g := build()
	m := &glMesh{parts: g.Parts}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	logger.Debug("mesh loaded",
		zap.String("shape", shapeNames[kind]),
		zap.Int("vertices", len(g.Vertices)/VertexStride),
		zap.Int("indices", len(g.Indices)),
	)
}

func (l *GLLibrary) draw(kind shapeKind, parts ...Part) {
	m, loaded := l.meshes[kind]
	if !loaded {
		logger.Warn("draw of unloaded mesh skipped", zap.String("shape", shapeNames[kind]))
		return
	}
	gl.BindVertexArray(m.vao)
	for _, p := range parts {
		span, ok := m.parts[p]
		if !ok {
			continue
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, span.Count, gl.UNSIGNED_INT, uintptr(span.Offset)*4)
	}
	gl.BindVertexArray(0)
}

// LoadPlaneMesh prepares the plane primitive.
func (l *GLLibrary) LoadPlaneMesh() { l.load(shapePlane, planeGeometry) }

// LoadBoxMesh prepares the box primitive.
func (l *GLLibrary) LoadBoxMesh() { l.load(shapeBox, boxGeometry) }

// LoadCylinderMesh prepares the cylinder primitive.
func (l *GLLibrary) LoadCylinderMesh() { l.load(shapeCylinder, cylinderGeometry) }

// LoadTaperedCylinderMesh prepares the tapered cylinder primitive.
func (l *GLLibrary) LoadTaperedCylinderMesh() {
	l.load(shapeTaperedCylinder, taperedCylinderGeometry)
}

// LoadConeMesh prepares the cone primitive.
func (l *GLLibrary) LoadConeMesh() { l.load(shapeCone, coneGeometry) }

// LoadSphereMesh prepares the sphere primitive.
func (l *GLLibrary) LoadSphereMesh() { l.load(shapeSphere, sphereGeometry) }

// LoadTorusMesh prepares the torus primitive.
func (l *GLLibrary) LoadTorusMesh() { l.load(shapeTorus, torusGeometry) }

// LoadPrismMesh prepares the prism primitive.
func (l *GLLibrary) LoadPrismMesh() { l.load(shapePrism, prismGeometry) }

// LoadPyramid3Mesh prepares the three-sided pyramid primitive.
func (l *GLLibrary) LoadPyramid3Mesh() { l.load(shapePyramid3, pyramid3Geometry) }

// LoadPyramid4Mesh prepares the four-sided pyramid primitive.
func (l *GLLibrary) LoadPyramid4Mesh() { l.load(shapePyramid4, pyramid4Geometry) }

// DrawPlaneMesh draws the plane.
func (l *GLLibrary) DrawPlaneMesh() { l.draw(shapePlane, PartAll) }

// DrawBoxMesh draws all six box faces.
func (l *GLLibrary) DrawBoxMesh() { l.draw(shapeBox, PartAll) }

// DrawBoxMeshSide draws a single box face.
func (l *GLLibrary) DrawBoxMeshSide(side BoxSide) {
	var part Part
	switch side {
	case BoxFront:
		part = PartFront
	case BoxBack:
		part = PartBack
	case BoxLeft:
		part = PartLeft
	case BoxRight:
		part = PartRight
	case BoxTop:
		part = PartTop
	case BoxBottom:
		part = PartBottom
	default:
		logger.Warn("unknown box side", zap.Int("side", int(side)))
		return
	}
	l.draw(shapeBox, part)
}

// DrawCylinderMesh draws the cylinder parts selected by flags.
func (l *GLLibrary) DrawCylinderMesh(flags FaceFlags) {
	l.draw(shapeCylinder, flagParts(flags)...)
}

// DrawTaperedCylinderMesh draws the tapered cylinder parts selected by flags.
func (l *GLLibrary) DrawTaperedCylinderMesh(flags FaceFlags) {
	l.draw(shapeTaperedCylinder, flagParts(flags)...)
}

// DrawConeMesh draws the cone sides, optionally with its base disc.
func (l *GLLibrary) DrawConeMesh(drawBottom bool) {
	if drawBottom {
		l.draw(shapeCone, PartSides, PartBottom)
		return
	}
	l.draw(shapeCone, PartSides)
}

// DrawSphereMesh draws the sphere.
func (l *GLLibrary) DrawSphereMesh() { l.draw(shapeSphere, PartAll) }

// DrawTorusMesh draws the torus.
func (l *GLLibrary) DrawTorusMesh() { l.draw(shapeTorus, PartAll) }

// DrawPrismMesh draws the prism.
func (l *GLLibrary) DrawPrismMesh() { l.draw(shapePrism, PartAll) }

// DrawPyramid3Mesh draws the three-sided pyramid.
func (l *GLLibrary) DrawPyramid3Mesh() { l.draw(shapePyramid3, PartAll) }

// DrawPyramid4Mesh draws the four-sided pyramid.
func (l *GLLibrary) DrawPyramid4Mesh() { l.draw(shapePyramid4, PartAll) }

func flagParts(flags FaceFlags) []Part {
	parts := make([]Part, 0, 3)
	if flags.Sides {
		parts = append(parts, PartSides)
	}
	if flags.Top {
		parts = append(parts, PartTop)
	}
	if flags.Bottom {
		parts = append(parts, PartBottom)
	}
	return parts
}
