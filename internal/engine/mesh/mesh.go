// Package mesh provides the primitive meshes the scene is assembled from.
// Shapes are loaded once during setup and drawn many times per frame.
package mesh

// FaceFlags selects which faces of a revolved primitive are rendered.
type FaceFlags struct {
	Top    bool
	Bottom bool
	Sides  bool
}

// AllFaces renders every part of a primitive.
var AllFaces = FaceFlags{Top: true, Bottom: true, Sides: true}

// BoxSide selects a single face of the box primitive.
type BoxSide int

const (
	BoxFront BoxSide = iota
	BoxBack
	BoxLeft
	BoxRight
	BoxTop
	BoxBottom
)

func (s BoxSide) String() string {
	switch s {
	case BoxFront:
		return "front"
	case BoxBack:
		return "back"
	case BoxLeft:
		return "left"
	case BoxRight:
		return "right"
	case BoxTop:
		return "top"
	case BoxBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Library is the set of primitives the scene composer draws. Load methods
// prepare GPU buffers once; draw methods issue the actual draw calls.
type Library interface {
	LoadPlaneMesh()
	LoadBoxMesh()
	LoadCylinderMesh()
	LoadTaperedCylinderMesh()
	LoadConeMesh()
	LoadSphereMesh()
	LoadTorusMesh()
	LoadPrismMesh()
	LoadPyramid3Mesh()
	LoadPyramid4Mesh()

	DrawPlaneMesh()
	DrawBoxMesh()
	DrawBoxMeshSide(side BoxSide)
	DrawCylinderMesh(flags FaceFlags)
	DrawTaperedCylinderMesh(flags FaceFlags)
	DrawConeMesh(drawBottom bool)
	DrawSphereMesh()
	DrawTorusMesh()
	DrawPrismMesh()
	DrawPyramid3Mesh()
	DrawPyramid4Mesh()
}
