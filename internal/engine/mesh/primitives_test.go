package mesh

import (
	gomath "math"
	"testing"
)

func checkGeometry(t *testing.T, name string, g *Geometry) {
	t.Helper()

	if len(g.Vertices)%VertexStride != 0 {
		t.Errorf("%s: vertex buffer length %d is not a multiple of the stride", name, len(g.Vertices))
	}
	if len(g.Indices)%3 != 0 {
		t.Errorf("%s: index count %d is not a multiple of 3", name, len(g.Indices))
	}

	vertexCount := uint32(len(g.Vertices) / VertexStride)
	for i, idx := range g.Indices {
		if idx >= vertexCount {
			t.Fatalf("%s: index %d at position %d exceeds vertex count %d", name, idx, i, vertexCount)
		}
	}

	for part, span := range g.Parts {
		if span.Offset < 0 || span.Count < 0 {
			t.Errorf("%s: part %d has negative span %+v", name, part, span)
		}
		if int(span.Offset+span.Count) > len(g.Indices) {
			t.Errorf("%s: part %d span %+v exceeds index buffer length %d", name, part, span, len(g.Indices))
		}
		if span.Count%3 != 0 {
			t.Errorf("%s: part %d span count %d is not a multiple of 3", name, part, span.Count)
		}
	}
}

func TestGeometryBuffersWellFormed(t *testing.T) {
	builders := map[string]func() *Geometry{
		"plane":            planeGeometry,
		"box":              boxGeometry,
		"cylinder":         cylinderGeometry,
		"tapered cylinder": taperedCylinderGeometry,
		"cone":             coneGeometry,
		"sphere":           sphereGeometry,
		"torus":            torusGeometry,
		"prism":            prismGeometry,
		"pyramid3":         pyramid3Geometry,
		"pyramid4":         pyramid4Geometry,
	}
	for name, build := range builders {
		checkGeometry(t, name, build())
	}
}

func TestBoxFaceSpans(t *testing.T) {
	g := boxGeometry()

	faces := []Part{PartFront, PartBack, PartLeft, PartRight, PartTop, PartBottom}
	covered := int32(0)
	for _, p := range faces {
		span, ok := g.Parts[p]
		if !ok {
			t.Fatalf("box is missing span for part %d", p)
		}
		if span.Count != 6 {
			t.Errorf("box face %d: got %d indices, want 6", p, span.Count)
		}
		covered += span.Count
	}

	all, ok := g.Parts[PartAll]
	if !ok {
		t.Fatal("box is missing the full span")
	}
	if all.Offset != 0 || all.Count != covered {
		t.Errorf("box full span %+v does not cover the %d face indices", all, covered)
	}
}

func TestRevolvedPartCoverage(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Geometry
		wantTop bool
	}{
		{"cylinder", cylinderGeometry, true},
		{"tapered cylinder", taperedCylinderGeometry, true},
		{"cone", coneGeometry, false},
	}
	for _, tt := range tests {
		g := tt.build()

		if _, ok := g.Parts[PartSides]; !ok {
			t.Errorf("%s: missing side span", tt.name)
		}
		if _, ok := g.Parts[PartBottom]; !ok {
			t.Errorf("%s: missing bottom span", tt.name)
		}
		if _, ok := g.Parts[PartTop]; ok != tt.wantTop {
			t.Errorf("%s: top span present = %v, want %v", tt.name, ok, tt.wantTop)
		}

		total := int32(0)
		for part, span := range g.Parts {
			if part == PartAll {
				continue
			}
			total += span.Count
		}
		if all := g.Parts[PartAll]; all.Count != total {
			t.Errorf("%s: full span count %d, part counts sum to %d", tt.name, all.Count, total)
		}
	}
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	g := sphereGeometry()
	for i := 0; i < len(g.Vertices); i += VertexStride {
		x := float64(g.Vertices[i])
		y := float64(g.Vertices[i+1])
		z := float64(g.Vertices[i+2])
		r := gomath.Sqrt(x*x + y*y + z*z)
		if gomath.Abs(r-1) > 1e-5 {
			t.Fatalf("sphere vertex %d has radius %v, want 1", i/VertexStride, r)
		}
	}
}

func TestNormalsAreUnitLength(t *testing.T) {
	builders := map[string]func() *Geometry{
		"box":      boxGeometry,
		"cylinder": cylinderGeometry,
		"cone":     coneGeometry,
		"torus":    torusGeometry,
		"prism":    prismGeometry,
		"pyramid4": pyramid4Geometry,
	}
	for name, build := range builders {
		g := build()
		for i := 0; i < len(g.Vertices); i += VertexStride {
			nx := float64(g.Vertices[i+3])
			ny := float64(g.Vertices[i+4])
			nz := float64(g.Vertices[i+5])
			l := gomath.Sqrt(nx*nx + ny*ny + nz*nz)
			if gomath.Abs(l-1) > 1e-4 {
				t.Fatalf("%s: normal of vertex %d has length %v", name, i/VertexStride, l)
			}
		}
	}
}

func TestPlaneFacesUp(t *testing.T) {
	g := planeGeometry()
	if got := len(g.Indices); got != 6 {
		t.Fatalf("plane has %d indices, want 6", got)
	}
	for i := 0; i < len(g.Vertices); i += VertexStride {
		if g.Vertices[i+1] != 0 {
			t.Errorf("plane vertex %d has y = %v, want 0", i/VertexStride, g.Vertices[i+1])
		}
		if g.Vertices[i+3] != 0 || g.Vertices[i+4] != 1 || g.Vertices[i+5] != 0 {
			t.Errorf("plane vertex %d normal is not +Y", i/VertexStride)
		}
	}
}

func TestPyramidBaseAndApex(t *testing.T) {
	for _, sides := range []int{3, 4} {
		g := pyramidGeometry(sides)
		minY, maxY := float32(1), float32(-1)
		for i := 0; i < len(g.Vertices); i += VertexStride {
			y := g.Vertices[i+1]
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		if minY != -0.5 || maxY != 0.5 {
			t.Errorf("pyramid%d spans y [%v, %v], want [-0.5, 0.5]", sides, minY, maxY)
		}
	}
}
