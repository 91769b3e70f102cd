package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Part identifies a sub-range of a primitive's index buffer so face flags
// and box-side draws can address caps and faces independently.
type Part int

const (
	PartAll Part = iota
	PartSides
	PartTop
	PartBottom
	PartFront
	PartBack
	PartLeft
	PartRight
)

// Span is a contiguous index range: offset and count in indices.
type Span struct {
	Offset int32
	Count  int32
}

// Geometry is an interleaved vertex/index buffer pair ready for upload.
// Vertex layout: position (3), normal (3), texture coordinate (2).
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Parts    map[Part]Span
}

// VertexStride is the number of floats per vertex.
const VertexStride = 8

const defaultSegments = 36

func (g *Geometry) vert(pos, normal mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(len(g.Vertices) / VertexStride)
	g.Vertices = append(g.Vertices,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		u, v,
	)
	return idx
}

func (g *Geometry) tri(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

func (g *Geometry) closePart(p Part, from int) {
	g.Parts[p] = Span{Offset: int32(from), Count: int32(len(g.Indices) - from)}
}

func newGeometry() *Geometry {
	return &Geometry{Parts: make(map[Part]Span)}
}

// planeGeometry is a 2x2 quad in the XZ plane facing up.
func planeGeometry() *Geometry {
	g := newGeometry()
	up := mgl32.Vec3{0, 1, 0}

	a := g.vert(mgl32.Vec3{-1, 0, 1}, up, 0, 0)
	b := g.vert(mgl32.Vec3{1, 0, 1}, up, 1, 0)
	c := g.vert(mgl32.Vec3{1, 0, -1}, up, 1, 1)
	d := g.vert(mgl32.Vec3{-1, 0, -1}, up, 0, 1)

	g.tri(a, b, c)
	g.tri(a, c, d)
	g.closePart(PartAll, 0)
	return g
}

// boxGeometry is a unit cube centered at the origin, one vertex quartet per
// face so each face can carry its own normal and full UV range. Face spans
// allow drawing any single side.
func boxGeometry() *Geometry {
	g := newGeometry()
	h := float32(0.5)

	faces := []struct {
		part    Part
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3 // counter-clockwise seen from outside
	}{
		{PartFront, mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{PartBack, mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{PartLeft, mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{PartRight, mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{PartTop, mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{PartBottom, mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range faces {
		from := len(g.Indices)
		var ids [4]uint32
		for i, corner := range f.corners {
			ids[i] = g.vert(corner, f.normal, uvs[i][0], uvs[i][1])
		}
		g.tri(ids[0], ids[1], ids[2])
		g.tri(ids[0], ids[2], ids[3])
		g.closePart(f.part, from)
	}

	g.closePart(PartAll, 0)
	return g
}

// revolvedGeometry builds a surface of revolution with linearly
// interpolated radius: base radius at y=0, top radius at y=1. It covers
// cylinders (equal radii), tapered cylinders and cones (top radius 0).
func revolvedGeometry(bottomRadius, topRadius float32, segments int) *Geometry {
	g := newGeometry()

	// Side normal tilt follows the radius change over the unit height.
	tilt := bottomRadius - topRadius

	sidesFrom := len(g.Indices)
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		cos := float32(gomath.Cos(theta))
		sin := float32(gomath.Sin(theta))
		normal := mgl32.Vec3{cos, tilt, sin}.Normalize()
		u := float32(i) / float32(segments)

		g.vert(mgl32.Vec3{cos * bottomRadius, 0, sin * bottomRadius}, normal, u, 0)
		g.vert(mgl32.Vec3{cos * topRadius, 1, sin * topRadius}, normal, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		g.tri(base, base+1, base+2)
		g.tri(base+2, base+1, base+3)
	}
	g.closePart(PartSides, sidesFrom)

	if topRadius > 0 {
		g.cap(topRadius, 1, mgl32.Vec3{0, 1, 0}, segments, PartTop)
	}
	g.cap(bottomRadius, 0, mgl32.Vec3{0, -1, 0}, segments, PartBottom)

	g.Parts[PartAll] = Span{Offset: 0, Count: int32(len(g.Indices))}
	return g
}

// cap appends a triangle-fan disc at height y facing the given normal.
func (g *Geometry) cap(radius, y float32, normal mgl32.Vec3, segments int, part Part) {
	from := len(g.Indices)
	center := g.vert(mgl32.Vec3{0, y, 0}, normal, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(segments)
		cos := float32(gomath.Cos(theta))
		sin := float32(gomath.Sin(theta))
		g.vert(mgl32.Vec3{cos * radius, y, sin * radius}, normal, 0.5+cos/2, 0.5+sin/2)
	}
	for i := 0; i < segments; i++ {
		rim := center + 1 + uint32(i)
		if normal.Y() > 0 {
			g.tri(center, rim+1, rim)
		} else {
			g.tri(center, rim, rim+1)
		}
	}
	g.closePart(part, from)
}

func cylinderGeometry() *Geometry {
	return revolvedGeometry(1, 1, defaultSegments)
}

func taperedCylinderGeometry() *Geometry {
	return revolvedGeometry(1, 0.5, defaultSegments)
}

func coneGeometry() *Geometry {
	return revolvedGeometry(1, 0, defaultSegments)
}

// sphereGeometry is a unit UV sphere.
func sphereGeometry() *Geometry {
	g := newGeometry()
	rings, segments := 18, defaultSegments

	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * gomath.Pi / float64(rings)
		sinPhi := float32(gomath.Sin(phi))
		cosPhi := float32(gomath.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			theta := float64(seg) * 2 * gomath.Pi / float64(segments)
			normal := mgl32.Vec3{
				sinPhi * float32(gomath.Cos(theta)),
				cosPhi,
				sinPhi * float32(gomath.Sin(theta)),
			}
			u := float32(seg) / float32(segments)
			v := float32(ring) / float32(rings)
			g.vert(normal, normal, u, v)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments+1)
			g.tri(current, next, current+1)
			g.tri(current+1, next, next+1)
		}
	}

	g.closePart(PartAll, 0)
	return g
}

// torusGeometry is a ring in the XY plane around the Z axis, major radius 1,
// tube radius 0.25. The scene lays it flat with a 90 degree X rotation.
func torusGeometry() *Geometry {
	g := newGeometry()
	const major, minor = 1.0, 0.25
	majorSegs, minorSegs := defaultSegments, 18

	for i := 0; i <= majorSegs; i++ {
		u := float64(i) * 2 * gomath.Pi / float64(majorSegs)
		cosU := float32(gomath.Cos(u))
		sinU := float32(gomath.Sin(u))

		for j := 0; j <= minorSegs; j++ {
			v := float64(j) * 2 * gomath.Pi / float64(minorSegs)
			cosV := float32(gomath.Cos(v))
			sinV := float32(gomath.Sin(v))

			pos := mgl32.Vec3{
				(major + minor*cosV) * cosU,
				(major + minor*cosV) * sinU,
				minor * sinV,
			}
			normal := mgl32.Vec3{cosV * cosU, cosV * sinU, sinV}
			g.vert(pos, normal, float32(i)/float32(majorSegs), float32(j)/float32(minorSegs))
		}
	}

	for i := 0; i < majorSegs; i++ {
		for j := 0; j < minorSegs; j++ {
			current := uint32(i*(minorSegs+1) + j)
			next := current + uint32(minorSegs+1)
			g.tri(current, next, current+1)
			g.tri(current+1, next, next+1)
		}
	}

	g.closePart(PartAll, 0)
	return g
}

// prismGeometry is a triangular prism: a right triangle cross-section in
// XY extruded along Z over [-0.5, 0.5].
func prismGeometry() *Geometry {
	g := newGeometry()

	// Cross-section corners
	a := mgl32.Vec2{-0.5, -0.5}
	b := mgl32.Vec2{0.5, -0.5}
	c := mgl32.Vec2{0, 0.5}

	// Front and back triangle caps
	front := mgl32.Vec3{0, 0, 1}
	f0 := g.vert(mgl32.Vec3{a.X(), a.Y(), 0.5}, front, 0, 0)
	f1 := g.vert(mgl32.Vec3{b.X(), b.Y(), 0.5}, front, 1, 0)
	f2 := g.vert(mgl32.Vec3{c.X(), c.Y(), 0.5}, front, 0.5, 1)
	g.tri(f0, f1, f2)

	back := mgl32.Vec3{0, 0, -1}
	b0 := g.vert(mgl32.Vec3{b.X(), b.Y(), -0.5}, back, 0, 0)
	b1 := g.vert(mgl32.Vec3{a.X(), a.Y(), -0.5}, back, 1, 0)
	b2 := g.vert(mgl32.Vec3{c.X(), c.Y(), -0.5}, back, 0.5, 1)
	g.tri(b0, b1, b2)

	// Side quads
	sides := [][2]mgl32.Vec2{{a, b}, {b, c}, {c, a}}
	for _, s := range sides {
		edge := s[1].Sub(s[0])
		normal := mgl32.Vec3{edge.Y(), -edge.X(), 0}.Normalize()
		v0 := g.vert(mgl32.Vec3{s[0].X(), s[0].Y(), 0.5}, normal, 0, 0)
		v1 := g.vert(mgl32.Vec3{s[1].X(), s[1].Y(), 0.5}, normal, 1, 0)
		v2 := g.vert(mgl32.Vec3{s[1].X(), s[1].Y(), -0.5}, normal, 1, 1)
		v3 := g.vert(mgl32.Vec3{s[0].X(), s[0].Y(), -0.5}, normal, 0, 1)
		g.tri(v0, v1, v2)
		g.tri(v0, v2, v3)
	}

	g.closePart(PartAll, 0)
	return g
}

// pyramidGeometry builds a pyramid with a regular n-sided base at y=-0.5
// and apex at y=0.5, with flat-shaded side faces.
func pyramidGeometry(baseSides int) *Geometry {
	g := newGeometry()
	apex := mgl32.Vec3{0, 0.5, 0}

	corners := make([]mgl32.Vec3, baseSides)
	for i := 0; i < baseSides; i++ {
		theta := float64(i)*2*gomath.Pi/float64(baseSides) - gomath.Pi/2
		corners[i] = mgl32.Vec3{
			0.5 * float32(gomath.Cos(theta)),
			-0.5,
			0.5 * float32(gomath.Sin(theta)),
		}
	}

	// Side faces, one flat normal each
	for i := 0; i < baseSides; i++ {
		p0 := corners[i]
		p1 := corners[(i+1)%baseSides]
		normal := p1.Sub(p0).Cross(apex.Sub(p0)).Normalize()
		a := g.vert(p0, normal, 0, 0)
		b := g.vert(p1, normal, 1, 0)
		t := g.vert(apex, normal, 0.5, 1)
		g.tri(a, t, b)
	}

	// Base fan facing down
	down := mgl32.Vec3{0, -1, 0}
	center := g.vert(mgl32.Vec3{0, -0.5, 0}, down, 0.5, 0.5)
	rim := make([]uint32, baseSides)
	for i, p := range corners {
		rim[i] = g.vert(p, down, 0.5+p.X(), 0.5+p.Z())
	}
	for i := 0; i < baseSides; i++ {
		g.tri(center, rim[i], rim[(i+1)%baseSides])
	}

	g.closePart(PartAll, 0)
	return g
}

func pyramid3Geometry() *Geometry { return pyramidGeometry(3) }

func pyramid4Geometry() *Geometry { return pyramidGeometry(4) }
