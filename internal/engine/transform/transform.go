// Package transform builds model matrices from scale, rotation and translation.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Compose builds a model matrix from the given scale, per-axis rotation in
// degrees, position and additional offset. The composition order is fixed:
//
//	translate(position+offset) * rotZ * rotY * rotX * scale
//
// Changing this order changes the visual result, so callers rely on it.
func Compose(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position, offset mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	t := position.Add(offset)
	translation := mgl32.Translate3D(t.X(), t.Y(), t.Z())

	return translation.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}

// ComposeAt is Compose with a zero offset.
func ComposeAt(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) mgl32.Mat4 {
	return Compose(scale, rotXDeg, rotYDeg, rotZDeg, position, mgl32.Vec3{})
}
