package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mwhitten/stillscene/internal/engine/mesh"
)

var noRotation = mgl32.Vec3{0, 0, 0}

// Render draws the still life in a fixed order: wood platform, two salt
// shakers, hanging lamp, tiled back wall, then the butter character.
// Draw order is encoding order; translucent objects are not sorted.
func (c *Composer) Render() {
	c.drawPlatform()
	c.drawSaltShaker(mgl32.Vec3{-10, 0, 0})
	c.drawSaltShaker(mgl32.Vec3{10, 0, 0})
	c.drawLamp()
	c.drawWall()
	c.drawButterCharacter()
}

func (c *Composer) drawPlatform() {
	c.DrawTextured(Box,
		mgl32.Vec3{60, 1.5, 15},
		mgl32.Vec3{0, 0, 0},
		noRotation,
		"wood_tex", 1, 1, "wood",
		mesh.FaceFlags{Bottom: true})
}

// drawSaltShaker places one shaker at the given base: tapered cylinder
// body, two cylinder cap passes (sides then top) and a torus base ring.
func (c *Composer) drawSaltShaker(base mgl32.Vec3) {
	c.DrawTextured(TaperedCylinder,
		mgl32.Vec3{2, 4.5, 2},
		base.Add(mgl32.Vec3{0, 0.75, 0}),
		noRotation,
		"shaker", 1, 1, "glass",
		mesh.FaceFlags{Sides: true})

	capPos := base.Add(mgl32.Vec3{0, 4.75, 0})
	c.DrawTextured(Cylinder,
		mgl32.Vec3{1.1, 0.6, 1.1},
		capPos,
		noRotation,
		"cap_sides", 1, 1, "metal",
		mesh.FaceFlags{Sides: true})
	c.DrawTextured(Cylinder,
		mgl32.Vec3{1.1, 0.6, 1.1},
		capPos,
		noRotation,
		"cap_top", 1, 1, "metal",
		mesh.FaceFlags{Top: true})

	c.DrawSolid(Torus,
		mgl32.Vec3{1.05, 1.05, 1.05},
		base.Add(mgl32.Vec3{0, 4.7, 0}),
		mgl32.Vec3{90, 0, 0},
		mgl32.Vec4{0.447, 0.447, 0.447, 1},
		"metal", mesh.AllFaces)
}

// drawLamp hangs a cord from the ceiling anchor with a cone shade and a
// sphere bulb at its end.
func (c *Composer) drawLamp() {
	lampBase := mgl32.Vec3{0, 18.5, 0}
	drop := float32(6.0)
	coneBase := lampBase.Add(mgl32.Vec3{0, -(drop + 0.9), 0})

	cordColor := mgl32.Vec4{0.55, 0.55, 0.55, 1}
	shadeColor := mgl32.Vec4{0.65, 0.65, 0.65, 1}
	bulbColor := mgl32.Vec4{1.00, 0.95, 0.75, 1}

	c.DrawSolid(Cylinder,
		mgl32.Vec3{0.1, drop, 0.1},
		lampBase,
		mgl32.Vec3{180, 0, 0},
		cordColor, "metal", mesh.AllFaces)

	c.DrawSolid(Cone,
		mgl32.Vec3{1, 1, 1},
		coneBase,
		noRotation,
		shadeColor, "plastic",
		mesh.FaceFlags{Bottom: true})

	c.DrawSolid(Sphere,
		mgl32.Vec3{0.5, 0.5, 0.5},
		coneBase,
		noRotation,
		bulbColor, "plastic", mesh.AllFaces)
}

func (c *Composer) drawWall() {
	c.DrawTextured(Plane,
		mgl32.Vec3{30, 1, 18},
		mgl32.Vec3{0, 17, -7.5},
		mgl32.Vec3{90, 0, 0},
		"tile", 12, 6, "tile",
		mesh.AllFaces)
}

// drawButterCharacter draws the box body face by face so each side
// carries its own texture, then cylinder legs and arms.
func (c *Composer) drawButterCharacter() {
	base := mgl32.Vec3{0, 1.5 + 1.125, 0}
	bodySize := mgl32.Vec3{2, 2.25, 1.5}
	baseColor := mgl32.Vec4{0.95, 0.85, 0.25, 1}

	faces := []struct {
		kind MeshKind
		tag  string
	}{
		{BoxFront, "butter_front"},
		{BoxLeft, "butter_left"},
		{BoxRight, "butter_right"},
		{BoxBack, "butter_back"},
		{BoxBottom, "butter_bottom"},
		{BoxTop, "butter_top"},
	}
	for _, f := range faces {
		c.DrawTextured(f.kind, bodySize, base, noRotation,
			f.tag, 1, 1, "plastic", mesh.AllFaces)
	}

	// Legs reach from the body underside to the floor.
	bodyBottomY := base.Y() - bodySize.Y()*0.5
	legSize := mgl32.Vec3{0.25, bodyBottomY, 0.25}
	legOffsetX := bodySize.X() * 0.22
	legOffsetZ := bodySize.Z() * 0.18

	for _, side := range []float32{-1, 1} {
		c.DrawSolid(Cylinder, legSize,
			mgl32.Vec3{base.X() + side*legOffsetX, legSize.Y() * 0.5, base.Z() + legOffsetZ},
			noRotation,
			baseColor, "plastic", mesh.AllFaces)
	}

	// Arms hang just outside the body, nudged forward to read from the
	// front view.
	armSize := mgl32.Vec3{0.20, 1, 0.20}
	armRot := mgl32.Vec3{180, 0, 0}
	armOffsetX := bodySize.X()*0.5 + armSize.X()*0.5 - 0.05
	armOffsetZ := bodySize.Z() * 0.15

	for _, side := range []float32{-1, 1} {
		c.DrawSolid(Cylinder, armSize,
			mgl32.Vec3{base.X() + side*armOffsetX, base.Y(), base.Z() + armOffsetZ},
			armRot,
			baseColor, "plastic", mesh.AllFaces)
	}
}
