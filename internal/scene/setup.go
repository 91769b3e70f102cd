package scene

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/engine/lighting"
	"github.com/mwhitten/stillscene/internal/logger"
)

// textureFiles maps scene tags to image files under the texture directory.
// Registration order fixes the texture slots.
var textureFiles = []struct {
	file string
	tag  string
}{
	{"saltshaker.png", "shaker"},
	{"cap_sides.png", "cap_sides"},
	{"cap_top.png", "cap_top"},
	{"cap_torus.png", "cap_torus"},
	{"butter_face.png", "butter_front"},
	{"butter_side1.png", "butter_left"},
	{"butter_side2.png", "butter_right"},
	{"butter_side3.png", "butter_back"},
	{"butter_top.png", "butter_top"},
	{"butter_bottom.png", "butter_bottom"},
	{"Tile.png", "tile"},
	{"wood_top.png", "wood_tex"},
}

// Prepare loads everything the still life needs: materials, lights,
// textures and meshes. A texture that fails to load is skipped so the
// scene still renders, with misses surfacing at draw time.
func (c *Composer) Prepare(textureDir string) error {
	c.defineMaterials()
	if err := c.setupLights(); err != nil {
		return err
	}

	for _, t := range textureFiles {
		path := filepath.Join(textureDir, t.file)
		if err := c.textures.Load(path, t.tag); err != nil {
			logger.Warn("texture load failed",
				zap.String("path", path),
				zap.String("tag", t.tag),
				zap.Error(err),
			)
		}
	}
	c.textures.BindAll()

	c.library.LoadPlaneMesh()
	c.library.LoadBoxMesh()
	c.library.LoadTaperedCylinderMesh()
	c.library.LoadCylinderMesh()
	c.library.LoadTorusMesh()
	c.library.LoadConeMesh()
	c.library.LoadSphereMesh()

	logger.Info("scene prepared",
		zap.Int("textures", c.textures.Count()),
		zap.Int("materials", c.materials.Count()),
	)
	return nil
}

func (c *Composer) defineMaterials() {
	c.materials.Define("plastic",
		mgl32.Vec3{0.80, 0.80, 0.80}, mgl32.Vec3{0.15, 0.15, 0.15}, 8)
	c.materials.Define("tile",
		mgl32.Vec3{0.85, 0.85, 0.85}, mgl32.Vec3{0.75, 0.75, 0.75}, 32)
	c.materials.Define("metal",
		mgl32.Vec3{0.55, 0.55, 0.55}, mgl32.Vec3{0.90, 0.90, 0.90}, 64)
	c.materials.Define("wood",
		mgl32.Vec3{0.6, 0.5, 0.2}, mgl32.Vec3{0.1, 0.2, 0.2}, 1)
	c.materials.Define("glass",
		mgl32.Vec3{0.3, 0.3, 0.2}, mgl32.Vec3{0.9, 0.9, 0.8}, 10)
}

func (c *Composer) setupLights() error {
	c.lights.SetEnabled(true)

	// Hanging lamp
	if err := c.lights.SetLight(0, lighting.Light{
		Position: mgl32.Vec3{0, 11.05, 2},
		Ambient:  mgl32.Vec3{0.05, 0.04, 0.03},
		Diffuse:  mgl32.Vec3{1.00, 0.85, 0.55},
		Specular: mgl32.Vec3{0.25, 0.22, 0.18},
		Active:   true,
	}); err != nil {
		return err
	}

	// Soft fill
	return c.lights.SetLight(1, lighting.Light{
		Position: mgl32.Vec3{0, 2.5, 4},
		Ambient:  mgl32.Vec3{0.03, 0.03, 0.03},
		Diffuse:  mgl32.Vec3{0.45, 0.45, 0.45},
		Specular: mgl32.Vec3{0.10, 0.10, 0.10},
		Active:   true,
	})
}
