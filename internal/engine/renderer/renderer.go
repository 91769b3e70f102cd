// Package renderer owns the OpenGL pipeline state and the scene shader.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mwhitten/stillscene/internal/engine/shader"
	"github.com/mwhitten/stillscene/internal/engine/shader/shaders"
	"github.com/mwhitten/stillscene/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer initializes OpenGL and holds the forward scene program.
type Renderer struct {
	config  Config
	program *shader.Program
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	program, err := shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene shader program: %w", err)
	}
	r.program = program
	logger.Debug("scene shader program created", zap.Uint32("program", program.ID()))

	return r, nil
}

// Program returns the forward scene shader program.
func (r *Renderer) Program() *shader.Program {
	return r.program
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame: clears color and depth and activates the
// scene program.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.program.Use()
}

// ReadPixels reads the back buffer as tightly packed RGBA bytes, rows
// bottom-up. Call after drawing and before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
