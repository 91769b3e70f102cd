// Package app wires the window, renderer, scene and input into the main
// loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/mwhitten/stillscene/internal/config"
	"github.com/mwhitten/stillscene/internal/engine/camera"
	"github.com/mwhitten/stillscene/internal/engine/capture"
	"github.com/mwhitten/stillscene/internal/engine/input"
	"github.com/mwhitten/stillscene/internal/engine/mesh"
	"github.com/mwhitten/stillscene/internal/engine/renderer"
	"github.com/mwhitten/stillscene/internal/engine/texture"
	"github.com/mwhitten/stillscene/internal/engine/view"
	"github.com/mwhitten/stillscene/internal/engine/window"
	"github.com/mwhitten/stillscene/internal/logger"
	"github.com/mwhitten/stillscene/internal/scene"
)

// App is the running application instance.
type App struct {
	cfg      *config.Config
	running  bool
	captured bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	controller *view.Controller
	composer   *scene.Composer
	screenshot *capture.Screenshot

	screenshotPending bool
}

// New creates the window, GL state and scene. The returned App owns all
// of them until Close.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing application",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("projection", cfg.Graphics.Projection),
	)

	a := &App{cfg: cfg}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Still Scene",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context the window created.
	a.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	program := a.renderer.Program()

	a.controller, err = view.NewController(program, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}
	cam := a.controller.Camera()
	cam.MovementSpeed = cfg.Camera.MovementSpeed
	cam.MouseSensitivity = cfg.Camera.MouseSensitivity
	cam.Zoom = cfg.Camera.Zoom
	if cfg.Graphics.Projection == "orthographic" {
		a.controller.SetMode(view.Orthographic)
	}

	textures, err := texture.NewRegistry(&texture.GLDevice{})
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}

	program.Use()
	a.composer, err = scene.New(program, mesh.NewGLLibrary(), textures)
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}
	if err := a.composer.Prepare(cfg.Assets.TextureDir); err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, err
	}

	a.input = input.New()
	a.screenshot = capture.NewScreenshot("screenshots", "stillscene")

	a.captured = true
	a.window.CaptureMouse(true)

	logger.Info("application initialized")
	return a, nil
}

// Run drives the main loop until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		a.handleEvents()
		a.handleMovement(dt)

		a.renderer.Begin()
		a.controller.Apply()
		a.composer.Textures().BindAll()
		a.composer.Render()

		if a.screenshotPending {
			a.screenshotPending = false
			pixels, w, h := a.renderer.ReadPixels()
			if name, err := a.screenshot.SaveFromPixels(pixels, w, h); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			} else {
				logger.Info("screenshot saved", zap.String("file", name))
			}
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents processes discrete events: quit, resize, projection
// switches, mouse look and zoom.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(event.Width, event.Height)
			a.controller.Resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_TAB:
				a.captured = !a.captured
				a.window.CaptureMouse(a.captured)
			case sdl.SCANCODE_P:
				a.controller.SetMode(view.Perspective)
			case sdl.SCANCODE_O:
				a.controller.SetMode(view.Orthographic)
			case sdl.SCANCODE_F12:
				a.screenshotPending = true
			}

		case input.EventMouseMove:
			if a.captured {
				// SDL reports Y down, camera pitch is positive up.
				a.controller.HandleLook(float32(event.XRel), -float32(event.YRel))
			}

		case input.EventMouseScroll:
			a.controller.HandleScroll(float32(event.ScrollY))
		}
	}
}

// handleMovement applies held movement keys every frame so motion speed
// is frame-rate independent.
func (a *App) handleMovement(dt float32) {
	keys := []struct {
		scancode sdl.Scancode
		dir      camera.Movement
	}{
		{sdl.SCANCODE_W, camera.Forward},
		{sdl.SCANCODE_S, camera.Backward},
		{sdl.SCANCODE_A, camera.Left},
		{sdl.SCANCODE_D, camera.Right},
		{sdl.SCANCODE_Q, camera.Down},
		{sdl.SCANCODE_E, camera.Up},
	}
	for _, k := range keys {
		if a.input.IsKeyHeld(k.scancode) {
			a.controller.HandleMove(k.dir, dt)
		}
	}
}

// Close releases all resources.
func (a *App) Close() {
	logger.Info("closing application")

	if a.composer != nil {
		logger.Info("render stats",
			zap.Int("texture_misses", a.composer.TextureMisses()),
			zap.Int("material_misses", a.composer.Materials().Misses()),
		)
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
