// Package game implements the demo loop: input, camera, matrices, drawing.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/config"
	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/internal/engine/input"
	"github.com/Faultbox/freecam/internal/engine/renderer"
	"github.com/Faultbox/freecam/internal/engine/window"
	"github.com/Faultbox/freecam/internal/logger"
	"github.com/Faultbox/freecam/pkg/matrix"
)

// titleInterval throttles window title updates.
const titleInterval = 250 * time.Millisecond

// Game is the main demo instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera   *camera.Controller
	stack    *matrix.Stack
	lastView mgl64.Mat4
	elapsed  float64

	fps       int
	lastTitle time.Time

	log *zap.Logger
}

// New creates the window, renderer, input bindings and camera.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config:   cfg,
		camera:   camera.NewController(cfg.CameraController()),
		stack:    matrix.NewWithCapacity(8),
		lastView: mgl64.Ident4(),
		log:      logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	bindings, err := input.NewBindings(cfg.Controls, cfg.Controller.Enabled)
	if err != nil {
		return nil, err
	}
	g.input = input.New(bindings, cfg.Controller.Deadzone)

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:       cfg.Window.Title,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Fullscreen:  cfg.Window.Fullscreen,
		VSync:       cfg.Window.VSync,
		Controllers: cfg.Controller.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Fullscreen may not match the configured size
	width, height := g.window.GetSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.lastView = g.camera.View(g.stack)
	g.log.Info("initialized successfully")
	return g, nil
}

// Run starts the main loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		g.update(dt)

		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			g.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
		g.updateTitle(now)
	}

	return nil
}

// Close cleans up resources.
func (g *Game) Close() {
	g.log.Info("closing")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(event.Width, event.Height)
		case input.EventCapture:
			g.window.SetCaptured(true)
		case input.EventRelease:
			g.window.SetCaptured(false)
		case input.EventControllerAdded:
			g.window.OpenController(event.Which)
		case input.EventControllerRemoved:
			g.window.CloseController(event.Which)
		}
	}
}

// update advances the camera with this frame's input. The view matrix of
// the previous frame is what the player saw, so it steers the movement.
func (g *Game) update(dt float64) {
	g.camera.Advance(g.input.Snapshot(), dt, g.lastView)
	g.lastView = g.camera.View(g.stack)
	g.elapsed += dt
}

func (g *Game) render() error {
	width, height := g.renderer.Size()
	if width <= 0 || height <= 0 {
		// Minimized
		return nil
	}

	g.renderer.Begin()
	defer g.renderer.End()

	if !g.camera.Is3D() {
		return g.render2D(width, height)
	}
	return g.render3D(width, height)
}

func (g *Game) render2D(width, height int) error {
	proj, err := g.projection(func() (mgl64.Mat4, error) {
		return g.camera.Lens().Orthographic(g.stack, width, height)
	})
	if err != nil {
		return err
	}
	g.renderer.Overlay()
	g.renderer.SetProjection(proj)

	g.renderer.DrawQuad(mat32(rectModelView(g.stack, width, height)), rectColor)
	mx, my := g.input.MousePosition()
	g.renderer.DrawQuad(mat32(cursorModelView(g.stack, mx, my, height)), cursorColor)
	return nil
}

func (g *Game) render3D(width, height int) error {
	proj, err := g.projection(func() (mgl64.Mat4, error) {
		return g.camera.Lens().Perspective(g.stack, width, height)
	})
	if err != nil {
		return err
	}
	g.renderer.SetProjection(proj)

	for _, c := range demoCubes {
		g.renderer.DrawCube(mat32(cubeModelView(g.stack, g.lastView, c, g.elapsed)), c.color)
	}

	overlay, err := g.projection(func() (mgl64.Mat4, error) {
		return g.camera.Lens().Orthographic(g.stack, width, height)
	})
	if err != nil {
		return err
	}
	g.renderer.Overlay()
	g.renderer.SetProjection(overlay)
	for _, bar := range crosshairModelViews(g.stack, width, height) {
		g.renderer.DrawQuad(mat32(bar), crosshairColor)
	}
	return nil
}

// projection runs set on a pushed frame so the stack's base frame is never
// overwritten, and returns the result in float32 for upload.
func (g *Game) projection(set func() (mgl64.Mat4, error)) (mgl32.Mat4, error) {
	g.stack.Push()
	defer g.stack.Pop()
	if _, err := set(); err != nil {
		return mgl32.Mat4{}, fmt.Errorf("projection: %w", err)
	}
	return g.stack.Peekf(), nil
}

func (g *Game) updateTitle(now time.Time) {
	if now.Sub(g.lastTitle) < titleInterval {
		return
	}
	g.lastTitle = now
	g.window.SetTitle(windowTitle(g.config.Window.Title, g.camera, g.input.Captured(), g.fps))
}

func windowTitle(base string, c *camera.Controller, captured bool, fps int) string {
	if !c.Is3D() {
		return fmt.Sprintf("%s [2D] %d fps", base, fps)
	}
	title := fmt.Sprintf("%s [3D] %d fps | %s", base, fps, c.InfoLine())
	if !captured {
		title += " | click to capture"
	}
	return title
}

func mat32(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
