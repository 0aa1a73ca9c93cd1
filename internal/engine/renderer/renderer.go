// Package renderer draws the demo scene with OpenGL. Every transform comes
// from a matrix stack; the renderer only uploads what it is given.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	program program
	cube    mesh
	quad    mesh
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

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	var err error
	r.program, err = newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.cube = newMesh(cubeVertices())
	r.quad = newMesh(quadVertices())
	logger.Debug("meshes created",
		zap.Int32("cube_vertices", r.cube.count),
		zap.Int32("quad_vertices", r.quad.count),
	)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.cube.delete()
	r.quad.delete()
	r.program.delete()
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

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program.id)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// SetProjection sets the projection matrix for the following draws.
func (r *Renderer) SetProjection(m mgl32.Mat4) {
	r.program.setMat4(r.program.projection, m)
}

// Overlay switches depth testing off so the following draws land on top.
func (r *Renderer) Overlay() {
	gl.Disable(gl.DEPTH_TEST)
}

// DrawCube draws a unit cube centred on the origin of modelView.
func (r *Renderer) DrawCube(modelView mgl32.Mat4, tint mgl32.Vec4) {
	r.draw(&r.cube, modelView, tint)
}

// DrawQuad draws the unit square [0,1]x[0,1] at z = 0 of modelView.
func (r *Renderer) DrawQuad(modelView mgl32.Mat4, tint mgl32.Vec4) {
	r.draw(&r.quad, modelView, tint)
}

func (r *Renderer) draw(m *mesh, modelView mgl32.Mat4, tint mgl32.Vec4) {
	r.program.setMat4(r.program.modelView, modelView)
	gl.Uniform4f(r.program.tint, tint[0], tint[1], tint[2], tint[3])
	m.draw()
}
