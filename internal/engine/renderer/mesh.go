package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// floatsPerVertex is position (x, y, z) + color (r, g, b).
const floatsPerVertex = 6

type mesh struct {
	vao, vbo uint32
	count    int32
}

func newMesh(vertices []float32) mesh {
	m := mesh{count: int32(len(vertices) / floatsPerVertex)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}

// cubeVertices returns a unit cube centred on the origin as 12 triangles.
// Faces are shaded so edges stay visible with a flat tint.
func cubeVertices() []float32 {
	type face struct {
		corners [4][3]float32
		shade   float32
	}
	faces := []face{
		{[4][3]float32{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}, 1.0},
		{[4][3]float32{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}, 0.55},
		{[4][3]float32{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}, 0.7},
		{[4][3]float32{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}, 0.85},
		{[4][3]float32{{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5}}, 0.95},
		{[4][3]float32{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}, 0.4},
	}

	out := make([]float32, 0, len(faces)*6*floatsPerVertex)
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			c := f.corners[i]
			out = append(out, c[0], c[1], c[2], f.shade, f.shade, f.shade)
		}
	}
	return out
}

// quadVertices returns the unit square [0,1]x[0,1] at z = 0.
func quadVertices() []float32 {
	return []float32{
		0, 0, 0, 1, 1, 1,
		1, 0, 0, 1, 1, 1,
		1, 1, 0, 1, 1, 1,
		0, 0, 0, 1, 1, 1,
		1, 1, 0, 1, 1, 1,
		0, 1, 0, 1, 1, 1,
	}
}
