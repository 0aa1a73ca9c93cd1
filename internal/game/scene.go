package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/pkg/matrix"
)

// overlayDepth keeps 2D geometry inside the orthographic depth range.
const overlayDepth = -1.0

// cursorDepth sits in front of overlayDepth so the cursor wins the depth
// test over the rectangle.
const cursorDepth = -0.5

// cursorSize is the edge of the 2D cursor square in pixels.
const cursorSize = 16.0

type cube struct {
	position mgl64.Vec3
	color    mgl32.Vec4
	spin     float64 // yaw degrees per second
}

var demoCubes = []cube{
	{position: mgl64.Vec3{0, -1, -4}, color: mgl32.Vec4{0.9, 0.2, 0.2, 1}},
	{position: mgl64.Vec3{0, 0, 0}, color: mgl32.Vec4{0.2, 0.9, 0.2, 1}},
	{position: mgl64.Vec3{7, 4, 4}, color: mgl32.Vec4{0.2, 0.4, 1, 1}, spin: 45},
	{position: mgl64.Vec3{4, 4, 7}, color: mgl32.Vec4{0.95, 0.85, 0.2, 1}},
}

var (
	rectColor      = mgl32.Vec4{0.3, 0.5, 0.8, 1}
	cursorColor    = mgl32.Vec4{1, 1, 1, 1}
	crosshairColor = mgl32.Vec4{1, 1, 1, 0.8}
)

// cubeModelView places c in the camera's view. elapsed drives the spin.
func cubeModelView(s *matrix.Stack, view mgl64.Mat4, c cube, elapsed float64) mgl64.Mat4 {
	s.Push()
	defer s.Pop()

	s.Load(view).
		Translate(c.position[0], c.position[1], c.position[2], matrix.NewTimesOld).
		Rotate(c.spin*elapsed, 0, 0, matrix.ZXY, matrix.NewTimesOld)
	return s.Peek()
}

// rectModelView returns the 2D rectangle: half the viewport, centred.
func rectModelView(s *matrix.Stack, width, height int) mgl64.Mat4 {
	w, h := float64(width), float64(height)

	s.Push()
	defer s.Pop()

	s.LoadIdentity().
		Translate(w/4, h/4, overlayDepth, matrix.NewTimesOld).
		Scale(w/2, h/2, 1, matrix.NewTimesOld)
	return s.Peek()
}

// cursorModelView returns a square centred on the pointer. Window
// coordinates grow downwards, the projection's y grows upwards.
func cursorModelView(s *matrix.Stack, mouseX, mouseY, height int) mgl64.Mat4 {
	x := float64(mouseX) - cursorSize/2
	y := float64(height-mouseY) - cursorSize/2

	s.Push()
	defer s.Pop()

	s.LoadIdentity().
		Translate(x, y, cursorDepth, matrix.NewTimesOld).
		Scale(cursorSize, cursorSize, 1, matrix.NewTimesOld)
	return s.Peek()
}

// crosshairModelViews returns the two bars of the screen-centre crosshair.
func crosshairModelViews(s *matrix.Stack, width, height int) [2]mgl64.Mat4 {
	const length, thickness = 14.0, 2.0
	cx, cy := float64(width)/2, float64(height)/2

	bar := func(w, h float64) mgl64.Mat4 {
		s.Push()
		defer s.Pop()
		s.LoadIdentity().
			Translate(cx-w/2, cy-h/2, overlayDepth, matrix.NewTimesOld).
			Scale(w, h, 1, matrix.NewTimesOld)
		return s.Peek()
	}
	return [2]mgl64.Mat4{bar(length, thickness), bar(thickness, length)}
}
