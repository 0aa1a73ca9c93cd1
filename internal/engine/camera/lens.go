package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/pkg/matrix"
)

// Lens holds the projection parameters of the camera. FOVs are degrees.
type Lens struct {
	FovY     float64 // current vertical field of view
	BaseFovY float64 // field of view when not zoomed
	ZoomFovY float64 // field of view while the zoom input is held
	ZNear    float64
	ZFar     float64
}

// DefaultLens returns the lens used by the demos.
func DefaultLens() Lens {
	return Lens{
		FovY:     70,
		BaseFovY: 70,
		ZoomFovY: 20,
		ZNear:    0.01,
		ZFar:     1000,
	}
}

// Zoomed reports whether the zoom field of view is active.
func (l Lens) Zoomed() bool {
	return l.FovY == l.ZoomFovY && l.ZoomFovY != l.BaseFovY
}

// SensitivityScale is FovY/BaseFovY. Multiplying pointer deltas by it keeps
// the on-screen turn rate the same while zoomed.
func (l Lens) SensitivityScale() float64 {
	if l.BaseFovY == 0 {
		return 1
	}
	return l.FovY / l.BaseFovY
}

// Perspective writes the perspective projection for a width x height
// viewport onto the top frame of s and returns it.
func (l Lens) Perspective(s *matrix.Stack, width, height int) (mgl64.Mat4, error) {
	if err := s.SetPerspectiveProjection(l.FovY, float64(width), float64(height), l.ZNear, l.ZFar); err != nil {
		return mgl64.Mat4{}, err
	}
	return s.Peek(), nil
}

// Orthographic writes the 2D projection for a width x height viewport with
// the origin in the bottom-left corner.
func (l Lens) Orthographic(s *matrix.Stack, width, height int) (mgl64.Mat4, error) {
	if err := s.SetOrthographicProjection(0, 0, float64(width), float64(height), l.ZNear, l.ZFar); err != nil {
		return mgl64.Mat4{}, err
	}
	return s.Peek(), nil
}
