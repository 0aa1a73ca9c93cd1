package matrix

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/pkg/math"
)

// Projection errors. The top frame is left untouched when one is returned.
var (
	ErrZeroHeight         = errors.New("matrix: viewport height is zero")
	ErrZeroWidth          = errors.New("matrix: viewport width is zero")
	ErrInvalidAspect      = errors.New("matrix: aspect ratio must be positive")
	ErrInvalidDepthRange  = errors.New("matrix: zFar must be greater than zNear")
	ErrInvalidFieldOfView = errors.New("matrix: field of view must be within (0, 180) degrees")
	ErrNonFinite          = errors.New("matrix: projection parameter is NaN or infinite")
)

// SetPerspectiveProjection replaces the top frame with a perspective
// projection. fovY is the vertical field of view in degrees; the aspect
// ratio is width/height.
func (s *Stack) SetPerspectiveProjection(fovY, width, height, zNear, zFar float64) error {
	if err := checkFinite(fovY, width, height, zNear, zFar); err != nil {
		return err
	}
	if height == 0 {
		return ErrZeroHeight
	}
	if width == 0 {
		return ErrZeroWidth
	}
	if width/height < 0 {
		return fmt.Errorf("%w (%g x %g)", ErrInvalidAspect, width, height)
	}
	if zFar <= zNear {
		return fmt.Errorf("%w (near %g, far %g)", ErrInvalidDepthRange, zNear, zFar)
	}
	if fovY <= 0 || fovY >= 180 {
		return fmt.Errorf("%w (got %g)", ErrInvalidFieldOfView, fovY)
	}

	s.Load(mgl64.Perspective(mgl64.DegToRad(fovY), width/height, zNear, zFar))
	return nil
}

// SetOrthographicProjection replaces the top frame with an orthographic
// projection mapping x in [x, x+width] and y in [y, y+height], with y
// growing upwards.
func (s *Stack) SetOrthographicProjection(x, y, width, height, zNear, zFar float64) error {
	if err := checkFinite(x, y, width, height, zNear, zFar); err != nil {
		return err
	}
	if height == 0 {
		return ErrZeroHeight
	}
	if width == 0 {
		return ErrZeroWidth
	}
	if zFar <= zNear {
		return fmt.Errorf("%w (near %g, far %g)", ErrInvalidDepthRange, zNear, zFar)
	}

	s.Load(mgl64.Ortho(x, x+width, y, y+height, zNear, zFar))
	return nil
}

func checkFinite(values ...float64) error {
	for _, v := range values {
		if !math.IsFinite(v) {
			return ErrNonFinite
		}
	}
	return nil
}
