package input

import (
	gomath "math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/pkg/math"
)

const axisCount = 4

const axisMax = 32767.0

func axisFor(axis sdl.GameControllerAxis) (camera.Axis, bool) {
	switch axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		return camera.AxisLeftX, true
	case sdl.CONTROLLER_AXIS_LEFTY:
		return camera.AxisLeftY, true
	case sdl.CONTROLLER_AXIS_RIGHTX:
		return camera.AxisRightX, true
	case sdl.CONTROLLER_AXIS_RIGHTY:
		return camera.AxisRightY, true
	}
	return 0, false
}

// normalizeAxis maps a raw stick value to [-1, 1]. Values inside the
// deadzone read as 0 and the rest is rescaled so output starts at 0 at the
// deadzone edge.
func normalizeAxis(raw int16, deadzone float64) float64 {
	v := math.Clamp(float64(raw)/axisMax, -1, 1)
	mag := gomath.Abs(v)
	if mag <= deadzone {
		return 0
	}
	if deadzone > 0 {
		mag = (mag - deadzone) / (1 - deadzone)
	}
	return gomath.Copysign(mag, v)
}
