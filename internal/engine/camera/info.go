package camera

import (
	"fmt"
	"strings"

	"github.com/Faultbox/freecam/pkg/math"
)

const infoDecimals = 4

// Info returns the diagnostic lines shown by the demos: mode flags,
// tuning, position, angles and lens. Numbers are truncated, not rounded.
func (c *Controller) Info() []string {
	f := func(v float64) string { return math.FormatDecimals(v, infoDecimals) }
	p := c.pose
	return []string{
		fmt.Sprintf("FreeLook: %s; FreeMove: %s; Camera Upside-down: %t;",
			abled(c.freeLook), abled(c.freeMove), c.upsideDown),
		fmt.Sprintf("Mouse Sensitivity: %s; Movement Speed: %s;",
			f(c.mouseSensitivity), f(c.movementSpeed)),
		fmt.Sprintf("X: %s; Y: %s; Z: %s; ~: %s;", f(p.X), f(p.Y), f(p.Z), f(p.Distance)),
		fmt.Sprintf("Yaw: %s; Pitch: %s; Roll: %s;", f(p.Yaw), f(p.Pitch), f(p.Roll)),
		fmt.Sprintf("Field of View: %s; zNear: %s; zFar: %s;", f(c.lens.FovY), f(c.lens.ZNear), f(c.lens.ZFar)),
	}
}

// InfoLine joins Info into a single line, for a window title.
func (c *Controller) InfoLine() string {
	return strings.Join(c.Info(), " ")
}

func abled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
