package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/internal/logger"
	"github.com/Faultbox/freecam/pkg/math"
)

// Validate checks the settings that would otherwise fail at runtime. All
// problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if !math.IsFinite(c.Camera.MouseSensitivity) {
		errs = append(errs, errors.New("camera.mouse_sensitivity: must be finite"))
	}
	if !math.IsFinite(c.Camera.MovementSpeed) {
		errs = append(errs, errors.New("camera.movement_speed: must be finite"))
	}

	for _, fov := range []struct {
		key string
		v   float64
	}{{"lens.fov", c.Lens.FovY}, {"lens.zoom_fov", c.Lens.ZoomFovY}} {
		if !(fov.v > 0 && fov.v < 180) {
			errs = append(errs, fmt.Errorf("%s: must be in (0, 180), got %g", fov.key, fov.v))
		}
	}
	if !(c.Lens.ZNear > 0) || !(c.Lens.ZFar > c.Lens.ZNear) || !math.IsFinite(c.Lens.ZFar) {
		errs = append(errs, fmt.Errorf("lens: need 0 < z_near < z_far, got %g, %g", c.Lens.ZNear, c.Lens.ZFar))
	}

	if c.Controller.Deadzone < 0 || c.Controller.Deadzone >= 1 {
		errs = append(errs, fmt.Errorf("controller.deadzone: must be in [0, 1), got %g", c.Controller.Deadzone))
	}

	for name, key := range c.Controls {
		if _, err := camera.ParseAction(name); err != nil {
			errs = append(errs, fmt.Errorf("controls.%s: %w", name, err))
		}
		if key == "" {
			errs = append(errs, fmt.Errorf("controls.%s: empty key name", name))
		}
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}

	return errors.Join(errs...)
}
