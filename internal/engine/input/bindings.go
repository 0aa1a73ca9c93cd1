package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/freecam/internal/engine/camera"
)

// Bindings maps device inputs to camera actions.
type Bindings struct {
	Keys    map[sdl.Scancode]camera.Action
	Buttons map[sdl.GameControllerButton]camera.Action
	Mouse   map[uint8]camera.Action
}

// DefaultButtons returns the game controller bindings.
func DefaultButtons() map[sdl.GameControllerButton]camera.Action {
	return map[sdl.GameControllerButton]camera.Action{
		sdl.CONTROLLER_BUTTON_A:             camera.Up,
		sdl.CONTROLLER_BUTTON_X:             camera.Down,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  camera.RollLeft,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: camera.RollRight,
		sdl.CONTROLLER_BUTTON_DPAD_UP:       camera.Zoom,
		sdl.CONTROLLER_BUTTON_BACK:          camera.ResetPose,
		sdl.CONTROLLER_BUTTON_RIGHTSTICK:    camera.ResetDistance,
		sdl.CONTROLLER_BUTTON_START:         camera.Toggle3D,
	}
}

// DefaultMouse returns the mouse button bindings.
func DefaultMouse() map[uint8]camera.Action {
	return map[uint8]camera.Action{
		sdl.BUTTON_MIDDLE: camera.ResetDistance,
	}
}

// ParseKeys resolves a config controls section (action name to SDL key
// name) into scancode bindings.
func ParseKeys(controls map[string]string) (map[sdl.Scancode]camera.Action, error) {
	names := make([]string, 0, len(controls))
	for name := range controls {
		names = append(names, name)
	}
	sort.Strings(names)

	keys := make(map[sdl.Scancode]camera.Action, len(controls))
	var errs []error
	for _, name := range names {
		action, err := camera.ParseAction(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := controls[name]
		sc := sdl.GetScancodeFromName(key)
		if sc == sdl.SCANCODE_UNKNOWN {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", name, key))
			continue
		}
		if prev, ok := keys[sc]; ok {
			errs = append(errs, fmt.Errorf("%s: key %q already bound to %s", name, key, prev))
			continue
		}
		keys[sc] = action
	}
	return keys, errors.Join(errs...)
}

// NewBindings builds the full binding set from a controls section. When
// controllers is false no game controller buttons are bound.
func NewBindings(controls map[string]string, controllers bool) (Bindings, error) {
	keys, err := ParseKeys(controls)
	if err != nil {
		return Bindings{}, fmt.Errorf("parsing controls: %w", err)
	}
	b := Bindings{
		Keys:  keys,
		Mouse: DefaultMouse(),
	}
	if controllers {
		b.Buttons = DefaultButtons()
	}
	return b, nil
}
