// Package input turns SDL2 events into per-frame camera input snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/internal/logger"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventCapture
	EventRelease
	EventControllerAdded
	EventControllerRemoved
)

// Event represents a processed event the game loop has to act on. Camera
// input is not reported here; it is collected into the snapshot.
type Event struct {
	Type   EventType
	Width  int
	Height int
	Which  int // controller device index (added) or instance id (removed)
}

// Input handles all input processing.
type Input struct {
	bindings Bindings
	deadzone float64

	events []Event

	// Held actions per source, so a key and a button bound to the same
	// action do not release each other.
	heldKeys    camera.ActionSet
	heldButtons camera.ActionSet
	heldMouse   camera.ActionSet

	pressed  camera.ActionSet
	released camera.ActionSet

	dx, dy float64
	scroll float64
	axes   [axisCount]float64

	mouseX, mouseY int
	captured       bool
}

// New creates a new input handler.
func New(bindings Bindings, deadzone float64) *Input {
	return &Input{
		bindings: bindings,
		deadzone: deadzone,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events for one frame. Returns true if the game should
// quit.
func (i *Input) Update() bool {
	i.beginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}
	return quit
}

// beginFrame clears per-frame edges and deltas.
func (i *Input) beginFrame() {
	i.events = i.events[:0]
	i.pressed = 0
	i.released = 0
	i.dx, i.dy = 0, 0
	i.scroll = 0
}

// handle processes one event and reports whether it asks to quit.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		case sdl.WINDOWEVENT_FOCUS_LOST:
			i.setCaptured(false)
		}

	case *sdl.KeyboardEvent:
		if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if !i.captured {
					i.events = append(i.events, Event{Type: EventQuit})
					return true
				}
				i.setCaptured(false)
			}
			return false
		}
		a, ok := i.bindings.Keys[e.Keysym.Scancode]
		if !ok {
			return false
		}
		if e.Type == sdl.KEYDOWN {
			if e.Repeat == 0 {
				i.press(&i.heldKeys, a)
			}
		} else if e.Type == sdl.KEYUP {
			i.release(&i.heldKeys, a)
		}

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		if i.captured {
			i.dx += float64(e.XRel)
			i.dy += float64(e.YRel)
		}

	case *sdl.MouseButtonEvent:
		i.mouseX, i.mouseY = int(e.X), int(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT && !i.captured {
			i.setCaptured(true)
			return false
		}
		a, ok := i.bindings.Mouse[e.Button]
		if !ok {
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			i.press(&i.heldMouse, a)
		} else if e.Type == sdl.MOUSEBUTTONUP {
			i.release(&i.heldMouse, a)
		}

	case *sdl.MouseWheelEvent:
		y := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		i.scroll += y

	case *sdl.ControllerAxisEvent:
		i.controllerAxis(sdl.GameControllerAxis(e.Axis), e.Value)

	case *sdl.ControllerButtonEvent:
		i.controllerButton(sdl.GameControllerButton(e.Button), e.Type == sdl.CONTROLLERBUTTONDOWN)

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			i.events = append(i.events, Event{Type: EventControllerAdded, Which: int(e.Which)})
		case sdl.CONTROLLERDEVICEREMOVED:
			i.events = append(i.events, Event{Type: EventControllerRemoved, Which: int(e.Which)})
			i.axes = [axisCount]float64{}
			i.releaseAll(&i.heldButtons)
		}
	}

	return false
}

func (i *Input) controllerAxis(axis sdl.GameControllerAxis, raw int16) {
	a, ok := axisFor(axis)
	if !ok {
		return
	}
	i.axes[a] = normalizeAxis(raw, i.deadzone)
}

func (i *Input) controllerButton(button sdl.GameControllerButton, down bool) {
	a, ok := i.bindings.Buttons[button]
	if !ok {
		return
	}
	if down {
		i.press(&i.heldButtons, a)
	} else {
		i.release(&i.heldButtons, a)
	}
}

func (i *Input) held() camera.ActionSet {
	return i.heldKeys | i.heldButtons | i.heldMouse
}

func (i *Input) press(source *camera.ActionSet, a camera.Action) {
	if !i.held().Has(a) {
		i.pressed = i.pressed.With(a)
	}
	*source = source.With(a)
}

func (i *Input) release(source *camera.ActionSet, a camera.Action) {
	if !source.Has(a) {
		return
	}
	*source = source.Without(a)
	if !i.held().Has(a) {
		i.released = i.released.With(a)
	}
}

func (i *Input) releaseAll(source *camera.ActionSet) {
	for _, a := range camera.Actions() {
		i.release(source, a)
	}
}

func (i *Input) setCaptured(on bool) {
	if i.captured == on {
		return
	}
	i.captured = on
	if on {
		i.events = append(i.events, Event{Type: EventCapture})
	} else {
		i.events = append(i.events, Event{Type: EventRelease})
	}
	logger.Debug("mouse capture changed", zap.Bool("captured", on))
}

// Snapshot returns the camera input collected since the last Update.
func (i *Input) Snapshot() camera.Input {
	in := camera.Input{
		Held:      i.held(),
		Pressed:   i.pressed,
		Released:  i.released,
		PointerDX: i.dx,
		PointerDY: i.dy,
		Scroll:    i.scroll,
		Captured:  i.captured,
	}
	for a, v := range i.axes {
		if v != 0 {
			in.Axes = append(in.Axes, camera.AxisReading{Axis: camera.Axis(a), Value: v})
		}
	}
	return in
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Captured reports whether the pointer is captured by the window.
func (i *Input) Captured() bool {
	return i.captured
}

// SetCaptured captures or releases the pointer, e.g. on startup.
func (i *Input) SetCaptured(on bool) {
	i.setCaptured(on)
}

// MousePosition returns the last pointer position in window coordinates.
func (i *Input) MousePosition() (x, y int) {
	return i.mouseX, i.mouseY
}
