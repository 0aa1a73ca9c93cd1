package input

import (
	"math"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/freecam/internal/engine/camera"
)

func testInput() *Input {
	return New(Bindings{
		Keys: map[sdl.Scancode]camera.Action{
			sdl.SCANCODE_W: camera.Forward,
			sdl.SCANCODE_Z: camera.Zoom,
		},
		Buttons: DefaultButtons(),
		Mouse:   DefaultMouse(),
	}, 0.1)
}

func key(down bool, sc sdl.Scancode) *sdl.KeyboardEvent {
	e := &sdl.KeyboardEvent{Type: sdl.KEYUP}
	if down {
		e.Type = sdl.KEYDOWN
	}
	e.Keysym.Scancode = sc
	return e
}

func hasEvent(i *Input, t EventType) bool {
	for _, e := range i.Events() {
		if e.Type == t {
			return true
		}
	}
	return false
}

func TestKeyEdges(t *testing.T) {
	i := testInput()

	i.beginFrame()
	i.handle(key(true, sdl.SCANCODE_W))
	in := i.Snapshot()
	if !in.Held.Has(camera.Forward) || !in.Pressed.Has(camera.Forward) {
		t.Fatalf("expected forward held and pressed, got %+v", in)
	}

	// Auto-repeat is not a new press
	i.beginFrame()
	repeat := key(true, sdl.SCANCODE_W)
	repeat.Repeat = 1
	i.handle(repeat)
	in = i.Snapshot()
	if !in.Held.Has(camera.Forward) || in.Pressed.Has(camera.Forward) {
		t.Errorf("repeat should keep held without a press edge, got %+v", in)
	}

	i.beginFrame()
	i.handle(key(false, sdl.SCANCODE_W))
	in = i.Snapshot()
	if in.Held.Has(camera.Forward) || !in.Released.Has(camera.Forward) {
		t.Errorf("expected forward released, got %+v", in)
	}

	i.beginFrame()
	if in = i.Snapshot(); in.Released != 0 || in.Pressed != 0 {
		t.Errorf("edges should clear on the next frame, got %+v", in)
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	i := testInput()
	i.beginFrame()
	i.handle(key(true, sdl.SCANCODE_P))
	if in := i.Snapshot(); in.Held != 0 || in.Pressed != 0 {
		t.Errorf("unbound key changed input: %+v", in)
	}
}

func TestKeyAndButtonShareAction(t *testing.T) {
	i := testInput()
	i.beginFrame()
	i.handle(key(true, sdl.SCANCODE_Z))
	i.controllerButton(sdl.CONTROLLER_BUTTON_DPAD_UP, true)
	in := i.Snapshot()
	if !in.Pressed.Has(camera.Zoom) {
		t.Fatal("expected zoom pressed")
	}

	// Releasing one source keeps the action held
	i.beginFrame()
	i.handle(key(false, sdl.SCANCODE_Z))
	in = i.Snapshot()
	if !in.Held.Has(camera.Zoom) || in.Released.Has(camera.Zoom) {
		t.Errorf("zoom should stay held by the button, got %+v", in)
	}

	i.beginFrame()
	i.controllerButton(sdl.CONTROLLER_BUTTON_DPAD_UP, false)
	if in = i.Snapshot(); !in.Released.Has(camera.Zoom) {
		t.Errorf("zoom should release with the last source, got %+v", in)
	}
}

func TestPointerOnlyWhenCaptured(t *testing.T) {
	i := testInput()

	i.beginFrame()
	i.handle(&sdl.MouseMotionEvent{X: 10, Y: 20, XRel: 5, YRel: -3})
	in := i.Snapshot()
	if in.PointerDX != 0 || in.PointerDY != 0 || in.Captured {
		t.Errorf("uncaptured motion should not turn the camera, got %+v", in)
	}
	if x, y := i.MousePosition(); x != 10 || y != 20 {
		t.Errorf("expected mouse position (10, 20), got (%d, %d)", x, y)
	}

	i.beginFrame()
	i.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	if !i.Captured() || !hasEvent(i, EventCapture) {
		t.Fatal("left click should capture the pointer")
	}
	i.handle(&sdl.MouseMotionEvent{XRel: 5, YRel: -3})
	i.handle(&sdl.MouseMotionEvent{XRel: 2, YRel: 1})
	in = i.Snapshot()
	if in.PointerDX != 7 || in.PointerDY != -2 || !in.Captured {
		t.Errorf("expected accumulated deltas (7, -2), got %+v", in)
	}
}

func TestEscapeReleasesThenQuits(t *testing.T) {
	i := testInput()
	i.SetCaptured(true)

	i.beginFrame()
	if quit := i.handle(key(true, sdl.SCANCODE_ESCAPE)); quit {
		t.Fatal("escape while captured should only release")
	}
	if i.Captured() || !hasEvent(i, EventRelease) {
		t.Fatal("escape should release the pointer")
	}
	i.handle(key(false, sdl.SCANCODE_ESCAPE))

	i.beginFrame()
	if quit := i.handle(key(true, sdl.SCANCODE_ESCAPE)); !quit || !hasEvent(i, EventQuit) {
		t.Error("escape while released should quit")
	}
}

func TestFocusLostReleases(t *testing.T) {
	i := testInput()
	i.SetCaptured(true)
	i.beginFrame()
	i.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST})
	if i.Captured() {
		t.Error("focus loss should release the pointer")
	}
}

func TestResizeEvent(t *testing.T) {
	i := testInput()
	i.beginFrame()
	i.handle(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_RESIZED, Data1: 1024, Data2: 768})
	ev := i.Events()
	if len(ev) != 1 || ev[0].Type != EventWindowResize || ev[0].Width != 1024 || ev[0].Height != 768 {
		t.Errorf("unexpected events %+v", ev)
	}
}

func TestWheelAndMiddleButton(t *testing.T) {
	i := testInput()
	i.beginFrame()
	i.handle(&sdl.MouseWheelEvent{Y: 2})
	i.handle(&sdl.MouseWheelEvent{Y: 1})
	i.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_MIDDLE})
	in := i.Snapshot()
	if in.Scroll != 3 {
		t.Errorf("expected scroll 3, got %f", in.Scroll)
	}
	if !in.Held.Has(camera.ResetDistance) {
		t.Error("middle button should hold reset_distance")
	}
}

func TestControllerAxes(t *testing.T) {
	i := testInput()
	i.beginFrame()
	i.controllerAxis(sdl.CONTROLLER_AXIS_RIGHTX, 32767)
	i.controllerAxis(sdl.CONTROLLER_AXIS_LEFTY, -32768)
	i.controllerAxis(sdl.CONTROLLER_AXIS_LEFTX, 1000) // inside deadzone

	in := i.Snapshot()
	got := map[camera.Axis]float64{}
	for _, a := range in.Axes {
		got[a.Axis] = a.Value
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 active axes, got %v", in.Axes)
	}
	if got[camera.AxisRightX] != 1 || got[camera.AxisLeftY] != -1 {
		t.Errorf("unexpected axis values %v", got)
	}

	// Stick positions persist across frames until they change
	i.beginFrame()
	if len(i.Snapshot().Axes) != 2 {
		t.Error("axis state should persist between frames")
	}

	i.handle(&sdl.ControllerDeviceEvent{Type: sdl.CONTROLLERDEVICEREMOVED, Which: 0})
	if len(i.Snapshot().Axes) != 0 || !hasEvent(i, EventControllerRemoved) {
		t.Error("removing the controller should clear its axes")
	}
}

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		raw      int16
		deadzone float64
		want     float64
	}{
		{0, 0, 0},
		{32767, 0, 1},
		{-32768, 0, -1},
		{16384, 0, 16384.0 / 32767},
		{3000, 0.1, 0},
		{-3000, 0.1, 0},
		{32767, 0.2, 1},
	}
	for _, tt := range tests {
		got := normalizeAxis(tt.raw, tt.deadzone)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeAxis(%d, %v) = %v, want %v", tt.raw, tt.deadzone, got, tt.want)
		}
	}

	// Continuous at the deadzone edge
	edge := normalizeAxis(6554, 0.2)
	if edge < 0 || edge > 0.001 {
		t.Errorf("value just past the deadzone should be near 0, got %v", edge)
	}
}
