package camera

// Axis identifies an analog controller axis.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
)

// AxisReading is one analog axis value in [-1, 1].
type AxisReading struct {
	Axis  Axis
	Value float64
}

// Input is the per-frame input snapshot consumed by Controller.Advance.
type Input struct {
	Held     ActionSet // actions whose key or button is down
	Pressed  ActionSet // went down this frame
	Released ActionSet // went up this frame

	PointerDX float64 // pointer motion since last frame, pixels
	PointerDY float64
	Scroll    float64 // vertical wheel clicks, positive away from the user

	Axes []AxisReading

	// Captured gates pointer, key and controller input. Toggles are read
	// regardless.
	Captured bool
}
