// Package camera implements a free-flight camera controller: per-frame input
// moves and turns a pose, and the pose composes a view matrix on a
// matrix.Stack.
package camera

import (
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/logger"
	"github.com/Faultbox/freecam/pkg/math"
	"github.com/Faultbox/freecam/pkg/matrix"
)

const (
	// AxisRate scales analog stick throw to roughly the angular rate of
	// mouse movement.
	AxisRate = 625.0
	// RollRate scales roll input per second of hold.
	RollRate = 100.0
	// RollDamping is the per-tick factor roll decays by without free-look.
	RollDamping = 0.95
	// RollSnap is how close to level roll must get before it snaps to 0.
	RollSnap = 0.01
	// ScrollStep is the number of wheel clicks per unit of orbit distance.
	ScrollStep = 3.0
	// CommitInterval forces a commit even when the pose is unchanged.
	CommitInterval = time.Second
)

// Config holds the initial controller settings. Zero tuning values and a
// zero Lens take the DefaultConfig values.
type Config struct {
	MouseSensitivity float64
	MovementSpeed    float64

	FreeLook bool
	FreeMove bool

	InvertYawWhenUpsideDown              bool
	InvertPitchWhenUpsideDown            bool
	InvertForwardMovementWhenUpsideDown  bool
	InvertVerticalMovementWhenUpsideDown bool

	PrintInfo bool
	Start3D   bool

	Lens Lens
}

// DefaultConfig returns the demo defaults.
func DefaultConfig() Config {
	return Config{
		MouseSensitivity: 0.15,
		MovementSpeed:    1.2,
		Lens:             DefaultLens(),
	}
}

// Controller turns per-frame input into a camera pose.
//
// Advance must be called from a single goroutine. Snapshot may be called
// from any goroutine.
type Controller struct {
	pose Pose
	lens Lens

	mode3D     bool
	upsideDown bool

	mouseSensitivity float64
	movementSpeed    float64

	freeLook       bool
	freeMove       bool
	invertYaw      bool
	invertPitch    bool
	invertForward  bool
	invertVertical bool
	printInfo      bool

	lastCommit time.Time
	committed  atomic.Pointer[Pose]
	now        func() time.Time
}

// NewController creates a controller with an all-zero pose.
func NewController(cfg Config) *Controller {
	def := DefaultConfig()
	c := &Controller{
		lens:             cfg.Lens,
		mode3D:           cfg.Start3D,
		mouseSensitivity: def.MouseSensitivity,
		movementSpeed:    def.MovementSpeed,
		freeLook:         cfg.FreeLook,
		freeMove:         cfg.FreeMove,
		invertYaw:        cfg.InvertYawWhenUpsideDown,
		invertPitch:      cfg.InvertPitchWhenUpsideDown,
		invertForward:    cfg.InvertForwardMovementWhenUpsideDown,
		invertVertical:   cfg.InvertVerticalMovementWhenUpsideDown,
		printInfo:        cfg.PrintInfo,
		now:              time.Now,
	}
	if c.lens == (Lens{}) {
		c.lens = def.Lens
	}
	if cfg.MouseSensitivity != 0 {
		c.SetMouseSensitivity(cfg.MouseSensitivity)
	}
	if cfg.MovementSpeed != 0 {
		c.SetMovementSpeed(cfg.MovementSpeed)
	}

	initial := Pose{}
	c.committed.Store(&initial)
	return c
}

// Advance runs one input tick. view is the view matrix rendered for the
// previous frame; movement axes and the upside-down state are read from it
// so they match what was on screen.
func (c *Controller) Advance(in Input, dt float64, view mgl64.Mat4) Pose {
	c.upsideDown = UpsideDown(view)
	c.applyToggles(in)
	if !c.mode3D {
		return c.pose
	}

	p := c.pose
	if in.Captured {
		c.move(&p, in, dt, view)
		c.turn(&p, in, dt)
		c.adjust(&p, in)
	}
	c.settle(&p)
	c.commit(p)
	return p
}

// View composes the view matrix for the current pose on s.
func (c *Controller) View(s *matrix.Stack) mgl64.Mat4 {
	return c.pose.View(s)
}

// Pose returns the live pose. Call it from the goroutine driving Advance.
func (c *Controller) Pose() Pose {
	return c.pose
}

// SetPose replaces the live pose. Angles are wrapped to [0, 360).
func (c *Controller) SetPose(p Pose) {
	p.Yaw = math.Wrap360(p.Yaw)
	p.Pitch = math.Wrap360(p.Pitch)
	p.Roll = math.Wrap360(p.Roll)
	c.pose = p
	snap := p
	c.committed.Store(&snap)
}

// Snapshot returns the last committed pose.
func (c *Controller) Snapshot() Pose {
	return *c.committed.Load()
}

// Lens returns the current projection parameters.
func (c *Controller) Lens() Lens {
	return c.lens
}

// SetLens replaces the projection parameters.
func (c *Controller) SetLens(l Lens) {
	c.lens = l
}

// Is3D reports whether the 3D mode is active.
func (c *Controller) Is3D() bool { return c.mode3D }

// Set3D switches between 2D and 3D mode.
func (c *Controller) Set3D(on bool) { c.mode3D = on }

// UpsideDown reports the upside-down state read from the last view matrix
// passed to Advance.
func (c *Controller) UpsideDown() bool { return c.upsideDown }

// MouseSensitivity returns the pointer sensitivity in degrees per pixel.
func (c *Controller) MouseSensitivity() float64 { return c.mouseSensitivity }

// SetMouseSensitivity sets the pointer sensitivity. NaN and infinite values
// are ignored.
func (c *Controller) SetMouseSensitivity(v float64) {
	if math.IsFinite(v) {
		c.mouseSensitivity = v
	}
}

// MovementSpeed returns the movement speed in units per second.
func (c *Controller) MovementSpeed() float64 { return c.movementSpeed }

// SetMovementSpeed sets the movement speed in units per second. NaN and
// infinite values are ignored.
func (c *Controller) SetMovementSpeed(v float64) {
	if math.IsFinite(v) {
		c.movementSpeed = v
	}
}

// FreeLook reports whether pitch may pass vertical and roll stays put.
func (c *Controller) FreeLook() bool { return c.freeLook }

// SetFreeLook turns free-look on or off.
func (c *Controller) SetFreeLook(on bool) { c.freeLook = on }

// FreeMove reports whether movement follows the full view axes.
func (c *Controller) FreeMove() bool { return c.freeMove }

// SetFreeMove turns free-move on or off.
func (c *Controller) SetFreeMove(on bool) { c.freeMove = on }

// PrintInfo reports whether commits are logged.
func (c *Controller) PrintInfo() bool { return c.printInfo }

// SetPrintInfo turns commit logging on or off.
func (c *Controller) SetPrintInfo(on bool) { c.printInfo = on }

// InvertYaw reports whether yaw flips while upside-down.
func (c *Controller) InvertYaw() bool { return c.invertYaw }

// SetInvertYaw sets whether yaw flips while upside-down.
func (c *Controller) SetInvertYaw(on bool) { c.invertYaw = on }

// InvertPitch reports whether pitch flips while rolled over.
func (c *Controller) InvertPitch() bool { return c.invertPitch }

// SetInvertPitch sets whether pitch flips while rolled over.
func (c *Controller) SetInvertPitch(on bool) { c.invertPitch = on }

// InvertForwardMovement reports whether ground forward/backward flips while
// upside-down.
func (c *Controller) InvertForwardMovement() bool { return c.invertForward }

// SetInvertForwardMovement sets whether ground forward/backward flips while
// upside-down.
func (c *Controller) SetInvertForwardMovement(on bool) { c.invertForward = on }

// InvertVerticalMovement reports whether ground up/down flips while
// upside-down.
func (c *Controller) InvertVerticalMovement() bool { return c.invertVertical }

// SetInvertVerticalMovement sets whether ground up/down flips while
// upside-down.
func (c *Controller) SetInvertVerticalMovement(on bool) { c.invertVertical = on }

func (c *Controller) applyToggles(in Input) {
	toggles := []struct {
		action Action
		flag   *bool
	}{
		{Toggle3D, &c.mode3D},
		{ToggleFreeLook, &c.freeLook},
		{ToggleFreeMove, &c.freeMove},
		{ToggleInvertYaw, &c.invertYaw},
		{ToggleInvertPitch, &c.invertPitch},
		{ToggleInvertForward, &c.invertForward},
		{ToggleInvertVertical, &c.invertVertical},
		{TogglePrintInfo, &c.printInfo},
	}
	for _, t := range toggles {
		if in.Pressed.Has(t.action) {
			*t.flag = !*t.flag
			logger.Debug("camera setting toggled",
				zap.Stringer("action", t.action),
				zap.Bool("enabled", *t.flag),
			)
		}
	}
}

// commit stores p. The snapshot and info log are refreshed only when the
// pose changed or CommitInterval elapsed.
func (c *Controller) commit(p Pose) {
	now := c.now()
	if p == c.pose && now.Sub(c.lastCommit) < CommitInterval {
		return
	}
	c.pose = p
	c.lastCommit = now

	snap := p
	c.committed.Store(&snap)

	if c.printInfo {
		logger.Info("camera",
			zap.String("x", math.FormatDecimals(p.X, 4)),
			zap.String("y", math.FormatDecimals(p.Y, 4)),
			zap.String("z", math.FormatDecimals(p.Z, 4)),
			zap.String("yaw", math.FormatDecimals(p.Yaw, 4)),
			zap.String("pitch", math.FormatDecimals(p.Pitch, 4)),
			zap.String("roll", math.FormatDecimals(p.Roll, 4)),
		)
		logger.Sugar.Info("\n" + matrix.Format("3D Model View", p.View(matrix.New()), 4))
	}
}

func sign(invert bool) float64 {
	if invert {
		return -1
	}
	return 1
}
