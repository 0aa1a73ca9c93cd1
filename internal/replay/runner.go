package replay

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/config"
	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/internal/logger"
	"github.com/Faultbox/freecam/pkg/math"
	"github.com/Faultbox/freecam/pkg/matrix"
)

// Options control the replay output.
type Options struct {
	Decimals  int  // digits kept in printed numbers
	DumpAll   bool // print the view matrix after every tick
	PrintInfo bool // print the controller info lines at the end
}

// DefaultOptions returns the CLI defaults.
func DefaultOptions() Options {
	return Options{Decimals: 4}
}

// Result is the state after a replay.
type Result struct {
	Ticks    int
	Pose     camera.Pose
	Snapshot camera.Pose
	View     mgl64.Mat4
	Lens     camera.Lens
}

// Run replays s through a new controller and writes one line per tick to w.
// The controller always starts in 3D mode.
func Run(s *Script, w io.Writer, opts Options) (Result, error) {
	cfg := config.Default()
	if s.Camera != nil {
		cfg.Camera = *s.Camera
	}
	if s.Lens != nil {
		cfg.Lens = *s.Lens
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("script settings: %w", err)
	}

	// Replays start in 3D; a toggle_3d press switches back
	ctrlCfg := cfg.CameraController()
	ctrlCfg.Start3D = true
	ctrl := camera.NewController(ctrlCfg)
	if s.Pose != nil {
		ctrl.SetPose(camera.Pose(*s.Pose))
	}

	log := logger.Named("replay")
	log.Debug("starting replay", zap.Int("frames", len(s.Frames)), zap.Int("ticks", s.Ticks()))

	stack := matrix.New()
	view := ctrl.View(stack)
	tick := 0
	for i, f := range s.Frames {
		for r := 0; r < f.repeat(); r++ {
			p := ctrl.Advance(f.input(r == 0), f.dt(), view)
			// The printed flag belongs to the pose on the same line
			view = ctrl.View(stack)
			tick++

			if _, err := fmt.Fprintln(w, poseLine(tick, p, camera.UpsideDown(view), opts.Decimals)); err != nil {
				return Result{}, err
			}
			if opts.DumpAll || (f.Dump && r == f.repeat()-1) {
				title := fmt.Sprintf("frame %d tick %d", i, tick)
				if _, err := fmt.Fprintln(w, matrix.Format(title, view, opts.Decimals)); err != nil {
					return Result{}, err
				}
			}
		}
	}

	if opts.PrintInfo {
		for _, line := range ctrl.Info() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return Result{}, err
			}
		}
	}

	log.Debug("replay finished", zap.Int("ticks", tick))
	return Result{
		Ticks:    tick,
		Pose:     ctrl.Pose(),
		Snapshot: ctrl.Snapshot(),
		View:     view,
		Lens:     ctrl.Lens(),
	}, nil
}

func poseLine(tick int, p camera.Pose, upsideDown bool, decimals int) string {
	f := func(v float64) string { return math.FormatDecimals(v, decimals) }
	return fmt.Sprintf("%5d x=%s y=%s z=%s ~=%s yaw=%s pitch=%s roll=%s upside_down=%t",
		tick, f(p.X), f(p.Y), f(p.Z), f(p.Distance), f(p.Yaw), f(p.Pitch), f(p.Roll), upsideDown)
}

// ActionNames returns every action name a script may use, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(camera.Actions()))
	for _, a := range camera.Actions() {
		names = append(names, a.String())
	}
	sort.Strings(names)
	return names
}

// AxisNames returns every axis name a script may use, sorted.
func AxisNames() []string {
	names := make([]string, 0, len(axisNames))
	for name := range axisNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
