// Package replay drives the camera controller from scripted input, without
// a window. Scripts are YAML.
package replay

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/freecam/internal/config"
	"github.com/Faultbox/freecam/internal/engine/camera"
	"github.com/Faultbox/freecam/pkg/math"
)

// DefaultDT is the frame time used when a frame does not set one.
const DefaultDT = 1.0 / 60

// Script is a sequence of input frames plus optional starting state.
type Script struct {
	Camera *config.CameraConfig `yaml:"camera"`
	Lens   *config.LensConfig   `yaml:"lens"`
	Pose   *StartPose           `yaml:"pose"`
	Frames []Frame              `yaml:"frames"`
}

// StartPose is the pose the camera starts from.
type StartPose struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Distance float64 `yaml:"distance"`
	Yaw      float64 `yaml:"yaw"`
	Pitch    float64 `yaml:"pitch"`
	Roll     float64 `yaml:"roll"`
}

// Frame is the input for one tick, optionally repeated.
type Frame struct {
	DT       float64            `yaml:"dt"`
	Repeat   int                `yaml:"repeat"`
	Hold     []string           `yaml:"hold"`
	Press    []string           `yaml:"press"`
	Release  []string           `yaml:"release"`
	DX       float64            `yaml:"dx"`
	DY       float64            `yaml:"dy"`
	Scroll   float64            `yaml:"scroll"`
	Axes     map[string]float64 `yaml:"axes"`
	Captured *bool              `yaml:"captured"` // default true
	Dump     bool               `yaml:"dump"`     // print the view matrix after this frame
}

var axisNames = map[string]camera.Axis{
	"left_x":  camera.AxisLeftX,
	"left_y":  camera.AxisLeftY,
	"right_x": camera.AxisRightX,
	"right_y": camera.AxisRightY,
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script. Camera and lens keys missing from
// the script keep their defaults.
func Parse(data []byte) (*Script, error) {
	def := config.Default()
	s := Script{Camera: &def.Camera, Lens: &def.Lens}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding script: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) validate() error {
	if len(s.Frames) == 0 {
		return errors.New("script has no frames")
	}
	var errs []error
	for i, f := range s.Frames {
		if f.DT < 0 || !math.IsFinite(f.DT) {
			errs = append(errs, fmt.Errorf("frame %d: dt must be a finite non-negative number", i))
		}
		if f.Repeat < 0 {
			errs = append(errs, fmt.Errorf("frame %d: negative repeat", i))
		}
		for _, names := range [][]string{f.Hold, f.Press, f.Release} {
			if _, err := actionSet(names); err != nil {
				errs = append(errs, fmt.Errorf("frame %d: %w", i, err))
			}
		}
		for name, v := range f.Axes {
			if _, ok := axisNames[strings.ToLower(name)]; !ok {
				errs = append(errs, fmt.Errorf("frame %d: unknown axis %q", i, name))
			}
			if !math.IsFinite(v) {
				errs = append(errs, fmt.Errorf("frame %d: axis %s is not finite", i, name))
			}
		}
	}
	return errors.Join(errs...)
}

// Ticks returns the total number of ticks the script runs.
func (s *Script) Ticks() int {
	n := 0
	for _, f := range s.Frames {
		n += f.repeat()
	}
	return n
}

func (f Frame) repeat() int {
	if f.Repeat == 0 {
		return 1
	}
	return f.Repeat
}

func (f Frame) dt() float64 {
	if f.DT == 0 {
		return DefaultDT
	}
	return f.DT
}

// input builds the controller input. Edges only apply on the first repeat.
func (f Frame) input(first bool) camera.Input {
	in := camera.Input{
		PointerDX: f.DX,
		PointerDY: f.DY,
		Scroll:    f.Scroll,
		Captured:  f.Captured == nil || *f.Captured,
	}
	in.Held, _ = actionSet(f.Hold)
	if first {
		in.Pressed, _ = actionSet(f.Press)
		in.Released, _ = actionSet(f.Release)
		// A press also counts as held for that tick
		in.Held |= in.Pressed
	}
	// Sorted so the readings sum in the same order on every run
	names := make([]string, 0, len(f.Axes))
	for name := range f.Axes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		in.Axes = append(in.Axes, camera.AxisReading{
			Axis:  axisNames[strings.ToLower(name)],
			Value: math.Clamp(f.Axes[name], -1, 1),
		})
	}
	return in
}

func actionSet(names []string) (camera.ActionSet, error) {
	var set camera.ActionSet
	for _, name := range names {
		a, err := camera.ParseAction(name)
		if err != nil {
			return 0, err
		}
		set = set.With(a)
	}
	return set, nil
}
