package replay

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/freecam/internal/engine/camera"
)

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no frames", "pose: {yaw: 10}\n"},
		{"bad yaml", "frames: [\n"},
		{"unknown action", "frames:\n  - hold: [jump]\n"},
		{"unknown axis", "frames:\n  - axes: {trigger: 1}\n"},
		{"negative dt", "frames:\n  - dt: -0.1\n"},
		{"negative repeat", "frames:\n  - repeat: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	s := mustParse(t, `
camera:
  free_look: true
lens:
  fov: 90
frames:
  - repeat: 2
  - hold: [forward]
`)
	if !s.Camera.FreeLook || s.Camera.MouseSensitivity != 0.15 || s.Camera.MovementSpeed != 1.2 {
		t.Errorf("unexpected camera settings %+v", *s.Camera)
	}
	if s.Lens.FovY != 90 || s.Lens.ZoomFovY != 20 || s.Lens.ZFar != 1000 {
		t.Errorf("unexpected lens settings %+v", *s.Lens)
	}
	if s.Ticks() != 3 {
		t.Errorf("expected 3 ticks, got %d", s.Ticks())
	}
}

func TestRunForwardThenBack(t *testing.T) {
	s := mustParse(t, `
frames:
  - {dt: 0.1, repeat: 30, hold: [forward]}
  - {dt: 0.1, repeat: 30, hold: [backward]}
`)
	var out bytes.Buffer
	res, err := Run(s, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 60 {
		t.Errorf("expected 60 ticks, got %d", res.Ticks)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 60 {
		t.Errorf("expected 60 output lines, got %d", lines)
	}
	if math.Abs(res.Pose.Z) > 1e-9 || math.Abs(res.Pose.X) > 1e-9 {
		t.Errorf("expected to end at the origin, got %+v", res.Pose)
	}
	if !strings.HasPrefix(out.String(), "    1 x=0 y=0 z=-0.12 ~=0 yaw=0 pitch=0 roll=0 upside_down=false\n") {
		t.Errorf("unexpected first line:\n%s", out.String())
	}
	if res.Snapshot != res.Pose {
		t.Errorf("snapshot %+v should match the final pose %+v", res.Snapshot, res.Pose)
	}
}

func TestRunRollSettles(t *testing.T) {
	s := mustParse(t, `
pose: {roll: 45}
frames:
  - repeat: 200
`)
	res, err := Run(s, &bytes.Buffer{}, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Pose.Roll != 0 {
		t.Errorf("roll should settle to 0, got %f", res.Pose.Roll)
	}
}

func TestRunPressAppliesOnce(t *testing.T) {
	s := mustParse(t, `
frames:
  - {press: [toggle_free_look], repeat: 3}
`)
	var out bytes.Buffer
	res, err := Run(s, &out, Options{Decimals: 4, PrintInfo: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Toggled once, not three times
	if !strings.Contains(out.String(), "FreeLook: enabled;") {
		t.Errorf("expected free-look enabled in info:\n%s", out.String())
	}
	if res.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", res.Ticks)
	}
}

func TestRunZoom(t *testing.T) {
	s := mustParse(t, `
frames:
  - {press: [zoom], hold: [zoom]}
  - {hold: [zoom], dx: 70}
`)
	res, err := Run(s, &bytes.Buffer{}, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Lens.FovY != 20 {
		t.Errorf("expected zoom FOV, got %f", res.Lens.FovY)
	}
	if math.Abs(res.Pose.Yaw-3) > 1e-9 {
		t.Errorf("zoomed yaw %f, want 3", res.Pose.Yaw)
	}
}

func TestRunUpsideDown(t *testing.T) {
	s := mustParse(t, `
camera:
  free_look: true
  invert_forward: true
pose: {pitch: 180}
frames:
  - {}
  - {dt: 1, hold: [forward]}
`)
	var out bytes.Buffer
	res, err := Run(s, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "upside_down=true") {
		t.Errorf("expected upside-down output:\n%s", out.String())
	}
	if math.Abs(res.Pose.Z-1.2) > 1e-9 {
		t.Errorf("inverted forward should move +Z, got %f", res.Pose.Z)
	}
}

func TestRunUpsideDownMatchesPoseLine(t *testing.T) {
	s := mustParse(t, `
camera:
  free_look: true
frames:
  - {dy: 1200}
`)
	var out bytes.Buffer
	if _, err := Run(s, &out, DefaultOptions()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	line := strings.SplitN(out.String(), "\n", 2)[0]
	if !strings.Contains(line, "pitch=180 ") || !strings.HasSuffix(line, "upside_down=true") {
		t.Errorf("the tick that pitches to 180 should report upside-down, got %q", line)
	}
}

func TestFrameInputAxisOrder(t *testing.T) {
	f := Frame{Axes: map[string]float64{
		"right_y": 0.4,
		"left_x":  0.1,
		"right_x": 0.3,
		"left_y":  0.2,
	}}
	want := []camera.AxisReading{
		{Axis: camera.AxisLeftX, Value: 0.1},
		{Axis: camera.AxisLeftY, Value: 0.2},
		{Axis: camera.AxisRightX, Value: 0.3},
		{Axis: camera.AxisRightY, Value: 0.4},
	}

	for run := 0; run < 20; run++ {
		got := f.input(true).Axes
		if len(got) != len(want) {
			t.Fatalf("got %d readings, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("run %d: reading %d = %+v, want %+v", run, i, got[i], want[i])
			}
		}
	}
}

func TestRunToggleBackTo2D(t *testing.T) {
	s := mustParse(t, `
frames:
  - {press: [toggle_3d]}
  - {hold: [forward], dx: 100, repeat: 5}
`)
	res, err := Run(s, &bytes.Buffer{}, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Pose != (camera.Pose{}) {
		t.Errorf("2D mode should ignore camera input, got %+v", res.Pose)
	}
}

func TestRunDump(t *testing.T) {
	s := mustParse(t, `
frames:
  - {repeat: 2, dump: true}
`)
	var out bytes.Buffer
	if _, err := Run(s, &out, DefaultOptions()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "==[frame 0 tick 2]"); got != 1 {
		t.Errorf("expected one dump after the last repeat, got %d:\n%s", got, out.String())
	}
	if strings.Contains(out.String(), "tick 1]") {
		t.Error("dump should only follow the last repeat")
	}
}

func TestRunRejectsBadSettings(t *testing.T) {
	s := mustParse(t, "lens:\n  z_near: 5\n  z_far: 1\nframes:\n  - {}\n")
	if _, err := Run(s, &bytes.Buffer{}, DefaultOptions()); err == nil {
		t.Error("expected error for an invalid lens")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	if err := os.WriteFile(path, []byte("frames:\n  - {hold: [up], axes: {right_x: 2}}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	in := s.Frames[0].input(true)
	if !in.Held.Has(camera.Up) || len(in.Axes) != 1 || in.Axes[0].Value != 1 {
		t.Errorf("unexpected input %+v", in)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestNames(t *testing.T) {
	if len(ActionNames()) != len(camera.Actions()) {
		t.Error("every action should be listed")
	}
	if got := strings.Join(AxisNames(), ","); got != "left_x,left_y,right_x,right_y" {
		t.Errorf("unexpected axis names %s", got)
	}
}

func TestOrbitScript(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "orbit.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var out bytes.Buffer
	res, err := Run(s, &out, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Ticks != 74 {
		t.Errorf("expected 74 ticks, got %d", res.Ticks)
	}
	if res.Pose.Distance != 0 || res.Pose.Y != 1 {
		t.Errorf("unexpected final pose %+v", res.Pose)
	}
	if !strings.Contains(out.String(), "    1 x=0 y=1 z=0 ~=5 ") {
		t.Errorf("first tick should pull back 5 units:\n%s", out.String()[:200])
	}
	if strings.Count(out.String(), "==[") != 2 {
		t.Error("expected two matrix dumps")
	}
}
