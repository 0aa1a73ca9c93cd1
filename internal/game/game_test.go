package game

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/freecam/internal/engine/camera"
)

func TestWindowTitle(t *testing.T) {
	c := camera.NewController(camera.DefaultConfig())

	if got := windowTitle("Camera Test", c, false, 60); got != "Camera Test [2D] 60 fps" {
		t.Errorf("unexpected 2D title %q", got)
	}

	c.Set3D(true)
	got := windowTitle("Camera Test", c, false, 59)
	if !strings.HasPrefix(got, "Camera Test [3D] 59 fps | FreeLook: disabled;") {
		t.Errorf("unexpected 3D title %q", got)
	}
	if !strings.HasSuffix(got, "click to capture") {
		t.Errorf("uncaptured title should hint at capturing, got %q", got)
	}
	if strings.Contains(windowTitle("Camera Test", c, true, 59), "click") {
		t.Error("captured title should not hint at capturing")
	}
}

func TestMat32(t *testing.T) {
	m := mgl64.Translate3D(1.5, -2, 3)
	f := mat32(m)
	for i := range m {
		if float64(f[i]) != m[i] {
			t.Errorf("element %d: %v != %v", i, f[i], m[i])
		}
	}
}
