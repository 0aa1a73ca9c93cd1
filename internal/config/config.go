// Package config handles loading and saving the demo settings.
package config

import (
	"github.com/Faultbox/freecam/internal/engine/camera"
)

// Config holds all settings.
type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Camera     CameraConfig      `yaml:"camera"`
	Lens       LensConfig        `yaml:"lens"`
	Controller ControllerConfig  `yaml:"controller"`
	Controls   map[string]string `yaml:"controls"` // action name -> SDL key name
	Logging    LoggingConfig     `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial controller settings.
type CameraConfig struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MovementSpeed    float64 `yaml:"movement_speed"`
	FreeLook         bool    `yaml:"free_look"`
	FreeMove         bool    `yaml:"free_move"`
	InvertYaw        bool    `yaml:"invert_yaw"`
	InvertPitch      bool    `yaml:"invert_pitch"`
	InvertForward    bool    `yaml:"invert_forward"`
	InvertVertical   bool    `yaml:"invert_vertical"`
	PrintInfo        bool    `yaml:"print_info"`
	Start3D          bool    `yaml:"start_3d"`
}

// LensConfig holds projection settings. FOVs are degrees.
type LensConfig struct {
	FovY     float64 `yaml:"fov"`
	ZoomFovY float64 `yaml:"zoom_fov"`
	ZNear    float64 `yaml:"z_near"`
	ZFar     float64 `yaml:"z_far"`
}

// ControllerConfig holds game controller settings.
type ControllerConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Deadzone float64 `yaml:"deadzone"` // fraction of full stick throw
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultControls returns the default keyboard bindings.
func DefaultControls() map[string]string {
	return map[string]string{
		camera.Forward.String():              "W",
		camera.Backward.String():             "S",
		camera.Left.String():                 "A",
		camera.Right.String():                "D",
		camera.Up.String():                   "Space",
		camera.Down.String():                 "Left Shift",
		camera.RollLeft.String():             "Q",
		camera.RollRight.String():            "E",
		camera.Zoom.String():                 "Z",
		camera.ResetPose.String():            "R",
		camera.ResetDistance.String():        "X",
		camera.Toggle3D.String():             "Tab",
		camera.ToggleFreeLook.String():       "F1",
		camera.ToggleFreeMove.String():       "F2",
		camera.ToggleInvertYaw.String():      "F5",
		camera.ToggleInvertPitch.String():    "F6",
		camera.ToggleInvertForward.String():  "F7",
		camera.ToggleInvertVertical.String(): "F8",
		camera.TogglePrintInfo.String():      "I",
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultConfig()
	lens := camera.DefaultLens()
	return &Config{
		Window: WindowConfig{
			Title:  "Camera Test",
			Width:  800,
			Height: 480,
			VSync:  true,
		},
		Camera: CameraConfig{
			MouseSensitivity: cam.MouseSensitivity,
			MovementSpeed:    cam.MovementSpeed,
		},
		Lens: LensConfig{
			FovY:     lens.BaseFovY,
			ZoomFovY: lens.ZoomFovY,
			ZNear:    lens.ZNear,
			ZFar:     lens.ZFar,
		},
		Controller: ControllerConfig{
			Enabled:  true,
			Deadzone: 0.15,
		},
		Controls: DefaultControls(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// CameraController converts the camera and lens sections to controller
// settings.
func (c *Config) CameraController() camera.Config {
	return camera.Config{
		MouseSensitivity:                     c.Camera.MouseSensitivity,
		MovementSpeed:                        c.Camera.MovementSpeed,
		FreeLook:                             c.Camera.FreeLook,
		FreeMove:                             c.Camera.FreeMove,
		InvertYawWhenUpsideDown:              c.Camera.InvertYaw,
		InvertPitchWhenUpsideDown:            c.Camera.InvertPitch,
		InvertForwardMovementWhenUpsideDown:  c.Camera.InvertForward,
		InvertVerticalMovementWhenUpsideDown: c.Camera.InvertVertical,
		PrintInfo:                            c.Camera.PrintInfo,
		Start3D:                              c.Camera.Start3D,
		Lens: camera.Lens{
			FovY:     c.Lens.FovY,
			BaseFovY: c.Lens.FovY,
			ZoomFovY: c.Lens.ZoomFovY,
			ZNear:    c.Lens.ZNear,
			ZFar:     c.Lens.ZFar,
		},
	}
}
