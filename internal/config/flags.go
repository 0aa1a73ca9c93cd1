package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagFreeLook    = flag.Bool("free-look", false, "Start with free-look enabled")
	flagFreeMove    = flag.Bool("free-move", false, "Start with free-move enabled")
	flagSensitivity = flag.Float64("sensitivity", 0, "Mouse sensitivity in degrees per pixel")
	flagSpeed       = flag.Float64("speed", 0, "Movement speed in units per second")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Camera.PrintInfo = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagFreeLook {
		cfg.Camera.FreeLook = true
	}
	if *flagFreeMove {
		cfg.Camera.FreeMove = true
	}
	if *flagSensitivity > 0 {
		cfg.Camera.MouseSensitivity = *flagSensitivity
	}
	if *flagSpeed > 0 {
		cfg.Camera.MovementSpeed = *flagSpeed
	}
}
