// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/freecam/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title       string
	Width       int
	Height      int
	Fullscreen  bool
	VSync       bool
	Controllers bool // open game controllers as they are connected
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	config      Config
	sdlWindow   *sdl.Window
	glContext   sdl.GLContext
	controllers map[sdl.JoystickID]*sdl.GameController
	log         *zap.Logger
}

// New creates a new window with OpenGL context.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config:      cfg,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		log:         logger.Named("window"),
	}

	flags := uint32(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if cfg.Controllers {
		flags |= sdl.INIT_GAMECONTROLLER
	}
	w.log.Info("initializing SDL2")
	if err := sdl.Init(flags); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS), set before the
	// window exists
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	windowFlags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		windowFlags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		windowFlags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")

	for id, gc := range w.controllers {
		gc.Close()
		delete(w.controllers, id)
	}
	w.SetCaptured(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// SetCaptured hides the cursor and switches to relative mouse motion while
// captured.
func (w *Window) SetCaptured(on bool) {
	if w.sdlWindow == nil {
		return
	}
	w.sdlWindow.SetGrab(on)
	sdl.SetRelativeMouseMode(on)
	w.log.Debug("mouse capture", zap.Bool("captured", on))
}

// OpenController opens the game controller at a device index. Joysticks
// without a controller mapping are skipped.
func (w *Window) OpenController(index int) {
	if !w.config.Controllers || !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		w.log.Warn("failed to open controller", zap.Int("index", index), zap.Error(sdl.GetError()))
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := w.controllers[id]; ok {
		gc.Close()
		return
	}
	w.controllers[id] = gc
	w.log.Info("controller connected", zap.String("name", gc.Name()), zap.Int32("id", int32(id)))
}

// CloseController closes a controller by joystick instance id.
func (w *Window) CloseController(id int) {
	gc, ok := w.controllers[sdl.JoystickID(id)]
	if !ok {
		return
	}
	gc.Close()
	delete(w.controllers, sdl.JoystickID(id))
	w.log.Info("controller disconnected", zap.Int("id", id))
}
