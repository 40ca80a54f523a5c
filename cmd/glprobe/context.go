package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glkit"
	"github.com/gogpu/glkit/driver"
	"github.com/gogpu/glkit/driver/glcore"
)

// openDevice creates a hidden window with an OpenGL 4.6 core context, makes
// it current and returns a Device over the glcore driver. The returned
// function destroys the window.
func openDevice(cfg Config) (*glkit.Device, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, "glprobe", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("create OpenGL 4.6 context: %w", err)
	}
	win.MakeContextCurrent()
	closeFn := func() {
		win.Destroy()
		glfw.Terminate()
	}

	fns, err := driver.Get(glcore.Name)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	var opts []glkit.DeviceOption
	if cfg.Debug {
		opts = append(opts, glkit.WithDebugOutput(true))
	}
	dev, err := glkit.NewDevice(fns, opts...)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return dev, closeFn, nil
}

// setupLogging routes glkit logs to stderr when debugging.
func setupLogging(cfg Config) {
	if !cfg.Debug {
		return
	}
	glkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}
