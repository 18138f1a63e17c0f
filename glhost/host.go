// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glhost opens a glfw window with an OpenGL context and
// drives a [Scene] through a poll, render, check, swap loop.
package glhost

import (
	"image"
	"log/slog"
	"runtime"
	"time"

	"cogentcore.org/glexamples/base/errors"
	"cogentcore.org/glexamples/base/iox/imagex"
	"cogentcore.org/glexamples/glgpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Host owns a window, its current GL context and the render loop.
// All methods must be called from the main thread.
type Host struct {

	// Options the host was created with
	Options Options

	// Window is the glfw window
	Window *glfw.Window

	// Info describes the created context
	Info glgpu.ContextInfo

	// Changes, if set, is polled each frame; when it reports a change
	// a [Reloader] scene rebuilds its programs.
	Changes Notifier

	scene  Scene
	frame  int
	start  time.Time
	size   image.Point
	drag   bool
	closed bool
}

// New initializes glfw, opens a window and makes its OpenGL context
// current. Any failure is returned as a [*ContextCreationError].
func New(opts Options) (*Host, error) {
	cerr := func(err error) error {
		return &ContextCreationError{Version: opts.Version, Profile: opts.Profile(), Err: err}
	}
	if err := opts.Validate(); err != nil {
		return nil, cerr(err)
	}
	if err := glfw.Init(); err != nil {
		return nil, cerr(err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.Version.Minor)
	if opts.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	} else if opts.Version.AtLeast(Version{3, 2}) {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(opts.ForwardCompat))
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!opts.Hidden))
	glfw.WindowHint(glfw.Samples, opts.Samples)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, cerr(err)
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, cerr(err)
	}
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	h := &Host{Options: opts, Window: win, Info: glgpu.Info()}
	w, ht := win.GetFramebufferSize()
	h.size = image.Point{w, ht}
	slog.Info("OpenGL context", "version", h.Info.Version, "glsl", h.Info.GLSL, "vendor", h.Info.Vendor, "renderer", h.Info.Renderer)
	h.setCallbacks()
	return h, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (h *Host) setCallbacks() {
	h.Window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		h.size = image.Point{width, height}
		glgpu.Draw.Viewport(h.size)
		if rs, ok := h.scene.(Resizer); ok {
			rs.Resize(h, h.size)
		}
	})
	h.Window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
			return
		}
		if kh, ok := h.scene.(KeyHandler); ok {
			kh.Key(h, key, action, mods)
		}
	})
	h.Window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			h.drag = action == glfw.Press
		}
	})
	h.Window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if mh, ok := h.scene.(MouseHandler); ok {
			mh.MouseMove(h, mgl32.Vec2{float32(x), float32(y)}, h.drag)
		}
	})
}

// Size returns the current framebuffer size in pixels.
func (h *Host) Size() image.Point {
	return h.size
}

// Aspect returns the width / height ratio of the framebuffer.
func (h *Host) Aspect() float32 {
	if h.size.Y == 0 {
		return 1
	}
	return float32(h.size.X) / float32(h.size.Y)
}

// Frame returns the number of the frame being rendered, starting at 1.
func (h *Host) Frame() int {
	return h.frame
}

// Time returns the seconds elapsed since the loop started.
func (h *Host) Time() float32 {
	if h.start.IsZero() {
		return 0
	}
	return float32(time.Since(h.start).Seconds())
}

// SetTitle sets the window title.
func (h *Host) SetTitle(title string) {
	h.Window.SetTitle(title)
}

// SetSize resizes the window, in screen coordinates.
func (h *Host) SetSize(width, height int) {
	h.Window.SetSize(width, height)
}

// Close asks the loop to stop after the current frame.
func (h *Host) Close() {
	h.Window.SetShouldClose(true)
}

// checkError returns a [*GraphicsAPIError] for the first pending
// GL error, draining any others.
func (h *Host) checkError(stage string) error {
	code := glgpu.Error()
	if code == gl.NO_ERROR {
		return nil
	}
	for range 8 {
		if glgpu.Error() == gl.NO_ERROR {
			break
		}
	}
	return &GraphicsAPIError{Code: code, Frame: h.frame, Stage: stage}
}

// Run initializes the scene and renders it until the window is
// closed or MaxFrames is reached. The scene is destroyed and the
// window and glfw are terminated when Run returns.
func (h *Host) Run(sc Scene) (err error) {
	h.scene = sc
	defer h.terminate()
	// scenes delete whatever Init made, even when Init fails part way
	defer sc.Destroy()
	if err = sc.Init(h); err != nil {
		return err
	}
	if err = h.checkError("init"); err != nil {
		return err
	}

	h.start = time.Now()
	fpsStart := h.start
	fpsFrames := 0
	for !h.Window.ShouldClose() {
		glfw.PollEvents()
		h.frame++
		if err = h.reload(); err != nil {
			return err
		}
		if err = sc.Render(h); err != nil {
			return err
		}
		if err = h.checkError("render"); err != nil {
			return err
		}
		last := h.Window.ShouldClose() || (h.Options.MaxFrames > 0 && h.frame >= h.Options.MaxFrames)
		if last && h.Options.Screenshot != "" {
			h.screenshot()
		}
		h.Window.SwapBuffers()
		if last {
			break
		}

		fpsFrames++
		if el := time.Since(fpsStart); el >= 5*time.Second {
			slog.Debug("frame rate", "fps", float64(fpsFrames)/el.Seconds(), "frame", h.frame)
			fpsStart = time.Now()
			fpsFrames = 0
		}
	}
	return nil
}

func (h *Host) reload() error {
	if h.Changes == nil || !h.Changes.Changed() {
		return nil
	}
	rl, ok := h.scene.(Reloader)
	if !ok {
		return nil
	}
	if err := rl.Reload(h); err != nil {
		// keep running on the previous programs while editing
		slog.Error("shader reload failed", "err", err)
		return nil
	}
	slog.Info("shaders reloaded", "frame", h.frame)
	return h.checkError("reload")
}

func (h *Host) screenshot() {
	gl.ReadBuffer(gl.BACK)
	img := glgpu.ReadPixels(h.size)
	if err := imagex.Save(img, h.Options.Screenshot); err != nil {
		slog.Error("saving screenshot", "file", h.Options.Screenshot, "err", err)
		return
	}
	slog.Info("saved screenshot", "file", h.Options.Screenshot)
}

func (h *Host) terminate() {
	if h.closed {
		return
	}
	h.closed = true
	h.Window.Destroy()
	glfw.Terminate()
}

// RunScene creates a [Host] configured by the scene, if it is a
// [Configurer], and runs the scene on it.
func RunScene(opts Options, sc Scene) error {
	if cf, ok := sc.(Configurer); ok {
		if err := cf.Configure(&opts); err != nil {
			return err
		}
	}
	h, err := New(opts)
	if err != nil {
		return err
	}
	return h.Run(sc)
}

// RunFunc runs a scene made of an optional init function and a
// per-frame draw function.
func RunFunc(opts Options, init, draw func(h *Host) error) error {
	if draw == nil {
		return errors.New("glhost: RunFunc requires a draw function")
	}
	return RunScene(opts, &funcScene{init: init, draw: draw})
}
