// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glhost

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is one demo program driven by a [Host].
// Init makes all GPU resources, Render draws one frame and
// Destroy deletes what Init made.
type Scene interface {
	Init(h *Host) error
	Render(h *Host) error
	Destroy()
}

// Configurer is a [Scene] that adjusts the host options
// before the window is created.
type Configurer interface {
	Configure(opts *Options) error
}

// KeyHandler is a [Scene] that receives key events.
type KeyHandler interface {
	Key(h *Host, key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
}

// MouseHandler is a [Scene] that receives cursor moves, in window
// coordinates, with drag set while the left button is held.
type MouseHandler interface {
	MouseMove(h *Host, pos mgl32.Vec2, drag bool)
}

// Resizer is a [Scene] notified when the framebuffer size changes.
type Resizer interface {
	Resize(h *Host, size image.Point)
}

// Reloader is a [Scene] that can rebuild its shader programs
// when their sources change.
type Reloader interface {
	Reload(h *Host) error
}

// Notifier reports whether something changed since the last call.
type Notifier interface {
	Changed() bool
}

// funcScene adapts a pair of functions to [Scene].
type funcScene struct {
	init func(h *Host) error
	draw func(h *Host) error
}

func (fs *funcScene) Init(h *Host) error {
	if fs.init == nil {
		return nil
	}
	return fs.init(h)
}

func (fs *funcScene) Render(h *Host) error {
	return fs.draw(h)
}

func (fs *funcScene) Destroy() {}
