// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Framebuffer is an offscreen render target with a color texture,
// which later passes can sample, and a depth renderbuffer.
type Framebuffer struct {
	init   bool
	handle uint32
	name   string
	size   image.Point
	color  *Texture2D
	drbo   uint32 // depth render buffer object
}

// NewFramebuffer returns a new framebuffer of the given size.
// GPU resources are made on the first Activate.
func NewFramebuffer(name string, size image.Point) *Framebuffer {
	return &Framebuffer{name: name, size: size}
}

// Name returns the name of the framebuffer
func (fb *Framebuffer) Name() string {
	return fb.name
}

// Size returns the size of the framebuffer
func (fb *Framebuffer) Size() image.Point {
	return fb.size
}

// SetSize sets the size of the framebuffer.
// If framebuffer has been Activate'd, its GPU resources are
// re-made at the new size on the next Activate.
func (fb *Framebuffer) SetSize(size image.Point) {
	if fb.size == size {
		return
	}
	fb.Delete()
	fb.size = size
}

// Texture returns the color attachment, or nil before Activate.
func (fb *Framebuffer) Texture() *Texture2D {
	return fb.color
}

// Handle returns the GPU handle for the framebuffer -- only
// valid after Activate.
func (fb *Framebuffer) Handle() uint32 {
	return fb.handle
}

// Activate establishes the GPU resources for the framebuffer
// (if not already done), and then sets it as the current
// rendering target, with a viewport covering its size.
func (fb *Framebuffer) Activate() error {
	if !fb.init {
		szx := int32(fb.size.X)
		szy := int32(fb.size.Y)

		fb.color = NewTexture2D()
		fb.color.Allocate(fb.size)

		gl.GenRenderbuffers(1, &fb.drbo)
		gl.BindRenderbuffer(gl.RENDERBUFFER, fb.drbo)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, szx, szy)

		gl.GenFramebuffers(1, &fb.handle)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color.Handle(), 0)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.drbo)
		fb.init = true
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	}
	if st := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("glgpu Framebuffer %s: not complete, status 0x%04X", fb.name, st)
	}
	Draw.Viewport(fb.size)
	return nil
}

// BindDefault makes the window's own framebuffer the render target,
// with a viewport of the given size.
func BindDefault(size image.Point) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	Draw.Viewport(size)
}

// Delete deletes the GPU resources associated with this framebuffer
// (requires Activate to re-establish a new one).
func (fb *Framebuffer) Delete() {
	if fb == nil || !fb.init {
		return
	}
	if fb.color != nil {
		fb.color.Delete()
		fb.color = nil
	}
	gl.DeleteRenderbuffers(1, &fb.drbo)
	gl.DeleteFramebuffers(1, &fb.handle)
	fb.init = false
}
