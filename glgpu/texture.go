// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture2D manages a 2D RGBA texture.
type Texture2D struct {
	init      bool
	handle    uint32
	size      image.Point
	minFilter int32
	magFilter int32
	wrap      int32
}

// NewTexture2D returns a new texture using linear filtering and
// clamp-to-edge wrapping.
func NewTexture2D() *Texture2D {
	return &Texture2D{minFilter: gl.LINEAR, magFilter: gl.LINEAR, wrap: gl.CLAMP_TO_EDGE}
}

// SetFilter sets the minification and magnification filters
// (gl.LINEAR, gl.NEAREST). Takes effect on the next upload.
func (tx *Texture2D) SetFilter(min, mag int32) {
	tx.minFilter = min
	tx.magFilter = mag
}

// SetWrap sets the wrapping mode for both texture coordinates.
func (tx *Texture2D) SetWrap(wrap int32) {
	tx.wrap = wrap
}

// Size returns the size of the texture
func (tx *Texture2D) Size() image.Point {
	return tx.size
}

// Handle returns the GPU handle for the texture
func (tx *Texture2D) Handle() uint32 {
	return tx.handle
}

func (tx *Texture2D) bind() {
	if !tx.init {
		gl.GenTextures(1, &tx.handle)
		tx.init = true
	}
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, tx.minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, tx.magFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, tx.wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, tx.wrap)
}

// SetImage uploads the given image, whose rows must already be in
// GL order (bottom row first, see imagex.TexturePixels).
func (tx *Texture2D) SetImage(img *image.RGBA) {
	tx.bind()
	tx.size = img.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tx.size.X), int32(tx.size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
}

// Allocate reserves uninitialized RGBA8 storage of the given size,
// for use as a render target.
func (tx *Texture2D) Allocate(size image.Point) {
	tx.bind()
	tx.size = size
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// Activate binds the texture to the given texture unit.
func (tx *Texture2D) Activate(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
}

// Delete deletes the GPU resources associated with this texture.
func (tx *Texture2D) Delete() {
	if tx == nil || !tx.init {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
	tx.init = false
}

// BufferTexture exposes the contents of a [Buffer] to shaders
// as a samplerBuffer (gl.TEXTURE_BUFFER).
type BufferTexture struct {
	init   bool
	handle uint32
	buf    *Buffer
	format uint32
}

// NewBufferTexture returns a buffer texture viewing buf with
// the given internal format (e.g., gl.RGBA32F).
func NewBufferTexture(buf *Buffer, format uint32) *BufferTexture {
	return &BufferTexture{buf: buf, format: format}
}

// Activate binds the buffer texture to the given texture unit,
// attaching the buffer on first use.
func (bt *BufferTexture) Activate(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	if !bt.init {
		gl.GenTextures(1, &bt.handle)
		gl.BindTexture(gl.TEXTURE_BUFFER, bt.handle)
		gl.TexBuffer(gl.TEXTURE_BUFFER, bt.format, bt.buf.Handle())
		bt.init = true
		return
	}
	gl.BindTexture(gl.TEXTURE_BUFFER, bt.handle)
}

// Delete deletes the texture (but not the underlying buffer).
func (bt *BufferTexture) Delete() {
	if bt == nil || !bt.init {
		return
	}
	gl.DeleteTextures(1, &bt.handle)
	bt.handle = 0
	bt.init = false
}
