// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Buffer manages a GPU buffer object bound to a single target
// (gl.ARRAY_BUFFER, gl.ELEMENT_ARRAY_BUFFER, gl.UNIFORM_BUFFER,
// gl.TEXTURE_BUFFER ...).
type Buffer struct {
	init   bool
	handle uint32
	target uint32
	usage  uint32
	size   int
}

// NewBuffer returns a new buffer for the given target and
// usage hint (gl.STATIC_DRAW, gl.DYNAMIC_DRAW ...).
func NewBuffer(target, usage uint32) *Buffer {
	return &Buffer{target: target, usage: usage}
}

// NewVertexBuffer returns a new static gl.ARRAY_BUFFER.
func NewVertexBuffer() *Buffer {
	return NewBuffer(gl.ARRAY_BUFFER, gl.STATIC_DRAW)
}

// NewIndexBuffer returns a new static gl.ELEMENT_ARRAY_BUFFER.
func NewIndexBuffer() *Buffer {
	return NewBuffer(gl.ELEMENT_ARRAY_BUFFER, gl.STATIC_DRAW)
}

// Target returns the binding target of the buffer
func (b *Buffer) Target() uint32 {
	return b.target
}

// Size returns the number of bytes last transferred or allocated.
func (b *Buffer) Size() int {
	return b.size
}

// Handle returns the unique handle for this buffer -- only valid after Activate()
func (b *Buffer) Handle() uint32 {
	return b.handle
}

// Activate generates the buffer if needed and binds it to its target.
func (b *Buffer) Activate() {
	if !b.init {
		gl.GenBuffers(1, &b.handle)
		b.init = true
	}
	gl.BindBuffer(b.target, b.handle)
}

// transfer activates the buffer and sends size bytes from ptr.
func (b *Buffer) transfer(size int, ptr unsafe.Pointer) {
	b.Activate()
	gl.BufferData(b.target, size, ptr, b.usage)
	b.size = size
}

// SetFloat32 transfers the given float32 data to the GPU.
func (b *Buffer) SetFloat32(data []float32) {
	if len(data) == 0 {
		b.transfer(0, nil)
		return
	}
	b.transfer(len(data)*4, gl.Ptr(data))
}

// SetUint32 transfers the given uint32 data to the GPU.
func (b *Buffer) SetUint32(data []uint32) {
	if len(data) == 0 {
		b.transfer(0, nil)
		return
	}
	b.transfer(len(data)*4, gl.Ptr(data))
}

// SetUint16 transfers the given uint16 data to the GPU.
func (b *Buffer) SetUint16(data []uint16) {
	if len(data) == 0 {
		b.transfer(0, nil)
		return
	}
	b.transfer(len(data)*2, gl.Ptr(data))
}

// Allocate reserves size bytes of uninitialized storage.
func (b *Buffer) Allocate(size int) {
	b.transfer(size, nil)
}

// BindBase binds the buffer to the given indexed binding point
// of the given target (gl.TRANSFORM_FEEDBACK_BUFFER, gl.UNIFORM_BUFFER).
func (b *Buffer) BindBase(target, index uint32) {
	if !b.init {
		b.Activate()
	}
	gl.BindBufferBase(target, index, b.handle)
}

// MapFloat32 maps the first n float32 values of the buffer for writing,
// invalidating its previous contents. The returned slice is only valid
// until [Buffer.Unmap] is called.
func (b *Buffer) MapFloat32(n int) ([]float32, error) {
	if n*4 > b.size {
		return nil, errors.New("glgpu Buffer MapFloat32: range exceeds buffer size")
	}
	b.Activate()
	ptr := gl.MapBufferRange(b.target, 0, n*4, gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_BUFFER_BIT)
	if ptr == nil {
		return nil, errors.New("glgpu Buffer MapFloat32: map failed")
	}
	return unsafe.Slice((*float32)(ptr), n), nil
}

// Unmap releases a mapping made by MapFloat32.
func (b *Buffer) Unmap() error {
	gl.BindBuffer(b.target, b.handle)
	if !gl.UnmapBuffer(b.target) {
		return errors.New("glgpu Buffer Unmap: buffer contents corrupted during mapping")
	}
	return nil
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (b *Buffer) Delete() {
	if b == nil || !b.init {
		return
	}
	gl.DeleteBuffers(1, &b.handle)
	b.handle = 0
	b.size = 0
	b.init = false
}
