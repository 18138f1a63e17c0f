// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// VertexArray manages a vertex array object, which records the
// vertex attribute layout and the bound index buffer.
type VertexArray struct {
	init   bool
	handle uint32
}

// Activate generates the vertex array if needed and binds it.
// It must be active before any attribute configuration.
func (va *VertexArray) Activate() {
	if !va.init {
		gl.GenVertexArrays(1, &va.handle)
		va.init = true
	}
	gl.BindVertexArray(va.handle)
}

// Handle returns the GPU handle -- only valid after Activate.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Attrib enables the float vertex attribute at the given index,
// reading size components at the given byte stride and offset
// from the currently bound gl.ARRAY_BUFFER.
func (va *VertexArray) Attrib(index uint32, size int32, stride, offset int) {
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, int32(stride), gl.PtrOffset(offset))
}

// AttribDivisor sets the instance divisor of the attribute at the
// given index: 0 advances per vertex, n advances every n instances.
func (va *VertexArray) AttribDivisor(index, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

// UnbindVertexArray binds the zero vertex array.
func UnbindVertexArray() {
	gl.BindVertexArray(0)
}

// Delete deletes the GPU resources associated with this vertex array.
func (va *VertexArray) Delete() {
	if va == nil || !va.init {
		return
	}
	gl.DeleteVertexArrays(1, &va.handle)
	va.handle = 0
	va.init = false
}
