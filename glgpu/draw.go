// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// BlendModes are the blending setups used by the demos.
type BlendModes int32

const (
	// BlendNone disables blending.
	BlendNone BlendModes = iota

	// BlendAlpha is premultiplied alpha blending.
	BlendAlpha

	// BlendAdditive adds source and destination:
	// result = 1 * source + 1 * destination.
	BlendAdditive
)

// Draw is the shared [Drawing] instance.
var Draw = &Drawing{}

// Drawing provides commonly-used GPU drawing functions.
// All operate on the current context with current program, target, etc
type Drawing struct{}

// ClearColor sets the color used by Clear.
func (dr *Drawing) ClearColor(c color.Color) {
	r, g, b, a := c.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// Clear clears the given properties of the current render target
func (dr *Drawing) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// Viewport sets the viewport to cover the given size.
func (dr *Drawing) Viewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// DepthTest turns on / off depth testing
func (dr *Drawing) DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Blend sets the blending mode.
func (dr *Drawing) Blend(mode BlendModes) {
	switch mode {
	case BlendAlpha:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	case BlendAdditive:
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.ONE, gl.ONE)
	default:
		gl.Disable(gl.BLEND)
	}
}

// Wireframe turns on / off line rasterization of polygons.
func (dr *Drawing) Wireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// RasterizerDiscard turns on / off discarding of primitives
// before rasterization, used while capturing transform feedback.
func (dr *Drawing) RasterizerDiscard(on bool) {
	if on {
		gl.Enable(gl.RASTERIZER_DISCARD)
	} else {
		gl.Disable(gl.RASTERIZER_DISCARD)
	}
}

// Triangles uses all existing settings to draw Triangles
// (non-indexed)
func (dr *Drawing) Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}

// Points draws count points starting at the given vertex.
func (dr *Drawing) Points(start, count int) {
	gl.DrawArrays(gl.POINTS, int32(start), int32(count))
}

// TrianglesIndexed draws count indexes of type uint32 from
// the element buffer bound to the active vertex array.
func (dr *Drawing) TrianglesIndexed(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil)
}

// TrianglesIndexed16 draws count indexes of type uint16 from
// the element buffer bound to the active vertex array.
func (dr *Drawing) TrianglesIndexed16(count int) {
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_SHORT, nil)
}

// TrianglesInstanced draws count uint32 indexes for each of
// the given number of instances.
func (dr *Drawing) TrianglesInstanced(count, instances int) {
	gl.DrawElementsInstanced(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, nil, int32(instances))
}

// CapturePoints runs count points through the active program,
// capturing its feedback varyings into the buffer bound at
// gl.TRANSFORM_FEEDBACK_BUFFER index 0, without rasterizing.
func (dr *Drawing) CapturePoints(count int) {
	dr.RasterizerDiscard(true)
	gl.BeginTransformFeedback(gl.POINTS)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.EndTransformFeedback()
	dr.RasterizerDiscard(false)
}
