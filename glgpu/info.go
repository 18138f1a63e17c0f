// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"cogentcore.org/glexamples/base/iox/imagex"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// ContextInfo describes the current GL context.
type ContextInfo struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Info returns the [ContextInfo] of the current context.
func Info() ContextInfo {
	return ContextInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// Error returns the next pending GL error code, or 0.
func Error() uint32 {
	return gl.GetError()
}

// ReadPixels reads the given size of the current read framebuffer
// into an image with the usual top-to-bottom row order.
func ReadPixels(size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(size.X), int32(size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return imagex.FlipY(img)
}
