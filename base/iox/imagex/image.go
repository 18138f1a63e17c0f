// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// AsRGBA returns the image as an RGBA: if it already is one
// with a zero origin, then it returns that image directly.
// Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	return clone.AsRGBA(src)
}

// FlipY returns a copy of the image mirrored top to bottom.
func FlipY(src image.Image) *image.RGBA {
	return transform.FlipV(src)
}

// TexturePixels returns the image as tightly packed RGBA rows ordered
// bottom to top, which is the row order that texture uploads expect
// for images stored top to bottom.
func TexturePixels(src image.Image) *image.RGBA {
	return FlipY(AsRGBA(src))
}
