// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texgen generates procedural textures.
package texgen

import (
	"image"
	"image/color"
)

// Checker returns a w x h image of three overlaid checker patterns:
// red cells of 10 pixels, green of 13 and blue of 17, so that
// each channel is 255 where both the row and column cell index
// are odd.
func Checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cell := func(i, j, n int) uint8 {
		return uint8(255 * ((j / n) % 2) * ((i / n) % 2))
	}
	for j := range h {
		for i := range w {
			img.SetRGBA(i, j, color.RGBA{cell(i, j, 10), cell(i, j, 13), cell(i, j, 17), 255})
		}
	}
	return img
}
