// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 0, 255})
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("glsl")
	assert.Error(t, err)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	assert.Equal(t, "WebP", WebP.String())
}

func TestSaveOpen(t *testing.T) {
	img := gradient(8, 4)
	fn := filepath.Join(t.TempDir(), "grad.png")
	require.NoError(t, Save(img, fn))

	got, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, img.Bounds(), got.Bounds())
	assert.Equal(t, img.RGBAAt(3, 2), AsRGBA(got).RGBAAt(3, 2))
}

func TestReadNotImage(t *testing.T) {
	zip := append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0}, 64)...)
	_, _, err := Read(bytes.NewReader(zip))
	assert.ErrorIs(t, err, ErrNotImage)

	_, _, err = Read(strings.NewReader("#version 330 core\nvoid main() {}\n"))
	assert.Error(t, err)

	_, _, err = Read(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestTexturePixels(t *testing.T) {
	img := gradient(3, 5)
	tp := TexturePixels(img)
	assert.Equal(t, image.Rect(0, 0, 3, 5), tp.Bounds())
	assert.Equal(t, 3*4, tp.Stride)
	for y := 0; y < 5; y++ {
		assert.Equal(t, img.RGBAAt(1, y), tp.RGBAAt(1, 4-y))
	}
}

func TestAsRGBA(t *testing.T) {
	img := gradient(2, 2)
	assert.Same(t, img, AsRGBA(img))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{200})
	rgba := AsRGBA(gray)
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, rgba.RGBAAt(1, 1))
}

func TestOpenFS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(gradient(4, 4), &buf, PNG))
	fsys := fstest.MapFS{
		"img/grad.png":   {Data: buf.Bytes()},
		"img/shader.txt": {Data: []byte("#version 330 core\n")},
	}
	got, f, err := OpenFS(fsys, "img/grad.png")
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, 4, got.Bounds().Dx())

	_, _, err = OpenFS(fsys, "img/missing.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, _, err = OpenFS(fsys, "img/shader.txt")
	assert.Error(t, err)
}
