// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gpu

package glhost

import (
	"path/filepath"
	"testing"

	"cogentcore.org/glexamples/base/iox/imagex"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hiddenOptions(frames int) Options {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 48
	opts.Hidden = true
	opts.VSync = false
	opts.MaxFrames = frames
	return opts
}

func TestRunFunc(t *testing.T) {
	inits, draws := 0, 0
	err := RunFunc(hiddenOptions(3), func(h *Host) error {
		inits++
		return nil
	}, func(h *Host) error {
		draws++
		assert.Equal(t, draws, h.Frame())
		gl.ClearColor(0, 0, 1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inits)
	assert.Equal(t, 3, draws)
}

func TestRunGraphicsAPIError(t *testing.T) {
	err := RunFunc(hiddenOptions(10), nil, func(h *Host) error {
		if h.Frame() == 2 {
			gl.Enable(0xFFFF) // not a capability
		}
		return nil
	})
	var gerr *GraphicsAPIError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, uint32(gl.INVALID_ENUM), gerr.Code)
	assert.Equal(t, 2, gerr.Frame)
	assert.Equal(t, "render", gerr.Stage)
}

func TestScreenshot(t *testing.T) {
	opts := hiddenOptions(1)
	opts.Screenshot = filepath.Join(t.TempDir(), "shot.png")
	err := RunFunc(opts, nil, func(h *Host) error {
		gl.ClearColor(1, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		return nil
	})
	require.NoError(t, err)
	img, _, err := imagex.Open(opts.Screenshot)
	require.NoError(t, err)
	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}
