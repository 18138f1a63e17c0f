// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gpu

package glgpu_test

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runOnce runs fn as the single frame of a hidden window.
func runOnce(t *testing.T, fn func(h *glhost.Host) error) {
	opts := glhost.DefaultOptions()
	opts.Width, opts.Height = 32, 32
	opts.Hidden = true
	opts.MaxFrames = 1
	require.NoError(t, glhost.RunFunc(opts, nil, fn))
}

func TestCompileError(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		pr := glgpu.NewProgram("broken")
		pr.AddShader(glgpu.VertexShader, "broken.vert", "#version 330 core\nvoid main() { gl_Position = undefined; }\n")
		err := pr.Compile()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "broken.vert")
		}
		return nil
	})
}

func TestBufferSizes(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		va := &glgpu.VertexArray{}
		va.Activate()
		defer va.Delete()
		vb := glgpu.NewVertexBuffer()
		vb.SetFloat32(make([]float32, 18))
		assert.Equal(t, 18*4, vb.Size())
		ib := glgpu.NewIndexBuffer()
		ib.SetUint16(make([]uint16, 6))
		assert.Equal(t, 12, ib.Size())
		ib.SetUint32(make([]uint32, 6))
		assert.Equal(t, 24, ib.Size())

		var sz int32
		vb.Activate()
		gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &sz)
		assert.Equal(t, int32(72), sz)
		vb.Delete()
		ib.Delete()
		return nil
	})
}

func TestMapBuffer(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		b := glgpu.NewBuffer(gl.ARRAY_BUFFER, gl.DYNAMIC_DRAW)
		b.Allocate(16 * 4)
		data, err := b.MapFloat32(16)
		require.NoError(t, err)
		assert.Len(t, data, 16)
		for i := range data {
			data[i] = float32(i)
		}
		assert.NoError(t, b.Unmap())
		b.Delete()
		return nil
	})
}

func TestFramebufferClear(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		fb := glgpu.NewFramebuffer("test", image.Point{8, 4})
		require.NoError(t, fb.Activate())
		glgpu.Draw.ClearColor(color.RGBA{0, 255, 0, 255})
		glgpu.Draw.Clear(true, true)
		img := glgpu.ReadPixels(fb.Size())
		assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(3, 2))
		glgpu.BindDefault(h.Size())
		fb.Delete()
		return nil
	})
}

func TestCompileErrorDeletesShaders(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		pr := glgpu.NewProgram("half")
		_, err := pr.AddShader(glgpu.VertexShader, "ok.vert", "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n")
		require.NoError(t, err)
		_, err = pr.AddShader(glgpu.FragmentShader, "broken.frag", "#version 330 core\nvoid main() { undefined; }\n")
		require.NoError(t, err)
		assert.ErrorContains(t, pr.Compile(), "broken.frag")
		for _, sh := range pr.Shaders() {
			assert.Zero(t, sh.Handle(), sh.Name())
		}
		assert.Zero(t, pr.Handle())
		return nil
	})
}

func TestDrawState(t *testing.T) {
	runOnce(t, func(h *glhost.Host) error {
		glgpu.Draw.Viewport(image.Pt(16, 8))
		vp := make([]int32, 4)
		gl.GetIntegerv(gl.VIEWPORT, &vp[0])
		assert.Equal(t, []int32{0, 0, 16, 8}, vp)

		var src, dst int32
		glgpu.Draw.Blend(glgpu.BlendAlpha)
		assert.True(t, gl.IsEnabled(gl.BLEND))
		gl.GetIntegerv(gl.BLEND_SRC_RGB, &src)
		gl.GetIntegerv(gl.BLEND_DST_RGB, &dst)
		assert.Equal(t, int32(gl.ONE), src)
		assert.Equal(t, int32(gl.ONE_MINUS_SRC_ALPHA), dst)
		glgpu.Draw.Blend(glgpu.BlendNone)
		assert.False(t, gl.IsEnabled(gl.BLEND))
		glgpu.Draw.Viewport(h.Size())
		return nil
	})
}
