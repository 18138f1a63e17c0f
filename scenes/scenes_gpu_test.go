// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gpu

package scenes

import (
	"testing"

	"cogentcore.org/glexamples/glhost"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hiddenOptions(frames int) glhost.Options {
	opts := glhost.DefaultOptions()
	opts.Width, opts.Height = 128, 96
	opts.Hidden = true
	opts.VSync = false
	opts.MaxFrames = frames
	return opts
}

func testEnv() *Env {
	env := DefaultEnv()
	env.Particles = 1024
	env.Seed = 1
	return env
}

func TestRunAll(t *testing.T) {
	for _, in := range All() {
		t.Run(in.Name, func(t *testing.T) {
			assert.NoError(t, glhost.RunScene(hiddenOptions(2), in.New(testEnv())))
		})
	}
}

// keyScene sends a key press to the wrapped scene before each frame.
type keyScene struct {
	glhost.Scene
	key glfw.Key
}

func (ks *keyScene) Render(h *glhost.Host) error {
	ks.Scene.(glhost.KeyHandler).Key(h, ks.key, glfw.Press, 0)
	return ks.Scene.Render(h)
}

func TestKeys(t *testing.T) {
	for _, name := range []string{"postfx", "imageprocess"} {
		in, err := Get(name)
		require.NoError(t, err)
		sc := in.New(testEnv())
		require.NoError(t, glhost.RunScene(hiddenOptions(4), &keyScene{Scene: sc, key: glfw.KeySpace}), name)
	}

	in, err := Get("ripple")
	require.NoError(t, err)
	sc := in.New(testEnv()).(*ripple)
	for _, key := range []glfw.Key{glfw.KeyW, glfw.KeyA, glfw.KeyQ} {
		require.NoError(t, glhost.RunScene(hiddenOptions(1), &keyScene{Scene: sc, key: key}))
	}
}

func TestImageProcessCycles(t *testing.T) {
	sc := newImageProcess(testEnv()).(*imageView)
	require.NoError(t, glhost.RunScene(hiddenOptions(4), &keyScene{Scene: sc, key: glfw.KeySpace}))
	assert.Equal(t, 4%len(imageFilters), sc.active)
}
