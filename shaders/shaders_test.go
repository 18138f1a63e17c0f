// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/glexamples/glgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	lb := NewLibrary("")
	names := lb.Names()
	assert.Contains(t, names, "galaxy.geom")
	assert.Contains(t, names, "feedback.vert")
	assert.Contains(t, names, "fxaa.frag")
	for _, n := range names {
		src, err := lb.Source(n)
		require.NoError(t, err, n)
		assert.True(t, strings.HasPrefix(src, "#version 330 core\n"), n)
		assert.Contains(t, src, "void main()", n)
	}
}

func TestTypeOf(t *testing.T) {
	st, err := TypeOf("color.vert")
	require.NoError(t, err)
	assert.Equal(t, glgpu.VertexShader, st)
	st, err = TypeOf("galaxy.geom")
	require.NoError(t, err)
	assert.Equal(t, glgpu.GeometryShader, st)
	st, err = TypeOf("dir/edge.frag")
	require.NoError(t, err)
	assert.Equal(t, glgpu.FragmentShader, st)

	_, err = TypeOf("readme.txt")
	assert.Error(t, err)
	assert.False(t, IsShaderFile("shader.glsl"))
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "color.frag"), []byte("#version 330 core\n// edited\nvoid main() {}\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.vert"), []byte("#version 330 core\nvoid main() {}\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0666))

	lb := NewLibrary(dir)
	src, err := lb.Source("color.frag")
	require.NoError(t, err)
	assert.Contains(t, src, "// edited")

	src, err = lb.Source("color.vert")
	require.NoError(t, err)
	assert.Contains(t, src, "uniform mat4 mvp;")

	names := lb.Names()
	assert.Contains(t, names, "extra.vert")
	assert.NotContains(t, names, "notes.txt")
	assert.Equal(t, 1, strings.Count(strings.Join(names, " "), "color.frag"))

	_, err = lb.Source("missing.frag")
	assert.Error(t, err)
}

func TestAddUnknownSource(t *testing.T) {
	lb := NewLibrary("")
	pr := glgpu.NewProgram("bad")
	assert.Error(t, lb.Add(pr, "missing.vert"))
	assert.Error(t, lb.Add(pr, "color.txt"))
	assert.Empty(t, pr.Shaders())

	require.NoError(t, lb.Add(pr, "color.vert", "color.frag"))
	assert.Len(t, pr.Shaders(), 2)
	assert.Error(t, lb.Add(pr, "texture.vert"), "second vertex stage")
}
