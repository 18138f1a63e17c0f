// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "VertexShader", VertexShader.String())
	assert.Equal(t, "FragmentShader", FragmentShader.String())
	assert.Equal(t, "ShaderTypes(9)", ShaderTypes(9).String())
	assert.Equal(t, "vert", VertexShader.Ext())
	assert.Equal(t, "geom", GeometryShader.Ext())
	assert.Equal(t, "frag", FragmentShader.Ext())
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc\x00", CString("abc"))
	assert.Equal(t, "abc\x00", CString("abc\x00"))
}

func TestProgramShaders(t *testing.T) {
	pr := NewProgram("test")
	assert.Error(t, pr.Compile(), "no shaders")
	assert.Error(t, pr.SetSource(VertexShader, "x"))

	vs, err := pr.AddShader(VertexShader, "a.vert", "v")
	assert.NoError(t, err)
	assert.Equal(t, "a.vert", vs.Name())
	assert.Equal(t, VertexShader, vs.Type())
	_, err = pr.AddShader(FragmentShader, "a.frag", "f")
	assert.NoError(t, err)
	_, err = pr.AddShader(VertexShader, "b.vert", "v")
	assert.Error(t, err)

	assert.NoError(t, pr.SetSource(FragmentShader, "f2"))
	assert.Equal(t, "f2", pr.srcs[FragmentShader])
	assert.Len(t, pr.Shaders(), 2)
	assert.Equal(t, uint32(0), pr.Handle())
}
