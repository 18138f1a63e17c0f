// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshSizes(t *testing.T) {
	tests := []struct {
		mesh     *Mesh
		verts    int
		indexes  int
		stride   int
		vtxBytes int
		offset1  int
	}{
		{ColorQuad(), 6, 0, 24, 6 * 6 * 4, 12},
		{IndexedQuad(), 4, 6, 24, 4 * 6 * 4, 12},
		{TextureQuad(), 4, 6, 20, 4 * 5 * 4, 12},
		{ImageQuad(), 4, 6, 8, 4 * 2 * 4, 8},
		{ColorCube(1), 24, 36, 24, 24 * 6 * 4, 12},
		{NormalCube(2), 24, 36, 24, 24 * 6 * 4, 12},
		{Plane(8, 8, 160, 160), 161 * 161, 160 * 160 * 6, 24, 161 * 161 * 6 * 4, 12},
	}
	for _, tt := range tests {
		t.Run(tt.mesh.Name, func(t *testing.T) {
			m := tt.mesh
			require.NoError(t, m.Validate())
			assert.Equal(t, tt.verts, m.VertexCount())
			assert.Len(t, m.Indices, tt.indexes)
			assert.Equal(t, tt.indexes*4, m.IndexBytes())
			assert.Equal(t, tt.vtxBytes, m.VertexBytes())
			assert.Equal(t, tt.stride, m.Stride(0))
			if len(m.Attribs) > 1 {
				assert.Equal(t, tt.offset1, m.Offset(1))
			}
			if tt.indexes == 0 {
				assert.Equal(t, tt.verts, m.DrawCount())
			} else {
				assert.Equal(t, tt.indexes, m.DrawCount())
			}
		})
	}
}

func TestImageQuadOffset(t *testing.T) {
	m := ImageQuad()
	assert.Equal(t, 0, m.Offset(0))
	assert.Equal(t, 2, m.Components())
	ix, err := m.Indices16()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, ix)
}

func TestTrianglePlanar(t *testing.T) {
	m := Triangle()
	require.NoError(t, m.Validate())
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 0, m.Offset(0))
	assert.Equal(t, 3*4*4, m.Offset(1))
	assert.Equal(t, 16, m.Stride(1))
	assert.Equal(t, 24*4, m.VertexBytes())
}

func TestValidate(t *testing.T) {
	m := IndexedQuad()
	m.Indices = append(m.Indices, 4)
	assert.Error(t, m.Validate())

	m = ColorQuad()
	m.Vertices = m.Vertices[:len(m.Vertices)-1]
	assert.Error(t, m.Validate())

	assert.Error(t, (&Mesh{Name: "empty"}).Validate())

	big := Plane(1, 1, 300, 300)
	_, err := big.Indices16()
	assert.Error(t, err)
}

// faceNormal returns the geometric normal of triangle i of m.
func faceNormal(m *Mesh, i int) mgl32.Vec3 {
	c := m.Components()
	p := func(ix uint32) mgl32.Vec3 {
		o := int(ix) * c
		return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
	}
	a, b, d := p(m.Indices[i*3]), p(m.Indices[i*3+1]), p(m.Indices[i*3+2])
	return b.Sub(a).Cross(d.Sub(a)).Normalize()
}

func TestCubeWinding(t *testing.T) {
	m := NormalCube(2)
	for tri := 0; tri < 12; tri++ {
		v := m.Indices[tri*3]
		o := int(v) * 6
		normal := mgl32.Vec3{m.Vertices[o+3], m.Vertices[o+4], m.Vertices[o+5]}
		assert.True(t, faceNormal(m, tri).ApproxEqual(normal), "triangle %d", tri)
	}
	for i := 0; i < len(m.Vertices); i += 6 {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, 1, abs(m.Vertices[i+k]), 1e-6)
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestPlane(t *testing.T) {
	m := Plane(8, 4, 4, 2)
	require.NoError(t, m.Validate())
	assert.Equal(t, float32(-4), m.Vertices[0])
	assert.Equal(t, float32(-2), m.Vertices[2])
	last := len(m.Vertices) - 6
	assert.Equal(t, float32(4), m.Vertices[last])
	assert.Equal(t, float32(2), m.Vertices[last+2])
	for tri := 0; tri < len(m.Indices)/3; tri++ {
		assert.True(t, faceNormal(m, tri).ApproxEqual(mgl32.Vec3{0, 1, 0}))
	}
	one := Plane(1, 1, 0, 0)
	assert.Equal(t, 4, one.VertexCount())
}

func TestInstanceOffsets(t *testing.T) {
	offs := InstanceOffsets(2)
	assert.Len(t, offs, 24)
	seen := map[[3]float32]bool{}
	for i := 0; i < 8; i++ {
		o := [3]float32{offs[i*3], offs[i*3+1], offs[i*3+2]}
		for _, v := range o {
			assert.Equal(t, float32(2), abs(v))
		}
		seen[o] = true
	}
	assert.Len(t, seen, 8)

	p := Pad4(offs)
	assert.Len(t, p, 32)
	assert.Equal(t, offs[3:6], p[4:7])
	assert.Zero(t, p[7])
}
