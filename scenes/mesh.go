// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"cogentcore.org/glexamples/geom"
	"cogentcore.org/glexamples/glgpu"
)

// gpuMesh is a mesh uploaded to a vertex array with its buffers,
// attribute i of the mesh at location i.
type gpuMesh struct {
	va      glgpu.VertexArray
	vb      *glgpu.Buffer
	ib      *glgpu.Buffer
	count   int
	index16 bool
}

func uploadMesh(m *geom.Mesh) (*gpuMesh, error) {
	return upload(m, false)
}

// uploadMesh16 uploads the mesh with uint16 indexes.
func uploadMesh16(m *geom.Mesh) (*gpuMesh, error) {
	return upload(m, true)
}

func upload(m *geom.Mesh, index16 bool) (*gpuMesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	gm := &gpuMesh{count: m.DrawCount(), index16: index16}
	gm.va.Activate()
	gm.vb = glgpu.NewVertexBuffer()
	gm.vb.SetFloat32(m.Vertices)
	for i, a := range m.Attribs {
		gm.va.Attrib(uint32(i), int32(a.Size), m.Stride(i), m.Offset(i))
	}
	if len(m.Indices) > 0 {
		gm.ib = glgpu.NewIndexBuffer()
		if index16 {
			ix, err := m.Indices16()
			if err != nil {
				gm.Delete()
				return nil, err
			}
			gm.ib.SetUint16(ix)
		} else {
			gm.ib.SetUint32(m.Indices)
		}
	}
	glgpu.UnbindVertexArray()
	return gm, nil
}

// draw draws the mesh as triangles.
func (gm *gpuMesh) draw() {
	gm.va.Activate()
	switch {
	case gm.ib == nil:
		glgpu.Draw.Triangles(0, gm.count)
	case gm.index16:
		glgpu.Draw.TrianglesIndexed16(gm.count)
	default:
		glgpu.Draw.TrianglesIndexed(gm.count)
	}
}

// drawInstanced draws n instances of the indexed mesh.
func (gm *gpuMesh) drawInstanced(n int) {
	gm.va.Activate()
	glgpu.Draw.TrianglesInstanced(gm.count, n)
}

func (gm *gpuMesh) Delete() {
	if gm == nil {
		return
	}
	gm.ib.Delete()
	gm.vb.Delete()
	gm.va.Delete()
}
