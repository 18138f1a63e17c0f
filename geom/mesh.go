// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom makes the vertex and index data drawn by the scenes.
package geom

import (
	"fmt"
	"math"
)

// Attrib is one vertex attribute: a name and a number of
// float32 components.
type Attrib struct {
	Name string
	Size int
}

// Mesh is vertex data with an optional index list.
// Attributes are interleaved per vertex unless Planar is set,
// in which case each attribute is stored as one block for all
// vertices, in attribute order.
type Mesh struct {
	Name     string
	Attribs  []Attrib
	Vertices []float32
	Indices  []uint32
	Planar   bool
}

// Components returns the number of float32 values per vertex.
func (m *Mesh) Components() int {
	n := 0
	for _, a := range m.Attribs {
		n += a.Size
	}
	return n
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	c := m.Components()
	if c == 0 {
		return 0
	}
	return len(m.Vertices) / c
}

// VertexBytes returns the byte size of the vertex data.
func (m *Mesh) VertexBytes() int {
	return len(m.Vertices) * 4
}

// IndexBytes returns the byte size of the indexes as uint32.
func (m *Mesh) IndexBytes() int {
	return len(m.Indices) * 4
}

// DrawCount returns the number of indexes, or of vertices
// when the mesh is not indexed.
func (m *Mesh) DrawCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Stride returns the byte distance between consecutive values
// of an attribute.
func (m *Mesh) Stride(attrib int) int {
	if m.Planar {
		return m.Attribs[attrib].Size * 4
	}
	return m.Components() * 4
}

// Offset returns the byte offset of the first value of an attribute.
func (m *Mesh) Offset(attrib int) int {
	off := 0
	for _, a := range m.Attribs[:attrib] {
		off += a.Size
	}
	if m.Planar {
		off *= m.VertexCount()
	}
	return off * 4
}

// Indices16 returns the indexes as uint16, for small meshes.
func (m *Mesh) Indices16() ([]uint16, error) {
	ix := make([]uint16, len(m.Indices))
	for i, v := range m.Indices {
		if v > math.MaxUint16 {
			return nil, fmt.Errorf("geom: mesh %s: index %d does not fit in uint16", m.Name, v)
		}
		ix[i] = uint16(v)
	}
	return ix, nil
}

// Validate checks that the vertex data holds whole vertices and
// that every index refers to one of them.
func (m *Mesh) Validate() error {
	c := m.Components()
	if c == 0 {
		return fmt.Errorf("geom: mesh %s has no attributes", m.Name)
	}
	if len(m.Vertices)%c != 0 {
		return fmt.Errorf("geom: mesh %s: %d values is not a multiple of %d components", m.Name, len(m.Vertices), c)
	}
	n := uint32(m.VertexCount())
	for i, v := range m.Indices {
		if v >= n {
			return fmt.Errorf("geom: mesh %s: index %d at %d is out of range for %d vertices", m.Name, v, i, n)
		}
	}
	return nil
}
