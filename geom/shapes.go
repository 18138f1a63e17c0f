// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	posColor  = []Attrib{{"position", 3}, {"color", 3}}
	posUV     = []Attrib{{"position", 3}, {"uv", 2}}
	posNormal = []Attrib{{"position", 3}, {"normal", 3}}
)

// ColorQuad returns a quad drawn as two triangles of
// six colored vertices, without indexes.
func ColorQuad() *Mesh {
	return &Mesh{
		Name:    "ColorQuad",
		Attribs: posColor,
		Vertices: []float32{
			// x, y, z, r, g, b
			1, 1, 0, 1, 0, 0,
			-1, 1, 0, 0, 1, 0,
			1, -1, 0, 0, 0, 1,

			1, -1, 0, 0, 0, 1,
			-1, 1, 0, 0, 1, 0,
			-1, -1, 0, 1, 0, 0,
		},
	}
}

// IndexedQuad returns the colored quad with its four
// vertices shared through indexes.
func IndexedQuad() *Mesh {
	return &Mesh{
		Name:    "IndexedQuad",
		Attribs: posColor,
		Vertices: []float32{
			1, 1, 0, 1, 0, 0,
			-1, 1, 0, 0, 1, 0,
			1, -1, 0, 0, 0, 1,
			-1, -1, 0, 1, 0, 0,
		},
		Indices: []uint32{0, 1, 2, 2, 1, 3},
	}
}

// TextureQuad returns a quad covering clip space with
// texture coordinates, (0, 0) at the bottom left.
func TextureQuad() *Mesh {
	return &Mesh{
		Name:    "TextureQuad",
		Attribs: posUV,
		Vertices: []float32{
			1, 1, 0, 1, 1,
			-1, 1, 0, 0, 1,
			1, -1, 0, 1, 0,
			-1, -1, 0, 0, 0,
		},
		Indices: []uint32{0, 1, 2, 2, 1, 3},
	}
}

// ImageQuad returns the unit square with 2D positions, which
// the image shader maps to clip space and uses as texture coordinates.
func ImageQuad() *Mesh {
	return &Mesh{
		Name:    "ImageQuad",
		Attribs: []Attrib{{"position", 2}},
		Vertices: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// Triangle returns a triangle with its homogeneous positions
// stored as one block followed by its colors.
func Triangle() *Mesh {
	return &Mesh{
		Name:    "Triangle",
		Attribs: []Attrib{{"position", 4}, {"color", 4}},
		Planar:  true,
		Vertices: []float32{
			0, 0.75, 0, 1,
			-0.75, -0.75, 0, 1,
			0.75, -0.75, 0, 1,

			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
	}
}

// cubeFace is one face of a cube: its outward normal and two
// in-plane axes with u × v = normal, so corners wind counter-clockwise.
type cubeFace struct {
	normal, u, v mgl32.Vec3
	color        mgl32.Vec3
}

var cubeFaces = []cubeFace{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 1, 0}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 1, 1}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 1}},
}

// cube makes a cube of the given edge size centered at the origin,
// with four vertices per face and the given second attribute.
func cube(name string, size float32, attribs []Attrib, second func(f cubeFace) mgl32.Vec3) *Mesh {
	h := size / 2
	m := &Mesh{Name: name, Attribs: attribs}
	m.Vertices = make([]float32, 0, 24*6)
	m.Indices = make([]uint32, 0, 36)
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for fi, f := range cubeFaces {
		c := f.normal.Mul(h)
		s := second(f)
		for _, cr := range corners {
			p := c.Add(f.u.Mul(cr[0] * h)).Add(f.v.Mul(cr[1] * h))
			m.Vertices = append(m.Vertices, p[0], p[1], p[2], s[0], s[1], s[2])
		}
		b := uint32(fi * 4)
		m.Indices = append(m.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return m
}

// ColorCube returns a cube of the given edge size with one
// color per face.
func ColorCube(size float32) *Mesh {
	return cube("ColorCube", size, posColor, func(f cubeFace) mgl32.Vec3 { return f.color })
}

// NormalCube returns a cube of the given edge size with
// per-face normals, for lighting.
func NormalCube(size float32) *Mesh {
	return cube("NormalCube", size, posNormal, func(f cubeFace) mgl32.Vec3 { return f.normal })
}

// Plane returns a grid in the y = 0 plane centered at the origin,
// xsize by zsize, divided into xdivs by zdivs squares, facing +y.
func Plane(xsize, zsize float32, xdivs, zdivs int) *Mesh {
	xdivs = max(xdivs, 1)
	zdivs = max(zdivs, 1)
	m := &Mesh{Name: "Plane", Attribs: posNormal}
	m.Vertices = make([]float32, 0, (xdivs+1)*(zdivs+1)*6)
	m.Indices = make([]uint32, 0, xdivs*zdivs*6)
	dx := xsize / float32(xdivs)
	dz := zsize / float32(zdivs)
	for iz := 0; iz <= zdivs; iz++ {
		z := -zsize/2 + float32(iz)*dz
		for ix := 0; ix <= xdivs; ix++ {
			x := -xsize/2 + float32(ix)*dx
			m.Vertices = append(m.Vertices, x, 0, z, 0, 1, 0)
		}
	}
	row := uint32(xdivs + 1)
	for iz := 0; iz < zdivs; iz++ {
		for ix := 0; ix < xdivs; ix++ {
			a := uint32(iz)*row + uint32(ix)
			b := a + 1
			c := a + row
			d := c + 1
			m.Indices = append(m.Indices, a, c, b, b, c, d)
		}
	}
	return m
}

// InstanceOffsets returns the positions of eight instances at
// the corners of a cube, ±d on each axis, as vec3 values.
func InstanceOffsets(d float32) []float32 {
	offs := make([]float32, 0, 8*3)
	for _, x := range []float32{d, -d} {
		for _, y := range []float32{d, -d} {
			for _, z := range []float32{d, -d} {
				offs = append(offs, x, y, z)
			}
		}
	}
	return offs
}

// Pad4 pads vec3 values to vec4 with a zero w, matching the
// layout of texture buffers and std140 vec4 arrays.
func Pad4(v3 []float32) []float32 {
	n := len(v3) / 3
	v4 := make([]float32, 0, n*4)
	for i := range n {
		v4 = append(v4, v3[i*3], v3[i*3+1], v3[i*3+2], 0)
	}
	return v4
}
