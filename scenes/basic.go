// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"image/color"

	"cogentcore.org/glexamples/base/iox/imagex"
	"cogentcore.org/glexamples/geom"
	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"cogentcore.org/glexamples/texgen"
	"github.com/go-gl/mathgl/mgl32"
)

// skeleton only clears the window.
type skeleton struct{}

func newSkeleton(env *Env) glhost.Scene { return &skeleton{} }

func (sc *skeleton) Init(h *glhost.Host) error {
	glgpu.Draw.ClearColor(color.RGBA{0, 0, 0, 255})
	return nil
}

func (sc *skeleton) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, false)
	return nil
}

func (sc *skeleton) Destroy() {}

// colorMesh draws a mesh of colored vertices with the color program.
type colorMesh struct {
	env  *Env
	mesh func() *geom.Mesh
	prog *glgpu.Program
	gm   *gpuMesh
}

func newShaderVBO(env *Env) glhost.Scene {
	return &colorMesh{env: env, mesh: geom.ColorQuad}
}

func newIndexedVBO(env *Env) glhost.Scene {
	return &colorMesh{env: env, mesh: geom.IndexedQuad}
}

func (sc *colorMesh) Init(h *glhost.Host) error {
	var err error
	if sc.prog, err = sc.env.Shaders.Build("color", "color.vert", "color.frag"); err != nil {
		return err
	}
	sc.gm, err = uploadMesh(sc.mesh())
	return err
}

func (sc *colorMesh) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, false)
	sc.prog.Use()
	sc.prog.SetMat4("mvp", mgl32.Ident4())
	sc.gm.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *colorMesh) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *colorMesh) Destroy() {
	sc.gm.Delete()
	sc.prog.Delete()
}

// texture draws a generated checker texture the size of the window.
type texture struct {
	env  *Env
	prog *glgpu.Program
	gm   *gpuMesh
	tex  *glgpu.Texture2D
}

func newTexture(env *Env) glhost.Scene { return &texture{env: env} }

func (sc *texture) Init(h *glhost.Host) error {
	var err error
	if sc.prog, err = sc.env.Shaders.Build("texture", "texture.vert", "texture.frag"); err != nil {
		return err
	}
	if sc.gm, err = uploadMesh(geom.TextureQuad()); err != nil {
		return err
	}
	sz := h.Size()
	sc.tex = glgpu.NewTexture2D()
	sc.tex.SetImage(imagex.TexturePixels(texgen.Checker(sz.X, sz.Y)))
	return nil
}

func (sc *texture) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, false)
	sc.prog.Use()
	sc.tex.Activate(0)
	sc.prog.SetInt("tex", 0)
	sc.gm.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *texture) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *texture) Destroy() {
	sc.tex.Delete()
	sc.gm.Delete()
	sc.prog.Delete()
}

// triangle draws a triangle whose positions and colors are
// stored one block after the other in the same buffer.
type triangle struct {
	env  *Env
	prog *glgpu.Program
	gm   *gpuMesh
}

func newTriangle(env *Env) glhost.Scene { return &triangle{env: env} }

func (sc *triangle) Init(h *glhost.Host) error {
	var err error
	if sc.prog, err = sc.env.Shaders.Build("triangle", "triangle.vert", "triangle.frag"); err != nil {
		return err
	}
	sc.gm, err = uploadMesh(geom.Triangle())
	glgpu.Draw.ClearColor(color.RGBA{0, 0, 0, 255})
	return err
}

func (sc *triangle) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, false)
	sc.prog.Use()
	sc.gm.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *triangle) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *triangle) Destroy() {
	sc.gm.Delete()
	sc.prog.Delete()
}
