// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"fmt"
	"image"

	"cogentcore.org/glexamples/camera"
	"cogentcore.org/glexamples/geom"
	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// placements are the ways the instanced cubes get their offsets.
type placements int32

const (
	// attribPlacement reads offsets from a vertex attribute
	// that advances once per instance.
	attribPlacement placements = iota

	// bufferPlacement fetches offsets from a texture buffer.
	bufferPlacement

	// blockPlacement reads offsets from a uniform block.
	blockPlacement
)

var placementShaders = map[placements]string{
	attribPlacement: "instancing.vert",
	bufferPlacement: "instancing_tbo.vert",
	blockPlacement:  "instancing_ubo.vert",
}

const numInstances = 8

// instanceCube is the cube drawn at each offset, spanning -1..1.
func instanceCube() *geom.Mesh {
	return geom.ColorCube(2)
}

// instancing draws eight cubes with one instanced draw call.
type instancing struct {
	env     *Env
	place   placements
	prog    *glgpu.Program
	cube    *gpuMesh
	offsets *glgpu.Buffer
	tbo     *glgpu.BufferTexture
}

func newInstancing(env *Env) glhost.Scene {
	return &instancing{env: env, place: attribPlacement}
}

func newInstancingTBO(env *Env) glhost.Scene {
	return &instancing{env: env, place: bufferPlacement}
}

func newInstancingUBO(env *Env) glhost.Scene {
	return &instancing{env: env, place: blockPlacement}
}

func (sc *instancing) Init(h *glhost.Host) error {
	var err error
	sc.prog, err = sc.env.Shaders.Build("instancing", placementShaders[sc.place], "color.frag")
	if err != nil {
		return err
	}
	if sc.cube, err = uploadMesh(instanceCube()); err != nil {
		return err
	}
	offs := geom.InstanceOffsets(2)
	switch sc.place {
	case attribPlacement:
		sc.cube.va.Activate()
		sc.offsets = glgpu.NewVertexBuffer()
		sc.offsets.SetFloat32(offs)
		sc.cube.va.Attrib(2, 3, 3*4, 0)
		sc.cube.va.AttribDivisor(2, 1)
		glgpu.UnbindVertexArray()
	case bufferPlacement:
		// texture buffers have no three-component float format before 4.0
		sc.offsets = glgpu.NewBuffer(gl.TEXTURE_BUFFER, gl.STATIC_DRAW)
		sc.offsets.SetFloat32(geom.Pad4(offs))
		sc.tbo = glgpu.NewBufferTexture(sc.offsets, gl.RGBA32F)
	case blockPlacement:
		sc.offsets = glgpu.NewBuffer(gl.UNIFORM_BUFFER, gl.STATIC_DRAW)
		sc.offsets.SetFloat32(geom.Pad4(offs))
		if err := sc.bindBlock(); err != nil {
			return err
		}
	}
	return nil
}

func (sc *instancing) bindBlock() error {
	if sc.place != blockPlacement {
		return nil
	}
	sc.offsets.BindBase(gl.UNIFORM_BUFFER, 0)
	return sc.prog.BindUniformBlock("Offsets", 0)
}

func (sc *instancing) Render(h *glhost.Host) error {
	glgpu.Draw.DepthTest(true)
	glgpu.Draw.Clear(true, true)
	sc.prog.Use()
	proj, view := camera.Orbit(h.Time(), h.Aspect())
	sc.prog.SetMat4("projection", proj)
	sc.prog.SetMat4("view", view)
	if sc.tbo != nil {
		sc.tbo.Activate(0)
		sc.prog.SetInt("offsets", 0)
	}
	sc.cube.drawInstanced(numInstances)
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *instancing) Reload(h *glhost.Host) error {
	if err := sc.env.Shaders.Reload(sc.prog); err != nil {
		return err
	}
	return sc.bindBlock()
}

func (sc *instancing) Destroy() {
	sc.tbo.Delete()
	sc.offsets.Delete()
	sc.cube.Delete()
	sc.prog.Delete()
}

// postFX renders the instanced cubes into a framebuffer and
// draws its color texture to the window through an FXAA filter.
type postFX struct {
	env    *Env
	scene  *instancing
	fb     *glgpu.Framebuffer
	prog   *glgpu.Program
	quad   *gpuMesh
	fxaa   bool
	resize bool
}

func newPostFX(env *Env) glhost.Scene {
	return &postFX{env: env, scene: &instancing{env: env, place: attribPlacement}, fxaa: true}
}

func (sc *postFX) Init(h *glhost.Host) error {
	if err := sc.scene.Init(h); err != nil {
		return err
	}
	var err error
	if sc.prog, err = sc.env.Shaders.Build("fxaa", "texture.vert", "fxaa.frag"); err != nil {
		return err
	}
	if sc.quad, err = uploadMesh(geom.TextureQuad()); err != nil {
		return err
	}
	sc.fb = glgpu.NewFramebuffer("postfx", h.Size())
	sc.title(h)
	return nil
}

func (sc *postFX) title(h *glhost.Host) {
	state := "off"
	if sc.fxaa {
		state = "on"
	}
	h.SetTitle(fmt.Sprintf("%s: FXAA %s (space toggles)", h.Options.Title, state))
}

func (sc *postFX) Key(h *glhost.Host, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeySpace && action == glfw.Press {
		sc.fxaa = !sc.fxaa
		sc.title(h)
	}
}

func (sc *postFX) Resize(h *glhost.Host, size image.Point) {
	sc.resize = true
}

func (sc *postFX) Render(h *glhost.Host) error {
	if sz := h.Size(); sz.X == 0 || sz.Y == 0 {
		return nil // minimized
	}
	if sc.resize {
		sc.fb.SetSize(h.Size())
		sc.resize = false
	}
	if err := sc.fb.Activate(); err != nil {
		return err
	}
	if err := sc.scene.Render(h); err != nil {
		return err
	}

	glgpu.BindDefault(h.Size())
	glgpu.Draw.DepthTest(false)
	glgpu.Draw.Clear(true, false)
	sc.prog.Use()
	sc.fb.Texture().Activate(0)
	sc.prog.SetInt("tex", 0)
	sz := sc.fb.Size()
	sc.prog.SetVec2("texelSize", mgl32.Vec2{1 / float32(sz.X), 1 / float32(sz.Y)})
	enabled := int32(0)
	if sc.fxaa {
		enabled = 1
	}
	sc.prog.SetInt("enabled", enabled)
	sc.quad.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *postFX) Reload(h *glhost.Host) error {
	if err := sc.scene.Reload(h); err != nil {
		return err
	}
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *postFX) Destroy() {
	sc.quad.Delete()
	sc.prog.Delete()
	sc.fb.Delete()
	sc.scene.Destroy()
}
