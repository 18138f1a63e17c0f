// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"image"

	"cogentcore.org/glexamples/camera"
	"cogentcore.org/glexamples/geom"
	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// freeCam drives a [camera.FreeCamera] from window input:
// W/S move forward and back, A/D strafe, Q/Z lift, and dragging
// with the left button turns the view.
type freeCam struct {
	cam *camera.FreeCamera
}

func (fc *freeCam) setupCamera(h *glhost.Host) {
	fc.cam = camera.NewFreeCamera()
	fc.cam.Position = mgl32.Vec3{0, 0, 5}
	fc.cam.Rotation = mgl32.Vec3{30, 35, 0}
	fc.cam.Perspective(45, h.Aspect())
}

func (fc *freeCam) Key(h *glhost.Host, key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	switch key {
	case glfw.KeyW:
		fc.cam.Forward()
	case glfw.KeyS:
		fc.cam.Backward()
	case glfw.KeyA:
		fc.cam.StrafeLeft()
	case glfw.KeyD:
		fc.cam.StrafeRight()
	case glfw.KeyQ:
		fc.cam.LiftUp()
	case glfw.KeyZ:
		fc.cam.LiftDown()
	}
}

func (fc *freeCam) MouseMove(h *glhost.Host, pos mgl32.Vec2, drag bool) {
	fc.cam.UpdateMouse(pos, drag)
}

func (fc *freeCam) Resize(h *glhost.Host, size image.Point) {
	fc.cam.Perspective(45, h.Aspect())
}

// ripple deforms a flat wireframe grid into waves in the vertex shader.
type ripple struct {
	env *Env
	freeCam
	prog  *glgpu.Program
	plane *gpuMesh
}

func newRipple(env *Env) glhost.Scene { return &ripple{env: env} }

func (sc *ripple) Init(h *glhost.Host) error {
	var err error
	if sc.prog, err = sc.env.Shaders.Build("ripple", "ripple.vert", "ripple.frag"); err != nil {
		return err
	}
	if sc.plane, err = uploadMesh16(geom.Plane(8, 8, 160, 160)); err != nil {
		return err
	}
	sc.setupCamera(h)
	glgpu.Draw.DepthTest(true)
	glgpu.Draw.Wireframe(true)
	return nil
}

func (sc *ripple) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, true)
	sc.prog.Use()
	sc.prog.SetMat4("mvp", sc.cam.ViewProjection())
	sc.prog.SetFloat("time", h.Time())
	sc.prog.SetFloat("amplitude", 0.125)
	sc.prog.SetFloat("frequency", 4)
	sc.prog.SetVec4("color", mgl32.Vec4{1, 1, 1, 1})
	sc.plane.draw()
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *ripple) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *ripple) Destroy() {
	glgpu.Draw.Wireframe(false)
	sc.plane.Delete()
	sc.prog.Delete()
}

// litObject is a mesh placed in the world by a model matrix.
type litObject struct {
	mesh  *gpuMesh
	model mgl32.Mat4
}

// diffuse lights a cube resting on a plane with a point light,
// using per-vertex diffuse shading.
type diffuse struct {
	env *Env
	freeCam
	prog    *glgpu.Program
	objects []litObject
}

func newDiffuse(env *Env) glhost.Scene { return &diffuse{env: env} }

var (
	lightPosition = mgl32.Vec4{5, 5, 5, 1}
	diffuseColor  = mgl32.Vec3{1, 1, 1} // Kd
	lightColor    = mgl32.Vec3{1, 1, 1} // Ld
)

func (sc *diffuse) Init(h *glhost.Host) error {
	var err error
	if sc.prog, err = sc.env.Shaders.Build("diffuse", "diffuse.vert", "diffuse.frag"); err != nil {
		return err
	}
	cube, err := uploadMesh(geom.NormalCube(2))
	if err != nil {
		return err
	}
	sc.objects = append(sc.objects, litObject{cube, mgl32.Translate3D(0, 1, 0)})
	plane, err := uploadMesh(geom.Plane(8, 8, 160, 160))
	if err != nil {
		return err
	}
	sc.objects = append(sc.objects, litObject{plane, mgl32.Ident4()})
	sc.setupCamera(h)
	glgpu.Draw.DepthTest(true)
	return nil
}

func (sc *diffuse) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, true)
	view := sc.cam.WorldToView()
	sc.prog.Use()
	sc.prog.SetVec4("lightPosition", view.Mul4x1(lightPosition))
	sc.prog.SetVec3("Kd", diffuseColor)
	sc.prog.SetVec3("Ld", lightColor)
	for _, ob := range sc.objects {
		mv := view.Mul4(ob.model)
		sc.prog.SetMat4("modelView", mv)
		sc.prog.SetMat3("normalMatrix", mv.Mat3().Inv().Transpose())
		sc.prog.SetMat4("mvp", sc.cam.Projection.Mul4(mv))
		ob.mesh.draw()
	}
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *diffuse) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *diffuse) Destroy() {
	for _, ob := range sc.objects {
		ob.mesh.Delete()
	}
	sc.prog.Delete()
}
