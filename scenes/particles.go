// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenes

import (
	"log/slog"
	"math/rand/v2"

	"cogentcore.org/glexamples/camera"
	"cogentcore.org/glexamples/glgpu"
	"cogentcore.org/glexamples/glhost"
	"cogentcore.org/glexamples/particles"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const defaultParticles = 128 * 1024

// sprites draws points as additive camera-facing quads made by
// the galaxy geometry shader, seen from the slowly turning camera.
type sprites struct {
	prog *glgpu.Program
	size float32
}

func (sp *sprites) setup(env *Env, size float32) error {
	var err error
	sp.prog, err = env.Shaders.Build("sprites", "galaxy.vert", "galaxy.geom", "galaxy.frag")
	sp.size = size
	glgpu.Draw.DepthTest(false)
	glgpu.Draw.Blend(glgpu.BlendAdditive)
	return err
}

// use activates the program with the matrices for the current frame.
func (sp *sprites) use(h *glhost.Host) {
	sp.prog.Use()
	sp.prog.SetMat4("projection", mgl32.Perspective(mgl32.DegToRad(90), h.Aspect(), 0.1, 100))
	sp.prog.SetMat4("view", camera.Tilted(h.Time()))
	sp.prog.SetFloat("size", sp.size)
}

func (sp *sprites) Delete() {
	sp.prog.Delete()
	glgpu.Draw.Blend(glgpu.BlendNone)
}

// galaxy draws a static spiral galaxy of points.
type galaxy struct {
	env *Env
	sprites
	va glgpu.VertexArray
	vb *glgpu.Buffer
	n  int
}

func newGalaxy(env *Env) glhost.Scene { return &galaxy{env: env} }

func (sc *galaxy) Init(h *glhost.Host) error {
	if err := sc.sprites.setup(sc.env, 0.1); err != nil {
		return err
	}
	sc.n = sc.env.particles(defaultParticles)
	sc.va.Activate()
	sc.vb = glgpu.NewVertexBuffer()
	sc.vb.SetFloat32(particles.Galaxy(sc.n, sc.env.rand()))
	sc.va.Attrib(0, 3, 3*4, 0)
	glgpu.UnbindVertexArray()
	return nil
}

func (sc *galaxy) Render(h *glhost.Host) error {
	glgpu.Draw.Clear(true, false)
	sc.use(h)
	sc.va.Activate()
	glgpu.Draw.Points(0, sc.n)
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *galaxy) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *galaxy) Destroy() {
	sc.vb.Delete()
	sc.va.Delete()
	sc.sprites.Delete()
}

// bufferMapping steps the particles on the CPU and writes them
// to the GPU through a mapped buffer each frame.
type bufferMapping struct {
	env *Env
	sprites
	sim   *particles.Sim
	state []float32
	rng   *rand.Rand
	va    glgpu.VertexArray
	vb    *glgpu.Buffer
	n     int
}

func newBufferMapping(env *Env) glhost.Scene { return &bufferMapping{env: env} }

func (sc *bufferMapping) Init(h *glhost.Host) error {
	if err := sc.sprites.setup(sc.env, 0.05); err != nil {
		return err
	}
	sc.n = sc.env.particles(defaultParticles)
	sc.rng = sc.env.rand()
	sc.sim = particles.DefaultSim()
	sc.state = particles.Cloud(sc.n, sc.rng)
	sc.va.Activate()
	sc.vb = glgpu.NewBuffer(gl.ARRAY_BUFFER, gl.DYNAMIC_DRAW)
	sc.vb.Allocate(len(sc.state) * 4)
	sc.va.Attrib(0, 3, particles.Stride*4, 0)
	glgpu.UnbindVertexArray()
	return nil
}

func (sc *bufferMapping) Render(h *glhost.Host) error {
	sc.sim.Step(sc.state, int32(sc.rng.IntN(0x8000)))
	data, err := sc.vb.MapFloat32(len(sc.state))
	if err != nil {
		return err
	}
	copy(data, sc.state)
	if err := sc.vb.Unmap(); err != nil {
		return err
	}
	if h.Frame()%600 == 0 {
		slog.Debug("particles", "frame", h.Frame(), "maxSpeed", particles.Speed(sc.state))
	}

	glgpu.Draw.Clear(true, false)
	sc.use(h)
	sc.va.Activate()
	glgpu.Draw.Points(0, sc.n)
	glgpu.UnbindVertexArray()
	glgpu.Unuse()
	return nil
}

func (sc *bufferMapping) Reload(h *glhost.Host) error {
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *bufferMapping) Destroy() {
	sc.vb.Delete()
	sc.va.Delete()
	sc.sprites.Delete()
}

// transformFeedback steps the particles in a vertex shader,
// capturing its outputs into the other of two buffers each frame.
type transformFeedback struct {
	env *Env
	sprites
	sim  *particles.Sim
	rng  *rand.Rand
	step *glgpu.Program
	vas  [2]glgpu.VertexArray
	vbs  [2]*glgpu.Buffer
	cur  int
	n    int
}

func newTransformFeedback(env *Env) glhost.Scene { return &transformFeedback{env: env} }

func (sc *transformFeedback) Init(h *glhost.Host) error {
	if err := sc.sprites.setup(sc.env, 0.05); err != nil {
		return err
	}
	sc.step = glgpu.NewProgram("feedback")
	if err := sc.env.Shaders.Add(sc.step, "feedback.vert"); err != nil {
		return err
	}
	sc.step.SetFeedbackVaryings(gl.INTERLEAVED_ATTRIBS, "outPosition", "outVelocity")
	if err := sc.step.Compile(); err != nil {
		return err
	}

	sc.n = sc.env.particles(defaultParticles)
	sc.rng = sc.env.rand()
	sc.sim = particles.DefaultSim()
	state := particles.Cloud(sc.n, sc.rng)
	for i := range sc.vas {
		sc.vas[i].Activate()
		sc.vbs[i] = glgpu.NewBuffer(gl.ARRAY_BUFFER, gl.STATIC_DRAW)
		sc.vbs[i].SetFloat32(state)
		sc.vas[i].Attrib(0, 3, particles.Stride*4, 0)
		sc.vas[i].Attrib(1, 3, particles.Stride*4, 3*4)
	}
	glgpu.UnbindVertexArray()
	return nil
}

func (sc *transformFeedback) Render(h *glhost.Host) error {
	sc.step.Use()
	sc.step.SetVec3s("center", sc.sim.Centers())
	sc.step.SetFloats("radius", sc.sim.Radii())
	sc.step.SetVec3("g", sc.sim.Gravity)
	sc.step.SetFloat("dt", sc.sim.Dt)
	sc.step.SetFloat("bounce", sc.sim.Bounce)
	sc.step.SetInt("seed", int32(sc.rng.IntN(0x8000)))

	// read the previous state, write the current buffer
	sc.vas[(sc.cur+1)%2].Activate()
	sc.vbs[sc.cur].BindBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0)
	glgpu.Draw.CapturePoints(sc.n)
	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, 0, 0)

	glgpu.Draw.Clear(true, false)
	sc.use(h)
	sc.vas[sc.cur].Activate()
	glgpu.Draw.Points(0, sc.n)
	glgpu.UnbindVertexArray()
	glgpu.Unuse()

	sc.cur = (sc.cur + 1) % 2
	return nil
}

func (sc *transformFeedback) Reload(h *glhost.Host) error {
	if err := sc.env.Shaders.Reload(sc.step); err != nil {
		return err
	}
	return sc.env.Shaders.Reload(sc.prog)
}

func (sc *transformFeedback) Destroy() {
	for i := range sc.vas {
		sc.vbs[i].Delete()
		sc.vas[i].Delete()
	}
	sc.step.Delete()
	sc.sprites.Delete()
}
