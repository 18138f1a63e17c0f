// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particles

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is an obstacle the particles bounce off.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// Sim holds the parameters of the bouncing particle simulation.
// The same update runs in the transform feedback vertex shader.
type Sim struct {

	// Dt is the time step in seconds
	Dt float32

	// Gravity is the constant acceleration
	Gravity mgl32.Vec3

	// Bounce scales the velocity reflected off a sphere
	Bounce float32

	// Spheres are the obstacles
	Spheres []Sphere

	// Floor is the height below which particles respawn
	Floor float32

	// Spawn is the center of the respawn cube
	Spawn mgl32.Vec3

	// SpawnSize is the edge length of the respawn cube
	SpawnSize float32
}

// DefaultSim returns the simulation of the particle scenes:
// three spheres under normal gravity at 60 steps per second.
func DefaultSim() *Sim {
	return &Sim{
		Dt:      1.0 / 60.0,
		Gravity: mgl32.Vec3{0, -9.81, 0},
		Bounce:  1.2,
		Spheres: []Sphere{
			{mgl32.Vec3{0, 12, 1}, 3},
			{mgl32.Vec3{-3, 0, 0}, 7},
			{mgl32.Vec3{5, -10, 0}, 12},
		},
		Floor:     -30,
		Spawn:     mgl32.Vec3{0, 20, 0},
		SpawnSize: 5,
	}
}

// Centers returns the sphere centers, for a vec3 array uniform.
func (s *Sim) Centers() []mgl32.Vec3 {
	cs := make([]mgl32.Vec3, len(s.Spheres))
	for i, sp := range s.Spheres {
		cs[i] = sp.Center
	}
	return cs
}

// Radii returns the sphere radii, for a float array uniform.
func (s *Sim) Radii() []float32 {
	rs := make([]float32, len(s.Spheres))
	for i, sp := range s.Spheres {
		rs[i] = sp.Radius
	}
	return rs
}

// Step advances all particles of state, [Stride] values each, by
// one time step. Particles moving into a sphere are pushed back
// out along the sphere normal. Particles below the floor respawn
// at rest at a pseudo-random point of the spawn cube chosen by
// [Hash] with the given seed.
func (s *Sim) Step(state []float32, seed int32) {
	for i := 0; i+Stride <= len(state); i += Stride {
		p := mgl32.Vec3{state[i], state[i+1], state[i+2]}
		v := mgl32.Vec3{state[i+3], state[i+4], state[i+5]}
		nv := v
		for _, sp := range s.Spheres {
			diff := p.Sub(sp.Center)
			dist := diff.Len()
			if d := diff.Dot(v); dist < sp.Radius && d < 0 {
				nv = nv.Sub(diff.Mul(s.Bounce * d / (dist * dist)))
			}
		}
		nv = nv.Add(s.Gravity.Mul(s.Dt))
		np := p.Add(nv.Mul(s.Dt))
		if np[1] < s.Floor {
			id := int32(i / Stride)
			r := mgl32.Vec3{Hash(3*id, id, seed), Hash(3*id+1, id, seed), Hash(3*id+2, id, seed)}
			np = s.Spawn.Add(mgl32.Vec3{0.5 - r[0], 0.5 - r[1], 0.5 - r[2]}.Mul(s.SpawnSize))
			nv = mgl32.Vec3{}
		}
		copy(state[i:i+Stride], []float32{np[0], np[1], np[2], nv[0], nv[1], nv[2]})
	}
}

// Hash returns a pseudo-random value in [0, 1] for the given
// input, particle id and seed, using 32-bit wrapping arithmetic.
func Hash(x, id, seed int32) float32 {
	x = x*1235167 + id*948737 + seed*9284365
	x = (x >> 13) ^ x
	h := (x*(x*x*60493+19990303) + 1376312589) & 0x7fffffff
	return float32(h) / float32(0x7fffffff-1)
}

// Speed returns the largest particle speed in state, for logging.
func Speed(state []float32) float32 {
	var m float32
	for i := 0; i+Stride <= len(state); i += Stride {
		m = math32.Max(m, mgl32.Vec3{state[i+3], state[i+4], state[i+5]}.Len())
	}
	return m
}
