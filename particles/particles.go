// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particles makes the initial point sets of the particle
// scenes and steps the bouncing particle simulation on the CPU.
package particles

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Stride is the number of float32 values per simulated particle:
// a position followed by a velocity.
const Stride = 6

// Galaxy returns n points of a three-armed spiral galaxy in the
// y = 0 plane, as xyz triples.
func Galaxy(n int, rng *rand.Rand) []float32 {
	pts := make([]float32, 0, n*3)
	spread := func() float32 {
		return 2 - (rng.Float32() + rng.Float32() + rng.Float32() + rng.Float32())
	}
	for range n {
		arm := float32(rng.IntN(3))
		alpha := 1/(0.1+math32.Pow(rng.Float32(), 0.7)) - 1/1.1
		r := 4 * alpha
		alpha += arm * 2 * math32.Pi / 3
		x := r*math32.Sin(alpha) + (4-0.2*alpha)*spread()
		y := (2 - 0.1*alpha) * spread()
		z := r*math32.Cos(alpha) + (4-0.2*alpha)*spread()
		pts = append(pts, x, y, z)
	}
	return pts
}

// Cloud returns n resting particles placed uniformly in a cube
// of edge 5 centered at (0, 20, 0), [Stride] values per particle.
func Cloud(n int, rng *rand.Rand) []float32 {
	state := make([]float32, 0, n*Stride)
	for range n {
		state = append(state,
			5*(0.5-rng.Float32()),
			20+5*(0.5-rng.Float32()),
			5*(0.5-rng.Float32()),
			0, 0, 0)
	}
	return state
}
