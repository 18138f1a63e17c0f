// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particles

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGalaxy(t *testing.T) {
	pts := Galaxy(4096, newRand())
	assert.Len(t, pts, 4096*3)
	var maxY, maxR float32
	for i := 0; i < len(pts); i += 3 {
		maxY = max(maxY, abs(pts[i+1]))
		maxR = max(maxR, mgl32.Vec2{pts[i], pts[i+2]}.Len())
	}
	// a flat disk: thickness is at most 2 * 2, radius at most 4 * 9 + 4 * 2 * sqrt(2)
	assert.LessOrEqual(t, maxY, float32(4))
	assert.Greater(t, maxR, maxY)
	assert.Less(t, maxR, float32(48))

	again := Galaxy(4096, newRand())
	assert.Equal(t, pts, again)
}

func TestCloud(t *testing.T) {
	st := Cloud(1000, newRand())
	assert.Len(t, st, 1000*Stride)
	for i := 0; i < len(st); i += Stride {
		assert.InDelta(t, 0, st[i], 2.5)
		assert.InDelta(t, 20, st[i+1], 2.5)
		assert.InDelta(t, 0, st[i+2], 2.5)
		assert.Equal(t, []float32{0, 0, 0}, st[i+3:i+6])
	}
}

func TestStepFreeFall(t *testing.T) {
	s := DefaultSim()
	st := []float32{100, 0, 0, 0, 0, 0}
	s.Step(st, 0)
	assert.InDelta(t, -9.81/60, st[4], 1e-6)
	assert.InDelta(t, -9.81/3600, st[1], 1e-6)
	assert.Equal(t, float32(100), st[0])
	assert.InDelta(t, 9.81/60, Speed(st), 1e-6)
}

func TestStepBounce(t *testing.T) {
	s := &Sim{Dt: 1, Bounce: 2, Spheres: []Sphere{{mgl32.Vec3{0, 0, 0}, 2}}, Floor: -100}
	// moving straight into the sphere reflects the velocity
	st := []float32{0, 1, 0, 0, -1, 0}
	s.Step(st, 0)
	assert.Equal(t, []float32{0, 2, 0, 0, 1, 0}, st)

	// moving out of the sphere is left alone
	st = []float32{0, 1, 0, 0, 1, 0}
	s.Step(st, 0)
	assert.Equal(t, []float32{0, 2, 0, 0, 1, 0}, st)
}

func TestStepRespawn(t *testing.T) {
	s := DefaultSim()
	st := []float32{
		100, -29.99, 0, 0, -10, 0,
		100, -29.99, 0, 0, -10, 0,
	}
	s.Step(st, 42)
	for i := 0; i < len(st); i += Stride {
		assert.InDelta(t, 0, st[i], 2.5)
		assert.InDelta(t, 20, st[i+1], 2.5)
		assert.InDelta(t, 0, st[i+2], 2.5)
		assert.Zero(t, Speed(st[i:i+Stride]))
	}
	assert.NotEqual(t, st[0:3], st[6:9], "particles get distinct spawn points")
}

func TestHash(t *testing.T) {
	seen := map[float32]bool{}
	for x := int32(0); x < 300; x++ {
		h := Hash(x, x/3, 7)
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
		seen[h] = true
	}
	assert.Greater(t, len(seen), 290)
	assert.Equal(t, Hash(5, 1, 9), Hash(5, 1, 9))
	assert.NotEqual(t, Hash(5, 1, 9), Hash(5, 1, 10))
}

func TestUniformArrays(t *testing.T) {
	s := DefaultSim()
	assert.Equal(t, []float32{3, 7, 12}, s.Radii())
	assert.Equal(t, mgl32.Vec3{5, -10, 0}, s.Centers()[2])
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
