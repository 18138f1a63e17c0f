// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func vecEqual(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "want %v got %v", want, got)
	}
}

func TestFreeCameraMoves(t *testing.T) {
	c := NewFreeCamera()
	vecEqual(t, mgl32.Vec3{1, 0, 0}, c.Right())
	c.Forward()
	vecEqual(t, mgl32.Vec3{0, 0, -1}, c.Position)
	c.Backward()
	c.Backward()
	vecEqual(t, mgl32.Vec3{0, 0, 1}, c.Position)
	c.StrafeRight()
	vecEqual(t, mgl32.Vec3{1, 0, 1}, c.Position)
	c.StrafeLeft()
	c.LiftUp()
	vecEqual(t, mgl32.Vec3{0, 1, 1}, c.Position)
	c.LiftDown()
	vecEqual(t, mgl32.Vec3{0, 0, 1}, c.Position)
}

func TestWorldToView(t *testing.T) {
	c := NewFreeCamera()
	c.Position = mgl32.Vec3{0, 0, 5}
	p := c.WorldToView().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	vecEqual(t, mgl32.Vec3{0, 0, -5}, p.Vec3())

	// a point on +x moves away from the eye after 90 degrees around y
	c.Rotation = mgl32.Vec3{0, 90, 0}
	p = c.WorldToView().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	vecEqual(t, mgl32.Vec3{0, 0, -6}, p.Vec3())
}

func TestUpdateMouse(t *testing.T) {
	c := NewFreeCamera()
	c.UpdateMouse(mgl32.Vec2{100, 100}, false)
	c.UpdateMouse(mgl32.Vec2{1000, 100}, false)
	vecEqual(t, mgl32.Vec3{0, 0, -1}, c.ViewDirection())

	// dragging 900 pixels right at 0.1 degree per pixel turns right 90 degrees
	c.UpdateMouse(mgl32.Vec2{1900, 100}, true)
	vecEqual(t, mgl32.Vec3{1, 0, 0}, c.ViewDirection())
	vecEqual(t, mgl32.Vec3{0, 0, 1}, c.Right())

	// dragging down looks down
	c.UpdateMouse(mgl32.Vec2{1900, 200}, true)
	assert.Less(t, c.ViewDirection()[1], float32(0))

	// looking straight down is refused
	before := c.ViewDirection()
	c.UpdateMouse(mgl32.Vec2{1900, 1000}, true)
	vecEqual(t, before, c.ViewDirection())
}

func TestPerspective(t *testing.T) {
	c := NewFreeCamera()
	c.Perspective(45, 2)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 1000), c.Projection)
	assert.Equal(t, c.Projection.Mul4(c.WorldToView()), c.ViewProjection())
}

func TestOrbit(t *testing.T) {
	proj, view := Orbit(0, 4.0/3.0)
	assert.True(t, mgl32.Perspective(mgl32.DegToRad(90), 4.0/3.0, 0.1, 100).ApproxEqualThreshold(proj, 1e-5))
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	vecEqual(t, mgl32.Vec3{0, 0, -5}, p.Vec3())

	// the rotation axis is fixed
	axis := mgl32.Vec3{1, 1, 1}.Normalize()
	_, view = Orbit(1.7, 1)
	p = view.Mul4x1(axis.Vec4(1))
	vecEqual(t, axis.Add(mgl32.Vec3{0, 0, -5}), p.Vec3())
}

func TestTilted(t *testing.T) {
	v := Tilted(0)
	p := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	vecEqual(t, mgl32.Vec3{0, 0, -30}, p.Vec3())
	// y axis is tilted 30 degrees toward the viewer
	p = v.Mul4x1(mgl32.Vec4{0, 1, 0, 0})
	vecEqual(t, mgl32.Vec3{0, 0.8660254, 0.5}, p.Vec3())
	// spinning about y leaves the y axis fixed
	vecEqual(t, p.Vec3(), Tilted(3).Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3())
}
