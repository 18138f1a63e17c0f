// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the view and projection matrices
// used by the scenes.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FreeCamera is a first-person camera moved with keys and
// turned by dragging the mouse.
type FreeCamera struct {

	// Position of the eye in world coordinates
	Position mgl32.Vec3

	// Rotation is a fixed rotation in degrees around the x, y and z
	// axes, applied to the world after the look-at transform
	Rotation mgl32.Vec3

	// RotateSpeed is the turn in degrees per pixel of mouse drag
	RotateSpeed float32

	// Projection is the view-to-clip matrix
	Projection mgl32.Mat4

	up    mgl32.Vec3
	view  mgl32.Vec3
	right mgl32.Vec3

	lastMouse mgl32.Vec2
}

// NewFreeCamera returns a camera at the origin looking down -z.
func NewFreeCamera() *FreeCamera {
	c := &FreeCamera{
		RotateSpeed: 0.1,
		Projection:  mgl32.Ident4(),
		up:          mgl32.Vec3{0, 1, 0},
		view:        mgl32.Vec3{0, 0, -1},
	}
	c.right = c.view.Cross(c.up)
	return c
}

// ViewDirection returns the unit vector the camera looks along.
func (c *FreeCamera) ViewDirection() mgl32.Vec3 { return c.view }

// Up returns the up axis.
func (c *FreeCamera) Up() mgl32.Vec3 { return c.up }

// Right returns the unit vector to the right of the view direction.
func (c *FreeCamera) Right() mgl32.Vec3 { return c.right }

// Perspective sets the projection to a perspective with the given
// vertical field of view in degrees and aspect ratio.
func (c *FreeCamera) Perspective(fov, aspect float32) {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, 0.1, 1000)
}

// WorldToView returns the view matrix.
func (c *FreeCamera) WorldToView() mgl32.Mat4 {
	m := mgl32.LookAtV(c.Position, c.Position.Add(c.view), c.up)
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(c.Rotation[0])))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.Rotation[1])))
	return m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.Rotation[2])))
}

// ViewProjection returns Projection * WorldToView.
func (c *FreeCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.WorldToView())
}

// UpdateMouse records the mouse position and, when drag is set,
// turns the view by the distance moved since the last call:
// horizontal moves turn around the up axis, vertical moves
// around the right axis.
func (c *FreeCamera) UpdateMouse(pos mgl32.Vec2, drag bool) {
	if drag {
		d := pos.Sub(c.lastMouse)
		yaw := mgl32.HomogRotate3D(mgl32.DegToRad(-d[0]*c.RotateSpeed), c.up)
		c.view = yaw.Mul4x1(c.view.Vec4(0)).Vec3().Normalize()
		c.right = c.view.Cross(c.up).Normalize()
		pitch := mgl32.HomogRotate3D(mgl32.DegToRad(-d[1]*c.RotateSpeed), c.right)
		v := pitch.Mul4x1(c.view.Vec4(0)).Vec3().Normalize()
		// stop short of the poles, where right is undefined
		if math32.Abs(v.Dot(c.up)) < 0.99 {
			c.view = v
		}
	}
	c.lastMouse = pos
}

// Forward moves one unit along the view direction.
func (c *FreeCamera) Forward() { c.Position = c.Position.Add(c.view) }

// Backward moves one unit against the view direction.
func (c *FreeCamera) Backward() { c.Position = c.Position.Sub(c.view) }

// LiftUp moves one unit along the up axis.
func (c *FreeCamera) LiftUp() { c.Position = c.Position.Add(c.up) }

// LiftDown moves one unit against the up axis.
func (c *FreeCamera) LiftDown() { c.Position = c.Position.Sub(c.up) }

// StrafeLeft moves one unit to the left.
func (c *FreeCamera) StrafeLeft() { c.Position = c.Position.Sub(c.right) }

// StrafeRight moves one unit to the right.
func (c *FreeCamera) StrafeRight() { c.Position = c.Position.Add(c.right) }
