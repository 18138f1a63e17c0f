// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit returns the projection and view of the instancing scenes
// at time t seconds: a 90 degree perspective and a view 5 units
// back, turning 90 degrees per second around the (1, 1, 1) axis.
func Orbit(t, aspect float32) (projection, view mgl32.Mat4) {
	projection = mgl32.Perspective(math32.Pi/2, aspect, 0.1, 100)
	angle := math32.Mod(t*math32.Pi/2, 2*math32.Pi)
	view = mgl32.Translate3D(0, 0, -5).Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{1, 1, 1}.Normalize()))
	return
}

// Tilted returns the view of the galaxy scene at time t seconds:
// 30 units back, tilted 30 degrees around x and turning
// -22.5 degrees per second around y.
func Tilted(t float32) mgl32.Mat4 {
	spin := math32.Mod(-22.5*t, 360)
	return mgl32.Translate3D(0, 0, -30).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(spin)))
}
