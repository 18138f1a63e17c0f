// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glex runs the OpenGL example scenes.
//
//	glex list
//	glex run texture
//	glex run ripple --shaders ./glsl --watch
//	glex check
package main

import (
	"os"

	"cogentcore.org/glexamples/base/errors"
)

func main() {
	a := newApp()
	if errors.Log(a.execute(a.root())) != nil {
		os.Exit(1)
	}
}
