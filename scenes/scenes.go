// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenes contains the demo programs, each showing one
// OpenGL feature, and a registry to look them up by name.
package scenes

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"cogentcore.org/glexamples/base/errors"
	"cogentcore.org/glexamples/glhost"
	"cogentcore.org/glexamples/shaders"
)

// Env is what scenes are made with.
type Env struct {

	// Shaders is the source library programs are built from
	Shaders *shaders.Library

	// Image is the file shown by the image scenes; a generated
	// checker pattern is shown when it is empty
	Image string

	// Particles is the number of particles of the particle scenes;
	// 0 uses the scene's own default
	Particles int

	// Seed seeds the random numbers of the particle scenes
	Seed uint64
}

// DefaultEnv returns an environment with the built-in shaders.
func DefaultEnv() *Env {
	return &Env{Shaders: shaders.NewLibrary("")}
}

func (env *Env) rand() *rand.Rand {
	return rand.New(rand.NewPCG(env.Seed, env.Seed^0x9e3779b97f4a7c15))
}

func (env *Env) particles(def int) int {
	if env.Particles > 0 {
		return env.Particles
	}
	return def
}

// Info describes a registered scene.
type Info struct {

	// Name is the unique name used on the command line
	Name string

	// Description is a one-line summary of what the scene shows
	Description string

	// MinVersion is the oldest OpenGL version the scene runs on
	MinVersion glhost.Version

	// New makes a new instance of the scene
	New func(env *Env) glhost.Scene
}

// Supports returns whether the scene runs on a context of version v.
func (in *Info) Supports(v glhost.Version) bool {
	return v.AtLeast(in.MinVersion)
}

var registry []*Info

// Register adds a scene to the registry. It panics on a duplicate
// name or a missing constructor, which are programmer errors.
func Register(in *Info) {
	errors.Must(checkInfo(in))
	registry = append(registry, in)
}

func checkInfo(in *Info) error {
	if in.New == nil {
		return fmt.Errorf("scenes: scene %q has no constructor", in.Name)
	}
	if _, err := Get(in.Name); err == nil {
		return fmt.Errorf("scenes: scene %q registered twice", in.Name)
	}
	return nil
}

// All returns the registered scenes in registration order.
func All() []*Info {
	return slices.Clone(registry)
}

// Names returns the names of the registered scenes.
func Names() []string {
	names := make([]string, len(registry))
	for i, in := range registry {
		names[i] = in.Name
	}
	return names
}

// Get returns the scene with the given name.
func Get(name string) (*Info, error) {
	i := slices.IndexFunc(registry, func(in *Info) bool { return in.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("scenes: unknown scene %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return registry[i], nil
}

func init() {
	v33 := glhost.Version{Major: 3, Minor: 3}
	for _, in := range []*Info{
		{"skeleton", "window and render loop that only clears", glhost.Version{Major: 3, Minor: 2}, newSkeleton},
		{"shadervbo", "colored quad from a vertex buffer of six vertices", v33, newShaderVBO},
		{"indexedvbo", "colored quad sharing vertices through an index buffer", v33, newIndexedVBO},
		{"texture", "procedural checker texture on a quad", v33, newTexture},
		{"instancing", "eight cubes drawn in one call with per-instance attributes", v33, newInstancing},
		{"instancingtbo", "instanced cubes placed from a texture buffer", v33, newInstancingTBO},
		{"instancingubo", "instanced cubes placed from a uniform block", v33, newInstancingUBO},
		{"postfx", "scene rendered to a framebuffer and antialiased with FXAA (space toggles)", v33, newPostFX},
		{"galaxy", "geometry shader particle galaxy with additive blending", v33, newGalaxy},
		{"buffermapping", "particles simulated on the CPU and written through a mapped buffer", v33, newBufferMapping},
		{"transformfeedback", "particles simulated on the GPU with transform feedback", v33, newTransformFeedback},
		{"triangle", "triangle from separate position and color blocks", v33, newTriangle},
		{"displayimage", "image file shown at its own size", v33, newDisplayImage},
		{"imageprocess", "image filtered in a fragment shader (space cycles filters)", v33, newImageProcess},
		{"ripple", "wireframe plane deformed in the vertex shader with a free camera", v33, newRipple},
		{"diffuse", "cube and plane lit by a point light with a free camera", v33, newDiffuse},
	} {
		Register(in)
	}
}
