// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the GLSL sources of the scenes,
// embedded in the binary or read from a directory that
// overrides them, and builds them into programs.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"cogentcore.org/glexamples/base/errors"
	"cogentcore.org/glexamples/base/fsx"
	"cogentcore.org/glexamples/glgpu"
)

//go:embed glsl/*
var embedded embed.FS

// Embedded is the file system of the embedded sources.
var Embedded = fsx.Sub(embedded, "glsl")

// Library looks up shader sources by file name, such as "color.vert".
// Sources in Dir, if set, take precedence over the embedded ones.
type Library struct {

	// Dir is an optional directory of sources overriding the embedded ones
	Dir string

	dirFS fs.FS
}

// NewLibrary returns a library overriding the embedded sources
// with those in dir, which may be empty.
func NewLibrary(dir string) *Library {
	lb := &Library{Dir: dir}
	if dir != "" {
		lb.dirFS = os.DirFS(dir)
	}
	return lb
}

// Source returns the source text of the named file.
func (lb *Library) Source(name string) (string, error) {
	if lb.dirFS != nil {
		b, err := fs.ReadFile(lb.dirFS, name)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("shaders: reading %s: %w", name, err)
		}
	}
	b, err := fs.ReadFile(Embedded, name)
	if err != nil {
		return "", fmt.Errorf("shaders: no source %q: %w", name, err)
	}
	return string(b), nil
}

// Names returns the sorted names of all known sources.
func (lb *Library) Names() []string {
	var names []string
	add := func(fsys fs.FS) {
		ents, err := fs.ReadDir(fsys, ".")
		if err != nil {
			return
		}
		for _, e := range ents {
			if e.IsDir() || !IsShaderFile(e.Name()) {
				continue
			}
			if !slices.Contains(names, e.Name()) {
				names = append(names, e.Name())
			}
		}
	}
	add(Embedded)
	if lb.dirFS != nil {
		add(lb.dirFS)
	}
	slices.Sort(names)
	return names
}

// TypeOf returns the shader stage of a source file, from its extension.
func TypeOf(name string) (glgpu.ShaderTypes, error) {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	for _, st := range []glgpu.ShaderTypes{glgpu.VertexShader, glgpu.GeometryShader, glgpu.FragmentShader} {
		if st.Ext() == ext {
			return st, nil
		}
	}
	return 0, fmt.Errorf("shaders: %q is not a .vert, .geom or .frag file", name)
}

// IsShaderFile returns whether the name has a shader source extension.
func IsShaderFile(name string) bool {
	_, err := TypeOf(name)
	return err == nil
}

// Add adds the named sources to the program as its shader stages,
// without compiling it.
func (lb *Library) Add(pr *glgpu.Program, files ...string) error {
	for _, f := range files {
		st, err := TypeOf(f)
		if err != nil {
			return err
		}
		src, err := lb.Source(f)
		if err != nil {
			return err
		}
		if _, err := pr.AddShader(st, f, src); err != nil {
			return err
		}
	}
	return nil
}

// Build makes and compiles a program from the named sources.
func (lb *Library) Build(name string, files ...string) (*glgpu.Program, error) {
	pr := glgpu.NewProgram(name)
	if err := lb.Add(pr, files...); err != nil {
		return nil, err
	}
	if err := pr.Compile(); err != nil {
		return nil, err
	}
	return pr, nil
}

// Reload re-reads the sources of the program's shaders and
// recompiles it. On failure the previously linked program is kept.
func (lb *Library) Reload(pr *glgpu.Program) error {
	for _, sh := range pr.Shaders() {
		src, err := lb.Source(sh.Name())
		if err != nil {
			return err
		}
		if err := pr.SetSource(sh.Type(), src); err != nil {
			return err
		}
	}
	return pr.Compile()
}
