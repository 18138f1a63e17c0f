// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderTypes are the programmable stages a [Shader] can be compiled for.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	GeometryShader
	FragmentShader
)

var shaderTypeNames = [...]string{"VertexShader", "GeometryShader", "FragmentShader"}

func (st ShaderTypes) String() string {
	if st < 0 || int(st) >= len(shaderTypeNames) {
		return fmt.Sprintf("ShaderTypes(%d)", int32(st))
	}
	return shaderTypeNames[st]
}

// Ext returns the file extension conventionally used for
// source files of this shader type, without the dot.
func (st ShaderTypes) Ext() string {
	switch st {
	case GeometryShader:
		return "geom"
	case FragmentShader:
		return "frag"
	default:
		return "vert"
	}
}

// GPUType returns the GL enum of the shader type
func (st ShaderTypes) GPUType() uint32 {
	return glShaders[st]
}

var glShaders = map[ShaderTypes]uint32{
	VertexShader:   gl.VERTEX_SHADER,
	GeometryShader: gl.GEOMETRY_SHADER,
	FragmentShader: gl.FRAGMENT_SHADER,
}

// Shader manages a single compiled shader stage.
type Shader struct {
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// NewShader returns a new, not yet compiled, shader of the given
// type with the given name (typically the source file name).
func NewShader(typ ShaderTypes, name string) *Shader {
	return &Shader{typ: typ, name: name}
}

// Name returns the name of this shader
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the type of the shader
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code last given to Compile.
func (sh *Shader) Source() string {
	return sh.src
}

// Compile compiles the given GLSL source code for the shader.
// On failure the returned error contains the driver's info log.
// Context must be current.
func (sh *Shader) Compile(src string) error {
	sh.Delete()
	sh.src = src
	handle := gl.CreateShader(sh.typ.GPUType())

	csources, free := gl.Strs(CString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		err := fmt.Errorf("glgpu: %s %q failed to compile: %s", sh.typ, sh.name, strings.TrimRight(msg, "\x00\n"))
		slog.Debug("glgpu shader source", "name", sh.name, "source", src)
		return err
	}

	sh.handle = handle
	sh.init = true
	return nil
}

// Handle returns the GPU handle for this shader
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Delete deletes the shader
func (sh *Shader) Delete() {
	if sh == nil || !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}

// CString returns the string with a null terminator appended,
// unless it already has one.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
