// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program manages a set of shaders linked into one GL program,
// along with the locations of its uniforms.
type Program struct {
	init    bool
	handle  uint32
	name    string
	shaders []*Shader
	srcs    map[ShaderTypes]string
	unis    map[string]int32

	// names of vertex outputs captured by transform feedback, if any
	feedback     []string
	feedbackMode uint32
}

// NewProgram returns a new empty program with the given name.
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns name of program
func (pr *Program) Name() string {
	return pr.name
}

// AddShader adds shader of given type, name and source code.
// Only one shader of each type can be added.
func (pr *Program) AddShader(typ ShaderTypes, name string, src string) (*Shader, error) {
	if pr.srcs == nil {
		pr.srcs = make(map[ShaderTypes]string)
	}
	if _, has := pr.srcs[typ]; has {
		return nil, fmt.Errorf("glgpu Program %s AddShader: shader of type %s already added", pr.name, typ)
	}
	sh := NewShader(typ, name)
	pr.srcs[typ] = src
	pr.shaders = append(pr.shaders, sh)
	return sh, nil
}

// SetSource replaces the source of the shader of the given type.
// The new source takes effect on the next Compile.
func (pr *Program) SetSource(typ ShaderTypes, src string) error {
	if _, has := pr.srcs[typ]; !has {
		return fmt.Errorf("glgpu Program %s SetSource: no shader of type %s", pr.name, typ)
	}
	pr.srcs[typ] = src
	return nil
}

// Shaders returns the shaders added to the program, in order added.
func (pr *Program) Shaders() []*Shader {
	return pr.shaders
}

// SetFeedbackVaryings sets the vertex outputs captured by
// transform feedback, in the given buffer mode
// (gl.INTERLEAVED_ATTRIBS or gl.SEPARATE_ATTRIBS).
// Must be called before Compile.
func (pr *Program) SetFeedbackVaryings(mode uint32, names ...string) {
	pr.feedbackMode = mode
	pr.feedback = names
}

// Compile compiles all the shaders and links the program.
// Any previous GPU program is deleted first, so Compile can
// be called again with new sources.
func (pr *Program) Compile() error {
	if len(pr.shaders) == 0 {
		return fmt.Errorf("glgpu Program %s Compile: no shaders added", pr.name)
	}
	handle := gl.CreateProgram()
	for _, sh := range pr.shaders {
		if err := sh.Compile(pr.srcs[sh.typ]); err != nil {
			for _, sh := range pr.shaders {
				sh.Delete()
			}
			gl.DeleteProgram(handle)
			return err
		}
		gl.AttachShader(handle, sh.handle)
	}
	if len(pr.feedback) > 0 {
		cnames := make([]string, len(pr.feedback))
		for i, n := range pr.feedback {
			cnames[i] = CString(n)
		}
		varyings, free := gl.Strs(cnames...)
		gl.TransformFeedbackVaryings(handle, int32(len(cnames)), varyings, pr.feedbackMode)
		free()
	}
	gl.LinkProgram(handle)

	for _, sh := range pr.shaders {
		gl.DetachShader(handle, sh.handle)
		sh.Delete()
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)

		return fmt.Errorf("glgpu Program %s Compile: failed to link program: %s", pr.name, strings.TrimRight(lg, "\x00\n"))
	}

	pr.Delete()
	pr.handle = handle
	pr.unis = make(map[string]int32)
	pr.init = true
	return nil
}

// Handle returns the handle for the program -- only valid after a Compile call
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the active program -- must have been Compiled first.
func (pr *Program) Use() {
	if !pr.init {
		return
	}
	gl.UseProgram(pr.handle)
}

// Unuse resets the active program to none.
func Unuse() {
	gl.UseProgram(0)
}

// Uniform returns the location of the named uniform, or -1 if the
// program has no active uniform of that name. Locations are cached.
func (pr *Program) Uniform(name string) int32 {
	if loc, ok := pr.unis[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(CString(name)))
	if loc < 0 {
		slog.Debug("glgpu uniform not active", "program", pr.name, "uniform", name)
	}
	if pr.unis != nil {
		pr.unis[name] = loc
	}
	return loc
}

// BindUniformBlock binds the named uniform block to the given
// uniform buffer binding point.
func (pr *Program) BindUniformBlock(name string, binding uint32) error {
	idx := gl.GetUniformBlockIndex(pr.handle, gl.Str(CString(name)))
	if idx == gl.INVALID_INDEX {
		return fmt.Errorf("glgpu Program %s: uniform block %q not found", pr.name, name)
	}
	gl.UniformBlockBinding(pr.handle, idx, binding)
	return nil
}

// SetInt sets an int (or sampler) uniform on the active program.
func (pr *Program) SetInt(name string, v int32) {
	gl.Uniform1i(pr.Uniform(name), v)
}

// SetFloat sets a float uniform on the active program.
func (pr *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(pr.Uniform(name), v)
}

// SetFloats sets a float array uniform on the active program.
func (pr *Program) SetFloats(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(pr.Uniform(name), int32(len(v)), &v[0])
}

// SetVec2 sets a vec2 uniform on the active program.
func (pr *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(pr.Uniform(name), v[0], v[1])
}

// SetVec3 sets a vec3 uniform on the active program.
func (pr *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(pr.Uniform(name), 1, &v[0])
}

// SetVec3s sets a vec3 array uniform on the active program.
func (pr *Program) SetVec3s(name string, v []mgl32.Vec3) {
	if len(v) == 0 {
		return
	}
	gl.Uniform3fv(pr.Uniform(name), int32(len(v)), &v[0][0])
}

// SetVec4 sets a vec4 uniform on the active program.
func (pr *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(pr.Uniform(name), 1, &v[0])
}

// SetMat3 sets a mat3 uniform on the active program.
func (pr *Program) SetMat3(name string, m mgl32.Mat3) {
	gl.UniformMatrix3fv(pr.Uniform(name), 1, false, &m[0])
}

// SetMat4 sets a mat4 uniform on the active program.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(pr.Uniform(name), 1, false, &m[0])
}

// Delete deletes the GPU resources associated with this program.
func (pr *Program) Delete() {
	if pr == nil || !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
