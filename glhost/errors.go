// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glhost

import "fmt"

// ContextCreationError is returned by [New] when the window or
// the requested OpenGL context cannot be created.
type ContextCreationError struct {
	Version Version
	Profile string
	Err     error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("glhost: cannot create OpenGL %v %s context: %v", e.Version, e.Profile, e.Err)
}

func (e *ContextCreationError) Unwrap() error {
	return e.Err
}

// GraphicsAPIError is returned by [Host.Run] when the OpenGL error
// flag is set after a scene step. Frame is 0 for errors raised during
// scene initialization.
type GraphicsAPIError struct {

	// Code is the native error code returned by glGetError
	Code uint32

	// Frame is the 1-based frame number the error was detected after
	Frame int

	// Stage is the scene step that raised the error (init, render, reload)
	Stage string
}

func (e *GraphicsAPIError) Error() string {
	return fmt.Sprintf("glhost: OpenGL error %s (0x%04X) during %s of frame %d", e.Name(), e.Code, e.Stage, e.Frame)
}

// Name returns the symbolic name of the error code.
func (e *GraphicsAPIError) Name() string {
	return ErrorName(e.Code)
}

// ErrorName returns the symbolic name of an OpenGL error code.
func ErrorName(code uint32) string {
	switch code {
	case 0:
		return "GL_NO_ERROR"
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0503:
		return "GL_STACK_OVERFLOW"
	case 0x0504:
		return "GL_STACK_UNDERFLOW"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}
