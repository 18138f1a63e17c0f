// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glhost

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_NO_ERROR", ErrorName(0))
	assert.Equal(t, "GL_INVALID_ENUM", ErrorName(0x0500))
	assert.Equal(t, "GL_INVALID_VALUE", ErrorName(0x0501))
	assert.Equal(t, "GL_INVALID_OPERATION", ErrorName(0x0502))
	assert.Equal(t, "GL_OUT_OF_MEMORY", ErrorName(0x0505))
	assert.Equal(t, "GL_INVALID_FRAMEBUFFER_OPERATION", ErrorName(0x0506))
	assert.Equal(t, "GL_UNKNOWN_ERROR", ErrorName(0x1234))
}

func TestGraphicsAPIError(t *testing.T) {
	var err error = &GraphicsAPIError{Code: 0x0502, Frame: 7, Stage: "render"}
	assert.Equal(t, "glhost: OpenGL error GL_INVALID_OPERATION (0x0502) during render of frame 7", err.Error())

	var gerr *GraphicsAPIError
	if assert.True(t, errors.As(err, &gerr)) {
		assert.Equal(t, uint32(0x0502), gerr.Code)
		assert.Equal(t, "GL_INVALID_OPERATION", gerr.Name())
	}
}

func TestContextCreationError(t *testing.T) {
	err := error(&ContextCreationError{Version: Version{4, 6}, Profile: "core", Err: fs.ErrPermission})
	assert.Contains(t, err.Error(), "OpenGL 4.6 core context")
	assert.ErrorIs(t, err, fs.ErrPermission)
}
