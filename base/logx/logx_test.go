// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, slog.LevelInfo))

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.Warn("context created", "version", "3.3", "title", "the window")
	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "context created")
	assert.Contains(t, out, "version=3.3")
	assert.Contains(t, out, `title="the window"`)

	buf.Reset()
	lg.WithGroup("scene").With("name", "galaxy").Info("init")
	assert.Contains(t, buf.String(), "scene.name=galaxy")

	buf.Reset()
	lg.With("frame", 3).WithGroup("gl").With("code", "0x0500").Info("error", "stage", "render")
	out = buf.String()
	assert.Contains(t, out, " frame=3")
	assert.NotContains(t, out, "gl.frame")
	assert.Contains(t, out, "gl.code=0x0500")
	assert.Contains(t, out, "gl.stage=render")
}
