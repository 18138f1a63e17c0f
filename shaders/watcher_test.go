// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Changed())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "color.frag"), []byte("x"), 0666))
	assert.Eventually(t, w.Changed, 2*time.Second, 10*time.Millisecond)
	assert.False(t, w.Changed())
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
