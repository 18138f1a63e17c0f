// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glhost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("3.3")
	require.NoError(t, err)
	assert.Equal(t, Version{3, 3}, v)
	assert.Equal(t, "3.3", v.String())

	v, err = ParseVersion("4.1.0")
	require.NoError(t, err)
	assert.Equal(t, Version{4, 1}, v)

	_, err = ParseVersion("three")
	assert.Error(t, err)
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, Version{3, 3}.AtLeast(Version{3, 3}))
	assert.True(t, Version{4, 0}.AtLeast(Version{3, 3}))
	assert.False(t, Version{3, 2}.AtLeast(Version{3, 3}))
	assert.False(t, Version{2, 1}.AtLeast(Version{3, 0}))
}

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	assert.NoError(t, opts.Validate())
	assert.Equal(t, "core", opts.Profile())

	bad := opts
	bad.Width = 0
	assert.Error(t, bad.Validate())

	bad = opts
	bad.Version = Version{3, 1}
	assert.Error(t, bad.Validate())
	bad.Core = false
	assert.NoError(t, bad.Validate())
	assert.Equal(t, "compat", bad.Profile())

	bad = opts
	bad.MaxFrames = -1
	assert.Error(t, bad.Validate())
}

func TestNewInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Height = -1
	h, err := New(opts)
	assert.Nil(t, h)
	var cerr *ContextCreationError
	if assert.ErrorAs(t, err, &cerr) {
		assert.Equal(t, Version{3, 3}, cerr.Version)
		assert.Equal(t, "core", cerr.Profile)
	}
}
