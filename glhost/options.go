// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glhost

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is an OpenGL context version.
type Version struct {
	Major int
	Minor int
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Semver returns the version as a semantic version.
func (v Version) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), 0, "", "")
}

// AtLeast returns whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	return !v.Semver().LessThan(o.Semver())
}

// ParseVersion parses a version such as "3.3" or "4.1.0".
func ParseVersion(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("glhost: invalid OpenGL version %q: %w", s, err)
	}
	return Version{Major: int(sv.Major()), Minor: int(sv.Minor())}, nil
}

// Options are the window and context settings of a [Host].
type Options struct {

	// Width of the window in screen coordinates
	Width int

	// Height of the window in screen coordinates
	Height int

	// Title of the window
	Title string

	// Version is the requested OpenGL context version
	Version Version

	// Core requests a core profile (otherwise compatibility)
	Core bool

	// ForwardCompat requests a forward-compatible context, which
	// macOS requires for any version above 2.1
	ForwardCompat bool

	// VSync waits for one display refresh per buffer swap
	VSync bool

	// Samples is the number of multisample antialiasing samples (0 = off)
	Samples int

	// Resizable allows the user to resize the window
	Resizable bool

	// Hidden creates the window without showing it, for checks and screenshots
	Hidden bool

	// MaxFrames stops the loop after this many frames (0 = until closed)
	MaxFrames int

	// Screenshot, if set, is the file the last rendered frame is saved to
	Screenshot string
}

// DefaultOptions returns the options shared by most scenes:
// an 800x600 window with a 3.3 core profile context.
func DefaultOptions() Options {
	return Options{
		Width:         800,
		Height:        600,
		Title:         "glex",
		Version:       Version{Major: 3, Minor: 3},
		Core:          true,
		ForwardCompat: true,
		VSync:         true,
		Resizable:     true,
	}
}

// Profile returns the name of the requested profile.
func (o *Options) Profile() string {
	if o.Core {
		return "core"
	}
	return "compat"
}

// Validate returns an error if the options cannot describe a window.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("glhost: invalid window size %dx%d", o.Width, o.Height)
	}
	if o.Version.Major < 1 || o.Version.Minor < 0 {
		return fmt.Errorf("glhost: invalid OpenGL version %v", o.Version)
	}
	if o.Core && !o.Version.AtLeast(Version{3, 2}) {
		return fmt.Errorf("glhost: core profile requires OpenGL 3.2 or newer, not %v", o.Version)
	}
	if o.Samples < 0 || o.MaxFrames < 0 {
		return fmt.Errorf("glhost: Samples and MaxFrames must not be negative")
	}
	return nil
}
