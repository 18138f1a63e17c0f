// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the glex tool,
// read from TOML or YAML files and overridden by flags.
package config

import (
	"fmt"

	"cogentcore.org/glexamples/base/fsx"
	"cogentcore.org/glexamples/glhost"
)

// Config is the main config struct that contains all of the
// configuration options for the glex tool.
type Config struct {

	// Includes are other config files read before this one, so that
	// settings here override included settings. Relative names are
	// looked up next to the including file and then in the current directory.
	Includes []string `toml:"includes,omitempty" yaml:"includes,omitempty"`

	// Window has the window settings
	Window Window `toml:"window" yaml:"window"`

	// GL has the requested context
	GL GL `toml:"gl" yaml:"gl"`

	// Shaders has the shader source settings
	Shaders Shaders `toml:"shaders" yaml:"shaders"`

	// Run has the render loop settings
	Run Run `toml:"run" yaml:"run"`

	// Scene has settings used by some of the scenes
	Scene Scene `toml:"scene" yaml:"scene"`
}

type Window struct {

	// width of the window in screen coordinates
	Width int `toml:"width" yaml:"width"`

	// height of the window in screen coordinates
	Height int `toml:"height" yaml:"height"`

	// title of the window; the scene name if empty
	Title string `toml:"title,omitempty" yaml:"title,omitempty"`

	// wait for the display refresh on each frame
	VSync bool `toml:"vsync" yaml:"vsync"`

	// number of multisample antialiasing samples
	Samples int `toml:"samples" yaml:"samples"`

	// whether the user can resize the window
	Resizable bool `toml:"resizable" yaml:"resizable"`

	// create the window without showing it
	Hidden bool `toml:"hidden" yaml:"hidden"`
}

type GL struct {

	// OpenGL version to request, such as 3.3
	Version string `toml:"version" yaml:"version"`

	// profile to request: core or compat
	Profile string `toml:"profile" yaml:"profile"`

	// request a forward-compatible context
	ForwardCompat bool `toml:"forward_compat" yaml:"forward_compat"`
}

type Shaders struct {

	// directory of shader sources overriding the built-in ones
	Dir string `toml:"dir,omitempty" yaml:"dir,omitempty"`

	// rebuild programs when sources in Dir change
	Watch bool `toml:"watch" yaml:"watch"`
}

type Run struct {

	// stop after this many frames; 0 runs until the window is closed
	Frames int `toml:"frames" yaml:"frames"`

	// save the last frame to this PNG file
	Screenshot string `toml:"screenshot,omitempty" yaml:"screenshot,omitempty"`
}

type Scene struct {

	// image file shown by the image scenes; a checker pattern if empty
	Image string `toml:"image,omitempty" yaml:"image,omitempty"`

	// number of particles of the particle scenes; 0 for the default
	Particles int `toml:"particles" yaml:"particles"`
}

// Default returns the default configuration: an 800x600 window
// with an OpenGL 3.3 core profile context.
func Default() *Config {
	return &Config{
		Window: Window{Width: 800, Height: 600, VSync: true, Resizable: true},
		GL:     GL{Version: "3.3", Profile: "core", ForwardCompat: true},
	}
}

// Version returns the parsed GL version.
func (c *Config) Version() (glhost.Version, error) {
	return glhost.ParseVersion(c.GL.Version)
}

// ExpandPaths expands ~ in all of the file paths.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.Shaders.Dir, &c.Run.Screenshot, &c.Scene.Image} {
		ex, err := fsx.ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = ex
	}
	return nil
}

// Validate returns an error for settings that cannot be used.
func (c *Config) Validate() error {
	if _, err := c.Version(); err != nil {
		return err
	}
	switch c.GL.Profile {
	case "core", "compat":
	default:
		return fmt.Errorf("config: unknown profile %q (want core or compat)", c.GL.Profile)
	}
	if c.Shaders.Watch && c.Shaders.Dir == "" {
		return fmt.Errorf("config: shaders.watch requires shaders.dir")
	}
	if c.Scene.Particles < 0 {
		return fmt.Errorf("config: scene.particles must not be negative")
	}
	return nil
}

// HostOptions returns the window options for a scene with the given name.
func (c *Config) HostOptions(name string) (glhost.Options, error) {
	if err := c.Validate(); err != nil {
		return glhost.Options{}, err
	}
	v, _ := c.Version()
	title := c.Window.Title
	if title == "" {
		title = name
	}
	return glhost.Options{
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		Title:         title,
		Version:       v,
		Core:          c.GL.Profile == "core",
		ForwardCompat: c.GL.ForwardCompat,
		VSync:         c.Window.VSync,
		Samples:       c.Window.Samples,
		Resizable:     c.Window.Resizable,
		Hidden:        c.Window.Hidden,
		MaxFrames:     c.Run.Frames,
		Screenshot:    c.Run.Screenshot,
	}, nil
}
