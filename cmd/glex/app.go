// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glexamples/base/logx"
	"cogentcore.org/glexamples/config"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app is the state shared by the commands.
type app struct {
	cfg *config.Config

	file        string
	vv, v, q    bool
	profileMode string
	profileDir  string
	seed        uint64
	flags       overrides
	prof        interface{ Stop() }
}

func newApp() *app {
	return &app{cfg: config.Default()}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "glex",
		Short:             "glex runs small OpenGL example scenes",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.file, "config", "c", "", "config file (.toml or .yaml)")
	pf.BoolVar(&a.vv, "vv", false, "very verbose: log debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose: log info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "quiet: log only errors")
	pf.StringVar(&a.profileMode, "profile", "", "write a cpu or mem profile")
	pf.StringVar(&a.profileDir, "profile-dir", ".", "directory the profile is written to")
	pf.Uint64Var(&a.seed, "seed", 1, "seed of the particle scenes")
	a.flags.add(pf)

	cmd.AddCommand(a.runCmd(), a.listCmd(), a.checkCmd(), a.configCmd())
	return cmd
}

// setup sets the log level, reads the config file, applies
// the flags and starts profiling.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logx.SetDefault(logx.LevelFromFlags(a.vv, a.v, a.q))
	if a.file != "" {
		if err := config.Open(a.cfg, a.file); err != nil {
			return err
		}
		slog.Debug("read config", "file", a.file)
	}
	if err := a.flags.apply(cmd.Flags(), a.cfg); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	switch a.profileMode {
	case "":
	case "cpu":
		a.prof = profile.Start(profile.CPUProfile, profile.ProfilePath(a.profileDir), profile.NoShutdownHook)
	case "mem":
		a.prof = profile.Start(profile.MemProfileAllocs, profile.ProfilePath(a.profileDir), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", a.profileMode)
	}
	return nil
}

// execute runs the command line and stops any profile it started,
// whether or not the command failed.
func (a *app) execute(cmd *cobra.Command) error {
	defer a.stopProfile()
	return cmd.Execute()
}

func (a *app) stopProfile() {
	if a.prof != nil {
		a.prof.Stop()
		a.prof = nil
	}
}

// overrides are the flags that override config file settings.
// Only flags given on the command line are applied.
type overrides struct {
	width, height int
	title         string
	vsync         bool
	samples       int
	hidden        bool
	glVersion     string
	glProfile     string
	forwardCompat bool
	shaderDir     string
	watch         bool
	frames        int
	screenshot    string
	image         string
	particles     int
}

func (o *overrides) add(fs *pflag.FlagSet) {
	fs.IntVar(&o.width, "width", 800, "window width")
	fs.IntVar(&o.height, "height", 600, "window height")
	fs.StringVar(&o.title, "title", "", "window title (default is the scene name)")
	fs.BoolVar(&o.vsync, "vsync", true, "wait for the display refresh")
	fs.IntVar(&o.samples, "samples", 0, "multisample antialiasing samples")
	fs.BoolVar(&o.hidden, "hidden", false, "do not show the window")
	fs.StringVar(&o.glVersion, "gl", "3.3", "OpenGL version to request")
	fs.StringVar(&o.glProfile, "gl-profile", "core", "OpenGL profile: core or compat")
	fs.BoolVar(&o.forwardCompat, "forward-compat", true, "request a forward-compatible context")
	fs.StringVar(&o.shaderDir, "shaders", "", "directory of shader sources overriding the built-in ones")
	fs.BoolVar(&o.watch, "watch", false, "rebuild programs when shader sources change")
	fs.IntVar(&o.frames, "frames", 0, "stop after this many frames")
	fs.StringVar(&o.screenshot, "screenshot", "", "save the last frame to this PNG file")
	fs.StringVar(&o.image, "image", "", "image file for the image scenes")
	fs.IntVar(&o.particles, "particles", 0, "number of particles of the particle scenes")
}

func (o *overrides) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	set := map[string]func(){
		"width":          func() { cfg.Window.Width = o.width },
		"height":         func() { cfg.Window.Height = o.height },
		"title":          func() { cfg.Window.Title = o.title },
		"vsync":          func() { cfg.Window.VSync = o.vsync },
		"samples":        func() { cfg.Window.Samples = o.samples },
		"hidden":         func() { cfg.Window.Hidden = o.hidden },
		"gl":             func() { cfg.GL.Version = o.glVersion },
		"gl-profile":     func() { cfg.GL.Profile = o.glProfile },
		"forward-compat": func() { cfg.GL.ForwardCompat = o.forwardCompat },
		"shaders":        func() { cfg.Shaders.Dir = o.shaderDir },
		"watch":          func() { cfg.Shaders.Watch = o.watch },
		"frames":         func() { cfg.Run.Frames = o.frames },
		"screenshot":     func() { cfg.Run.Screenshot = o.screenshot },
		"image":          func() { cfg.Scene.Image = o.image },
		"particles":      func() { cfg.Scene.Particles = o.particles },
	}
	fs.Visit(func(f *pflag.Flag) {
		if fn, ok := set[f.Name]; ok {
			fn()
		}
	})
	return cfg.ExpandPaths()
}
