// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glexamples/base/errors"
	"cogentcore.org/glexamples/config"
	"cogentcore.org/glexamples/glhost"
	"cogentcore.org/glexamples/scenes"
	"cogentcore.org/glexamples/shaders"
	"github.com/spf13/cobra"
)

func (a *app) env() *scenes.Env {
	return &scenes.Env{
		Shaders:   shaders.NewLibrary(a.cfg.Shaders.Dir),
		Image:     a.cfg.Scene.Image,
		Particles: a.cfg.Scene.Particles,
		Seed:      a.seed,
	}
}

// runScene creates the window for the scene and runs it,
// rebuilding its programs on shader edits when watch is set.
func (a *app) runScene(in *scenes.Info, opts glhost.Options, watch bool) error {
	if !in.Supports(opts.Version) {
		return fmt.Errorf("scene %s needs OpenGL %v, but %v was requested", in.Name, in.MinVersion, opts.Version)
	}
	sc := in.New(a.env())
	if cf, ok := sc.(glhost.Configurer); ok {
		if err := cf.Configure(&opts); err != nil {
			return err
		}
	}
	var w *shaders.Watcher
	if watch {
		var err error
		if w, err = shaders.Watch(a.cfg.Shaders.Dir); err != nil {
			return err
		}
		defer w.Close()
		slog.Info("watching shaders", "dir", a.cfg.Shaders.Dir)
	}
	h, err := glhost.New(opts)
	if err != nil {
		return err
	}
	if w != nil {
		h.Changes = w
	}
	return h.Run(sc)
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "run <scene>",
		Short:     "run a scene until its window is closed",
		Args:      cobra.ExactArgs(1),
		ValidArgs: scenes.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := scenes.Get(args[0])
			if err != nil {
				return err
			}
			opts, err := a.cfg.HostOptions(in.Name)
			if err != nil {
				return err
			}
			return a.runScene(in, opts, a.cfg.Shaders.Watch)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := 0
			for _, in := range scenes.All() {
				w = max(w, len(in.Name))
			}
			for _, in := range scenes.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %v  %s\n", w, in.Name, in.MinVersion, in.Description)
			}
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene...]",
		Short: "build every scene in a hidden window and render one frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			ins := scenes.All()
			if len(args) > 0 {
				ins = ins[:0]
				for _, name := range args {
					in, err := scenes.Get(name)
					if err != nil {
						return err
					}
					ins = append(ins, in)
				}
			}
			var errs []error
			out := cmd.OutOrStdout()
			for _, in := range ins {
				opts, err := a.cfg.HostOptions(in.Name)
				if err != nil {
					return err
				}
				if !in.Supports(opts.Version) {
					slog.Warn("skipping scene", "scene", in.Name, "needs", in.MinVersion)
					continue
				}
				opts.Hidden = true
				opts.MaxFrames = 1
				opts.Screenshot = ""
				if err := a.runScene(in, opts, false); err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", in.Name, err)
					errs = append(errs, fmt.Errorf("%s: %w", in.Name, err))
					continue
				}
				fmt.Fprintf(out, "ok   %s\n", in.Name)
			}
			return errors.Join(errs...)
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	format := "toml"
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.FormatOf("config." + strings.ToLower(format))
			if err != nil {
				return err
			}
			return config.Write(a.cfg, cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format: toml or yaml")
	return cmd
}
