// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/glexamples/base/errors"
	"cogentcore.org/glexamples/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

func (f Formats) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf returns the format of a config file from its extension.
func FormatOf(file string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported config file %q (want .toml, .yaml or .yml)", file)
}

// Read decodes config data in the given format into cfg. Settings
// absent from the data keep their current values; unknown settings
// are an error.
func Read(cfg *Config, r io.Reader, f Formats) error {
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err := dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	default:
		return toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg)
	}
}

// Write encodes cfg in the given format.
func Write(cfg *Config, w io.Writer, f Formats) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(cfg)
	}
}

// Save writes cfg to the given file, in the format of its extension.
func Save(cfg *Config, file string) error {
	f, err := FormatOf(file)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := Write(cfg, &b, f); err != nil {
		return err
	}
	return os.WriteFile(file, b.Bytes(), 0666)
}

// Open reads the given config file into cfg, after first reading
// any files it includes, so that the file's own settings override
// included settings. Paths in the result have ~ expanded.
func Open(cfg *Config, file string) error {
	incs := cfg.Includes
	if err := openWithIncludes(cfg, file, map[string]bool{}); err != nil {
		return err
	}
	cfg.Includes = incs
	return cfg.ExpandPaths()
}

func openWithIncludes(cfg *Config, file string, seen map[string]bool) error {
	fsys, name, err := fsx.DirFS(file)
	if err != nil {
		return err
	}
	abs := errors.Log1(filepath.Abs(errors.Log1(fsx.ExpandPath(file))))
	if seen[abs] {
		return fmt.Errorf("config: include cycle at %s", file)
	}
	seen[abs] = true
	defer delete(seen, abs)

	f, err := FormatOf(name)
	if err != nil {
		return err
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	// includes are listed in the file itself, so find them first
	var probe Config
	if err := Read(&probe, bytes.NewReader(b), f); err != nil {
		return fmt.Errorf("config: %s: %w", file, err)
	}
	dirs := []string{filepath.Dir(abs), "."}
	for _, inc := range probe.Includes {
		found := fsx.FindFilesOnPaths(dirs, inc)
		if len(found) == 0 {
			return fmt.Errorf("config: %s: include %q not found", file, inc)
		}
		if err := openWithIncludes(cfg, found[0], seen); err != nil {
			return err
		}
	}
	if err := Read(cfg, bytes.NewReader(b), f); err != nil {
		return fmt.Errorf("config: %s: %w", file, err)
	}
	return nil
}
