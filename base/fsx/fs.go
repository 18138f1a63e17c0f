// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system helpers for locating
// configuration and asset files.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/glexamples/base/errors"
	"github.com/mitchellh/go-homedir"
)

// Sub returns [fs.Sub] with any error automatically logged
// for cases where the directory is hardcoded and there is
// no chance of error.
func Sub(fsys fs.FS, dir string) fs.FS {
	return errors.Log1(fs.Sub(fsys, dir))
}

// ExpandPath expands a leading ~ to the home directory and
// cleans the result. Empty paths stay empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	ex, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(ex), nil
}

// DirFS returns the directory part of given file path as an os.DirFS
// and the filename as a string. These can then be used to access the file
// using the FS-based interface, consistent with embed and other use-cases.
func DirFS(fpath string) (fs.FS, string, error) {
	fpath, err := ExpandPath(fpath)
	if err != nil {
		return nil, "", err
	}
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths returns the existing files named file in each of
// the given directories, in order. An absolute or ~ file is returned
// by itself if it exists.
func FindFilesOnPaths(paths []string, file string) []string {
	file = errors.Log1(ExpandPath(file))
	if filepath.IsAbs(file) {
		if ok, _ := FileExists(file); ok {
			return []string{file}
		}
		return nil
	}
	var res []string
	for _, dir := range paths {
		dir = errors.Log1(ExpandPath(dir))
		fn := filepath.Join(dir, file)
		if ok, _ := FileExists(fn); ok {
			res = append(res, fn)
		}
	}
	return res
}
