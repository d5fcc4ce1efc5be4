// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// A NotFoundError reports a result directory that does not exist, is
// not a directory, or contains no result files.
type NotFoundError struct {
	Dir string

	// Err is the underlying error, or nil if Dir exists but holds
	// no result files.
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no results in %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("no results in %s: directory has no result files", e.Dir)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

var errNotDir = errors.New("not a directory")

// Load reads every result file directly under dir in fsys and returns
// one LibrarySeries per file.
//
// Results are returned in the order fs.ReadDir lists them, which is
// sorted by file name. Callers rely on this order to line up the
// samples of different categories and different runs. Directories and
// files whose names begin with "." are skipped.
//
// Load stops at the first malformed file; it never returns partial
// results.
func Load(fsys fs.FS, dir string) ([]*LibrarySeries, error) {
	return load(fsys, dir, dir)
}

// LoadDir is like Load, but reads the result files in the operating
// system directory path.
func LoadDir(path string) ([]*LibrarySeries, error) {
	return load(os.DirFS(path), ".", path)
}

// load reads dir from fsys. display is the name used for dir in errors.
func load(fsys fs.FS, dir, display string) ([]*LibrarySeries, error) {
	info, err := fs.Stat(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Dir: display, Err: fs.ErrNotExist}
		}
		return nil, fmt.Errorf("reading results from %s: %w", display, err)
	}
	if !info.IsDir() {
		return nil, &NotFoundError{Dir: display, Err: errNotDir}
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading results from %s: %w", display, err)
	}

	var out []*LibrarySeries
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		s, err := loadFile(fsys, path.Join(dir, name), filepath.Join(display, name))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, &NotFoundError{Dir: display}
	}
	return out, nil
}

func loadFile(fsys fs.FS, name, display string) (*LibrarySeries, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples, err := ReadSamples(f, display)
	if err != nil {
		return nil, err
	}
	return &LibrarySeries{Library: LibraryName(path.Base(name)), Samples: samples}, nil
}

// LibraryName returns the library name for a result file name: the
// text before the first ".".
func LibraryName(fileName string) string {
	lib, _, _ := strings.Cut(fileName, ".")
	return lib
}
