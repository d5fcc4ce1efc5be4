// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// A pendingFile is an output file whose contents are fully rendered.
type pendingFile struct {
	path string
	data []byte
}

// commit creates dirs and writes files, all or nothing.
//
// Each file is written to a temporary file in its target directory,
// and only once every temporary file is complete are they renamed
// into place. If any step fails, commit removes its temporary files,
// the files it already renamed into place and the directories it
// created.
func commit(dirs []string, files []pendingFile) (err error) {
	var created, temps, done []string
	defer func() {
		if err == nil {
			return
		}
		for _, name := range temps {
			os.Remove(name)
		}
		for _, name := range done {
			os.Remove(name)
		}
		for i := len(created) - 1; i >= 0; i-- {
			os.Remove(created[i])
		}
	}()

	for _, dir := range dirs {
		made, err := mkdirAll(dir)
		created = append(created, made...)
		if err != nil {
			return err
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(f)
		if tmp != "" {
			temps = append(temps, tmp)
		}
		if err != nil {
			return err
		}
	}
	for i, f := range files {
		if err := os.Rename(temps[i], f.path); err != nil {
			return err
		}
		done = append(done, f.path)
	}
	return nil
}

// writeTemp writes f to a new temporary file next to f.path and
// returns its name. The name is returned even on error if the file
// was created.
func writeTemp(f pendingFile) (string, error) {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}
	tf, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return "", err
	}
	name := tf.Name()
	if _, err := tf.Write(f.data); err != nil {
		tf.Close()
		return name, err
	}
	if err := tf.Sync(); err != nil {
		tf.Close()
		return name, err
	}
	if err := tf.Chmod(0o644); err != nil {
		tf.Close()
		return name, err
	}
	return name, tf.Close()
}

// mkdirAll is like os.MkdirAll but also returns the directories it
// created, outermost first.
func mkdirAll(dir string) ([]string, error) {
	var missing []string
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		_, err := os.Stat(d)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		missing = append(missing, d)
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	// missing is innermost first; create outermost first.
	var created []string
	for i := len(missing) - 1; i >= 0; i-- {
		err := os.Mkdir(missing[i], 0o777)
		if err == nil {
			created = append(created, missing[i])
			continue
		}
		if !errors.Is(err, fs.ErrExist) {
			return created, err
		}
	}
	return created, nil
}
