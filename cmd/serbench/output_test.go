// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// listFiles returns the slash-separated paths of everything under dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(names)
	return names
}

func TestCommit(t *testing.T) {
	dir := t.TempDir()
	pngDir := filepath.Join(dir, "out", "png")
	files := []pendingFile{
		{filepath.Join(dir, "report.html"), []byte("<html>")},
		{filepath.Join(pngDir, "json-adt.png"), []byte("png")},
	}
	if err := commit([]string{pngDir}, files); err != nil {
		t.Fatal(err)
	}
	want := []string{"out", "out/png", "out/png/json-adt.png", "report.html"}
	if diff := cmp.Diff(want, listFiles(t, dir)); diff != "" {
		t.Errorf("files differ (-want +got):\n%s", diff)
	}
	data, err := os.ReadFile(files[0].path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>" {
		t.Errorf("report = %q, want %q", data, "<html>")
	}
}

func TestCommitFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o666); err != nil {
		t.Fatal(err)
	}
	pngDir := filepath.Join(dir, "out", "png")
	files := []pendingFile{
		{filepath.Join(dir, "report.html"), []byte("<html>")},
		{filepath.Join(pngDir, "json-adt.png"), []byte("png")},
		{filepath.Join(dir, "missing", "charts.json"), []byte("{}")},
	}
	err := commit([]string{pngDir}, files)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want not-exist error", err)
	}
	if diff := cmp.Diff([]string{"keep.txt"}, listFiles(t, dir)); diff != "" {
		t.Errorf("files left after failure (-want +got):\n%s", diff)
	}
}
