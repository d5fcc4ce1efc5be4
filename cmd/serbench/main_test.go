// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/serbench/benchfmt"
	"golang.org/x/serbench/benchseries"
)

// writeResults creates dir/format/name for each "format/name" key.
func writeResults(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
			t.Fatal(err)
		}
	}
}

var goodResults = map[string]string{
	"json/akka.txt":  "10\n20\n30\n",
	"json/borer.txt": "5\n15\n25\n",
	"cbor/akka.txt":  "1\n2\n3\n",
	"cbor/borer.txt": "2\n4\n6\n",
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newCommand(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func dirArgs(dir string) []string {
	return []string{"--json", filepath.Join(dir, "json"), "--cbor", filepath.Join(dir, "cbor")}
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, goodResults)
	report := filepath.Join(dir, "report.html")
	csvFile := filepath.Join(dir, "samples.csv")
	pngDir := filepath.Join(dir, "png")

	args := append(dirArgs(dir), "-o", report, "--csv", csvFile, "--png", pngDir, "--title", "Serializers", "-v")
	_, stderr, err := execute(t, args...)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	if n := strings.Count(html, `<figure class="chart">`); n != 9 {
		t.Errorf("got %d charts, want 9", n)
	}
	for _, want := range []string{"<h1>Serializers</h1>", "JSON: fastest borer (5 ms)", "CBOR: fastest akka (1 ms)"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}

	data, err = os.ReadFile(csvFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1+2*2*3 {
		t.Errorf("got %d CSV lines, want 13", len(lines))
	}
	if want := "format,library,category,ms"; lines[0] != want {
		t.Errorf("got CSV header %q, want %q", lines[0], want)
	}

	pngs, err := filepath.Glob(filepath.Join(pngDir, "*.png"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pngs) != 9 {
		t.Errorf("got %d png files, want 9", len(pngs))
	}

	if !strings.Contains(stderr, benchseries.ColGeoMean) {
		t.Errorf("verbose output missing summary:\n%s", stderr)
	}
}

func TestReportStdout(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, goodResults)
	stdout, _, err := execute(t, append(dirArgs(dir), "-o", "-")...)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "<!doctype html>") {
		t.Errorf("stdout does not hold the report: %.40q", stdout)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, goodResults)
	jsonFile := filepath.Join(dir, "charts.json")
	first := filepath.Join(dir, "first.html")
	second := filepath.Join(dir, "second.html")

	if _, _, err := execute(t, append(dirArgs(dir), "-o", first, "--jo", jsonFile)...); err != nil {
		t.Fatal(err)
	}
	// The result directories are not read with --ji.
	if _, _, err := execute(t, "--ji", jsonFile, "--json", filepath.Join(dir, "missing"), "-o", second); err != nil {
		t.Fatal(err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(a), "<figure") != strings.Count(string(b), "<figure") {
		t.Errorf("reports from results and from JSON differ in chart count")
	}
	if !strings.Contains(string(b), "JSON: fastest borer (5 ms)") {
		t.Errorf("report from JSON missing summaries")
	}
}

func TestWarnings(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, map[string]string{
		"json/akka.txt":  "10\n20\n30\n40\n",
		"json/kryo.txt":  "1\n2\n3\n",
		"cbor/akka.txt":  "1\n2\n3\n",
		"cbor/borer.txt": "2\n4\n6\n",
	})
	_, stderr, err := execute(t, append(dirArgs(dir), "-o", filepath.Join(dir, "report.html"))...)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"serbench: JSON result for akka has 1 extra samples",
		"serbench: kryo has JSON results but no CBOR results",
		"serbench: borer has CBOR results but no JSON results",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestFailuresWriteNothing(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		jo    string // --jo path relative to the test directory
		check func(error) bool
	}{
		{
			name:  "missing directory",
			files: map[string]string{"json/akka.txt": "1\n2\n3\n"},
			check: func(err error) bool {
				var nf *benchfmt.NotFoundError
				return errors.As(err, &nf)
			},
		},
		{
			name:  "empty directory",
			files: map[string]string{"json/akka.txt": "1\n2\n3\n", "cbor/.keep": ""},
			check: func(err error) bool {
				var nf *benchfmt.NotFoundError
				return errors.As(err, &nf)
			},
		},
		{
			name:  "bad sample",
			files: map[string]string{"json/akka.txt": "1\nfast\n3\n", "cbor/akka.txt": "1\n2\n3\n"},
			check: func(err error) bool {
				var pe *benchfmt.ParseError
				return errors.As(err, &pe) && pe.Line == 2
			},
		},
		{
			name:  "short result",
			files: map[string]string{"json/akka.txt": "1\n2\n3\n", "cbor/akka.txt": "1\n2\n"},
			check: func(err error) bool {
				var ie *benchseries.IndexError
				return errors.As(err, &ie) && ie.Category == benchfmt.Sequence
			},
		},
		{
			name:  "unwritable output",
			files: goodResults,
			jo:    "missing/charts.json",
			check: func(err error) bool {
				return errors.Is(err, fs.ErrNotExist)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dir := t.TempDir()
			writeResults(t, dir, test.files)
			report := filepath.Join(dir, "report.html")
			pngDir := filepath.Join(dir, "png")
			jo := test.jo
			if jo == "" {
				jo = "charts.json"
			}
			jsonFile := filepath.Join(dir, filepath.FromSlash(jo))
			_, _, err := execute(t, append(dirArgs(dir), "-o", report, "--jo", jsonFile, "--png", pngDir)...)
			if err == nil {
				t.Fatal("want error, got nil")
			}
			if !test.check(err) {
				t.Errorf("unexpected error %T: %v", err, err)
			}
			for _, file := range []string{report, jsonFile, pngDir} {
				if _, err := os.Stat(file); !errors.Is(err, os.ErrNotExist) {
					t.Errorf("%s exists after failure", filepath.Base(file))
				}
			}
		})
	}
}

func TestRejectsArgs(t *testing.T) {
	if _, _, err := execute(t, "json"); err == nil {
		t.Errorf("want error for positional argument")
	}
}
