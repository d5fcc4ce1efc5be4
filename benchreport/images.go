// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/serbench/benchseries"
	"gonum.org/v1/plot/vg"
)

// An Image is a chart rendered as a PNG.
type Image struct {
	Name string // file name, "<tab>-<chart title>.png"
	Data []byte
}

// RenderPNGs renders each chart of doc as a PNG image, in document
// order. Zero sizes default to benchseries.DefaultWidth and
// DefaultHeight. It fails if two charts would get the same file name.
func RenderPNGs(doc *Document, width, height vg.Length) ([]Image, error) {
	if width <= 0 {
		width = benchseries.DefaultWidth
	}
	if height <= 0 {
		height = benchseries.DefaultHeight
	}
	var images []Image
	owner := make(map[string]string)
	for _, tab := range doc.Tabs {
		for _, c := range tab.Charts {
			name := ImageName(tab.Name, c.Title) + ".png"
			chart := fmt.Sprintf("%q/%q", tab.Name, c.Title)
			if prev, ok := owner[name]; ok {
				return nil, fmt.Errorf("charts %s and %s both have image name %s", prev, chart, name)
			}
			owner[name] = chart

			var buf bytes.Buffer
			if err := benchseries.WritePNG(&buf, c, width, height); err != nil {
				return nil, fmt.Errorf("tab %q: chart %s: %w", tab.Name, c.Title, err)
			}
			images = append(images, Image{Name: name, Data: buf.Bytes()})
		}
	}
	return images, nil
}

// WritePNGs writes each chart of doc to dir as a PNG image named by
// ImageName, creating dir if needed. It returns the paths written, in
// document order. Every image is rendered before any file is written.
func WritePNGs(dir string, doc *Document, width, height vg.Length) ([]string, error) {
	images, err := RenderPNGs(doc, width, height)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var paths []string
	for _, img := range images {
		file := filepath.Join(dir, img.Name)
		if err := os.WriteFile(file, img.Data, 0666); err != nil {
			return paths, err
		}
		paths = append(paths, file)
	}
	return paths, nil
}

// ImageName returns the base file name, without extension, used for
// the image of the chart titled title in the named tab. Letters are
// lowercased and every other rune except digits becomes "-", so
// distinct names may collide.
func ImageName(tab, title string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return '-'
		}, s)
	}
	return clean(tab) + "-" + clean(title)
}
