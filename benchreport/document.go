// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport composes benchmark comparison charts into a
// tabbed report document and writes it out as HTML, JSON or images.
package benchreport

import (
	"fmt"

	"golang.org/x/serbench/benchseries"
)

// A Document is an ordered set of named tabs of charts.
type Document struct {
	Tabs []Tab `json:"tabs"`
}

// A Tab is a named, ordered group of charts.
type Tab struct {
	Name   string               `json:"name"`
	Charts []*benchseries.Chart `json:"charts"`
}

// Compose returns a Document holding tabs, in order. Every tab must
// have a distinct, non-empty name, and every chart must be present
// and well formed; otherwise Compose returns an error and no
// document.
func Compose(tabs ...Tab) (*Document, error) {
	doc := &Document{Tabs: make([]Tab, 0, len(tabs))}
	seen := make(map[string]bool)
	for i, tab := range tabs {
		if tab.Name == "" {
			return nil, fmt.Errorf("tab %d has no name", i)
		}
		if seen[tab.Name] {
			return nil, fmt.Errorf("duplicate tab %q", tab.Name)
		}
		seen[tab.Name] = true
		for j, c := range tab.Charts {
			if c == nil {
				return nil, fmt.Errorf("tab %q: chart %d is missing", tab.Name, j)
			}
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("tab %q: %w", tab.Name, err)
			}
		}
		doc.Tabs = append(doc.Tabs, Tab{
			Name:   tab.Name,
			Charts: append([]*benchseries.Chart{}, tab.Charts...),
		})
	}
	return doc, nil
}

// Tab returns the tab with the given name, or nil.
func (d *Document) Tab(name string) *Tab {
	for i := range d.Tabs {
		if d.Tabs[i].Name == name {
			return &d.Tabs[i]
		}
	}
	return nil
}

// Chart returns the chart in t with the given title, or nil.
func (t *Tab) Chart(title string) *benchseries.Chart {
	for _, c := range t.Charts {
		if c.Title == title {
			return c
		}
	}
	return nil
}
