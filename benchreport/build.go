// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"fmt"

	"golang.org/x/serbench/benchfmt"
	"golang.org/x/serbench/benchseries"
)

// TabAll is the name of the tab comparing the two formats.
const TabAll = "All"

// Build returns the standard report for a set of JSON and CBOR
// results: a "JSON" and a "CBOR" tab with one single-series chart per
// category, and an "All" tab with one chart per category comparing
// the two formats. Charts appear in category order.
//
// The order of each series slice is the order of the libraries along
// the x axis of that format's charts.
func Build(jsonSeries, cborSeries []*benchfmt.LibrarySeries) (*Document, error) {
	jsonTab, err := formatTab(benchfmt.JSON, jsonSeries)
	if err != nil {
		return nil, err
	}
	cborTab, err := formatTab(benchfmt.CBOR, cborSeries)
	if err != nil {
		return nil, err
	}
	allTab, err := compareTab(benchfmt.JSON, benchfmt.CBOR, jsonSeries, cborSeries)
	if err != nil {
		return nil, err
	}
	return Compose(jsonTab, cborTab, allTab)
}

func formatTab(f benchfmt.Format, series []*benchfmt.LibrarySeries) (Tab, error) {
	tab := Tab{Name: string(f)}
	labels := benchseries.Labels(series)
	for _, c := range benchfmt.Categories {
		values, err := benchseries.ByCategory(series, c)
		if err != nil {
			return Tab{}, fmt.Errorf("%s results: %w", f, err)
		}
		chart, err := benchseries.SingleSeries(labels, values, c.String())
		if err != nil {
			return Tab{}, fmt.Errorf("%s results: %w", f, err)
		}
		tab.Charts = append(tab.Charts, chart)
	}
	return tab, nil
}

func compareTab(fa, fb benchfmt.Format, a, b []*benchfmt.LibrarySeries) (Tab, error) {
	tab := Tab{Name: TabAll}
	labelsA, labelsB := benchseries.Labels(a), benchseries.Labels(b)
	for _, c := range benchfmt.Categories {
		valuesA, err := benchseries.ByCategory(a, c)
		if err != nil {
			return Tab{}, fmt.Errorf("%s results: %w", fa, err)
		}
		valuesB, err := benchseries.ByCategory(b, c)
		if err != nil {
			return Tab{}, fmt.Errorf("%s results: %w", fb, err)
		}
		chart, err := benchseries.DualSeries(labelsA, labelsB, valuesA, valuesB, string(fa), string(fb), c.String())
		if err != nil {
			return Tab{}, err
		}
		tab.Charts = append(tab.Charts, chart)
	}
	return tab, nil
}

// Unmatched returns the libraries that have results in only one of a
// and b, in input order.
func Unmatched(a, b []*benchfmt.LibrarySeries) (onlyA, onlyB []string) {
	inA := make(map[string]bool)
	for _, s := range a {
		inA[s.Library] = true
	}
	inB := make(map[string]bool)
	for _, s := range b {
		inB[s.Library] = true
		if !inA[s.Library] {
			onlyB = append(onlyB, s.Library)
		}
	}
	for _, s := range a {
		if !inB[s.Library] {
			onlyA = append(onlyA, s.Library)
		}
	}
	return onlyA, onlyB
}
