// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries arranges library results into per-category
// series and builds comparison charts from them.
//
// Series are aligned by position: the i-th value of every category
// series and the i-th label all belong to the i-th library of the
// input. Nothing in this package reorders its input, so callers must
// pass the same []*benchfmt.LibrarySeries for the labels and for every
// category of a format.
package benchseries

import (
	"fmt"

	"golang.org/x/serbench/benchfmt"
)

// An IndexError reports a library whose result file has no sample
// for a category.
type IndexError struct {
	Library  string
	Category benchfmt.Category
	Len      int // number of samples the library has
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("library %s has %d samples, no sample for category %v (index %d)", e.Library, e.Len, e.Category, e.Category.Index())
}

// Labels returns the library names of series, in order.
func Labels(series []*benchfmt.LibrarySeries) []string {
	labels := make([]string, len(series))
	for i, s := range series {
		labels[i] = s.Library
	}
	return labels
}

// ByCategory returns the sample for category c from each of series,
// in order.
func ByCategory(series []*benchfmt.LibrarySeries, c benchfmt.Category) ([]int, error) {
	values := make([]int, len(series))
	for i, s := range series {
		v, ok := s.Sample(c)
		if !ok {
			return nil, &IndexError{s.Library, c, len(s.Samples)}
		}
		values[i] = v
	}
	return values, nil
}

// Check reports an *IndexError for the first library in series that
// lacks a sample for one of the known categories.
func Check(series []*benchfmt.LibrarySeries) error {
	for _, s := range series {
		if len(s.Samples) < benchfmt.NumCategories {
			return &IndexError{s.Library, benchfmt.Categories[len(s.Samples)], len(s.Samples)}
		}
	}
	return nil
}
