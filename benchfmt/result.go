// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchfmt reads serialization benchmark result files.
//
// A result directory holds the results for one serialization format.
// Each file in it holds the results for one library: the file name up
// to the first "." names the library, and the file contents are one
// integer timing (in milliseconds) per line, one line per benchmark
// category in the order given by Categories.
//
//	json/akka.txt:
//	10
//	20
//	30
//
// This package is designed to be used with the higher-level packages
// benchseries and benchreport.
package benchfmt

// A LibrarySeries is the sequence of timing samples recorded for a
// single library in a single format.
type LibrarySeries struct {
	// Library is the library name, derived from the result file
	// name with its extension removed.
	Library string

	// Samples holds one value per line of the result file, in
	// file order. Samples[c] is the timing for Category c.
	// Samples past the last known category are retained but not
	// otherwise interpreted.
	Samples []int
}

// Sample returns the sample for category c and whether s has one.
func (s *LibrarySeries) Sample(c Category) (int, bool) {
	i := c.Index()
	if i < 0 || i >= len(s.Samples) {
		return 0, false
	}
	return s.Samples[i], true
}

// Extra returns the number of samples beyond the known categories.
func (s *LibrarySeries) Extra() int {
	if n := len(s.Samples) - NumCategories; n > 0 {
		return n
	}
	return 0
}

// Clone returns a deep copy of s.
func (s *LibrarySeries) Clone() *LibrarySeries {
	return &LibrarySeries{
		Library: s.Library,
		Samples: append([]int(nil), s.Samples...),
	}
}
