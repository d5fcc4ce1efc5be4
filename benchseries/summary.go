// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary describes the spread of the values of one trace.
type Summary struct {
	Fastest string // label of the smallest value
	Slowest string // label of the largest value
	Min     int
	Max     int
	Mean    float64
	// GeoMean is the geometric mean of the values, or NaN if some
	// value is not positive.
	GeoMean float64
}

// Summary summarizes the values of tr. It reports false if tr has no
// values.
func (tr *Trace) Summary() (Summary, bool) {
	if len(tr.Y) == 0 || len(tr.X) != len(tr.Y) {
		return Summary{}, false
	}
	xs := make([]float64, len(tr.Y))
	positive := true
	for i, y := range tr.Y {
		xs[i] = float64(y)
		positive = positive && y > 0
	}
	lo, hi := stats.Bounds(xs)
	s := Summary{
		Min:     int(lo),
		Max:     int(hi),
		Mean:    stats.Mean(xs),
		GeoMean: math.NaN(),
	}
	if positive {
		s.GeoMean = stats.GeoMean(xs)
	}
	// Ties go to the first library in trace order.
	for i := len(tr.Y) - 1; i >= 0; i-- {
		if tr.Y[i] == s.Min {
			s.Fastest = tr.X[i]
		}
		if tr.Y[i] == s.Max {
			s.Slowest = tr.X[i]
		}
	}
	return s, true
}

// String formats s for a chart caption.
func (s Summary) String() string {
	str := fmt.Sprintf("fastest %s (%d ms), slowest %s (%d ms), mean %.1f ms", s.Fastest, s.Min, s.Slowest, s.Max, s.Mean)
	if !math.IsNaN(s.GeoMean) {
		str += fmt.Sprintf(", geomean %.1f ms", s.GeoMean)
	}
	return str
}
