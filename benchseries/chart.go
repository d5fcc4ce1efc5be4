// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import "fmt"

// A BarMode says how the traces of a chart share the x axis.
type BarMode string

const (
	// BarModeOverlay draws every trace at its label's position.
	// It is the mode of single-trace charts.
	BarModeOverlay BarMode = ""
	// BarModeGroup draws the bars of different traces side by
	// side.
	BarModeGroup BarMode = "group"
)

// Axis titles shared by every chart.
const (
	XAxisTitle = "library"
	YAxisTitle = "milliseconds"
)

// DefaultColor is the bar color of single-trace charts.
const DefaultColor = "#1f77b4"

// DualPalette holds the colors of the two traces of a dual-series
// chart (xkcd "blueberry" and "reddish").
var DualPalette = [2]string{"#464196", "#c44240"}

// A Chart describes a bar chart. Charts are built by SingleSeries and
// DualSeries and are not modified afterwards.
type Chart struct {
	Title   string  `json:"title"`
	XTitle  string  `json:"xaxisTitle"`
	YTitle  string  `json:"yaxisTitle"`
	BarMode BarMode `json:"barmode,omitempty"`
	Traces  []Trace `json:"traces"`
}

// A Trace is one named, colored series of bars. X[i] labels the bar
// of height Y[i].
type Trace struct {
	Name  string   `json:"name,omitempty"`
	X     []string `json:"x"`
	Y     []int    `json:"y"`
	Color string   `json:"color,omitempty"`
}

// A LengthMismatchError reports a trace whose label and value
// sequences have different lengths.
type LengthMismatchError struct {
	Chart  string
	Trace  string
	Labels int
	Values int
}

func (e *LengthMismatchError) Error() string {
	trace := ""
	if e.Trace != "" {
		trace = " trace " + e.Trace
	}
	return fmt.Sprintf("chart %s%s: %d labels but %d values", e.Chart, trace, e.Labels, e.Values)
}

func newTrace(chart, name string, labels []string, values []int, color string) (Trace, error) {
	if len(labels) != len(values) {
		return Trace{}, &LengthMismatchError{chart, name, len(labels), len(values)}
	}
	return Trace{
		Name:  name,
		X:     append([]string{}, labels...),
		Y:     append([]int{}, values...),
		Color: color,
	}, nil
}

// SingleSeries returns a single-trace bar chart of values, with
// labels along the x axis.
func SingleSeries(labels []string, values []int, title string) (*Chart, error) {
	tr, err := newTrace(title, "", labels, values, DefaultColor)
	if err != nil {
		return nil, err
	}
	return &Chart{
		Title:  title,
		XTitle: XAxisTitle,
		YTitle: YAxisTitle,
		Traces: []Trace{tr},
	}, nil
}

// DualSeries returns a grouped bar chart with one trace named nameA
// for valuesA and one named nameB for valuesB. Each trace keeps its
// own labels: the traces may have different lengths and need not
// label the same libraries.
func DualSeries(labelsA, labelsB []string, valuesA, valuesB []int, nameA, nameB, title string) (*Chart, error) {
	a, err := newTrace(title, nameA, labelsA, valuesA, DualPalette[0])
	if err != nil {
		return nil, err
	}
	b, err := newTrace(title, nameB, labelsB, valuesB, DualPalette[1])
	if err != nil {
		return nil, err
	}
	return &Chart{
		Title:   title,
		XTitle:  XAxisTitle,
		YTitle:  YAxisTitle,
		BarMode: BarModeGroup,
		Traces:  []Trace{a, b},
	}, nil
}

// Labels returns the labels of the x positions of c, in order of first
// appearance across the traces. The k-th bar labeled x in any trace is
// drawn at the k-th position labeled x, so traces share positions for
// common labels while a label repeated within a trace gets one
// position per repeat.
func (c *Chart) Labels() []string {
	labels, _ := c.slots()
	return labels
}

// slots returns Labels and, for each trace, the position of each of
// its bars.
func (c *Chart) slots() ([]string, [][]int) {
	var labels []string
	at := make(map[string][]int) // positions labeled x, in order
	pos := make([][]int, len(c.Traces))
	for i, tr := range c.Traces {
		seen := make(map[string]int)
		pos[i] = make([]int, len(tr.X))
		for j, x := range tr.X {
			k := seen[x]
			seen[x]++
			if k == len(at[x]) {
				at[x] = append(at[x], len(labels))
				labels = append(labels, x)
			}
			pos[i][j] = at[x][k]
		}
	}
	return labels, pos
}

// Validate checks that every trace of c has as many values as labels.
func (c *Chart) Validate() error {
	for _, tr := range c.Traces {
		if len(tr.X) != len(tr.Y) {
			return &LengthMismatchError{c.Title, tr.Name, len(tr.X), len(tr.Y)}
		}
	}
	return nil
}
