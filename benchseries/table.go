// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"golang.org/x/serbench/benchfmt"
)

// Columns of the tables built by Table.
const (
	ColFormat   = "format"
	ColLibrary  = "library"
	ColCategory = "category"
	ColMS       = "ms"
)

// Columns of the tables built by Summarize.
const (
	ColLibraries = "libraries"
	ColMin       = "min " + ColMS
	ColMean      = "mean " + ColMS
	ColGeoMean   = "geomean " + ColMS
	ColMax       = "max " + ColMS
)

var summaryCols = []string{ColFormat, ColCategory, ColLibraries, ColMin, ColMean, ColGeoMean, ColMax}

// Table returns the samples of series as a long-form table with one
// row per library and category. Rows are ordered by library, then by
// category.
func Table(format benchfmt.Format, series []*benchfmt.LibrarySeries) (*table.Table, error) {
	if err := Check(series); err != nil {
		return nil, err
	}
	n := len(series) * benchfmt.NumCategories
	formats := make([]string, 0, n)
	libs := make([]string, 0, n)
	cats := make([]string, 0, n)
	ms := make([]float64, 0, n)
	for _, s := range series {
		for _, c := range benchfmt.Categories {
			formats = append(formats, string(format))
			libs = append(libs, s.Library)
			cats = append(cats, c.String())
			ms = append(ms, float64(s.Samples[c.Index()]))
		}
	}
	return new(table.Builder).
		Add(ColFormat, formats).
		Add(ColLibrary, libs).
		Add(ColCategory, cats).
		Add(ColMS, ms).
		Done(), nil
}

// Summarize aggregates a table built by Table, or a concatenation of
// such tables, into one row per format and category holding the
// number of libraries and the min, mean, geomean and max time.
func Summarize(g table.Grouping) *table.Table {
	flat := table.Flatten(g)
	if flat.Len() == 0 {
		return new(table.Table)
	}
	agg := ggstat.Agg(ColFormat, ColCategory)(
		ggstat.AggCount(ColLibraries),
		ggstat.AggMin(ColMS),
		ggstat.AggMean(ColMS),
		ggstat.AggGeoMean(ColMS),
		ggstat.AggMax(ColMS),
	)
	t := table.Flatten(agg.F(flat))

	// Agg also keeps columns that happen to be constant within
	// each group, such as the library of a single-library format.
	b := new(table.Builder)
	for _, col := range summaryCols {
		b.Add(col, t.MustColumn(col))
	}
	return b.Done()
}

// FprintSummary prints a table built by Summarize to w.
func FprintSummary(w io.Writer, t *table.Table) error {
	return table.Fprint(w, t, "%s", "%s", "%d", "%.0f", "%.1f", "%.1f", "%.0f")
}

// WriteCSV writes every row of g to w as CSV, preceded by a header
// row of column names.
func WriteCSV(w io.Writer, g table.Grouping) error {
	cw := csv.NewWriter(w)
	cols := g.Columns()
	if err := cw.Write(cols); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		seqs := make([]reflect.Value, len(cols))
		for i, col := range cols {
			seqs[i] = reflect.ValueOf(t.MustColumn(col))
		}
		for r := 0; r < t.Len(); r++ {
			for i, seq := range seqs {
				row[i] = fmt.Sprint(seq.Index(r).Interface())
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
