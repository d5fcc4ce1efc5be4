// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Default rendered chart size.
const (
	DefaultWidth  = 16 * vg.Centimeter
	DefaultHeight = 10 * vg.Centimeter
)

const (
	barWidth   = vg.Length(18)
	barSpacing = vg.Length(2)
	pngDPI     = 150
)

// Plot returns a gonum plot drawing c.
//
// The x axis is nominal. A single-trace chart places its bars in trace
// order. A chart with several traces places its bars at the positions
// given by Labels, and draws the bars of the traces next to each other
// around each position.
func (c *Chart) Plot() (*plot.Plot, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	pl := plot.New()
	pl.Title.Text = c.Title
	pl.X.Label.Text = c.XTitle
	pl.Y.Label.Text = c.YTitle

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	if len(c.Traces) == 1 {
		tr := c.Traces[0]
		bc, err := newBars(tr, tr.Y, 0, barWidth)
		if err != nil {
			return nil, err
		}
		pl.Add(bc)
		pl.NominalX(tr.X...)
		tickStyle(pl, len(tr.X))
		return pl, nil
	}

	labels, pos := c.slots()

	// Total width of a bar group, center to center.
	groupWidth := (barWidth + barSpacing) * vg.Length(len(c.Traces)-1)
	for i, tr := range c.Traces {
		offset := (barWidth+barSpacing)*vg.Length(i) - groupWidth/2
		var first *plotter.BarChart
		for j := range tr.X {
			bc, err := newBars(tr, tr.Y[j:j+1], float64(pos[i][j]), barWidth)
			if err != nil {
				return nil, err
			}
			bc.Offset = offset
			pl.Add(bc)
			if first == nil {
				first = bc
			}
		}
		if first != nil && tr.Name != "" {
			pl.Legend.Add(tr.Name, first)
		}
	}
	pl.Legend.Top = true
	pl.NominalX(labels...)
	tickStyle(pl, len(labels))
	return pl, nil
}

func newBars(tr Trace, ys []int, xmin float64, w vg.Length) (*plotter.BarChart, error) {
	vs := make(plotter.Values, len(ys))
	for i, y := range ys {
		vs[i] = float64(y)
	}
	bc, err := plotter.NewBarChart(vs, w)
	if err != nil {
		return nil, err
	}
	clr, err := parseColor(tr.Color)
	if err != nil {
		return nil, err
	}
	bc.Color = clr
	bc.LineStyle.Width = 0
	bc.XMin = xmin
	return bc, nil
}

// tickStyle slants long runs of library names so they do not overlap.
func tickStyle(pl *plot.Plot, n int) {
	if n <= 4 {
		return
	}
	pl.X.Tick.Label.Rotation = -math.Pi / 8
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Tick.Label.XAlign = draw.XLeft
}

// parseColor parses a "#rrggbb" color. The empty string is
// DefaultColor.
func parseColor(s string) (color.Color, error) {
	if s == "" {
		s = DefaultColor
	}
	var r, g, b uint8
	if len(s) != 7 {
		return nil, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.NRGBA{r, g, b, 0xff}, nil
}

// WriteSVG renders c as an SVG image of the given size to w.
func WriteSVG(w io.Writer, c *Chart, width, height vg.Length) error {
	pl, err := c.Plot()
	if err != nil {
		return err
	}
	can := vgsvg.New(width, height)
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// WritePNG renders c as a PNG image of the given size to w.
func WritePNG(w io.Writer, c *Chart, width, height vg.Length) error {
	pl, err := c.Plot()
	if err != nil {
		return err
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(width, height),
		vgimg.UseDPI(pngDPI), vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}
