// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
	"golang.org/x/serbench/benchseries"
	"gonum.org/v1/plot/vg"
)

// DefaultTitle is the heading of reports without a title.
const DefaultTitle = "Serialization benchmark results"

// HTMLOptions control how WriteHTML renders a document.
type HTMLOptions struct {
	// Title is the heading of the page. If empty, it defaults to
	// DefaultTitle.
	Title string

	// Width and Height are the size of each chart. If zero, they
	// default to benchseries.DefaultWidth and DefaultHeight.
	Width, Height vg.Length
}

func (o *HTMLOptions) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = benchseries.DefaultWidth
	}
	if h <= 0 {
		h = benchseries.DefaultHeight
	}
	return w, h
}

const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1em 2em; }
.tabs > input { display: none; }
.tabs > label { display: inline-block; padding: 0.4em 1.2em; border: 1px solid #ccc; border-bottom: none; cursor: pointer; }
.tabs > input:checked + label { background: #eee; font-weight: bold; }
.tabs > .panel { display: none; border-top: 1px solid #ccc; padding-top: 1em; }
.chart { margin: 0 0 2em 0; }
.chart svg { max-width: 100%; height: auto; }
.chart figcaption { color: #666; font-size: small; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("report").Parse(pageHTML))

// WriteHTML writes doc to w as a self-contained HTML page with one tab
// per document tab and each chart drawn as inline SVG.
//
// The page is rendered in full before anything is written to w.
func WriteHTML(w io.Writer, doc *Document, opts HTMLOptions) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	body, err := htmlBody(doc, &opts)
	if err != nil {
		return err
	}
	page := struct {
		Title string
		Body  safehtml.HTML
	}{opts.Title, body}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// trusted marks markup built only from constants and integers.
func trusted(format string, args ...int) safehtml.HTML {
	iargs := make([]interface{}, len(args))
	for i, a := range args {
		iargs[i] = a
	}
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(fmt.Sprintf(format, iargs...))
}

func htmlBody(doc *Document, opts *HTMLOptions) (safehtml.HTML, error) {
	parts := []safehtml.HTML{
		trusted("<h1>"), safehtml.HTMLEscaped(opts.Title), trusted("</h1>\n"),
		trusted(`<div class="tabs">` + "\n"),
	}

	var selectors []string
	for i, tab := range doc.Tabs {
		checked := ""
		if i == 0 {
			checked = " checked"
		}
		parts = append(parts,
			trusted(`<input type="radio" name="tabs" id="tab%d"`+checked+`>`, i),
			trusted(`<label for="tab%d">`, i), safehtml.HTMLEscaped(tab.Name), trusted("</label>\n"))
		selectors = append(selectors, fmt.Sprintf("#tab%d:checked ~ #panel%d", i, i))
	}

	for i, tab := range doc.Tabs {
		parts = append(parts, trusted(`<div class="panel" id="panel%d">`+"\n", i))
		for _, c := range tab.Charts {
			fig, err := htmlChart(c, opts)
			if err != nil {
				return safehtml.HTML{}, fmt.Errorf("tab %q: %w", tab.Name, err)
			}
			parts = append(parts, fig)
		}
		parts = append(parts, trusted("</div>\n"))
	}
	parts = append(parts, trusted("</div>\n"))

	if len(selectors) > 0 {
		// Selectors only contain constants and integers.
		parts = append(parts, uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(
			"<style>\n"+strings.Join(selectors, ",\n")+" { display: block; }\n</style>\n"))
	}
	return safehtml.HTMLConcat(parts...), nil
}

func htmlChart(c *benchseries.Chart, opts *HTMLOptions) (safehtml.HTML, error) {
	w, h := opts.size()
	var buf bytes.Buffer
	if err := benchseries.WriteSVG(&buf, c, w, h); err != nil {
		return safehtml.HTML{}, fmt.Errorf("chart %s: %w", c.Title, err)
	}
	svg := buf.String()
	// Drop the XML prolog; the image is embedded in HTML.
	if i := strings.Index(svg, "<svg"); i > 0 {
		svg = svg[i:]
	}

	parts := []safehtml.HTML{
		trusted(`<figure class="chart">` + "\n"),
		// The SVG is produced by gonum/plot, which escapes all text.
		uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(svg),
		trusted("\n<figcaption>"),
	}
	for i, tr := range c.Traces {
		sum, ok := tr.Summary()
		if !ok {
			continue
		}
		if i > 0 {
			parts = append(parts, trusted("<br>"))
		}
		text := sum.String()
		if tr.Name != "" {
			text = tr.Name + ": " + text
		}
		parts = append(parts, safehtml.HTMLEscaped(text))
	}
	parts = append(parts, trusted("</figcaption>\n</figure>\n"))
	return safehtml.HTMLConcat(parts...), nil
}
