// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Serbench renders serialization benchmark results as an HTML report.
//
// Usage:
//
//	serbench [flags]
//
// Serbench reads one result file per library from each of two
// directories, by default "json" and "cbor". A result file is named
// after the library, such as "kryo.txt", and holds one integer number
// of milliseconds per line, in the order primitive, ADT and sequence.
//
// The report has three tabs. The JSON and CBOR tabs chart each format
// on its own, and the All tab charts both formats side by side. Each
// tab holds one bar chart per category.
//
// Flags override the settings in the configuration file, which is
// named by -config or else is serbench.yaml or .serbench.yaml in the
// current directory, if present. The -jo flag saves the charts as JSON
// and -ji renders a report from such a file instead of from result
// directories. The -csv flag writes every sample in long form, and -v
// prints a per-format, per-category summary to standard error.
//
// Nothing is written unless every result file loads, every chart
// builds and every output file can be written.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"github.com/spf13/cobra"
	"golang.org/x/serbench/benchfmt"
	"golang.org/x/serbench/benchreport"
	"golang.org/x/serbench/benchseries"
)

func main() {
	log.SetPrefix("serbench: ")
	log.SetFlags(0)

	if err := newCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var configFile string
	flagCfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "serbench",
		Short:         "Render serialization benchmark results as an HTML report",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, flagCfg)
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg, stdout, log.New(stderr, "serbench: ", 0))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "read settings from this YAML `file`")
	f.StringVar(&flagCfg.JSONDir, "json", flagCfg.JSONDir, "directory of JSON result files")
	f.StringVar(&flagCfg.CBORDir, "cbor", flagCfg.CBORDir, "directory of CBOR result files")
	f.StringVarP(&flagCfg.Out, "out", "o", flagCfg.Out, "write the HTML report to this `file` (- for stdout, empty for none)")
	f.StringVar(&flagCfg.JSONOut, "jo", "", "save the charts in this JSON `file`")
	f.StringVar(&flagCfg.JSONIn, "ji", "", "read the charts from this JSON `file` instead of result directories")
	f.StringVar(&flagCfg.CSVOut, "csv", "", "write every sample to this CSV `file`")
	f.StringVar(&flagCfg.PNGDir, "png", "", "directory to write png charts into")
	f.StringVar(&flagCfg.Title, "title", "", "report heading")
	f.Float64Var(&flagCfg.Width, "width", flagCfg.Width, "chart width in centimeters")
	f.Float64Var(&flagCfg.Height, "height", flagCfg.Height, "chart height in centimeters")
	f.BoolVarP(&flagCfg.Verbose, "verbose", "v", false, "print a summary of the results to stderr")
	return cmd
}

// applyFlags copies the flags set on the command line from flagCfg
// into cfg.
func applyFlags(cmd *cobra.Command, cfg, flagCfg *Config) {
	f := cmd.Flags()
	set := func(name string, dst *string, src string) {
		if f.Changed(name) {
			*dst = src
		}
	}
	set("json", &cfg.JSONDir, flagCfg.JSONDir)
	set("cbor", &cfg.CBORDir, flagCfg.CBORDir)
	set("out", &cfg.Out, flagCfg.Out)
	set("jo", &cfg.JSONOut, flagCfg.JSONOut)
	set("ji", &cfg.JSONIn, flagCfg.JSONIn)
	set("csv", &cfg.CSVOut, flagCfg.CSVOut)
	set("png", &cfg.PNGDir, flagCfg.PNGDir)
	set("title", &cfg.Title, flagCfg.Title)
	if f.Changed("width") {
		cfg.Width = flagCfg.Width
	}
	if f.Changed("height") {
		cfg.Height = flagCfg.Height
	}
	if f.Changed("verbose") {
		cfg.Verbose = flagCfg.Verbose
	}
}

// results are the loaded result directories.
type results struct {
	json, cbor []*benchfmt.LibrarySeries
}

func run(cfg *Config, stdout io.Writer, logger *log.Logger) error {
	var doc *benchreport.Document
	var res *results
	var err error
	if cfg.JSONIn != "" {
		doc, err = readDocument(cfg.JSONIn)
		if err != nil {
			return err
		}
		if cfg.CSVOut != "" || cfg.Verbose {
			logger.Printf("-csv and -v need result directories; ignored with -ji")
		}
	} else {
		res, err = load(cfg, logger)
		if err != nil {
			return err
		}
		doc, err = benchreport.Build(res.json, res.cbor)
		if err != nil {
			return err
		}
	}

	// Render everything in memory before writing any output.
	width, height := cfg.size()
	var out outputs
	if cfg.Out != "" {
		var buf bytes.Buffer
		opts := benchreport.HTMLOptions{Title: cfg.Title, Width: width, Height: height}
		if err := benchreport.WriteHTML(&buf, doc, opts); err != nil {
			return err
		}
		out.add(cfg.Out, buf.Bytes())
	}
	if cfg.JSONOut != "" {
		var buf bytes.Buffer
		if err := benchreport.WriteJSON(&buf, doc); err != nil {
			return err
		}
		out.add(cfg.JSONOut, buf.Bytes())
	}
	var samples table.Grouping
	if res != nil {
		samples, err = res.table()
		if err != nil {
			return err
		}
		if cfg.CSVOut != "" {
			var buf bytes.Buffer
			if err := benchseries.WriteCSV(&buf, samples); err != nil {
				return err
			}
			out.add(cfg.CSVOut, buf.Bytes())
		}
	}
	if cfg.PNGDir != "" {
		images, err := benchreport.RenderPNGs(doc, width, height)
		if err != nil {
			return err
		}
		out.dirs = append(out.dirs, cfg.PNGDir)
		for _, img := range images {
			out.add(filepath.Join(cfg.PNGDir, img.Name), img.Data)
		}
	}

	if cfg.Verbose && samples != nil {
		if err := benchseries.FprintSummary(logger.Writer(), benchseries.Summarize(samples)); err != nil {
			return err
		}
	}
	if err := commit(out.dirs, out.files); err != nil {
		return err
	}
	for _, data := range out.stdout {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// outputs collects the rendered outputs of a run.
type outputs struct {
	dirs   []string
	files  []pendingFile
	stdout [][]byte
}

// add records data for the named file, or for stdout if name is "-".
func (o *outputs) add(name string, data []byte) {
	if name == "-" {
		o.stdout = append(o.stdout, data)
		return
	}
	o.files = append(o.files, pendingFile{name, data})
}

// load reads both result directories and warns about results that
// will not appear in every chart.
func load(cfg *Config, logger *log.Logger) (*results, error) {
	var res results
	var err error
	if res.json, err = benchfmt.LoadDir(cfg.JSONDir); err != nil {
		return nil, err
	}
	if res.cbor, err = benchfmt.LoadDir(cfg.CBORDir); err != nil {
		return nil, err
	}

	for _, f := range []struct {
		format benchfmt.Format
		series []*benchfmt.LibrarySeries
	}{{benchfmt.JSON, res.json}, {benchfmt.CBOR, res.cbor}} {
		for _, s := range f.series {
			if n := s.Extra(); n > 0 {
				logger.Printf("%s result for %s has %d extra samples; ignoring them", f.format, s.Library, n)
			}
		}
	}
	onlyJSON, onlyCBOR := benchreport.Unmatched(res.json, res.cbor)
	for _, lib := range onlyJSON {
		logger.Printf("%s has %s results but no %s results", lib, benchfmt.JSON, benchfmt.CBOR)
	}
	for _, lib := range onlyCBOR {
		logger.Printf("%s has %s results but no %s results", lib, benchfmt.CBOR, benchfmt.JSON)
	}
	return &res, nil
}

// table returns every sample of both formats in long form.
func (r *results) table() (table.Grouping, error) {
	tj, err := benchseries.Table(benchfmt.JSON, r.json)
	if err != nil {
		return nil, err
	}
	tc, err := benchseries.Table(benchfmt.CBOR, r.cbor)
	if err != nil {
		return nil, err
	}
	return table.Concat(tj, tc), nil
}

func readDocument(path string) (*benchreport.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := benchreport.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}
