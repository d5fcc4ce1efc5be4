// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Config is the serbench configuration. It is read from a YAML file
// and then overridden by command line flags.
type Config struct {
	JSONDir string `yaml:"json"`
	CBORDir string `yaml:"cbor"`

	// Out is the HTML report path, "-" for stdout, or "" for none.
	Out     string `yaml:"out"`
	JSONOut string `yaml:"json_out"`
	JSONIn  string `yaml:"json_in"`
	CSVOut  string `yaml:"csv"`
	PNGDir  string `yaml:"png"`

	Title string `yaml:"title"`
	// Width and Height are the chart size in centimeters.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Verbose bool `yaml:"verbose"`
}

// defaultConfigFiles are tried in order when no config file is named.
var defaultConfigFiles = []string{"serbench.yaml", ".serbench.yaml"}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		JSONDir: "json",
		CBORDir: "cbor",
		Out:     "report.html",
		Width:   16,
		Height:  10,
	}
}

// LoadConfig reads the configuration file at path over the defaults.
// If path is empty, LoadConfig tries the default file names and
// returns the defaults if none exists.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		for _, name := range defaultConfigFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("chart size %gx%g cm must be positive", c.Width, c.Height)
	}
	if c.JSONIn == "" && (c.JSONDir == "" || c.CBORDir == "") {
		return errors.New("both result directories are required")
	}
	return nil
}

func (c *Config) size() (vg.Length, vg.Length) {
	return vg.Length(c.Width) * vg.Centimeter, vg.Length(c.Height) * vg.Centimeter
}
