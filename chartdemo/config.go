// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/layout"
)

// Config is the geometry of the charts and the location of their
// data. Values of Config are not modified after loading.
type Config struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`

	Data struct {
		Weather    string `yaml:"weather"`
		Countries  string `yaml:"countries"`
		Indicators string `yaml:"indicators"`
	} `yaml:"data"`

	Line struct {
		Fraction float64 `yaml:"fraction"`
		Height   float64 `yaml:"height"`
		Margin   margins `yaml:"margin"`
		Limit    int     `yaml:"limit"`
		Freezing float64 `yaml:"freezing"`
	} `yaml:"line"`

	Scatter struct {
		Fraction float64 `yaml:"fraction"`
		Margin   margins `yaml:"margin"`
		Trend    bool    `yaml:"trend"`
	} `yaml:"scatter"`

	Map struct {
		Fraction float64 `yaml:"fraction"`
		Margin   margins `yaml:"margin"`
		Metric   string  `yaml:"metric"`
		Title    string  `yaml:"title"`
		Domain   float64 `yaml:"domain"`
	} `yaml:"map"`
}

type margins struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (m margins) layout() layout.Margins {
	return layout.Margins{Top: m.Top, Right: m.Right, Bottom: m.Bottom, Left: m.Left}
}

const defaultConfig = `
viewport:
  width: 1200
  height: 800

data:
  weather: my_weather_data.json
  countries: world-geojson.json
  indicators: world_bank_data.csv

line:
  fraction: 0.9
  height: 400
  margin: {top: 15, right: 15, bottom: 40, left: 60}
  limit: 100
  freezing: 32

scatter:
  fraction: 0.9
  margin: {top: 10, right: 10, bottom: 50, left: 50}
  trend: false

map:
  fraction: 0.9
  margin: {top: 10, right: 10, bottom: 10, left: 10}
  metric: "Population growth (annual %)"
  title: population growth
  domain: 5
`

// loadConfig returns the default configuration overridden by the YAML
// file at path, if path is not empty.
func loadConfig(path string) (*Config, error) {
	cfg := new(Config)
	if err := decodeConfig(bytes.NewReader([]byte(defaultConfig)), cfg); err != nil {
		panic("bad default config: " + err.Error())
	}
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := decodeConfig(f, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decodeConfig decodes YAML from r over the values already in cfg.
// Unknown keys are errors.
func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == io.EOF {
		// An empty file changes nothing.
		return nil
	}
	return err
}

func (cfg *Config) check() error {
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have a positive size, got %vx%v", cfg.Viewport.Width, cfg.Viewport.Height)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"line", cfg.Line.Fraction}, {"scatter", cfg.Scatter.Fraction}, {"map", cfg.Map.Fraction}} {
		if f.v <= 0 || f.v > 1 {
			return fmt.Errorf("%s.fraction must be in (0, 1], got %v", f.name, f.v)
		}
	}
	if cfg.Line.Limit < 0 {
		return fmt.Errorf("line.limit must not be negative, got %d", cfg.Line.Limit)
	}
	return nil
}

func (cfg *Config) lineConfig() charts.LineConfig {
	l := cfg.Line
	return charts.LineConfig{
		Dims:     layout.Fraction(cfg.Viewport.Width, l.Fraction, l.Height, l.Margin.layout()),
		Limit:    l.Limit,
		Freezing: l.Freezing,
	}
}

func (cfg *Config) scatterConfig() charts.ScatterConfig {
	s := cfg.Scatter
	return charts.ScatterConfig{
		Dims:  layout.Square(cfg.Viewport.Width, cfg.Viewport.Height, s.Fraction, s.Margin.layout()),
		Trend: s.Trend,
	}
}

func (cfg *Config) mapConfig() charts.MapConfig {
	m := cfg.Map
	return charts.MapConfig{
		// The height follows from the projection.
		Dims:   layout.Fraction(cfg.Viewport.Width, m.Fraction, 0, m.Margin.layout()),
		Metric: m.Metric,
		Title:  m.Title,
		Domain: m.Domain,
	}
}
