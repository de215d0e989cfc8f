// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/dataset"
	"github.com/vizlab/chartwork/draw"
)

// common holds the flags shared by the chart subcommands.
type common struct {
	config     string
	out        string
	verbose    bool
	weather    string
	countries  string
	indicators string
}

func (c *common) addFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "read chart geometry from YAML `file`")
	f.StringVar(&c.out, "o", "", "write output to `file` (default: stdout)")
	f.BoolVar(&c.verbose, "v", false, "log every skipped record")
	f.StringVar(&c.weather, "weather", "", "weather dataset `source` (default from config)")
	f.StringVar(&c.countries, "countries", "", "country outlines `source` (default from config)")
	f.StringVar(&c.indicators, "indicators", "", "indicator CSV `source` (default from config)")
}

// loadConfig loads the configuration and applies the dataset flags to
// it.
func (c *common) loadConfig() *Config {
	cfg, err := loadConfig(c.config)
	if err != nil {
		log.Fatal(err)
	}
	for _, o := range []struct {
		flag string
		dst  *string
	}{
		{c.weather, &cfg.Data.Weather},
		{c.countries, &cfg.Data.Countries},
		{c.indicators, &cfg.Data.Indicators},
	} {
		if o.flag != "" {
			*o.dst = o.flag
		}
	}
	return cfg
}

// loadContext returns a context that is canceled by an interrupt.
func loadContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// reportSkipped logs the records a loader skipped.
func (c *common) reportSkipped(src string, skipped []error) {
	if len(skipped) == 0 {
		return
	}
	if c.verbose {
		for _, err := range skipped {
			log.Printf("%s: skipped %v", src, err)
		}
		return
	}
	log.Printf("%s: skipped %d malformed records (use -v for details)", src, len(skipped))
}

func (c *common) loadWeather(cfg *Config) []dataset.Weather {
	ctx, cancel := loadContext()
	defer cancel()
	ws, skipped, err := dataset.LoadWeather(ctx, cfg.Data.Weather)
	if err != nil {
		fatalLoad(err)
	}
	c.reportSkipped(cfg.Data.Weather, skipped)
	return ws
}

func (c *common) loadCountries(cfg *Config) []dataset.Country {
	ctx, cancel := loadContext()
	defer cancel()
	cs, skipped, err := dataset.LoadCountries(ctx, cfg.Data.Countries)
	if err != nil {
		fatalLoad(err)
	}
	c.reportSkipped(cfg.Data.Countries, skipped)
	return cs
}

func (c *common) loadIndicators(cfg *Config) []dataset.Indicator {
	ctx, cancel := loadContext()
	defer cancel()
	inds, skipped, err := dataset.LoadIndicators(ctx, cfg.Data.Indicators)
	if err != nil {
		fatalLoad(err)
	}
	c.reportSkipped(cfg.Data.Indicators, skipped)
	return inds
}

// fatalLoad exits with a load error. An interrupted load is reported
// without the underlying request error.
func fatalLoad(err error) {
	var le *dataset.LoadError
	if errors.As(err, &le) && errors.Is(le.Err, context.Canceled) {
		log.Fatalf("%s: interrupted", le.Source)
	}
	log.Fatal(err)
}

// warn logs a chart's recoverable problems.
func warn(c charts.Chart) {
	for _, err := range c.Warnings() {
		log.Printf("warning: %v", err)
	}
}

// create opens the output file, or standard output if path is empty.
func create(path string) io.WriteCloser {
	if path == "" {
		return nopCloser{os.Stdout}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writeSVG writes f to path, or standard output if path is empty.
func writeSVG(path string, f *draw.Frame) {
	if path == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Printf("writing SVG to a terminal; use -o to write a file")
	}
	w := create(path)
	draw.WriteSVG(w, f)
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}
