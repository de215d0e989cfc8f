// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/dataset"
)

var mapFlags struct {
	common
	metric string
	locate string
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" map", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s map [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	mapFlags.addFlags(f)
	f.StringVar(&mapFlags.metric, "metric", "", "indicator `series` to show (default from config)")
	f.StringVar(&mapFlags.locate, "locate", "", "mark the location `lon,lat`")
	registerSubcommand("map", "[flags] - world map colored by a development indicator", cmdMap, f)
}

func cmdMap() {
	cfg := mapFlags.loadConfig()
	cs := mapFlags.loadCountries(cfg)
	inds := mapFlags.loadIndicators(cfg)
	c, err := buildMap(cfg, cs, inds, mapFlags.metric, mapFlags.locate)
	if err != nil {
		log.Fatal(err)
	}
	writeSVG(mapFlags.out, c.Frame())
}

// buildMap builds the map of metric, or the configured metric if
// metric is empty. locate is empty or a "lon,lat" pair.
func buildMap(cfg *Config, cs []dataset.Country, inds []dataset.Indicator, metric, locate string) (*charts.Map, error) {
	mc := cfg.mapConfig()
	if metric != "" && metric != mc.Metric {
		// The configured title describes the configured metric.
		mc.Metric, mc.Title = metric, ""
	}
	if locate != "" {
		p, err := parseLocation(locate)
		if err != nil {
			return nil, err
		}
		mc.Locate = &p
	}
	values := dataset.ByCountry(inds, mc.Metric)
	if len(values) == 0 {
		return nil, fmt.Errorf("no values for series %q; have %s", mc.Metric, strings.Join(quoteAll(dataset.Series(inds)), ", "))
	}
	c := charts.NewMap(cs, values, mc)
	warn(c)
	return c, nil
}

func parseLocation(s string) (orb.Point, error) {
	lon, lat, ok := strings.Cut(s, ",")
	if !ok {
		return orb.Point{}, fmt.Errorf("bad location %q: want lon,lat", s)
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err1 != nil || err2 != nil || x < -180 || x > 180 || y < -90 || y > 90 {
		return orb.Point{}, fmt.Errorf("bad location %q: want lon,lat in degrees", s)
	}
	return orb.Point{x, y}, nil
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strconv.Quote(s)
	}
	return out
}
