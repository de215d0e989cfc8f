// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/dataset"
	"github.com/vizlab/chartwork/internal/format"
)

var scatterFlags struct {
	common
	trend bool
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" scatter", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s scatter [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	scatterFlags.addFlags(f)
	f.BoolVar(&scatterFlags.trend, "trend", false, "draw a least squares trend line")
	registerSubcommand("scatter", "[flags] - weather scatterplot of humidity against dew point", cmdScatter, f)
}

func cmdScatter() {
	cfg := scatterFlags.loadConfig()
	ws := scatterFlags.loadWeather(cfg)
	writeSVG(scatterFlags.out, buildScatter(cfg, ws, scatterFlags.trend).Frame())
}

func buildScatter(cfg *Config, ws []dataset.Weather, trend bool) *charts.Scatter {
	sc := cfg.scatterConfig()
	sc.Trend = sc.Trend || trend
	c := charts.NewScatter(ws, sc)
	warn(c)
	if t, ok := c.Trend(); ok {
		log.Printf("trend: humidity = %s + %s * dew point", format.Fixed(t.Intercept, 4), format.Fixed(t.Slope, 4))
	} else if sc.Trend {
		log.Printf("trend: not enough distinct points to fit")
	}
	return c
}
