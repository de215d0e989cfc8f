// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/dataset"
)

var lineFlags struct {
	common
	limit int
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" line", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s line [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	lineFlags.addFlags(f)
	f.IntVar(&lineFlags.limit, "limit", -1, "plot the first `n` days (default from config; 0 means all)")
	registerSubcommand("line", "[flags] - weather line chart of maximum temperature", cmdLine, f)
}

func cmdLine() {
	cfg := lineFlags.loadConfig()
	ws := lineFlags.loadWeather(cfg)
	writeSVG(lineFlags.out, buildLine(cfg, ws, lineFlags.limit).Frame())
}

// buildLine builds the line chart. A negative limit keeps the
// configured one.
func buildLine(cfg *Config, ws []dataset.Weather, limit int) *charts.Line {
	lc := cfg.lineConfig()
	if limit >= 0 {
		lc.Limit = limit
	}
	c := charts.NewLine(ws, lc)
	warn(c)
	return c
}
