// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/go-gg/table"

	"github.com/vizlab/chartwork/dataset"
)

var tableFlags struct {
	common
	metric string
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s table [flags] <weather|indicators|countries>\n", os.Args[0])
		f.PrintDefaults()
	}
	tableFlags.addFlags(f)
	f.StringVar(&tableFlags.metric, "metric", "", "indicator `series` joined to countries (default from config)")
	registerSubcommand("table", "[flags] <weather|indicators|countries> - print a dataset as a table", cmdTable, f)
}

func cmdTable() {
	f := subcommands["table"].flags
	if f.NArg() != 1 {
		f.Usage()
		os.Exit(2)
	}
	cfg := tableFlags.loadConfig()

	var g table.Grouping
	var formats []string
	switch f.Arg(0) {
	case "weather":
		g = dataset.WeatherTable(tableFlags.loadWeather(cfg))
		// Dates print as YYYY-MM-DD.
		formats = []string{"%.10s"}
	case "indicators":
		g = dataset.IndicatorTable(tableFlags.loadIndicators(cfg))
	case "countries":
		metric := cfg.Map.Metric
		if tableFlags.metric != "" {
			metric = tableFlags.metric
		}
		values := dataset.ByCountry(tableFlags.loadIndicators(cfg), metric)
		g = dataset.CountryTable(tableFlags.loadCountries(cfg), values)
	default:
		log.Fatalf("unknown dataset %q", f.Arg(0))
	}

	w := create(tableFlags.out)
	if err := table.Fprint(w, g, formats...); err != nil {
		log.Fatal(err)
	}
	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}
