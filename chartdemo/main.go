// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartdemo renders the demo charts and replays pointer
// input against them.
//
// Usage:
//
//	chartdemo <subcommand> [flags] [args...]
//
// The subcommands are:
//
//	line     weather line chart of maximum temperature
//	scatter  weather scatterplot of humidity against dew point
//	map      world map colored by a development indicator
//	events   row of rectangles that light up under the pointer
//	hover    replay a pointer script against a chart
//	table    print a dataset as a table
//
// Charts are written as SVG to standard output or to the file given
// by -o. Chart geometry, such as the viewport size and margins, comes
// from built-in defaults that a YAML file given by -config can
// override.
//
// Datasets are read from the files given by -weather, -countries, and
// -indicators, which may also be http or https URLs or "-" for
// standard input.
//
// The hover subcommand reads a script of pointer commands, one per
// line:
//
//	move X Y   move the pointer to (X, Y) in SVG coordinates
//	leave      take the pointer off the chart
//	teardown   release the pointer and unbind all handlers
//	svg FILE   write the chart in its current state to FILE
//
// After each command it prints the resulting events, the tooltip
// state, and how the chart's shapes changed. If standard input is a
// terminal, hover reads commands interactively.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

// registerSubcommand adds a subcommand. desc is a short usage line,
// starting with the argument synopsis.
func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

func main() {
	log.SetPrefix("chartdemo: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args...]\n\n", os.Args[0])
		names := make([]string, 0, len(subcommands))
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
		fmt.Fprintf(os.Stderr, "\nRun %s <subcommand> -h for subcommand flags.\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}
