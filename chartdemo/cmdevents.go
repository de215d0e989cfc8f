// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vizlab/chartwork/charts"
)

var eventsFlags struct {
	out string
}

func init() {
	f := flag.NewFlagSet(os.Args[0]+" events", flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s events [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&eventsFlags.out, "o", "", "write output to `file` (default: stdout)")
	registerSubcommand("events", "[flags] - row of rectangles that light up under the pointer", cmdEvents, f)
}

func cmdEvents() {
	writeSVG(eventsFlags.out, charts.NewEvents().Frame())
}
