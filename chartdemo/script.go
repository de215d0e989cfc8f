// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
)

var scriptCommands = []string{"move", "leave", "teardown", "svg"}

// A session replays pointer commands against a chart and reports what
// each one did.
type session struct {
	chart charts.Chart
	w     io.Writer
	prev  *draw.Frame
	// save writes a frame to a file.
	save func(path string, f *draw.Frame) error
}

func newSession(c charts.Chart, w io.Writer, save func(string, *draw.Frame) error) *session {
	return &session{chart: c, w: w, prev: c.Frame(), save: save}
}

// exec runs one script line. Blank lines and lines starting with #
// do nothing.
func (s *session) exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}

	var evs []events.Event
	switch cmd := args[0]; cmd {
	case "move":
		if len(args) != 3 {
			return fmt.Errorf("usage: move X Y")
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("move: bad X: %w", err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("move: bad Y: %w", err)
		}
		evs = s.chart.Pointer(x, y)
	case "leave", "teardown":
		if len(args) != 1 {
			return fmt.Errorf("usage: %s", cmd)
		}
		if cmd == "leave" {
			evs = s.chart.Leave()
		} else {
			evs = s.chart.Teardown()
		}
	case "svg":
		if len(args) != 2 {
			return fmt.Errorf("usage: svg FILE")
		}
		return s.save(args[1], s.chart.Frame())
	default:
		return fmt.Errorf("unknown command %q (want one of %s)", cmd, strings.Join(scriptCommands, ", "))
	}

	for _, ev := range evs {
		fmt.Fprintf(s.w, "event %v\n", ev)
	}
	fmt.Fprintf(s.w, "tooltip %v\n", s.chart.Tooltip())

	next := s.chart.Frame()
	d := draw.Reconcile(s.prev.Shapes, next.Shapes)
	s.prev = next
	for _, sh := range d.Enter {
		fmt.Fprintf(s.w, "shape +%s\n", sh.Key)
	}
	for _, sh := range d.Update {
		fmt.Fprintf(s.w, "shape ~%s\n", sh.Key)
	}
	for _, sh := range d.Exit {
		fmt.Fprintf(s.w, "shape -%s\n", sh.Key)
	}
	return nil
}
