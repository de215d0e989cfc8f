// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charts builds the demo charts.
//
// Each chart is built once from its data and an immutable
// configuration. Its static shapes are computed up front; pointer
// input only changes the tooltip and highlight state, which Frame
// folds into the shapes it returns.
package charts

import (
	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
	"github.com/vizlab/chartwork/layout"
	"github.com/vizlab/chartwork/tooltip"
)

// Chart is an interactive chart.
type Chart interface {
	// Frame returns the shapes of the chart in its current state.
	Frame() *draw.Frame
	// Pointer moves the pointer to (x, y) in surface coordinates
	// and returns the events this caused.
	Pointer(x, y float64) []events.Event
	// Leave takes the pointer off the chart.
	Leave() []events.Event
	// Teardown dispatches a leave for the shape under the pointer
	// and then unbinds every handler. Later pointer input has no
	// effect.
	Teardown() []events.Event
	// Tooltip returns the tooltip state.
	Tooltip() tooltip.State
	// Warnings returns the recoverable problems found while
	// building the chart.
	Warnings() []error
}

// interaction is the pointer handling shared by all charts.
type interaction struct {
	dims     layout.Dimensions
	tracker  *events.Tracker
	tip      *tooltip.Controller
	unbound  bool
	warnings []error
}

func (in *interaction) bind(table events.Table, hit events.HitFunc) {
	in.tracker = events.NewTracker(table, hit)
}

func (in *interaction) Pointer(x, y float64) []events.Event {
	if in.unbound {
		return nil
	}
	return in.tracker.Move(x-in.dims.Margin.Left, y-in.dims.Margin.Top)
}

func (in *interaction) Leave() []events.Event {
	return in.tracker.Release()
}

func (in *interaction) Teardown() []events.Event {
	evs := in.tracker.Release()
	in.tracker.Rebind(nil)
	in.unbound = true
	return evs
}

func (in *interaction) Tooltip() tooltip.State {
	return in.tip.State()
}

func (in *interaction) Warnings() []error {
	return in.warnings
}

func (in *interaction) warn(err error) {
	if err != nil {
		in.warnings = append(in.warnings, err)
	}
}

// frame returns an empty frame for the chart's dimensions.
func (in *interaction) frame() *draw.Frame {
	d := in.dims
	return &draw.Frame{
		Width:   d.Width,
		Height:  d.Height,
		OffsetX: d.Margin.Left,
		OffsetY: d.Margin.Top,
		ClipW:   d.BoundedWidth,
		ClipH:   d.BoundedHeight,
	}
}

// withMarker returns base with the tooltip's marker, if it is showing.
func (in *interaction) withMarker(base *draw.Frame) *draw.Frame {
	if m, ok := in.tip.Marker(); ok {
		return base.With(m)
	}
	return base
}

// ticks converts tick values to axis ticks positioned by pos.
func ticks(vals []float64, pos func(float64) float64, label func(v, step float64) string) []draw.Tick {
	step := 0.0
	if len(vals) > 1 {
		step = vals[1] - vals[0]
	}
	out := make([]draw.Tick, len(vals))
	for i, v := range vals {
		out[i] = draw.Tick{Pos: pos(v), Label: label(v, step)}
	}
	return out
}

func tickLabels(ts []draw.Tick) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Label
	}
	return out
}

var (
	_ Chart = (*Line)(nil)
	_ Chart = (*Scatter)(nil)
	_ Chart = (*Map)(nil)
	_ Chart = (*Events)(nil)
)
