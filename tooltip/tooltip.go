// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tooltip implements the overlay that describes the record
// under the pointer.
//
// A Controller is either hidden or visible for one record. Show and
// Hide overwrite the state; the last call wins.
package tooltip

import (
	"fmt"
	"strings"

	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/layout"
)

// Field is one line of tooltip content.
type Field struct {
	ID, Text string
}

// State is a tooltip's visibility, content, and position.
type State struct {
	Visible bool
	// Record is the index of the described record. It is -1 when
	// the tooltip is hidden.
	Record int
	Fields []Field
	// X and Y are the anchor point on the surface: the resolved
	// record's position plus the chart's margins. The overlay is
	// centered above it.
	X, Y float64
}

// Transform returns the CSS transform that places an overlay
// centered above the anchor point.
func (s State) Transform() string {
	return fmt.Sprintf("translate(calc(-50%% + %spx), calc(-100%% + %spx))", draw.Num(s.X), draw.Num(s.Y))
}

func (s State) String() string {
	if !s.Visible {
		return "hidden"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "visible record=%d at (%s, %s)", s.Record, draw.Num(s.X), draw.Num(s.Y))
	for _, f := range s.Fields {
		fmt.Fprintf(&b, " %s=%q", f.ID, f.Text)
	}
	return b.String()
}

// Controller manages one tooltip.
type Controller struct {
	dx, dy  float64
	content func(record int) []Field
	marker  *draw.Shape
	// at is the anchor in bounds coordinates.
	atX, atY float64
	state    State
}

// New returns a hidden tooltip for a chart with dimensions d.
// content returns the fields describing a record. If marker is not
// nil, a copy of it is placed over the resolved record while the
// tooltip is visible.
func New(d layout.Dimensions, content func(record int) []Field, marker *draw.Shape) *Controller {
	c := &Controller{
		dx:      d.Margin.Left,
		dy:      d.Margin.Top,
		content: content,
		marker:  marker,
	}
	c.Hide()
	return c
}

// Show makes the tooltip visible for record, anchored at (x, y) in
// bounds coordinates.
func (c *Controller) Show(record int, x, y float64) {
	c.atX, c.atY = x, y
	c.state = State{
		Visible: true,
		Record:  record,
		X:       x + c.dx,
		Y:       y + c.dy,
	}
	if c.content != nil {
		c.state.Fields = c.content(record)
	}
}

// Hide hides the tooltip.
func (c *Controller) Hide() {
	c.state = State{Record: -1}
}

// State returns the tooltip's current state.
func (c *Controller) State() State {
	return c.state
}

// Marker returns the highlight shape for the visible record, if the
// tooltip is visible and has a marker.
func (c *Controller) Marker() (draw.Shape, bool) {
	if !c.state.Visible || c.marker == nil {
		return draw.Shape{}, false
	}
	s := *c.marker
	s.X, s.Y = c.atX, c.atY
	return s, true
}
