// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

const (
	tickSize    = 6
	tickPadding = 3
	axisFont    = 10
	labelFont   = 14
)

// Tick is one labeled axis tick. Pos is the tick's position along the
// axis in pixels.
type Tick struct {
	Pos   float64
	Label string
}

// Axis describes an axis to generate shapes for.
type Axis struct {
	// Key prefixes the keys of the generated shapes.
	Key   string
	Ticks []Tick
	// Length is the length of the axis line.
	Length float64
	// Offset is the axis position across its direction: the y of
	// a bottom axis. Left axes are drawn at x = 0.
	Offset float64
	// Label is the axis title and LabelOffset its distance from the
	// axis line.
	Label       string
	LabelOffset float64
}

// Bottom returns the shapes of a horizontal axis with ticks and
// labels below it.
func (a Axis) Bottom() []Shape {
	y := a.Offset
	shapes := []Shape{{
		Key: a.Key + "/domain", Kind: Line, Class: "domain",
		X: 0, Y: y, X2: a.Length, Y2: y,
		Style: Style{Stroke: "currentColor"},
	}}
	for _, t := range a.Ticks {
		shapes = append(shapes,
			Shape{
				Key: a.Key + "/tick/" + t.Label, Kind: Line, Class: "tick",
				X: t.Pos, Y: y, X2: t.Pos, Y2: y + tickSize,
				Style: Style{Stroke: "currentColor"},
			},
			Shape{
				Key: a.Key + "/label/" + t.Label, Kind: Text, Class: "tick-label",
				X: t.Pos, Y: y + tickSize + tickPadding + axisFont, Text: t.Label,
				Style: Style{Fill: "currentColor", Anchor: "middle", FontSize: axisFont},
			})
	}
	if a.Label != "" {
		shapes = append(shapes, Shape{
			Key: a.Key + "/title", Kind: Text, Class: "x-axis-label",
			X: a.Length / 2, Y: y + a.LabelOffset, Text: a.Label,
			Style: Style{Fill: "black", Anchor: "middle", FontSize: labelFont},
		})
	}
	return shapes
}

// Left returns the shapes of a vertical axis at x = 0 with ticks and
// labels to its left.
func (a Axis) Left() []Shape {
	shapes := []Shape{{
		Key: a.Key + "/domain", Kind: Line, Class: "domain",
		X: 0, Y: 0, X2: 0, Y2: a.Length,
		Style: Style{Stroke: "currentColor"},
	}}
	for _, t := range a.Ticks {
		shapes = append(shapes,
			Shape{
				Key: a.Key + "/tick/" + t.Label, Kind: Line, Class: "tick",
				X: -tickSize, Y: t.Pos, X2: 0, Y2: t.Pos,
				Style: Style{Stroke: "currentColor"},
			},
			Shape{
				Key: a.Key + "/label/" + t.Label, Kind: Text, Class: "tick-label",
				X: -tickSize - tickPadding, Y: t.Pos + axisFont/3, Text: t.Label,
				Style: Style{Fill: "currentColor", Anchor: "end", FontSize: axisFont},
			})
	}
	if a.Label != "" {
		shapes = append(shapes, Shape{
			Key: a.Key + "/title", Kind: Text, Class: "y-axis-label",
			X: -a.LabelOffset, Y: a.Length / 2, Text: a.Label, Rotate: -90,
			Style: Style{Fill: "black", Anchor: "middle", FontSize: labelFont},
		})
	}
	return shapes
}
