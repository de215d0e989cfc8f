// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw describes a chart as a list of draw commands.
//
// Chart builders are pure functions from data and scales to a Frame.
// A Frame can be compared with the previous one using Reconcile, which
// reports which shapes appeared, changed, and disappeared, and it can
// be rendered to SVG with WriteSVG.
package draw

import (
	"strconv"
	"strings"
)

// Kind is the kind of a Shape.
type Kind int

const (
	Rect Kind = iota
	Circle
	Path
	Line
	Text
)

var kindNames = [...]string{"rect", "circle", "path", "line", "text"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Layer is the coordinate system and clipping of a Shape.
type Layer int

const (
	// Bounds shapes are positioned relative to the top-left corner
	// of the bounds.
	Bounds Layer = iota
	// Clipped shapes are like Bounds shapes, but are clipped to
	// the bounds.
	Clipped
	// Wrapper shapes are positioned relative to the whole surface.
	Wrapper
)

// Style is the paint of a Shape. Empty fields are left to the
// renderer's defaults.
type Style struct {
	Fill, Stroke string
	StrokeWidth  float64
	// Anchor is the text-anchor of Text shapes.
	Anchor   string
	FontSize float64
}

// Shape is one draw command. Shapes are comparable values.
type Shape struct {
	// Key identifies the shape across frames. Keys are unique
	// within a frame.
	Key   string
	Kind  Kind
	Layer Layer
	Class string

	// X and Y are the origin of a Rect, the center of a Circle,
	// the start of a Line, and the anchor of a Text.
	X, Y float64
	// X2 and Y2 are the end of a Line.
	X2, Y2 float64
	W, H   float64
	R      float64
	// D is the path data of a Path.
	D    string
	Text string
	// Rotate rotates a Text by this many degrees around (X, Y).
	Rotate float64

	Style
}

// Contains reports whether (x, y) is inside a Rect or Circle shape.
// It is always false for other kinds.
func (s Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case Rect:
		return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
	case Circle:
		dx, dy := x-s.X, y-s.Y
		return dx*dx+dy*dy <= s.R*s.R
	}
	return false
}

// Gradient is a horizontal linear gradient with evenly spaced stops.
type Gradient struct {
	ID    string
	Stops []string
}

// Frame is everything drawn in one render.
type Frame struct {
	Width, Height float64
	// OffsetX and OffsetY translate the Bounds and Clipped
	// layers; they are the left and top margins.
	OffsetX, OffsetY float64
	// ClipW and ClipH are the size of the clip rectangle for the
	// Clipped layer.
	ClipW, ClipH float64
	Gradients    []Gradient
	Shapes       []Shape
}

// With returns a copy of f with shapes appended. f is not modified.
func (f *Frame) With(shapes ...Shape) *Frame {
	nf := *f
	nf.Shapes = make([]Shape, 0, len(f.Shapes)+len(shapes))
	nf.Shapes = append(nf.Shapes, f.Shapes...)
	nf.Shapes = append(nf.Shapes, shapes...)
	return &nf
}

// Lookup returns the shape with the given key.
func (f *Frame) Lookup(key string) (Shape, bool) {
	for _, s := range f.Shapes {
		if s.Key == key {
			return s, true
		}
	}
	return Shape{}, false
}

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// LinePath returns SVG path data connecting pts. A point with a NaN
// coordinate breaks the line.
func LinePath(pts []Point) string {
	var b strings.Builder
	pen := false
	for _, p := range pts {
		if p.X != p.X || p.Y != p.Y {
			pen = false
			continue
		}
		if pen {
			b.WriteByte('L')
		} else {
			b.WriteByte('M')
			pen = true
		}
		b.WriteString(Num(p.X))
		b.WriteByte(',')
		b.WriteString(Num(p.Y))
	}
	return b.String()
}

// PolygonPath returns SVG path data for closed rings.
func PolygonPath(rings ...[]Point) string {
	var b strings.Builder
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		b.WriteString(LinePath(r))
		b.WriteByte('Z')
	}
	return b.String()
}

// Num formats a coordinate with at most two decimals.
func Num(x float64) string {
	s := strconv.FormatFloat(x, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
