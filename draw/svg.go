// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const clipID = "bounds-clip-path"

// WriteSVG renders f as an SVG document.
//
// The Clipped layer is drawn first, then the Bounds layer, then the
// Wrapper layer, each in frame order.
func WriteSVG(w io.Writer, f *Frame) {
	canvas := svg.New(w)
	canvas.Start(px(f.Width), px(f.Height))

	if len(f.Gradients) > 0 {
		canvas.Def()
		for _, g := range f.Gradients {
			canvas.LinearGradient(g.ID, 0, 0, 100, 0, offcolors(g.Stops))
		}
		canvas.DefEnd()
	}

	canvas.Gtransform(fmt.Sprintf("translate(%s,%s)", Num(f.OffsetX), Num(f.OffsetY)))
	if clipped := layer(f, Clipped); len(clipped) > 0 {
		canvas.Def()
		canvas.ClipPath(`id="` + clipID + `"`)
		canvas.Rect(0, 0, px(f.ClipW), px(f.ClipH))
		canvas.ClipEnd()
		canvas.DefEnd()
		canvas.Group(`clip-path="url(#` + clipID + `)"`)
		for _, s := range clipped {
			drawShape(canvas, s)
		}
		canvas.Gend()
	}
	for _, s := range layer(f, Bounds) {
		drawShape(canvas, s)
	}
	canvas.Gend()

	for _, s := range layer(f, Wrapper) {
		drawShape(canvas, s)
	}
	canvas.End()
}

func layer(f *Frame, l Layer) []Shape {
	var out []Shape
	for _, s := range f.Shapes {
		if s.Layer == l {
			out = append(out, s)
		}
	}
	return out
}

func offcolors(stops []string) []svg.Offcolor {
	oc := make([]svg.Offcolor, len(stops))
	for i, c := range stops {
		off := 0
		if len(stops) > 1 {
			off = i * 100 / (len(stops) - 1)
		}
		oc[i] = svg.Offcolor{Offset: uint8(off), Color: c, Opacity: 1}
	}
	return oc
}

func drawShape(canvas *svg.SVG, s Shape) {
	attrs := attributes(s)
	switch s.Kind {
	case Rect:
		canvas.Rect(px(s.X), px(s.Y), px(math.Max(0, s.W)), px(math.Max(0, s.H)), attrs...)
	case Circle:
		canvas.Circle(px(s.X), px(s.Y), px(s.R), attrs...)
	case Path:
		canvas.Path(s.D, attrs...)
	case Line:
		canvas.Line(px(s.X), px(s.Y), px(s.X2), px(s.Y2), attrs...)
	case Text:
		if s.Rotate != 0 {
			attrs = append(attrs, fmt.Sprintf(`transform="rotate(%s %s %s)"`, Num(s.Rotate), Num(s.X), Num(s.Y)))
		}
		canvas.Text(px(s.X), px(s.Y), s.Text, attrs...)
	}
}

// attributes returns the SVG attributes of s. svgo passes arguments
// containing "=" through as attributes.
func attributes(s Shape) []string {
	var a []string
	if s.Class != "" {
		a = append(a, fmt.Sprintf(`class="%s"`, s.Class))
	}
	if s.Fill != "" {
		a = append(a, fmt.Sprintf(`fill="%s"`, s.Fill))
	}
	if s.Stroke != "" {
		a = append(a, fmt.Sprintf(`stroke="%s"`, s.Stroke))
	}
	if s.StrokeWidth != 0 {
		a = append(a, fmt.Sprintf(`stroke-width="%s"`, Num(s.StrokeWidth)))
	}
	if s.Anchor != "" {
		a = append(a, fmt.Sprintf(`text-anchor="%s"`, s.Anchor))
	}
	if s.FontSize != 0 {
		a = append(a, fmt.Sprintf(`font-size="%s"`, Num(s.FontSize)))
	}
	return a
}

func px(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Round(x))
}
