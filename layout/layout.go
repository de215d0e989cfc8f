// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the pixel dimensions of a chart.
//
// A chart is drawn on a surface of Width×Height pixels. The margins
// reserve room for axes and labels around the bounds, the inner area
// where data is drawn. Dimensions are values: every function here
// returns a new Dimensions rather than modifying one.
package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Margins is the space reserved on each side of the bounds, in
// pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Dimensions describes a chart's drawing surface and its bounds.
type Dimensions struct {
	Width, Height float64
	Margin        Margins

	// BoundedWidth and BoundedHeight are the size of the area
	// inside the margins. They are never negative.
	BoundedWidth, BoundedHeight float64
}

// New returns the Dimensions of a width×height surface with margins
// m. If the margins do not fit, the bounded size is 0.
func New(width, height float64, m Margins) Dimensions {
	return Dimensions{
		Width:         width,
		Height:        height,
		Margin:        m,
		BoundedWidth:  nonNeg(width - m.Left - m.Right),
		BoundedHeight: nonNeg(height - m.Top - m.Bottom),
	}
}

// Square returns square Dimensions whose side is frac of the smaller
// of the viewport's width and height.
func Square(viewWidth, viewHeight, frac float64, m Margins) Dimensions {
	side := viewWidth * frac
	if h := viewHeight * frac; h < side {
		side = h
	}
	return New(side, side, m)
}

// Fraction returns Dimensions that are frac of the viewport's width
// and a fixed height.
func Fraction(viewWidth, frac, height float64, m Margins) Dimensions {
	return New(viewWidth*frac, height, m)
}

// WithBoundedHeight returns a copy of d whose bounded height is h and
// whose height is grown or shrunk to fit it. This is used when the
// height of the bounds follows from the content, as with a map
// projection fit to a width.
func (d Dimensions) WithBoundedHeight(h float64) Dimensions {
	h = nonNeg(h)
	return New(d.Width, h+d.Margin.Top+d.Margin.Bottom, d.Margin)
}

// LabelWidth returns the width in pixels of s set in the fixed-width
// face used for tick labels.
func LabelWidth(s string) float64 {
	return float64(font.MeasureString(basicfont.Face7x13, s).Ceil())
}

// FitLeft returns a copy of d whose left margin is wide enough to
// hold the widest of labels plus pad pixels. The margin is never
// narrowed.
func (d Dimensions) FitLeft(labels []string, pad float64) Dimensions {
	need := 0.0
	for _, l := range labels {
		if w := LabelWidth(l); w > need {
			need = w
		}
	}
	need += pad
	if need <= d.Margin.Left {
		return d
	}
	m := d.Margin
	m.Left = need
	return New(d.Width, d.Height, m)
}

func nonNeg(x float64) float64 {
	// Also catches NaN.
	if !(x > 0) {
		return 0
	}
	return x
}
