// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Piecewise is a color scale with several anchors. Between two
// neighboring anchors, it interpolates between their colors in
// sRGB. Values below the first anchor or above the last are clamped.
type Piecewise struct {
	anchors []float64
	colors  []color.RGBA
}

// NewPiecewise returns a piecewise color scale mapping anchors[i] to
// colors[i]. There must be at least two anchors, in increasing
// order. If two anchors are equal, it returns a *DegenerateScaleError.
func NewPiecewise(anchors []float64, colors []color.RGBA) (Piecewise, error) {
	if len(anchors) < 2 || len(anchors) != len(colors) {
		return Piecewise{}, fmt.Errorf("piecewise scale needs matching anchors and colors (got %d and %d, need at least 2)", len(anchors), len(colors))
	}
	p := Piecewise{
		anchors: append([]float64(nil), anchors...),
		colors:  append([]color.RGBA(nil), colors...),
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i] == anchors[i-1] {
			return p, &DegenerateScaleError{anchors[i-1], anchors[i]}
		}
		if !(anchors[i] > anchors[i-1]) {
			return Piecewise{}, fmt.Errorf("piecewise scale anchors not increasing: %v", anchors)
		}
	}
	return p, nil
}

// Map returns the color for x. NaN maps to the first color.
func (p Piecewise) Map(x float64) color.RGBA {
	n := len(p.anchors)
	if n == 0 {
		return color.RGBA{}
	}
	if math.IsNaN(x) {
		return p.colors[0]
	}
	i := sort.SearchFloat64s(p.anchors, x)
	switch {
	case i == 0:
		return p.colors[0]
	case i == n:
		return p.colors[n-1]
	case p.anchors[i] == x:
		return p.colors[i]
	}
	a0, a1 := p.anchors[i-1], p.anchors[i]
	if a0 == a1 {
		return p.colors[i]
	}
	return blend(p.colors[i-1], p.colors[i], (x-a0)/(a1-a0))
}

// Range returns the anchor colors in order.
func (p Piecewise) Range() []color.RGBA {
	return append([]color.RGBA(nil), p.colors...)
}

// Color is a two-stop color scale over a numeric domain.
type Color struct {
	t        Linear
	from, to color.RGBA
}

// NewColor returns a color scale mapping domain[0] to from and
// domain[1] to to, clamping outside the domain. A degenerate domain
// maps everything to the midpoint color.
func NewColor(domain [2]float64, from, to color.RGBA) (Color, error) {
	t, err := NewLinear(domain, [2]float64{0, 1})
	return Color{t, from, to}, err
}

// Map returns the color for x.
func (c Color) Map(x float64) color.RGBA {
	t := c.t.Map(x)
	switch {
	case math.IsNaN(t) || t <= 0:
		return c.from
	case t >= 1:
		return c.to
	}
	return blend(c.from, c.to, t)
}

// blend interpolates between a and b in sRGB, like a browser's
// default color interpolation.
func blend(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return color.RGBA{r, g, bl, 0xff}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

// Hex formats c as a #rrggbb color.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
