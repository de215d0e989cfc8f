// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"strconv"

	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
	"github.com/vizlab/chartwork/layout"
	"github.com/vizlab/chartwork/tooltip"
)

// Colors of the rectangles of the events demo, and the fill of a
// rectangle that is not hovered.
var (
	RectColors = []string{"yellowgreen", "cornflowerblue", "seagreen", "slateblue"}
	IdleFill   = "lightgrey"
)

const (
	rectSize = 100
	rectGap  = 10
)

// Events is a row of rectangles that take their color while the
// pointer is over them.
type Events struct {
	interaction
	fills []string
}

// NewEvents builds the events demo.
func NewEvents() *Events {
	n := len(RectColors)
	w := float64(n*rectSize + (n-1)*rectGap)
	c := &Events{fills: make([]string, n)}
	c.dims = layout.New(w, rectSize, layout.Margins{})
	c.tip = tooltip.New(c.dims, nil, nil)
	for i := range c.fills {
		c.fills[i] = IdleFill
	}

	shapes := c.rects()
	table := events.Bind(shapes, func(s draw.Shape) (events.Handlers, bool) {
		i := rectIndex(s.Key)
		return events.Handlers{
			Enter: func(events.Event) { c.fills[i] = RectColors[i] },
			Leave: func(events.Event) { c.fills[i] = IdleFill },
		}, true
	})
	c.bind(table, func(x, y float64) (string, bool) {
		for _, s := range shapes {
			if s.Contains(x, y) {
				return s.Key, true
			}
		}
		return "", false
	})
	return c
}

func rectIndex(key string) int {
	i, _ := strconv.Atoi(key[len("rect/"):])
	return i
}

func (c *Events) rects() []draw.Shape {
	shapes := make([]draw.Shape, len(c.fills))
	for i, fill := range c.fills {
		shapes[i] = draw.Shape{
			Key: "rect/" + strconv.Itoa(i), Kind: draw.Rect, Class: "rect",
			X: float64(i * (rectSize + rectGap)), W: rectSize, H: rectSize,
			Style: draw.Style{Fill: fill},
		}
	}
	return shapes
}

// Fills returns the current fill of each rectangle.
func (c *Events) Fills() []string {
	return append([]string(nil), c.fills...)
}

// Frame returns the rectangles in their current colors.
func (c *Events) Frame() *draw.Frame {
	f := c.frame()
	f.Shapes = c.rects()
	return f
}
