// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"math"
	"time"

	"github.com/vizlab/chartwork/dataset"
	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
	"github.com/vizlab/chartwork/internal/format"
	"github.com/vizlab/chartwork/layout"
	"github.com/vizlab/chartwork/nearest"
	"github.com/vizlab/chartwork/scales"
	"github.com/vizlab/chartwork/tooltip"
)

// scanLimit is the most records the line chart resolves the pointer
// against by scanning them all. Larger datasets use binary search.
const scanLimit = 512

// LineConfig configures a line chart.
type LineConfig struct {
	Dims layout.Dimensions
	// Limit is the number of earliest records to plot. 0 plots
	// them all.
	Limit int
	// Freezing is the temperature below which the chart is shaded.
	Freezing float64
}

// Line is a line chart of maximum temperature over time. The tooltip
// follows the record whose date is closest to the pointer.
type Line struct {
	interaction
	recs  []dataset.Weather
	xs    []float64 // record dates in Unix seconds
	x     scales.Time
	y     scales.Linear
	base  *draw.Frame
	useBS bool
}

const listeningRect = "listening-rect"

// NewLine builds a line chart of ws. ws is not modified.
func NewLine(ws []dataset.Weather, cfg LineConfig) *Line {
	recs := append([]dataset.Weather(nil), ws...)
	dataset.SortByDate(recs)
	if cfg.Limit > 0 && len(recs) > cfg.Limit {
		recs = recs[:cfg.Limit]
	}
	c := &Line{recs: recs, useBS: len(recs) > scanLimit}
	d := cfg.Dims

	// The y scale only depends on the height, so its tick labels
	// can decide the left margin before the x scale is built.
	lo, hi, _ := scales.Extent(len(recs), func(i int) float64 { return recs[i].TemperatureMax })
	y, err := scales.NewLinear([2]float64{lo, hi}, [2]float64{d.BoundedHeight, 0})
	c.warn(err)
	yTicks := ticks(y.Ticks(10), y.Map, format.Tick)
	d = d.FitLeft(tickLabels(yTicks), 10)
	c.dims = d
	c.y = y

	epoch := time.Unix(0, 0).UTC()
	dom := [2]time.Time{epoch, epoch}
	if len(recs) > 0 {
		dom = [2]time.Time{recs[0].Date, recs[len(recs)-1].Date}
	}
	x, err := scales.NewTime(dom, [2]float64{0, d.BoundedWidth})
	c.warn(err)
	c.x = x
	c.xs = make([]float64, len(recs))
	for i, r := range recs {
		c.xs[i] = float64(r.Date.Unix())
	}

	c.base = c.build(cfg, yTicks)

	marker := draw.Shape{
		Key: "tooltip-circle", Kind: draw.Circle, Class: "tooltip-circle", R: 4,
		Style: draw.Style{Fill: "white", Stroke: "#af9358", StrokeWidth: 2},
	}
	c.tip = tooltip.New(d, c.content, &marker)

	resolve := func(ev events.Event) {
		i := c.Nearest(ev.X)
		if i < 0 {
			c.tip.Hide()
			return
		}
		c.tip.Show(i, c.x.Map(recs[i].Date), c.y.Map(recs[i].TemperatureMax))
	}
	table := events.Bind(c.base.Shapes, func(s draw.Shape) (events.Handlers, bool) {
		return events.Handlers{
			Enter: resolve,
			Move:  resolve,
			Leave: func(events.Event) { c.tip.Hide() },
		}, s.Key == listeningRect
	})
	c.bind(table, func(x, y float64) (string, bool) {
		r, _ := c.base.Lookup(listeningRect)
		return listeningRect, r.Contains(x, y)
	})
	return c
}

func (c *Line) build(cfg LineConfig, yTicks []draw.Tick) *draw.Frame {
	d := c.dims
	f := c.frame()

	freeze := math.Min(math.Max(c.y.Map(cfg.Freezing), 0), d.BoundedHeight)
	pts := make([]draw.Point, len(c.recs))
	for i, r := range c.recs {
		pts[i] = draw.Point{X: c.x.Map(r.Date), Y: c.y.Map(r.TemperatureMax)}
	}
	f.Shapes = append(f.Shapes,
		draw.Shape{
			Key: "freezing", Kind: draw.Rect, Layer: draw.Clipped, Class: "freezing",
			Y: freeze, W: d.BoundedWidth, H: math.Max(0, d.BoundedHeight-freeze),
			Style: draw.Style{Fill: "#e0f3f3"},
		},
		draw.Shape{
			Key: "line", Kind: draw.Path, Layer: draw.Clipped, Class: "line",
			D:     draw.LinePath(pts),
			Style: draw.Style{Fill: "none", Stroke: "#af9358", StrokeWidth: 2},
		})

	f.Shapes = append(f.Shapes, draw.Axis{
		Key: "y-axis", Ticks: yTicks, Length: d.BoundedHeight,
		Label: "Maximum Temperature (°F)", LabelOffset: d.Margin.Left - 10,
	}.Left()...)

	tvals, tl := c.x.Ticks(10)
	xTicks := make([]draw.Tick, len(tvals))
	for i, t := range tvals {
		xTicks[i] = draw.Tick{Pos: c.x.Map(t), Label: t.Format(tl)}
	}
	f.Shapes = append(f.Shapes, draw.Axis{
		Key: "x-axis", Ticks: xTicks, Length: d.BoundedWidth, Offset: d.BoundedHeight,
	}.Bottom()...)

	f.Shapes = append(f.Shapes, draw.Shape{
		Key: listeningRect, Kind: draw.Rect, Class: listeningRect,
		W: d.BoundedWidth, H: d.BoundedHeight,
		Style: draw.Style{Fill: "transparent"},
	})
	return f
}

// Records returns the plotted records, sorted by date.
func (c *Line) Records() []dataset.Weather {
	return c.recs
}

// Nearest returns the index of the record whose date is closest to
// the date at bounds x-position px, or -1 if there are no records.
func (c *Line) Nearest(px float64) int {
	t := float64(c.x.Invert(px).Unix())
	if c.useBS {
		return nearest.Bisect(c.xs, t)
	}
	return nearest.ScanX(c.xs, t)
}

func (c *Line) content(i int) []tooltip.Field {
	r := c.recs[i]
	return []tooltip.Field{
		{ID: "date", Text: format.Date(r.Date)},
		{ID: "temperature", Text: format.Temperature(r.TemperatureMax)},
	}
}

// Frame returns the chart with the tooltip marker, if it is showing.
func (c *Line) Frame() *draw.Frame {
	return c.withMarker(c.base)
}
