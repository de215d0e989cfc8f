// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vizlab/chartwork/dataset"
	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
	"github.com/vizlab/chartwork/internal/format"
	"github.com/vizlab/chartwork/layout"
	"github.com/vizlab/chartwork/nearest"
	"github.com/vizlab/chartwork/scales"
	"github.com/vizlab/chartwork/tooltip"
)

// ScatterConfig configures a scatterplot.
type ScatterConfig struct {
	Dims layout.Dimensions
	// Trend adds a least squares trend line.
	Trend bool
}

// Scatter is a scatterplot of humidity against dew point, colored by
// cloud cover. The bounds are divided into one region per dot, and the
// tooltip describes the dot whose region is under the pointer.
type Scatter struct {
	interaction
	recs  []dataset.Weather
	x, y  scales.Linear
	color scales.Color
	index *nearest.Index
	base  *draw.Frame
	trend Trend
	fit   bool
}

const voronoiPrefix = "voronoi/"

// NewScatter builds a scatterplot of ws.
func NewScatter(ws []dataset.Weather, cfg ScatterConfig) *Scatter {
	recs := append([]dataset.Weather(nil), ws...)
	c := &Scatter{recs: recs}
	d := cfg.Dims

	dew := func(i int) float64 { return recs[i].DewPoint }
	hum := func(i int) float64 { return recs[i].Humidity }
	cloud := func(i int) float64 { return recs[i].CloudCover }

	lo, hi, _ := scales.Extent(len(recs), hum)
	y, err := scales.NewLinear([2]float64{lo, hi}, [2]float64{d.BoundedHeight, 0})
	c.warn(err)
	c.y = y.Nice(10)
	yTicks := ticks(c.y.Ticks(4), c.y.Map, format.Tick)
	d = d.FitLeft(tickLabels(yTicks), 10)
	c.dims = d

	lo, hi, _ = scales.Extent(len(recs), dew)
	x, err := scales.NewLinear([2]float64{lo, hi}, [2]float64{0, d.BoundedWidth})
	c.warn(err)
	c.x = x.Nice(10)

	lo, hi, _ = scales.Extent(len(recs), cloud)
	c.color, err = scales.NewColor([2]float64{lo, hi}, colornames.Skyblue, colornames.Darkslategray)
	c.warn(err)

	pts := make([]nearest.Point, len(recs))
	xs := make([]float64, len(recs))
	ys := make([]float64, len(recs))
	for i := range recs {
		xs[i], ys[i] = dew(i), hum(i)
		pts[i] = nearest.Point{X: c.x.Map(xs[i]), Y: c.y.Map(ys[i])}
	}
	c.index = nearest.NewIndex(pts, nearest.Rect{Max: nearest.Point{X: d.BoundedWidth, Y: d.BoundedHeight}})
	if cfg.Trend {
		c.trend, c.fit = FitTrend(xs, ys)
	}

	c.base = c.build(pts, yTicks)

	dot := draw.Shape{
		Key: "tooltip-dot", Kind: draw.Circle, Class: "tooltip-dot", R: 7,
		Style: draw.Style{Fill: "maroon"},
	}
	c.tip = tooltip.New(d, c.content, &dot)

	show := func(ev events.Event) {
		i := regionIndex(ev.Key)
		c.tip.Show(i, pts[i].X, pts[i].Y)
	}
	table := events.Bind(c.base.Shapes, func(s draw.Shape) (events.Handlers, bool) {
		return events.Handlers{
			Enter: show,
			Leave: func(events.Event) { c.tip.Hide() },
		}, strings.HasPrefix(s.Key, voronoiPrefix)
	})
	c.bind(table, func(x, y float64) (string, bool) {
		if x < 0 || y < 0 || x > d.BoundedWidth || y > d.BoundedHeight {
			return "", false
		}
		i := c.index.Find(x, y)
		if i < 0 {
			return "", false
		}
		return voronoiPrefix + strconv.Itoa(i), true
	})
	return c
}

func regionIndex(key string) int {
	i, _ := strconv.Atoi(strings.TrimPrefix(key, voronoiPrefix))
	return i
}

func (c *Scatter) build(pts []nearest.Point, yTicks []draw.Tick) *draw.Frame {
	d := c.dims
	f := c.frame()

	for i, r := range c.recs {
		f.Shapes = append(f.Shapes, draw.Shape{
			Key: "dot/" + strconv.Itoa(i), Kind: draw.Circle, Class: "dot",
			X: pts[i].X, Y: pts[i].Y, R: 5,
			Style: draw.Style{Fill: scales.Hex(c.color.Map(r.CloudCover))},
		})
	}

	if c.fit {
		dom := c.x.Domain()
		f.Shapes = append(f.Shapes, draw.Shape{
			Key: "trend", Kind: draw.Line, Layer: draw.Clipped, Class: "trend",
			X: c.x.Map(dom[0]), Y: c.y.Map(c.trend.At(dom[0])),
			X2: c.x.Map(dom[1]), Y2: c.y.Map(c.trend.At(dom[1])),
			Style: draw.Style{Stroke: "maroon", StrokeWidth: 1.5},
		})
	}

	for i := range c.recs {
		cell := c.index.Cell(i)
		if cell == nil {
			continue
		}
		ring := make([]draw.Point, len(cell))
		for j, v := range cell {
			ring[j] = draw.Point{X: v.X, Y: v.Y}
		}
		f.Shapes = append(f.Shapes, draw.Shape{
			Key: voronoiPrefix + strconv.Itoa(i), Kind: draw.Path, Class: "voronoi",
			D:     draw.PolygonPath(ring),
			Style: draw.Style{Fill: "transparent"},
		})
	}

	xTicks := ticks(c.x.Ticks(10), c.x.Map, format.Tick)
	f.Shapes = append(f.Shapes, draw.Axis{
		Key: "x-axis", Ticks: xTicks, Length: d.BoundedWidth, Offset: d.BoundedHeight,
		Label: "Dew point (°F)", LabelOffset: d.Margin.Bottom - 10,
	}.Bottom()...)
	f.Shapes = append(f.Shapes, draw.Axis{
		Key: "y-axis", Ticks: yTicks, Length: d.BoundedHeight,
		Label: "Relative humidity", LabelOffset: d.Margin.Left - 10,
	}.Left()...)
	return f
}

// Find returns the index of the record whose region contains the
// bounds position (x, y), or -1.
func (c *Scatter) Find(x, y float64) int {
	return c.index.Find(x, y)
}

// Trend returns the fitted trend line, if the chart has one.
func (c *Scatter) Trend() (Trend, bool) {
	return c.trend, c.fit
}

func (c *Scatter) content(i int) []tooltip.Field {
	r := c.recs[i]
	return []tooltip.Field{
		{ID: "dew-point", Text: format.Fixed(r.DewPoint, 2)},
		{ID: "humidity", Text: format.Fixed(r.Humidity, 2)},
		{ID: "date", Text: format.Date(r.Date)},
	}
}

// Frame returns the chart with the tooltip dot, if it is showing.
func (c *Scatter) Frame() *draw.Frame {
	return c.withMarker(c.base)
}
