// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charts

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"golang.org/x/image/colornames"

	"github.com/vizlab/chartwork/dataset"
	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/events"
	"github.com/vizlab/chartwork/geo"
	"github.com/vizlab/chartwork/internal/format"
	"github.com/vizlab/chartwork/layout"
	"github.com/vizlab/chartwork/scales"
	"github.com/vizlab/chartwork/tooltip"
)

// NoDataFill is the fill of countries without a value.
const NoDataFill = "#e2e6e9"

// MapConfig configures a choropleth map.
type MapConfig struct {
	// Dims gives the width and margins. The height follows from the
	// projection.
	Dims layout.Dimensions
	// Metric names the indicator series shown.
	Metric string
	// Title heads the legend. If it is empty, the legend shows
	// Metric.
	Title string
	// Domain is the value mapped to the ends of the color scale:
	// -Domain is indigo, 0 white, and +Domain dark green.
	Domain float64
	// Locate, if not nil, is a longitude and latitude to mark.
	Locate *orb.Point
}

// Map is a world map with countries colored by an indicator value.
type Map struct {
	interaction
	countries []dataset.Country
	values    map[string]float64
	proj      geo.Projection
	projected []orb.Geometry
	color     scales.Piecewise
	maxChange float64
	base      *draw.Frame
}

const countryPrefix = "country/"

// NewMap builds a map of countries colored by values, keyed by
// country code.
func NewMap(countries []dataset.Country, values map[string]float64, cfg MapConfig) *Map {
	c := &Map{countries: countries, values: values}
	proj, h := geo.FitWidth(cfg.Dims.BoundedWidth)
	c.proj = proj
	c.dims = cfg.Dims.WithBoundedHeight(h)

	dom := cfg.Domain
	if dom == 0 {
		dom = 5
	}
	var err error
	c.color, err = scales.NewPiecewise(
		[]float64{-math.Abs(dom), 0, math.Abs(dom)},
		[]color.RGBA{colornames.Indigo, colornames.White, colornames.Darkgreen})
	c.warn(err)

	vals := make([]float64, 0, len(values))
	for _, v := range values {
		vals = append(vals, v)
	}
	if lo, hi, ok := scales.Extent(len(vals), func(i int) float64 { return vals[i] }); ok {
		c.maxChange = math.Max(-lo, hi)
	}

	c.projected = make([]orb.Geometry, len(countries))
	for i, ct := range countries {
		c.projected[i] = proj.Project(ct.Geometry)
	}

	c.base = c.build(cfg)
	c.tip = tooltip.New(c.dims, c.content, nil)

	table := events.Bind(c.base.Shapes, func(s draw.Shape) (events.Handlers, bool) {
		return events.Handlers{
			Enter: func(ev events.Event) {
				i := c.countryIndex(ev.Key)
				x, y := geo.Centroid(c.projected[i])
				c.tip.Show(i, x, y)
			},
			Leave: func(events.Event) { c.tip.Hide() },
		}, strings.HasPrefix(s.Key, countryPrefix)
	})
	c.bind(table, func(x, y float64) (string, bool) {
		i := c.CountryAt(x, y)
		if i < 0 {
			return "", false
		}
		return countryPrefix + strconv.Itoa(i), true
	})
	return c
}

func (c *Map) build(cfg MapConfig) *draw.Frame {
	d := c.dims
	f := c.frame()

	f.Shapes = append(f.Shapes,
		draw.Shape{
			Key: "earth", Kind: draw.Path, Class: "earth", D: c.proj.Sphere(),
			Style: draw.Style{Fill: "#f2f2f7"},
		},
		draw.Shape{
			Key: "graticule", Kind: draw.Path, Class: "graticule", D: c.proj.Graticule10(),
			Style: draw.Style{Fill: "none", Stroke: "#cadddd"},
		})

	for i, ct := range c.countries {
		f.Shapes = append(f.Shapes, draw.Shape{
			Key: countryPrefix + strconv.Itoa(i), Kind: draw.Path, Class: "country",
			D:     geo.Path(c.projected[i]),
			Style: draw.Style{Fill: c.Fill(ct.ID), Stroke: "white"},
		})
	}

	if cfg.Locate != nil {
		x, y := c.proj.Point(cfg.Locate.Lon(), cfg.Locate.Lat())
		f.Shapes = append(f.Shapes, draw.Shape{
			Key: "my-location", Kind: draw.Circle, Class: "my-location",
			X: x, Y: y, R: 10,
			Style: draw.Style{Fill: "#918ad2", Stroke: "white", StrokeWidth: 2},
		})
	}

	// The legend sits on the left, halfway down on wide maps and at
	// the bottom on narrow ones.
	const legendW, legendH = 120, 16
	lx, ly := 120.0, d.BoundedHeight*0.5
	if d.Width < 800 {
		ly = d.BoundedHeight - 30
	}
	stops := c.color.Range()
	g := draw.Gradient{ID: "legend-gradient"}
	for _, s := range stops {
		g.Stops = append(g.Stops, scales.Hex(s))
	}
	f.Gradients = append(f.Gradients, g)
	title := cfg.Title
	if title == "" {
		title = cfg.Metric
	}
	if title == "" {
		title = "Population growth"
	}
	f.Shapes = append(f.Shapes,
		draw.Shape{
			Key: "legend/title", Kind: draw.Text, Layer: draw.Wrapper, Class: "legend-title",
			X: lx, Y: ly - 23, Text: title,
			Style: draw.Style{Anchor: "middle", FontSize: 14},
		},
		draw.Shape{
			Key: "legend/byline", Kind: draw.Text, Layer: draw.Wrapper, Class: "legend-byline",
			X: lx, Y: ly - 9, Text: "percent change in 2017",
			Style: draw.Style{Anchor: "middle", FontSize: 10, Fill: "#5a5a5a"},
		},
		draw.Shape{
			Key: "legend/gradient", Kind: draw.Rect, Layer: draw.Wrapper, Class: "legend-gradient",
			X: lx - legendW/2, Y: ly, W: legendW, H: legendH,
			Style: draw.Style{Fill: "url(#" + g.ID + ")"},
		},
		draw.Shape{
			Key: "legend/max", Kind: draw.Text, Layer: draw.Wrapper, Class: "legend-value",
			X: lx + legendW/2 + 10, Y: ly + legendH/2, Text: format.Fixed(c.maxChange, 1) + "%",
			Style: draw.Style{FontSize: 10},
		},
		draw.Shape{
			Key: "legend/min", Kind: draw.Text, Layer: draw.Wrapper, Class: "legend-value",
			X: lx - legendW/2 - 10, Y: ly + legendH/2, Text: format.Fixed(-c.maxChange, 1) + "%",
			Style: draw.Style{Anchor: "end", FontSize: 10},
		})
	return f
}

// Fill returns the fill color of the country with code id.
func (c *Map) Fill(id string) string {
	v, ok := c.values[id]
	if !ok {
		return NoDataFill
	}
	return scales.Hex(c.color.Map(v))
}

// CountryAt returns the index of the first country containing the
// bounds position (x, y), or -1.
func (c *Map) CountryAt(x, y float64) int {
	for i, g := range c.projected {
		if geo.Contains(g, x, y) {
			return i
		}
	}
	return -1
}

// MaxChange returns the largest magnitude of any value.
func (c *Map) MaxChange() float64 {
	return c.maxChange
}

func (c *Map) countryIndex(key string) int {
	i, _ := strconv.Atoi(strings.TrimPrefix(key, countryPrefix))
	return i
}

func (c *Map) content(i int) []tooltip.Field {
	ct := c.countries[i]
	text := "no data"
	if v, ok := c.values[ct.ID]; ok {
		text = format.Percent(v)
	}
	return []tooltip.Field{
		{ID: "country", Text: ct.Name},
		{ID: "value", Text: text},
	}
}

// Frame returns the map.
func (c *Map) Frame() *draw.Frame {
	return c.base
}
