// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo projects geographic shapes onto a chart.
//
// Shapes are orb geometries in longitude/latitude degrees. Project
// returns a copy in screen pixels, which Path, Centroid, and Contains
// then work with.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/project"

	"github.com/vizlab/chartwork/draw"
)

// Equal Earth projection coefficients (Šavrič, Patterson, Jenny 2018).
const (
	a1 = 1.340264
	a2 = -0.081106
	a3 = 0.000893
	a4 = 0.003796
)

var m = math.Sqrt(3) / 2

// equalEarth projects λ, φ in radians to unscaled x, y with y up.
func equalEarth(lambda, phi float64) (x, y float64) {
	t := math.Asin(m * math.Sin(phi))
	t2 := t * t
	t6 := t2 * t2 * t2
	x = lambda * math.Cos(t) / (m * (a1 + 3*a2*t2 + t6*(7*a3+9*a4*t2)))
	y = t * (a1 + a2*t2 + t6*(a3+a4*t2))
	return x, y
}

// Projection is an Equal Earth projection scaled and translated onto
// the screen, with y growing downward.
type Projection struct {
	k, tx, ty float64
}

// FitWidth returns the projection that fits the whole globe into
// width pixels, and the height in pixels of the projected globe.
func FitWidth(width float64) (Projection, float64) {
	xmin, _ := equalEarth(-math.Pi, 0)
	xmax, _ := equalEarth(math.Pi, 0)
	_, ymin := equalEarth(0, -math.Pi/2)
	_, ymax := equalEarth(0, math.Pi/2)
	k := width / (xmax - xmin)
	p := Projection{k: k, tx: -k * xmin, ty: k * ymax}
	return p, k * (ymax - ymin)
}

// Point projects a longitude and latitude in degrees to the screen.
func (p Projection) Point(lon, lat float64) (x, y float64) {
	ux, uy := equalEarth(lon*math.Pi/180, lat*math.Pi/180)
	return p.tx + p.k*ux, p.ty - p.k*uy
}

// Project returns a copy of g projected to the screen.
func (p Projection) Project(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return project.Geometry(orb.Clone(g), func(pt orb.Point) orb.Point {
		x, y := p.Point(pt[0], pt[1])
		return orb.Point{x, y}
	})
}

// Sphere returns the path data of the outline of the globe.
func (p Projection) Sphere() string {
	var ring []draw.Point
	for lat := -90.0; lat <= 90; lat += 2.5 {
		x, y := p.Point(-180, lat)
		ring = append(ring, draw.Point{X: x, Y: y})
	}
	for lat := 90.0; lat >= -90; lat -= 2.5 {
		x, y := p.Point(180, lat)
		ring = append(ring, draw.Point{X: x, Y: y})
	}
	return draw.PolygonPath(ring)
}

// Graticule10 returns the path data of a graticule with meridians and
// parallels every 10°. Meridians stop at ±80° latitude, except every
// 90° where they reach the poles.
func (p Projection) Graticule10() string {
	var d string
	line := func(pts []draw.Point) {
		d += draw.LinePath(pts)
	}
	for lon := -180.0; lon <= 180; lon += 10 {
		lo, hi := -80.0, 80.0
		if math.Mod(lon, 90) == 0 {
			lo, hi = -90, 90
		}
		var pts []draw.Point
		for lat := lo; lat <= hi; lat += 2.5 {
			x, y := p.Point(lon, lat)
			pts = append(pts, draw.Point{X: x, Y: y})
		}
		line(pts)
	}
	for lat := -80.0; lat <= 80; lat += 10 {
		var pts []draw.Point
		for lon := -180.0; lon <= 180; lon += 2.5 {
			x, y := p.Point(lon, lat)
			pts = append(pts, draw.Point{X: x, Y: y})
		}
		line(pts)
	}
	return d
}

// Path returns the SVG path data of a projected geometry. Polygons
// are closed; lines are not. Points are not drawn.
func Path(g orb.Geometry) string {
	switch g := g.(type) {
	case orb.Polygon:
		rings := make([][]draw.Point, len(g))
		for i, r := range g {
			rings[i] = points(r)
		}
		return draw.PolygonPath(rings...)
	case orb.MultiPolygon:
		var d string
		for _, poly := range g {
			d += Path(poly)
		}
		return d
	case orb.Ring:
		return draw.PolygonPath(points(g))
	case orb.LineString:
		return draw.LinePath(points(g))
	case orb.MultiLineString:
		var d string
		for _, ls := range g {
			d += draw.LinePath(points(ls))
		}
		return d
	case orb.Collection:
		var d string
		for _, sub := range g {
			d += Path(sub)
		}
		return d
	}
	return ""
}

func points(ps []orb.Point) []draw.Point {
	out := make([]draw.Point, len(ps))
	for i, p := range ps {
		out[i] = draw.Point{X: p[0], Y: p[1]}
	}
	return out
}

// Centroid returns the area-weighted center of a projected geometry.
func Centroid(g orb.Geometry) (x, y float64) {
	c, _ := planar.CentroidArea(g)
	return c[0], c[1]
}

// Contains reports whether the projected polygon g contains (x, y).
func Contains(g orb.Geometry, x, y float64) bool {
	pt := orb.Point{x, y}
	switch g := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(g, pt)
	case orb.Ring:
		return planar.RingContains(g, pt)
	case orb.Collection:
		for _, sub := range g {
			if Contains(sub, x, y) {
				return true
			}
		}
	}
	return false
}
