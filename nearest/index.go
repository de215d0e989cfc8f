// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nearest

import (
	"math"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Point
}

// Index partitions a rectangle into one region per point: the region
// of point i is the set of positions closer to point i than to any
// other point (its Voronoi cell). Index is immutable; rebuild it when
// the points or the scales that produced them change.
//
// Points with NaN coordinates are left out. If several points are
// equal, the region belongs to the first of them and the others have
// none.
type Index struct {
	points []Point
	tree   *kdtree.Tree
	owner  map[Point]int
	cells  [][]Point
}

// NewIndex builds the region lookup structure for points, with
// regions clipped to bounds.
func NewIndex(points []Point, bounds Rect) *Index {
	ix := &Index{
		points: append([]Point(nil), points...),
		owner:  make(map[Point]int),
		cells:  make([][]Point, len(points)),
	}
	var sites []int
	var kps kdtree.Points
	for i, p := range ix.points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		if _, dup := ix.owner[p]; dup {
			continue
		}
		ix.owner[p] = i
		sites = append(sites, i)
		kps = append(kps, kdtree.Point{p.X, p.Y})
	}
	if len(kps) > 0 {
		// kdtree.New reorders kps, which is why owner maps
		// positions rather than slice indexes.
		ix.tree = kdtree.New(kps, false)
	}
	nbrs := ix.neighbors(sites)
	for k, i := range sites {
		ix.cells[i] = ix.cell(i, nbrs[k], bounds)
	}
	return ix
}

// neighbors returns, for each site, the sites whose regions can share
// an edge with its region. These are its neighbors in the Delaunay
// triangulation. If there is no triangulation, as when every site is
// on one line, every other site is a neighbor.
func (ix *Index) neighbors(sites []int) [][]int {
	nbrs := make([][]int, len(sites))
	dps := make([]delaunay.Point, len(sites))
	for k, i := range sites {
		dps[k] = delaunay.Point{X: ix.points[i].X, Y: ix.points[i].Y}
	}
	var tri *delaunay.Triangulation
	if len(sites) >= 3 {
		if t, err := delaunay.Triangulate(dps); err == nil {
			tri = t
		}
	}
	if tri != nil {
		seen := make([]map[int]bool, len(sites))
		add := func(a, b int) {
			if seen[a] == nil {
				seen[a] = make(map[int]bool)
			}
			if !seen[a][b] {
				seen[a][b] = true
				nbrs[a] = append(nbrs[a], sites[b])
			}
		}
		ts := tri.Triangles
		for t := 0; t+2 < len(ts); t += 3 {
			for e := 0; e < 3; e++ {
				a, b := ts[t+e], ts[t+(e+1)%3]
				add(a, b)
				add(b, a)
			}
		}
	}
	for k, i := range sites {
		if len(nbrs[k]) > 0 || len(sites) == 1 {
			continue
		}
		// Not triangulated.
		for _, j := range sites {
			if j != i {
				nbrs[k] = append(nbrs[k], j)
			}
		}
	}
	return nbrs
}

// Len returns the number of points the index was built from.
func (ix *Index) Len() int {
	return len(ix.points)
}

// Find returns the index of the point whose region contains (x, y):
// the nearest point, or the lowest-indexed one if several are equally
// near. It returns -1 if the index is empty or x or y is NaN.
func (ix *Index) Find(x, y float64) int {
	if ix.tree == nil || math.IsNaN(x) || math.IsNaN(y) {
		return -1
	}
	q := kdtree.Point{x, y}
	c, d := ix.tree.Nearest(q)
	best := ix.ownerOf(c)

	// Points on a region boundary are equally near to more than
	// one point.
	keep := kdtree.NewDistKeeper(d)
	ix.tree.NearestSet(keep, q)
	for _, cd := range keep.Heap {
		if i := ix.ownerOf(cd.Comparable); i >= 0 && (best < 0 || i < best) {
			best = i
		}
	}
	return best
}

func (ix *Index) ownerOf(c kdtree.Comparable) int {
	p, ok := c.(kdtree.Point)
	if !ok || len(p) != 2 {
		return -1
	}
	i, ok := ix.owner[Point{p[0], p[1]}]
	if !ok {
		return -1
	}
	return i
}

// Cell returns the polygon bounding the region of point i, or nil if
// i has no region. The polygon is convex and its vertices are in
// order; it is not closed (the last vertex does not repeat the first).
func (ix *Index) Cell(i int) []Point {
	if i < 0 || i >= len(ix.cells) {
		return nil
	}
	return ix.cells[i]
}

// cell computes the region of site i by clipping bounds against the
// half-plane of positions closer to i than to each neighboring site.
func (ix *Index) cell(i int, sites []int, bounds Rect) []Point {
	poly := []Point{
		{bounds.Min.X, bounds.Min.Y},
		{bounds.Max.X, bounds.Min.Y},
		{bounds.Max.X, bounds.Max.Y},
		{bounds.Min.X, bounds.Max.Y},
	}
	p := ix.points[i]
	for _, j := range sites {
		if j == i {
			continue
		}
		q := ix.points[j]
		// Positions v with |v-p|² <= |v-q|², that is
		// (q-p)·v <= (|q|²-|p|²)/2.
		a, b := q.X-p.X, q.Y-p.Y
		c := (q.X*q.X + q.Y*q.Y - p.X*p.X - p.Y*p.Y) / 2
		poly = clip(poly, a, b, c)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// clip returns the part of convex polygon poly in the half-plane
// a·x + b·y <= c (Sutherland-Hodgman).
func clip(poly []Point, a, b, c float64) []Point {
	out := make([]Point, 0, len(poly)+1)
	inside := func(v Point) bool { return a*v.X+b*v.Y <= c }
	for k, cur := range poly {
		prev := poly[(k+len(poly)-1)%len(poly)]
		cin, pin := inside(cur), inside(prev)
		if cin != pin {
			// The edge crosses the boundary line.
			dp := a*prev.X + b*prev.Y - c
			dc := a*cur.X + b*cur.Y - c
			t := dp / (dp - dc)
			out = append(out, Point{prev.X + t*(cur.X-prev.X), prev.Y + t*(cur.Y-prev.Y)})
		}
		if cin {
			out = append(out, cur)
		}
	}
	return out
}
