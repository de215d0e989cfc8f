// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nearest

import (
	"math"
	"math/rand"
	"testing"
)

func TestScanX(t *testing.T) {
	for _, test := range []struct {
		xs   []float64
		x    float64
		want int
	}{
		{[]float64{0, 10, 20}, 11, 1},
		{[]float64{0, 10, 20}, -100, 0},
		{[]float64{0, 10, 20}, 100, 2},
		// Ties go to the first record.
		{[]float64{0, 10, 20}, 15, 1},
		{[]float64{5, 5, 5}, 5, 0},
		{[]float64{20, 0, 10}, 5, 1},
		{nil, 3, -1},
		{[]float64{1, 2}, math.NaN(), -1},
	} {
		if got := ScanX(test.xs, test.x); got != test.want {
			t.Errorf("ScanX(%v, %v) = %v, want %v", test.xs, test.x, got, test.want)
		}
	}
}

func TestScanNaN(t *testing.T) {
	ds := []float64{math.NaN(), 3, 1, 1}
	if got := Scan(len(ds), func(i int) float64 { return ds[i] }); got != 2 {
		t.Errorf("Scan = %v, want 2", got)
	}
}

func TestBisectMatchesScan(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(20)
		xs := make([]float64, n)
		v := 0.0
		for i := range xs {
			// Small integer steps produce duplicates and ties.
			v += float64(r.Intn(3))
			xs[i] = v
		}
		for x := -2.0; x <= v+2; x += 0.5 {
			if got, want := Bisect(xs, x), ScanX(xs, x); got != want {
				t.Fatalf("Bisect(%v, %v) = %v, ScanX = %v", xs, x, got, want)
			}
		}
	}
}

func TestIndexFind(t *testing.T) {
	ix := NewIndex([]Point{{0, 0}, {10, 10}}, Rect{Point{0, 0}, Point{10, 10}})
	if got := ix.Find(1, 1); got != 0 {
		t.Errorf("Find(1, 1) = %v, want 0", got)
	}
	if got := ix.Find(9, 8); got != 1 {
		t.Errorf("Find(9, 8) = %v, want 1", got)
	}
	// On the boundary, the first point wins.
	if got := ix.Find(10, 0); got != 0 {
		t.Errorf("Find(10, 0) = %v, want 0", got)
	}
	if got := ix.Find(math.NaN(), 0); got != -1 {
		t.Errorf("Find(NaN, 0) = %v, want -1", got)
	}
}

func TestIndexEmpty(t *testing.T) {
	ix := NewIndex(nil, Rect{Point{0, 0}, Point{10, 10}})
	if got := ix.Find(1, 1); got != -1 {
		t.Errorf("Find on empty index = %v", got)
	}
	if ix.Cell(0) != nil {
		t.Errorf("Cell on empty index not nil")
	}
}

func TestIndexDuplicates(t *testing.T) {
	ix := NewIndex([]Point{{5, 5}, {1, 1}, {5, 5}, {math.NaN(), 2}}, Rect{Point{0, 0}, Point{10, 10}})
	if got := ix.Find(6, 6); got != 0 {
		t.Errorf("Find(6, 6) = %v, want 0", got)
	}
	if ix.Cell(2) != nil || ix.Cell(3) != nil {
		t.Errorf("duplicate or NaN point has a region")
	}
	if ix.Cell(0) == nil || ix.Cell(1) == nil {
		t.Errorf("missing region")
	}
}

func TestIndexMatchesScan(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	pts := make([]Point, 300)
	for i := range pts {
		pts[i] = Point{r.Float64() * 500, r.Float64() * 400}
	}
	ix := NewIndex(pts, Rect{Point{0, 0}, Point{500, 400}})
	for k := 0; k < 1000; k++ {
		x, y := r.Float64()*500, r.Float64()*400
		want := Scan(len(pts), func(i int) float64 {
			dx, dy := pts[i].X-x, pts[i].Y-y
			return dx*dx + dy*dy
		})
		if got := ix.Find(x, y); got != want {
			t.Fatalf("Find(%v, %v) = %v, want %v", x, y, got, want)
		}
	}
}

func TestCellsPartitionBounds(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pts := make([]Point, 50)
	for i := range pts {
		pts[i] = Point{r.Float64() * 200, r.Float64() * 100}
	}
	ix := NewIndex(pts, Rect{Point{0, 0}, Point{200, 100}})
	total := 0.0
	for i := range pts {
		cell := ix.Cell(i)
		total += area(cell)
		// The cell's own point is inside it.
		if !contains(cell, pts[i]) {
			t.Errorf("cell %d does not contain its point %v", i, pts[i])
		}
	}
	if math.Abs(total-200*100) > 1e-6 {
		t.Errorf("cells cover area %v, want %v", total, 200*100)
	}
}

func area(poly []Point) float64 {
	a := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

func contains(poly []Point, v Point) bool {
	// Convex polygon: v is on the same side of every edge.
	sign := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		cross := (q.X-p.X)*(v.Y-p.Y) - (q.Y-p.Y)*(v.X-p.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return true
}

func TestCellsMatchAllSites(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	pts := make([]Point, 80)
	for i := range pts {
		pts[i] = Point{r.Float64() * 300, r.Float64() * 200}
	}
	bounds := Rect{Point{0, 0}, Point{300, 200}}
	ix := NewIndex(pts, bounds)
	all := make([]int, len(pts))
	for i := range all {
		all[i] = i
	}
	for i := range pts {
		got, want := area(ix.Cell(i)), area(ix.cell(i, all, bounds))
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("cell %d has area %v, want %v", i, got, want)
		}
	}
}

func TestCellsCollinear(t *testing.T) {
	pts := []Point{{10, 50}, {30, 50}, {60, 50}}
	ix := NewIndex(pts, Rect{Point{0, 0}, Point{100, 100}})
	for i, want := range []float64{20 * 100, 25 * 100, 55 * 100} {
		if got := area(ix.Cell(i)); math.Abs(got-want) > 1e-9 {
			t.Errorf("cell %d has area %v, want %v", i, got, want)
		}
	}
}
