// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"golang.org/x/image/colornames"
)

func TestExtent(t *testing.T) {
	xs := []float64{3, math.NaN(), -2, math.Inf(1), 7}
	min, max, ok := Extent(len(xs), func(i int) float64 { return xs[i] })
	if !ok || min != -2 || max != 7 {
		t.Errorf("Extent = %v, %v, %v; want -2, 7, true", min, max, ok)
	}

	_, _, ok = Extent(1, func(int) float64 { return math.NaN() })
	if ok {
		t.Errorf("Extent of only NaN reported ok")
	}
}

func TestLinearBounds(t *testing.T) {
	for _, test := range []struct {
		dom, rng [2]float64
	}{
		{[2]float64{0, 10}, [2]float64{0, 940}},
		{[2]float64{-17.3, 84.1}, [2]float64{740, 0}},
		{[2]float64{0.1, 0.3}, [2]float64{0.1, 0.7}},
		{[2]float64{1e9, 2e9}, [2]float64{-5, 5}},
	} {
		s, err := NewLinear(test.dom, test.rng)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.Map(test.dom[0]); got != test.rng[0] {
			t.Errorf("%v→%v: Map(%v) = %v, want %v", test.dom, test.rng, test.dom[0], got, test.rng[0])
		}
		if got := s.Map(test.dom[1]); got != test.rng[1] {
			t.Errorf("%v→%v: Map(%v) = %v, want %v", test.dom, test.rng, test.dom[1], got, test.rng[1])
		}
	}
}

func TestLinearInvert(t *testing.T) {
	s, err := NewLinear([2]float64{-40, 110}, [2]float64{400, 15})
	if err != nil {
		t.Fatal(err)
	}
	for x := -40.0; x <= 110; x += 3.7 {
		got := s.Invert(s.Map(x))
		if math.Abs(got-x) > 1e-9 {
			t.Errorf("Invert(Map(%v)) = %v", x, got)
		}
	}
	if got := s.Map(35); math.Abs(got-(400-75*385.0/150)) > 1e-9 {
		t.Errorf("Map(35) = %v", got)
	}
}

func TestLinearDegenerate(t *testing.T) {
	s, err := NewLinear([2]float64{5, 5}, [2]float64{0, 100})
	var deg *DegenerateScaleError
	if !errors.As(err, &deg) {
		t.Fatalf("want *DegenerateScaleError, got %v", err)
	}
	for _, x := range []float64{-1, 5, 1000} {
		if got := s.Map(x); got != 50 {
			t.Errorf("degenerate Map(%v) = %v, want 50", x, got)
		}
	}
	if got := s.Invert(12); got != 5 {
		t.Errorf("degenerate Invert = %v, want 5", got)
	}
	if got := s.Ticks(10); len(got) != 1 || got[0] != 5 {
		t.Errorf("degenerate Ticks = %v", got)
	}
}

func TestLinearNiceAndTicks(t *testing.T) {
	s, err := NewLinear([2]float64{1.3, 97.2}, [2]float64{0, 500})
	if err != nil {
		t.Fatal(err)
	}
	n := s.Nice(10)
	d := n.Domain()
	if d[0] > 1.3 || d[1] < 97.2 {
		t.Errorf("Nice shrank the domain to %v", d)
	}
	if n.Range() != s.Range() {
		t.Errorf("Nice changed the range")
	}
	if s.Domain() != [2]float64{1.3, 97.2} {
		t.Errorf("Nice modified its receiver")
	}

	ticks := n.Ticks(10)
	if len(ticks) == 0 || len(ticks) > 10 {
		t.Fatalf("Ticks(10) returned %d ticks: %v", len(ticks), ticks)
	}
	for i, x := range ticks {
		if x < d[0] || x > d[1] {
			t.Errorf("tick %v outside domain %v", x, d)
		}
		if i > 0 && ticks[i-1] >= x {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}

	// A descending domain stays descending.
	s, err = NewLinear([2]float64{5, 1}, [2]float64{0, 100})
	if err != nil {
		t.Fatal(err)
	}
	n = s.Nice(10)
	if d := n.Domain(); d[0] < 5 || d[1] > 1 {
		t.Errorf("Nice(10) of [5 1] = %v, want a descending domain containing it", d)
	}
	if n.Map(5) >= n.Map(1) {
		t.Errorf("Nice reversed the scale: Map(5) = %v, Map(1) = %v", n.Map(5), n.Map(1))
	}
	if d := n.Domain(); n.Map(d[0]) != 0 || n.Map(d[1]) != 100 {
		t.Errorf("Nice domain %v does not map to range [0 100]", d)
	}
	ticks = n.Ticks(4)
	if len(ticks) == 0 || len(ticks) > 4 {
		t.Errorf("Ticks(4) of descending domain = %v", ticks)
	}
	for _, x := range ticks {
		if x < 1 || x > 5 {
			t.Errorf("tick %v outside domain [5 1]", x)
		}
	}
}

func TestTimeScale(t *testing.T) {
	d0 := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2018, 4, 10, 0, 0, 0, 0, time.UTC)
	s, err := NewTime([2]time.Time{d0, d1}, [2]float64{0, 1000})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Map(d0); got != 0 {
		t.Errorf("Map(d0) = %v", got)
	}
	if got := s.Map(d1); got != 1000 {
		t.Errorf("Map(d1) = %v", got)
	}
	mid := d0.AddDate(0, 0, 33)
	if got := s.Invert(s.Map(mid)); got.Sub(mid).Abs() > time.Millisecond {
		t.Errorf("Invert(Map(%v)) = %v", mid, got)
	}

	// 99 days over 10 ticks is nearer a week than a month.
	ticks, layout := s.Ticks(10)
	if len(ticks) != 14 || !ticks[0].Equal(time.Date(2018, 1, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %d ticks starting %v, want 14 weekly ticks from Jan 7", len(ticks), ticks)
	}
	for i, tk := range ticks {
		if tk.Before(d0) || tk.After(d1) {
			t.Errorf("tick %v outside domain", tk)
		}
		if i > 0 && !ticks[i-1].Before(tk) {
			t.Errorf("ticks not increasing")
		}
	}
	if layout == "" {
		t.Errorf("empty tick layout")
	}

	// Weeks start on Sunday.
	for _, tk := range ticks {
		if tk.Weekday() != time.Sunday {
			t.Errorf("weekly tick %v is a %v", tk, tk.Weekday())
		}
	}
}

func TestTimeTickIntervals(t *testing.T) {
	d0 := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, test := range []struct {
		d1     time.Time
		count  int
		layout string
		first  time.Time
		n      int
	}{
		// Two days: 48h/8 = 6h.
		{d0.AddDate(0, 0, 2), 8, "Jan 02 15:04", d0, 9},
		// A year: 365d/4 is nearer 3 months than a year.
		{d0.AddDate(1, 0, 0), 4, "Jan 2006", d0, 5},
		// 30 years in 10 ticks steps by 2 years.
		{d0.AddDate(30, 0, 0), 10, "2006", d0, 16},
	} {
		s, err := NewTime([2]time.Time{d0, test.d1}, [2]float64{0, 100})
		if err != nil {
			t.Fatal(err)
		}
		ticks, layout := s.Ticks(test.count)
		if layout != test.layout || len(ticks) != test.n || !ticks[0].Equal(test.first) {
			t.Errorf("Ticks(%d) to %v = %d ticks from %v with layout %q, want %d from %v with %q",
				test.count, test.d1, len(ticks), ticks, layout, test.n, test.first, test.layout)
		}
	}
}

func TestTimeDegenerate(t *testing.T) {
	d := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewTime([2]time.Time{d, d}, [2]float64{0, 100})
	var deg *DegenerateScaleError
	if !errors.As(err, &deg) {
		t.Fatalf("want *DegenerateScaleError, got %v", err)
	}
	if got := s.Map(d.AddDate(0, 0, 3)); got != 50 {
		t.Errorf("Map = %v, want 50", got)
	}
}

func TestPiecewise(t *testing.T) {
	p, err := NewPiecewise([]float64{-5, 0, 5}, []color.RGBA{colornames.Indigo, colornames.White, colornames.Darkgreen})
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		x    float64
		want color.RGBA
	}{
		{0, colornames.White},
		{-5, colornames.Indigo},
		{5, colornames.Darkgreen},
		{-12, colornames.Indigo},
		{40, colornames.Darkgreen},
	} {
		if got := p.Map(test.x); got != test.want {
			t.Errorf("Map(%v) = %v, want %v", test.x, got, test.want)
		}
	}

	// The segments are independent: halfway into the positive
	// segment blends white and dark green.
	mid := p.Map(2.5)
	if mid.G <= colornames.Darkgreen.G || mid.R >= 255 || mid.R <= colornames.Darkgreen.R {
		t.Errorf("Map(2.5) = %v, not between white and dark green", mid)
	}
	neg := p.Map(-2.5)
	if neg.B <= colornames.Indigo.B || neg.B >= 255 {
		t.Errorf("Map(-2.5) = %v, not between indigo and white", neg)
	}

	if got := p.Range(); len(got) != 3 || got[1] != colornames.White {
		t.Errorf("Range = %v", got)
	}
}

func TestPiecewiseErrors(t *testing.T) {
	if _, err := NewPiecewise([]float64{0}, []color.RGBA{colornames.White}); err == nil {
		t.Errorf("single anchor accepted")
	}
	if _, err := NewPiecewise([]float64{1, 0}, []color.RGBA{colornames.White, colornames.Black}); err == nil {
		t.Errorf("decreasing anchors accepted")
	}
	_, err := NewPiecewise([]float64{1, 1}, []color.RGBA{colornames.White, colornames.Black})
	var deg *DegenerateScaleError
	if !errors.As(err, &deg) {
		t.Errorf("equal anchors: want *DegenerateScaleError, got %v", err)
	}
}

func TestColor(t *testing.T) {
	c, err := NewColor([2]float64{0, 1}, colornames.Skyblue, colornames.Darkslategray)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Map(0); got != colornames.Skyblue {
		t.Errorf("Map(0) = %v", got)
	}
	if got := c.Map(1); got != colornames.Darkslategray {
		t.Errorf("Map(1) = %v", got)
	}
	if got := c.Map(2); got != colornames.Darkslategray {
		t.Errorf("Map(2) = %v, want clamped", got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(colornames.Indigo); got != "#4b0082" {
		t.Errorf("Hex(indigo) = %q", got)
	}
}
