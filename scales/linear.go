// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales maps data values to pixel positions and colors.
//
// All scales are immutable values. Methods that adjust a scale, such
// as Nice, return a new scale.
//
// A scale whose domain collapses to a single value cannot distribute
// values over its range. Constructors still return a usable scale in
// that case, one that maps everything to the middle of the range,
// together with a *DegenerateScaleError. Callers that are happy with
// the fallback may log the error and carry on.
package scales

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// DegenerateScaleError reports a scale whose domain has no extent.
type DegenerateScaleError struct {
	Min, Max float64
}

func (e *DegenerateScaleError) Error() string {
	return fmt.Sprintf("degenerate scale domain [%g, %g]", e.Min, e.Max)
}

// Extent returns the minimum and maximum of f(i) for i in [0, n),
// ignoring NaN and infinite values. ok is false if there are no such
// values.
func Extent(n int, f func(i int) float64) (min, max float64, ok bool) {
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := f(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		xs = append(xs, x)
	}
	if len(xs) == 0 {
		return 0, 0, false
	}
	min, max = stats.Bounds(xs)
	return min, max, true
}

// Linear is a continuous linear scale from a numeric domain to a
// numeric range.
type Linear struct {
	dom    scale.Linear
	r0, r1 float64
}

// NewLinear returns a linear scale mapping domain[0] to rng[0] and
// domain[1] to rng[1]. If the domain is empty or not finite, it
// returns a constant scale and a *DegenerateScaleError.
func NewLinear(domain, rng [2]float64) (Linear, error) {
	s := Linear{
		dom: scale.Linear{Min: domain[0], Max: domain[1]},
		r0:  rng[0],
		r1:  rng[1],
	}
	if s.degenerate() {
		return s, &DegenerateScaleError{domain[0], domain[1]}
	}
	return s, nil
}

func (s Linear) degenerate() bool {
	d := s.dom.Max - s.dom.Min
	return d == 0 || math.IsNaN(d) || math.IsInf(d, 0)
}

// Domain returns the scale's domain.
func (s Linear) Domain() [2]float64 {
	return [2]float64{s.dom.Min, s.dom.Max}
}

// Range returns the scale's range.
func (s Linear) Range() [2]float64 {
	return [2]float64{s.r0, s.r1}
}

// Map maps domain value x to the range. Values outside the domain
// are extrapolated.
func (s Linear) Map(x float64) float64 {
	if s.degenerate() {
		return (s.r0 + s.r1) / 2
	}
	return lerp(s.r0, s.r1, s.dom.Map(x))
}

// Invert maps range value y back to the domain.
func (s Linear) Invert(y float64) float64 {
	if s.degenerate() {
		return s.dom.Min
	}
	if s.r0 == s.r1 {
		return s.dom.Unmap(0.5)
	}
	return s.dom.Unmap((y - s.r0) / (s.r1 - s.r0))
}

// Nice returns a copy of s whose domain is extended outward to round
// tick values, using at most count ticks. The domain keeps its
// direction.
func (s Linear) Nice(count int) Linear {
	if s.degenerate() || count < 1 {
		return s
	}
	asc := s.ascending()
	asc.Nice(scale.TickOptions{Max: count})
	if s.dom.Min > s.dom.Max {
		asc.Min, asc.Max = asc.Max, asc.Min
	}
	s.dom = asc
	return s
}

// ascending returns the domain with Min <= Max, which go-moremath's
// tick and nice computations require.
func (s Linear) ascending() scale.Linear {
	d := s.dom
	if d.Min > d.Max {
		d.Min, d.Max = d.Max, d.Min
	}
	return d
}

// Ticks returns at most count round values inside the domain, in
// increasing order.
func (s Linear) Ticks(count int) []float64 {
	if s.degenerate() {
		return []float64{s.dom.Min}
	}
	if count < 1 {
		return nil
	}
	asc := s.ascending()
	lo, hi := asc.Min, asc.Max
	// Allow for rounding in the tick computation.
	eps := (hi - lo) * 1e-9
	major, _ := asc.Ticks(scale.TickOptions{Max: count})
	ticks := make([]float64, 0, len(major))
	for _, t := range major {
		if t >= lo-eps && t <= hi+eps {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// lerp interpolates between a and b. It returns exactly a at t == 0
// and exactly b at t == 1.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
