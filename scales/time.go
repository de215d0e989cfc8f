// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"sort"
	"time"
)

// Time is a linear scale whose domain is time.
type Time struct {
	lin Linear
	loc *time.Location
}

// NewTime returns a time scale mapping domain[0] to rng[0] and
// domain[1] to rng[1]. Like NewLinear, it returns a constant scale
// and a *DegenerateScaleError if the domain is a single instant.
func NewTime(domain [2]time.Time, rng [2]float64) (Time, error) {
	lin, err := NewLinear([2]float64{seconds(domain[0]), seconds(domain[1])}, rng)
	return Time{lin, domain[0].Location()}, err
}

func seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func fromSeconds(s float64, loc *time.Location) time.Time {
	sec, frac := math.Modf(s)
	return time.Unix(int64(sec), int64(math.Round(frac*1e9))).In(loc)
}

// Domain returns the scale's domain.
func (s Time) Domain() [2]time.Time {
	d := s.lin.Domain()
	return [2]time.Time{fromSeconds(d[0], s.loc), fromSeconds(d[1], s.loc)}
}

// Range returns the scale's range.
func (s Time) Range() [2]float64 {
	return s.lin.Range()
}

// Map maps t to the range.
func (s Time) Map(t time.Time) float64 {
	return s.lin.Map(seconds(t))
}

// Invert maps range value y back to a time.
func (s Time) Invert(y float64) time.Time {
	return fromSeconds(s.lin.Invert(y), s.loc)
}

// A timeInterval is a calendar step between time ticks.
type timeInterval struct {
	approx time.Duration
	// floor rounds t down to the start of an interval.
	floor func(t time.Time) time.Time
	next  func(t time.Time) time.Time
	// layout formats ticks at this interval.
	layout string
}

const day = 24 * time.Hour

func hours(n int) timeInterval {
	return timeInterval{
		approx: time.Duration(n) * time.Hour,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()/n*n, 0, 0, 0, t.Location())
		},
		next:   func(t time.Time) time.Time { return t.Add(time.Duration(n) * time.Hour) },
		layout: "Jan 02 15:04",
	}
}

func days(n int) timeInterval {
	return timeInterval{
		approx: time.Duration(n) * day,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		},
		next:   func(t time.Time) time.Time { return t.AddDate(0, 0, n) },
		layout: "Jan 02",
	}
}

var weeks = timeInterval{
	approx: 7 * day,
	floor: func(t time.Time) time.Time {
		// Weeks start on Sunday.
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return t.AddDate(0, 0, -int(t.Weekday()))
	},
	next:   func(t time.Time) time.Time { return t.AddDate(0, 0, 7) },
	layout: "Jan 02",
}

func months(n int) timeInterval {
	layout := "January"
	if n >= 3 {
		layout = "Jan 2006"
	}
	return timeInterval{
		approx: time.Duration(n) * 30 * day,
		floor: func(t time.Time) time.Time {
			m := (int(t.Month())-1)/n*n + 1
			return time.Date(t.Year(), time.Month(m), 1, 0, 0, 0, 0, t.Location())
		},
		next:   func(t time.Time) time.Time { return t.AddDate(0, n, 0) },
		layout: layout,
	}
}

var years = timeInterval{
	approx: 365 * day,
	floor: func(t time.Time) time.Time {
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	},
	next:   func(t time.Time) time.Time { return t.AddDate(1, 0, 0) },
	layout: "2006",
}

var timeIntervals = []timeInterval{
	hours(1), hours(3), hours(6), hours(12),
	days(1), days(2), weeks,
	months(1), months(3), years,
}

// Ticks returns calendar-aligned times inside the domain, in
// increasing order, and a time layout suitable for labeling them. The
// interval is the calendar step nearest in ratio to the domain's span
// divided by count, so the number of ticks is about count.
func (s Time) Ticks(count int) ([]time.Time, string) {
	d := s.Domain()
	lo, hi := d[0], d[1]
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if count < 1 {
		return nil, time.RFC3339
	}
	if !lo.Before(hi) {
		return []time.Time{lo}, "Jan 02, 2006"
	}
	target := float64(hi.Sub(lo)) / float64(count)
	i := sort.Search(len(timeIntervals), func(i int) bool {
		return float64(timeIntervals[i].approx) >= target
	})
	if i == len(timeIntervals) {
		// Step in a round number of years.
		step := int(niceStep(target / float64(years.approx)))
		var ticks []time.Time
		start := time.Date(lo.Year()/step*step, 1, 1, 0, 0, 0, 0, lo.Location())
		for t := start; !t.After(hi); t = t.AddDate(step, 0, 0) {
			if !t.Before(lo) {
				ticks = append(ticks, t)
			}
		}
		return ticks, years.layout
	}
	if i > 0 && target/float64(timeIntervals[i-1].approx) < float64(timeIntervals[i].approx)/target {
		i--
	}
	iv := timeIntervals[i]
	return iv.between(lo, hi), iv.layout
}

// niceStep rounds x to 1, 2, 5, or 10 times a power of ten, choosing
// the nearest in ratio. The result is at least 1.
func niceStep(x float64) float64 {
	if x <= 1 {
		return 1
	}
	p := math.Pow(10, math.Floor(math.Log10(x)))
	switch e := x / p; {
	case e >= math.Sqrt(50):
		return 10 * p
	case e >= math.Sqrt(10):
		return 5 * p
	case e >= math.Sqrt(2):
		return 2 * p
	}
	return p
}

// between returns the interval boundaries in [lo, hi].
func (iv timeInterval) between(lo, hi time.Time) []time.Time {
	var ticks []time.Time
	for t := iv.floor(lo); !t.After(hi); t = iv.next(t) {
		if !t.Before(lo) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}
