// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nearest resolves a pointer position to the closest data
// record.
//
// There are two strategies. Scan and ScanX compare the pointer
// against every record along one axis, which is fine for a few hundred
// records; Bisect gives the same answer on sorted data in logarithmic
// time. Index partitions the plane into one region per record so a
// two-dimensional pointer position resolves in logarithmic time.
//
// Whenever two records are equally close, the one with the lowest
// index wins.
package nearest

import (
	"math"
	"sort"
)

// Scan returns the i in [0, n) that minimizes dist(i). If several i
// tie, it returns the smallest. It returns -1 if n is 0 or no
// distance is less than +Inf. NaN distances never win.
func Scan(n int, dist func(i int) float64) int {
	best, bestD := -1, math.Inf(1)
	for i := 0; i < n; i++ {
		// Strict comparison keeps the first of equal distances.
		if d := dist(i); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// ScanX returns the index of the value in xs closest to x.
func ScanX(xs []float64, x float64) int {
	return Scan(len(xs), func(i int) float64 {
		return math.Abs(xs[i] - x)
	})
}

// Bisect is like ScanX, but requires xs to be sorted in increasing
// order and free of NaNs, and runs in O(log n).
func Bisect(xs []float64, x float64) int {
	if len(xs) == 0 || math.IsNaN(x) {
		return -1
	}
	// xs[i-1] < x <= xs[i].
	i := sort.SearchFloat64s(xs, x)
	if i == len(xs) {
		return first(xs, len(xs)-1)
	}
	if i == 0 {
		return 0
	}
	if x-xs[i-1] <= xs[i]-x {
		return first(xs, i-1)
	}
	return i
}

// first returns the lowest index holding the same value as xs[i].
func first(xs []float64, i int) int {
	return sort.SearchFloat64s(xs[:i], xs[i])
}
