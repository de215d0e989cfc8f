// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format formats values for tooltips, axes, and legends.
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// Fixed formats v with prec digits after the decimal point.
func Fixed(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if isNegZero(s) {
		s = s[1:]
	}
	return s
}

// Grouped formats v with thousands separators and two digits after
// the decimal point, like 12,345.68.
func Grouped(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := humanize.FormatFloat("#,###.##", v)
	if isNegZero(s) {
		s = s[1:]
	}
	return s
}

// Percent formats v, already in percent, as Grouped with a percent
// sign.
func Percent(v float64) string {
	return Grouped(v) + "%"
}

// Tick formats an axis tick value with as few digits as step allows.
func Tick(v, step float64) string {
	prec := 0
	if step > 0 && step < 1 {
		prec = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	return Fixed(v, prec)
}

// DateLayout is the layout of dates in tooltips.
const DateLayout = "Monday, January 02, 2006"

// Date formats t for a tooltip, like "Tuesday, January 02, 2018".
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Temperature formats a temperature in °F.
func Temperature(v float64) string {
	return Fixed(v, 1) + "°F"
}

func isNegZero(s string) bool {
	return strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.,") == ""
}
