// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/vizlab/chartwork/draw"
	"github.com/vizlab/chartwork/layout"
)

var dims = layout.New(600, 400, layout.Margins{Top: 15, Right: 15, Bottom: 40, Left: 60})

func content(i int) []Field {
	return []Field{{"record", strconv.Itoa(i)}}
}

func TestSequenceEndsHidden(t *testing.T) {
	c := New(dims, content, nil)
	c.Show(0, 10, 20) // pointer enters record A
	if s := c.State(); !s.Visible || s.Record != 0 {
		t.Fatalf("after enter: %v", s)
	}
	c.Show(1, 30, 40) // pointer moves to record B
	if s := c.State(); !s.Visible || s.Record != 1 {
		t.Fatalf("after move: %v", s)
	}
	c.Hide() // pointer leaves
	if s := c.State(); s.Visible || s.Record != -1 || s.Fields != nil {
		t.Errorf("after leave: %+v", s)
	}
}

func TestPosition(t *testing.T) {
	c := New(dims, content, nil)
	c.Show(7, 100, 50)
	s := c.State()
	if s.X != 160 || s.Y != 65 {
		t.Errorf("anchor = %v, %v; want 160, 65", s.X, s.Y)
	}
	if got, want := s.Transform(), "translate(calc(-50% + 160px), calc(-100% + 65px))"; got != want {
		t.Errorf("Transform = %q, want %q", got, want)
	}
	if !reflect.DeepEqual(s.Fields, []Field{{"record", "7"}}) {
		t.Errorf("Fields = %v", s.Fields)
	}
}

func TestMarker(t *testing.T) {
	dot := draw.Shape{Key: "tooltipDot", Kind: draw.Circle, R: 7, Style: draw.Style{Fill: "maroon"}}
	c := New(dims, content, &dot)
	if _, ok := c.Marker(); ok {
		t.Errorf("hidden tooltip has a marker")
	}
	c.Show(2, 11, 12)
	m, ok := c.Marker()
	if !ok || m.X != 11 || m.Y != 12 || m.R != 7 || m.Fill != "maroon" {
		t.Errorf("Marker = %+v, %v", m, ok)
	}
	if dot.X != 0 {
		t.Errorf("Marker modified the template")
	}
	c.Hide()
	if _, ok := c.Marker(); ok {
		t.Errorf("marker after Hide")
	}

	// Without a template, there is never a marker.
	c = New(dims, content, nil)
	c.Show(0, 1, 1)
	if _, ok := c.Marker(); ok {
		t.Errorf("marker without template")
	}
}
