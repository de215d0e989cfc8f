// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"bytes"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestNum(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{1.5, "1.5"},
		{1.005, "1"},
		{-2.346, "-2.35"},
		{-0.001, "0"},
	} {
		if got := Num(test.x); got != test.want {
			t.Errorf("Num(%v) = %q, want %q", test.x, got, test.want)
		}
	}
}

func TestLinePath(t *testing.T) {
	nan := math.NaN()
	got := LinePath([]Point{{0, 0}, {10, 5.5}, {nan, 1}, {20, 3}, {30, 4}})
	want := "M0,0L10,5.5M20,3L30,4"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := LinePath(nil); got != "" {
		t.Errorf("empty path = %q", got)
	}
}

func TestPolygonPath(t *testing.T) {
	got := PolygonPath([]Point{{0, 0}, {1, 0}, {1, 1}}, nil, []Point{{5, 5}, {6, 5}, {6, 6}})
	want := "M0,0L1,0L1,1ZM5,5L6,5L6,6Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContains(t *testing.T) {
	r := Shape{Kind: Rect, X: 10, Y: 10, W: 100, H: 50}
	if !r.Contains(10, 60) || r.Contains(9, 20) || r.Contains(50, 61) {
		t.Errorf("rect containment wrong")
	}
	c := Shape{Kind: Circle, X: 0, Y: 0, R: 5}
	if !c.Contains(3, 4) || c.Contains(4, 4) {
		t.Errorf("circle containment wrong")
	}
	p := Shape{Kind: Path, D: "M0,0L10,10"}
	if p.Contains(0, 0) {
		t.Errorf("path contains a point")
	}
}

func TestReconcile(t *testing.T) {
	a := Shape{Key: "a", Kind: Circle, R: 4}
	b := Shape{Key: "b", Kind: Rect, W: 10}
	c := Shape{Key: "c", Kind: Text, Text: "hi"}
	b2 := b
	b2.W = 20
	d := Shape{Key: "d", Kind: Line}

	diff := Reconcile([]Shape{a, b, c}, []Shape{d, b2, a})
	want := Diff{
		Enter:  []Shape{d},
		Update: []Shape{b2},
		Exit:   []Shape{c},
	}
	if !reflect.DeepEqual(diff, want) {
		t.Errorf("got %+v, want %+v", diff, want)
	}

	if diff := Reconcile([]Shape{a, b}, []Shape{a, b}); !diff.Empty() {
		t.Errorf("identical frames differ: %+v", diff)
	}
}

func TestFrameWith(t *testing.T) {
	f := &Frame{Width: 10, Shapes: []Shape{{Key: "a"}}}
	g := f.With(Shape{Key: "b"})
	if len(f.Shapes) != 1 {
		t.Errorf("With modified its receiver")
	}
	if _, ok := g.Lookup("b"); !ok || g.Width != 10 {
		t.Errorf("With lost shapes or size: %+v", g)
	}
}

func TestAxis(t *testing.T) {
	ax := Axis{
		Key:    "x",
		Ticks:  []Tick{{0, "0"}, {50, "5"}},
		Length: 100, Offset: 200,
		Label: "dew point", LabelOffset: 40,
	}
	shapes := ax.Bottom()
	// Domain, two shapes per tick, title.
	if len(shapes) != 6 {
		t.Fatalf("got %d shapes", len(shapes))
	}
	title := shapes[len(shapes)-1]
	if title.Text != "dew point" || title.Y != 240 || title.X != 50 {
		t.Errorf("bad title %+v", title)
	}
	keys := map[string]bool{}
	for _, s := range append(shapes, ax.Left()...) {
		if s.Key == "" {
			t.Errorf("shape without key: %+v", s)
		}
		keys[s.Key] = true
	}
	if !keys["x/tick/5"] || !keys["x/label/5"] {
		t.Errorf("missing tick keys: %v", keys)
	}
}

func TestWriteSVG(t *testing.T) {
	f := &Frame{
		Width: 200, Height: 100,
		OffsetX: 10, OffsetY: 5,
		ClipW: 180, ClipH: 90,
		Gradients: []Gradient{{ID: "legend-gradient", Stops: []string{"#4b0082", "#ffffff", "#006400"}}},
		Shapes: []Shape{
			{Key: "line", Kind: Path, Layer: Clipped, Class: "line", D: "M0,0L10,10", Style: Style{Stroke: "black"}},
			{Key: "dot", Kind: Circle, Class: "dot", X: 10.4, Y: 20.6, R: 4, Style: Style{Fill: "maroon"}},
			{Key: "title", Kind: Text, Layer: Wrapper, Text: "a < b", Rotate: -90},
		},
	}
	var buf bytes.Buffer
	WriteSVG(&buf, f)
	out := buf.String()
	for _, want := range []string{
		"<svg", "</svg>",
		`id="legend-gradient"`,
		`clip-path="url(#bounds-clip-path)"`,
		`d="M0,0L10,10"`,
		`cx="10"`, `cy="21"`, `fill="maroon"`, `class="dot"`,
		"a &lt; b",
		`rotate(-90 0 0)`,
		"translate(10,5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
