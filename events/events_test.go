// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"reflect"
	"testing"

	"github.com/vizlab/chartwork/draw"
)

func rects() []draw.Shape {
	return []draw.Shape{
		{Key: "a", Kind: draw.Rect, X: 0, Y: 0, W: 10, H: 10},
		{Key: "b", Kind: draw.Rect, X: 20, Y: 0, W: 10, H: 10},
		{Key: "label", Kind: draw.Text},
	}
}

func hitRects(shapes []draw.Shape) HitFunc {
	return func(x, y float64) (string, bool) {
		for _, s := range shapes {
			if s.Contains(x, y) {
				return s.Key, true
			}
		}
		return "", false
	}
}

func TestBindAndDispatch(t *testing.T) {
	var log []string
	table := Bind(rects(), func(s draw.Shape) (Handlers, bool) {
		if s.Kind != draw.Rect {
			return Handlers{}, false
		}
		return Handlers{
			Enter: func(ev Event) { log = append(log, "enter "+ev.Key) },
			Leave: func(ev Event) { log = append(log, "leave "+ev.Key) },
		}, true
	})
	if len(table) != 2 {
		t.Fatalf("bound %d shapes, want 2", len(table))
	}
	if table.Dispatch(Event{Type: Enter, Key: "label"}) {
		t.Errorf("dispatched to an unbound shape")
	}
	if table.Dispatch(Event{Type: Move, Key: "a"}) {
		t.Errorf("dispatched to a nil handler")
	}
	if !table.Dispatch(Event{Type: Enter, Key: "b"}) {
		t.Errorf("did not dispatch to a bound shape")
	}
	if want := []string{"enter b"}; !reflect.DeepEqual(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
}

func TestTracker(t *testing.T) {
	shapes := rects()
	var log []string
	record := func(ev Event) { log = append(log, ev.Type.String()+" "+ev.Key) }
	table := Bind(shapes, func(s draw.Shape) (Handlers, bool) {
		return Handlers{Enter: record, Move: record, Leave: record}, s.Kind == draw.Rect
	})
	tr := NewTracker(table, hitRects(shapes))

	tr.Move(5, 5)   // enter a
	tr.Move(6, 6)   // move in a
	tr.Move(25, 5)  // a to b
	tr.Move(15, 5)  // off both
	tr.Move(100, 5) // still off
	tr.Move(21, 1)  // back into b
	tr.Release()
	tr.Release()

	want := []string{
		"enter a", "move a",
		"move a",
		"leave a", "enter b", "move b",
		"leave b",
		"enter b", "move b",
		"leave b",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("got  %v\nwant %v", log, want)
	}
	if _, in := tr.Current(); in {
		t.Errorf("pointer still on a shape after Release")
	}
}

func TestTrackerRebind(t *testing.T) {
	shapes := rects()
	var log []string
	table := Bind(shapes, func(s draw.Shape) (Handlers, bool) {
		return Handlers{Leave: func(ev Event) { log = append(log, "leave "+ev.Key) }}, s.Kind == draw.Rect
	})
	tr := NewTracker(table, hitRects(shapes))
	tr.Move(5, 5)

	// Dispatch a leave before unbinding so nothing is left
	// stuck in its hovered state.
	evs := tr.Release()
	tr.Rebind(nil)
	if len(evs) != 1 || evs[0].Key != "a" {
		t.Errorf("Release returned %v", evs)
	}
	tr.Move(25, 5)
	tr.Move(100, 100)
	if want := []string{"leave a"}; !reflect.DeepEqual(log, want) {
		t.Errorf("got %v, want %v", log, want)
	}
}
