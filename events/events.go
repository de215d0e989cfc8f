// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events routes pointer events to handlers bound to shapes.
//
// Bindings are declarative: a Table is built from the shapes of a
// frame, and a shape without an entry simply receives no events.
// Unbinding is building a table without the entry.
package events

import (
	"fmt"

	"github.com/vizlab/chartwork/draw"
)

// Type is the type of an Event.
type Type int

const (
	Enter Type = iota
	Move
	Leave
)

func (t Type) String() string {
	switch t {
	case Enter:
		return "enter"
	case Move:
		return "move"
	case Leave:
		return "leave"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Event is a pointer event on a shape. X and Y are the pointer
// position in the shape's layer coordinates.
type Event struct {
	Type Type
	Key  string
	X, Y float64
}

func (e Event) String() string {
	return fmt.Sprintf("%v %s (%s, %s)", e.Type, e.Key, draw.Num(e.X), draw.Num(e.Y))
}

// Handlers are the functions called for events on one shape. Any of
// them may be nil.
type Handlers struct {
	Enter, Move, Leave func(Event)
}

// Table maps shape keys to their handlers.
type Table map[string]Handlers

// Bind builds a Table with an entry for every shape for which bind
// returns true.
func Bind(shapes []draw.Shape, bind func(s draw.Shape) (Handlers, bool)) Table {
	t := make(Table)
	for _, s := range shapes {
		if h, ok := bind(s); ok {
			t[s.Key] = h
		}
	}
	return t
}

// Dispatch calls the handler for ev, if there is one, and reports
// whether it did.
func (t Table) Dispatch(ev Event) bool {
	h, ok := t[ev.Key]
	if !ok {
		return false
	}
	var fn func(Event)
	switch ev.Type {
	case Enter:
		fn = h.Enter
	case Move:
		fn = h.Move
	case Leave:
		fn = h.Leave
	}
	if fn == nil {
		return false
	}
	fn(ev)
	return true
}

// HitFunc returns the key of the shape under (x, y), if any.
type HitFunc func(x, y float64) (key string, ok bool)

// Tracker turns a stream of pointer positions into enter, move, and
// leave events, the way a browser does for the shape under the
// pointer.
type Tracker struct {
	hit   HitFunc
	table Table
	cur   string
	in    bool
}

// NewTracker returns a Tracker that dispatches to table, finding the
// shape under the pointer with hit.
func NewTracker(table Table, hit HitFunc) *Tracker {
	return &Tracker{hit: hit, table: table}
}

// Rebind replaces the tracker's table. The shape under the pointer is
// remembered, so a later move off it still produces a leave event if
// the new table binds it.
func (tr *Tracker) Rebind(table Table) {
	tr.table = table
}

// Current returns the key of the shape under the pointer.
func (tr *Tracker) Current() (string, bool) {
	return tr.cur, tr.in
}

// Move moves the pointer to (x, y), dispatches the resulting events,
// and returns them.
func (tr *Tracker) Move(x, y float64) []Event {
	key, ok := tr.hit(x, y)
	var evs []Event
	if tr.in && (!ok || key != tr.cur) {
		evs = append(evs, Event{Leave, tr.cur, x, y})
		tr.in = false
	}
	if ok && !tr.in {
		evs = append(evs, Event{Enter, key, x, y})
		tr.cur, tr.in = key, true
	}
	if ok {
		evs = append(evs, Event{Move, key, x, y})
	}
	tr.dispatch(evs)
	return evs
}

// Release takes the pointer off the surface, dispatching a leave
// event for the shape under it, if any.
func (tr *Tracker) Release() []Event {
	if !tr.in {
		return nil
	}
	evs := []Event{{Type: Leave, Key: tr.cur}}
	tr.in = false
	tr.dispatch(evs)
	return evs
}

func (tr *Tracker) dispatch(evs []Event) {
	for _, ev := range evs {
		tr.table.Dispatch(ev)
	}
}
