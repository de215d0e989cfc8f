// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vizlab/chartwork/charts"
	"github.com/vizlab/chartwork/draw"
)

func TestSession(t *testing.T) {
	var out bytes.Buffer
	var saved []string
	s := newSession(charts.NewEvents(), &out, func(path string, f *draw.Frame) error {
		saved = append(saved, path)
		return nil
	})

	script := `# hover over the second rectangle
move 150 50

move 250 50
svg "hovered chart.svg"
teardown
move 50 50
`
	if err := runScript(s, strings.NewReader(script), "test"); err != nil {
		t.Fatal(err)
	}
	want := `event enter rect/1 (150, 50)
event move rect/1 (150, 50)
tooltip hidden
shape ~rect/1
event leave rect/1 (250, 50)
event enter rect/2 (250, 50)
event move rect/2 (250, 50)
tooltip hidden
shape ~rect/1
shape ~rect/2
event leave rect/2 (0, 0)
tooltip hidden
shape ~rect/2
tooltip hidden
`
	if got := out.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
	if len(saved) != 1 || saved[0] != "hovered chart.svg" {
		t.Errorf("saved %q", saved)
	}
}

func TestSessionErrors(t *testing.T) {
	var out bytes.Buffer
	s := newSession(charts.NewEvents(), &out, nil)
	for _, line := range []string{
		"move 1",
		"move x 2",
		"move 1 y",
		"leave now",
		"svg",
		"click 1 2",
		`move "1 2`,
	} {
		if err := s.exec(line); err == nil {
			t.Errorf("%q: no error", line)
		}
	}
	if out.Len() != 0 {
		t.Errorf("failed commands wrote %q", out.String())
	}

	err := runScript(s, strings.NewReader("leave\nbogus\n"), "script")
	if err == nil || !strings.HasPrefix(err.Error(), "script:2: ") {
		t.Errorf("runScript error = %v", err)
	}
}
