// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

// Diff is the difference between two frames' shapes, matched by key.
type Diff struct {
	// Enter holds shapes only in the new frame and Update holds
	// shapes in both frames that changed, both in new frame order.
	Enter, Update []Shape
	// Exit holds shapes only in the old frame, in old frame order.
	Exit []Shape
}

// Empty reports whether d has no changes.
func (d Diff) Empty() bool {
	return len(d.Enter) == 0 && len(d.Update) == 0 && len(d.Exit) == 0
}

// Reconcile compares the shapes of two frames. If a key repeats
// within a frame, only its first shape takes part.
func Reconcile(prev, next []Shape) Diff {
	old := make(map[string]Shape, len(prev))
	for _, s := range prev {
		if _, ok := old[s.Key]; !ok {
			old[s.Key] = s
		}
	}

	var d Diff
	seen := make(map[string]bool, len(next))
	for _, s := range next {
		if seen[s.Key] {
			continue
		}
		seen[s.Key] = true
		o, ok := old[s.Key]
		switch {
		case !ok:
			d.Enter = append(d.Enter, s)
		case o != s:
			d.Update = append(d.Update, s)
		}
	}
	for _, s := range prev {
		if !seen[s.Key] {
			seen[s.Key] = true
			d.Exit = append(d.Exit, s)
		}
	}
	return d
}
