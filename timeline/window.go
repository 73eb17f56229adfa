package timeline

import (
	"time"
)

// Materialize computes the visible part of the chart.
//
// Segments shorter than minSegmentDuration are dropped first; when that
// filter is active, groups and lines left without segments disappear from
// the structure before the line window is applied. The line window is then
// resolved against the remaining line count and the structure is walked
// once, slicing the groups that straddle either end. Visible segments are
// those on a visible line whose range intersects the resolved time window.
func Materialize(structure []Group, flat []Segment, zoom ZoomState, minSegmentDuration time.Duration) View {
	segs := flat
	valid := structure
	if minSegmentDuration > 0 {
		segs = make([]Segment, 0, len(flat))
		for _, s := range flat {
			if s.Duration() >= minSegmentDuration {
				segs = append(segs, s)
			}
		}
		valid = activeStructure(structure, segs)
	}

	view := View{Structure: []Group{}, Segments: []Segment{}}

	total := CountLines(valid)
	lo, hi := zoom.Lines.Resolve(total)
	if lo < 0 {
		lo = 0
	}
	want := hi + 1 - lo
	if want < 0 {
		want = 0
	}

	skip, remaining := lo, want
	for _, g := range valid {
		if remaining == 0 {
			break
		}
		n := len(g.Lines)
		if skip >= n {
			skip -= n
			continue
		}
		take := n - skip
		if take > remaining {
			take = remaining
		}
		lines := make([]string, take)
		copy(lines, g.Lines[skip:skip+take])
		view.Structure = append(view.Structure, Group{Name: g.Name, Lines: lines})
		remaining -= take
		skip = 0
	}
	view.LineCount = want - remaining

	view.Time = resolveTimeWindow(zoom.Time, segs)
	if view.LineCount == 0 || !view.Time.Bounded() {
		return view
	}

	visible := make(map[LineRef]struct{}, view.LineCount)
	for _, g := range view.Structure {
		for _, l := range g.Lines {
			visible[LineRef{Group: g.Name, Label: l}] = struct{}{}
		}
	}
	for _, s := range segs {
		if _, ok := visible[s.Ref()]; !ok {
			continue
		}
		if s.End.Before(view.Time.Start) || s.Start.After(view.Time.End) {
			continue
		}
		view.Segments = append(view.Segments, s)
	}
	return view
}

// activeStructure keeps only the groups and lines that still own at least
// one segment, preserving order.
func activeStructure(structure []Group, segs []Segment) []Group {
	active := make(map[LineRef]struct{}, len(segs))
	for _, s := range segs {
		active[s.Ref()] = struct{}{}
	}
	out := make([]Group, 0, len(structure))
	for _, g := range structure {
		var lines []string
		for _, l := range g.Lines {
			if _, ok := active[LineRef{Group: g.Name, Label: l}]; ok {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}
		out = append(out, Group{Name: g.Name, Lines: lines})
	}
	return out
}

func resolveTimeWindow(w TimeWindow, segs []Segment) TimeWindow {
	if w.Bounded() {
		return w
	}
	ext := extentOf(segs)
	if w.Start.IsZero() {
		w.Start = ext.Start
	}
	if w.End.IsZero() {
		w.End = ext.End
	}
	return w
}
