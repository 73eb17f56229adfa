package timeline

import (
	"fmt"
	"time"
)

// Segment is one time interval on a line.
type Segment struct {
	Group    string
	Label    string
	Start    time.Time
	End      time.Time
	Val      float64
	LabelVal any
}

// Duration is End - Start.
func (s Segment) Duration() time.Duration { return s.End.Sub(s.Start) }

// Ref returns the line the segment belongs to.
func (s Segment) Ref() LineRef { return LineRef{Group: s.Group, Label: s.Label} }

// Group is one entry of the structural index: a named group and the
// ordered labels of its lines.
type Group struct {
	Name  string
	Lines []string
}

func (g Group) clone() Group {
	return Group{Name: g.Name, Lines: append([]string(nil), g.Lines...)}
}

func cloneStructure(in []Group) []Group {
	out := make([]Group, len(in))
	for i, g := range in {
		out[i] = g.clone()
	}
	return out
}

// CountLines returns the number of lines across all groups.
func CountLines(structure []Group) int {
	n := 0
	for _, g := range structure {
		n += len(g.Lines)
	}
	return n
}

// LineRef identifies a line by group and label.
type LineRef struct {
	Group string
	Label string
}

func (r LineRef) String() string { return r.Group + "/" + r.Label }

// TimeWindow is a time range; a zero bound is unbounded.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Bounded reports whether both ends are set.
func (w TimeWindow) Bounded() bool { return !w.Start.IsZero() && !w.End.IsZero() }

// Span is End - Start for a bounded window and 0 otherwise.
func (w TimeWindow) Span() time.Duration {
	if !w.Bounded() {
		return 0
	}
	return w.End.Sub(w.Start)
}

// Contains reports whether w fully covers o. Unbounded ends cover anything.
func (w TimeWindow) Contains(o TimeWindow) bool {
	if !w.Start.IsZero() && (o.Start.IsZero() || o.Start.Before(w.Start)) {
		return false
	}
	if !w.End.IsZero() && (o.End.IsZero() || o.End.After(w.End)) {
		return false
	}
	return true
}

// Equal compares both bounds by instant.
func (w TimeWindow) Equal(o TimeWindow) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

func (w TimeWindow) String() string {
	f := func(t time.Time) string {
		if t.IsZero() {
			return "*"
		}
		return t.Format(time.RFC3339)
	}
	return fmt.Sprintf("[%s, %s]", f(w.Start), f(w.End))
}

// Unbounded marks an open end of a LineWindow.
const Unbounded = -1

// LineWindow is an inclusive range of flat line indices. Either end may be
// Unbounded.
type LineWindow struct {
	Start int
	End   int
}

// AllLines is the unbounded line window.
var AllLines = LineWindow{Start: Unbounded, End: Unbounded}

// IsAll reports whether both ends are unbounded.
func (w LineWindow) IsAll() bool { return w.Start == Unbounded && w.End == Unbounded }

// Resolve maps unbounded ends onto [0, total-1].
func (w LineWindow) Resolve(total int) (int, int) {
	lo, hi := w.Start, w.End
	if lo == Unbounded {
		lo = 0
	}
	if hi == Unbounded {
		hi = total - 1
	}
	return lo, hi
}

func (w LineWindow) String() string {
	f := func(i int) string {
		if i == Unbounded {
			return "*"
		}
		return fmt.Sprintf("%d", i)
	}
	return fmt.Sprintf("[%s, %s]", f(w.Start), f(w.End))
}

// ZoomState is the current time and line window.
type ZoomState struct {
	Time  TimeWindow
	Lines LineWindow
}

// Unzoomed returns the state with both windows unbounded.
func Unzoomed() ZoomState { return ZoomState{Lines: AllLines} }

// View is a materialized window: the visible part of the structural index
// and the segments drawn inside it. Consumers must not mutate it.
type View struct {
	Structure []Group
	LineCount int
	Segments  []Segment
	// Time is the resolved time window the segments were filtered by.
	Time TimeWindow
}

// Refs lists the visible lines in display order.
func (v View) Refs() []LineRef {
	refs := make([]LineRef, 0, v.LineCount)
	for _, g := range v.Structure {
		for _, l := range g.Lines {
			refs = append(refs, LineRef{Group: g.Name, Label: l})
		}
	}
	return refs
}
