package main

import "github.com/andareed/siftly-timelines/timeline"

type ColumnRole int

const (
	RoleGroup ColumnRole = iota
	RoleLabel
)

// ColumnMeta describes one gutter column left of the plot.
type ColumnMeta struct {
	Name     string
	Role     ColumnRole
	Visible  bool
	MinWidth int
	Weight   float64
	Width    int
}

const (
	gutterMinWidth = 14
	gutterMaxWidth = 40
)

func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RoleGroup:
		return 6
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RoleGroup:
		return 1.0
	default:
		return 2.0
	}
}

func newGutterColumns() []ColumnMeta {
	cols := []ColumnMeta{
		{Name: "group", Role: RoleGroup, Visible: true},
		{Name: "label", Role: RoleLabel, Visible: true},
	}
	for i := range cols {
		cols[i].MinWidth = defaultMinWidthForRole(cols[i].Role)
		cols[i].Weight = defaultWeightForRole(cols[i].Role)
	}
	return cols
}

// markEmptyColumns hides the group column when there is nothing to tell
// groups apart.
func markEmptyColumns(cols []ColumnMeta, structure []timeline.Group) {
	for i := range cols {
		if cols[i].Role != RoleGroup {
			continue
		}
		cols[i].Visible = len(structure) > 1
		if !cols[i].Visible {
			cols[i].Width = 0
			cols[i].Weight = 0
		} else {
			cols[i].Weight = defaultWeightForRole(RoleGroup)
		}
	}
}

// gutterWidth is the total width given to the gutter on a terminal of
// the given width.
func gutterWidth(terminalWidth int) int {
	return clamp(terminalWidth/4, gutterMinWidth, gutterMaxWidth)
}

func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		for i := range cols {
			if !cols[i].Visible {
				continue
			}
			cols[i].Width = min(cols[i].MinWidth, totalWidth)
		}
		return cols
	}

	remaining := totalWidth - minSum
	given := 0
	last := -1
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
		given += cols[i].Width
		last = i
	}
	// rounding leftovers go to the last visible column
	if last >= 0 && given < totalWidth {
		cols[last].Width += totalWidth - given
	}
	return cols
}

// columnAt returns the visible column under gutter offset x.
func columnAt(cols []ColumnMeta, x int) (ColumnMeta, bool) {
	if x < 0 {
		return ColumnMeta{}, false
	}
	for _, c := range cols {
		if !c.Visible || c.Width <= 0 {
			continue
		}
		if x < c.Width {
			return c, true
		}
		x -= c.Width
	}
	return ColumnMeta{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
