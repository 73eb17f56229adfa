package main

import (
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/timeline"
)

const timeInputLayout = "2006-01-02 15:04:05"

func clampTimeToBounds(t time.Time, min time.Time, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

// parseTimeInput reads a drawer field in the display zone.
func parseTimeInput(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(timeInputLayout, strings.TrimSpace(raw), loc)
}

// currentWindow is the chart's time window with unbounded ends filled
// from the extent.
func (m *model) currentWindow() timeline.TimeWindow {
	ext := m.chart.Extent()
	w := m.chart.TimeWindow()
	if w.Start.IsZero() {
		w.Start = ext.Start
	}
	if w.End.IsZero() {
		w.End = ext.End
	}
	return w
}

func (m *model) hasTimeBounds() bool {
	return m.chart.Extent().Bounded()
}
