package main

import (
	"time"

	"github.com/andareed/siftly-timelines/timeline"
	"github.com/charmbracelet/bubbles/textinput"
)

// drawerFocus is the part of the time-window drawer taking keys.
type drawerFocus int

const (
	timeWindowFocusStart drawerFocus = iota
	timeWindowFocusEnd
	timeWindowFocusScrubber
	drawerFocusCount
)

func (f drawerFocus) next() drawerFocus { return (f + 1) % drawerFocusCount }
func (f drawerFocus) prev() drawerFocus { return (f + drawerFocusCount - 1) % drawerFocusCount }

// start, end, scrubber, help and error rows inside a border.
const timeWindowDrawerHeight = 5 + 2

// fallbackStep is used while the chart has no extent.
const fallbackStep = 30 * time.Minute

// stepBounds limit the scrubber step for one chart.
type stepBounds struct {
	min, def, max time.Duration
}

// stepBoundsFor sizes the scrubber step to the extent: an eighth of it by
// default, no finer than the zoom damper and no coarser than half the
// extent.
func stepBoundsFor(extent, minSpan time.Duration) stepBounds {
	if extent <= 0 {
		return stepBounds{min: fallbackStep, def: fallbackStep, max: fallbackStep}
	}
	lo := max(minSpan, time.Second)
	hi := max(extent/2, lo)
	return stepBounds{min: lo, def: clampDuration(snapStep(extent/8), lo, hi), max: hi}
}

func (b stepBounds) clamp(d time.Duration) time.Duration {
	if d <= 0 {
		return b.def
	}
	return clampDuration(d, b.min, b.max)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	switch {
	case d < lo:
		return lo
	case d > hi:
		return hi
	}
	return d
}

// snapStep rounds d to the unit formatStep shows.
func snapStep(d time.Duration) time.Duration {
	switch {
	case d >= time.Hour:
		return d.Round(time.Minute)
	case d >= time.Minute:
		return d.Round(time.Second)
	}
	return d.Round(time.Millisecond)
}

type timeWindowUI struct {
	open       bool
	focus      drawerFocus
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string
	draftStart time.Time
	draftEnd   time.Time

	// origWindow is the chart window when the drawer opened; Esc puts it back.
	origWindow timeline.TimeWindow
	steps      stepBounds
	step       time.Duration
}

func initTimeWindowInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = timeInputLayout
	ti.CharLimit = len(timeInputLayout)
	ti.Width = len(timeInputLayout)
	ti.Prompt = ""
	return ti
}
