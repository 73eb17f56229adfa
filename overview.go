package main

import (
	"time"

	"github.com/andareed/siftly-timelines/timeline"
)

// overviewBar is the minimap under the lanes: the chart's full extent with
// the current (or previewed) time window marked on it.
type overviewBar struct {
	domain    timeline.TimeWindow
	selection timeline.TimeWindow
	width     int

	dragging bool
	dragFrom int
}

func (o *overviewBar) SetDomain(w timeline.TimeWindow)    { o.domain = w }
func (o *overviewBar) SetSelection(w timeline.TimeWindow) { o.selection = w }

// timeAt maps a column of the bar to a time in the domain.
func (o *overviewBar) timeAt(x int) time.Time {
	if o.width <= 1 || !o.domain.Bounded() {
		return o.domain.Start
	}
	x = clamp(x, 0, o.width-1)
	frac := float64(x) / float64(o.width-1)
	return o.domain.Start.Add(time.Duration(frac * float64(o.domain.Span())))
}

// begin starts a selection on the bar at column x.
func (o *overviewBar) begin(x int) {
	o.dragging = true
	o.dragFrom = clamp(x, 0, max(o.width-1, 0))
}

// preview shows the selection from the press column to x without
// touching the chart.
func (o *overviewBar) preview(x int) {
	if !o.dragging {
		return
	}
	a, b := o.timeAt(o.dragFrom), o.timeAt(x)
	if b.Before(a) {
		a, b = b, a
	}
	o.selection = timeline.TimeWindow{Start: a, End: b}
}

// end finishes the selection at x. A click without movement returns a
// window of the current selection's span centred on the clicked time.
func (o *overviewBar) end(x int) (timeline.TimeWindow, bool) {
	if !o.dragging {
		return timeline.TimeWindow{}, false
	}
	o.dragging = false
	x = clamp(x, 0, max(o.width-1, 0))
	if x == o.dragFrom {
		span := o.selection.Span()
		if span <= 0 {
			return timeline.TimeWindow{}, false
		}
		mid := o.timeAt(x)
		start := mid.Add(-span / 2)
		return timeline.TimeWindow{Start: start, End: start.Add(span)}, true
	}
	a, b := o.timeAt(o.dragFrom), o.timeAt(x)
	if b.Before(a) {
		a, b = b, a
	}
	return timeline.TimeWindow{Start: a, End: b}, true
}

func (o *overviewBar) cancel() { o.dragging = false }

// View draws the bar across the plot width.
func (o *overviewBar) View() string {
	bar := scrubberBar(o.width, o.domain, o.selection)
	if bar == nil {
		return axisStyle.Render("overview: n/a")
	}
	out := make([]byte, 0, o.width*3)
	for _, r := range bar {
		if r == '━' || r == '[' || r == ']' {
			out = append(out, overviewSelectStyle.Render(string(r))...)
			continue
		}
		out = append(out, axisStyle.Render(string(r))...)
	}
	return string(out)
}

// scrubberBar marks window on a width-cell bar spanning domain. It returns
// nil when the domain has no extent or the bar is too narrow.
func scrubberBar(width int, domain, window timeline.TimeWindow) []rune {
	if width < 2 || !domain.Bounded() {
		return nil
	}
	rangeDur := domain.Span()
	if rangeDur <= 0 {
		return nil
	}

	bar := make([]rune, width)
	for i := range bar {
		bar[i] = '─'
	}

	start, end := window.Start, window.End
	if start.IsZero() {
		start = domain.Start
	}
	if end.IsZero() {
		end = domain.End
	}
	start = clampTimeToBounds(start, domain.Start, domain.End)
	end = clampTimeToBounds(end, domain.Start, domain.End)
	startPos := int(float64(width-1) * start.Sub(domain.Start).Seconds() / rangeDur.Seconds())
	endPos := int(float64(width-1) * end.Sub(domain.Start).Seconds() / rangeDur.Seconds())
	startPos = clamp(startPos, 0, width-1)
	endPos = clamp(endPos, 0, width-1)
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '━'
	}
	bar[startPos] = '['
	bar[endPos] = ']'
	return bar
}
