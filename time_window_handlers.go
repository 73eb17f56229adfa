package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *model) openTimeWindowDrawer() {
	tw := &m.ui.timeWindow
	tw.open = true
	tw.errorMsg = ""
	tw.origWindow = m.chart.TimeWindow()
	tw.steps = m.drawerStepBounds()
	tw.step = tw.steps.def

	if !m.hasTimeBounds() {
		tw.errorMsg = "No segments to window"
		tw.startInput.SetValue("")
		tw.endInput.SetValue("")
		tw.draftStart = time.Time{}
		tw.draftEnd = time.Time{}
	} else {
		cur := m.currentWindow()
		tw.draftStart, tw.draftEnd = cur.Start, cur.End
		m.updateTimeWindowInputsFromDraft()
	}

	m.setTimeWindowFocus(timeWindowFocusStart)
	m.ui.mode = modeTimeWindow
	m.resize()
}

func (m *model) closeTimeWindowDrawer() {
	m.ui.timeWindow.open = false
	m.ui.timeWindow.errorMsg = ""
	m.ui.mode = modeView
	m.resize()
}

// cancelTimeWindowDrawer drops the draft and puts back the window the
// drawer was opened with.
func (m *model) cancelTimeWindowDrawer() {
	tw := &m.ui.timeWindow
	if !m.chart.TimeWindow().Equal(tw.origWindow) {
		m.chart.SetTimeWindow(tw.origWindow)
	}
	m.closeTimeWindowDrawer()
}

func (m *model) handleTimeWindowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tw := &m.ui.timeWindow

	switch {
	case msg.Type == tea.KeyEsc:
		m.cancelTimeWindowDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyTimeWindowFromInputs()
	case tw.focus == timeWindowFocusScrubber && msg.String() == "r":
		m.resetTimeWindowDraft()
		return m, nil
	case msg.Type == tea.KeyTab:
		m.setTimeWindowFocus(tw.focus.next())
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setTimeWindowFocus(tw.focus.prev())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyLeft:
		m.shiftTimeWindow(-m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyRight:
		m.shiftTimeWindow(m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyShiftLeft:
		m.expandTimeWindow(-m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.Type == tea.KeyShiftRight:
		m.expandTimeWindow(m.timeWindowStep())
		return m, nil
	case tw.focus == timeWindowFocusScrubber && msg.String() == "-":
		m.adjustTimeWindowStep(false)
		return m, nil
	case tw.focus == timeWindowFocusScrubber && (msg.String() == "+" || msg.String() == "="):
		m.adjustTimeWindowStep(true)
		return m, nil
	}

	var cmd tea.Cmd
	switch tw.focus {
	case timeWindowFocusStart:
		tw.startInput, cmd = tw.startInput.Update(msg)
	case timeWindowFocusEnd:
		tw.endInput, cmd = tw.endInput.Update(msg)
	}
	return m, cmd
}

func (m *model) setTimeWindowFocus(focus drawerFocus) {
	tw := &m.ui.timeWindow
	tw.focus = focus
	switch focus {
	case timeWindowFocusStart:
		tw.startInput.Focus()
		tw.endInput.Blur()
	case timeWindowFocusEnd:
		tw.startInput.Blur()
		tw.endInput.Focus()
	default:
		m.syncDraftFromInputs()
		tw.startInput.Blur()
		tw.endInput.Blur()
	}
}

func (m *model) updateTimeWindowInputsFromDraft() {
	tw := &m.ui.timeWindow
	loc := m.cfg.Chart.Location()
	if !tw.draftStart.IsZero() {
		tw.startInput.SetValue(tw.draftStart.In(loc).Format(timeInputLayout))
	}
	if !tw.draftEnd.IsZero() {
		tw.endInput.SetValue(tw.draftEnd.In(loc).Format(timeInputLayout))
	}
}

func (m *model) syncDraftFromInputs() {
	tw := &m.ui.timeWindow
	if !m.hasTimeBounds() {
		return
	}
	loc := m.cfg.Chart.Location()
	if start, err := parseTimeInput(tw.startInput.Value(), loc); err == nil {
		tw.draftStart = start
	}
	if end, err := parseTimeInput(tw.endInput.Value(), loc); err == nil {
		tw.draftEnd = end
	}
}

// previewDraft shows the draft on the overview without committing it.
func (m *model) previewDraft() {
	tw := &m.ui.timeWindow
	m.overview.SetSelection(timeline.TimeWindow{Start: tw.draftStart, End: tw.draftEnd})
}

// resetTimeWindowDraft zooms the chart out and reloads the draft from the
// result. Esc still restores the window the drawer was opened with.
func (m *model) resetTimeWindowDraft() {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.hasTimeBounds() {
		tw.errorMsg = "No segments to window"
		return
	}

	m.chart.ResetZoom()
	cur := m.currentWindow()
	tw.draftStart, tw.draftEnd = cur.Start, cur.End
	m.updateTimeWindowInputsFromDraft()
}

func (m *model) applyTimeWindowFromInputs() tea.Cmd {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.hasTimeBounds() {
		tw.errorMsg = "No segments to window"
		return nil
	}

	loc := m.cfg.Chart.Location()
	start, err := parseTimeInput(tw.startInput.Value(), loc)
	if err != nil {
		tw.errorMsg = "Invalid start time"
		return nil
	}
	end, err := parseTimeInput(tw.endInput.Value(), loc)
	if err != nil {
		tw.errorMsg = "Invalid end time"
		return nil
	}
	if !start.Before(end) {
		tw.errorMsg = "Start must be before end"
		return nil
	}

	w := timeline.TimeWindow{Start: start, End: end}
	if span := w.Span(); span <= m.chart.Options().MinZoomSpan {
		tw.errorMsg = fmt.Sprintf("Window must be wider than %s", m.chart.Options().MinZoomSpan)
		return nil
	}

	tw.draftStart, tw.draftEnd = start, end
	changed := m.chart.SetTimeWindow(w)
	logging.Debugf("time window drawer: applied %s changed=%v", w, changed)
	m.closeTimeWindowDrawer()
	if !changed {
		return nil
	}
	return m.startNotice("Time window applied", noticeSuccess, noticeDuration)
}

func (m *model) shiftTimeWindow(delta time.Duration) {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.hasTimeBounds() {
		tw.errorMsg = "No segments to window"
		return
	}

	m.syncDraftFromInputs()
	ext := m.chart.Extent()
	if tw.draftStart.IsZero() || tw.draftEnd.IsZero() {
		tw.draftStart, tw.draftEnd = ext.Start, ext.End
	}

	rangeDur := ext.Span()
	windowDur := tw.draftEnd.Sub(tw.draftStart)
	if windowDur <= 0 {
		windowDur = tw.steps.min
	}
	if windowDur >= rangeDur {
		tw.draftStart = ext.Start
		tw.draftEnd = ext.End
		m.updateTimeWindowInputsFromDraft()
		m.previewDraft()
		return
	}

	nextStart := tw.draftStart.Add(delta)
	nextEnd := tw.draftEnd.Add(delta)
	if nextStart.Before(ext.Start) {
		nextStart = ext.Start
		nextEnd = ext.Start.Add(windowDur)
	}
	if nextEnd.After(ext.End) {
		nextEnd = ext.End
		nextStart = ext.End.Add(-windowDur)
	}

	tw.draftStart = nextStart
	tw.draftEnd = nextEnd
	m.updateTimeWindowInputsFromDraft()
	m.previewDraft()
}

// drawerStepBounds derives the scrubber step limits from the chart.
func (m *model) drawerStepBounds() stepBounds {
	return stepBoundsFor(m.chart.Extent().Span(), m.chart.Options().MinZoomSpan)
}

func (m *model) timeWindowStep() time.Duration {
	return m.ui.timeWindow.steps.clamp(m.ui.timeWindow.step)
}

// adjustTimeWindowStep doubles or halves the step within its bounds.
func (m *model) adjustTimeWindowStep(increase bool) {
	step := m.timeWindowStep()
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	m.ui.timeWindow.step = m.ui.timeWindow.steps.clamp(step)
}

func (m *model) expandTimeWindow(delta time.Duration) {
	tw := &m.ui.timeWindow
	tw.errorMsg = ""

	if !m.hasTimeBounds() {
		tw.errorMsg = "No segments to window"
		return
	}

	m.syncDraftFromInputs()
	ext := m.chart.Extent()
	if tw.draftStart.IsZero() || tw.draftEnd.IsZero() {
		tw.draftStart, tw.draftEnd = ext.Start, ext.End
	}

	if delta < 0 {
		tw.draftStart = clampTimeToBounds(tw.draftStart.Add(delta), ext.Start, ext.End)
		if tw.draftStart.After(tw.draftEnd) {
			tw.draftEnd = tw.draftStart
		}
	} else if delta > 0 {
		tw.draftEnd = clampTimeToBounds(tw.draftEnd.Add(delta), ext.Start, ext.End)
		if tw.draftEnd.Before(tw.draftStart) {
			tw.draftStart = tw.draftEnd
		}
	}

	m.updateTimeWindowInputsFromDraft()
	m.previewDraft()
}

func formatStep(step time.Duration) string {
	switch {
	case step%(24*time.Hour) == 0:
		return fmt.Sprintf("%dd", int(step/(24*time.Hour)))
	case step%time.Hour == 0:
		return fmt.Sprintf("%dh", int(step/time.Hour))
	case step%time.Minute == 0:
		return fmt.Sprintf("%dm", int(step/time.Minute))
	case step%time.Second == 0 && step < time.Minute:
		return fmt.Sprintf("%ds", int(step/time.Second))
	}
	return step.String()
}

func (m *model) timeWindowDrawerView(width int) string {
	tw := &m.ui.timeWindow
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	startLine := fmt.Sprintf("Start: %s", tw.startInput.View())
	endLine := fmt.Sprintf("End:   %s", tw.endInput.View())
	scrubberLine := m.timeWindowScrubberLine(innerWidth)
	helpLine := fmt.Sprintf("tab: next  enter: apply  esc: cancel  on bar: r reset  ←/→ move %s  shift+←/→ expand %s  -/+ step",
		formatStep(m.timeWindowStep()),
		formatStep(m.timeWindowStep()),
	)
	errorLine := ""
	if tw.errorMsg != "" {
		errorLine = "Error: " + tw.errorMsg
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return timeWindowArea.Width(width).Render(content)
}

func (m *model) timeWindowScrubberLine(width int) string {
	if !m.hasTimeBounds() {
		return "Scrubber: n/a"
	}

	tw := &m.ui.timeWindow
	ext := m.chart.Extent()
	loc := m.cfg.Chart.Location()
	window := timeline.TimeWindow{Start: tw.draftStart, End: tw.draftEnd}

	minLabel := ext.Start.In(loc).Format(timeInputLayout)
	maxLabel := ext.End.In(loc).Format(timeInputLayout)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	bar := scrubberBar(barWidth, ext, window)
	if barWidth < 10 || bar == nil {
		return fmt.Sprintf("Window: %s - %s",
			tw.draftStart.In(loc).Format(timeInputLayout), tw.draftEnd.In(loc).Format(timeInputLayout))
	}

	marker := ""
	if tw.focus == timeWindowFocusScrubber {
		marker = "▸"
	}
	return fmt.Sprintf("%s%s  %s  %s", marker, minLabel, string(bar), maxLabel)
}

func (m *model) timeWindowStatusLabel() string {
	w := m.chart.TimeWindow()
	if w.Start.IsZero() && w.End.IsZero() {
		return "Window: all"
	}
	loc := m.cfg.Chart.Location()
	cur := m.currentWindow()
	return fmt.Sprintf("Window: %s - %s",
		cur.Start.In(loc).Format(timeInputLayout),
		cur.End.In(loc).Format(timeInputLayout),
	)
}
