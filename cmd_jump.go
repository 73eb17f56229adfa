package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	tea "github.com/charmbracelet/bubbletea"
)

var errEmptyRange = errors.New("empty line range")

// parseLineRange reads a 1-based inclusive range such as "3-9", "12",
// "5-" or "-4" into a line window over total lines.
func parseLineRange(s string, total int) (timeline.LineWindow, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return timeline.LineWindow{}, errEmptyRange
	}

	bound := func(part string) (int, error) {
		part = strings.TrimSpace(part)
		if part == "" {
			return timeline.Unbounded, nil
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid line number %q: %w", part, err)
		}
		if n < 1 || n > total {
			return 0, fmt.Errorf("line %d out of range (1-%d)", n, total)
		}
		return n - 1, nil
	}

	from, to, isRange := strings.Cut(s, "-")
	lo, err := bound(from)
	if err != nil {
		return timeline.LineWindow{}, err
	}
	if !isRange {
		return timeline.LineWindow{Start: lo, End: lo}, nil
	}
	hi, err := bound(to)
	if err != nil {
		return timeline.LineWindow{}, err
	}
	if lo != timeline.Unbounded && hi != timeline.Unbounded && lo > hi {
		lo, hi = hi, lo
	}
	return timeline.LineWindow{Start: lo, End: hi}, nil
}

func (m *model) showLines(input string) tea.Cmd {
	total := m.chart.ActiveLines()
	if total == 0 {
		return m.startNotice("No lines to show", noticeWarn, noticeDuration)
	}
	w, err := parseLineRange(input, total)
	if err != nil {
		logging.Debugf("showLines: %v", err)
		return m.startNotice(err.Error(), noticeWarn, noticeDuration)
	}
	if !m.chart.SetLineWindow(w) {
		return m.startNotice("Lines already shown", noticeInfo, noticeDuration)
	}
	return nil
}

// centreOnLine moves the line window, keeping its size, so that line i
// is in the middle.
func (m *model) centreOnLine(i int) bool {
	total := m.chart.ActiveLines()
	lo, hi := m.chart.LineWindow().Resolve(total)
	size := hi - lo
	if size >= total-1 {
		return false
	}
	start := clamp(i-size/2, 0, total-1-size)
	return m.chart.SetLineWindow(timeline.LineWindow{Start: start, End: start + size})
}

func (m *model) showGroup(name string) tea.Cmd {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for _, g := range m.chart.Structure() {
		if strings.EqualFold(g.Name, name) {
			name = g.Name
			break
		}
	}
	if !m.chart.ZoomToGroup(name) {
		return m.startNotice(fmt.Sprintf("Group %q not shown", name), noticeWarn, noticeDuration)
	}
	return nil
}
