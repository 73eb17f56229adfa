package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-timelines/timeline"
	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce finds a line and scrolls it into view. "group/label" looks
// the line up by name and falls back to the nearest line after it; any
// other query matches the first line containing it.
func (m *model) searchOnce(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	m.ui.searchQuery = query

	total := m.chart.ActiveLines()
	if total == 0 {
		return m.startNotice("No lines to search", noticeWarn, noticeDuration)
	}

	if group, label, ok := strings.Cut(query, "/"); ok {
		target := timeline.LineRef{Group: group, Label: label}
		i := clamp(m.chart.LabelToIndex(target, timeline.BiasAfter), 0, total-1)
		got, _ := m.chart.IndexToLabel(i)
		m.centreOnLine(i)
		if got != target {
			return m.startNotice(fmt.Sprintf("%s not found, nearest is %s", target, got), noticeWarn, noticeDuration)
		}
		return m.startNotice(fmt.Sprintf("%s is line %d", got, i+1), noticeInfo, noticeDuration)
	}

	q := strings.ToLower(query)
	for i := 0; i < total; i++ {
		ref, _ := m.chart.IndexToLabel(i)
		if strings.Contains(strings.ToLower(ref.Label), q) || strings.Contains(strings.ToLower(ref.Group), q) {
			m.centreOnLine(i)
			return m.startNotice(fmt.Sprintf("%s is line %d", ref, i+1), noticeInfo, noticeDuration)
		}
	}
	return m.startNotice(fmt.Sprintf("No line matches %q", query), noticeWarn, noticeDuration)
}
