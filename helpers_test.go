package main

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-timelines/config"
	"github.com/andareed/siftly-timelines/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var hour0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(h float64) time.Time { return hour0.Add(time.Duration(h * float64(time.Hour))) }

func rawSeg(start, end time.Time, val float64) timeline.RawSegment {
	v := val
	return timeline.RawSegment{TimeRange: [2]any{start, end}, Val: &v}
}

// rawLanes is A (a1..a5) and B (b1..b3) over [0h, 8h]. b3 only holds a
// 30 second segment.
func rawLanes() []timeline.RawGroup {
	a := timeline.RawGroup{Group: "A"}
	for n := 1; n <= 5; n++ {
		a.Data = append(a.Data, timeline.RawLine{
			Label: fmt.Sprintf("a%d", n),
			Data:  []timeline.RawSegment{rawSeg(at(0), at(8), float64(n))},
		})
	}
	b := timeline.RawGroup{Group: "B", Data: []timeline.RawLine{
		{Label: "b1", Data: []timeline.RawSegment{rawSeg(at(0), at(4), 1), rawSeg(at(5), at(8), 2)}},
		{Label: "b2", Data: []timeline.RawSegment{rawSeg(at(2), at(6), 3)}},
		{Label: "b3", Data: []timeline.RawSegment{rawSeg(at(1), at(1).Add(30*time.Second), 4)}},
	}}
	return []timeline.RawGroup{a, b}
}

// newTestModel loads rawLanes into a 100x30 terminal.
func newTestModel(t *testing.T) *model {
	t.Helper()
	cfg := config.Default()
	cfg.Chart.UseUTC = true
	m, err := newModel(cfg, filepath.Join(t.TempDir(), "lanes.json"), rawLanes())
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *model, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

// typeCommand opens the command line with prefix, types input and submits.
func typeCommand(m *model, prefix, input string) {
	m.Update(keyRunes(prefix))
	if input != "" {
		m.Update(keyRunes(input))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}
