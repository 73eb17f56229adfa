package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-timelines/dialogs"
	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	"github.com/charmbracelet/lipgloss"
)

// footerView renders the 2-line footer.
// width is the content width inside the app margins.
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	legend := "(? help · drag to zoom · r reset · " + m.idleCommandHintsLine() + ")"
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
		legend = m.commandHintsLine(footerMode)
	}

	lo, hi := m.chart.LineWindow().Resolve(m.chart.ActiveLines())
	st := footerState{
		Mode:        footerMode,
		ModeInput:   modeInput,
		FileName:    m.InitialPath,
		Phase:       m.chart.Phase().String(),
		SortLabel:   m.data.sortLabel(),
		FilterLabel: "off",
		LineFrom:    lo + 1,
		LineTo:      hi + 1,
		TotalLines:  m.chart.ActiveLines(),
		Segments:    len(m.chart.View().Segments),
		Legend:      legend,
	}
	if m.data.minDuration > 0 {
		st.FilterLabel = m.data.minDuration.String()
	}
	switch {
	case m.ui.noticeMsg != "":
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	case m.ui.scentStatus != "":
		st.StatusMessage = m.ui.scentStatus
	default:
		st.StatusMessage = m.timeWindowStatusLabel()
	}

	if logging.IsDebugMode() {
		ox, oy := m.plotOrigin()
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d origin=%d,%d renders=%d",
			m.terminalWidth, m.terminalHeight, ox, oy, m.lanes.renders)
	}

	return renderFooter(width, st, styles)
}

func (m *model) overviewView() string {
	pad := strings.Repeat(" ", m.lanes.gutterWidth()+m.cfg.Chart.Margins.Left)
	return pad + m.overview.View()
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.activeDialog, m.terminalWidth, m.terminalHeight)
	}

	var sel *timeline.Rect
	if r, ok := m.chart.Selection(); ok {
		sel = &r
	}

	contentW := max(m.terminalWidth-2*appMarginLeft, 0)
	parts := []string{
		m.lanes.AxisView(m.cfg.Chart.Location()),
		m.lanes.View(sel),
	}
	if m.cfg.Chart.EnableOverview {
		parts = append(parts, m.overviewView())
	}
	if m.ui.timeWindow.open {
		parts = append(parts, m.timeWindowDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
