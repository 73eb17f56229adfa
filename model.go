package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/clipboard"
	"github.com/andareed/siftly-timelines/config"
	"github.com/andareed/siftly-timelines/dialogs"
	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	axisRows   = 1
	footerRows = 2
)

type model struct {
	cfg      config.Config
	chart    *timeline.Chart
	lanes    *laneRenderer
	overview *overviewBar
	colors   *colorScale

	data dataState
	ui   uiState

	activeDialog dialogs.Dialog

	terminalWidth  int
	terminalHeight int
	ready          bool
	InitialPath    string
}

// newModel builds the app around a chart loaded with raw and sorted as
// configured.
func newModel(cfg config.Config, path string, raw []timeline.RawGroup) (*model, error) {
	colors := newColorScale(cfg.Colors, lipgloss.ColorProfile())
	layout := cfg.Chart.Layout(0, 0)
	m := &model{
		cfg:         cfg,
		chart:       timeline.NewChart(cfg.Chart.Options(0, 0)),
		lanes:       newLaneRenderer(colors, layout.Margins),
		overview:    &overviewBar{},
		colors:      colors,
		InitialPath: path,
		data: dataState{
			minDuration: cfg.Chart.MinSegmentDuration,
			lastDir:     filepath.Dir(path),
		},
	}
	m.chart.SetRenderer(m.lanes)
	if cfg.Chart.EnableOverview {
		m.chart.SetOverview(m.overview)
	}
	m.chart.OnZoom(m.onZoom)
	m.chart.OnScent(m.onScent)

	if err := m.chart.SetData(raw); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	m.colors.SetDomain(m.chart.Data().Segments)
	if err := m.applySort(sortMode(cfg.Sort.Mode), cfg.Sort.Ascending); err != nil {
		return nil, err
	}
	m.InitialiseUI()
	return m, nil
}

func (m *model) InitialiseUI() {
	m.ui.mode = modeView
	m.ui.timeWindow.startInput = initTimeWindowInput()
	m.ui.timeWindow.endInput = initTimeWindowInput()
	m.ui.timeWindow.steps = m.drawerStepBounds()
	m.ui.timeWindow.step = m.ui.timeWindow.steps.def
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sftl: initialised with %d lines", m.chart.TotalLines())
	return nil
}

func (m *model) onZoom(tw timeline.TimeWindow, lw timeline.LineWindow) {
	logging.Infof("zoom: time %s lines %s", tw, lw)
	m.ui.scentStatus = ""
}

func (m *model) onScent(p timeline.Proposal) {
	tw, lw := m.chart.TimeWindow(), m.chart.LineWindow()
	if p.ChangeTime {
		tw = p.Time
	}
	if p.ChangeLines {
		lw = p.Lines
	}
	m.ui.scentStatus = fmt.Sprintf("→ %s", m.describeWindow(tw, lw))
}

func (m *model) describeWindow(tw timeline.TimeWindow, lw timeline.LineWindow) string {
	loc := m.cfg.Chart.Location()
	f := func(t, fallback string) string {
		if t == "" {
			return fallback
		}
		return t
	}
	start, end := "", ""
	if !tw.Start.IsZero() {
		start = tw.Start.In(loc).Format(timeInputLayout)
	}
	if !tw.End.IsZero() {
		end = tw.End.In(loc).Format(timeInputLayout)
	}
	lo, hi := lw.Resolve(m.chart.ActiveLines())
	return fmt.Sprintf("%s - %s, lines %d-%d", f(start, "start"), f(end, "end"), lo+1, hi+1)
}

func (m *model) applySort(mode sortMode, asc bool) error {
	var err error
	switch mode {
	case sortAlpha:
		err = m.chart.SortAlpha(asc)
	case sortChrono:
		err = m.chart.SortChrono(asc)
	case sortNone, "":
		mode = sortNone
	default:
		return fmt.Errorf("unknown sort mode %q", mode)
	}
	if err != nil {
		return err
	}
	m.data.sort = mode
	m.data.ascending = asc
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// a held press point belongs to the old frame
		m.cancelDrag()
		m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
		m.ready = true
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.BlurMsg:
		m.cancelDrag()
		return m, nil
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil
	case dialogs.SaveConfirmedMsg:
		m.closeDialog()
		return m, m.saveTo(msg.Path)
	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		return m, m.exportTo(msg.Path)
	case dialogs.SaveCanceledMsg, dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil
	}
	return m, nil
}

// resize lays the gutter and plot out for the current terminal size.
func (m *model) resize() {
	if m.terminalWidth <= 0 || m.terminalHeight <= 0 {
		return
	}
	gw := gutterWidth(m.terminalWidth)
	m.lanes.SetGutter(gw, m.chart.Structure())

	rows := m.terminalHeight - 2*appMarginTop - axisRows - m.overviewRows() - m.drawerRows() - footerRows
	width := m.terminalWidth - 2*appMarginLeft - m.lanes.gutterWidth()
	l := m.cfg.Chart.Layout(max(width, 0), max(rows, 0))
	m.overview.width = max(l.Width-l.Margins.Left-l.Margins.Right, 0)
	m.chart.SetSize(l.Width, l.MaxHeight)
	logging.Debugf("resize: term=%dx%d gutter=%d layout=%dx%d", m.terminalWidth, m.terminalHeight, gw, l.Width, l.MaxHeight)
}

func (m *model) overviewRows() int {
	if m.cfg.Chart.EnableOverview {
		return 1
	}
	return 0
}

func (m *model) drawerRows() int {
	if m.ui.timeWindow.open {
		return timeWindowDrawerHeight
	}
	return 0
}

// plotOrigin is the screen cell of the plot's top-left corner.
func (m *model) plotOrigin() (int, int) {
	x := appMarginLeft + m.lanes.gutterWidth() + m.cfg.Chart.Margins.Left
	y := appMarginTop + axisRows + m.cfg.Chart.Margins.Top
	return x, y
}

// plotPoint maps a screen cell to the plot coordinate of its centre.
func (m *model) plotPoint(x, y int) timeline.Point {
	ox, oy := m.plotOrigin()
	return timeline.Point{X: float64(x-ox) + 0.5, Y: float64(y-oy) + 0.5}
}

func (m *model) overviewRow() int {
	return appMarginTop + axisRows + m.lanes.height()
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeTimeWindow:
		return m.handleTimeWindowKey(msg)
	case modeDialog:
		return m.handleDialogKey(msg)
	}
	return m.handleViewModeKey(msg)
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.CancelDrag):
		m.cancelDrag()
	case key.Matches(msg, Keys.Reset):
		if !m.chart.ResetZoom() {
			return m, m.startNotice("Already showing everything", noticeInfo, noticeDuration)
		}
	case key.Matches(msg, Keys.SortAlpha):
		return m, m.sortBy(sortAlpha, msg.String() == "a")
	case key.Matches(msg, Keys.SortChrono):
		return m, m.sortBy(sortChrono, msg.String() == "c")
	case key.Matches(msg, Keys.PanLeft):
		m.chart.Pan(-m.panStep())
	case key.Matches(msg, Keys.PanRight):
		m.chart.Pan(m.panStep())
	case key.Matches(msg, Keys.LineDown):
		m.chart.ScrollLines(1)
	case key.Matches(msg, Keys.LineUp):
		m.chart.ScrollLines(-1)
	case key.Matches(msg, Keys.PageDown):
		m.chart.ScrollLines(max(m.chart.VisibleLines(), 1))
	case key.Matches(msg, Keys.PageUp):
		m.chart.ScrollLines(-max(m.chart.VisibleLines(), 1))
	case key.Matches(msg, Keys.ZoomIn):
		m.chart.ScaleTime(0.5)
	case key.Matches(msg, Keys.ZoomOut):
		m.chart.ScaleTime(2)
	case key.Matches(msg, Keys.TimeWindow):
		m.openTimeWindowDrawer()
	case key.Matches(msg, Keys.MinDuration):
		m.enterCommandMode(CmdFilter)
	case key.Matches(msg, Keys.Search, Keys.Lines, Keys.Group):
		m.enterCommandMode(CommandFromPrefix(msg.Runes[0]))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	case key.Matches(msg, Keys.SaveToFile):
		return m, m.openDialog(dialogs.NewSaveDialog(defaultSaveName(m), m.data.lastDir))
	case key.Matches(msg, Keys.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName(m), m.data.lastDir))
	case key.Matches(msg, Keys.CopyLines):
		return m, m.copyVisibleLines()
	}
	return m, nil
}

func (m *model) sortBy(mode sortMode, asc bool) tea.Cmd {
	if err := m.applySort(mode, asc); err != nil {
		return m.startNotice(err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("Sorted by "+m.data.sortLabel(), noticeInfo, noticeDuration)
}

// panStep is an eighth of the visible time span.
func (m *model) panStep() time.Duration {
	return m.currentWindow().Span() / 8
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.cancelDrag()
	m.activeDialog = d
	m.ui.mode = modeDialog
	return d.Init()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
	m.ui.mode = modeView
}

func (m *model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.activeDialog == nil {
		m.ui.mode = modeView
		return m, nil
	}
	d, cmd := m.activeDialog.Update(msg)
	m.activeDialog = d
	if !d.IsVisible() {
		m.closeDialog()
	}
	return m, cmd
}

// handleMouse routes left-button drags to the plot or the overview and
// clicks in the gutter to label zooms. The wheel scrolls lines.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.ui.mode == modeDialog || m.ui.mode == modeCommand {
		return nil
	}
	ox, _ := m.plotOrigin()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.chart.ScrollLines(-1)
		case tea.MouseButtonWheelDown:
			m.chart.ScrollLines(1)
		case tea.MouseButtonLeft:
			switch {
			case m.cfg.Chart.EnableOverview && msg.Y == m.overviewRow() && msg.X >= ox:
				m.overview.begin(msg.X - ox)
			case msg.X < ox-m.cfg.Chart.Margins.Left:
				return m.clickLabel(msg.X, msg.Y)
			default:
				m.ui.dragging = m.chart.PointerDown(m.plotPoint(msg.X, msg.Y))
			}
		}
	case tea.MouseActionMotion:
		switch {
		case m.ui.dragging:
			m.chart.PointerMove(m.plotPoint(msg.X, msg.Y))
		case m.overview.dragging:
			m.overview.preview(msg.X - ox)
		}
	case tea.MouseActionRelease:
		switch {
		case m.ui.dragging:
			m.ui.dragging = false
			m.ui.scentStatus = ""
			m.chart.PointerUp(m.plotPoint(msg.X, msg.Y))
		case m.overview.dragging:
			w, ok := m.overview.end(msg.X - ox)
			if !ok || !m.chart.OverviewChanged(w.Start, w.End) {
				m.chart.Refresh()
			}
		}
	}
	return nil
}

func (m *model) cancelDrag() {
	if m.ui.dragging {
		m.ui.dragging = false
		m.ui.scentStatus = ""
		m.chart.PointerCancel()
	}
	if m.overview.dragging {
		m.overview.cancel()
		m.chart.Refresh()
	}
}

// clickLabel zooms to the group or the single line whose gutter label sits
// at screen cell (x, y).
func (m *model) clickLabel(x, y int) tea.Cmd {
	col, ok := columnAt(m.lanes.cols, x-appMarginLeft)
	if !ok {
		return nil
	}
	p := m.plotPoint(x, y)
	ref, ok := m.chart.Translator().LineAt(p.Y)
	if !ok {
		return nil
	}
	switch col.Role {
	case RoleGroup:
		m.chart.ZoomToGroup(ref.Group)
	case RoleLabel:
		i := m.chart.LabelToIndex(ref, timeline.BiasAfter)
		m.chart.SetLineWindow(timeline.LineWindow{Start: i, End: i})
	}
	return nil
}

// visibleLinesText lists the visible lines, one group header followed by
// its indented labels.
func (m *model) visibleLinesText() string {
	var b strings.Builder
	for _, g := range m.chart.VisibleStructure() {
		b.WriteString(g.Name)
		b.WriteByte('\n')
		for _, l := range g.Lines {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *model) copyVisibleLines() tea.Cmd {
	text := m.visibleLinesText()
	if text == "" {
		return m.startNotice("Nothing to copy", noticeWarn, noticeDuration)
	}
	if err := clipboard.Copy(text); err != nil {
		logging.Warnf("copy: %v", err)
		return m.startNotice("Copy failed", noticeError, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Copied %d lines", m.chart.VisibleLines()), noticeSuccess, noticeDuration)
}
