package main

import (
	"math"
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
)

const axisTickSpacing = 16

// laneRenderer turns chart frames into terminal rows. Render runs inside
// the chart's commit; View draws the cached rows with the live drag
// selection on top.
type laneRenderer struct {
	colors  *colorScale
	cols    []ColumnMeta
	margins timeline.Margins

	frame   timeline.Frame
	rows    []laneRow
	renders int
}

func newLaneRenderer(colors *colorScale, margins timeline.Margins) *laneRenderer {
	return &laneRenderer{colors: colors, cols: newGutterColumns(), margins: margins}
}

func (r *laneRenderer) Render(f timeline.Frame) {
	r.frame = f
	r.rows = buildLaneRows(f)
	r.renders++
	logging.Debugf("render: %d lines, %d segments, %d rows, plot %.0fx%.0f",
		f.View.LineCount, len(f.View.Segments), len(r.rows), f.Plot.Width(), f.Plot.Height())
}

// SetGutter lays the gutter columns out for the given width and structure.
func (r *laneRenderer) SetGutter(width int, structure []timeline.Group) {
	markEmptyColumns(r.cols, structure)
	r.cols = layoutColumns(r.cols, width)
}

func (r *laneRenderer) gutterWidth() int {
	w := 0
	for _, c := range r.cols {
		if c.Visible {
			w += c.Width
		}
	}
	return w
}

func buildLaneRows(f timeline.Frame) []laneRow {
	height := int(f.Plot.Height())
	width := int(f.Plot.Width())
	if height <= 0 || len(f.Lines.Domain) == 0 {
		return nil
	}

	byLine := make(map[timeline.LineRef][]timeline.Segment, f.View.LineCount)
	for _, s := range f.View.Segments {
		byLine[s.Ref()] = append(byLine[s.Ref()], s)
	}

	groupRow := make(map[string]int, len(f.Groups))
	for _, g := range f.Groups {
		y := int(math.Floor(g.Mid()))
		groupRow[g.Group] = clamp(y, int(math.Floor(g.Y0)), max(int(math.Ceil(g.Y1))-1, 0))
	}

	cellTimes := make([][2]time.Time, width)
	for x := range cellTimes {
		cellTimes[x] = [2]time.Time{f.Time.Invert(float64(x)), f.Time.Invert(float64(x + 1))}
	}

	rows := make([]laneRow, 0, height)
	prev := -1
	for y := 0; y < height; y++ {
		rank := f.Lines.Invert(float64(y) + 0.5)
		ref := f.Lines.Domain[rank]
		row := laneRow{ref: ref, rank: rank, cells: make([]laneCell, width)}
		if rank != prev {
			row.label = ref.Label
		}
		if gy, ok := groupRow[ref.Group]; ok && gy == y {
			row.group = ref.Group
		}
		prev = rank

		for x, span := range cellTimes {
			for _, s := range byLine[ref] {
				if s.End.Before(span[0]) || s.Start.After(span[1]) {
					continue
				}
				row.cells[x] = laneCell{filled: true, val: s.Val}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// View draws the plot block: top margin, lane rows and bottom margin.
func (r *laneRenderer) View(sel *timeline.Rect) string {
	gw := r.gutterWidth()
	plotW := int(r.frame.Plot.Width())
	fullW := gw + r.margins.Left + plotW + r.margins.Right
	blank := strings.Repeat(" ", fullW)

	lines := make([]string, 0, r.margins.Top+len(r.rows)+r.margins.Bottom)
	for i := 0; i < r.margins.Top; i++ {
		lines = append(lines, blank)
	}
	if len(r.rows) == 0 {
		lines = append(lines, gutterCell("no lines to show", fullW, axisStyle.Render))
	}
	for y, row := range r.rows {
		lines = append(lines, row.Render(r.cols, r.colors, r.margins.Left, r.margins.Right, sel, y))
	}
	for i := 0; i < r.margins.Bottom; i++ {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

// AxisView draws time labels over the plot.
func (r *laneRenderer) AxisView(loc *time.Location) string {
	plotW := int(r.frame.Plot.Width())
	buf := []rune(strings.Repeat(" ", max(plotW, 0)))
	layout := axisLayout(r.frame.View.Time.Span())
	for x := 0; x < plotW; x += axisTickSpacing {
		label := []rune("┆" + r.frame.Time.Invert(float64(x)).In(loc).Format(layout))
		if x+len(label) > plotW {
			break
		}
		copy(buf[x:], label)
	}
	prefix := strings.Repeat(" ", r.gutterWidth()+r.margins.Left)
	return prefix + axisStyle.Render(string(buf))
}

func axisLayout(span time.Duration) string {
	switch {
	case span <= 2*time.Minute:
		return "15:04:05"
	case span <= 24*time.Hour:
		return "15:04"
	default:
		return "01-02 15:04"
	}
}

// height is the number of terminal rows View produces.
func (r *laneRenderer) height() int {
	n := len(r.rows)
	if n == 0 {
		n = 1
	}
	return r.margins.Top + n + r.margins.Bottom
}
