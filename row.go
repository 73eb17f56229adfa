package main

import (
	"strings"

	"github.com/andareed/siftly-timelines/timeline"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

type laneCell struct {
	filled bool
	val    float64
}

// laneRow is one terminal row of the plot. A line taller than one row
// spans several laneRows; only the first carries its label.
type laneRow struct {
	ref   timeline.LineRef
	rank  int
	group string
	label string
	cells []laneCell
}

// Render draws the gutter and plot cells of the row. sel is the drag
// selection in plot coordinates, y the row's plot coordinate.
func (r laneRow) Render(cols []ColumnMeta, colors *colorScale, leftPad, rightPad int, sel *timeline.Rect, y int) string {
	var b strings.Builder
	for _, c := range cols {
		if !c.Visible || c.Width <= 0 {
			continue
		}
		switch c.Role {
		case RoleGroup:
			b.WriteString(gutterCell(r.group, c.Width, groupStyle.Render))
		case RoleLabel:
			b.WriteString(gutterCell(r.label, c.Width, laneLabelStyle.Render))
		}
	}
	b.WriteString(strings.Repeat(" ", leftPad))

	empty := emptyCellStyle
	if r.rank%2 == 1 {
		empty = altCellStyle
	}
	for x, cell := range r.cells {
		if sel != nil && sel.Contains(timeline.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
			b.WriteString(selectionStyle.Render(" "))
			continue
		}
		if cell.filled {
			b.WriteString(colors.Cell(cell.val))
			continue
		}
		b.WriteString(empty.Render(" "))
	}
	b.WriteString(strings.Repeat(" ", rightPad))
	return b.String()
}

// gutterCell truncates text to width-1 cells, styles it and pads it to
// width.
func gutterCell(text string, width int, style func(...string) string) string {
	if width <= 0 {
		return ""
	}
	out := ""
	if text != "" && width > 1 {
		out = style(truncate.StringWithTail(text, uint(width-1), "…"))
	}
	if pad := width - ansi.StringWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}
