package timeline

import (
	"time"
)

// TimeScale maps instants onto a pixel range linearly. Outputs and inverted
// instants are clamped to the range and domain.
type TimeScale struct {
	Domain TimeWindow
	Range  [2]float64
}

// Scale maps t to a pixel coordinate.
func (s TimeScale) Scale(t time.Time) float64 {
	span := s.Domain.End.Sub(s.Domain.Start)
	if span <= 0 {
		return s.Range[0]
	}
	if t.Before(s.Domain.Start) {
		t = s.Domain.Start
	}
	if t.After(s.Domain.End) {
		t = s.Domain.End
	}
	frac := float64(t.Sub(s.Domain.Start)) / float64(span)
	return s.Range[0] + frac*(s.Range[1]-s.Range[0])
}

// Invert maps a pixel coordinate back to an instant.
func (s TimeScale) Invert(px float64) time.Time {
	width := s.Range[1] - s.Range[0]
	if width <= 0 {
		return s.Domain.Start
	}
	frac := (px - s.Range[0]) / width
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	span := s.Domain.End.Sub(s.Domain.Start)
	return s.Domain.Start.Add(time.Duration(frac * float64(span)))
}

// Layout holds the chart dimensions the scales are built from.
type Layout struct {
	Width         int
	MaxHeight     int
	MaxLineHeight int
	Margins       Margins
}

type Margins struct {
	Top, Right, Bottom, Left int
}

// Plot returns the plotting area for n visible lines: full width minus
// margins, and height min(n*MaxLineHeight, MaxHeight-vertical margins).
func (l Layout) Plot(n int) Rect {
	w := l.Width - l.Margins.Left - l.Margins.Right
	if w < 0 {
		w = 0
	}
	h := l.MaxHeight - l.Margins.Top - l.Margins.Bottom
	if byLines := n * l.MaxLineHeight; byLines < h {
		h = byLines
	}
	if h < 0 {
		h = 0
	}
	return Rect{X0: 0, Y0: 0, X1: float64(w), Y1: float64(h)}
}

// GroupBand is the vertical extent of one visible group.
type GroupBand struct {
	Group string
	Lines int
	Y0    float64
	Y1    float64
}

// Mid is the vertical centre of the band, where the group label goes.
func (b GroupBand) Mid() float64 { return (b.Y0 + b.Y1) / 2 }

// GroupBands splits height proportionally to each group's visible lines.
func GroupBands(structure []Group, lineCount int, height float64) []GroupBand {
	bands := make([]GroupBand, 0, len(structure))
	if lineCount <= 0 {
		return bands
	}
	cnt := 0
	for _, g := range structure {
		y0 := float64(cnt) / float64(lineCount) * height
		cnt += len(g.Lines)
		y1 := float64(cnt) / float64(lineCount) * height
		bands = append(bands, GroupBand{Group: g.Name, Lines: len(g.Lines), Y0: y0, Y1: y1})
	}
	return bands
}
