package timeline

import "math"

// Point is a pixel coordinate relative to the plotting area.
type Point struct {
	X, Y float64
}

// Rect is a pixel rectangle; X0 <= X1 and Y0 <= Y1 once normalized.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFrom builds the normalized rectangle spanned by two corners.
func RectFrom(a, b Point) Rect {
	return Rect{
		X0: math.Min(a.X, b.X), Y0: math.Min(a.Y, b.Y),
		X1: math.Max(a.X, b.X), Y1: math.Max(a.Y, b.Y),
	}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Contains is inclusive on all edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Clamp moves p onto the nearest point inside r.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: math.Max(r.X0, math.Min(r.X1, p.X)),
		Y: math.Max(r.Y0, math.Min(r.Y1, p.Y)),
	}
}

// Translator converts between pixels and data windows using the scales of
// the current view. Offset is the flat index of the first visible line, so
// line indices produced are absolute rather than relative to the view.
type Translator struct {
	Time   TimeScale
	Lines  PointScale
	Plot   Rect
	Offset int
}

// RectToWindows converts the rectangle dragged from a to b into a proposal
// for both windows. Corners are clamped to the plot first. A drag that
// starts and ends on the same pixel yields false.
func (t Translator) RectToWindows(a, b Point) (Proposal, bool) {
	a, b = t.Plot.Clamp(a), t.Plot.Clamp(b)
	if a == b {
		return Proposal{}, false
	}
	r := RectFrom(a, b)
	p := Proposal{
		Time:       TimeWindow{Start: t.Time.Invert(r.X0), End: t.Time.Invert(r.X1)},
		ChangeTime: true,
	}
	lo, hi := t.Lines.Invert(r.Y0), t.Lines.Invert(r.Y1)
	if lo >= 0 && hi >= 0 {
		p.Lines = LineWindow{Start: lo + t.Offset, End: hi + t.Offset}
		p.ChangeLines = true
	}
	return p, true
}

// WindowsToRect maps a time window and an absolute line window onto the
// plot. Unbounded ends map to the plot edges.
func (t Translator) WindowsToRect(tw TimeWindow, lw LineWindow) Rect {
	r := t.Plot
	if !tw.Start.IsZero() {
		r.X0 = t.Time.Scale(tw.Start)
	}
	if !tw.End.IsZero() {
		r.X1 = t.Time.Scale(tw.End)
	}
	step := t.Lines.Step()
	if lw.Start != Unbounded {
		r.Y0 = math.Max(t.Plot.Y0, t.Lines.Range[0]+float64(lw.Start-t.Offset)*step)
	}
	if lw.End != Unbounded {
		r.Y1 = math.Min(t.Plot.Y1, t.Lines.Range[0]+float64(lw.End-t.Offset+1)*step)
	}
	return r
}

// LineAt returns the visible line under pixel row y.
func (t Translator) LineAt(y float64) (LineRef, bool) {
	if y < t.Plot.Y0 || y > t.Plot.Y1 {
		return LineRef{}, false
	}
	return t.Lines.InvertRef(y)
}
