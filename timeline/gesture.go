package timeline

// Drag tracks one rubber-band selection from press to release. Only one
// drag can be active; its state is dropped on release or cancel.
type Drag struct {
	active  bool
	start   Point
	current Point
}

func (d *Drag) Active() bool { return d.active }

// Begin starts a drag at p. It is refused while another drag is active or
// when p lies outside the plot.
func (d *Drag) Begin(p Point, plot Rect) bool {
	if d.active || !plot.Contains(p) {
		return false
	}
	d.active = true
	d.start, d.current = p, p
	return true
}

// Move records the pointer position, clamped to the plot, and returns the
// current selection rectangle.
func (d *Drag) Move(p Point, plot Rect) (Rect, bool) {
	if !d.active {
		return Rect{}, false
	}
	d.current = plot.Clamp(p)
	return RectFrom(d.start, d.current), true
}

// End finishes the drag at p and returns its two corners.
func (d *Drag) End(p Point, plot Rect) (Point, Point, bool) {
	if !d.active {
		return Point{}, Point{}, false
	}
	start, end := d.start, plot.Clamp(p)
	d.Cancel()
	return start, end, true
}

// Cancel abandons the drag without producing anything.
func (d *Drag) Cancel() {
	d.active = false
	d.start, d.current = Point{}, Point{}
}

// Selection is the rectangle of the active drag.
func (d *Drag) Selection() (Rect, bool) {
	if !d.active {
		return Rect{}, false
	}
	return RectFrom(d.start, d.current), true
}
