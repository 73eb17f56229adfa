package timeline

import (
	"time"

	"github.com/andareed/siftly-timelines/logging"
)

// DefaultMinZoomSpan is the narrowest time window a zoom may produce.
const DefaultMinZoomSpan = time.Minute

// Phase is the zoom state machine's current state.
type Phase int

const (
	PhaseUnzoomed Phase = iota
	PhaseTimeZoomed
	PhaseLineZoomed
	PhaseBothZoomed
	// PhaseResetting is only observable while Reset computes its result.
	PhaseResetting
)

func (p Phase) String() string {
	switch p {
	case PhaseTimeZoomed:
		return "time-zoomed"
	case PhaseLineZoomed:
		return "line-zoomed"
	case PhaseBothZoomed:
		return "zoomed"
	case PhaseResetting:
		return "resetting"
	default:
		return "unzoomed"
	}
}

// Proposal is a requested window change. Only the parts flagged as changed
// are applied on commit.
type Proposal struct {
	Time        TimeWindow
	Lines       LineWindow
	ChangeTime  bool
	ChangeLines bool
}

// Empty reports whether the proposal changes nothing.
func (p Proposal) Empty() bool { return !p.ChangeTime && !p.ChangeLines }

// TimeProposal requests a new time window only.
func TimeProposal(w TimeWindow) Proposal { return Proposal{Time: w, ChangeTime: true} }

// LineProposal requests a new line window only.
func LineProposal(w LineWindow) Proposal { return Proposal{Lines: w, ChangeLines: true} }

// Zoomer holds the time and line windows and validates every change.
type Zoomer struct {
	state      ZoomState
	extent     TimeWindow
	totalLines int
	resetting  bool

	// home is the time window shown right after Load. Reset never ends
	// narrower than it, whatever filters did to the extent since.
	home TimeWindow

	// MinSpan is the zoom damper: time proposals no wider than it are
	// dropped.
	MinSpan time.Duration
}

func NewZoomer(minSpan time.Duration) *Zoomer {
	return &Zoomer{state: Unzoomed(), MinSpan: minSpan}
}

// Load resets the windows for freshly loaded data: the time window becomes
// the full extent and the line window unbounded.
func (z *Zoomer) Load(extent TimeWindow, totalLines int) {
	z.extent = extent
	z.home = extent
	z.totalLines = totalLines
	z.state = ZoomState{Time: extent, Lines: AllLines}
}

// SetBounds updates the extent and line count without resetting the
// windows; bounded line ends are re-clamped.
func (z *Zoomer) SetBounds(extent TimeWindow, totalLines int) {
	z.extent = extent
	z.totalLines = totalLines
	z.state.Lines = z.clampLines(z.state.Lines)
}

func (z *Zoomer) State() ZoomState   { return z.state }
func (z *Zoomer) Extent() TimeWindow { return z.extent }
func (z *Zoomer) TotalLines() int    { return z.totalLines }

// Resolved returns the time window with unbounded ends filled from the extent.
func (z *Zoomer) Resolved() TimeWindow {
	w := z.state.Time
	if w.Start.IsZero() {
		w.Start = z.extent.Start
	}
	if w.End.IsZero() {
		w.End = z.extent.End
	}
	return w
}

func (z *Zoomer) Phase() Phase {
	if z.resetting {
		return PhaseResetting
	}
	timeZoomed := z.extent.Bounded() && !z.Resolved().Contains(z.extent)
	lo, hi := z.state.Lines.Resolve(z.totalLines)
	lineZoomed := lo > 0 || hi < z.totalLines-1
	switch {
	case timeZoomed && lineZoomed:
		return PhaseBothZoomed
	case timeZoomed:
		return PhaseTimeZoomed
	case lineZoomed:
		return PhaseLineZoomed
	}
	return PhaseUnzoomed
}

// Propose validates a requested change without applying it. Time windows
// are ordered and damped; line windows are ordered and clamped to the
// available lines. Parts equal to the current state are dropped. The
// result is false when nothing is left to change.
func (z *Zoomer) Propose(req Proposal) (Proposal, bool) {
	out := Proposal{}
	if req.ChangeTime {
		w := req.Time
		if w.Bounded() && w.End.Before(w.Start) {
			w.Start, w.End = w.End, w.Start
		}
		switch {
		case w.Bounded() && w.Span() <= z.MinSpan:
			logging.Debugf("zoom: time window %s not wider than %s, ignored", w, z.MinSpan)
		case w.Equal(z.state.Time):
		default:
			out.Time, out.ChangeTime = w, true
		}
	}
	if req.ChangeLines {
		w := z.clampLines(req.Lines)
		if w != z.state.Lines {
			out.Lines, out.ChangeLines = w, true
		}
	}
	return out, !out.Empty()
}

// Commit applies a proposal previously returned by Propose or Reset.
func (z *Zoomer) Commit(p Proposal) bool {
	if p.Empty() {
		return false
	}
	if p.ChangeTime {
		z.state.Time = p.Time
	}
	if p.ChangeLines {
		z.state.Lines = p.Lines
	}
	logging.Debugf("zoom: committed time=%s lines=%s (%s)", z.state.Time, z.state.Lines, z.Phase())
	return true
}

// Reset zooms out to at least the full extent: the new time window is the
// union of the current one, the extent and the window shown at load, and
// the line window becomes unbounded. It never narrows the time window.
func (z *Zoomer) Reset() (Proposal, bool) {
	z.resetting = true
	defer func() { z.resetting = false }()

	next := union(union(z.extent, z.home), z.Resolved())

	out := Proposal{}
	if !next.Equal(z.state.Time) {
		out.Time, out.ChangeTime = next, true
	}
	if !z.state.Lines.IsAll() {
		out.Lines, out.ChangeLines = AllLines, true
	}
	return out, !out.Empty()
}

// Pan proposes the current time window moved by delta, kept inside the
// extent. A window at least as wide as the extent does not move.
func (z *Zoomer) Pan(delta time.Duration) (Proposal, bool) {
	if !z.extent.Bounded() || delta == 0 {
		return Proposal{}, false
	}
	cur := z.Resolved()
	span := cur.Span()
	if span >= z.extent.Span() {
		return Proposal{}, false
	}
	next := TimeWindow{Start: cur.Start.Add(delta), End: cur.End.Add(delta)}
	if next.Start.Before(z.extent.Start) {
		next = TimeWindow{Start: z.extent.Start, End: z.extent.Start.Add(span)}
	}
	if next.End.After(z.extent.End) {
		next = TimeWindow{Start: z.extent.End.Add(-span), End: z.extent.End}
	}
	return z.Propose(TimeProposal(next))
}

// Scale proposes the current time window resized by factor around its
// centre (factor < 1 zooms in), clipped to the extent.
func (z *Zoomer) Scale(factor float64) (Proposal, bool) {
	if !z.extent.Bounded() || factor <= 0 {
		return Proposal{}, false
	}
	cur := z.Resolved()
	half := time.Duration(float64(cur.Span()) * factor / 2)
	mid := cur.Start.Add(cur.Span() / 2)
	next := TimeWindow{Start: mid.Add(-half), End: mid.Add(half)}
	if next.Start.Before(z.extent.Start) {
		next.Start = z.extent.Start
	}
	if next.End.After(z.extent.End) {
		next.End = z.extent.End
	}
	return z.Propose(TimeProposal(next))
}

// ShiftLines proposes the line window scrolled by delta lines, keeping its
// size and staying inside [0, TotalLines-1].
func (z *Zoomer) ShiftLines(delta int) (Proposal, bool) {
	if z.totalLines == 0 || delta == 0 {
		return Proposal{}, false
	}
	cur, hi := z.state.Lines.Resolve(z.totalLines)
	size := hi - cur
	lo := cur + delta
	if lo+size > z.totalLines-1 {
		lo = z.totalLines - 1 - size
	}
	if lo < 0 {
		lo = 0
	}
	if lo == cur {
		return Proposal{}, false
	}
	return z.Propose(LineProposal(LineWindow{Start: lo, End: lo + size}))
}

func (z *Zoomer) clampLines(w LineWindow) LineWindow {
	if z.totalLines == 0 {
		return AllLines
	}
	last := z.totalLines - 1
	clamp := func(i int) int {
		if i == Unbounded {
			return i
		}
		if i < 0 {
			return 0
		}
		if i > last {
			return last
		}
		return i
	}
	w.Start, w.End = clamp(w.Start), clamp(w.End)
	if w.Start != Unbounded && w.End != Unbounded && w.Start > w.End {
		w.Start, w.End = w.End, w.Start
	}
	return w
}
