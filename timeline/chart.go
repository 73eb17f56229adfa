package timeline

import (
	"fmt"
	"time"

	"github.com/andareed/siftly-timelines/logging"
)

// Renderer draws a materialized frame. It must treat the frame as read-only.
type Renderer interface {
	Render(Frame)
}

// Overview is the minimap collaborator: it shows the domain and the
// current (or previewed) selection.
type Overview interface {
	SetDomain(TimeWindow)
	SetSelection(TimeWindow)
}

// Frame is everything a renderer needs for one materialization.
type Frame struct {
	View       View
	Time       TimeScale
	Lines      PointScale
	Groups     []GroupBand
	Plot       Rect
	Zoom       ZoomState
	Phase      Phase
	TotalLines int
}

// Options configure a Chart.
type Options struct {
	Layout             Layout
	MinSegmentDuration time.Duration
	MinZoomSpan        time.Duration
}

// LabelWindow is a line window expressed as boundary lines. A nil end is
// unbounded.
type LabelWindow struct {
	From *LineRef
	To   *LineRef
}

// Chart is the explicit state of one timeline chart. Every mutation goes
// through one entry point per slice (data, zoom, sort) and ends in a single
// commit: filter, scales, materialize, notify. A Chart is not safe for
// concurrent use.
type Chart struct {
	opts Options

	data      *Dataset
	structure []Group
	filtered  []Segment
	active    []Group

	sorter *Sorter
	zoom   *Zoomer
	drag   Drag

	frame Frame

	renderer Renderer
	overview Overview
	onZoom   func(TimeWindow, LineWindow)
	onScent  func(Proposal)
}

func NewChart(opts Options) *Chart {
	if opts.MinZoomSpan <= 0 {
		opts.MinZoomSpan = DefaultMinZoomSpan
	}
	c := &Chart{
		opts:   opts,
		data:   &Dataset{},
		sorter: NewSorter(),
		zoom:   NewZoomer(opts.MinZoomSpan),
	}
	c.refilter()
	return c
}

func (c *Chart) SetRenderer(r Renderer) { c.renderer = r }
func (c *Chart) SetOverview(o Overview) { c.overview = o }

// OnZoom registers the callback run once per committed zoom, pan or reset.
func (c *Chart) OnZoom(fn func(TimeWindow, LineWindow)) { c.onZoom = fn }

// OnScent registers the callback run for every previewed window change.
func (c *Chart) OnScent(fn func(Proposal)) { c.onScent = fn }

// SetData normalizes raw and replaces the chart's data. The time window is
// reset to the data extent and the line window to unbounded. On error the
// chart keeps its previous data.
func (c *Chart) SetData(raw []RawGroup) error {
	ds, err := Normalize(raw)
	if err != nil {
		return fmt.Errorf("set data: %w", err)
	}
	c.load(ds)
	return nil
}

func (c *Chart) load(ds *Dataset) {
	c.data = ds
	c.structure = cloneStructure(ds.Structure)
	c.drag.Cancel()
	c.refilter()
	c.zoom.Load(extentOf(c.filtered), CountLines(c.active))
	logging.Infof("chart: loaded %d groups, %d lines, %d segments", len(ds.Structure), ds.TotalLines, len(ds.Segments))
	c.commit(false)
}

func (c *Chart) Data() *Dataset { return c.data }

// Structure returns a copy of the structural index in current sort order.
func (c *Chart) Structure() []Group { return cloneStructure(c.structure) }

// TotalLines counts every line of the loaded data.
func (c *Chart) TotalLines() int { return c.data.TotalLines }

// ActiveLines counts the lines left after the segment-duration filter; the
// line window indexes this space.
func (c *Chart) ActiveLines() int { return CountLines(c.active) }

func (c *Chart) VisibleStructure() []Group { return c.frame.View.Structure }
func (c *Chart) VisibleLines() int         { return c.frame.View.LineCount }
func (c *Chart) View() View                { return c.frame.View }
func (c *Chart) Frame() Frame              { return c.frame }
func (c *Chart) Phase() Phase              { return c.zoom.Phase() }
func (c *Chart) Zoom() ZoomState           { return c.zoom.State() }
func (c *Chart) TimeWindow() TimeWindow    { return c.zoom.State().Time }
func (c *Chart) LineWindow() LineWindow    { return c.zoom.State().Lines }
func (c *Chart) Extent() TimeWindow        { return c.zoom.Extent() }
func (c *Chart) Sorter() *Sorter           { return c.sorter }
func (c *Chart) Options() Options          { return c.opts }

// SetTimeWindow zooms the time axis. It reports whether anything changed.
func (c *Chart) SetTimeWindow(w TimeWindow) bool {
	return c.apply(TimeProposal(w))
}

// SetLineWindow zooms the line axis to absolute line indices.
func (c *Chart) SetLineWindow(w LineWindow) bool {
	return c.apply(LineProposal(w))
}

// LineLabels expresses the line window as boundary lines.
func (c *Chart) LineLabels() LabelWindow {
	var out LabelWindow
	w := c.zoom.State().Lines
	if w.Start != Unbounded {
		if ref, ok := IndexToLabel(c.active, w.Start); ok {
			out.From = &ref
		}
	}
	if w.End != Unbounded {
		if ref, ok := IndexToLabel(c.active, w.End); ok {
			out.To = &ref
		}
	}
	return out
}

// SetLineLabels zooms the line axis to the lines between two boundary
// lines. Boundaries missing from the data snap inwards.
func (c *Chart) SetLineLabels(lw LabelWindow) bool {
	w := AllLines
	if lw.From != nil {
		w.Start = c.labelIndex(*lw.From, BiasAfter)
	}
	if lw.To != nil {
		w.End = c.labelIndex(*lw.To, BiasBefore)
	}
	return c.apply(LineProposal(w))
}

func (c *Chart) labelIndex(ref LineRef, bias Bias) int {
	i := LabelToIndex(c.active, ref, bias, c.sorter.Group, c.sorter.Label)
	if i < 0 {
		return 0
	}
	return i
}

// IndexToLabel maps a line index of the active structure to its line.
func (c *Chart) IndexToLabel(i int) (LineRef, bool) { return IndexToLabel(c.active, i) }

// LabelToIndex maps a line to its index in the active structure.
func (c *Chart) LabelToIndex(ref LineRef, bias Bias) int {
	return LabelToIndex(c.active, ref, bias, c.sorter.Group, c.sorter.Label)
}

// ZoomToGroup shows only the lines of one group.
func (c *Chart) ZoomToGroup(name string) bool {
	idx := 0
	for _, g := range c.active {
		if g.Name == name {
			return c.apply(LineProposal(LineWindow{Start: idx, End: idx + len(g.Lines) - 1}))
		}
		idx += len(g.Lines)
	}
	return false
}

// ResetZoom zooms out to at least the full extent and shows every line.
func (c *Chart) ResetZoom() bool {
	p, ok := c.zoom.Reset()
	if !ok {
		return false
	}
	return c.applyValidated(p)
}

// Pan moves the time window by delta.
func (c *Chart) Pan(delta time.Duration) bool {
	p, ok := c.zoom.Pan(delta)
	return ok && c.applyValidated(p)
}

// ScaleTime resizes the time window around its centre.
func (c *Chart) ScaleTime(factor float64) bool {
	p, ok := c.zoom.Scale(factor)
	return ok && c.applyValidated(p)
}

// ScrollLines moves the line window by delta lines.
func (c *Chart) ScrollLines(delta int) bool {
	p, ok := c.zoom.ShiftLines(delta)
	return ok && c.applyValidated(p)
}

// OverviewChanged handles a selection made on the minimap.
func (c *Chart) OverviewChanged(start, end time.Time) bool {
	return c.SetTimeWindow(TimeWindow{Start: start, End: end})
}

// SortAlpha sorts groups and lines alphanumerically.
func (c *Chart) SortAlpha(asc bool) error {
	return c.swapStructure(c.sorter.SortAlpha(c.structure, asc))
}

// SortChrono sorts groups and lines by recent activity of the segments
// that pass the duration filter.
func (c *Chart) SortChrono(asc bool) error {
	return c.swapStructure(c.sorter.SortChrono(c.structure, c.filtered, asc))
}

// Sort applies custom comparators; nil keeps the active one.
func (c *Chart) Sort(labelCmp, groupCmp Comparator) error {
	return c.swapStructure(c.sorter.Sort(c.structure, labelCmp, groupCmp))
}

func (c *Chart) swapStructure(sorted []Group, err error) error {
	if err != nil {
		logging.Warnf("chart: sort failed: %v", err)
		return fmt.Errorf("sort: %w", err)
	}
	c.structure = sorted
	c.refilter()
	c.commit(false)
	return nil
}

// SetMinSegmentDuration hides segments shorter than d, and the lines and
// groups left empty by it.
func (c *Chart) SetMinSegmentDuration(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.opts.MinSegmentDuration = d
	c.refilter()
	c.zoom.SetBounds(extentOf(c.filtered), CountLines(c.active))
	c.commit(false)
}

// SetSize changes the chart's outer dimensions.
func (c *Chart) SetSize(width, maxHeight int) {
	c.opts.Layout.Width = width
	c.opts.Layout.MaxHeight = maxHeight
	c.commit(false)
}

// Refresh re-materializes without changing state.
func (c *Chart) Refresh() { c.commit(false) }

// Translator returns the pixel/data converter for the current frame.
func (c *Chart) Translator() Translator {
	offset := 0
	if s := c.zoom.State().Lines.Start; s != Unbounded {
		offset = s
	}
	return Translator{Time: c.frame.Time, Lines: c.frame.Lines, Plot: c.frame.Plot, Offset: offset}
}

// PointerDown starts a rubber-band zoom at p.
func (c *Chart) PointerDown(p Point) bool {
	return c.drag.Begin(p, c.frame.Plot)
}

// PointerMove previews the window the current drag would select.
func (c *Chart) PointerMove(p Point) (Proposal, bool) {
	r, ok := c.drag.Move(p, c.frame.Plot)
	if !ok {
		return Proposal{}, false
	}
	p0, p1 := Point{X: r.X0, Y: r.Y0}, Point{X: r.X1, Y: r.Y1}
	prop, ok := c.Translator().RectToWindows(p0, p1)
	if !ok {
		return Proposal{}, false
	}
	c.scent(prop)
	return prop, true
}

// PointerUp finishes the drag and commits the selected windows at most once.
func (c *Chart) PointerUp(p Point) bool {
	a, b, ok := c.drag.End(p, c.frame.Plot)
	if !ok {
		return false
	}
	prop, ok := c.Translator().RectToWindows(a, b)
	if !ok {
		c.restoreOverview()
		return false
	}
	if !c.apply(prop) {
		c.restoreOverview()
		return false
	}
	return true
}

// PointerCancel abandons an active drag; nothing is applied.
func (c *Chart) PointerCancel() {
	if !c.drag.Active() {
		return
	}
	c.drag.Cancel()
	c.restoreOverview()
}

// Selection is the rectangle of the drag in progress.
func (c *Chart) Selection() (Rect, bool) { return c.drag.Selection() }

func (c *Chart) apply(req Proposal) bool {
	p, ok := c.zoom.Propose(req)
	if !ok {
		return false
	}
	return c.applyValidated(p)
}

func (c *Chart) applyValidated(p Proposal) bool {
	c.scent(p)
	if !c.zoom.Commit(p) {
		return false
	}
	c.commit(true)
	return true
}

func (c *Chart) scent(p Proposal) {
	if c.onScent != nil {
		c.onScent(p)
	}
	if c.overview == nil || !p.ChangeTime {
		return
	}
	sel := p.Time
	ext := c.zoom.Extent()
	if !ext.Contains(sel) {
		c.overview.SetDomain(union(ext, sel))
	}
	c.overview.SetSelection(sel)
}

func (c *Chart) restoreOverview() {
	if c.overview == nil {
		return
	}
	c.overview.SetDomain(union(c.zoom.Extent(), c.zoom.Resolved()))
	c.overview.SetSelection(c.zoom.Resolved())
}

func (c *Chart) refilter() {
	if c.opts.MinSegmentDuration <= 0 {
		c.filtered = c.data.Segments
		c.active = c.structure
		return
	}
	c.filtered = make([]Segment, 0, len(c.data.Segments))
	for _, s := range c.data.Segments {
		if s.Duration() >= c.opts.MinSegmentDuration {
			c.filtered = append(c.filtered, s)
		}
	}
	c.active = activeStructure(c.structure, c.filtered)
}

// commit is the single recompute pipeline. notify runs OnZoom.
func (c *Chart) commit(notify bool) {
	state := c.zoom.State()
	view := Materialize(c.structure, c.data.Segments, state, c.opts.MinSegmentDuration)

	plot := c.opts.Layout.Plot(view.LineCount)
	frame := Frame{
		View:       view,
		Time:       TimeScale{Domain: view.Time, Range: [2]float64{plot.X0, plot.X1}},
		Lines:      PointScale{Domain: view.Refs(), Range: [2]float64{plot.Y0, plot.Y1}},
		Groups:     GroupBands(view.Structure, view.LineCount, plot.Height()),
		Plot:       plot,
		Zoom:       state,
		Phase:      c.zoom.Phase(),
		TotalLines: c.data.TotalLines,
	}
	c.frame = frame

	if c.renderer != nil {
		c.renderer.Render(frame)
	}
	c.restoreOverview()
	if notify && c.onZoom != nil {
		c.onZoom(state.Time, state.Lines)
	}
}

func union(a, b TimeWindow) TimeWindow {
	out := a
	if !b.Start.IsZero() && (out.Start.IsZero() || b.Start.Before(out.Start)) {
		out.Start = b.Start
	}
	if !b.End.IsZero() && (out.End.IsZero() || b.End.After(out.End)) {
		out.End = b.End
	}
	return out
}
