package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chartFixture struct {
	chart    *Chart
	renderer *recordingRenderer
	overview *recordingOverview
	zooms    []ZoomState
	scents   int
}

func newChartFixture(t *testing.T, raw []RawGroup) *chartFixture {
	t.Helper()
	f := &chartFixture{renderer: &recordingRenderer{}, overview: &recordingOverview{}}
	f.chart = NewChart(Options{Layout: Layout{Width: 128, MaxHeight: 1000, MaxLineHeight: 10}})
	f.chart.SetRenderer(f.renderer)
	f.chart.SetOverview(f.overview)
	f.chart.OnZoom(func(tw TimeWindow, lw LineWindow) {
		f.zooms = append(f.zooms, ZoomState{Time: tw, Lines: lw})
	})
	f.chart.OnScent(func(Proposal) { f.scents++ })
	require.NoError(t, f.chart.SetData(raw))
	return f
}

func standardFixture(t *testing.T) *chartFixture {
	return newChartFixture(t, rawChart([]string{"A", "B"}, []int{5, 3}))
}

func TestChartLoad(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	assert.Equal(t, 8, c.TotalLines())
	assert.Equal(t, 8, c.VisibleLines())
	assert.Equal(t, PhaseUnzoomed, c.Phase())
	assert.True(t, c.TimeWindow().Equal(TimeWindow{Start: at(0), End: at(8)}))
	assert.Equal(t, AllLines, c.LineWindow())
	assert.Len(t, f.renderer.frames, 1)
	assert.Empty(t, f.zooms, "loading is not a zoom")

	frame := c.Frame()
	assert.Equal(t, Rect{X1: 128, Y1: 80}, frame.Plot)
	assert.Equal(t, 10.0, frame.Lines.Step())
	require.Len(t, frame.Groups, 2)
	assert.Equal(t, 50.0, frame.Groups[0].Y1)
	assert.True(t, f.overview.lastSelection().Equal(c.Extent()))
}

func TestChartDragZoom(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	require.True(t, c.PointerDown(Point{X: 32, Y: 5}))
	assert.False(t, c.PointerDown(Point{X: 40, Y: 5}), "second drag refused")

	prop, ok := c.PointerMove(Point{X: 64, Y: 35})
	require.True(t, ok)
	assert.Equal(t, LineWindow{Start: 0, End: 3}, prop.Lines)
	assert.Len(t, f.renderer.frames, 1, "scent does not render")
	assert.Empty(t, f.zooms)
	assert.Equal(t, 1, f.scents)
	assert.True(t, f.overview.lastSelection().Equal(TimeWindow{Start: at(2), End: at(4)}))

	require.True(t, c.PointerUp(Point{X: 64, Y: 35}))
	assert.Len(t, f.renderer.frames, 2)
	require.Len(t, f.zooms, 1)
	assert.True(t, c.TimeWindow().Equal(TimeWindow{Start: at(2), End: at(4)}))
	assert.Equal(t, LineWindow{Start: 0, End: 3}, c.LineWindow())
	assert.Equal(t, PhaseBothZoomed, c.Phase())
	assert.Equal(t, []Group{{Name: "A", Lines: []string{"a1", "a2", "a3", "a4"}}}, c.VisibleStructure())
	assert.Equal(t, 40.0, c.Frame().Plot.Height())

	assert.False(t, c.PointerUp(Point{X: 1, Y: 1}), "drag already finished")
	assert.Len(t, f.zooms, 1)
}

func TestChartDragInLineZoomedView(t *testing.T) {
	f := standardFixture(t)
	c := f.chart
	require.True(t, c.SetLineWindow(LineWindow{Start: 2, End: 5}))

	require.True(t, c.PointerDown(Point{X: 0, Y: 15}))
	require.True(t, c.PointerUp(Point{X: 128, Y: 25}))

	assert.Equal(t, LineWindow{Start: 3, End: 4}, c.LineWindow())
	assert.True(t, c.TimeWindow().Equal(TimeWindow{Start: at(0), End: at(8)}))
	ref, ok := c.IndexToLabel(4)
	require.True(t, ok)
	assert.Equal(t, LineRef{"A", "a5"}, ref)
}

func TestChartDragCancel(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	require.True(t, c.PointerDown(Point{X: 32, Y: 5}))
	_, ok := c.PointerMove(Point{X: 64, Y: 35})
	require.True(t, ok)
	c.PointerCancel()

	assert.Empty(t, f.zooms)
	assert.Len(t, f.renderer.frames, 1)
	assert.Equal(t, PhaseUnzoomed, c.Phase())
	assert.True(t, f.overview.lastSelection().Equal(c.Extent()))

	_, ok = c.PointerMove(Point{X: 70, Y: 35})
	assert.False(t, ok)
	assert.False(t, c.PointerUp(Point{X: 70, Y: 35}))
}

func TestChartNoOpDrag(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	require.True(t, c.PointerDown(Point{X: 10, Y: 10}))
	assert.False(t, c.PointerUp(Point{X: 10, Y: 10}))
	assert.Empty(t, f.zooms)
	assert.Len(t, f.renderer.frames, 1)
}

func TestChartDragDamper(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	require.True(t, c.PointerDown(Point{X: 32, Y: 5}))
	require.True(t, c.PointerUp(Point{X: 32.1, Y: 35}))

	assert.True(t, c.TimeWindow().Equal(TimeWindow{Start: at(0), End: at(8)}), "time part damped")
	assert.Equal(t, LineWindow{Start: 0, End: 3}, c.LineWindow())
	assert.Equal(t, PhaseLineZoomed, c.Phase())
}

func TestChartSetDataError(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	err := c.SetData([]RawGroup{{Group: "x", Data: []RawLine{
		{Label: "l", Data: []RawSegment{rawSeg(at(3), at(1), 1)}},
	}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
	assert.Equal(t, 8, c.TotalLines())
	assert.Equal(t, "A", c.Structure()[0].Name)
}

func TestChartLineLabels(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	from, to := LineRef{"A", "a2x"}, LineRef{"B", "b0"}
	require.True(t, c.SetLineLabels(LabelWindow{From: &from, To: &to}))
	assert.Equal(t, LineWindow{Start: 2, End: 4}, c.LineWindow())

	require.True(t, c.SetLineWindow(LineWindow{Start: 1, End: 6}))
	lw := c.LineLabels()
	require.NotNil(t, lw.From)
	require.NotNil(t, lw.To)
	assert.Equal(t, LineRef{"A", "a2"}, *lw.From)
	assert.Equal(t, LineRef{"B", "b2"}, *lw.To)

	require.True(t, c.SetLineLabels(LabelWindow{}))
	assert.Equal(t, AllLines, c.LineWindow())
	assert.Nil(t, c.LineLabels().From)
}

func TestChartZoomToGroup(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	require.True(t, c.ZoomToGroup("B"))
	assert.Equal(t, LineWindow{Start: 5, End: 7}, c.LineWindow())
	assert.False(t, c.ZoomToGroup("nope"))
}

func TestChartReset(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	assert.False(t, c.ResetZoom())
	assert.Empty(t, f.zooms)

	require.True(t, c.SetTimeWindow(TimeWindow{Start: at(1), End: at(2)}))
	require.True(t, c.SetLineWindow(LineWindow{Start: 1, End: 2}))
	require.True(t, c.ResetZoom())
	assert.Len(t, f.zooms, 3)
	assert.Equal(t, PhaseUnzoomed, c.Phase())
	assert.Equal(t, 8, c.VisibleLines())

	assert.False(t, c.ResetZoom())
	assert.Len(t, f.zooms, 3)
}

func TestChartOverviewWidening(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	wide := TimeWindow{Start: at(-2), End: at(10)}
	require.True(t, c.SetTimeWindow(wide))

	require.NotEmpty(t, f.overview.domains)
	assert.True(t, f.overview.domains[len(f.overview.domains)-1].Equal(wide))
	assert.True(t, f.overview.lastSelection().Equal(wide))

	require.True(t, c.OverviewChanged(at(3), at(5)))
	assert.True(t, c.TimeWindow().Equal(TimeWindow{Start: at(3), End: at(5)}))
}

func TestChartSort(t *testing.T) {
	f := newChartFixture(t, []RawGroup{
		{Group: "A", Data: []RawLine{
			{Label: "a1", Data: []RawSegment{rawSeg(at(0), at(2), 1)}},
		}},
		{Group: "B", Data: []RawLine{
			{Label: "b1", Data: []RawSegment{rawSeg(at(1), at(3), 1)}},
			{Label: "b2", Data: []RawSegment{rawSeg(at(4), at(6), 1)}},
		}},
	})
	c := f.chart

	require.NoError(t, c.SortChrono(true))
	assert.Equal(t, []Group{
		{Name: "B", Lines: []string{"b2", "b1"}},
		{Name: "A", Lines: []string{"a1"}},
	}, c.VisibleStructure())
	assert.Len(t, f.renderer.frames, 2)
	assert.Empty(t, f.zooms, "sorting is not a zoom")

	require.NoError(t, c.SortAlpha(true))
	assert.Equal(t, "A", c.VisibleStructure()[0].Name)

	bad := func(a, b string) int { panic("nope") }
	err := c.Sort(bad, nil)
	var ce *ComparatorError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "A", c.Structure()[0].Name)
	assert.Len(t, f.renderer.frames, 3)
}

func TestChartMinSegmentDuration(t *testing.T) {
	f := newChartFixture(t, []RawGroup{
		{Group: "A", Data: []RawLine{
			{Label: "a1", Data: []RawSegment{rawSeg(at(0), at(0.1), 1)}},
			{Label: "a2", Data: []RawSegment{rawSeg(at(1), at(3), 1)}},
		}},
		{Group: "B", Data: []RawLine{
			{Label: "b1", Data: []RawSegment{rawSeg(at(2), at(2.2), 1)}},
			{Label: "b2", Data: []RawSegment{rawSeg(at(2), at(2.3), 1)}},
			{Label: "b3", Data: []RawSegment{rawSeg(at(2), at(2.4), 1)}},
		}},
	})
	c := f.chart
	require.True(t, c.SetLineWindow(LineWindow{Start: 3, End: 4}))
	zooms := len(f.zooms)

	c.SetMinSegmentDuration(time.Hour)

	assert.Equal(t, 5, c.TotalLines())
	assert.Equal(t, 1, c.ActiveLines())
	assert.Equal(t, LineWindow{Start: 0, End: 0}, c.LineWindow())
	assert.Equal(t, []Group{{Name: "A", Lines: []string{"a2"}}}, c.VisibleStructure())
	assert.True(t, c.Extent().Equal(TimeWindow{Start: at(1), End: at(3)}))
	assert.Len(t, f.zooms, zooms)

	c.SetMinSegmentDuration(0)
	assert.Equal(t, 5, c.ActiveLines())
}

func TestChartResetAfterFilterKeepsLoadWindow(t *testing.T) {
	f := newChartFixture(t, []RawGroup{
		{Group: "A", Data: []RawLine{
			{Label: "a1", Data: []RawSegment{rawSeg(at(0), at(0.001), 1)}},
			{Label: "a2", Data: []RawSegment{rawSeg(at(2), at(8), 1)}},
		}},
	})
	c := f.chart
	loaded := c.TimeWindow()
	require.True(t, loaded.Equal(TimeWindow{Start: at(0), End: at(8)}))

	c.SetMinSegmentDuration(time.Minute)
	require.True(t, c.SetTimeWindow(TimeWindow{Start: at(3), End: at(4)}))
	require.True(t, c.ResetZoom())

	assert.True(t, c.TimeWindow().Contains(loaded), "reset to %s", c.TimeWindow())
}

func TestChartSetSize(t *testing.T) {
	f := standardFixture(t)
	c := f.chart

	c.SetSize(64, 40)
	assert.Equal(t, Rect{X1: 64, Y1: 40}, c.Frame().Plot)
	assert.Equal(t, 5.0, c.Frame().Lines.Step())
	assert.Empty(t, f.zooms)
}
