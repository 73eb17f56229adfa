package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeConservation(t *testing.T) {
	ds := mustNormalize(rawChart([]string{"A", "B", "C"}, []int{4, 2, 5}))

	tests := []struct {
		name  string
		lines LineWindow
		want  int
	}{
		{"all", AllLines, 11},
		{"open start", LineWindow{Start: Unbounded, End: 4}, 5},
		{"open end", LineWindow{Start: 9, End: Unbounded}, 2},
		{"single", LineWindow{Start: 5, End: 5}, 1},
		{"past end", LineWindow{Start: 8, End: 40}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Materialize(ds.Structure, ds.Segments, ZoomState{Lines: tt.lines}, 0)
			assert.Equal(t, tt.want, v.LineCount)
			assert.Equal(t, v.LineCount, CountLines(v.Structure))
			assert.Len(t, v.Refs(), v.LineCount)
		})
	}
}

func TestMaterializePartialGroups(t *testing.T) {
	ds := mustNormalize(rawChart([]string{"A", "B"}, []int{5, 3}))

	v := Materialize(ds.Structure, ds.Segments, ZoomState{Lines: LineWindow{Start: 3, End: 6}}, 0)

	assert.Equal(t, 4, v.LineCount)
	assert.Equal(t, []Group{
		{Name: "A", Lines: []string{"a4", "a5"}},
		{Name: "B", Lines: []string{"b1", "b2"}},
	}, v.Structure)
	assert.Len(t, v.Segments, 4)

	// the input structure is untouched
	assert.Len(t, ds.Structure[0].Lines, 5)
}

func TestMaterializeEmpty(t *testing.T) {
	ds := mustNormalize(rawChart([]string{"A"}, []int{2}))

	v := Materialize(ds.Structure, ds.Segments, ZoomState{Lines: LineWindow{Start: 7, End: 9}}, 0)
	assert.Equal(t, 0, v.LineCount)
	assert.Empty(t, v.Structure)
	assert.Empty(t, v.Segments)

	v = Materialize(nil, nil, Unzoomed(), 0)
	assert.Equal(t, 0, v.LineCount)
	assert.NotNil(t, v.Structure)
	assert.NotNil(t, v.Segments)
}

func TestMaterializeDurationFilter(t *testing.T) {
	ds := mustNormalize([]RawGroup{
		{Group: "A", Data: []RawLine{
			{Label: "short", Data: []RawSegment{rawSeg(at(0), at(0.25), 1)}},
			{Label: "long", Data: []RawSegment{rawSeg(at(1), at(3), 1), rawSeg(at(4), at(4.1), 1)}},
		}},
		{Group: "B", Data: []RawLine{
			{Label: "blip", Data: []RawSegment{rawSeg(at(2), at(2.1), 1)}},
		}},
		{Group: "C", Data: []RawLine{
			{Label: "c1", Data: []RawSegment{rawSeg(at(5), at(7), 1)}},
		}},
	})

	v := Materialize(ds.Structure, ds.Segments, Unzoomed(), time.Hour)

	assert.Equal(t, []Group{
		{Name: "A", Lines: []string{"long"}},
		{Name: "C", Lines: []string{"c1"}},
	}, v.Structure)
	assert.Equal(t, 2, v.LineCount)
	require.Len(t, v.Segments, 2)
	assert.True(t, v.Time.Start.Equal(at(1)))
	assert.True(t, v.Time.End.Equal(at(7)))

	// the line window indexes the filtered lines
	v = Materialize(ds.Structure, ds.Segments, ZoomState{Lines: LineWindow{Start: 1, End: 1}}, time.Hour)
	assert.Equal(t, []Group{{Name: "C", Lines: []string{"c1"}}}, v.Structure)
}

func TestMaterializeTimeWindow(t *testing.T) {
	ds := mustNormalize([]RawGroup{{Group: "g", Data: []RawLine{
		{Label: "l", Data: []RawSegment{
			rawSeg(at(0), at(1), 1),
			rawSeg(at(2), at(3), 2),
			rawSeg(at(3), at(4), 3),
			rawSeg(at(5), at(6), 4),
		}},
	}}})

	v := Materialize(ds.Structure, ds.Segments, ZoomState{
		Time:  TimeWindow{Start: at(1), End: at(3)},
		Lines: AllLines,
	}, 0)

	vals := make([]float64, 0, len(v.Segments))
	for _, s := range v.Segments {
		vals = append(vals, s.Val)
	}
	// edges are inclusive and input order is kept
	assert.Equal(t, []float64{1, 2, 3}, vals)

	v = Materialize(ds.Structure, ds.Segments, ZoomState{Time: TimeWindow{End: at(0.5)}, Lines: AllLines}, 0)
	assert.True(t, v.Time.Start.Equal(at(0)))
	assert.Len(t, v.Segments, 1)
}
