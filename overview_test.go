package main

import (
	"testing"

	"github.com/andareed/siftly-timelines/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrubberBarMarksWindow(t *testing.T) {
	domain := timeline.TimeWindow{Start: at(0), End: at(8)}

	bar := scrubberBar(9, domain, timeline.TimeWindow{Start: at(2), End: at(4)})
	assert.Equal(t, "──[━]────", string(bar))

	bar = scrubberBar(9, domain, timeline.TimeWindow{})
	assert.Equal(t, "[━━━━━━━]", string(bar))
}

func TestScrubberBarClampsToDomain(t *testing.T) {
	domain := timeline.TimeWindow{Start: at(0), End: at(8)}
	bar := scrubberBar(9, domain, timeline.TimeWindow{Start: at(-4), End: at(20)})
	assert.Equal(t, "[━━━━━━━]", string(bar))
}

func TestScrubberBarWithoutExtent(t *testing.T) {
	assert.Nil(t, scrubberBar(1, timeline.TimeWindow{Start: at(0), End: at(8)}, timeline.TimeWindow{}))
	assert.Nil(t, scrubberBar(10, timeline.TimeWindow{}, timeline.TimeWindow{}))
	assert.Nil(t, scrubberBar(10, timeline.TimeWindow{Start: at(1), End: at(1)}, timeline.TimeWindow{}))
}

func TestOverviewDragSelectsRange(t *testing.T) {
	o := &overviewBar{width: 9}
	o.SetDomain(timeline.TimeWindow{Start: at(0), End: at(8)})
	o.SetSelection(timeline.TimeWindow{Start: at(0), End: at(8)})

	o.begin(6)
	o.preview(2)
	assert.Equal(t, timeline.TimeWindow{Start: at(2), End: at(6)}, o.selection)

	w, ok := o.end(2)
	require.True(t, ok)
	assert.Equal(t, timeline.TimeWindow{Start: at(2), End: at(6)}, w)
	assert.False(t, o.dragging)
}

func TestOverviewClickCentresWindow(t *testing.T) {
	o := &overviewBar{width: 9}
	o.SetDomain(timeline.TimeWindow{Start: at(0), End: at(8)})
	o.SetSelection(timeline.TimeWindow{Start: at(0), End: at(2)})

	o.begin(5)
	w, ok := o.end(5)
	require.True(t, ok)
	assert.Equal(t, timeline.TimeWindow{Start: at(4), End: at(6)}, w)
}

func TestOverviewEndWithoutBegin(t *testing.T) {
	o := &overviewBar{width: 9}
	o.SetDomain(timeline.TimeWindow{Start: at(0), End: at(8)})
	_, ok := o.end(3)
	assert.False(t, ok)

	o.begin(1)
	o.cancel()
	_, ok = o.end(3)
	assert.False(t, ok)
}
