package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesLabelGroupsThousands(t *testing.T) {
	st := footerState{LineFrom: 3, LineTo: 9, TotalLines: 1204, Segments: 8311}
	assert.Equal(t, " Lines 3-9/1,204 · 8,311 segs", linesLabel(st))
	assert.Equal(t, " Lines 0/0", linesLabel(footerState{}))
}

func TestRenderFooterFillsWidth(t *testing.T) {
	st := footerState{
		FileName:      "lanes.json",
		Phase:         "zoomed",
		SortLabel:     "alpha↑",
		FilterLabel:   "off",
		LineFrom:      1,
		LineTo:        8,
		TotalLines:    8,
		Segments:      9,
		StatusMessage: "Sorted by alpha↑",
		Legend:        "q quit",
	}
	out := renderFooter(100, st, defaultFooterStyles())
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 100, ansi.StringWidth(l))
	}
	assert.Contains(t, lines[0], "[SORT: alpha↑]")
	assert.Contains(t, lines[1], "Sorted by alpha↑")
}

func TestPlainHelpers(t *testing.T) {
	assert.Equal(t, "ab  ", padRightPlain("ab", 4))
	assert.Equal(t, "", padRightPlain("ab", 0))
	assert.Equal(t, "ab", truncatePlain("abcd", 2))
	assert.Equal(t, "", truncatePlain("abcd", 0))
	assert.Equal(t, 4, runeWidth("ab世"))
}
