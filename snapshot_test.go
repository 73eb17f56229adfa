package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-timelines/loader"
	"github.com/andareed/siftly-timelines/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportVisibleRoundTrip(t *testing.T) {
	m := newTestModel(t)
	typeCommand(m, ":", "6-7")

	path := filepath.Join(t.TempDir(), "visible.csv")
	require.NoError(t, ExportVisible(m, path))

	raw, err := loader.LoadFile(path)
	require.NoError(t, err)
	ds, err := timeline.Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, []timeline.Group{{Name: "B", Lines: []string{"b1", "b2"}}}, ds.Structure)
	require.Len(t, ds.Segments, 3)
	for _, s := range ds.Segments {
		assert.Equal(t, s.Val, s.LabelVal)
	}
	assert.True(t, ds.Segments[0].Start.Equal(at(0)))
	assert.True(t, ds.Segments[0].End.Equal(at(4)))
}

func TestSaveDatasetKeepsSortOrder(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyRunes("A"))

	path := filepath.Join(t.TempDir(), "saved.json")
	require.NoError(t, SaveDataset(m, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	raw, err := loader.LoadFile(path)
	require.NoError(t, err)
	ds, err := timeline.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, m.chart.Structure(), ds.Structure)
	assert.Len(t, ds.Segments, 9)
}

func TestSaveToSetsNoticeAndDir(t *testing.T) {
	m := newTestModel(t)
	dir := t.TempDir()
	m.saveTo(filepath.Join(dir, "out.json"))
	assert.Equal(t, noticeSuccess, m.ui.noticeType)
	assert.Equal(t, dir, m.data.lastDir)

	m.exportTo(filepath.Join(dir, "missing", "out.csv"))
	assert.Equal(t, noticeError, m.ui.noticeType)
	assert.Contains(t, m.ui.noticeMsg, "Export failed")
}

func TestLabelValCell(t *testing.T) {
	assert.Equal(t, "", labelValCell(nil, 1))
	assert.Equal(t, "", labelValCell(2.0, 2))
	assert.Equal(t, "2.5", labelValCell(2.5, 2))
	assert.Equal(t, "busy", labelValCell("busy", 2))
	assert.Equal(t, "7", labelValCell(int64(7), 2))
}

func TestDefaultFileNames(t *testing.T) {
	m := newTestModel(t)
	m.InitialPath = "/data/runs/lanes.json"
	assert.Equal(t, "lanes-saved.json", defaultSaveName(m))
	assert.Equal(t, "lanes-visible.csv", defaultExportName(m))

	m.InitialPath = ""
	assert.Equal(t, "timeline-saved.json", defaultSaveName(m))
}
