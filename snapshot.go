package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/loader"
	"github.com/andareed/siftly-timelines/logging"
	tea "github.com/charmbracelet/bubbletea"
)

var exportHeader = []string{"group", "label", "start", "end", "val", "labelVal"}

// ExportVisible writes the segments of the current view to a CSV file in
// the format the loader reads back.
func ExportVisible(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, s := range m.chart.View().Segments {
		row := []string{
			s.Group,
			s.Label,
			s.Start.Format(time.RFC3339Nano),
			s.End.Format(time.RFC3339Nano),
			strconv.FormatFloat(s.Val, 'g', -1, 64),
			labelValCell(s.LabelVal, s.Val),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write segment %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// SaveDataset writes the whole dataset, in the current sort order, as JSON.
func SaveDataset(m *model, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()

	groups := loader.FromDataset(m.chart.Structure(), m.chart.Data().Segments)
	if err := loader.EncodeJSON(f, groups); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// labelValCell leaves the column empty when the label value is just val.
func labelValCell(lv any, val float64) string {
	switch v := lv.(type) {
	case nil:
		return ""
	case float64:
		if v == val {
			return ""
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return v
	}
	return fmt.Sprint(lv)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "timeline"
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func defaultSaveName(m *model) string {
	return fileStem(m.InitialPath) + "-saved.json"
}

func defaultExportName(m *model) string {
	return fileStem(m.InitialPath) + "-visible.csv"
}

func (m *model) saveTo(path string) tea.Cmd {
	if err := SaveDataset(m, path); err != nil {
		logging.Warnf("save: %v", err)
		return m.startNotice(fmt.Sprintf("Save failed: %v", err), noticeError, noticeDuration)
	}
	m.data.lastDir = filepath.Dir(path)
	logging.Infof("save: wrote %s", path)
	return m.startNotice("Saved to "+path, noticeSuccess, noticeDuration)
}

func (m *model) exportTo(path string) tea.Cmd {
	if err := ExportVisible(m, path); err != nil {
		logging.Warnf("export: %v", err)
		return m.startNotice(fmt.Sprintf("Export failed: %v", err), noticeError, noticeDuration)
	}
	m.data.lastDir = filepath.Dir(path)
	logging.Infof("export: wrote %d segments to %s", len(m.chart.View().Segments), path)
	return m.startNotice("Exported to "+path, noticeSuccess, noticeDuration)
}
