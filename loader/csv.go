package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andareed/siftly-timelines/timeline"
)

var csvColumns = []string{"group", "label", "start", "end", "val"}

// DecodeCSV reads one segment per row. The header names the columns
// group, label, start, end, val and optionally labelVal, in any order.
// Groups and lines keep the order they are first seen in. Numeric start
// and end cells are read as epoch milliseconds.
func DecodeCSV(r io.Reader) ([]timeline.RawGroup, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	idx, err := csvIndex(header)
	if err != nil {
		return nil, err
	}

	var groups []timeline.RawGroup
	groupPos := make(map[string]int)
	linePos := make(map[timeline.LineRef]int)

	for row := 2; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		cell := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		group, label := cell("group"), cell("label")
		val, err := strconv.ParseFloat(cell("val"), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid val %q: %w", row, cell("val"), err)
		}
		seg := timeline.RawSegment{
			TimeRange: [2]any{csvStamp(cell("start")), csvStamp(cell("end"))},
			Val:       &val,
		}
		if lv := cell("labelval"); lv != "" {
			seg.LabelVal = lv
		}

		gi, ok := groupPos[group]
		if !ok {
			gi = len(groups)
			groupPos[group] = gi
			groups = append(groups, timeline.RawGroup{Group: group})
		}
		ref := timeline.LineRef{Group: group, Label: label}
		li, ok := linePos[ref]
		if !ok {
			li = len(groups[gi].Data)
			linePos[ref] = li
			groups[gi].Data = append(groups[gi].Data, timeline.RawLine{Label: label})
		}
		groups[gi].Data[li].Data = append(groups[gi].Data[li].Data, seg)
	}
	if groups == nil {
		groups = []timeline.RawGroup{}
	}
	return groups, nil
}

func csvIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		idx[strings.ToLower(name)] = i
	}
	for _, want := range csvColumns {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", want)
		}
	}
	return idx, nil
}

// csvStamp returns nil for an empty cell so the normalizer reports the
// missing bound.
func csvStamp(s string) any {
	if s == "" {
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms
	}
	return s
}
