// Package loader reads raw timeline input from disk.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	"gopkg.in/yaml.v3"
)

// Format is an input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (want .json, .yaml, .yml or .csv)", ext)
	}
}

// LoadFile reads and decodes the raw groups stored at path.
func LoadFile(path string) ([]timeline.RawGroup, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	groups, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logging.Infof("loader: read %d groups from %s (%s)", len(groups), path, format)
	return groups, nil
}

// Decode reads raw groups in the given format.
func Decode(r io.Reader, format Format) ([]timeline.RawGroup, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatCSV:
		return DecodeCSV(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// DecodeJSON reads a JSON array of groups. Numbers are kept as json.Number
// so epoch milliseconds survive without float rounding.
func DecodeJSON(r io.Reader) ([]timeline.RawGroup, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var groups []timeline.RawGroup
	if err := dec.Decode(&groups); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return groups, nil
}

// DecodeYAML reads a YAML sequence of groups with the same shape as JSON.
func DecodeYAML(r io.Reader) ([]timeline.RawGroup, error) {
	var groups []timeline.RawGroup
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&groups); err != nil {
		if err == io.EOF {
			return []timeline.RawGroup{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return groups, nil
}

// EncodeJSON writes groups in the shape DecodeJSON reads.
func EncodeJSON(w io.Writer, groups []timeline.RawGroup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// FromDataset rebuilds raw groups from normalized data, with the groups and
// lines in the order of structure. Times are written as RFC 3339 strings.
func FromDataset(structure []timeline.Group, segs []timeline.Segment) []timeline.RawGroup {
	byLine := make(map[timeline.LineRef][]timeline.RawSegment, len(segs))
	for _, s := range segs {
		v := s.Val
		rs := timeline.RawSegment{
			TimeRange: [2]any{s.Start.Format(timeStampLayout), s.End.Format(timeStampLayout)},
			Val:       &v,
		}
		if lv, ok := s.LabelVal.(float64); !ok || lv != s.Val {
			rs.LabelVal = s.LabelVal
		}
		byLine[s.Ref()] = append(byLine[s.Ref()], rs)
	}

	out := make([]timeline.RawGroup, 0, len(structure))
	for _, g := range structure {
		rg := timeline.RawGroup{Group: g.Name, Data: make([]timeline.RawLine, 0, len(g.Lines))}
		for _, l := range g.Lines {
			rg.Data = append(rg.Data, timeline.RawLine{
				Label: l,
				Data:  byLine[timeline.LineRef{Group: g.Name, Label: l}],
			})
		}
		out = append(out, rg)
	}
	return out
}

const timeStampLayout = "2006-01-02T15:04:05.999999999Z07:00"
