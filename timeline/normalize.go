package timeline

import (
	"encoding/json"
	"math"
	"time"
)

// RawGroup is the hierarchical input: groups of labeled lines of segments.
type RawGroup struct {
	Group string    `json:"group" yaml:"group"`
	Data  []RawLine `json:"data" yaml:"data"`
}

type RawLine struct {
	Label string       `json:"label" yaml:"label"`
	Data  []RawSegment `json:"data" yaml:"data"`
}

// RawSegment carries its time range either as time.Time values, epoch
// milliseconds, or timestamp strings. All segments of one input must use
// the same representation.
type RawSegment struct {
	TimeRange [2]any   `json:"timeRange" yaml:"timeRange"`
	Val       *float64 `json:"val" yaml:"val"`
	LabelVal  any      `json:"labelVal,omitempty" yaml:"labelVal,omitempty"`
}

// Dataset is normalized input: the flat interval list in input order and
// the structural index in input order.
type Dataset struct {
	Segments   []Segment
	Structure  []Group
	TotalLines int
}

// Extent is the [earliest start, latest end] of all segments, or the zero
// window when there are none.
func (d *Dataset) Extent() TimeWindow {
	return extentOf(d.Segments)
}

func extentOf(segs []Segment) TimeWindow {
	var w TimeWindow
	for i, s := range segs {
		if i == 0 || s.Start.Before(w.Start) {
			w.Start = s.Start
		}
		if i == 0 || s.End.After(w.End) {
			w.End = s.End
		}
	}
	return w
}

var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type stampKind int

const (
	stampNative stampKind = iota
	stampMillis
	stampString
)

type stampFormat struct {
	kind   stampKind
	layout string
}

func detectStampFormat(v any) (stampFormat, bool) {
	switch x := v.(type) {
	case time.Time:
		return stampFormat{kind: stampNative}, true
	case string:
		for _, layout := range stringLayouts {
			if _, err := time.ParseInLocation(layout, x, time.Local); err == nil {
				return stampFormat{kind: stampString, layout: layout}, true
			}
		}
		return stampFormat{}, false
	default:
		if _, ok := toMillis(v); ok {
			return stampFormat{kind: stampMillis}, true
		}
		return stampFormat{}, false
	}
}

func (f stampFormat) parse(v any) (time.Time, bool) {
	switch f.kind {
	case stampNative:
		t, ok := v.(time.Time)
		return t, ok && !t.IsZero()
	case stampMillis:
		ms, ok := toMillis(v)
		if !ok {
			return time.Time{}, false
		}
		return time.UnixMilli(ms), true
	default:
		s, ok := v.(string)
		if !ok {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation(f.layout, s, time.Local)
		return t, err == nil
	}
}

func toMillis(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int64(x), true
	case float32:
		return int64(x), true
	case int:
		return int64(x), true
	case int64:
		return x, true
	case uint64:
		return int64(x), true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
		f, err := x.Float64()
		return int64(f), err == nil
	}
	return 0, false
}

// Normalize converts raw input into a Dataset. The timestamp format is
// detected once, from the first segment, and applied to every segment.
func Normalize(raw []RawGroup) (*Dataset, error) {
	ds := &Dataset{
		Segments:  []Segment{},
		Structure: make([]Group, 0, len(raw)),
	}

	var (
		format   stampFormat
		detected bool
	)
	seenGroups := make(map[string]struct{}, len(raw))

	for _, rg := range raw {
		if rg.Group == "" {
			return nil, malformed(rg.Group, "", -1, "missing group name")
		}
		if _, dup := seenGroups[rg.Group]; dup {
			return nil, malformed(rg.Group, "", -1, "duplicate group")
		}
		seenGroups[rg.Group] = struct{}{}

		g := Group{Name: rg.Group, Lines: make([]string, 0, len(rg.Data))}
		seenLabels := make(map[string]struct{}, len(rg.Data))

		for _, rl := range rg.Data {
			if _, dup := seenLabels[rl.Label]; dup {
				return nil, malformed(rg.Group, rl.Label, -1, "duplicate line label")
			}
			seenLabels[rl.Label] = struct{}{}
			g.Lines = append(g.Lines, rl.Label)

			for k, rs := range rl.Data {
				if rs.TimeRange[0] == nil || rs.TimeRange[1] == nil {
					return nil, malformed(rg.Group, rl.Label, k, "missing timeRange bound")
				}
				if rs.Val == nil {
					return nil, malformed(rg.Group, rl.Label, k, "missing val")
				}
				if !detected {
					f, ok := detectStampFormat(rs.TimeRange[0])
					if !ok {
						return nil, malformed(rg.Group, rl.Label, k, "unrecognized timestamp %v", rs.TimeRange[0])
					}
					format, detected = f, true
				}
				start, ok := format.parse(rs.TimeRange[0])
				if !ok {
					return nil, malformed(rg.Group, rl.Label, k, "start %v does not match the input timestamp format", rs.TimeRange[0])
				}
				end, ok := format.parse(rs.TimeRange[1])
				if !ok {
					return nil, malformed(rg.Group, rl.Label, k, "end %v does not match the input timestamp format", rs.TimeRange[1])
				}
				if start.After(end) {
					return nil, malformed(rg.Group, rl.Label, k, "start %s is after end %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
				}

				labelVal := rs.LabelVal
				if labelVal == nil {
					labelVal = *rs.Val
				}
				ds.Segments = append(ds.Segments, Segment{
					Group:    rg.Group,
					Label:    rl.Label,
					Start:    start,
					End:      end,
					Val:      *rs.Val,
					LabelVal: labelVal,
				})
			}
		}
		ds.Structure = append(ds.Structure, g)
		ds.TotalLines += len(g.Lines)
	}
	return ds, nil
}
