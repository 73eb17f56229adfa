package timeline

import (
	"fmt"
	"time"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(h float64) time.Time { return day0.Add(time.Duration(h * float64(time.Hour))) }

func rawSeg(start, end any, val float64) RawSegment {
	v := val
	return RawSegment{TimeRange: [2]any{start, end}, Val: &v}
}

// rawChart builds groups with the given line counts; labels are
// "<group lowercase><n>" and every line holds one segment over [0h, 8h].
func rawChart(groups []string, counts []int) []RawGroup {
	out := make([]RawGroup, 0, len(groups))
	for i, g := range groups {
		rg := RawGroup{Group: g}
		for n := 1; n <= counts[i]; n++ {
			rg.Data = append(rg.Data, RawLine{
				Label: fmt.Sprintf("%s%d", lower(g), n),
				Data:  []RawSegment{rawSeg(at(0), at(8), float64(n))},
			})
		}
		out = append(out, rg)
	}
	return out
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func mustNormalize(raw []RawGroup) *Dataset {
	ds, err := Normalize(raw)
	if err != nil {
		panic(err)
	}
	return ds
}

type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Render(f Frame) { r.frames = append(r.frames, f) }

type recordingOverview struct {
	domains    []TimeWindow
	selections []TimeWindow
}

func (o *recordingOverview) SetDomain(w TimeWindow)    { o.domains = append(o.domains, w) }
func (o *recordingOverview) SetSelection(w TimeWindow) { o.selections = append(o.selections, w) }

func (o *recordingOverview) lastSelection() TimeWindow {
	if len(o.selections) == 0 {
		return TimeWindow{}
	}
	return o.selections[len(o.selections)-1]
}
