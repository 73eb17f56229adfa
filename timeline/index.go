package timeline

// Bias picks the boundary returned by LabelToIndex when the target line is
// not in the structure.
type Bias int

const (
	// BiasBefore returns the index of the line just before the insertion point.
	BiasBefore Bias = iota
	// BiasAfter returns the index of the line at or after the insertion point.
	BiasAfter
)

// IndexToLabel maps a flat line index to its (group, label). Indices past
// the end saturate to the last line, negative indices to the first. The
// result is false only when the structure holds no lines.
func IndexToLabel(structure []Group, i int) (LineRef, bool) {
	if i < 0 {
		i = 0
	}
	remaining := i
	for _, g := range structure {
		if len(g.Lines) > remaining {
			return LineRef{Group: g.Name, Label: g.Lines[remaining]}, true
		}
		remaining -= len(g.Lines)
	}
	for k := len(structure) - 1; k >= 0; k-- {
		if n := len(structure[k].Lines); n > 0 {
			return LineRef{Group: structure[k].Name, Label: structure[k].Lines[n-1]}, true
		}
	}
	return LineRef{}, false
}

// LabelToIndex maps a (group, label) back to its flat line index. An exact
// match always wins. Otherwise the comparators locate where the target
// would sort and the bias picks the neighbouring index; the result may be
// -1 or TotalLines when the target sorts outside the structure.
func LabelToIndex(structure []Group, target LineRef, bias Bias, groupCmp, labelCmp Comparator) int {
	if groupCmp == nil {
		groupCmp = AlphaNum
	}
	if labelCmp == nil {
		labelCmp = AlphaNum
	}
	miss := 1
	if bias == BiasAfter {
		miss = 0
	}

	if i, ok := exactIndex(structure, target); ok {
		return i
	}

	idx := 0
	for _, g := range structure {
		if groupCmp(target.Group, g.Name) < 0 {
			break
		}
		if g.Name == target.Group {
			for j, l := range g.Lines {
				if labelCmp(target.Label, l) < 0 {
					return idx + j - miss
				}
			}
			return idx + len(g.Lines) - miss
		}
		idx += len(g.Lines)
	}
	return idx - miss
}

func exactIndex(structure []Group, target LineRef) (int, bool) {
	idx := 0
	for _, g := range structure {
		if g.Name != target.Group {
			idx += len(g.Lines)
			continue
		}
		for j, l := range g.Lines {
			if l == target.Label {
				return idx + j, true
			}
		}
		return 0, false
	}
	return 0, false
}

// PointScale is a categorical axis: each domain value sits at the centre of
// an equal band of the pixel range.
type PointScale struct {
	Domain []LineRef
	Range  [2]float64
}

// Step is the band height of one domain value.
func (s PointScale) Step() float64 {
	if len(s.Domain) == 0 {
		return 0
	}
	return (s.Range[1] - s.Range[0]) / float64(len(s.Domain))
}

// Position returns the pixel centre of rank i.
func (s PointScale) Position(i int) float64 {
	return s.Range[0] + (float64(i)+0.5)*s.Step()
}

// Invert maps a pixel coordinate to the rank of the band containing it by
// scanning the band breakpoints. Coordinates outside the range saturate to
// the first or last rank; an empty domain yields -1.
func (s PointScale) Invert(px float64) int {
	n := len(s.Domain)
	if n == 0 {
		return -1
	}
	step := s.Step()
	for i := 0; i < n; i++ {
		if s.Range[0]+float64(i+1)*step >= px {
			return i
		}
	}
	return n - 1
}

// InvertRef is Invert followed by a domain lookup.
func (s PointScale) InvertRef(px float64) (LineRef, bool) {
	i := s.Invert(px)
	if i < 0 {
		return LineRef{}, false
	}
	return s.Domain[i], true
}
