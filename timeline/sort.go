package timeline

import (
	"sort"
	"time"
)

// Envelope is the [earliest start, latest end] of a key's segments.
type Envelope struct {
	Earliest time.Time
	Latest   time.Time
}

// Envelopes builds one envelope per key in a single pass over segs.
func Envelopes(segs []Segment, key func(Segment) string) map[string]Envelope {
	idx := make(map[string]Envelope)
	for _, s := range segs {
		k := key(s)
		env, ok := idx[k]
		if !ok {
			idx[k] = Envelope{Earliest: s.Start, Latest: s.End}
			continue
		}
		if s.Start.Before(env.Earliest) {
			env.Earliest = s.Start
		}
		if s.End.After(env.Latest) {
			env.Latest = s.End
		}
		idx[k] = env
	}
	return idx
}

// Chrono orders keys most-recently-active first: latest end descending,
// then earliest start ascending, then AlphaNum. Keys without an envelope
// are incomparable and keep their relative order. asc=false reverses.
func Chrono(envelopes map[string]Envelope, asc bool) Comparator {
	cmp := func(a, b string) int {
		ea, okA := envelopes[a]
		eb, okB := envelopes[b]
		if !okA || !okB {
			return 0
		}
		if !ea.Latest.Equal(eb.Latest) {
			if ea.Latest.After(eb.Latest) {
				return -1
			}
			return 1
		}
		if !ea.Earliest.Equal(eb.Earliest) {
			if ea.Earliest.Before(eb.Earliest) {
				return -1
			}
			return 1
		}
		return AlphaNum(a, b)
	}
	if asc {
		return cmp
	}
	return func(a, b string) int { return cmp(b, a) }
}

// Sorter owns the active label and group comparators.
type Sorter struct {
	Label Comparator
	Group Comparator
}

// NewSorter starts with AlphaNum for both.
func NewSorter() *Sorter {
	return &Sorter{Label: AlphaNum, Group: AlphaNum}
}

// Sort returns a sorted copy of structure: groups by groupCmp, lines within
// each group by labelCmp. Nil comparators fall back to the active ones. On
// success the given comparators become active. A panicking comparator is
// reported as *ComparatorError and structure is returned unchanged.
func (s *Sorter) Sort(structure []Group, labelCmp, groupCmp Comparator) (sorted []Group, err error) {
	if labelCmp == nil {
		labelCmp = s.Label
	}
	if groupCmp == nil {
		groupCmp = s.Group
	}

	defer func() {
		if r := recover(); r != nil {
			sorted, err = structure, &ComparatorError{Cause: r}
		}
	}()

	work := cloneStructure(structure)
	sort.SliceStable(work, func(i, j int) bool {
		return groupCmp(work[i].Name, work[j].Name) < 0
	})
	for _, g := range work {
		lines := g.Lines
		sort.SliceStable(lines, func(i, j int) bool {
			return labelCmp(lines[i], lines[j]) < 0
		})
	}

	s.Label, s.Group = labelCmp, groupCmp
	return work, nil
}

// SortAlpha sorts groups and lines alphanumerically.
func (s *Sorter) SortAlpha(structure []Group, asc bool) ([]Group, error) {
	cmp := Alpha(asc)
	return s.Sort(structure, cmp, cmp)
}

// SortChrono rebuilds group and label envelopes from segs and sorts by them.
// Label envelopes are keyed by label alone, across groups.
func (s *Sorter) SortChrono(structure []Group, segs []Segment, asc bool) ([]Group, error) {
	groups := Envelopes(segs, func(seg Segment) string { return seg.Group })
	labels := Envelopes(segs, func(seg Segment) string { return seg.Label })
	return s.Sort(structure, Chrono(labels, asc), Chrono(groups, asc))
}
