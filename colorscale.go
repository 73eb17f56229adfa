package main

import (
	"math"
	"sort"

	"github.com/andareed/siftly-timelines/config"
	"github.com/andareed/siftly-timelines/logging"
	"github.com/andareed/siftly-timelines/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// asciiRamp shades segments by value when the terminal has no colors.
var asciiRamp = []rune("░▒▓█")

// colorScale maps segment values to lane colors: a Lab blend between two
// colors, or a fixed palette indexed by distinct value.
type colorScale struct {
	low, high   colorful.Color
	palette     []colorful.Color
	qualitative bool
	profile     termenv.Profile

	min, max float64
	index    map[float64]int
}

func newColorScale(cfg config.ColorConfig, profile termenv.Profile) *colorScale {
	s := &colorScale{qualitative: cfg.Qualitative, profile: profile, index: map[float64]int{}}
	s.low = mustHex(cfg.Low, colorful.Color{R: 0.17, G: 0.48, B: 0.71})
	s.high = mustHex(cfg.High, colorful.Color{R: 0.84, G: 0.1, B: 0.11})
	for _, h := range cfg.Palette {
		s.palette = append(s.palette, mustHex(h, s.low))
	}
	if len(s.palette) == 0 {
		s.palette = []colorful.Color{s.low, s.high}
	}
	return s
}

func mustHex(h string, fallback colorful.Color) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		logging.Warnf("colors: %q is not a hex color, using %s", h, fallback.Hex())
		return fallback
	}
	return c
}

// SetDomain fits the scale to the values of segs.
func (s *colorScale) SetDomain(segs []timeline.Segment) {
	s.min, s.max = math.Inf(1), math.Inf(-1)
	distinct := make([]float64, 0)
	seen := make(map[float64]struct{})
	for _, seg := range segs {
		s.min = math.Min(s.min, seg.Val)
		s.max = math.Max(s.max, seg.Val)
		if _, ok := seen[seg.Val]; !ok {
			seen[seg.Val] = struct{}{}
			distinct = append(distinct, seg.Val)
		}
	}
	if len(segs) == 0 {
		s.min, s.max = 0, 0
	}
	sort.Float64s(distinct)
	s.index = make(map[float64]int, len(distinct))
	for i, v := range distinct {
		s.index[v] = i
	}
}

// fraction is v's position in the domain, in [0, 1].
func (s *colorScale) fraction(v float64) float64 {
	if s.max <= s.min {
		return 0.5
	}
	f := (v - s.min) / (s.max - s.min)
	return math.Max(0, math.Min(1, f))
}

// Color is the lane color for v.
func (s *colorScale) Color(v float64) colorful.Color {
	if s.qualitative {
		return s.palette[s.index[v]%len(s.palette)]
	}
	return s.low.BlendLab(s.high, s.fraction(v)).Clamped()
}

// Style renders a cell of value v.
func (s *colorScale) Style(v float64) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(s.Color(v).Hex()))
}

// Cell renders one plot cell holding value v.
func (s *colorScale) Cell(v float64) string {
	if s.profile == termenv.Ascii {
		return string(s.Glyph(v))
	}
	return s.Style(v).Render(segmentGlyph)
}

// Glyph shades v for terminals without color.
func (s *colorScale) Glyph(v float64) rune {
	f := s.fraction(v)
	if s.qualitative && len(s.index) > 1 {
		f = float64(s.index[v]) / float64(len(s.index)-1)
	}
	i := int(math.Round(f * float64(len(asciiRamp)-1)))
	return asciiRamp[i]
}
