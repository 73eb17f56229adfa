// Package config holds the sftl settings file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andareed/siftly-timelines/timeline"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration. Missing keys keep their defaults.
type Config struct {
	Chart  ChartConfig `yaml:"chart"`
	Sort   SortConfig  `yaml:"sort"`
	Colors ColorConfig `yaml:"colors"`
}

type ChartConfig struct {
	MaxHeight          int           `yaml:"max_height" validate:"gte=0"`      // rows available to lanes; 0 fills the terminal
	MaxLineHeight      int           `yaml:"max_line_height" validate:"gte=1"` // rows per line
	Margins            Margins       `yaml:"margins"`                          // space around the plot, in cells
	UseUTC             bool          `yaml:"use_utc"`                          // show times in UTC instead of local time
	EnableOverview     bool          `yaml:"enable_overview"`                  // draw the minimap under the lanes
	MinSegmentDuration time.Duration `yaml:"min_segment_duration" validate:"gte=0s"`
	MinZoomSpan        time.Duration `yaml:"min_zoom_span" validate:"gte=0s"`
}

type Margins struct {
	Top    int `yaml:"top" validate:"gte=0"`
	Right  int `yaml:"right" validate:"gte=0"`
	Bottom int `yaml:"bottom" validate:"gte=0"`
	Left   int `yaml:"left" validate:"gte=0"`
}

type SortConfig struct {
	Mode      string `yaml:"mode" validate:"oneof=alpha chrono none"`
	Ascending bool   `yaml:"ascending"`
}

type ColorConfig struct {
	Low         string   `yaml:"low" validate:"hexcolor"`  // sequential scale start
	High        string   `yaml:"high" validate:"hexcolor"` // sequential scale end
	Qualitative bool     `yaml:"qualitative"`              // color by distinct value instead of magnitude
	Palette     []string `yaml:"palette" validate:"dive,hexcolor"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chart: ChartConfig{
			MaxHeight:      0,
			MaxLineHeight:  1,
			Margins:        Margins{Top: 0, Right: 1, Bottom: 0, Left: 1},
			UseUTC:         false,
			EnableOverview: true,
			MinZoomSpan:    timeline.DefaultMinZoomSpan,
		},
		Sort: SortConfig{
			Mode:      "alpha",
			Ascending: true,
		},
		Colors: ColorConfig{
			Low:  "#2c7bb6",
			High: "#d7191c",
			Palette: []string{
				"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
				"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
			},
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v): %w", fe.Namespace(), fe.Tag(), fe.Value(), err)
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Layout builds the chart layout for a plot area width cells wide and
// height rows tall. MaxHeight, when set, caps the height.
func (c ChartConfig) Layout(width, height int) timeline.Layout {
	if c.MaxHeight > 0 && c.MaxHeight < height {
		height = c.MaxHeight
	}
	return timeline.Layout{
		Width:         width,
		MaxHeight:     height,
		MaxLineHeight: c.MaxLineHeight,
		Margins: timeline.Margins{
			Top:    c.Margins.Top,
			Right:  c.Margins.Right,
			Bottom: c.Margins.Bottom,
			Left:   c.Margins.Left,
		},
	}
}

// Options builds the chart options for the given initial size.
func (c ChartConfig) Options(width, height int) timeline.Options {
	return timeline.Options{
		Layout:             c.Layout(width, height),
		MinSegmentDuration: c.MinSegmentDuration,
		MinZoomSpan:        c.MinZoomSpan,
	}
}

// Location is the zone times are shown in.
func (c ChartConfig) Location() *time.Location {
	if c.UseUTC {
		return time.UTC
	}
	return time.Local
}
