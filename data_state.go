package main

import "time"

type sortMode string

const (
	sortAlpha  sortMode = "alpha"
	sortChrono sortMode = "chrono"
	sortNone   sortMode = "none"
)

// dataState is what the app knows about the loaded dataset beyond the
// chart itself.
type dataState struct {
	sort        sortMode
	ascending   bool
	minDuration time.Duration
	lastDir     string // directory of the last save or export
}

func (d dataState) sortLabel() string {
	if d.sort == sortNone || d.sort == "" {
		return "input"
	}
	if d.ascending {
		return string(d.sort) + "↑"
	}
	return string(d.sort) + "↓"
}
