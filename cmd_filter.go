package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/andareed/siftly-timelines/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// setMinDuration hides segments shorter than the given duration; "0" or
// an empty input clears the filter.
func (m *model) setMinDuration(input string) tea.Cmd {
	input = strings.TrimSpace(input)
	d := time.Duration(0)
	if input != "" && input != "0" {
		var err error
		d, err = time.ParseDuration(input)
		if err != nil || d < 0 {
			return m.startNotice(fmt.Sprintf("Invalid duration %q", input), noticeWarn, noticeDuration)
		}
	}
	logging.Infof("Setting minimum segment duration to %s", d)
	m.chart.SetMinSegmentDuration(d)
	m.data.minDuration = d
	if d == 0 {
		return m.startNotice("Duration filter cleared", noticeInfo, noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Hiding segments shorter than %s", d), noticeInfo, noticeDuration)
}
