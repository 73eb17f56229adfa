package main

import "github.com/charmbracelet/lipgloss"

const (
	laneTextFGColor     = "#c0c0c0"
	laneEmptyBGColor    = "#1c1c1c"
	laneAltBGColor      = "#242424"
	groupTextFGColor    = "#ffb347"
	selectionBGColor    = "#f5c542"
	selectionFGColor    = "#000000"
	axisTextFGColor     = "#8a8a8a"
	overviewSelectColor = "#ff9f1c"
)

const (
	appMarginTop  = 1
	appMarginLeft = 2
)

var (
	appstyle = lipgloss.NewStyle().Margin(appMarginTop, appMarginLeft)

	laneLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(laneTextFGColor))
	groupStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(groupTextFGColor)).Bold(true)
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(axisTextFGColor))
	emptyCellStyle = lipgloss.NewStyle().Background(lipgloss.Color(laneEmptyBGColor))
	altCellStyle   = lipgloss.NewStyle().Background(lipgloss.Color(laneAltBGColor))
	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(selectionBGColor)).
			Foreground(lipgloss.Color(selectionFGColor))
	overviewSelectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(overviewSelectColor))

	segmentGlyph = " "

	timeWindowArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
)
