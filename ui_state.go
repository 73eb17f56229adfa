package main

type mode int

const (
	modeView mode = iota
	modeCommand
	modeTimeWindow
	modeDialog
)

type uiState struct {
	mode        mode
	command     CommandInput
	timeWindow  timeWindowUI
	noticeMsg   string
	noticeType  noticeKind
	noticeSeq   int
	searchQuery string
	scentStatus string // window the drag in progress would select
	dragging    bool
}
