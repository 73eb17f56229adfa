package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	Reset        key.Binding
	SortAlpha    key.Binding
	SortChrono   key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	LineDown     key.Binding
	LineUp       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	TimeWindow   key.Binding
	MinDuration  key.Binding
	Search       key.Binding
	Lines        key.Binding
	Group        key.Binding
	OpenHelp     key.Binding
	SaveToFile   key.Binding
	ExportToFile key.Binding
	CopyLines    key.Binding
	CancelDrag   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset zoom"),
	),
	SortAlpha: key.NewBinding(
		key.WithKeys("a", "A"),
		key.WithHelp("a/A", "sort by name asc/desc"),
	),
	SortChrono: key.NewBinding(
		key.WithKeys("c", "C"),
		key.WithHelp("c/C", "sort by recent activity asc/desc"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "pan earlier"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "pan later"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll lines down"),
	),
	LineUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll lines up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in on time"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out on time"),
	),
	TimeWindow: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time window"),
	),
	MinDuration: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "hide segments shorter than"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find line"),
	),
	Lines: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "show lines a-b"),
	),
	Group: key.NewBinding(
		key.WithKeys("@"),
		key.WithHelp("@", "show one group"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save dataset (json)"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export visible segments (csv)"),
	),
	CopyLines: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy visible lines"),
	),
	CancelDrag: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.Reset,
		k.SortAlpha,
		k.SortChrono,
		k.PanLeft,
		k.PanRight,
		k.LineUp,
		k.LineDown,
		k.PageUp,
		k.PageDown,
		k.ZoomIn,
		k.ZoomOut,
		k.TimeWindow,
		k.MinDuration,
		k.Search,
		k.Lines,
		k.Group,
		k.SaveToFile,
		k.ExportToFile,
		k.CopyLines,
		k.CancelDrag,
	}
}
