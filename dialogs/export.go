package dialogs

import (
	"fmt"

	"github.com/andareed/siftly-timelines/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks where to write the visible segments as CSV.
type Export struct {
	path    pathInput
	visible bool
}

func NewExportDialog(defaultName, lastDir string) *Export {
	return &Export{path: newPathInput("Export as: ", defaultName, lastDir), visible: true}
}

func (d *Export) Init() tea.Cmd { return d.path.input.Focus() }

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			path := d.path.resolve()
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %s", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: canceled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.path.input, cmd = d.path.input.Update(msg)
	return d, cmd
}

func (d *Export) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", d.path.input.View(), hint("enter to export visible segments (csv) • esc to cancel"))
	return box().Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.path.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.path.input.Blur()
}

func (d *Export) Focus() tea.Cmd  { return d.path.input.Focus() }
func (d *Export) Blur()           { d.path.input.Blur() }
func (d *Export) IsVisible() bool { return d.visible }
