package dialogs

import (
	"fmt"

	"github.com/andareed/siftly-timelines/logging"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// Save asks where to write the dataset as JSON.
type Save struct {
	path    pathInput
	visible bool
}

func NewSaveDialog(defaultName, lastDir string) *Save {
	return &Save{path: newPathInput("Save as: ", defaultName, lastDir), visible: true}
}

func (d *Save) Init() tea.Cmd { return d.path.input.Focus() }

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
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
			logging.Debugf("SaveDialog: confirmed %s", path)
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("SaveDialog: canceled")
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.path.input, cmd = d.path.input.Update(msg)
	return d, cmd
}

func (d *Save) View() string {
	if !d.visible {
		return ""
	}
	content := fmt.Sprintf("%s\n\n%s", d.path.input.View(), hint("enter to save dataset (json) • esc to cancel"))
	return box().Render(content)
}

func (d *Save) Show() {
	d.visible = true
	d.path.input.Focus()
}

func (d *Save) Hide() {
	d.visible = false
	d.path.input.Blur()
}

func (d *Save) Focus() tea.Cmd  { return d.path.input.Focus() }
func (d *Save) Blur()           { d.path.input.Blur() }
func (d *Save) IsVisible() bool { return d.visible }
