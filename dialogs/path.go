package dialogs

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
)

// pathInput is the file name field shared by the save and export dialogs.
type pathInput struct {
	input   textinput.Model
	lastDir string
}

func newPathInput(prompt, defaultName, lastDir string) pathInput {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return pathInput{input: ti, lastDir: lastDir}
}

// resolve returns the path to write, or "" when nothing was entered.
// Bare file names land in lastDir.
func (p pathInput) resolve() string {
	val := p.input.Value()
	if val == "" {
		val = p.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if p.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(p.lastDir, filepath.Base(val))
	}
	return val
}
