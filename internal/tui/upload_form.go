package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type uploadModel struct {
	input     textinput.Model
	analyzing bool
}

func newUploadModel() uploadModel {
	in := textinput.New()
	in.Width = 60
	in.Placeholder = "/path/to/file.csv"
	in.Focus()
	return uploadModel{input: in}
}

func (m uploadModel) View() string {
	body := "File path: [" + m.input.View() + "]"
	hotKeys := "enter upload  esc cancel"
	if m.analyzing {
		hotKeys = "Analyzing file for PII..."
	}
	return renderPage("Upload File", body, hotKeys)
}
