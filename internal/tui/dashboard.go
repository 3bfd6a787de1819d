package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

type dashboardModel struct {
	fileIdx    int
	refreshing bool
	spinner    spinner.Model
	status     string
}

func newDashboardModel() dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return dashboardModel{spinner: s}
}

func (m dashboardModel) currentFile(snap service.Snapshot) (models.File, bool) {
	p, ok := snap.Selected()
	if !ok {
		return models.File{}, false
	}
	if len(p.Files) == 0 || m.fileIdx < 0 || m.fileIdx >= len(p.Files) {
		return models.File{}, false
	}
	return p.Files[m.fileIdx], true
}

func (m *dashboardModel) clampFileIdx(snap service.Snapshot) {
	p, ok := snap.Selected()
	if !ok {
		m.fileIdx = 0
		return
	}
	if m.fileIdx >= len(p.Files) {
		m.fileIdx = len(p.Files) - 1
	}
	if m.fileIdx < 0 {
		m.fileIdx = 0
	}
}

func stateIcon(s models.FileState) string {
	switch s {
	case models.Anonymized:
		return "[A]"
	case models.Deanonymized:
		return "[D]"
	default:
		return "[P]"
	}
}

func (m dashboardModel) view(snap service.Snapshot) string {
	header := "Data Privacy Protector"
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := titleStyle.Render(header) + "\n\n"

	if len(snap.Partners) == 0 {
		out += "No partners registered yet. Press a to add one.\n"
	} else {
		tabs := make([]string, 0, len(snap.Partners))
		for _, p := range snap.Partners {
			label := " " + p.Name + " "
			if p.ID == snap.SelectedID {
				label = titleStyle.Render("[" + p.Name + "]")
			}
			tabs = append(tabs, label)
		}
		out += strings.Join(tabs, " ") + "\n\n"

		p, _ := snap.Selected()
		if len(p.Files) == 0 {
			out += "No files uploaded for this partner.\n"
		} else {
			out += padCell("", 2) + padCell("Filename", 34) + padCell("Type", 14) + "State\n"
			for i, f := range p.Files {
				line := cursorFor(i == m.fileIdx) +
					padCell(f.Filename, 34) +
					padCell(string(f.Type), 14) +
					stateIcon(f.State) + " " + string(f.State)
				if f.Download != "" {
					line += "  ↓"
				}
				out += line + "\n"
			}
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render(
		"←/→ partner  ↑/↓ file  u upload  t toggle state  l audit log  c copy link\n"+
			"a add partner  p partner details  ctrl+d delete partner  D download all  r refresh  q quit")
	return out
}
