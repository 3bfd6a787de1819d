package tui

import (
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/models"
)

type auditModel struct {
	fileID  string
	loading bool
	entry   models.AuditLogEntry
}

func (m auditModel) View() string {
	if m.loading {
		return renderPage("Audit Log", "Loading...", "esc close")
	}

	body := "File:    " + valueOrDash(m.entry.Filename) + "\n"
	body += "Partner: " + valueOrDash(m.entry.Partner) + "\n"
	body += "Method:  " + valueOrDash(m.entry.Method) + "\n"
	body += "Type:    " + valueOrDash(string(m.entry.Type)) + "\n\n"

	if len(m.entry.Log) == 0 {
		body += "No anonymization actions recorded for this file."
	} else {
		for _, row := range m.entry.Log {
			if row.Column != "" {
				body += fmt.Sprintf("  %-20s column %s\n", row.Detect, row.Column)
			} else {
				body += fmt.Sprintf("  %-20s %d occurrence(s)\n", row.Detect, row.Total)
			}
		}
	}

	return renderPage("Audit Log", body, "esc close")
}
