package tui

import (
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/models"
)

type partnerDetailModel struct {
	partner models.Partner
}

func (m partnerDetailModel) View() string {
	p := m.partner

	counts := map[models.FileState]int{}
	for _, f := range p.Files {
		counts[f.State]++
	}

	body := "Name: " + p.Name + "\n"
	body += "Logo: " + valueOrDash(p.Logo) + "\n\n"
	body += "Detection settings:\n"
	if len(p.DetectionSettings) == 0 {
		body += "  (none)\n"
	} else {
		for _, code := range p.DetectionSettings {
			body += "  - " + models.DetectionLabel(code) + "\n"
		}
	}
	body += fmt.Sprintf("\nFiles: %d total, %d pending review, %d anonymized, %d de-anonymized",
		len(p.Files), counts[models.PendingReview], counts[models.Anonymized], counts[models.Deanonymized])

	return renderPage("Partner Details", body, "e edit  esc close")
}
