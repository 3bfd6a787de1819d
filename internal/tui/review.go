package tui

import (
	"fmt"
	"strings"

	"github.com/wanpc3/Data-Privacy-Protector/internal/service"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

type reviewModel struct {
	session    *service.ReviewSession
	idx        int
	submitting bool
}

func newReviewModel(session *service.ReviewSession) reviewModel {
	return reviewModel{session: session}
}

func (m reviewModel) View() string {
	if m.session == nil {
		return ""
	}

	title := "Review PII: " + m.session.Filename
	items := m.session.Items()

	var body string
	switch m.session.State() {
	case service.NoData:
		body = "No PII detection data available for this file."
	case service.NoPII:
		body = "No PII detected in this file."
	default:
		if m.session.FileType == models.TabularFile {
			body = renderTabularRows(items, m.idx)
		} else {
			body = renderTextRows(items, m.idx)
		}
		if m.session.State() == service.AllIgnored {
			body += "\n" + lowConfStyle.Render("All candidates are ignored. Proceeding anonymizes nothing.")
		}
		body += "\n" + helpStyle.Render(
			fmt.Sprintf("Findings below %d%% confidence are marked ignore automatically.", service.IgnoreThreshold))
	}

	hotKeys := "↑/↓ move  space toggle ignore  enter anonymize  esc cancel"
	if m.submitting {
		hotKeys = "Anonymizing..."
	}
	return renderPage(title, body, hotKeys)
}

func renderTextRows(items []models.DetectedEntity, idx int) string {
	var b strings.Builder
	b.WriteString(padCell("", 2))
	b.WriteString(padCell("Word", 28))
	b.WriteString(padCell("Entity", 18))
	b.WriteString(padCell("Confidence", 12))
	b.WriteString("Ignore\n")
	for i, it := range items {
		line := cursorFor(i == idx) +
			padCell(it.Word, 28) +
			padCell(it.Category(), 18) +
			padCell(fmt.Sprintf("%.0f%%", it.Confidence), 12) +
			checkbox(it.Ignore)
		if it.Confidence < service.IgnoreThreshold {
			line = lowConfStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderTabularRows(items []models.DetectedEntity, idx int) string {
	var b strings.Builder
	b.WriteString(padCell("", 2))
	b.WriteString(padCell("Column", 18))
	b.WriteString(padCell("Samples", 34))
	b.WriteString(padCell("Entity", 18))
	b.WriteString(padCell("Confidence", 12))
	b.WriteString("Ignore\n")
	for i, it := range items {
		line := cursorFor(i == idx) +
			padCell(it.Column, 18) +
			padCell(strings.Join(it.SampleValues(3), ", "), 34) +
			padCell(it.Category(), 18) +
			padCell(fmt.Sprintf("%.0f%%", it.Confidence), 12) +
			checkbox(it.Ignore)
		if it.Confidence < service.IgnoreThreshold {
			line = lowConfStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
