package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// detectionCodes fixes the order the detection checkboxes are shown in.
var detectionCodes = []string{
	"PERSON",
	"IC_NUMBER",
	"US_PASSPORT",
	"EMAIL_ADDRESS",
	"LOCATION",
	"US_BANK_NUMBER",
	"PHONE_NUMBER",
	"CREDIT_CARD",
}

type partnerFormModel struct {
	inputs     []textinput.Model
	detections map[string]bool
	focus      int
	editing    bool
	partnerID  string
	submitting bool
}

func newPartnerFormModel(partner *models.Partner) partnerFormModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[2].EchoCharacter = '*'
	inputs[3].EchoMode = textinput.EchoPassword
	inputs[3].EchoCharacter = '*'
	inputs[0].Focus()

	detections := make(map[string]bool, len(detectionCodes))
	for _, code := range detectionCodes {
		detections[code] = true
	}

	m := partnerFormModel{inputs: inputs, detections: detections}
	if partner == nil {
		return m
	}

	m.editing = true
	m.partnerID = partner.ID
	m.inputs[0].SetValue(partner.Name)
	m.inputs[1].SetValue(partner.Logo)
	if len(partner.DetectionSettings) > 0 {
		for _, code := range detectionCodes {
			m.detections[code] = false
		}
		for _, code := range partner.DetectionSettings {
			m.detections[code] = true
		}
	}
	return m
}

// fieldCount covers the text inputs plus one focus slot per checkbox.
func (m partnerFormModel) fieldCount() int {
	return len(m.inputs) + len(detectionCodes)
}

func (m partnerFormModel) onCheckbox() bool {
	return m.focus >= len(m.inputs)
}

func (m partnerFormModel) focusedCode() string {
	return detectionCodes[m.focus-len(m.inputs)]
}

func (m partnerFormModel) enabledDetections() []string {
	out := make([]string, 0, len(detectionCodes))
	for _, code := range detectionCodes {
		if m.detections[code] {
			out = append(out, code)
		}
	}
	return out
}

func (m partnerFormModel) toCreateRequest() models.CreatePartnerRequest {
	return models.CreatePartnerRequest{
		Name:              m.inputs[0].Value(),
		IconPath:          m.inputs[1].Value(),
		EncryptionKey:     m.inputs[2].Value(),
		FilePassword:      m.inputs[3].Value(),
		DetectionSettings: m.enabledDetections(),
	}
}

func (m partnerFormModel) toUpdateRequest() models.UpdatePartnerRequest {
	req := models.UpdatePartnerRequest{}
	if v := m.inputs[0].Value(); v != "" {
		req.Name = &v
	}
	if v := m.inputs[1].Value(); v != "" {
		req.IconPath = &v
	}
	if v := m.inputs[2].Value(); v != "" {
		req.EncryptionKey = &v
	}
	if v := m.inputs[3].Value(); v != "" {
		req.FilePassword = &v
	}
	settings := m.enabledDetections()
	req.DetectionSettings = settings
	return req
}

func (m partnerFormModel) View() string {
	title := "New Partner"
	if m.editing {
		title = "Edit Partner: " + m.inputs[0].Value()
	}

	body := "Name:           [" + m.inputs[0].View() + "]\n"
	body += "Icon path:      [" + m.inputs[1].View() + "]\n"
	body += "Encryption key: [" + m.inputs[2].View() + "]\n"
	body += "File password:  [" + m.inputs[3].View() + "]\n\n"
	body += "Detection settings:\n"
	for i, code := range detectionCodes {
		body += cursorFor(m.focus == len(m.inputs)+i) +
			checkbox(m.detections[code]) + " " + models.DetectionLabel(code) + "\n"
	}

	hotKeys := "tab next field  space toggle detection  enter save  esc cancel"
	if m.submitting {
		hotKeys = "Saving..."
	}
	return renderPage(title, body, hotKeys)
}
