package models

// Partner is one data-sharing counterpart mirrored from the portal backend.
// The backend owns the record; the client only ever holds it inside a
// registry snapshot and never mutates it in place.
type Partner struct {
	// ID is the backend-assigned partner identifier.
	ID string `json:"id"`

	// Name is the display name, also used as the multipart key for
	// upload and download-all requests.
	Name string `json:"name"`

	// Logo is an optional server-relative path to the partner's logo,
	// empty when the partner has none.
	Logo string `json:"logo,omitempty"`

	// DetectionSettings lists the PII categories enabled for this
	// partner, e.g. "EMAIL_ADDRESS", "PHONE_NUMBER".
	DetectionSettings []string `json:"detection_settings"`

	// Files are the partner's uploaded files in backend order.
	Files []File `json:"files"`
}

// FileByID returns the partner's file with the given id.
func (p Partner) FileByID(fileID string) (File, bool) {
	for _, f := range p.Files {
		if f.ID == fileID {
			return f, true
		}
	}
	return File{}, false
}

// detectionLabels maps backend detection codes to the human-readable
// names shown in partner detail views.
var detectionLabels = map[string]string{
	"PERSON":         "Person",
	"IC_NUMBER":      "IC Number",
	"US_PASSPORT":    "Passport",
	"EMAIL_ADDRESS":  "Email",
	"LOCATION":       "Address / Geographic",
	"US_BANK_NUMBER": "Bank Number",
	"PHONE_NUMBER":   "Phone Number",
	"CREDIT_CARD":    "Credit Card",
}

// DetectionLabel returns the display name for a detection code, or the
// code itself when no label is known.
func DetectionLabel(code string) string {
	if label, ok := detectionLabels[code]; ok {
		return label
	}
	return code
}

// CreatePartnerRequest carries the multipart fields of a partner-creation
// request. IconPath is a local file path; empty means no logo.
type CreatePartnerRequest struct {
	Name              string
	IconPath          string
	EncryptionKey     string
	FilePassword      string
	DetectionSettings []string
}

// UpdatePartnerRequest carries a partial partner update. Nil fields are
// left unchanged by the backend.
type UpdatePartnerRequest struct {
	Name              *string
	IconPath          *string
	EncryptionKey     *string
	FilePassword      *string
	DetectionSettings []string
}
