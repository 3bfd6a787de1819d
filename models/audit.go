package models

// AuditRow is one summary line of an audit log: a detected category plus
// either the number of occurrences (text files) or the column it was found
// in (tabular files).
type AuditRow struct {
	Detect string `json:"detect"`
	Total  int    `json:"total,omitempty"`
	Column string `json:"column,omitempty"`
}

// AuditLogEntry is the immutable per-file record produced by the backend
// at anonymization time. The viewer renders it read-only and discards it
// when the modal closes.
type AuditLogEntry struct {
	Filename string `json:"filename"`

	// Partner is the intended recipient's name.
	Partner string `json:"partner"`

	// Method is the anonymization method; the portal always encrypts.
	Method string `json:"method"`

	Type FileType   `json:"type"`
	Log  []AuditRow `json:"log"`
}

// AnonymizationMethod is the only method the portal applies.
const AnonymizationMethod = "Encryption"
