package models

import (
	"path/filepath"
	"strings"
)

// FileType is the logical classification of an uploaded file. The client
// derives it from the extension when building the upload request, but the
// backend's response value is authoritative.
type FileType string

const (
	TextFile     FileType = "Text File"
	TabularFile  FileType = "Tabular File"
	ImageFile    FileType = "Image file"
	DocumentFile FileType = "Document file"
	UnknownFile  FileType = "Unknown file"
)

// FileState is the anonymization state of a file. A freshly uploaded file
// is PendingReview until the review decisions are submitted; afterwards it
// toggles between Anonymized and Deanonymized.
type FileState string

const (
	PendingReview FileState = "Pending Review"
	Anonymized    FileState = "Anonymized"
	Deanonymized  FileState = "De-anonymized"
)

// Toggled returns the logical complement of a settled state. PendingReview
// has no complement and is returned unchanged.
func (s FileState) Toggled() FileState {
	switch s {
	case Anonymized:
		return Deanonymized
	case Deanonymized:
		return Anonymized
	default:
		return s
	}
}

// File is one uploaded file record owned by exactly one partner. All fields
// except State are assigned by the backend; State is mutated only through
// the toggle endpoint.
type File struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Type     FileType `json:"type"`

	// State is PendingReview, Anonymized, or Deanonymized.
	State FileState `json:"state"`

	// Download is the server-relative link to the anonymized artifact.
	// Present only while State is Anonymized.
	Download string `json:"download,omitempty"`
}

// ClassifyFile maps a filename extension to a logical FileType:
// txt → text; jpg/jpeg/png/bmp → image; csv/xlsx/xlsm/xls → tabular;
// doc/docx/pdf → document; anything else → unknown.
func ClassifyFile(filename string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "txt":
		return TextFile
	case "jpg", "jpeg", "png", "bmp":
		return ImageFile
	case "csv", "xlsx", "xlsm", "xls":
		return TabularFile
	case "doc", "docx", "pdf":
		return DocumentFile
	default:
		return UnknownFile
	}
}
