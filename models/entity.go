package models

// DetectedEntity is one PII candidate returned by the detection engine for
// an uploaded file, pending human review. Confidence is expressed in the
// [0,100] UI domain while under review; the backend wire format uses
// [0.0,1.0] (see CleanedItem).
//
// Text-file candidates carry Word/Start/End; tabular candidates carry
// Column, Entity, and sample values. Both shapes share Detect, Confidence,
// and Ignore.
type DetectedEntity struct {
	// ID is the candidate's position in the detection batch. It is
	// assigned by the review session, not the backend.
	ID int `json:"id"`

	// Detect is the detected PII category, e.g. "EMAIL_ADDRESS".
	Detect string `json:"detect"`

	// Entity is the tabular-shape category name. Some backends report
	// tabular hits under "entity" instead of "detect".
	Entity string `json:"entity,omitempty"`

	// Confidence is the detection score in [0,100].
	Confidence float64 `json:"confidence"`

	// Ignore marks the candidate as excluded from anonymization.
	Ignore bool `json:"ignore"`

	// Word, Start, End describe a text-file hit: the matched word and
	// its byte offsets in the source document.
	Word  string `json:"word,omitempty"`
	Start *int   `json:"start,omitempty"`
	End   *int   `json:"end,omitempty"`

	// Column names the tabular column the hit was found in.
	Column string `json:"column,omitempty"`

	// Words holds sample values from the column; the review table shows
	// up to the first three.
	Words []string `json:"words,omitempty"`

	// TopData carries the representative column values submitted back
	// to the backend on proceed.
	TopData []string `json:"topData,omitempty"`
}

// IsTabular reports whether the entity is a tabular-shaped candidate.
func (e DetectedEntity) IsTabular() bool {
	return e.Column != ""
}

// Category returns the PII category regardless of shape: Detect for text
// candidates, Entity for tabular ones that only set it there.
func (e DetectedEntity) Category() string {
	if e.Detect != "" {
		return e.Detect
	}
	return e.Entity
}

// SampleValues returns up to n of the column's sample values.
func (e DetectedEntity) SampleValues(n int) []string {
	if len(e.Words) <= n {
		return e.Words
	}
	return e.Words[:n]
}

// CleanedItem is the submission shape of a reviewed entity. Confidence is
// rescaled to [0.0,1.0] and only the fields matching the item's shape are
// serialized; absent fields are omitted, never sent as null.
type CleanedItem struct {
	Detect     string   `json:"detect"`
	Confidence float64  `json:"confidence"`
	Ignore     bool     `json:"ignore"`
	Word       string   `json:"word,omitempty"`
	Start      *int     `json:"start,omitempty"`
	End        *int     `json:"end,omitempty"`
	Column     string   `json:"column,omitempty"`
	TopData    []string `json:"topData,omitempty"`
}

// Cleaned converts the reviewed entity into its submission shape.
func (e DetectedEntity) Cleaned() CleanedItem {
	item := CleanedItem{
		Detect:     e.Category(),
		Confidence: e.Confidence / 100,
		Ignore:     e.Ignore,
	}
	if e.IsTabular() {
		item.Column = e.Column
		item.TopData = e.TopData
		if item.TopData == nil {
			item.TopData = e.SampleValues(3)
		}
	} else {
		item.Word = e.Word
		item.Start = e.Start
		item.End = e.End
	}
	return item
}

// UploadResponse is the backend's answer to an upload request: the stored
// file identity plus the detection batch seeding the review session. A nil
// Review means the backend produced no detection data for the file, which
// the UI distinguishes from an empty batch.
type UploadResponse struct {
	FileID   string           `json:"file_id"`
	Filename string           `json:"filename"`
	Type     FileType         `json:"type"`
	Review   []DetectedEntity `json:"review"`
}

// ProceedRequest finalizes anonymization for a reviewed file.
type ProceedRequest struct {
	FileID string        `json:"file_id"`
	Review []CleanedItem `json:"review"`
}

// ProceedResponse reports the anonymized artifact's filename.
type ProceedResponse struct {
	Filename string `json:"filename"`
}

// StateRequest is the body of a file-state toggle request.
type StateRequest struct {
	State FileState `json:"state"`
}

// ErrorResponse is the JSON error envelope every failing portal endpoint
// returns; Error is surfaced to the user verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}
