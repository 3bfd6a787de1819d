package service

import (
	"github.com/google/uuid"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// IgnoreThreshold is the confidence (UI domain, [0,100]) below which a
// candidate defaults to ignored at session construction, matching the
// policy note shown next to the review table.
const IgnoreThreshold = 70

// DisplayState discriminates the review table's empty and non-empty
// renderings. The three empty-ish states are deliberately distinct: a
// missing batch, a genuinely clean file, and a batch whose every candidate
// is ignored all read differently to the reviewer.
type DisplayState int

const (
	// NoData means the backend returned no detection batch at all.
	NoData DisplayState = iota
	// NoPII means the batch was present but empty.
	NoPII
	// AllIgnored means every candidate in a non-empty batch carries
	// ignore=true.
	AllIgnored
	// HasFindings means at least one candidate is not ignored.
	HasFindings
)

// ReviewSession holds the editable copy of one file's detection batch
// between "upload analyzed" and "proceed or cancel". Items are keyed by
// batch position and copied at construction, so later mutation of the
// source batch never leaks into the session.
type ReviewSession struct {
	// Token identifies this session. Async results stamped with an
	// older token are discarded by the orchestrator, which closes the
	// cancel-then-late-response race.
	Token string

	FileID   string
	Filename string
	FileType models.FileType

	batchPresent bool
	items        []models.DetectedEntity
}

// NewReviewSession builds a session from the backend's upload response.
// Confidence arrives in the wire domain [0.0,1.0] and is rescaled to the
// UI domain [0,100]; candidates below IgnoreThreshold default to ignored.
func NewReviewSession(upload models.UploadResponse) *ReviewSession {
	s := &ReviewSession{
		Token:        uuid.NewString(),
		FileID:       upload.FileID,
		Filename:     upload.Filename,
		FileType:     upload.Type,
		batchPresent: upload.Review != nil,
	}

	s.items = make([]models.DetectedEntity, len(upload.Review))
	for i, item := range upload.Review {
		item.ID = i
		item.Confidence = item.Confidence * 100
		if item.Confidence < IgnoreThreshold {
			item.Ignore = true
		}
		s.items[i] = item
	}

	return s
}

// Items returns a copy of the session's candidates in batch order.
func (s *ReviewSession) Items() []models.DetectedEntity {
	items := make([]models.DetectedEntity, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of candidates under review.
func (s *ReviewSession) Len() int {
	return len(s.items)
}

// ToggleIgnore flips exactly one candidate's ignore flag, leaving every
// other candidate untouched. Toggling twice restores the original value.
// An unknown id is a no-op.
func (s *ReviewSession) ToggleIgnore(id int) {
	if id < 0 || id >= len(s.items) {
		return
	}
	s.items[id].Ignore = !s.items[id].Ignore
}

// State reports which of the four display states the session is in.
func (s *ReviewSession) State() DisplayState {
	if !s.batchPresent {
		return NoData
	}
	if len(s.items) == 0 {
		return NoPII
	}
	for _, item := range s.items {
		if !item.Ignore {
			return HasFindings
		}
	}
	return AllIgnored
}

// Cleaned serializes the current decisions for submission: confidence is
// rescaled to [0.0,1.0] and each item carries only the fields of its shape.
func (s *ReviewSession) Cleaned() []models.CleanedItem {
	cleaned := make([]models.CleanedItem, len(s.items))
	for i, item := range s.items {
		cleaned[i] = item.Cleaned()
	}
	return cleaned
}
