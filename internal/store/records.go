package store

import (
	"time"

	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// PartnerRecord is the persisted shape of a partner, including the secrets
// that never leave the server.
type PartnerRecord struct {
	ID                string
	Name              string
	Logo              string
	EncryptionKey     string
	FilePassword      string
	DetectionSettings []string
	CreatedAt         time.Time
}

// PartnerUpdate carries the partial-update fields for a partner. Nil fields
// are left untouched.
type PartnerUpdate struct {
	Name              *string
	Logo              *string
	EncryptionKey     *string
	FilePassword      *string
	DetectionSettings *[]string
}

// FileRecord is the persisted shape of an uploaded file. Review holds the
// pending detection batch between upload and proceed; it is nil once the
// file has been anonymized.
type FileRecord struct {
	ID           string
	PartnerID    string
	Filename     string
	Type         models.FileType
	State        models.FileState
	Review       []models.DetectedEntity
	OriginalPath string
	ArtifactPath string
	CreatedAt    time.Time
}

// AuditRecord is one anonymization action: an occurrence count for text
// findings, or a column name for tabular ones.
type AuditRecord struct {
	FileID string
	Detect string
	Total  int
	Column string
}
