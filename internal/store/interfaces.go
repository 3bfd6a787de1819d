package store

import (
	"context"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PartnerRepository persists partner registrations and their detection
// settings.
type PartnerRepository interface {
	CreatePartner(ctx context.Context, partner PartnerRecord) (PartnerRecord, error)
	GetPartner(ctx context.Context, partnerID string) (PartnerRecord, error)
	GetPartnerByName(ctx context.Context, name string) (PartnerRecord, error)
	ListPartners(ctx context.Context) ([]PartnerRecord, error)
	UpdatePartner(ctx context.Context, partnerID string, update PartnerUpdate) (PartnerRecord, error)
	DeletePartner(ctx context.Context, partnerID string) error
}

// FileRepository persists uploaded files, their pending detection batches,
// and their lifecycle state.
type FileRepository interface {
	CreateFile(ctx context.Context, file FileRecord) error
	GetFile(ctx context.Context, fileID string) (FileRecord, error)
	ListFilesByPartner(ctx context.Context, partnerID string) ([]FileRecord, error)
	// MarkAnonymized records the artifact path, moves the file to the
	// Anonymized state, and clears the pending review batch.
	MarkAnonymized(ctx context.Context, fileID, artifactPath string) error
	UpdateState(ctx context.Context, fileID string, state models.FileState) error
}

// AuditRepository persists the per-file anonymization action log.
type AuditRepository interface {
	AppendEntries(ctx context.Context, entries []AuditRecord) error
	ListByFile(ctx context.Context, fileID string) ([]AuditRecord, error)
}

// Repositories bundles the portal's persistence layer.
type Repositories struct {
	Partners PartnerRepository
	Files    FileRepository
	Audit    AuditRepository
}

// NewRepositories constructs all repositories on one database connection.
func NewRepositories(db *DB, log *logger.Logger) Repositories {
	return Repositories{
		Partners: NewPartnerRepository(db, log),
		Files:    NewFileRepository(db, log),
		Audit:    NewAuditRepository(db, log),
	}
}
