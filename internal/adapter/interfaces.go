// Package adapter provides the transport layer between the client and the
// anonymization portal backend.
//
// The primary abstraction is [PortalAdapter], which decouples the service
// layer from the REST protocol. The HTTP implementation
// ([NewHTTPPortalAdapter]) owns serialisation, multipart assembly, and the
// mapping of non-2xx responses to the sentinel errors in errors.go, so
// callers can use [errors.Is] for transport-agnostic handling (e.g.
// [ErrNotFound] for a missing audit log).
package adapter

import (
	"context"

	"github.com/wanpc3/Data-Privacy-Protector/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_adapter_mock.go -package=mock

// PortalAdapter defines transport-agnostic communication with the portal
// backend. Every mutating call is expected to be followed by a
// ListPartners refresh at the service layer; the adapter itself holds no
// state beyond the underlying connection.
type PortalAdapter interface {
	// ListPartners retrieves all partners with their nested file lists.
	// This is the registry's single source of truth.
	ListPartners(ctx context.Context) ([]models.Partner, error)

	// CreatePartner submits a multipart partner-creation request. The
	// icon is attached only when req.IconPath is non-empty. Returns the
	// created partner as reported by the backend.
	CreatePartner(ctx context.Context, req models.CreatePartnerRequest) (models.Partner, error)

	// UpdatePartner submits a partial multipart update for the partner
	// with the given id. Nil fields are not sent.
	UpdatePartner(ctx context.Context, partnerID string, req models.UpdatePartnerRequest) (models.Partner, error)

	// DeletePartner removes the partner and all of its files.
	DeletePartner(ctx context.Context, partnerID string) error

	// Upload submits one file for PII detection on behalf of the named
	// partner and returns the stored file identity together with the
	// detection batch pending review.
	Upload(ctx context.Context, partnerName, filename string, content []byte) (models.UploadResponse, error)

	// Proceed submits the finalized review decisions and materializes
	// the anonymized artifact.
	Proceed(ctx context.Context, req models.ProceedRequest) (models.ProceedResponse, error)

	// SetFileState mutates a file's anonymization state.
	SetFileState(ctx context.Context, fileID string, state models.FileState) error

	// AuditLog fetches the immutable detection record for a file.
	// Returns a wrapped [ErrNotFound] when the backend has no record.
	AuditLog(ctx context.Context, fileID string) (models.AuditLogEntry, error)

	// DownloadAll fetches a zip archive of the partner's anonymized
	// artifacts.
	DownloadAll(ctx context.Context, partnerName string) ([]byte, error)
}
