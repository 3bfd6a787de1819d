package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// AuditService fetches the immutable detection record for a settled file.
// Nothing is cached: each open of the viewer fetches anew and the record
// is discarded when the modal closes.
type AuditService struct {
	adapter adapter.PortalAdapter
	log     *logger.Logger
}

// NewAuditService wires the viewer to the transport.
func NewAuditService(portalAdapter adapter.PortalAdapter, log *logger.Logger) *AuditService {
	return &AuditService{adapter: portalAdapter, log: log}
}

// Fetch retrieves the audit log for the given file. A missing id fails
// locally with ErrMissingFileID before any request; a backend miss comes
// back as a wrapped adapter.ErrNotFound, which is file-scoped and
// non-fatal to the rest of the UI.
func (a *AuditService) Fetch(ctx context.Context, fileID string) (models.AuditLogEntry, error) {
	if strings.TrimSpace(fileID) == "" {
		return models.AuditLogEntry{}, ErrMissingFileID
	}

	entry, err := a.adapter.AuditLog(ctx, fileID)
	if err != nil {
		return models.AuditLogEntry{}, fmt.Errorf("fetch audit log: %w", err)
	}
	return entry, nil
}
