package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// UploadService submits a single file for PII detection on behalf of the
// selected partner and seeds the review session from the result.
type UploadService struct {
	adapter  adapter.PortalAdapter
	registry *RegistryService
	log      *logger.Logger
}

// NewUploadService wires the upload initiator to the transport and the
// registry it validates the selection against.
func NewUploadService(portalAdapter adapter.PortalAdapter, registry *RegistryService, log *logger.Logger) *UploadService {
	return &UploadService{adapter: portalAdapter, registry: registry, log: log}
}

// UploadForReview reads the file at path, classifies it by extension, and
// submits it for detection. It fails fast, before any request, when no
// partner is selected or no file was chosen. The extension classification
// is informational; the backend's type in the response is authoritative.
func (u *UploadService) UploadForReview(ctx context.Context, path string) (*ReviewSession, error) {
	partner, ok := u.registry.Selected()
	if !ok {
		return nil, ErrNoPartnerSelected
	}
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoFileChosen
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read upload file: %w", err)
	}

	filename := filepath.Base(path)
	fileType := models.ClassifyFile(filename)

	u.log.Info().
		Str("partner", partner.Name).
		Str("filename", filename).
		Str("type", string(fileType)).
		Msg("uploading file for detection")

	resp, err := u.adapter.Upload(ctx, partner.Name, filename, content)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", filename, err)
	}

	return NewReviewSession(resp), nil
}
