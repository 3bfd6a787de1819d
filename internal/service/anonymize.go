package service

import (
	"context"
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// AnonymizeService submits the finalized review decisions to materialize
// the anonymized artifact, then refreshes the registry so derived fields
// (state, download link) come back from the authority.
type AnonymizeService struct {
	adapter  adapter.PortalAdapter
	registry *RegistryService
	log      *logger.Logger
}

// NewAnonymizeService wires the submitter to the transport and registry.
func NewAnonymizeService(portalAdapter adapter.PortalAdapter, registry *RegistryService, log *logger.Logger) *AnonymizeService {
	return &AnonymizeService{adapter: portalAdapter, registry: registry, log: log}
}

// Proceed sends the session's decisions and refreshes the registry. On
// failure the session is left intact so the reviewer can retry without
// re-uploading; the caller decides when to discard it.
func (a *AnonymizeService) Proceed(ctx context.Context, session *ReviewSession) (models.ProceedResponse, error) {
	if session == nil {
		return models.ProceedResponse{}, ErrSessionClosed
	}

	req := models.ProceedRequest{
		FileID: session.FileID,
		Review: session.Cleaned(),
	}

	resp, err := a.adapter.Proceed(ctx, req)
	if err != nil {
		return models.ProceedResponse{}, fmt.Errorf("proceed anonymization for %q: %w", session.Filename, err)
	}

	a.log.Info().
		Str("file_id", session.FileID).
		Str("filename", resp.Filename).
		Msg("file anonymized")

	if _, err = a.registry.Refresh(ctx); err != nil {
		return resp, err
	}
	return resp, nil
}
