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

// PartnerService drives partner lifecycle mutations. Every mutation is
// followed by exactly one registry refresh before the UI is considered
// consistent.
type PartnerService struct {
	adapter  adapter.PortalAdapter
	registry *RegistryService
	log      *logger.Logger
}

// NewPartnerService wires partner management to the transport and registry.
func NewPartnerService(portalAdapter adapter.PortalAdapter, registry *RegistryService, log *logger.Logger) *PartnerService {
	return &PartnerService{adapter: portalAdapter, registry: registry, log: log}
}

// Create registers a new partner, refreshes the registry, and selects the
// created partner.
func (p *PartnerService) Create(ctx context.Context, req models.CreatePartnerRequest) (models.Partner, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Partner{}, fmt.Errorf("%w: partner name is required", adapter.ErrBadRequest)
	}

	created, err := p.adapter.CreatePartner(ctx, req)
	if err != nil {
		return models.Partner{}, fmt.Errorf("create partner %q: %w", req.Name, err)
	}

	p.registry.Select(created.ID)
	if _, err = p.registry.Refresh(ctx); err != nil {
		return created, err
	}

	p.log.Info().Str("partner_id", created.ID).Str("name", created.Name).Msg("partner created")
	return created, nil
}

// Update applies a partial partner update followed by a refresh.
func (p *PartnerService) Update(ctx context.Context, partnerID string, req models.UpdatePartnerRequest) (models.Partner, error) {
	updated, err := p.adapter.UpdatePartner(ctx, partnerID, req)
	if err != nil {
		return models.Partner{}, fmt.Errorf("update partner: %w", err)
	}

	if _, err = p.registry.Refresh(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete removes a partner followed by a refresh; the refresh reselects
// the first remaining partner if the deleted one was selected.
func (p *PartnerService) Delete(ctx context.Context, partnerID string) error {
	if err := p.adapter.DeletePartner(ctx, partnerID); err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}

	p.log.Info().Str("partner_id", partnerID).Msg("partner deleted")

	_, err := p.registry.Refresh(ctx)
	return err
}

// DownloadAll fetches the archive of the selected partner's anonymized
// artifacts and writes it to destDir as "<partner>.zip". Returns the
// written path.
func (p *PartnerService) DownloadAll(ctx context.Context, destDir string) (string, error) {
	partner, ok := p.registry.Selected()
	if !ok {
		return "", ErrNoPartnerSelected
	}

	archive, err := p.adapter.DownloadAll(ctx, partner.Name)
	if err != nil {
		return "", fmt.Errorf("download archive for %q: %w", partner.Name, err)
	}

	path := filepath.Join(destDir, partner.Name+".zip")
	if err = os.WriteFile(path, archive, 0o644); err != nil {
		return "", fmt.Errorf("write archive: %w", err)
	}

	p.log.Info().Str("path", path).Int("bytes", len(archive)).Msg("partner archive downloaded")
	return path, nil
}
