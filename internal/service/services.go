package service

import (
	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
)

// ClientServices bundles the controllers behind the workflow orchestrator.
type ClientServices struct {
	Registry  *RegistryService
	Partners  *PartnerService
	Upload    *UploadService
	Anonymize *AnonymizeService
	Toggle    *ToggleService
	Audit     *AuditService
}

// NewClientServices assembles the client service graph on top of one
// portal adapter.
func NewClientServices(portalAdapter adapter.PortalAdapter, log *logger.Logger) *ClientServices {
	registry := NewRegistryService(portalAdapter, log)

	return &ClientServices{
		Registry:  registry,
		Partners:  NewPartnerService(portalAdapter, registry, log),
		Upload:    NewUploadService(portalAdapter, registry, log),
		Anonymize: NewAnonymizeService(portalAdapter, registry, log),
		Toggle:    NewToggleService(portalAdapter, registry, log),
		Audit:     NewAuditService(portalAdapter, log),
	}
}
