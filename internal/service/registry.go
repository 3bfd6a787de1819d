package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// Snapshot is one immutable view of the partner registry. Generation
// increments on every successful refresh so callers can detect whether a
// late-arriving result still describes the current registry.
type Snapshot struct {
	Partners   []models.Partner
	SelectedID string
	Generation uint64
}

// Selected returns the snapshot's selected partner.
func (s Snapshot) Selected() (models.Partner, bool) {
	return s.PartnerByID(s.SelectedID)
}

// PartnerByID returns the snapshot's partner with the given id.
func (s Snapshot) PartnerByID(partnerID string) (models.Partner, bool) {
	for _, p := range s.Partners {
		if p.ID == partnerID {
			return p, true
		}
	}
	return models.Partner{}, false
}

// RegistryService is the client's read-through cache of all partners and
// their files. Every refresh replaces the previous snapshot wholesale; the
// cache is never patched incrementally, because the backend is the sole
// authority on derived fields such as download links and post-anonymization
// state. A failed refresh keeps the last good snapshot.
type RegistryService struct {
	adapter adapter.PortalAdapter
	log     *logger.Logger

	mu         sync.RWMutex
	partners   []models.Partner
	selectedID string
	generation uint64
	loaded     bool
}

// NewRegistryService creates an empty, not-yet-loaded registry.
func NewRegistryService(portalAdapter adapter.PortalAdapter, log *logger.Logger) *RegistryService {
	return &RegistryService{adapter: portalAdapter, log: log}
}

// Refresh retrieves the full partner list and atomically replaces the
// snapshot. If the currently selected partner no longer exists, selection
// falls back to the first available partner, or to no selection when the
// registry is empty. On error the previous snapshot is left untouched.
func (r *RegistryService) Refresh(ctx context.Context) (Snapshot, error) {
	partners, err := r.adapter.ListPartners(ctx)
	if err != nil {
		return r.Snapshot(), fmt.Errorf("refresh registry: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.partners = partners
	r.generation++
	r.loaded = true

	if _, ok := partnerByID(partners, r.selectedID); !ok {
		if len(partners) > 0 {
			r.selectedID = partners[0].ID
		} else {
			r.selectedID = ""
		}
	}

	r.log.Debug().
		Uint64("generation", r.generation).
		Int("partners", len(partners)).
		Str("selected", r.selectedID).
		Msg("registry refreshed")

	return r.snapshotLocked(), nil
}

// Snapshot returns the current registry view.
func (r *RegistryService) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Loaded reports whether at least one refresh has succeeded.
func (r *RegistryService) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Select makes the given partner the current selection. Selecting an id
// absent from the snapshot is allowed; the next refresh normalizes it.
func (r *RegistryService) Select(partnerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selectedID = partnerID
}

// Selected returns the currently selected partner.
func (r *RegistryService) Selected() (models.Partner, bool) {
	return r.Snapshot().Selected()
}

// FindFile looks a file up in the current snapshot.
func (r *RegistryService) FindFile(partnerID, fileID string) (models.File, bool) {
	partner, ok := r.Snapshot().PartnerByID(partnerID)
	if !ok {
		return models.File{}, false
	}
	return partner.FileByID(fileID)
}

func (r *RegistryService) snapshotLocked() Snapshot {
	partners := make([]models.Partner, len(r.partners))
	copy(partners, r.partners)
	return Snapshot{
		Partners:   partners,
		SelectedID: r.selectedID,
		Generation: r.generation,
	}
}

func partnerByID(partners []models.Partner, id string) (models.Partner, bool) {
	for _, p := range partners {
		if p.ID == id {
			return p, true
		}
	}
	return models.Partner{}, false
}
