package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/wanpc3/Data-Privacy-Protector/internal/adapter"
	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
)

// ToggleService flips a file between Anonymized and Deanonymized. The
// target state is computed as the complement of the state in the current
// registry snapshot, and the mutation is always followed by a full
// refresh. Toggles are serialized per file: a second toggle while one is
// in flight is rejected with ErrToggleInFlight instead of racing the
// first.
type ToggleService struct {
	adapter  adapter.PortalAdapter
	registry *RegistryService
	log      *logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewToggleService wires the toggle controller to the transport and the
// registry the current state is read from.
func NewToggleService(portalAdapter adapter.PortalAdapter, registry *RegistryService, log *logger.Logger) *ToggleService {
	return &ToggleService{
		adapter:  portalAdapter,
		registry: registry,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

// Toggle computes the complement of the file's cached state, issues the
// mutation, and refreshes the registry. A file missing from the snapshot
// is a stale UI reference: the call is a silent no-op with no request.
func (t *ToggleService) Toggle(ctx context.Context, partnerID, fileID string) error {
	file, ok := t.registry.FindFile(partnerID, fileID)
	if !ok {
		t.log.Debug().
			Str("partner_id", partnerID).
			Str("file_id", fileID).
			Msg("toggle skipped: file not in current snapshot")
		return nil
	}

	if !t.acquire(fileID) {
		return ErrToggleInFlight
	}
	defer t.release(fileID)

	target := file.State.Toggled()
	if err := t.adapter.SetFileState(ctx, fileID, target); err != nil {
		return fmt.Errorf("toggle file %q to %s: %w", file.Filename, target, err)
	}

	t.log.Info().
		Str("file_id", fileID).
		Str("state", string(target)).
		Msg("file state toggled")

	_, err := t.registry.Refresh(ctx)
	return err
}


func (t *ToggleService) acquire(fileID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.inFlight[fileID]; busy {
		return false
	}
	t.inFlight[fileID] = struct{}{}
	return true
}

func (t *ToggleService) release(fileID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, fileID)
}
