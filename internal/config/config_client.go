package config

import (
	"fmt"
	"time"
)

// ClientPortal holds network settings used by the client transport layer.
type ClientPortal struct {
	// BaseURL is the portal backend endpoint used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Portal contains client transport address and timeout.
	Portal ClientPortal
	// DownloadDir is where partner archives are saved.
	DownloadDir string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Missing values fall back to local-portal
// defaults so the client runs with no configuration at all.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Portal: ClientPortal{
			BaseURL:        cfg.Portal.BaseURL,
			RequestTimeout: cfg.Portal.RequestTimeout,
		},
		DownloadDir: cfg.Portal.DownloadDir,
	}

	if clientCfg.Portal.BaseURL == "" {
		clientCfg.Portal.BaseURL = "http://localhost:5000"
	}
	if clientCfg.Portal.RequestTimeout == 0 {
		clientCfg.Portal.RequestTimeout = 30 * time.Second
	}
	if clientCfg.DownloadDir == "" {
		clientCfg.DownloadDir = "."
	}

	return clientCfg, clientCfg.validate()
}
