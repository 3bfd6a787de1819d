package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; per-role validation happens on the derived
// [ClientConfig] and [ServerConfig] views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Portal.BaseURL == "" || cfg.Portal.RequestTimeout == 0 {
		return ErrInvalidPortalConfigs
	}

	if !strings.HasPrefix(cfg.Portal.BaseURL, "http://") && !strings.HasPrefix(cfg.Portal.BaseURL, "https://") {
		return ErrInvalidPortalConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" || strings.Contains(cfg.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
