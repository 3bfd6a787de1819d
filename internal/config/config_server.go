package config

import (
	"fmt"
	"time"
)

// ServerConfig is the portal backend configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address of the portal HTTP server.
	HTTPAddress string
	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration
	// DSN is the SQLite data source name.
	DSN string
	// DataDir is where anonymized artifacts and partner logos live.
	DataDir string
	// Version is the reported application version.
	Version string
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration. Missing values fall back to local
// development defaults.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		DataDir:        cfg.Storage.Files.DataDir,
		Version:        cfg.App.Version,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = "localhost:5000"
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = 60 * time.Second
	}
	if serverCfg.DSN == "" {
		serverCfg.DSN = "portal.db"
	}
	if serverCfg.DataDir == "" {
		serverCfg.DataDir = "data"
	}

	return serverCfg, serverCfg.validate()
}
