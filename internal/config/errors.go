package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidPortalConfigs indicates invalid client portal settings
	// (for example, a missing or non-HTTP base URL).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidServerConfigs indicates invalid portal server settings
	// (for example, missing listen address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
