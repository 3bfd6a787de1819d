package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// portal server and the terminal client. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds persistence settings for the portal backend: the
	// SQLite database and the artifact directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the portal
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Portal holds the outbound settings the terminal client uses to
	// reach the portal backend.
	Portal Portal `envPrefix:"PORTAL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of the portal backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the on-disk artifact storage settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the SQLite database backend.
type DB struct {
	// DSN is the SQLite data source name, typically a file path
	// (e.g. "portal.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for uploaded originals, anonymized
// artifacts, and partner logos.
type Files struct {
	// DataDir is the directory anonymized artifacts and logos are stored
	// in and served from.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Server holds network and timeout settings for the portal HTTP server.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Portal holds the client's outbound connection settings.
type Portal struct {
	// BaseURL is the portal backend's base URL
	// (e.g. "http://localhost:5000").
	// Env: PORTAL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DownloadDir is where the client saves partner archives. Empty means
	// the current working directory.
	// Env: PORTAL_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
