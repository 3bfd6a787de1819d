package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"app": {
			"version": "1.2.3"
		},
		"storage": {
			"db": { "dsn": "portal.db" },
			"files": { "data_dir": "/var/data" }
		},
		"server": {
			"http_address": "localhost:5000",
			"request_timeout": "30s"
		},
		"portal": {
			"base_url": "http://localhost:5000",
			"request_timeout": "1m",
			"download_dir": "/home/user/Downloads"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "portal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/data", cfg.Storage.Files.DataDir)

	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://localhost:5000", cfg.Portal.BaseURL)
	assert.Equal(t, time.Minute, cfg.Portal.RequestTimeout)
	assert.Equal(t, "/home/user/Downloads", cfg.Portal.DownloadDir)

	// The path itself never survives into the parsed config; otherwise a
	// merged config would keep re-reading the file.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{
			name:     "duration string",
			input:    `"30s"`,
			expected: 30 * time.Second,
		},
		{
			name:     "compound duration string",
			input:    `"1h30m"`,
			expected: 90 * time.Minute,
		},
		{
			name:     "raw nanoseconds",
			input:    `1000000000`,
			expected: time.Second,
		},
		{
			name:    "unparsable string",
			input:   `"soon"`,
			wantErr: true,
		},
		{
			name:    "unsupported type",
			input:   `["30s"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
