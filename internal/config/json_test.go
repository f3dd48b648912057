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

	jsonBody := `{
		"vault": { "file": "/data/vault" },
		"keyring": { "service": "vikeypass-json", "user": "bob" },
		"clipboard": { "window": "20s" },
		"server": { "address": "localhost:8000" },
		"log": { "file": "/var/log/vikeypass.log", "level": "warn" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/data/vault", cfg.Vault.FilePath)
	assert.Equal(t, "vikeypass-json", cfg.Keyring.Service)
	assert.Equal(t, "bob", cfg.Keyring.User)
	assert.Equal(t, 20*time.Second, cfg.Clipboard.Window)
	assert.Equal(t, "localhost:8000", cfg.Server.Address)
	assert.Equal(t, "/var/log/vikeypass.log", cfg.Log.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Partial(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"clipboard":{"window":"3s"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Clipboard.Window)
	assert.Empty(t, cfg.Vault.FilePath)
	assert.Empty(t, cfg.Keyring.Service)
	assert.Empty(t, cfg.Server.Address)
}

func TestParseJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	badDuration := filepath.Join(dir, "bad-duration.json")
	require.NoError(t, os.WriteFile(badDuration, []byte(`{"clipboard":{"window":"soon"}}`), 0o600))

	notJSON := filepath.Join(dir, "not.json")
	require.NoError(t, os.WriteFile(notJSON, []byte(`window = 10s`), 0o600))

	for name, path := range map[string]string{
		"missing file": filepath.Join(dir, "missing.json"),
		"bad duration": badDuration,
		"not json":     notJSON,
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseJSON(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDuration_JSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := json.Marshal(Duration(10 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"10s"`, string(out))
}
