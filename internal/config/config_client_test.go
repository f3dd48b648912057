package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Vault.FilePath)
	assert.Equal(t, DefaultKeyringService, cfg.Keyring.Service)
	assert.Empty(t, cfg.Keyring.User)
	assert.Equal(t, DefaultClipboardWindow, cfg.Clipboard.Window)
	assert.Equal(t, DefaultServerAddress, cfg.Server.Address)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestGetClientConfig_Precedence(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Keyring.Service = "from-json"
	payload.Keyring.User = "json-user"
	payload.Clipboard.Window = Duration(20 * time.Second)
	payload.Log.Level = "warn"
	jsonPath := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"VIKEYPASS_CONFIG":          jsonPath,
		"VIKEYPASS_KEYRING_SERVICE": "from-env",
		"VIKEYPASS_LOG_LEVEL":       "debug",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	overrides := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--keyring-user", "flag-user"}))

	cfg, err := GetClientConfig(overrides)
	require.NoError(t, err)

	// env beats json, flags beat json
	assert.Equal(t, "from-env", cfg.Keyring.Service)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "flag-user", cfg.Keyring.User)
	// json-only value survives
	assert.Equal(t, 20*time.Second, cfg.Clipboard.Window)
}

func TestGetClientConfig_InvalidSources(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("VIKEYPASS_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	cfg, err := GetClientConfig(nil)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Keyring:   ClientKeyring{Service: "vikeypass"},
			Clipboard: ClientClipboard{Window: time.Second},
			Server:    ClientServer{Address: "127.0.0.1:7878"},
			Log:       ClientLog{Level: "info"},
		}
	}

	require.NoError(t, valid().validate())

	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{"negative window", func(c *ClientConfig) { c.Clipboard.Window = -time.Second }, ErrInvalidClipboardConfigs},
		{"empty service", func(c *ClientConfig) { c.Keyring.Service = "" }, ErrInvalidKeyringConfigs},
		{"public address", func(c *ClientConfig) { c.Server.Address = "0.0.0.0:7878" }, ErrInvalidServerConfigs},
		{"lan address", func(c *ClientConfig) { c.Server.Address = "192.168.1.10:7878" }, ErrInvalidServerConfigs},
		{"no port", func(c *ClientConfig) { c.Server.Address = "127.0.0.1" }, ErrInvalidServerConfigs},
		{"hostname", func(c *ClientConfig) { c.Server.Address = "example.com:80" }, ErrInvalidServerConfigs},
		{"unknown level", func(c *ClientConfig) { c.Log.Level = "loud" }, ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestValidateLoopback_Accepts(t *testing.T) {
	for _, addr := range []string{"127.0.0.1:1", "localhost:8080", "[::1]:7878", "127.1.2.3:9000"} {
		assert.NoError(t, validateLoopback(addr), addr)
	}
}

func TestDefaultLogPath(t *testing.T) {
	dir, err := os.UserCacheDir()
	if err != nil {
		assert.Empty(t, defaultLogPath())
		return
	}
	assert.Equal(t, filepath.Join(dir, "vikeypass", "vikeypass.log"), defaultLogPath())
}
