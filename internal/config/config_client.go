// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Defaults applied by [GetClientConfig] to settings no source provided.
const (
	DefaultKeyringService  = "vikeypass"
	DefaultClipboardWindow = 10 * time.Second
	DefaultServerAddress   = "127.0.0.1:7878"
	DefaultLogLevel        = "info"
)

// ClientVault holds the vault file settings.
type ClientVault struct {
	// FilePath is an explicit vault location; empty means "resolve from
	// VIKEYPASS_FILE or the home directory on each access".
	FilePath string
}

// ClientKeyring holds the credential store entry coordinates.
type ClientKeyring struct {
	Service string
	User    string
}

// ClientClipboard holds the exposure window.
type ClientClipboard struct {
	Window time.Duration
}

// ClientServer holds the loopback query endpoint address.
type ClientServer struct {
	Address string
}

// ClientLog holds logging settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the validated configuration handed to constructors.
type ClientConfig struct {
	Vault     ClientVault
	Keyring   ClientKeyring
	Clipboard ClientClipboard
	Server    ClientServer
	Log       ClientLog
}

// GetClientConfig builds and validates the configuration.
//
// It merges environment variables, the optional JSON file and overrides
// (usually from [BindFlags]; may be nil), fills defaults for anything left
// unset, and validates the resulting [ClientConfig].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Vault: ClientVault{
			FilePath: cfg.Vault.FilePath,
		},
		Keyring: ClientKeyring{
			Service: cfg.Keyring.Service,
			User:    cfg.Keyring.User,
		},
		Clipboard: ClientClipboard{Window: cfg.Clipboard.Window},
		Server:    ClientServer{Address: cfg.Server.Address},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Keyring.Service == "" {
		cfg.Keyring.Service = DefaultKeyringService
	}
	if cfg.Clipboard.Window == 0 {
		cfg.Clipboard.Window = DefaultClipboardWindow
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultServerAddress
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Path == "" {
		cfg.Log.Path = defaultLogPath()
	}
}

// defaultLogPath is <user cache dir>/vikeypass/vikeypass.log, or empty
// (log to stderr) when the cache directory is unknown.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vikeypass", "vikeypass.log")
}

func (cfg *ClientConfig) validate() error {
	if cfg.Clipboard.Window < 0 {
		return fmt.Errorf("%w: window must be positive, got %s", ErrInvalidClipboardConfigs, cfg.Clipboard.Window)
	}

	if cfg.Keyring.Service == "" {
		return ErrInvalidKeyringConfigs
	}

	if err := validateLoopback(cfg.Server.Address); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// validateLoopback accepts host:port where host is "localhost" or a loopback
// IP.
func validateLoopback(address string) error {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	if port == "" {
		return fmt.Errorf("missing port in %q", address)
	}
	if host == "localhost" {
		return nil
	}
	ip := net.ParseIP(host)
	if ip == nil || !ip.IsLoopback() {
		return fmt.Errorf("address %q is not a loopback address", address)
	}
	return nil
}
