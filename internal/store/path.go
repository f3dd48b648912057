package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultFileName is the vault file name used under the home directory.
const DefaultFileName = ".vikeypass.data"

// vaultFileEnv is the environment override for the vault location.
type vaultFileEnv struct {
	File string `env:"VIKEYPASS_FILE"`
}

// ResolveVaultPath returns explicit when non-empty, else the value of
// VIKEYPASS_FILE, else <home>/.vikeypass.data. The environment is read on
// every call.
func ResolveVaultPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	override, err := env.ParseAs[vaultFileEnv]()
	if err != nil {
		return "", fmt.Errorf("read VIKEYPASS_FILE: %w", err)
	}
	if override.File != "" {
		return override.File, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}
