package store

import (
	"context"

	"github.com/MKhiriev/vikeypass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_storage_mock.go -package=mock

// VaultStorage loads and saves the encrypted vault file.
//
// The store holds no credentials between calls: Load returns a map the
// caller owns, and nothing is written unless Save is called. Calls are not
// safe for concurrent use against the same file.
type VaultStorage interface {
	// ResolvePath returns the vault file location. It is recomputed on every
	// call.
	ResolvePath() (string, error)

	// Exists reports whether the vault file is present.
	Exists(ctx context.Context) (bool, error)

	// Load reads and decrypts the vault file with the current master key.
	Load(ctx context.Context) (models.CredentialMap, error)

	// Save encrypts creds with the current master key and atomically
	// replaces the vault file.
	Save(ctx context.Context, creds models.CredentialMap) error

	// LoadLegacy reads a vault file at path written by the first vikeypass
	// release, decrypting it with the current master key.
	LoadLegacy(ctx context.Context, path string) (models.CredentialMap, error)
}
