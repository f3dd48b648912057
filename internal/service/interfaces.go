package service

import (
	"context"

	"github.com/MKhiriev/vikeypass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the set of vault use cases the TUI, the CLI and the query
// endpoint call. The credential map passed to the mutating methods is owned
// by the caller and updated in place; every mutation is written to disk
// before the method returns nil, and on a failed save the map is restored to
// its previous state.
type VaultService interface {
	// Init creates an empty vault file. It fails with [ErrVaultExists] if the
	// file is already there and force is false.
	Init(ctx context.Context, force bool) error

	// Load decrypts the vault file into a new map.
	Load(ctx context.Context) (models.CredentialMap, error)

	// Add inserts or overwrites the account name. A nil creds yields
	// [ErrNilCredentials].
	Add(ctx context.Context, creds models.CredentialMap, name, secret string) error

	// Edit overwrites the secret of an existing account. An unknown account
	// yields [ErrAccountNotFound] and nothing is saved.
	Edit(ctx context.Context, creds models.CredentialMap, name, secret string) error

	// Delete removes an existing account. An unknown account yields
	// [ErrAccountNotFound] and nothing is saved.
	Delete(ctx context.Context, creds models.CredentialMap, name string) error

	// Copy exposes the secret of name on the clipboard for the configured
	// window.
	Copy(ctx context.Context, creds models.CredentialMap, name string) error

	// SetMasterKey stores passphrase in the OS credential store.
	SetMasterKey(ctx context.Context, passphrase string) error

	// DeleteMasterKey removes the stored master key.
	DeleteMasterKey(ctx context.Context) error

	// MasterKeyStatus reports whether a master key is stored.
	MasterKeyStatus(ctx context.Context) (bool, error)

	// Import merges the accounts of a legacy vault file at path into creds
	// and saves. It returns the number of accounts written. A nil creds
	// yields [ErrNilCredentials].
	Import(ctx context.Context, creds models.CredentialMap, path string) (int, error)

	// VaultExists reports whether a vault file is present at the resolved
	// location.
	VaultExists(ctx context.Context) (bool, error)

	// VaultPath returns the resolved vault file location.
	VaultPath() (string, error)
}
