package keyring

import (
	"errors"
	"fmt"
)

// ErrCredentialStore is the class of every error returned by the custodian.
// Use [errors.Is] with the more specific values below to tell them apart.
var ErrCredentialStore = errors.New("credential store error")

var (
	// ErrMasterKeyNotFound is returned when no master key has been set for
	// the current identity.
	ErrMasterKeyNotFound = fmt.Errorf("%w: master key not found", ErrCredentialStore)

	// ErrCredentialStoreAccess is returned when the store exists but refuses
	// the operation (locked keychain, denied permission, D-Bus failure).
	ErrCredentialStoreAccess = fmt.Errorf("%w: access denied", ErrCredentialStore)

	// ErrPlatformUnsupported is returned when no credential store is
	// available on this platform.
	ErrPlatformUnsupported = fmt.Errorf("%w: platform not supported", ErrCredentialStore)

	// ErrIdentityUnresolved is returned when the current OS user cannot be
	// determined.
	ErrIdentityUnresolved = fmt.Errorf("%w: cannot resolve user identity", ErrCredentialStoreAccess)

	// ErrEmptyPassphrase is returned by SetMasterKey for an empty value.
	ErrEmptyPassphrase = fmt.Errorf("%w: empty master key", ErrCredentialStore)
)
