package keyring

//go:generate mockgen -source=interfaces.go -destination=../mock/custodian_mock.go -package=mock

// Custodian keeps the vault master key in the operating system's secret
// store (macOS Keychain, Secret Service on Linux, Windows Credential
// Manager). The key is filed under a fixed service name and the current OS
// user. Nothing is cached: every call goes to the store, so a key changed
// outside the process is picked up on the next call.
type Custodian interface {
	// SetMasterKey stores passphrase, replacing any existing entry.
	SetMasterKey(passphrase string) error

	// GetMasterKey returns the stored passphrase or [ErrMasterKeyNotFound].
	GetMasterKey() (string, error)

	// DeleteMasterKey removes the entry or returns [ErrMasterKeyNotFound].
	DeleteMasterKey() error
}

// Backend is the minimal view of an OS keyring used by the custodian.
// service is the keyring service name, user the account inside it.
type Backend interface {
	Get(service, user string) (string, error)
	Set(service, user, password string) error
	Delete(service, user string) error
}
