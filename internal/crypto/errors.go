package crypto

import "errors"

var (
	// ErrDecryption is returned when vault text cannot be decrypted. Wrong
	// master key and corrupted ciphertext are deliberately not told apart.
	ErrDecryption = errors.New("vault decryption failed")

	// ErrCorruptDatabase is returned when the vault decrypts correctly but
	// its content is not a JSON object mapping account names to secrets.
	ErrCorruptDatabase = errors.New("vault content is corrupt")

	// ErrEmptyMasterKey is returned when an empty master key is supplied.
	ErrEmptyMasterKey = errors.New("master key is empty")
)
