package store

import (
	"errors"
	"fmt"
)

// ErrIO is the class of every filesystem error returned by the store.
var ErrIO = errors.New("vault file i/o error")

var (
	// ErrVaultFileNotFound is returned by Load when no vault file exists at
	// the resolved path.
	ErrVaultFileNotFound = fmt.Errorf("%w: vault file not found", ErrIO)

	// ErrPermissionDenied is returned when the OS refuses to read or write
	// the vault file.
	ErrPermissionDenied = fmt.Errorf("%w: permission denied", ErrIO)

	// ErrWriteFailed is returned when Save could not replace the vault file.
	// The previous file, if any, is left untouched.
	ErrWriteFailed = fmt.Errorf("%w: write failed", ErrIO)

	// ErrReadFailed is returned for read failures other than not-found and
	// permission errors.
	ErrReadFailed = fmt.Errorf("%w: read failed", ErrIO)
)
