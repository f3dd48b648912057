// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing status texts shared by the terminal
// UI, the CLI and the query endpoint.
//
// All Msg* constants are human-readable strings shown in the TUI footer,
// printed by the CLI, or written into HTTP response bodies. Keeping them in
// one place keeps the wording consistent across the three surfaces.
package app

import (
	"errors"

	"github.com/MKhiriev/vikeypass/internal/clipboard"
	"github.com/MKhiriev/vikeypass/internal/command"
	"github.com/MKhiriev/vikeypass/internal/crypto"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/service"
	"github.com/MKhiriev/vikeypass/internal/store"
)

const (
	// MsgMasterKeyNotFound is shown when no master key is stored for the
	// current user. The fix is `vikeypass master-key set`.
	MsgMasterKeyNotFound = "master key not set, run `vikeypass master-key set`"

	// MsgCredentialStoreUnavailable is shown when the OS keyring refuses
	// access or is locked.
	MsgCredentialStoreUnavailable = "cannot access the system credential store"

	// MsgPlatformUnsupported is shown when the OS has no credential store.
	MsgPlatformUnsupported = "no system credential store on this platform"

	// MsgDecryptionFailed is shown when the vault cannot be decrypted with
	// the stored master key. Wrong key and damaged file look the same.
	MsgDecryptionFailed = "cannot decrypt vault: wrong master key or damaged file"

	// MsgCorruptDatabase is shown when the vault decrypts but does not hold
	// a map of account names to secrets.
	MsgCorruptDatabase = "vault content is corrupt"

	// MsgVaultFileNotFound is shown when there is no vault file at the
	// resolved path. The fix is `vikeypass init`.
	MsgVaultFileNotFound = "vault file not found, run `vikeypass init`"

	// MsgVaultExists is shown by init when a vault is already present.
	MsgVaultExists = "vault file already exists"

	// MsgPermissionDenied is shown when the OS refuses to read or write the
	// vault file.
	MsgPermissionDenied = "permission denied on vault file"

	// MsgSaveFailed is shown when writing the vault failed. The previous
	// file is untouched.
	MsgSaveFailed = "could not save vault, previous version kept"

	// MsgVaultIO is shown for other read failures on the vault file.
	MsgVaultIO = "cannot read vault file"

	// MsgEmptyPassphrase is shown when an empty master key is entered.
	MsgEmptyPassphrase = "master key must not be empty"

	// MsgClipboardUnavailable is shown when the clipboard cannot be written.
	MsgClipboardUnavailable = "clipboard unavailable"

	// MsgAccountNotFound is shown for edit, delete or copy of an unknown
	// account.
	MsgAccountNotFound = "account not found"

	// MsgInvalidAccount is shown for an empty account name or secret.
	MsgInvalidAccount = "account name and secret must not be empty"

	// MsgInvalidCommand is shown when the command line cannot be parsed.
	MsgInvalidCommand = "usage: " + command.Usage

	// MsgInternalError is shown for anything not listed above.
	MsgInternalError = "unexpected error, see log file"

	// MsgUnauthorized is written by the query endpoint for a missing or
	// wrong bearer token.
	MsgUnauthorized = "unauthorized"
)

const (
	MsgCopied           = "copied to clipboard"
	MsgAdded            = "account saved"
	MsgEdited           = "account updated"
	MsgDeleted          = "account deleted"
	MsgInitialized      = "vault created"
	MsgMasterKeySet     = "master key stored"
	MsgMasterKeyDeleted = "master key removed"
)

// errorMessages is checked in order; variants come before their class.
var errorMessages = []struct {
	err error
	msg string
}{
	{keyring.ErrMasterKeyNotFound, MsgMasterKeyNotFound},
	{keyring.ErrPlatformUnsupported, MsgPlatformUnsupported},
	{keyring.ErrEmptyPassphrase, MsgEmptyPassphrase},
	{keyring.ErrCredentialStore, MsgCredentialStoreUnavailable},

	{crypto.ErrDecryption, MsgDecryptionFailed},
	{crypto.ErrCorruptDatabase, MsgCorruptDatabase},

	{store.ErrVaultFileNotFound, MsgVaultFileNotFound},
	{store.ErrPermissionDenied, MsgPermissionDenied},
	{store.ErrWriteFailed, MsgSaveFailed},
	{store.ErrIO, MsgVaultIO},

	{clipboard.ErrClipboardUnavailable, MsgClipboardUnavailable},

	{service.ErrAccountNotFound, MsgAccountNotFound},
	{service.ErrEmptyAccountName, MsgInvalidAccount},
	{service.ErrEmptySecret, MsgInvalidAccount},
	{service.ErrVaultExists, MsgVaultExists},

	{command.ErrEmptyCommand, MsgInvalidCommand},
	{command.ErrUnknownAction, MsgInvalidCommand},
	{command.ErrWrongParamCount, MsgInvalidCommand},
}

// MessageFor returns the status text for err, or "" for nil.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.msg
		}
	}
	return MsgInternalError
}
