package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidClipboardConfigs indicates a non-positive exposure window.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidServerConfigs indicates a malformed or non-loopback query
	// endpoint address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidKeyringConfigs indicates an unusable keyring service name.
	ErrInvalidKeyringConfigs = errors.New("invalid keyring configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
