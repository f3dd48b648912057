// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container. It is populated by
// merging environment variables, an optional JSON file and command-line
// flags; zero values mean "not set by this source".
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env); the
//     whole tree is additionally prefixed with VIKEYPASS_.
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the vault file settings.
	Vault Vault

	// Keyring holds the credential store entry settings.
	Keyring Keyring `envPrefix:"KEYRING_"`

	// Clipboard holds the secret exposure settings.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Server holds the loopback query endpoint settings.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: VIKEYPASS_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds settings for the encrypted vault file.
type Vault struct {
	// FilePath pins the vault file location. It is intentionally not read
	// from the environment; VIKEYPASS_FILE is resolved by the store on every
	// call so it can change between operations.
	FilePath string
}

// Keyring holds the OS credential store entry coordinates.
type Keyring struct {
	// Service is the keyring service name.
	// Env: VIKEYPASS_KEYRING_SERVICE
	Service string `env:"SERVICE"`

	// User overrides the account the master key is filed under. Empty means
	// the current OS user.
	// Env: VIKEYPASS_KEYRING_USER
	User string `env:"USER"`
}

// Clipboard holds the exposure window for copied secrets.
type Clipboard struct {
	// Window is how long a copied secret may stay in the clipboard
	// (e.g. "10s").
	// Env: VIKEYPASS_CLIPBOARD_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Server holds the query endpoint settings.
type Server struct {
	// Address is the loopback host:port the endpoint listens on.
	// Env: VIKEYPASS_SERVER_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds logging settings.
type Log struct {
	// Path is the log file used by interactive commands.
	// Env: VIKEYPASS_LOG_FILE
	Path string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: VIKEYPASS_LOG_LEVEL
	Level string `env:"LEVEL"`
}
