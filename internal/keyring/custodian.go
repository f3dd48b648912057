// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyring holds the vault master key in the operating system's
// credential store.
package keyring

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/MKhiriev/vikeypass/internal/logger"
	gokeyring "github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name vikeypass files its key under.
const DefaultService = "vikeypass"

// Options configures a [Custodian].
type Options struct {
	// Service is the keyring service name. Defaults to [DefaultService].
	Service string
	// User overrides the account the key is stored under. When empty the
	// current OS user is used.
	User string
}

// custodian is the private implementation of [Custodian].
type custodian struct {
	backend Backend
	service string
	user    string

	// currentUser resolves the OS identity when no explicit user is set.
	currentUser func() (string, error)

	logger *logger.Logger
}

// NewCustodian returns a [Custodian] backed by the native OS keyring.
func NewCustodian(opts Options, log *logger.Logger) Custodian {
	return NewCustodianWithBackend(opts, osBackend{}, log)
}

// NewCustodianWithBackend returns a [Custodian] that talks to backend.
func NewCustodianWithBackend(opts Options, backend Backend, log *logger.Logger) Custodian {
	service := opts.Service
	if service == "" {
		service = DefaultService
	}
	return &custodian{
		backend:     backend,
		service:     service,
		user:        opts.User,
		currentUser: currentOSUser,
		logger:      log,
	}
}

// SetMasterKey implements [Custodian].
func (c *custodian) SetMasterKey(passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	identity, err := c.identity()
	if err != nil {
		return err
	}

	if err := c.backend.Set(c.service, identity, passphrase); err != nil {
		c.logger.Error().Err(err).Str("service", c.service).Str("user", identity).Msg("failed to store master key")
		return fmt.Errorf("store master key: %w", mapBackendError(err))
	}

	c.logger.Info().Str("service", c.service).Str("user", identity).Msg("master key stored")
	return nil
}

// GetMasterKey implements [Custodian].
func (c *custodian) GetMasterKey() (string, error) {
	identity, err := c.identity()
	if err != nil {
		return "", err
	}

	passphrase, err := c.backend.Get(c.service, identity)
	if err != nil {
		return "", fmt.Errorf("read master key for %q: %w", identity, mapBackendError(err))
	}
	if passphrase == "" {
		return "", fmt.Errorf("read master key for %q: %w", identity, ErrMasterKeyNotFound)
	}

	c.logger.Debug().Str("service", c.service).Str("user", identity).Msg("master key read")
	return passphrase, nil
}

// DeleteMasterKey implements [Custodian].
func (c *custodian) DeleteMasterKey() error {
	identity, err := c.identity()
	if err != nil {
		return err
	}

	if err := c.backend.Delete(c.service, identity); err != nil {
		return fmt.Errorf("delete master key for %q: %w", identity, mapBackendError(err))
	}

	c.logger.Info().Str("service", c.service).Str("user", identity).Msg("master key deleted")
	return nil
}

// identity returns the account name the key is filed under. It is resolved
// on every call.
func (c *custodian) identity() (string, error) {
	if c.user != "" {
		return c.user, nil
	}

	name, err := c.currentUser()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIdentityUnresolved, err)
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrIdentityUnresolved
	}
	return name, nil
}

// currentOSUser prefers $USER, which is what earlier releases keyed the
// entry by, and falls back to the account database.
func currentOSUser() (string, error) {
	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// mapBackendError translates keyring library errors into custodian errors.
func mapBackendError(err error) error {
	switch {
	case errors.Is(err, ErrCredentialStore):
		return err
	case errors.Is(err, gokeyring.ErrNotFound):
		return ErrMasterKeyNotFound
	case !platformSupported():
		return fmt.Errorf("%w: %w", ErrPlatformUnsupported, err)
	default:
		return fmt.Errorf("%w: %w", ErrCredentialStoreAccess, err)
	}
}

// platformSupported reports whether go-keyring has a native provider for
// the running OS.
func platformSupported() bool {
	switch runtime.GOOS {
	case "darwin", "linux", "windows", "freebsd", "openbsd", "netbsd", "dragonfly":
		return true
	default:
		return false
	}
}

// osBackend forwards to the package-level go-keyring functions.
type osBackend struct{}

func (osBackend) Get(service, user string) (string, error) {
	return gokeyring.Get(service, user)
}

func (osBackend) Set(service, user, password string) error {
	return gokeyring.Set(service, user, password)
}

func (osBackend) Delete(service, user string) error {
	return gokeyring.Delete(service, user)
}
