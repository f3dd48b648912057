// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vikeypass/internal/clipboard"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/internal/store"
	"github.com/MKhiriev/vikeypass/models"
)

type vaultService struct {
	storage   store.VaultStorage
	custodian keyring.Custodian
	exposer   clipboard.Exposer
	window    time.Duration

	logger *logger.Logger
}

// NewVaultService wires the store, the custodian and the clipboard exposer
// into a [VaultService]. window is how long copied secrets stay on the
// clipboard.
func NewVaultService(storage store.VaultStorage, custodian keyring.Custodian, exposer clipboard.Exposer, window time.Duration, log *logger.Logger) VaultService {
	return &vaultService{
		storage:   storage,
		custodian: custodian,
		exposer:   exposer,
		window:    window,
		logger:    log,
	}
}

func (v *vaultService) Init(ctx context.Context, force bool) error {
	exists, err := v.storage.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check vault file: %w", err)
	}
	if exists && !force {
		return ErrVaultExists
	}

	if err = v.storage.Save(ctx, models.NewCredentialMap()); err != nil {
		return fmt.Errorf("create vault: %w", err)
	}

	v.logger.Info().Bool("overwritten", exists).Msg("vault initialized")
	return nil
}

func (v *vaultService) Load(ctx context.Context) (models.CredentialMap, error) {
	creds, err := v.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	return creds, nil
}

func (v *vaultService) Add(ctx context.Context, creds models.CredentialMap, name, secret string) error {
	if creds == nil {
		return ErrNilCredentials
	}
	if err := validateEntry(name, secret); err != nil {
		return err
	}

	prev, had := creds[name]
	creds.Add(name, secret)

	if err := v.storage.Save(ctx, creds); err != nil {
		restore(creds, name, prev, had)
		return fmt.Errorf("add account %q: %w", name, err)
	}

	v.logger.Info().Str("account", name).Bool("replaced", had).Msg("account added")
	return nil
}

func (v *vaultService) Edit(ctx context.Context, creds models.CredentialMap, name, secret string) error {
	if err := validateEntry(name, secret); err != nil {
		return err
	}

	prev, had := creds[name]
	if !creds.Edit(name, secret) {
		return fmt.Errorf("edit account %q: %w", name, ErrAccountNotFound)
	}

	if err := v.storage.Save(ctx, creds); err != nil {
		restore(creds, name, prev, had)
		return fmt.Errorf("edit account %q: %w", name, err)
	}

	v.logger.Info().Str("account", name).Msg("account edited")
	return nil
}

func (v *vaultService) Delete(ctx context.Context, creds models.CredentialMap, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAccountName
	}

	prev, had := creds[name]
	if !creds.Delete(name) {
		return fmt.Errorf("delete account %q: %w", name, ErrAccountNotFound)
	}

	if err := v.storage.Save(ctx, creds); err != nil {
		restore(creds, name, prev, had)
		return fmt.Errorf("delete account %q: %w", name, err)
	}

	v.logger.Info().Str("account", name).Msg("account deleted")
	return nil
}

func (v *vaultService) Copy(ctx context.Context, creds models.CredentialMap, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	secret, ok := creds.Secret(name)
	if !ok {
		return fmt.Errorf("copy account %q: %w", name, ErrAccountNotFound)
	}

	if err := v.exposer.Expose(secret, v.window); err != nil {
		return fmt.Errorf("copy account %q: %w", name, err)
	}

	v.logger.Info().Str("account", name).Dur("window", v.window).Msg("secret copied to clipboard")
	return nil
}

func (v *vaultService) SetMasterKey(ctx context.Context, passphrase string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.custodian.SetMasterKey(passphrase)
}

func (v *vaultService) DeleteMasterKey(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.custodian.DeleteMasterKey()
}

func (v *vaultService) MasterKeyStatus(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := v.custodian.GetMasterKey()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, keyring.ErrMasterKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (v *vaultService) Import(ctx context.Context, creds models.CredentialMap, path string) (int, error) {
	if creds == nil {
		return 0, ErrNilCredentials
	}

	legacy, err := v.storage.LoadLegacy(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("import %s: %w", path, err)
	}

	backup := creds.Clone()
	changed := creds.Merge(legacy)
	if changed == 0 {
		return 0, nil
	}

	if err = v.storage.Save(ctx, creds); err != nil {
		clear(creds)
		creds.Merge(backup)
		return 0, fmt.Errorf("import %s: %w", path, err)
	}

	v.logger.Info().Str("source", path).Int("changed", changed).Msg("legacy vault imported")
	return changed, nil
}

func (v *vaultService) VaultExists(ctx context.Context) (bool, error) {
	return v.storage.Exists(ctx)
}

func (v *vaultService) VaultPath() (string, error) {
	return v.storage.ResolvePath()
}

func validateEntry(name, secret string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAccountName
	}
	if secret == "" {
		return ErrEmptySecret
	}
	return nil
}

// restore puts name back the way it was before a failed save.
func restore(creds models.CredentialMap, name, prev string, had bool) {
	if had {
		creds[name] = prev
		return
	}
	delete(creds, name)
}
