// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/vikeypass/internal/crypto"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/models"
)

const vaultFileMode fs.FileMode = 0o600

// Options configures a [VaultStorage].
type Options struct {
	// FilePath pins the vault location. When empty the location is resolved
	// by [ResolveVaultPath] on every access.
	FilePath string
}

// vaultFileStorage is the file-backed implementation of [VaultStorage].
type vaultFileStorage struct {
	filePath  string
	custodian keyring.Custodian
	codec     crypto.Codec

	// rename is os.Rename; swapped in tests to simulate a failed replace.
	rename func(oldpath, newpath string) error

	logger *logger.Logger
}

// NewVaultFileStorage constructs a [VaultStorage] that reads the master key
// from custodian on every Load and Save and never retains it.
func NewVaultFileStorage(opts Options, custodian keyring.Custodian, codec crypto.Codec, log *logger.Logger) VaultStorage {
	return &vaultFileStorage{
		filePath:  opts.FilePath,
		custodian: custodian,
		codec:     codec,
		rename:    os.Rename,
		logger:    log,
	}
}

// ResolvePath implements [VaultStorage].
func (s *vaultFileStorage) ResolvePath() (string, error) {
	return ResolveVaultPath(s.filePath)
}

// Exists implements [VaultStorage].
func (s *vaultFileStorage) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	path, err := s.ResolvePath()
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, mapReadError(err))
	}
}

// Load implements [VaultStorage]. Decryption and master key errors are
// returned wrapped but unchanged in kind.
func (s *vaultFileStorage) Load(ctx context.Context) (models.CredentialMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.ResolvePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vault %s: %w", path, mapReadError(err))
	}

	masterKey, err := s.custodian.GetMasterKey()
	if err != nil {
		return nil, fmt.Errorf("load vault: %w", err)
	}

	creds, err := s.codec.Decrypt(string(data), masterKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("vault could not be decrypted")
		return nil, fmt.Errorf("load vault %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("entries", len(creds)).Msg("vault loaded")
	return creds, nil
}

// Save implements [VaultStorage]. The new ciphertext is written to a
// temporary file in the same directory, synced, and renamed over the vault
// file, so readers see either the old or the new content.
func (s *vaultFileStorage) Save(ctx context.Context, creds models.CredentialMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.ResolvePath()
	if err != nil {
		return err
	}

	masterKey, err := s.custodian.GetMasterKey()
	if err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	encrypted, err := s.codec.Encrypt(creds, masterKey)
	if err != nil {
		return fmt.Errorf("save vault: %w", err)
	}

	if err := s.writeAtomic(path, []byte(encrypted)); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("vault save failed")
		return fmt.Errorf("save vault %s: %w", path, err)
	}

	s.logger.Debug().Str("path", path).Int("entries", len(creds)).Msg("vault saved")
	return nil
}

// LoadLegacy implements [VaultStorage].
func (s *vaultFileStorage) LoadLegacy(ctx context.Context, path string) (models.CredentialMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read legacy vault %s: %w", path, mapReadError(err))
	}

	masterKey, err := s.custodian.GetMasterKey()
	if err != nil {
		return nil, fmt.Errorf("load legacy vault: %w", err)
	}

	creds, err := s.codec.DecryptLegacy(string(data), masterKey)
	if err != nil {
		return nil, fmt.Errorf("load legacy vault %s: %w", path, err)
	}
	return creds, nil
}

func (s *vaultFileStorage) writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return mapWriteError(err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return mapWriteError(err)
	}
	if err = tmp.Sync(); err != nil {
		return mapWriteError(err)
	}
	if err = tmp.Close(); err != nil {
		return mapWriteError(err)
	}
	if err = os.Chmod(tmpPath, vaultFileMode); err != nil {
		return mapWriteError(err)
	}
	if err = s.rename(tmpPath, path); err != nil {
		return mapWriteError(err)
	}

	return nil
}

func mapReadError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrVaultFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
}

func mapWriteError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrWriteFailed, err)
}
