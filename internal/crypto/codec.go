// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/vikeypass/models"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

// codec is the private implementation of [Codec].
type codec struct {
	// Argon2id tuning parameters. Stored in the struct so tests can run
	// with cheap settings.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	random io.Reader
}

// Option tunes a [Codec] built by [NewCodec].
type Option func(*codec)

// WithArgon2Params overrides the Argon2id cost parameters. memory is in KiB.
// Files written with one set of parameters can only be read with the same
// set.
func WithArgon2Params(time, memory uint32, threads uint8) Option {
	return func(c *codec) {
		c.argonTime = time
		c.argonMemory = memory
		c.argonThreads = threads
	}
}

// NewCodec constructs a [Codec] with the Argon2id parameters recommended by
// OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCodec(opts ...Option) Codec {
	c := &codec{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		random:       rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// deriveKey derives the AES-256 key for masterKey and salt.
func (c *codec) deriveKey(masterKey string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterKey),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		keySize,
	)
}

// Encrypt implements [Codec]. The output is Base64 (standard encoding) of
// salt (16 bytes) ‖ nonce (12 bytes) ‖ ciphertext. A nil map is written as
// an empty JSON object.
func (c *codec) Encrypt(creds models.CredentialMap, masterKey string) (string, error) {
	if masterKey == "" {
		return "", ErrEmptyMasterKey
	}
	if creds == nil {
		creds = models.NewCredentialMap()
	}

	// 1. Serialize to JSON; map keys come out sorted.
	plaintext, err := json.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("marshal credentials: %w", err)
	}

	// 2. Fresh salt per file so the same master key gives different keys
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(c.deriveKey(masterKey, salt))
	if err != nil {
		return "", err
	}

	// 3. Generate a random nonce
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// 4. Encrypt: salt || nonce || ciphertext
	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec]. Leading and trailing whitespace around the
// Base64 text is ignored.
func (c *codec) Decrypt(encryptedB64, masterKey string) (models.CredentialMap, error) {
	if masterKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, ErrEmptyMasterKey)
	}

	// 1. Decode base64 blob
	blob, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace([]byte(encryptedB64))))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	// 2. Split salt, nonce and ciphertext
	if len(blob) < saltSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := newGCM(c.deriveKey(masterKey, salt))
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	// 3. Decrypt and verify auth tag. An error here almost always means a
	// wrong master key.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return unmarshalCredentials(plaintext)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// unmarshalCredentials parses a decrypted payload. Anything other than a
// JSON object of string values is [ErrCorruptDatabase].
func unmarshalCredentials(plaintext []byte) (models.CredentialMap, error) {
	var creds models.CredentialMap
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDatabase, err)
	}
	// "null" unmarshals without error into a nil map
	if creds == nil {
		return nil, fmt.Errorf("%w: payload is not an object", ErrCorruptDatabase)
	}
	return creds, nil
}
