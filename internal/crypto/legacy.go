package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/vikeypass/models"
)

// DecryptLegacy implements [Codec].
//
// Legacy files are AES-256-CBC with key = SHA-256(masterKey), an all-zero
// IV and PKCS#7 padding. The format carries no authentication tag, so a
// wrong key usually fails the padding check ([ErrDecryption]) but can
// occasionally surface as [ErrCorruptDatabase] instead.
func (c *codec) DecryptLegacy(encryptedB64, masterKey string) (models.CredentialMap, error) {
	if masterKey == "" {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, ErrEmptyMasterKey)
	}

	blob, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace([]byte(encryptedB64))))
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}
	if len(blob) == 0 || len(blob)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrDecryption)
	}

	key := sha256.Sum256([]byte(masterKey))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	plaintext := make([]byte, len(blob))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, blob)

	plaintext, err = pkcs7Unpad(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return unmarshalCredentials(plaintext)
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}
