package crypto

import "github.com/MKhiriev/vikeypass/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec turns a [models.CredentialMap] into the text stored in the vault
// file and back. It knows nothing about files, keyrings or users; the master
// key is passed in on every call and never retained.
//
// File format:
//
//	base64( salt[16] ‖ nonce[12] ‖ AES-256-GCM(JSON(map)) )
//
// where the AES key is Argon2id(masterKey, salt).
type Codec interface {
	// Encrypt serializes creds to JSON and encrypts it with a key derived
	// from masterKey. Every call uses a fresh salt and nonce, so two
	// encryptions of the same map differ.
	Encrypt(creds models.CredentialMap, masterKey string) (string, error)

	// Decrypt reverses Encrypt. It returns [ErrDecryption] when the text is
	// not valid base64, is truncated, or fails authentication (wrong key or
	// tampered data), and [ErrCorruptDatabase] when decryption succeeds but
	// the payload is not a JSON object of strings. No partial map is ever
	// returned.
	Decrypt(encryptedB64, masterKey string) (models.CredentialMap, error)

	// DecryptLegacy reads a vault file written by the first vikeypass
	// release (unauthenticated AES-256-CBC). Used only for one-shot
	// migration.
	DecryptLegacy(encryptedB64, masterKey string) (models.CredentialMap, error)
}
