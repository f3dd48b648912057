package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/MKhiriev/vikeypass/internal/crypto"
	"github.com/MKhiriev/vikeypass/internal/keyring"
	"github.com/MKhiriev/vikeypass/internal/logger"
	"github.com/MKhiriev/vikeypass/internal/mock"
	"github.com/MKhiriev/vikeypass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestStorage returns a file store over path using a cheap real codec and
// a mocked custodian.
func newTestStorage(t *testing.T, path string) (*vaultFileStorage, *mock.MockCustodian) {
	t.Helper()
	ctrl := gomock.NewController(t)
	custodian := mock.NewMockCustodian(ctrl)
	codec := crypto.NewCodec(crypto.WithArgon2Params(1, 1024, 1))

	s := NewVaultFileStorage(Options{FilePath: path}, custodian, codec, logger.Nop())
	return s.(*vaultFileStorage), custodian
}

// ── ResolvePath ──────────────────────────────────────────────────────────────

func TestResolveVaultPath_Explicit(t *testing.T) {
	t.Setenv("VIKEYPASS_FILE", "/tmp/from-env.vault")

	path, err := ResolveVaultPath("/data/explicit.vault")
	require.NoError(t, err)
	assert.Equal(t, "/data/explicit.vault", path)
}

func TestResolveVaultPath_EnvOverride(t *testing.T) {
	t.Setenv("VIKEYPASS_FILE", "/tmp/test.vault")

	path, err := ResolveVaultPath("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.vault", path)
}

func TestResolveVaultPath_HomeDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VIKEYPASS_FILE", "")
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := ResolveVaultPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultFileName), path)
}

func TestResolvePath_ReadsEnvEveryCall(t *testing.T) {
	s, _ := newTestStorage(t, "")

	t.Setenv("VIKEYPASS_FILE", "/tmp/one.vault")
	first, err := s.ResolvePath()
	require.NoError(t, err)

	t.Setenv("VIKEYPASS_FILE", "/tmp/two.vault")
	second, err := s.ResolvePath()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/one.vault", first)
	assert.Equal(t, "/tmp/two.vault", second)
}

// ── Save / Load ──────────────────────────────────────────────────────────────

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.data")

	writer, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)
	require.NoError(t, writer.Save(ctx, models.CredentialMap{"github": "p@ss"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "p@ss")
	assert.NotContains(t, string(raw), "github")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	// a fresh instance reads it back
	reader, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)
	creds, err := reader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CredentialMap{"github": "p@ss"}, creds)
}

func TestLoad_WrongKey(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.data")

	s, custodian := newTestStorage(t, path)
	gomock.InOrder(
		custodian.EXPECT().GetMasterKey().Return("correct-key", nil),
		custodian.EXPECT().GetMasterKey().Return("wrong-key", nil),
	)

	require.NoError(t, s.Save(ctx, models.CredentialMap{"github": "p@ss"}))

	creds, err := s.Load(ctx)
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestLoad_FileNotFound(t *testing.T) {
	s, _ := newTestStorage(t, filepath.Join(t.TempDir(), "missing.data"))

	creds, err := s.Load(context.Background())
	assert.Nil(t, creds)
	assert.ErrorIs(t, err, ErrVaultFileNotFound)
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoad_CustodianErrorPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.data")
	require.NoError(t, os.WriteFile(path, []byte("whatever"), 0o600))

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("", keyring.ErrMasterKeyNotFound)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, keyring.ErrMasterKeyNotFound)
	assert.ErrorIs(t, err, keyring.ErrCredentialStore)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.data")
	require.NoError(t, os.WriteFile(path, []byte("not base64 at all!"), 0o600))

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestLoad_CanceledContext(t *testing.T) {
	s, _ := newTestStorage(t, filepath.Join(t.TempDir(), "vault.data"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSave_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.data")
	creds := models.CredentialMap{"github": "p@ss", "mail": "hunter2"}

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil).Times(3)

	require.NoError(t, s.Save(ctx, creds))
	require.NoError(t, s.Save(ctx, creds))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)
}

func TestSave_FailedRenameKeepsOldFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.data")

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil).Times(2)

	require.NoError(t, s.Save(ctx, models.CredentialMap{"github": "old"}))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	s.rename = func(string, string) error { return errors.New("disk full") }
	err = s.Save(ctx, models.CredentialMap{"github": "new"})
	assert.ErrorIs(t, err, ErrWriteFailed)
	assert.ErrorIs(t, err, ErrIO)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
	assert.Equal(t, "vault.data", entries[0].Name())
}

func TestSave_EncryptFailureKeepsOldFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.data")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o600))

	ctrl := gomock.NewController(t)
	custodian := mock.NewMockCustodian(ctrl)
	codec := mock.NewMockCodec(ctrl)
	s := NewVaultFileStorage(Options{FilePath: path}, custodian, codec, logger.Nop())

	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)
	codec.EXPECT().Encrypt(gomock.Any(), "correct-key").Return("", crypto.ErrEmptyMasterKey)

	err := s.Save(ctx, models.CredentialMap{"github": "p@ss"})
	assert.ErrorIs(t, err, crypto.ErrEmptyMasterKey)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestSave_CustodianErrorWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.data")

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("", keyring.ErrCredentialStoreAccess)

	err := s.Save(context.Background(), models.CredentialMap{"github": "p@ss"})
	assert.ErrorIs(t, err, keyring.ErrCredentialStoreAccess)
	assert.NoFileExists(t, path)
}

func TestSave_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "vault.data")

	s, custodian := newTestStorage(t, path)
	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)

	err := s.Save(context.Background(), models.CredentialMap{})
	assert.ErrorIs(t, err, ErrIO)
}

// ── Exists ───────────────────────────────────────────────────────────────────

func TestExists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault.data")
	s, _ := newTestStorage(t, path)

	ok, err := s.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, nil, 0o600))

	ok, err = s.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

// ── LoadLegacy ───────────────────────────────────────────────────────────────

func TestLoadLegacy_DelegatesToCodec(t *testing.T) {
	legacyPath := filepath.Join(t.TempDir(), "old.data")
	require.NoError(t, os.WriteFile(legacyPath, []byte("bGVnYWN5"), 0o600))

	ctrl := gomock.NewController(t)
	custodian := mock.NewMockCustodian(ctrl)
	codec := mock.NewMockCodec(ctrl)
	s := NewVaultFileStorage(Options{}, custodian, codec, logger.Nop())

	custodian.EXPECT().GetMasterKey().Return("correct-key", nil)
	codec.EXPECT().DecryptLegacy("bGVnYWN5", "correct-key").Return(models.CredentialMap{"mail": "x"}, nil)

	creds, err := s.LoadLegacy(context.Background(), legacyPath)
	require.NoError(t, err)
	assert.Equal(t, models.CredentialMap{"mail": "x"}, creds)
}

func TestLoadLegacy_Missing(t *testing.T) {
	s, _ := newTestStorage(t, "")

	_, err := s.LoadLegacy(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrVaultFileNotFound)
}
