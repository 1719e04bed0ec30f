package keystore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/test"
	"github/chapool/signer-pool/internal/wallet/keystore"
	"github/chapool/signer-pool/internal/wallet/seed"
)

func newService(t *testing.T) (keystore.Service, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "keystore.json")
	svc, err := keystore.NewService(path, keystore.WithScryptParams(keystore.LightScryptParams()))
	require.NoError(t, err)

	return svc, path
}

func TestKeystoreRoundTrip(t *testing.T) {
	svc, path := newService(t)
	ctx := t.Context()

	exists, err := svc.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.GetKeystore(ctx)
	require.ErrorIs(t, err, keystore.ErrKeystoreNotFound)

	created, err := svc.CreateKeystore(ctx, "  "+test.Mnemonic+" ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, 3, created.Version)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", created.Address)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	exists, err = svc.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	ks, err := svc.GetKeystore(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, ks.ID)
	assert.Equal(t, "scrypt", ks.Crypto.KDF)

	mnemonic, err := svc.DecryptMnemonic(ctx, ks, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, test.Mnemonic, mnemonic)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "junk")
}

func TestKeystoreWrongPassword(t *testing.T) {
	svc, _ := newService(t)

	ks, err := svc.CreateKeystore(t.Context(), test.Mnemonic, "correct horse")
	require.NoError(t, err)

	_, err = svc.DecryptMnemonic(t.Context(), ks, "battery staple")
	require.ErrorIs(t, err, keystore.ErrInvalidPassword)
}

func TestKeystoreAddressMismatch(t *testing.T) {
	svc, _ := newService(t)

	ks, err := svc.CreateKeystore(t.Context(), test.Mnemonic, "pw")
	require.NoError(t, err)

	ks.Address = "0x0000000000000000000000000000000000000000"
	_, err = svc.DecryptMnemonic(t.Context(), ks, "pw")
	require.ErrorIs(t, err, keystore.ErrAddressMismatch)
}

func TestKeystoreRejectsInvalidMnemonicAndOverwrite(t *testing.T) {
	svc, path := newService(t)

	_, err := svc.CreateKeystore(t.Context(), "not a mnemonic", "pw")
	require.ErrorIs(t, err, seed.ErrInvalidMnemonic)

	_, err = os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = svc.CreateKeystore(t.Context(), test.Mnemonic, "pw")
	require.NoError(t, err)

	_, err = svc.CreateKeystore(t.Context(), test.Mnemonic, "pw")
	require.ErrorIs(t, err, keystore.ErrKeystoreExists)
}

func TestKeystoreCorrupt(t *testing.T) {
	svc, path := newService(t)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := svc.GetKeystore(t.Context())
	require.Error(t, err)

	var ks keystore.Keystore
	require.NoError(t, json.Unmarshal([]byte(`{"crypto":{"cipher":"aes-256-gcm","kdf":"scrypt"}}`), &ks))
	_, err = svc.DecryptMnemonic(t.Context(), &ks, "pw")
	require.Error(t, err)
}

func TestNewServiceRequiresPath(t *testing.T) {
	_, err := keystore.NewService("")
	require.Error(t, err)
}
