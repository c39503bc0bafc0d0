package crypto

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRoundTrip(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

	vault, err := NewVault(secret, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, vaultVersion, vault.Version)
	assert.NotContains(t, string(vault.Data), string(secret))

	got, err := vault.Decrypt("correct horse")
	require.NoError(t, err)
	assert.Equal(t, secret, got)
	assert.True(t, vault.ValidatePassword("correct horse"))
}

func TestVaultWrongPassword(t *testing.T) {
	vault, err := NewVault([]byte("secret"), "correct horse")
	require.NoError(t, err)

	_, err = vault.Decrypt("battery staple")
	require.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, vault.ValidatePassword("battery staple"))
}

func TestVaultTamperedData(t *testing.T) {
	vault, err := NewVault([]byte("secret"), "correct horse")
	require.NoError(t, err)

	vault.Data[0] ^= 0xff
	_, err = vault.Decrypt("correct horse")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestSaveAndLoadVault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	vault, err := NewVault([]byte("secret"), "correct horse")
	require.NoError(t, err)
	require.NoError(t, SaveVault(path, vault))

	// never replace an existing backup
	require.Error(t, SaveVault(path, vault))

	loaded, err := LoadVault(path)
	require.NoError(t, err)

	got, err := loaded.Decrypt("correct horse")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)
}

func TestVaultUnsupportedVersion(t *testing.T) {
	vault, err := NewVault([]byte("secret"), "correct horse")
	require.NoError(t, err)

	vault.Version = 99
	_, err = vault.Decrypt("correct horse")
	require.Error(t, err)
}
