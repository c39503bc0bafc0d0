package wallet_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/chinmay1088/nenrin/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secret key with seed 0..31, public key FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF
var fixedKeyFile = `[0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,` +
	`3,161,7,191,243,206,16,190,29,112,221,24,231,75,192,153,103,228,214,48,155,165,13,95,29,220,134,100,18,85,49,184]`

const fixedPublicKey = "FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF"

func TestLoadOrCreateCreatesKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet-keypair.json")

	key, created, err := wallet.LoadOrCreate(path)
	require.NoError(t, err)
	require.True(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var values []int
	require.NoError(t, json.Unmarshal(data, &values))
	require.Len(t, values, wallet.SecretKeySize)
	for i, v := range values {
		assert.Equal(t, int(key[i]), v, "byte %d", i)
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadOrCreateReusesExistingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet-keypair.json")

	first, created, err := wallet.LoadOrCreate(path)
	require.NoError(t, err)
	require.True(t, created)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	second, created, err := wallet.LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.PublicKey(), second.PublicKey())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "existing key file must not be rewritten")
}

func TestLoadDerivesPublicKeyFromBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.json")
	require.NoError(t, os.WriteFile(path, []byte(fixedKeyFile), 0600))

	key, created, err := wallet.LoadOrCreate(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, fixedPublicKey, key.PublicKey().String())
}

func TestLoadOrCreateCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "wallet.json")

	_, created, err := wallet.LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, wallet.Exists(path))
}

func TestLoadRejectsCorruptKeyFile(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty", ""},
		{"not json", "hello"},
		{"object", `{"key": [1,2,3]}`},
		{"strings", `["a","b"]`},
		{"too short", `[1,2,3]`},
		{"too long", `[` + repeat("1,", 64) + `1]`},
		{"out of range", `[` + repeat("0,", 63) + `256]`},
		{"negative", `[-1` + repeat(",0", 63) + `]`},
		{"public key mismatch", `[` + repeat("7,", 63) + `7]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wallet-keypair.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0600))

			_, _, err := wallet.LoadOrCreate(path)
			require.ErrorIs(t, err, wallet.ErrCorruptKeyFile)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.contents, string(data), "corrupt file must be left alone")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := wallet.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, wallet.ErrKeyFileNotFound)
}

func TestLoadOrCreateUnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(dir, 0500))

	_, _, err := wallet.LoadOrCreate(filepath.Join(dir, "wallet-keypair.json"))
	require.ErrorIs(t, err, wallet.ErrWriteKeyFile)
}

func TestSaveRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet-keypair.json")
	require.NoError(t, os.WriteFile(path, []byte(fixedKeyFile), 0600))

	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	err = wallet.Save(path, key)
	require.ErrorIs(t, err, wallet.ErrKeyFileExists)

	loaded, err := wallet.Load(path)
	require.NoError(t, err)
	assert.Equal(t, fixedPublicKey, loaded.PublicKey().String())
}

func TestEncodeDecodeKeyFile(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	data, err := wallet.EncodeKeyFile(key)
	require.NoError(t, err)
	assert.Equal(t, byte('['), data[0])

	decoded, err := wallet.DecodeKeyFile(data)
	require.NoError(t, err)
	assert.Equal(t, key, decoded)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
