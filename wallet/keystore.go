package wallet

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
)

// DefaultKeypairPath is where the key file lives when no path is given.
const DefaultKeypairPath = "wallet-keypair.json"

// SecretKeySize is the length of a Solana secret key: ed25519 seed followed by the public key.
const SecretKeySize = ed25519.PrivateKeySize

var (
	ErrCorruptKeyFile  = errors.New("corrupt key file")
	ErrWriteKeyFile    = errors.New("cannot write key file")
	ErrKeyFileNotFound = errors.New("key file not found")
	ErrKeyFileExists   = errors.New("key file already exists")
)

// LoadOrCreate reads the keypair stored at path, or generates a new one and
// writes it there when the file does not exist yet. The boolean reports
// whether a new key was created.
func LoadOrCreate(path string) (solana.PrivateKey, bool, error) {
	key, err := Load(path)
	if err == nil {
		return key, false, nil
	}
	if !errors.Is(err, ErrKeyFileNotFound) {
		return nil, false, err
	}

	key, err = solana.NewRandomPrivateKey()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate keypair: %w", err)
	}

	if err := Save(path, key); err != nil {
		return nil, false, err
	}

	return key, true, nil
}

// Load reads an existing key file. It never creates one.
func Load(path string) (solana.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKeyFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key, err := DecodeKeyFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return key, nil
}

// Save writes key to path as a JSON array of byte values. An existing file
// is left untouched and reported as ErrKeyFileExists.
func Save(path string, key solana.PrivateKey) error {
	if err := validateSecret(key); err != nil {
		return err
	}

	data, err := EncodeKeyFile(key)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("%w: failed to create directory: %v", ErrWriteKeyFile, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrKeyFileExists, path)
		}
		return fmt.Errorf("%w: %v", ErrWriteKeyFile, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrWriteKeyFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteKeyFile, err)
	}

	return nil
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EncodeKeyFile renders key in the solana-keygen file format, e.g. [12,250,...].
func EncodeKeyFile(key solana.PrivateKey) ([]byte, error) {
	// []byte marshals as base64, so widen to ints first
	values := make([]int, len(key))
	for i, b := range key {
		values[i] = int(b)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal key file: %w", err)
	}
	return data, nil
}

// DecodeKeyFile parses the solana-keygen file format.
func DecodeKeyFile(data []byte) (solana.PrivateKey, error) {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: not a JSON byte array: %v", ErrCorruptKeyFile, err)
	}

	if len(values) != SecretKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptKeyFile, SecretKeySize, len(values))
	}

	key := make(solana.PrivateKey, SecretKeySize)
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: value %d at index %d is not a byte", ErrCorruptKeyFile, v, i)
		}
		key[i] = byte(v)
	}

	if err := validateSecret(key); err != nil {
		return nil, err
	}
	return key, nil
}

// validateSecret checks that the public half of key matches its seed.
func validateSecret(key solana.PrivateKey) error {
	if len(key) != SecretKeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrCorruptKeyFile, SecretKeySize, len(key))
	}

	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return fmt.Errorf("%w: public key does not match secret", ErrCorruptKeyFile)
	}
	return nil
}
