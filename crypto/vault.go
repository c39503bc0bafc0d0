package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length

	vaultVersion = 1
)

var ErrWrongPassword = errors.New("wrong password or damaged backup")

// Vault is a password-encrypted copy of a wallet secret key.
type Vault struct {
	Version int    `json:"version"`
	Salt    []byte `json:"salt"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

type VaultData struct {
	SecretKey []byte `json:"secret_key"`
	Version   int    `json:"version"`
}

func NewVault(secretKey []byte, password string) (*Vault, error) {
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(VaultData{
		SecretKey: secretKey,
		Version:   vaultVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}
	defer clearBytes(data)

	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	encryptedData, err := encrypt(key, nonce, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return &Vault{
		Version: vaultVersion,
		Salt:    salt,
		Nonce:   nonce,
		Data:    encryptedData,
	}, nil
}

// Decrypt returns the secret key sealed in the vault.
func (v *Vault) Decrypt(password string) ([]byte, error) {
	if v.Version != vaultVersion {
		return nil, fmt.Errorf("unsupported vault version %d", v.Version)
	}

	key, err := deriveKey(password, v.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	decryptedData, err := decrypt(key, v.Nonce, v.Data)
	if err != nil {
		return nil, err
	}
	defer clearBytes(decryptedData)

	var vaultData VaultData
	if err := json.Unmarshal(decryptedData, &vaultData); err != nil {
		return nil, fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return vaultData.SecretKey, nil
}

func (v *Vault) ValidatePassword(password string) bool {
	secret, err := v.Decrypt(password)
	clearBytes(secret)
	return err == nil
}

// SaveVault writes v to path as JSON, refusing to replace an existing file.
func SaveVault(path string, v *Vault) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

func LoadVault(path string) (*Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var vault Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vault: %w", err)
	}

	return &vault, nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func encrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return aesGCM.Seal(nil, nonce, data, nil), nil
}

func decrypt(key, nonce, data []byte) ([]byte, error) {
	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(nonce) != aesGCM.NonceSize() {
		return nil, ErrWrongPassword
	}

	plaintext, err := aesGCM.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
