package wallet

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// SolDerivationPath is the account path used by solana-keygen and most wallets.
const SolDerivationPath = "m/44'/501'/0'/0'"

const hardenedOffset = 0x80000000

// HDKey is a node in a SLIP-0010 ed25519 derivation tree.
type HDKey struct {
	PrivateKey []byte
	ChainCode  []byte
	Depth      uint8
	ChildNum   uint32
}

// FromMnemonic derives a Solana keypair from a BIP-39 recovery phrase.
// An empty path selects SolDerivationPath.
func FromMnemonic(mnemonic, passphrase, path string) (solana.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	if path == "" {
		path = SolDerivationPath
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	return deriveSolanaKey(seed, path)
}

// FromBase58 parses a base58-encoded 64-byte secret key, the format wallets
// use for "export private key".
func FromBase58(secret string) (solana.PrivateKey, error) {
	raw, err := base58.Decode(strings.TrimSpace(secret))
	if err != nil {
		return nil, fmt.Errorf("invalid base58 secret key: %w", err)
	}

	key := solana.PrivateKey(raw)
	if err := validateSecret(key); err != nil {
		return nil, err
	}
	return key, nil
}

// deriveSolanaKey walks path from the seed's master node and expands the
// resulting 32-byte node key into an ed25519 keypair.
func deriveSolanaKey(seed []byte, path string) (solana.PrivateKey, error) {
	key, err := deriveHDKey(seed, path)
	if err != nil {
		return nil, err
	}

	return solana.PrivateKey(ed25519.NewKeyFromSeed(key.PrivateKey)), nil
}

func deriveHDKey(seed []byte, path string) (*HDKey, error) {
	pathParts := strings.Split(path, "/")
	if len(pathParts) < 1 || pathParts[0] != "m" {
		return nil, fmt.Errorf("invalid derivation path: %s", path)
	}

	childKey := newMasterKey(seed)
	for _, part := range pathParts[1:] {
		childNum, err := parseChildNum(part)
		if err != nil {
			return nil, fmt.Errorf("failed to parse child number %q: %w", part, err)
		}

		childKey, err = deriveChild(childKey, childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child: %w", err)
		}
	}

	return childKey, nil
}

func newMasterKey(seed []byte) *HDKey {
	hash := hmacSHA512([]byte("ed25519 seed"), seed)

	return &HDKey{
		PrivateKey: hash[:32],
		ChainCode:  hash[32:],
	}
}

// deriveChild only supports hardened children; ed25519 has no public derivation.
func deriveChild(parent *HDKey, childNum uint32) (*HDKey, error) {
	if !isHardened(childNum) {
		return nil, fmt.Errorf("ed25519 only supports hardened derivation, got index %d", childNum)
	}

	data := make([]byte, 0, 1+32+4)
	data = append(data, 0x00)
	data = append(data, parent.PrivateKey...)
	data = binary.BigEndian.AppendUint32(data, childNum)

	hash := hmacSHA512(parent.ChainCode, data)

	return &HDKey{
		PrivateKey: hash[:32],
		ChainCode:  hash[32:],
		Depth:      parent.Depth + 1,
		ChildNum:   childNum,
	}, nil
}

func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func isHardened(childNum uint32) bool {
	return childNum >= hardenedOffset
}

func parseChildNum(childStr string) (uint32, error) {
	hardened := strings.HasSuffix(childStr, "'") || strings.HasSuffix(childStr, "H")
	if hardened {
		childStr = childStr[:len(childStr)-1]
	}

	n, err := strconv.ParseUint(childStr, 10, 31)
	if err != nil {
		return 0, err
	}

	childNum := uint32(n)
	if hardened {
		childNum += hardenedOffset
	}
	return childNum, nil
}
