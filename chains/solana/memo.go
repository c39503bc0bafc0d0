package solana

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gagliardetto/solana-go"
)

// DefaultMessage is the string whose digest is written on-chain by default.
const DefaultMessage = "Hello Nenrin"

// MemoProgramID is the SPL memo program (v2).
var MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")

// MemoDigest returns the lowercase hex SHA-256 of message.
func MemoDigest(message string) string {
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:])
}
