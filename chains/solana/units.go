package solana

import (
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

const lamportsExp = 9

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL uint64 = 1_000_000_000

func ParseAddress(address string) (solana.PublicKey, error) {
	// Base58 doesn't use 0, O, I, or l
	for i, c := range address {
		if c == '0' || c == 'O' || c == 'I' || c == 'l' {
			return solana.PublicKey{}, fmt.Errorf("invalid character '%c' at position %d in Solana address", c, i)
		}
	}

	pubKey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid Solana address (%s): %w", address, err)
	}
	return pubKey, nil
}

// LamportsToSOL converts without the float rounding that a division by 1e9 would introduce.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -lamportsExp)
}

// ParseSOL converts a positive SOL amount such as "1" or "0.25" to lamports.
func ParseSOL(amount string) (uint64, error) {
	sol, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("invalid SOL amount %q: %w", amount, err)
	}

	if !sol.IsPositive() {
		return 0, fmt.Errorf("SOL amount must be positive, got %s", amount)
	}

	lamports := sol.Shift(lamportsExp)
	if !lamports.Equal(lamports.Truncate(0)) {
		return 0, fmt.Errorf("SOL amount %s has more than %d decimal places", amount, lamportsExp)
	}

	n := lamports.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("SOL amount %s is too large", amount)
	}
	return n.Uint64(), nil
}

func FormatBalance(lamports uint64) string {
	return fmt.Sprintf("%s SOL", LamportsToSOL(lamports).String())
}
