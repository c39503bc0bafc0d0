package api

import (
	"errors"
	"time"
)

var (
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrConfirmationTimeout = errors.New("timed out waiting for confirmation")
	ErrAirdropUnavailable  = errors.New("airdrop is not available on this network")
)

// Signature is one entry of an address's transaction history.
type Signature struct {
	Signature          string    `json:"signature"`
	Slot               uint64    `json:"slot"`
	BlockTime          time.Time `json:"block_time"` // zero when the node has no block time
	ConfirmationStatus string    `json:"confirmation_status"`
	Memo               string    `json:"memo,omitempty"`
	Err                string    `json:"err,omitempty"` // empty if the transaction succeeded
}

// Failed reports whether the transaction was rejected on-chain.
func (s Signature) Failed() bool {
	return s.Err != ""
}
