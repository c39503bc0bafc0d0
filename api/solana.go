package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// historyPageSize is the largest page getSignaturesForAddress returns.
const historyPageSize = 1000

// GetBalance fetches the wallet balance in lamports
func (c *Client) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}

	c.logger.Debug("balance", zap.Stringer("account", account), zap.Uint64("lamports", out.Value))
	return out.Value, nil
}

// RequestAirdrop asks the cluster faucet for lamports. It does not wait for
// the funding transaction to land; use ConfirmTransaction for that.
func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	if !SupportsAirdrop(c.network) {
		return solana.Signature{}, fmt.Errorf("%w: %s", ErrAirdropUnavailable, c.network)
	}

	sig, err := c.rpc.RequestAirdrop(ctx, account, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}

	c.logger.Debug("airdrop requested",
		zap.Stringer("account", account),
		zap.Uint64("lamports", lamports),
		zap.Stringer("signature", sig))
	return sig, nil
}

// LatestBlockhash gets a recent blockhash for new transactions
func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	// "finalized" gives the freshest blockhash that cannot be rolled back
	out, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if out == nil || out.Value == nil {
		return solana.Hash{}, fmt.Errorf("no blockhash in response")
	}

	c.logger.Debug("blockhash",
		zap.Stringer("blockhash", out.Value.Blockhash),
		zap.Uint64("last_valid_block_height", out.Value.LastValidBlockHeight))
	return out.Value.Blockhash, nil
}

// SendTransaction submits a signed transaction once. It is never resubmitted.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	c.logger.Debug("sending transaction",
		zap.String("endpoint", c.endpoint),
		zap.Int("instructions", len(tx.Message.Instructions)))

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Debug("transaction sent", zap.Stringer("signature", sig))
	return sig, nil
}

// ConfirmTransaction blocks until sig reaches the client commitment, the
// transaction fails on-chain, or the confirmation timeout elapses.
func (c *Client) ConfirmTransaction(ctx context.Context, sig solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		done, err := c.signatureConfirmed(ctx, sig)
		if err != nil && ctx.Err() == nil {
			return err
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s after %s", ErrConfirmationTimeout, sig, c.confirmTimeout)
			}
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) signatureConfirmed(ctx context.Context, sig solana.Signature) (bool, error) {
	out, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return false, fmt.Errorf("failed to get signature status: %w", err)
	}

	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		c.logger.Debug("signature not seen yet", zap.Stringer("signature", sig))
		return false, nil
	}

	status := out.Value[0]
	if status.Err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrTransactionFailed, sig, status.Err)
	}

	c.logger.Debug("signature status",
		zap.Stringer("signature", sig),
		zap.Uint64("slot", status.Slot),
		zap.String("status", string(status.ConfirmationStatus)))

	return commitmentReached(status.ConfirmationStatus, c.commitment), nil
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	switch want {
	case rpc.CommitmentFinalized:
		return status == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentConfirmed:
		return status == rpc.ConfirmationStatusConfirmed || status == rpc.ConfirmationStatusFinalized
	default:
		return status != ""
	}
}

// GetSignatures fetches the transaction history for an address, newest
// first. A limit of zero or less pages through the whole history.
func (c *Client) GetSignatures(ctx context.Context, account solana.PublicKey, limit int) ([]Signature, error) {
	var (
		signatures []Signature
		before     solana.Signature
	)

	for {
		pageSize := historyPageSize
		if limit > 0 {
			pageSize = min(limit-len(signatures), historyPageSize)
		}

		opts := &rpc.GetSignaturesForAddressOpts{
			Limit:      &pageSize,
			Before:     before,
			Commitment: c.commitment,
		}

		page, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, account, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch signatures: %w", err)
		}

		for _, ts := range page {
			signatures = append(signatures, toSignature(ts))
		}

		c.logger.Debug("signature page",
			zap.Stringer("account", account),
			zap.Int("page", len(page)),
			zap.Int("total", len(signatures)))

		if len(page) < pageSize || (limit > 0 && len(signatures) >= limit) {
			break
		}
		before = page[len(page)-1].Signature
	}

	if signatures == nil {
		signatures = []Signature{}
	}
	return signatures, nil
}

func toSignature(ts *rpc.TransactionSignature) Signature {
	s := Signature{
		Signature:          ts.Signature.String(),
		Slot:               ts.Slot,
		ConfirmationStatus: string(ts.ConfirmationStatus),
	}
	if ts.BlockTime != nil {
		s.BlockTime = ts.BlockTime.Time()
	}
	if ts.Memo != nil {
		s.Memo = *ts.Memo
	}
	if ts.Err != nil {
		s.Err = fmt.Sprint(ts.Err)
	}
	return s
}
