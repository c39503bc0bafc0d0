// Package workflow runs the wallet demo: load or create a key, fund it when
// new, write a memo transaction, then report balance and history.
package workflow

import (
	"context"
	"fmt"
	"io"

	"github.com/chinmay1088/nenrin/api"
	chain "github.com/chinmay1088/nenrin/chains/solana"
	"github.com/chinmay1088/nenrin/wallet"
	"github.com/fatih/color"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// ChainClient is the part of the cluster client the workflow needs.
type ChainClient interface {
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	ConfirmTransaction(ctx context.Context, sig solana.Signature) error
	GetSignatures(ctx context.Context, account solana.PublicKey, limit int) ([]api.Signature, error)
}

// Config holds the inputs of one run.
type Config struct {
	KeypairPath     string
	Message         string // memo payload is the SHA-256 hex digest of this
	AirdropLamports uint64 // requested only when the key file is created
	HistoryLimit    int    // zero fetches the full history
}

// DefaultConfig writes the digest of DefaultMessage and airdrops 1 SOL.
func DefaultConfig() Config {
	return Config{
		KeypairPath:     wallet.DefaultKeypairPath,
		Message:         chain.DefaultMessage,
		AirdropLamports: chain.LamportsPerSOL,
	}
}

// Report is what a completed run observed.
type Report struct {
	Wallet           solana.PublicKey
	NewWallet        bool
	AirdropSignature solana.Signature // zero unless NewWallet
	MemoSignature    solana.Signature
	Payload          string
	Balance          uint64
	History          []api.Signature
}

// Runner executes the workflow steps against a ChainClient.
type Runner struct {
	client  ChainClient
	out     io.Writer
	logger  *zap.Logger
	spinner bool
}

type Option func(*Runner)

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithSpinner shows a spinner on out while waiting for confirmations.
func WithSpinner(enabled bool) Option {
	return func(r *Runner) {
		r.spinner = enabled
	}
}

func NewRunner(client ChainClient, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		client: client,
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs every step in order. The first failure aborts the run; work
// already submitted to the cluster is not undone.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	key, isNew, err := wallet.LoadOrCreate(cfg.KeypairPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load keypair: %w", err)
	}

	report := &Report{
		Wallet:    key.PublicKey(),
		NewWallet: isNew,
	}
	r.logger.Debug("keypair ready",
		zap.String("path", cfg.KeypairPath),
		zap.Bool("created", isNew))

	r.printf("🔑 Wallet public key: %s\n", color.CyanString(report.Wallet.String()))

	if isNew {
		report.AirdropSignature, err = r.Airdrop(ctx, report.Wallet, cfg.AirdropLamports)
		if err != nil {
			return report, err
		}
	}

	report.MemoSignature, report.Payload, err = r.SendMemo(ctx, key, cfg.Message)
	if err != nil {
		return report, err
	}

	report.Balance, err = r.Balance(ctx, report.Wallet)
	if err != nil {
		return report, err
	}

	report.History, err = r.History(ctx, report.Wallet, cfg.HistoryLimit)
	if err != nil {
		return report, err
	}

	return report, nil
}

// Airdrop requests test funds and waits until the funding transaction is
// confirmed. The credited amount is not checked.
func (r *Runner) Airdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := r.client.RequestAirdrop(ctx, account, lamports)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("airdrop: %w", err)
	}

	if err := r.confirm(ctx, sig, "Waiting for airdrop confirmation"); err != nil {
		return sig, fmt.Errorf("airdrop: %w", err)
	}

	r.printf("✅ Airdrop successful! (%s)\n", chain.FormatBalance(lamports))
	return sig, nil
}

// SendMemo writes the digest of message on-chain in a self-transfer
// transaction and waits for confirmation. It returns the signature and the
// digest that was sent.
func (r *Runner) SendMemo(ctx context.Context, key solana.PrivateKey, message string) (solana.Signature, string, error) {
	payload := chain.MemoDigest(message)

	blockhash, err := r.client.LatestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, payload, fmt.Errorf("memo transaction: %w", err)
	}

	tx, err := chain.BuildSelfTransferWithMemo(key, []byte(payload), blockhash)
	if err != nil {
		return solana.Signature{}, payload, fmt.Errorf("memo transaction: %w", err)
	}

	sig, err := r.client.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, payload, fmt.Errorf("memo transaction: %w", err)
	}

	if err := r.confirm(ctx, sig, "Waiting for transaction confirmation"); err != nil {
		return sig, payload, fmt.Errorf("memo transaction: %w", err)
	}

	r.printf("📝 Transaction sent with data: %s\n", color.GreenString(payload))
	r.logger.Debug("memo confirmed", zap.Stringer("signature", sig))
	return sig, payload, nil
}

// Balance fetches and prints the account balance.
func (r *Runner) Balance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	balance, err := r.client.GetBalance(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}

	r.printf("💰 Wallet balance: %s\n", chain.FormatBalance(balance))
	return balance, nil
}

// History fetches and prints the signatures involving account.
func (r *Runner) History(ctx context.Context, account solana.PublicKey, limit int) ([]api.Signature, error) {
	history, err := r.client.GetSignatures(ctx, account, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	r.printf("📜 Transaction signatures: %d\n", len(history))
	PrintHistory(r.out, history)
	return history, nil
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
