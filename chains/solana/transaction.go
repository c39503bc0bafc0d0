package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// Transaction collects instructions and signers until a blockhash is known.
type Transaction struct {
	Instructions    []solana.Instruction
	Signers         []solana.PrivateKey
	FeePayer        solana.PublicKey
	RecentBlockhash solana.Hash
}

func NewTransaction(feePayer solana.PublicKey) *Transaction {
	return &Transaction{
		Instructions: make([]solana.Instruction, 0),
		Signers:      make([]solana.PrivateKey, 0),
		FeePayer:     feePayer,
	}
}

func (tx *Transaction) AddTransferInstruction(from solana.PublicKey, to solana.PublicKey, amount uint64) {
	instruction := system.NewTransferInstruction(
		amount,
		from,
		to,
	).Build()
	tx.Instructions = append(tx.Instructions, instruction)
}

// AddMemoInstruction attaches payload to the transaction through the memo
// program. No accounts are passed, so the program does not check signers.
func (tx *Transaction) AddMemoInstruction(payload []byte) {
	instruction := solana.NewInstruction(MemoProgramID, solana.AccountMetaSlice{}, payload)
	tx.Instructions = append(tx.Instructions, instruction)
}

func (tx *Transaction) AddSigner(signer solana.PrivateKey) {
	tx.Signers = append(tx.Signers, signer)
}

func (tx *Transaction) SetRecentBlockhash(blockhash solana.Hash) {
	tx.RecentBlockhash = blockhash
}

func (tx *Transaction) BuildAndSign() (*solana.Transaction, error) {
	if tx.RecentBlockhash == (solana.Hash{}) {
		return nil, fmt.Errorf("blockhash is empty")
	}

	if len(tx.Instructions) == 0 {
		return nil, fmt.Errorf("no instructions in transaction")
	}

	if len(tx.Signers) == 0 {
		return nil, fmt.Errorf("no signers provided for transaction")
	}

	stx, err := solana.NewTransaction(
		tx.Instructions,
		tx.RecentBlockhash,
		solana.TransactionPayer(tx.FeePayer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = stx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range tx.Signers {
			if key.Equals(tx.Signers[i].PublicKey()) {
				return &tx.Signers[i]
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	return stx, nil
}

// BuildSelfTransferWithMemo returns a signed transaction holding a zero
// lamport transfer from the wallet to itself followed by a memo carrying
// payload. The transfer only anchors the memo in a valid transaction.
func BuildSelfTransferWithMemo(wallet solana.PrivateKey, payload []byte, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	owner := wallet.PublicKey()

	tx := NewTransaction(owner)
	tx.AddTransferInstruction(owner, owner, 0)
	tx.AddMemoInstruction(payload)
	tx.AddSigner(wallet)
	tx.SetRecentBlockhash(recentBlockhash)

	return tx.BuildAndSign()
}
