package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBlockhash = solana.Hash{1, 2, 3, 4, 5, 6, 7, 8}

func TestBuildSelfTransferWithMemo(t *testing.T) {
	wallet, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	owner := wallet.PublicKey()

	payload := []byte(MemoDigest(DefaultMessage))
	tx, err := BuildSelfTransferWithMemo(wallet, payload, testBlockhash)
	require.NoError(t, err)

	msg := tx.Message
	assert.Equal(t, testBlockhash, msg.RecentBlockhash)
	assert.Equal(t, owner, msg.AccountKeys[0], "wallet pays the fee")
	assert.Equal(t, uint8(1), msg.Header.NumRequiredSignatures)
	assert.ElementsMatch(t, solana.PublicKeySlice{owner, solana.SystemProgramID, MemoProgramID}, msg.AccountKeys)

	require.Len(t, msg.Instructions, 2)

	transfer := msg.Instructions[0]
	assert.Equal(t, solana.SystemProgramID, msg.AccountKeys[transfer.ProgramIDIndex])
	require.Len(t, transfer.Accounts, 2)
	assert.Equal(t, owner, msg.AccountKeys[transfer.Accounts[0]])
	assert.Equal(t, owner, msg.AccountKeys[transfer.Accounts[1]])
	// system Transfer: u32 index 2, u64 lamports 0
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, []byte(transfer.Data))

	memo := msg.Instructions[1]
	assert.Equal(t, MemoProgramID, msg.AccountKeys[memo.ProgramIDIndex])
	assert.Empty(t, memo.Accounts)
	assert.Equal(t, payload, []byte(memo.Data))

	require.Len(t, tx.Signatures, 1)
	require.NoError(t, tx.VerifySignatures())
}

func TestBuildAndSignValidation(t *testing.T) {
	wallet, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	owner := wallet.PublicKey()

	t.Run("missing blockhash", func(t *testing.T) {
		tx := NewTransaction(owner)
		tx.AddMemoInstruction([]byte("x"))
		tx.AddSigner(wallet)
		_, err := tx.BuildAndSign()
		require.Error(t, err)
	})

	t.Run("no instructions", func(t *testing.T) {
		tx := NewTransaction(owner)
		tx.AddSigner(wallet)
		tx.SetRecentBlockhash(testBlockhash)
		_, err := tx.BuildAndSign()
		require.Error(t, err)
	})

	t.Run("no signers", func(t *testing.T) {
		tx := NewTransaction(owner)
		tx.AddTransferInstruction(owner, owner, 0)
		tx.SetRecentBlockhash(testBlockhash)
		_, err := tx.BuildAndSign()
		require.Error(t, err)
	})

	t.Run("wrong signer", func(t *testing.T) {
		other, err := solana.NewRandomPrivateKey()
		require.NoError(t, err)

		tx := NewTransaction(owner)
		tx.AddTransferInstruction(owner, owner, 0)
		tx.AddSigner(other)
		tx.SetRecentBlockhash(testBlockhash)
		_, err = tx.BuildAndSign()
		require.Error(t, err)
	})
}

func TestMemoPayloadIsNotValidated(t *testing.T) {
	wallet, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	tx, err := BuildSelfTransferWithMemo(wallet, []byte{}, testBlockhash)
	require.NoError(t, err)
	assert.Empty(t, tx.Message.Instructions[1].Data)
}
