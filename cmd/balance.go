package cmd

import (
	"fmt"

	chain "github.com/chinmay1088/nenrin/chains/solana"
	"github.com/chinmay1088/nenrin/wallet"
	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check SOL balance",
	Long: `Check the SOL balance of the wallet, or of any address given as argument.

Examples:
  nenrin balance
  nenrin balance 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	account, err := targetAccount(args)
	if err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	env.printNetwork()
	env.printf("📍 Address: %s\n", account)

	balance, err := env.runner.Balance(cmd.Context(), account)
	if err != nil {
		return err
	}

	if balance == 0 {
		env.printf("   ℹ️ Note: This account doesn't exist on-chain yet. Fund it to activate it.\n")
	}
	return nil
}

// targetAccount returns the address argument if present, otherwise the
// public key of the wallet key file.
func targetAccount(args []string) (solana.PublicKey, error) {
	if len(args) == 1 {
		return chain.ParseAddress(args[0])
	}

	key, err := wallet.Load(keypairFlag)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%w. Run 'nenrin init' to create a wallet", err)
	}
	return key.PublicKey(), nil
}
