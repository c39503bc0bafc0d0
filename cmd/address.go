package cmd

import (
	"fmt"

	"github.com/chinmay1088/nenrin/wallet"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Show wallet address",
	Long: `Show the public key of the wallet key file.

Examples:
  nenrin address
  nenrin address --keypair other.json`,
	Args: cobra.NoArgs,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	key, err := wallet.Load(keypairFlag)
	if err != nil {
		return fmt.Errorf("%w. Run 'nenrin init' to create a wallet", err)
	}

	if quietFlag {
		fmt.Println(key.PublicKey())
		return nil
	}

	fmt.Println("🔑 Your wallet address:")
	fmt.Printf("   %s\n", key.PublicKey())
	return nil
}
