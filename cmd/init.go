package cmd

import (
	"fmt"

	"github.com/chinmay1088/nenrin/wallet"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the wallet key file",
	Long: `Create a new wallet key file without touching the network.

The key file stores the 64-byte secret key as a plain JSON array, the same
format solana-keygen writes. Anyone who can read the file controls the
wallet; use 'nenrin backup' for an encrypted copy.

If the key file already exists it is loaded and left unchanged.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	key, created, err := wallet.LoadOrCreate(keypairFlag)
	if err != nil {
		return fmt.Errorf("failed to initialize wallet: %w", err)
	}

	if created {
		fmt.Println("✅ Wallet created successfully!")
	} else {
		fmt.Println("✅ Wallet already exists")
	}
	fmt.Printf("🔑 Address: %s\n", key.PublicKey())
	fmt.Printf("📁 Key file: %s\n", keypairFlag)

	if created {
		fmt.Println()
		fmt.Println("⚠️  IMPORTANT:")
		fmt.Println("   - The key file is not encrypted")
		fmt.Println("   - Run 'nenrin backup' to keep an encrypted copy")
	}

	return nil
}
