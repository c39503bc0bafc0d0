package cmd

import (
	"fmt"
	"strings"

	chain "github.com/chinmay1088/nenrin/chains/solana"
	"github.com/chinmay1088/nenrin/wallet"
	"github.com/spf13/cobra"
)

var memoYesFlag bool

var memoCmd = &cobra.Command{
	Use:   "memo [message]",
	Short: "Write a message digest on-chain",
	Long: `Send one transaction containing a zero-value transfer to yourself and a
memo instruction carrying the hex SHA-256 digest of the message.

Only the network fee is deducted from the wallet.

Examples:
  nenrin memo                  # Digest of "Hello Nenrin"
  nenrin memo "release v1.2"   # Digest of another message`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMemo,
}

func init() {
	memoCmd.Flags().BoolVarP(&memoYesFlag, "yes", "y", false, "skip the mainnet confirmation prompt")
}

func runMemo(cmd *cobra.Command, args []string) error {
	message := chain.DefaultMessage
	if len(args) == 1 {
		message = args[0]
	}

	key, err := wallet.Load(keypairFlag)
	if err != nil {
		return fmt.Errorf("%w. Run 'nenrin init' to create a wallet", err)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	env.printNetwork()
	env.printf("🔑 Wallet: %s\n", key.PublicKey())
	env.printf("   Digest of: %q\n", message)

	if env.client.IsMainnet() && !memoYesFlag && !getTransactionConfirmation() {
		fmt.Println("❌ Transaction cancelled")
		return nil
	}

	env.printf("⏳ Sending transaction...\n")
	sig, _, err := env.runner.SendMemo(cmd.Context(), key, message)
	if err != nil {
		return err
	}

	env.printf("📝 Signature: %s\n", sig)
	env.printf("🔗 Explorer: %s\n", env.client.ExplorerURL(sig.String()))
	return nil
}

func getTransactionConfirmation() bool {
	fmt.Println()
	fmt.Printf("🚨 You are on main network. This transaction spends real SOL on fees.\n")
	fmt.Printf("Press y to confirm or n to stop (y/n): ")

	var response string
	fmt.Scanln(&response)

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
