package cmd

import (
	chain "github.com/chinmay1088/nenrin/chains/solana"
	"github.com/spf13/cobra"
)

var airdropCmd = &cobra.Command{
	Use:   "airdrop [amount]",
	Short: "Request test SOL from the faucet",
	Long: `Request test SOL for the wallet (or --to address) and wait for the
funding transaction to be confirmed. Not available on mainnet.

Faucets rate-limit requests; large amounts are often refused.

Examples:
  nenrin airdrop          # 1 SOL
  nenrin airdrop 0.5      # 0.5 SOL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAirdrop,
}

var airdropToFlag string

func init() {
	airdropCmd.Flags().StringVar(&airdropToFlag, "to", "", "fund this address instead of the wallet")
}

func runAirdrop(cmd *cobra.Command, args []string) error {
	amount := "1"
	if len(args) == 1 {
		amount = args[0]
	}

	lamports, err := chain.ParseSOL(amount)
	if err != nil {
		return err
	}

	var target []string
	if airdropToFlag != "" {
		target = []string{airdropToFlag}
	}
	account, err := targetAccount(target)
	if err != nil {
		return err
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	env.printNetwork()
	env.printf("⏳ Requesting %s for %s...\n", chain.FormatBalance(lamports), account)

	sig, err := env.runner.Airdrop(cmd.Context(), account, lamports)
	if err != nil {
		return err
	}

	env.printf("📝 Signature: %s\n", sig)
	env.printf("🔗 Explorer: %s\n", env.client.ExplorerURL(sig.String()))
	return nil
}
