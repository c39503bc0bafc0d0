package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chinmay1088/nenrin/chains/solana"
	"github.com/chinmay1088/nenrin/wallet"
	"github.com/chinmay1088/nenrin/workflow"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
)

// global flags
var (
	keypairFlag string
	networkFlag string
	rpcFlag     string
	verboseFlag bool
	quietFlag   bool
)

// demo flags
var (
	messageFlag string
	airdropFlag string
	limitFlag   int
)

// rootCmd runs the full demo when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nenrin",
	Short: "Write a memo to Solana from a file-backed test wallet",
	Long: `Nenrin loads a Solana keypair from a local key file (creating it on first
run), funds new wallets from the devnet faucet, sends a transaction that
carries the SHA-256 digest of a message through the memo program, and then
prints the wallet balance and transaction history.

Steps:
  • Load or create the key file (solana-keygen JSON format)
  • Airdrop test SOL when the key file was just created
  • Send a zero-value self-transfer with a memo instruction
  • Show balance and signature history

Examples:
  nenrin                              # Run the demo on devnet
  nenrin --message "gm"               # Write the digest of another message
  nenrin --keypair ~/.config/solana/id.json
  nenrin network testnet              # Use testnet from now on
  nenrin history --limit 10           # Last 10 signatures`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDemo,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&keypairFlag, "keypair", "k", wallet.DefaultKeypairPath, "path to the wallet key file")
	rootCmd.PersistentFlags().StringVarP(&networkFlag, "network", "n", "", "cluster to use (devnet, testnet, mainnet, localnet)")
	rootCmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "custom RPC endpoint, overrides the network's public endpoint")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress output")

	rootCmd.Flags().StringVarP(&messageFlag, "message", "m", solana.DefaultMessage, "message whose SHA-256 digest is written in the memo")
	rootCmd.Flags().StringVar(&airdropFlag, "airdrop", "1", "SOL to request for a newly created wallet")
	rootCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum signatures to show (0 shows the full history)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(airdropCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	lamports, err := solana.ParseSOL(airdropFlag)
	if err != nil {
		return fmt.Errorf("invalid --airdrop: %w", err)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := workflow.DefaultConfig()
	cfg.KeypairPath = keypairFlag
	cfg.Message = messageFlag
	cfg.AirdropLamports = lamports
	cfg.HistoryLimit = limitFlag

	env.printNetwork()

	report, err := env.runner.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	env.printf("🔗 Explorer: %s\n", env.client.ExplorerURL(report.MemoSignature.String()))
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Nenrin v%s\n", version)
	},
}
