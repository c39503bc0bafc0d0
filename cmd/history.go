package cmd

import (
	"github.com/spf13/cobra"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:     "history [address]",
	Aliases: []string{"transactions", "tx"},
	Short:   "Show transaction signature history",
	Long: `Show the signatures of transactions involving the wallet (or the given
address), newest first, with slot, block time, status and memo.

Examples:
  nenrin history              # Full history
  nenrin history --limit 10   # Last 10 transactions`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "l", 0, "maximum signatures to show (0 shows the full history)")
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	_, err = env.runner.History(cmd.Context(), account, historyLimitFlag)
	return err
}
