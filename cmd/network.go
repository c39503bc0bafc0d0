package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chinmay1088/nenrin/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const configDirName = ".nenrin"

var networkCmd = &cobra.Command{
	Use:   "network [devnet|testnet|mainnet|localnet]",
	Short: "Show or change network",
	Long: `Show the current network or switch the cluster used by later runs.

Airdrops only work on devnet, testnet and a local test validator.

Examples:
  nenrin network            # Show current network
  nenrin network testnet    # Switch to testnet
  nenrin network devnet     # Switch back to devnet`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{api.NetworkDevnet, api.NetworkTestnet, api.NetworkMainnet, api.NetworkLocalnet},
	RunE:      runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network := api.NormalizeNetwork(args[0])
	if _, err := api.RPCForNetwork(network); err != nil {
		return err
	}

	return setNetwork(network)
}

func showCurrentNetwork() error {
	network, err := getCurrentNetwork()
	if err != nil {
		return err
	}

	endpoint, _ := api.RPCForNetwork(network)
	fmt.Printf("🌐 Current network: %s\n", color.GreenString(network))
	fmt.Printf("   RPC: %s\n", endpoint)
	if !api.SupportsAirdrop(network) {
		fmt.Println("⚠️  Airdrops are not available on this network")
	}

	return nil
}

func setNetwork(network string) error {
	configDir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	networkPath := filepath.Join(configDir, "network.txt")
	if err := os.WriteFile(networkPath, []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}

	fmt.Printf("🌐 Switched to %s\n", strings.ToUpper(network))
	if network == api.NetworkMainnet {
		fmt.Println()
		fmt.Println("⚠️  You are now on MAINNET")
		fmt.Println("   - Transactions cost real SOL")
		fmt.Println("   - New wallets cannot be funded by airdrop")
	}

	return nil
}

// getCurrentNetwork returns the persisted network, falling back to devnet
// when nothing valid is stored.
func getCurrentNetwork() (string, error) {
	dir, err := configDir()
	if err != nil {
		return api.DefaultNetwork, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, "network.txt"))
	if err != nil {
		return api.DefaultNetwork, nil
	}

	network := api.NormalizeNetwork(string(data))
	if _, err := api.RPCForNetwork(network); err != nil {
		return api.DefaultNetwork, nil
	}

	return network, nil
}

func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}
