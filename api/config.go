package api

import (
	"fmt"
	"strings"
	"time"
)

// network names
const (
	NetworkDevnet   = "devnet"
	NetworkTestnet  = "testnet"
	NetworkMainnet  = "mainnet"
	NetworkLocalnet = "localnet"

	DefaultNetwork = NetworkDevnet
)

// RPC endpoints
const (
	DevnetSolanaRPC   = "https://api.devnet.solana.com"
	TestnetSolanaRPC  = "https://api.testnet.solana.com"
	MainnetSolanaRPC  = "https://api.mainnet-beta.solana.com"
	LocalnetSolanaRPC = "http://127.0.0.1:8899"
)

// confirmation polling
const (
	DefaultConfirmTimeout = 60 * time.Second
	DefaultPollInterval   = 500 * time.Millisecond
)

// RPCForNetwork returns the public endpoint of a named cluster.
func RPCForNetwork(network string) (string, error) {
	switch NormalizeNetwork(network) {
	case NetworkDevnet:
		return DevnetSolanaRPC, nil
	case NetworkTestnet:
		return TestnetSolanaRPC, nil
	case NetworkMainnet:
		return MainnetSolanaRPC, nil
	case NetworkLocalnet:
		return LocalnetSolanaRPC, nil
	default:
		return "", fmt.Errorf("unknown network: %s. Use devnet, testnet, mainnet or localnet", network)
	}
}

// NormalizeNetwork lowercases network and maps common aliases.
func NormalizeNetwork(network string) string {
	network = strings.ToLower(strings.TrimSpace(network))
	switch network {
	case "mainnet-beta":
		return NetworkMainnet
	case "localhost", "local":
		return NetworkLocalnet
	}
	return network
}

// SupportsAirdrop reports whether the cluster runs a faucet.
func SupportsAirdrop(network string) bool {
	return NormalizeNetwork(network) != NetworkMainnet
}
