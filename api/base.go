package api

import (
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// Client talks to a Solana cluster over JSON-RPC.
type Client struct {
	rpc            *rpc.Client
	network        string
	endpoint       string
	commitment     rpc.CommitmentType
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *zap.Logger
}

// Options configures NewClient. Zero values select the defaults.
type Options struct {
	Network        string
	Endpoint       string // overrides the network's public endpoint
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	Logger         *zap.Logger
}

// NewClient creates a client at "confirmed" commitment.
func NewClient(opts Options) (*Client, error) {
	network := NormalizeNetwork(opts.Network)
	if network == "" {
		network = DefaultNetwork
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		var err error
		endpoint, err = RPCForNetwork(network)
		if err != nil {
			return nil, err
		}
	}

	c := &Client{
		rpc:            rpc.New(endpoint),
		network:        network,
		endpoint:       endpoint,
		commitment:     rpc.CommitmentConfirmed,
		confirmTimeout: opts.ConfirmTimeout,
		pollInterval:   opts.PollInterval,
		logger:         opts.Logger,
	}
	if c.confirmTimeout <= 0 {
		c.confirmTimeout = DefaultConfirmTimeout
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	c.logger.Debug("solana client ready",
		zap.String("network", c.network),
		zap.String("endpoint", c.endpoint),
		zap.String("commitment", string(c.commitment)))

	return c, nil
}

// Network returns the cluster name the client was created for.
func (c *Client) Network() string {
	return c.network
}

// Endpoint returns the RPC URL in use.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// IsMainnet returns true if the client points at mainnet-beta
func (c *Client) IsMainnet() bool {
	return c.network == NetworkMainnet
}

// ExplorerURL links a transaction signature on the Solana explorer.
func (c *Client) ExplorerURL(signature string) string {
	switch c.network {
	case NetworkMainnet:
		return fmt.Sprintf("https://explorer.solana.com/tx/%s", signature)
	case NetworkLocalnet:
		return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=custom&customUrl=%s", signature, c.endpoint)
	default:
		return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, c.network)
	}
}
