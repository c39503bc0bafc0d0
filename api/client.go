package api

// API Client-
//
// Files:
//   config.go  - cluster names, RPC endpoints and polling defaults
//   types.go   - Signature history entries and sentinel errors
//   base.go    - Client struct, NewClient and commitment settings
//   solana.go  - balance, airdrop, blockhash, send, confirm and history calls
//
// Usage:
//   client, err := api.NewClient(api.Options{Network: api.NetworkDevnet})
//   balance, err := client.GetBalance(ctx, wallet)
//   sig, err := client.SendTransaction(ctx, tx)
//   err = client.ConfirmTransaction(ctx, sig)
