package api

// Insight API Client-
//
// Files:
//   config.go        - Default endpoint, query options and limits
//   types.go         - Decoded JSON value and typed extraction helpers
//   errors.go        - InvalidArgumentError, BlockchainCallError, KeyError
//   transport.go     - Transport interface and the HTTP implementation
//   base.go          - Core client functionality (Client, NewClient, SendGet)
//   blocks.go        - Block endpoints (block, block-index, rawblock, blocks, currency)
//   transactions.go  - Transaction endpoints (tx, rawtx, txs, addrs/txs)
//   address.go       - Address endpoints (addr, properties, utxo)
//   status.go        - Node status endpoints (status, sync, peer, estimatefee)
//   history.go       - Paged transaction history for a set of addresses
//
// Usage:
//   client := api.NewClient("https://explorer.btcz.rocks/api")  // from base.go
//   block, err := client.GetBlockByHeight(ctx, 1000)             // from blocks.go
//   balance, err := client.GetAddressBalanceInSatoshi(ctx, addr)  // from address.go
//   txs, err := client.GetTransactionsByAddress(ctx, addr)        // from transactions.go
