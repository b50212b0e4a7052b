package api

import "time"

// DefaultBaseURI is used by the CLI when no endpoint has been configured.
const DefaultBaseURI = "http://localhost:3001/api"

// DefaultTimeout bounds every request issued by the default HTTP transport.
const DefaultTimeout = 30 * time.Second

// Transaction query options accepted by /txs/
const (
	TxOptionAddress = "address"
	TxOptionBlock   = "block"
)

// Address properties served by /addr/{addr}/{prop}, values in satoshis
const (
	PropertyBalance            = "balance"
	PropertyTotalReceived      = "totalReceived"
	PropertyTotalSent          = "totalSent"
	PropertyUnconfirmedBalance = "unconfirmedBalance"
)

// Pagination defaults
const (
	DefaultBlockSummaryLimit = 100
	DefaultAddressTxFrom     = 0
	DefaultAddressTxTo       = 1000
	DefaultHistoryPageSize   = 50
)

var transactionQueryAllowedOptions = []string{TxOptionAddress, TxOptionBlock}
