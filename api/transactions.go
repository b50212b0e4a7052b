package api

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// GetTransaction fetches a decoded transaction
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (Value, error) {
	if err := requireArgument(!isBlank(transactionID), "Transaction Id parameter is required"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, pathOf("tx", transactionID), nil)
}

// GetRawTransaction fetches the hex-encoded transaction
func (c *Client) GetRawTransaction(ctx context.Context, transactionID string) (Value, error) {
	if err := requireArgument(!isBlank(transactionID), "Transaction Id parameter is required"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, pathOf("rawtx", transactionID), nil)
}

// GetTransactions queries /txs/ by block hash or address.
// option must be TxOptionAddress or TxOptionBlock.
func (c *Client) GetTransactions(ctx context.Context, option, argument string) (Value, error) {
	if err := requireArgument(
		slices.Contains(transactionQueryAllowedOptions, option),
		fmt.Sprintf(
			"Transactions can be queried with options [%s] received [%s]",
			strings.Join(transactionQueryAllowedOptions, ","),
			option,
		),
	); err != nil {
		return nil, err
	}

	if err := requireArgument(!isBlank(argument), fmt.Sprintf("Invalid %s passed to transaction querying", option)); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set(option, argument)

	return c.SendGet(ctx, "/txs/", query)
}

// GetTransactionsByBlock lists the transactions of a block
func (c *Client) GetTransactionsByBlock(ctx context.Context, hash string) (Value, error) {
	return c.GetTransactions(ctx, TxOptionBlock, hash)
}

// GetTransactionsByAddress lists the transactions of an address
func (c *Client) GetTransactionsByAddress(ctx context.Context, address string) (Value, error) {
	return c.GetTransactions(ctx, TxOptionAddress, address)
}

// GetTransactionsForMultipleAddresses lists transactions touching any of
// addresses. from and to are sent only when both are set; the server then
// answers with pagination details and the transactions under "items".
func (c *Client) GetTransactionsForMultipleAddresses(ctx context.Context, addresses []string, from, to *int) (Value, error) {
	if err := requireArgument(len(addresses) > 0 && !hasBlank(addresses), "Argument `addresses` is not a list of addresses"); err != nil {
		return nil, err
	}

	var query url.Values
	if from != nil && to != nil {
		query = url.Values{}
		query.Set("from", strconv.Itoa(*from))
		query.Set("to", strconv.Itoa(*to))
	}

	return c.SendGet(ctx, "/addrs/"+addressList(addresses)+"/txs", query)
}
