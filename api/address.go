package api

import (
	"context"
	"net/url"
	"strconv"
)

// GetAddress fetches an address summary. noTxList drops the transaction id
// list; from and to bound it otherwise.
func (c *Client) GetAddress(ctx context.Context, address string, noTxList bool, from, to int) (Value, error) {
	if err := requireArgument(!isBlank(address), "Address is required"); err != nil {
		return nil, err
	}

	query := url.Values{}
	if noTxList {
		query.Set("noTxList", "1")
	} else {
		query.Set("noTxList", "0")
	}
	query.Set("from", strconv.Itoa(from))
	query.Set("to", strconv.Itoa(to))

	return c.SendGet(ctx, pathOf("addr", address), query)
}

// GetAddressProperty fetches a single address property. The decoded value is
// returned unchanged, normally a json.Number holding satoshis.
func (c *Client) GetAddressProperty(ctx context.Context, address, property string) (Value, error) {
	if err := requireArgument(!isBlank(address) && !isBlank(property), "`address` and `property` arguments are required"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, pathOf("addr", address, property), nil)
}

// GetAddressBalanceInSatoshi returns the confirmed balance property
func (c *Client) GetAddressBalanceInSatoshi(ctx context.Context, address string) (Value, error) {
	return c.GetAddressProperty(ctx, address, PropertyBalance)
}

// GetAddressTotalReceivedInSatoshi returns the totalReceived property
func (c *Client) GetAddressTotalReceivedInSatoshi(ctx context.Context, address string) (Value, error) {
	return c.GetAddressProperty(ctx, address, PropertyTotalReceived)
}

// GetAddressTotalSentInSatoshi returns the totalSent property
func (c *Client) GetAddressTotalSentInSatoshi(ctx context.Context, address string) (Value, error) {
	return c.GetAddressProperty(ctx, address, PropertyTotalSent)
}

// GetAddressUnconfirmedBalanceInSatoshi returns the unconfirmedBalance property
func (c *Client) GetAddressUnconfirmedBalanceInSatoshi(ctx context.Context, address string) (Value, error) {
	return c.GetAddressProperty(ctx, address, PropertyUnconfirmedBalance)
}

// GetAddressUnspentOutputs lists the UTXOs of an address
func (c *Client) GetAddressUnspentOutputs(ctx context.Context, address string) (Value, error) {
	if err := requireArgument(!isBlank(address), "Address argument is required to get unspent outputs"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, pathOf("addr", address, "utxo"), nil)
}

// GetMultipleAddressesUnspentOutputs lists the UTXOs of several addresses in one call
func (c *Client) GetMultipleAddressesUnspentOutputs(ctx context.Context, addresses []string) (Value, error) {
	if err := requireArgument(len(addresses) > 0 && !hasBlank(addresses), "Argument `addresses` is not a list of addresses"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, "/addrs/"+addressList(addresses)+"/utxo", nil)
}
