package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetBlock fetches a block by hash
func (c *Client) GetBlock(ctx context.Context, hash string) (Value, error) {
	if err := requireArgument(!isBlank(hash), "Block hash parameter is required"); err != nil {
		return nil, err
	}

	return c.SendGet(ctx, pathOf("block", hash), nil)
}

// GetBlockHash resolves a block height into its hash
func (c *Client) GetBlockHash(ctx context.Context, index int64) (string, error) {
	if err := requireArgument(index >= 0, "Block index parameter must be a non-negative height"); err != nil {
		return "", err
	}

	body, err := c.SendGet(ctx, "/block-index/"+strconv.FormatInt(index, 10), nil)
	if err != nil {
		return "", err
	}

	hash, err := LookupString(body, "blockHash")
	if err != nil {
		return "", fmt.Errorf("block index %d: %w", index, err)
	}
	return hash, nil
}

// GetBlockByHeight resolves the hash at index, then fetches that block
func (c *Client) GetBlockByHeight(ctx context.Context, index int64) (Value, error) {
	hash, err := c.GetBlockHash(ctx, index)
	if err != nil {
		return nil, err
	}

	return c.GetBlock(ctx, hash)
}

// GetBlockSummaries lists blocks mined on date (YYYY-MM-DD, empty for today).
// A non-positive limit uses DefaultBlockSummaryLimit.
func (c *Client) GetBlockSummaries(ctx context.Context, date string, limit int) (Value, error) {
	if limit <= 0 {
		limit = DefaultBlockSummaryLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if date != "" {
		query.Set("date", date)
	}

	return c.SendGet(ctx, "/blocks", query)
}

// GetCurrency returns the exchange rate reported under data.bitstamp
func (c *Client) GetCurrency(ctx context.Context) (Value, error) {
	body, err := c.SendGet(ctx, "/currency", nil)
	if err != nil {
		return nil, err
	}

	return Lookup(body, "data", "bitstamp")
}

// GetRawBlock returns the hex-encoded block
func (c *Client) GetRawBlock(ctx context.Context, hash string) (Value, error) {
	if err := requireArgument(!isBlank(hash), "Block hash parameter is required"); err != nil {
		return nil, err
	}

	body, err := c.SendGet(ctx, pathOf("rawblock", hash), nil)
	if err != nil {
		return nil, err
	}

	return Lookup(body, "rawblock")
}

// GetRawBlockByHeight resolves the hash at index, then fetches the raw block
func (c *Client) GetRawBlockByHeight(ctx context.Context, index int64) (Value, error) {
	hash, err := c.GetBlockHash(ctx, index)
	if err != nil {
		return nil, err
	}

	return c.GetRawBlock(ctx, hash)
}
