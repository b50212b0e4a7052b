package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// Status queries accepted by /status?q=
const (
	StatusInfo          = "getInfo"
	StatusDifficulty    = "getDifficulty"
	StatusBestBlockHash = "getBestBlockHash"
	StatusLastBlockHash = "getLastBlockHash"
)

// GetStatus queries node information; q is one of the Status* constants
func (c *Client) GetStatus(ctx context.Context, q string) (Value, error) {
	if err := requireArgument(!isBlank(q), "Status query parameter is required"); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("q", q)

	return c.SendGet(ctx, "/status", query)
}

// GetSyncStatus reports the explorer's block synchronisation progress
func (c *Client) GetSyncStatus(ctx context.Context) (Value, error) {
	return c.SendGet(ctx, "/sync", nil)
}

// GetPeerStatus reports the explorer's connection to its node
func (c *Client) GetPeerStatus(ctx context.Context) (Value, error) {
	return c.SendGet(ctx, "/peer", nil)
}

// EstimateFee returns fee-per-kB estimates keyed by confirmation target.
// Without targets the server's default is used.
func (c *Client) EstimateFee(ctx context.Context, nbBlocks ...int) (Value, error) {
	var query url.Values
	if len(nbBlocks) > 0 {
		targets := make([]string, 0, len(nbBlocks))
		for _, n := range nbBlocks {
			if err := requireArgument(n > 0, "Confirmation targets must be positive"); err != nil {
				return nil, err
			}
			targets = append(targets, strconv.Itoa(n))
		}
		query = url.Values{}
		query.Set("nbBlocks", strings.Join(targets, ","))
	}

	return c.SendGet(ctx, "/utils/estimatefee", query)
}
