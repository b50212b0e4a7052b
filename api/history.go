package api

import (
	"context"
	"fmt"
)

// HistoryPage is called after every page fetched by History
type HistoryPage func(fetched, total int)

// History collects every transaction touching addresses by walking
// /addrs/{csv}/txs in windows of pageSize.
func (c *Client) History(ctx context.Context, addresses []string, pageSize int, onPage HistoryPage) ([]Value, error) {
	if pageSize <= 0 {
		pageSize = DefaultHistoryPageSize
	}

	var items []Value
	for from := 0; ; {
		to := from + pageSize
		body, err := c.GetTransactionsForMultipleAddresses(ctx, addresses, &from, &to)
		if err != nil {
			return nil, err
		}

		total, err := lookupInt(body, "totalItems")
		if err != nil {
			return nil, fmt.Errorf("history page %d-%d: %w", from, to, err)
		}
		pageItems, err := Lookup(body, "items")
		if err != nil {
			return nil, fmt.Errorf("history page %d-%d: %w", from, to, err)
		}
		list, ok := pageItems.([]any)
		if !ok {
			return nil, fmt.Errorf("history page %d-%d: %w", from, to,
				&KeyError{Path: []string{"items"}, Reason: fmt.Sprintf("expected array, got %T", pageItems)})
		}

		items = append(items, list...)
		if onPage != nil {
			onPage(len(items), total)
		}

		if len(list) == 0 || len(items) >= total {
			return items, nil
		}
		from = to
	}
}

func lookupInt(v Value, keys ...string) (int, error) {
	found, err := Lookup(v, keys...)
	if err != nil {
		return 0, err
	}
	n, err := Satoshis(found)
	if err != nil {
		return 0, &KeyError{Path: keys, Reason: err.Error()}
	}
	return int(n), nil
}
