package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/chinmay1088/insight/api"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	for _, base := range []string{server.URL + "/api", server.URL + "/api/"} {
		transport := api.NewHTTPTransport(base, nil)

		resp, err := transport.Get(context.Background(), "/block/abc", url.Values{"limit": {"10"}})
		require.NoError(t, err)
		require.Equal(t, http.StatusTeapot, resp.StatusCode)
		require.False(t, resp.OK())
		require.JSONEq(t, `{"ok": true}`, string(resp.Body))
		require.Equal(t, "/api/block/abc", gotPath)
		require.Equal(t, "limit=10", gotQuery)
	}
}

func TestClientOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/block-index/7":
			_ = json.NewEncoder(w).Encode(map[string]string{"blockHash": "h7"})
		case "/api/block/h7":
			_ = json.NewEncoder(w).Encode(map[string]any{"hash": "h7", "height": 7})
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := api.NewClient(server.URL+"/api/", api.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))

	block, err := client.GetBlockByHeight(context.Background(), 7)
	require.NoError(t, err)
	hash, err := api.LookupString(block, "hash")
	require.NoError(t, err)
	require.Equal(t, "h7", hash)

	_, err = client.GetBlock(context.Background(), "missing")
	require.ErrorIs(t, err, api.ErrBlockchainCall)
}

func TestHTTPTransportContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := api.NewHTTPTransport(server.URL, nil).Get(ctx, "/sync", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestClientEscapesPathSegments(t *testing.T) {
	type seen struct{ path, query string }
	var got []seen
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, seen{path: r.URL.EscapedPath(), query: r.URL.RawQuery})
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL + "/api")
	ctx := context.Background()

	_, err := client.GetAddress(ctx, "a#b", true, 0, 10)
	require.NoError(t, err)
	_, err = client.GetAddress(ctx, "a?x=1", false, 0, 10)
	require.NoError(t, err)
	_, err = client.GetAddressUnspentOutputs(ctx, "x/balance")
	require.NoError(t, err)
	_, err = client.GetMultipleAddressesUnspentOutputs(ctx, []string{"a", "b,c"})
	require.NoError(t, err)
	_, err = client.GetTransaction(ctx, "t#1")
	require.NoError(t, err)

	require.Equal(t, []seen{
		{path: "/api/addr/a%23b", query: "from=0&noTxList=1&to=10"},
		{path: "/api/addr/a%3Fx=1", query: "from=0&noTxList=0&to=10"},
		{path: "/api/addr/x%2Fbalance/utxo"},
		{path: "/api/addrs/a,b%2Cc/utxo"},
		{path: "/api/tx/t%231"},
	}, got)
}
