package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newInsightServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/block-index/7":
			_, _ = w.Write([]byte(`{"blockHash":"h7"}`))
		case "/api/block/h7":
			_, _ = w.Write([]byte(`{"hash":"h7","height":7}`))
		case "/api/currency":
			_, _ = w.Write([]byte(`{"status":200,"data":{"bitstamp":4321.5}}`))
		default:
			http.Error(w, "Not found", http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestBlockCommand(t *testing.T) {
	server := newInsightServer(t)

	out, err := executeCommand(t, "--url", server.URL+"/api", "--output", "json", "block", "7")
	require.NoError(t, err)
	require.JSONEq(t, `{"hash":"h7","height":7}`, out)

	out, err = executeCommand(t, "--url", server.URL+"/api", "--output", "yaml", "block", "7")
	require.NoError(t, err)
	require.Equal(t, "hash: h7\nheight: 7\n", out)
}

func TestBlockCommandNotFound(t *testing.T) {
	server := newInsightServer(t)

	_, err := executeCommand(t, "--url", server.URL+"/api", "--output", "json", "block", "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}

func TestCurrencyCommand(t *testing.T) {
	server := newInsightServer(t)

	out, err := executeCommand(t, "--url", server.URL+"/api", "--output", "json", "currency")
	require.NoError(t, err)
	require.Contains(t, out, "4321.5")
}

func TestInvalidURL(t *testing.T) {
	_, err := executeCommand(t, "--url", "not a url", "--output", "json", "currency")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid config")
}

func TestQuietFlagUsage(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, flag)
	require.Equal(t, "q", flag.Shorthand)
	require.Equal(t, "suppress logs and progress", flag.Usage)
}
