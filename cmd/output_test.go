package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/chinmay1088/insight/api"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestWriteValue(t *testing.T) {
	doc := map[string]any{
		"hash":   "abc",
		"height": json.Number("7"),
		"fee":    json.Number("0.0001"),
		"tx":     []any{"t1"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeValue(&buf, doc, "json"))
	require.JSONEq(t, `{"hash":"abc","height":7,"fee":0.0001,"tx":["t1"]}`, buf.String())

	buf.Reset()
	require.NoError(t, writeValue(&buf, doc, "YAML"))
	require.Equal(t, "fee: 0.0001\nhash: abc\nheight: 7\ntx:\n    - t1\n", buf.String())

	buf.Reset()
	require.NoError(t, writeValue(&buf, nil, "json"))
	require.Equal(t, "null\n", buf.String())
}

func TestFormatCoins(t *testing.T) {
	require.Equal(t, "0.00001321 BTC", formatCoins(1321, "BTC"))
	require.Equal(t, "12.50000000 BTCZ", formatCoins(1250000000, "BTCZ"))
	require.Equal(t, "0.00000000 BTC", formatCoins(0, "BTC"))
}

func TestFiatValue(t *testing.T) {
	tests := []struct {
		rate api.Value
		want string
	}{
		{rate: "123", want: "123.00"},
		{rate: json.Number("2.5"), want: "2.50"},
		{rate: float64(10), want: "10.00"},
	}

	for _, tt := range tests {
		got, err := fiatValue(100000000, tt.rate)
		require.NoError(t, err)
		require.Equal(t, tt.want, got.StringFixed(2))
	}

	_, err := fiatValue(1, map[string]any{})
	require.Error(t, err)
	_, err = fiatValue(1, "n/a")
	require.Error(t, err)
}

func TestParseHeight(t *testing.T) {
	height, ok := parseHeight("1000")
	require.True(t, ok)
	require.Equal(t, int64(1000), height)

	height, ok = parseHeight("-1")
	require.True(t, ok)
	require.Equal(t, int64(-1), height)

	_, ok = parseHeight("00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08")
	require.False(t, ok)

	_, ok = parseHeight("0000000000000000000000000000000000000000000000000000000000000001")
	require.False(t, ok)
}

func TestDescribeError(t *testing.T) {
	err := &api.BlockchainCallError{StatusCode: 404, Body: []byte("Not found\n")}
	require.Equal(t, "HTTP 404 Not found", describeError(err))

	err2 := &api.InvalidArgumentError{Message: "Address is required"}
	require.Equal(t, "Address is required", describeError(err2))
}
