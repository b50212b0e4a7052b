package api_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/chinmay1088/insight/api"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	doc := map[string]any{
		"data": map[string]any{"bitstamp": "123"},
		"list": []any{"a"},
	}

	v, err := api.Lookup(doc, "data", "bitstamp")
	require.NoError(t, err)
	require.Equal(t, "123", v)

	v, err = api.Lookup(doc)
	require.NoError(t, err)
	require.Equal(t, doc, v)

	_, err = api.Lookup(doc, "data", "coinbase")
	require.ErrorIs(t, err, api.ErrMissingKey)
	require.Contains(t, err.Error(), "data.coinbase")

	_, err = api.Lookup(doc, "list", "x")
	require.ErrorIs(t, err, api.ErrMissingKey)

	_, err = api.Lookup(nil, "blockHash")
	require.ErrorIs(t, err, api.ErrMissingKey)

	_, err = api.LookupString(map[string]any{"blockHash": json.Number("1")}, "blockHash")
	require.ErrorIs(t, err, api.ErrMissingKey)
}

func TestSatoshis(t *testing.T) {
	tests := []struct {
		in      api.Value
		want    int64
		wantErr bool
	}{
		{in: json.Number("1321"), want: 1321},
		{in: float64(42), want: 42},
		{in: "77", want: 77},
		{in: json.Number("1.5"), wantErr: true},
		{in: float64(1.9), wantErr: true},
		{in: math.NaN(), wantErr: true},
		{in: math.Inf(1), wantErr: true},
		{in: float64(1e19), wantErr: true},
		{in: map[string]any{}, wantErr: true},
		{in: nil, wantErr: true},
	}

	for _, tt := range tests {
		got, err := api.Satoshis(tt.in)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}
}
