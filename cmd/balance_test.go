package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/chinmay1088/insight/api"
	"github.com/chinmay1088/insight/api/apitest"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newScriptedClient(responses ...*api.Response) (*api.Client, *apitest.Transport) {
	logger := log.New()
	logger.SetOutput(io.Discard)

	transport := apitest.NewTransport(responses...)
	return api.NewClient("http://insight.test/api", api.WithTransport(transport), api.WithLogger(logger)), transport
}

func TestFetchAddressAmounts(t *testing.T) {
	client, transport := newScriptedClient(
		apitest.JSON(200, `150000000`),
		apitest.JSON(200, `0`),
		apitest.JSON(200, `250000000`),
		apitest.JSON(200, `100000000`),
	)

	amounts, err := fetchAddressAmounts(context.Background(), client, "t1abc")
	require.NoError(t, err)
	require.Equal(t, []addressAmount{
		{Label: "Balance", Value: json.Number("150000000")},
		{Label: "Unconfirmed", Value: json.Number("0")},
		{Label: "Received", Value: json.Number("250000000")},
		{Label: "Sent", Value: json.Number("100000000")},
	}, amounts)

	var paths []string
	for _, req := range transport.Requests() {
		paths = append(paths, req.Path)
	}
	require.Equal(t, []string{
		"/addr/t1abc/balance",
		"/addr/t1abc/unconfirmedBalance",
		"/addr/t1abc/totalReceived",
		"/addr/t1abc/totalSent",
	}, paths)
}

func TestDisplayAddressBalance(t *testing.T) {
	client, _ := newScriptedClient(
		apitest.JSON(200, `150000000`),
		apitest.JSON(200, `0`),
		apitest.JSON(200, `250000000`),
		apitest.JSON(200, `100000000`),
	)

	var buf bytes.Buffer
	require.NoError(t, displayAddressBalance(context.Background(), &buf, client, "t1abc", "2"))

	out := buf.String()
	require.Contains(t, out, "t1abc")
	require.Contains(t, out, "1.50000000 BTC (150000000 sat)")
	require.Contains(t, out, "Fiat: 3.00")
	require.Contains(t, out, "2.50000000 BTC")
}

func TestDisplayAddressBalanceErrors(t *testing.T) {
	client, _ := newScriptedClient(apitest.JSON(400, `Invalid address`))

	var buf bytes.Buffer
	err := displayAddressBalance(context.Background(), &buf, client, "bad", nil)
	require.ErrorIs(t, err, api.ErrBlockchainCall)
	require.Empty(t, buf.String())

	client, _ = newScriptedClient(
		apitest.JSON(400, `{"error": "Invalid address"}`),
		apitest.JSON(200, `0`),
		apitest.JSON(200, `0`),
		apitest.JSON(200, `0`),
	)
	client.SetThrowOnNotOkResponse(false)

	buf.Reset()
	require.NoError(t, displayAddressBalance(context.Background(), &buf, client, "bad", nil))
	require.Contains(t, buf.String(), "Invalid address")
}
