package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/chinmay1088/insight/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	fiatFlag   bool
	symbolFlag string
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address> [address...]",
	Short: "Check address balances",
	Long: `Check the confirmed, unconfirmed, received and sent amounts of addresses.

Examples:
  insight balance <address>                 # Balances in coins and satoshis
  insight balance <address> <address>       # Several addresses
  insight balance <address> --fiat          # Add the value at the /currency rate
  insight balance <address> --symbol BTCZ   # Label amounts with another ticker`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&fiatFlag, "fiat", false, "Show the confirmed balance in fiat")
	balanceCmd.Flags().StringVar(&symbolFlag, "symbol", "BTC", "Coin ticker used to label amounts")
}

// addressAmount is one satoshi property of an address
type addressAmount struct {
	Label string
	Value api.Value
}

func runBalance(cmd *cobra.Command, args []string) error {
	client := newClient()
	w := cmd.OutOrStdout()

	var rate api.Value
	if fiatFlag {
		r, err := client.GetCurrency(cmd.Context())
		if err != nil {
			fmt.Fprintf(w, "💵 Fiat: Error fetching rate - %s\n", describeError(err))
		} else {
			rate = r
		}
	}

	fmt.Fprintln(w, "💰 Address Balances")
	fmt.Fprintf(w, "🌐 Endpoint: %s\n", client.BaseURI())
	fmt.Fprintln(w)

	for _, address := range args {
		if err := displayAddressBalance(cmd.Context(), w, client, address, rate); err != nil {
			fmt.Fprintf(w, "❌ %s: Error - %s\n", address, describeError(err))
			fmt.Fprintln(w)
		}
	}

	return nil
}

// fetchAddressAmounts reads the four satoshi properties of an address
func fetchAddressAmounts(ctx context.Context, client *api.Client, address string) ([]addressAmount, error) {
	getters := []struct {
		label string
		get   func(context.Context, string) (api.Value, error)
	}{
		{"Balance", client.GetAddressBalanceInSatoshi},
		{"Unconfirmed", client.GetAddressUnconfirmedBalanceInSatoshi},
		{"Received", client.GetAddressTotalReceivedInSatoshi},
		{"Sent", client.GetAddressTotalSentInSatoshi},
	}

	amounts := make([]addressAmount, 0, len(getters))
	for _, g := range getters {
		v, err := g.get(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", g.label, err)
		}
		amounts = append(amounts, addressAmount{Label: g.label, Value: v})
	}
	return amounts, nil
}

func displayAddressBalance(ctx context.Context, w io.Writer, client *api.Client, address string, rate api.Value) error {
	amounts, err := fetchAddressAmounts(ctx, client, address)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "📍 Address: %s\n", color.CyanString(address))
	for _, amount := range amounts {
		sat, err := api.Satoshis(amount.Value)
		if err != nil {
			// non-2xx bodies come through unchanged when the client does not fail on them
			fmt.Fprintf(w, "   %-12s %v\n", amount.Label+":", amount.Value)
			continue
		}
		fmt.Fprintf(w, "   %-12s %s (%d sat)\n", amount.Label+":", formatCoins(sat, symbolFlag), sat)

		if amount.Label == "Balance" && rate != nil {
			value, err := fiatValue(sat, rate)
			if err != nil {
				fmt.Fprintf(w, "   💵 Fiat: %v\n", err)
			} else {
				fmt.Fprintf(w, "   💵 Fiat: %s\n", value.StringFixed(2))
			}
		}
	}
	fmt.Fprintln(w)
	return nil
}
