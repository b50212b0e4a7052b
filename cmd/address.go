package cmd

import (
	"fmt"

	"github.com/chinmay1088/insight/api"
	"github.com/spf13/cobra"
)

var (
	addrNoTxListFlag bool
	addrFromFlag     int
	addrToFlag       int
)

var addrCmd = &cobra.Command{
	Use:   "addr <address>",
	Short: "Show an address summary",
	Long: `Show balances and the transaction id list of an address.

Examples:
  insight addr <address>
  insight addr <address> --no-tx-list
  insight addr <address> --from 0 --to 50`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := newClient().GetAddress(cmd.Context(), args[0], addrNoTxListFlag, addrFromFlag, addrToFlag)
		if err != nil {
			return fmt.Errorf("failed to fetch address: %w", err)
		}
		return printValue(cmd.OutOrStdout(), summary)
	},
}

var utxoCmd = &cobra.Command{
	Use:   "utxo <address> [address...]",
	Short: "List unspent outputs",
	Long: `List the unspent outputs of one or more addresses. Several addresses are
queried in a single request.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		var (
			utxos api.Value
			err   error
		)
		if len(args) == 1 {
			utxos, err = client.GetAddressUnspentOutputs(cmd.Context(), args[0])
		} else {
			utxos, err = client.GetMultipleAddressesUnspentOutputs(cmd.Context(), args)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch unspent outputs: %w", err)
		}
		return printValue(cmd.OutOrStdout(), utxos)
	},
}

func init() {
	addrCmd.Flags().BoolVar(&addrNoTxListFlag, "no-tx-list", false, "Omit the transaction id list")
	addrCmd.Flags().IntVar(&addrFromFlag, "from", api.DefaultAddressTxFrom, "First transaction index")
	addrCmd.Flags().IntVar(&addrToFlag, "to", api.DefaultAddressTxTo, "Last transaction index")
}
