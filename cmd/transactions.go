package cmd

import (
	"fmt"

	"github.com/chinmay1088/insight/api"
	"github.com/spf13/cobra"
)

var (
	txsBlockFlag   string
	txsAddressFlag string
)

var txCmd = &cobra.Command{
	Use:   "tx <txid>",
	Short: "Show a decoded transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := newClient().GetTransaction(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch transaction: %w", err)
		}
		return printValue(cmd.OutOrStdout(), tx)
	},
}

var rawTxCmd = &cobra.Command{
	Use:   "rawtx <txid>",
	Short: "Show the hex-encoded transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := newClient().GetRawTransaction(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch raw transaction: %w", err)
		}
		return printValue(cmd.OutOrStdout(), tx)
	},
}

var txsCmd = &cobra.Command{
	Use:   "txs",
	Short: "List transactions of a block or an address",
	Long: `List the transactions of a block or of an address (one page, as served by /txs/).

Examples:
  insight txs --block <hash>
  insight txs --address <address>`,
	Args: cobra.NoArgs,
	RunE: runTxs,
}

func init() {
	txsCmd.Flags().StringVar(&txsBlockFlag, "block", "", "Block hash")
	txsCmd.Flags().StringVar(&txsAddressFlag, "address", "", "Address")
	txsCmd.MarkFlagsMutuallyExclusive("block", "address")
	txsCmd.MarkFlagsOneRequired("block", "address")
}

func runTxs(cmd *cobra.Command, args []string) error {
	client := newClient()

	var (
		txs api.Value
		err error
	)
	if txsBlockFlag != "" {
		txs, err = client.GetTransactionsByBlock(cmd.Context(), txsBlockFlag)
	} else {
		txs, err = client.GetTransactionsByAddress(cmd.Context(), txsAddressFlag)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return printValue(cmd.OutOrStdout(), txs)
}
