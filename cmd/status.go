package cmd

import (
	"fmt"
	"strconv"

	"github.com/chinmay1088/insight/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusQueryFlag string

var statusCmd = &cobra.Command{
	Use:   "status [sync|peer]",
	Short: "Show explorer and node status",
	Long: `Show node information, the explorer's sync progress or its peer connection.

Examples:
  insight status                         # getInfo
  insight status --query getBestBlockHash  # Other status queries
  insight status sync                    # Block synchronisation progress
  insight status peer                    # Node connection`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"sync", "peer"},
	RunE:      runStatus,
}

var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Show the exchange rate reported by the explorer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := newClient().GetCurrency(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch currency: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "💵 Bitstamp rate: %s\n", color.GreenString("%v", rate))
		return nil
	},
}

var feeCmd = &cobra.Command{
	Use:   "fee [blocks...]",
	Short: "Estimate the fee per kB for confirmation targets",
	Long: `Estimate the fee per kB needed to confirm within the given number of blocks.

Examples:
  insight fee
  insight fee 2 6 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid confirmation target: %s", arg)
			}
			targets = append(targets, n)
		}

		fees, err := newClient().EstimateFee(cmd.Context(), targets...)
		if err != nil {
			return fmt.Errorf("failed to estimate fee: %w", err)
		}
		return printValue(cmd.OutOrStdout(), fees)
	},
}

func init() {
	statusCmd.Flags().StringVar(&statusQueryFlag, "query", api.StatusInfo, "Status query: getInfo | getDifficulty | getBestBlockHash | getLastBlockHash")
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := newClient()

	var (
		status api.Value
		err    error
	)
	switch {
	case len(args) == 0:
		status, err = client.GetStatus(cmd.Context(), statusQueryFlag)
	case args[0] == "sync":
		status, err = client.GetSyncStatus(cmd.Context())
	case args[0] == "peer":
		status, err = client.GetPeerStatus(cmd.Context())
	default:
		return fmt.Errorf("unsupported status: %s. Supported: sync, peer", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to fetch status: %w", err)
	}

	return printValue(cmd.OutOrStdout(), status)
}
