package cmd

import (
	"fmt"
	"strconv"

	"github.com/chinmay1088/insight/api"
	"github.com/spf13/cobra"
)

var (
	blocksDateFlag  string
	blocksLimitFlag int
)

var blockCmd = &cobra.Command{
	Use:   "block <hash|height>",
	Short: "Show a block by hash or height",
	Long: `Show a block. A numeric argument is treated as a height and resolved
through /block-index first.

Examples:
  insight block 0
  insight block 00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08`,
	Args: cobra.ExactArgs(1),
	RunE: runBlock,
}

var rawBlockCmd = &cobra.Command{
	Use:   "rawblock <hash|height>",
	Short: "Show the hex-encoded block",
	Args:  cobra.ExactArgs(1),
	RunE:  runRawBlock,
}

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "List block summaries for a day",
	Long: `List block summaries mined on a given day (today by default).

Examples:
  insight blocks
  insight blocks --date 2017-09-30 --limit 10`,
	Args: cobra.NoArgs,
	RunE: runBlocks,
}

func init() {
	blocksCmd.Flags().StringVar(&blocksDateFlag, "date", "", "Day to list (YYYY-MM-DD)")
	blocksCmd.Flags().IntVarP(&blocksLimitFlag, "limit", "l", api.DefaultBlockSummaryLimit, "Maximum number of blocks")
}

// parseHeight reports whether arg is a block height rather than a hash.
// Block hashes are 64 hex characters, so shorter all-digit arguments are heights.
func parseHeight(arg string) (int64, bool) {
	if len(arg) >= 64 {
		return 0, false
	}
	height, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, false
	}
	return height, true
}

func runBlock(cmd *cobra.Command, args []string) error {
	client := newClient()

	var block api.Value
	var err error
	if height, ok := parseHeight(args[0]); ok {
		block, err = client.GetBlockByHeight(cmd.Context(), height)
	} else {
		block, err = client.GetBlock(cmd.Context(), args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to fetch block: %w", err)
	}

	return printValue(cmd.OutOrStdout(), block)
}

func runRawBlock(cmd *cobra.Command, args []string) error {
	client := newClient()

	var raw api.Value
	var err error
	if height, ok := parseHeight(args[0]); ok {
		raw, err = client.GetRawBlockByHeight(cmd.Context(), height)
	} else {
		raw, err = client.GetRawBlock(cmd.Context(), args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to fetch raw block: %w", err)
	}

	if s, ok := raw.(string); ok {
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	}
	return printValue(cmd.OutOrStdout(), raw)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	client := newClient()

	summaries, err := client.GetBlockSummaries(cmd.Context(), blocksDateFlag, blocksLimitFlag)
	if err != nil {
		return fmt.Errorf("failed to fetch block summaries: %w", err)
	}

	return printValue(cmd.OutOrStdout(), summaries)
}
