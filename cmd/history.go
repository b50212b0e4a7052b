package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chinmay1088/insight/api"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	historyPageSizeFlag int
	historyOutFlag      string
)

var historyCmd = &cobra.Command{
	Use:   "history <address> [address...]",
	Short: "Fetch the full transaction history of addresses",
	Long: `Fetch every transaction touching the given addresses by paging through
/addrs/{addresses}/txs, then print the collected list or save it to a file.

Examples:
  insight history <address>
  insight history <address> <address> --page-size 20
  insight history <address> --out history.json -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyPageSizeFlag, "page-size", api.DefaultHistoryPageSize, "Transactions per request")
	historyCmd.Flags().StringVar(&historyOutFlag, "out", "", "Write the history to this file instead of stdout")
}

func runHistory(cmd *cobra.Command, args []string) error {
	client := newClient()
	quiet, _ := cmd.Flags().GetBool("quiet")

	fmt.Fprintln(cmd.ErrOrStderr(), "🔄 Loading transactions...")
	startTime := time.Now()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetVisibility(!quiet),
		progressbar.OptionSetDescription("[cyan][reset] Fetching pages..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:     "[green]=[reset]",
			SaucerHead: "[green]>[reset]",
			BarStart:   "[",
			BarEnd:     "]",
		}),
	)

	items, err := client.History(cmd.Context(), args, historyPageSizeFlag, func(fetched, total int) {
		if total > 0 && bar.GetMax() != total {
			bar.ChangeMax(total)
		}
		_ = bar.Set(fetched)
	})
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())

	elapsed := time.Since(startTime)
	fmt.Fprintf(cmd.ErrOrStderr(), "⏱️ Loaded %d transactions in %v\n", len(items), elapsed.Round(time.Millisecond*10))

	if historyOutFlag == "" {
		return printValue(cmd.OutOrStdout(), items)
	}

	file, err := os.Create(historyOutFlag)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", historyOutFlag, err)
	}
	defer file.Close()

	if err := printValue(file, items); err != nil {
		return fmt.Errorf("failed to write %s: %w", historyOutFlag, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "📁 History saved to: %s\n", historyOutFlag)
	return nil
}
