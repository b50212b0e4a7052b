package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chinmay1088/insight/api"
	"github.com/chinmay1088/insight/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	configFile string
	appConfig  *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "insight",
	Short: "Query an Insight blockchain explorer API",
	Long: `Insight is a command-line client for the Insight explorer REST API served by
bitcore-style nodes. Every command maps onto one or two GET endpoints and prints
the decoded JSON document.

Configuration:
  Flags override INSIGHT_* environment variables, which override the
  config file (~/.insight/config.yaml or --config).

Examples:
  insight endpoint https://explorer.example.org/api   # Save the API endpoint
  insight block 1000                                  # Block at height 1000
  insight tx <txid> -o yaml                           # Transaction as YAML
  insight balance <address> --fiat                    # Balances with fiat value
  insight history <address> <address> --out txs.json  # Full paged history`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ~/.insight/config.yaml)")
	rootCmd.PersistentFlags().String("url", "", "Insight API base URL")
	rootCmd.PersistentFlags().Uint32("timeout", 0, "request timeout in seconds")
	rootCmd.PersistentFlags().Bool("throw-on-not-ok", true, "fail on non-2xx responses instead of printing the body")
	rootCmd.PersistentFlags().StringP("output", "o", "", "document output format: json | yaml")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress logs and progress")

	// Add subcommands
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(rawBlockCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(rawTxCmd)
	rootCmd.AddCommand(txsCmd)
	rootCmd.AddCommand(addrCmd)
	rootCmd.AddCommand(utxoCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(currencyCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(endpointCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Insight client v%s\n", version)
	},
}

func loadConfig(cmd *cobra.Command, args []string) error {
	v, err := config.NewViper()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	for key, name := range map[string]string{
		"URL":             "url",
		"TIMEOUT":         "timeout",
		"THROW_ON_NOT_OK": "throw-on-not-ok",
		"OUTPUT":          "output",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.LoadConfig(v, configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	if quiet, _ := flags.GetBool("quiet"); quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	appConfig = cfg
	return nil
}

// newClient builds an API client from the loaded configuration
func newClient() *api.Client {
	return api.NewClient(
		appConfig.URL,
		api.WithHTTPClient(&http.Client{Timeout: time.Duration(appConfig.Timeout) * time.Second}),
		api.WithThrowOnNotOkResponse(appConfig.ThrowOnNotOk),
		api.WithLogger(log.StandardLogger()),
	)
}
