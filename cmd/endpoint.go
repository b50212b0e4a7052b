package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/insight/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint [url]",
	Short: "Show or change the Insight API endpoint",
	Long: `Show the endpoint in use, or save a new one to the config file.

Examples:
  insight endpoint                                  # Show current endpoint
  insight endpoint https://explorer.btcz.rocks/api  # Switch endpoint`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEndpoint,
}

func runEndpoint(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current endpoint
	if len(args) == 0 {
		return showCurrentEndpoint(cmd)
	}

	endpoint := strings.TrimSpace(args[0])

	candidate := *appConfig
	candidate.URL = endpoint
	if err := candidate.Validate(); err != nil {
		return err
	}

	path := configFile
	if path == "" {
		path = config.DefaultConfigFile()
	}
	if err := config.SaveURL(path, endpoint); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "🌐 Switched to %s\n", color.GreenString(endpoint))
	fmt.Fprintf(w, "📁 Saved in %s\n", path)
	return nil
}

func showCurrentEndpoint(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "🌐 Current endpoint: %s\n", color.GreenString(appConfig.URL))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintf(w, "   - Timeout: %ds\n", appConfig.Timeout)
	if appConfig.ThrowOnNotOk {
		fmt.Fprintf(w, "   - Non-2xx responses: %s\n", color.YellowString("fail"))
	} else {
		fmt.Fprintf(w, "   - Non-2xx responses: %s\n", color.YellowString("print body"))
	}
	fmt.Fprintf(w, "   - Output: %s\n", appConfig.Output)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	for _, line := range config.EnvDoc() {
		fmt.Fprintf(w, "   %s\n", line)
	}
	return nil
}
