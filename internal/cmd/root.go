package cmd

import (
	"fmt"
	"os"

	"github.com/MdSufiyan005/INHACK/cli/pkg/config"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
	"github.com/MdSufiyan005/INHACK/cli/pkg/output"
	"github.com/MdSufiyan005/INHACK/cli/pkg/session"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

// sessions is the single injectable session store shared by every command
var sessions *session.Store

var rootCmd = &cobra.Command{
	Use:   "inhack-cli",
	Short: "Inhack CLI - Vendor bookkeeping from the terminal",
	Long: `Inhack CLI is a command-line client for the Inhack vendor
bookkeeping service. Record purchases and sales, schedule payment
reminders, browse nearby vendor events, and scan receipts for
automatic line-item extraction.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Error: invalid output format %q (expected text, json, or table)\n", outputFmt)
			os.Exit(1)
		}

		// Save output format to config
		config.SetString("output.format", outputFmt)

		// Load the persisted vendor session before any view logic runs
		sessions = session.Default()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/inhack/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}
