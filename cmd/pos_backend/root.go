package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/pos_ledger_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

// rootCmd is the base command; the server and the maintenance commands hang off it.
var rootCmd = &cobra.Command{
	Use:   "pos_backend",
	Short: "Point-of-sale backend: cart checkout, local invoices and payroll/supplier ledgers",
	Long: `pos_backend runs the point-of-sale HTTP API and offers maintenance commands
over the same local store.

Example Usage:
  pos_backend serve                      # Start the HTTP API
  pos_backend export orders -o sales.xlsx
  pos_backend end-period employees      # Clear this period's payroll payments`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
