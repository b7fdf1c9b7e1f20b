package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var endPeriodCmd = &cobra.Command{
	Use:       "end-period {employees|suppliers}",
	Short:     "Clear the transactions of every account in a ledger",
	Long:      "end-period keeps every account and its principal but removes all of this period's transactions.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"employees", "suppliers"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		container, closeStore, err := buildServices(ctx, cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer closeStore()

		if args[0] == "employees" {
			err = container.Employees.EndPeriod(ctx)
		} else {
			err = container.Suppliers.EndPeriod(ctx)
		}
		if err != nil {
			return err
		}
		logger.Info("Period closed", slog.String("ledger", args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endPeriodCmd)
}
