package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:       "export {employees|suppliers|orders}",
	Short:     "Write a collection to an .xlsx workbook",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"employees", "suppliers", "orders"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		container, closeStore, err := buildServices(ctx, cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer closeStore()

		out := exportOutput
		if out == "" {
			out = args[0] + ".xlsx"
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()

		switch args[0] {
		case "employees":
			err = container.Export.ExportEmployees(ctx, f)
		case "suppliers":
			err = container.Export.ExportSuppliers(ctx, f)
		default:
			err = container.Export.ExportOrders(ctx, f)
		}
		if err != nil {
			_ = os.Remove(out)
			return fmt.Errorf("exporting %s: %w", args[0], err)
		}
		logger.Info("Export written", slog.String("collection", args[0]), slog.String("file", out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default <collection>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
