package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var inputFlag string
	var databaseFlag string

	ctx := newCommandContext(&configFlag, &inputFlag, &databaseFlag)

	rootCmd := &cobra.Command{
		Use:           "cinelytics",
		Short:         "Movie dataset ETL: flatten, aggregate, chart, and export to SQLite",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&inputFlag, "input", "i", "", "Dataset JSON path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&databaseFlag, "database", "d", "", "Database output path (overrides config)")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newChartCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
