package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinelytics/internal/logging"
	"cinelytics/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var noChart bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: load, aggregate, chart, and export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			result, err := pipeline.Run(cmd.Context(), cfg, logger, pipeline.Options{
				SkipChart:   noChart,
				ChartWriter: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummaryTables(result.Summary))
			fmt.Fprintf(out, "Exported %d movies, %d directors, %d genres to %s\n",
				result.Counts.Movies, result.Counts.Directors, result.Counts.Genres, result.DatabasePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the chart render")
	return cmd
}
