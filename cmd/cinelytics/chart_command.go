package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinelytics/internal/chart"
	"cinelytics/internal/dataset"
)

func newChartCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Render the title-by-decade chart without persisting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows, err := dataset.Load(cfg.Paths.Dataset)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			rendered, err := chart.Render(rows, chart.Options{
				Width: cfg.Chart.Width,
				Color: chart.ColorForWriter(writer),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(writer, rendered)
			return nil
		},
	}
}
