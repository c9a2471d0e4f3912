package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"cinelytics/internal/dataset"
	"cinelytics/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the descriptive aggregates without persisting anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows, err := dataset.Load(cfg.Paths.Dataset)
			if err != nil {
				return err
			}
			summary, err := stats.Summarize(rows, cfg.Analytics.TopDirectors, cfg.Analytics.TopActors)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummaryTables(summary))
			return nil
		},
	}
}

var statsPrinter = message.NewPrinter(language.English)

func renderSummaryTables(summary *stats.Summary) string {
	decadeRows := make([][]string, 0, len(summary.RatingsByDecade))
	for _, entry := range summary.RatingsByDecade {
		decadeRows = append(decadeRows, []string{
			entry.Decade,
			statsPrinter.Sprintf("%.2f", entry.MeanRating),
		})
	}

	sections := []string{
		renderTable("Mean Rating by Decade",
			[]string{"Decade", "Mean Rating"},
			decadeRows,
			[]columnAlignment{alignLeft, alignRight}),
		renderTable("Top Directors",
			[]string{"Director", "Count"},
			nameCountRows(summary.TopDirectors),
			[]columnAlignment{alignLeft, alignRight}),
		renderTable("Top Actors",
			[]string{"Actors", "Count"},
			nameCountRows(summary.TopActors),
			[]columnAlignment{alignLeft, alignRight}),
	}
	return strings.Join(sections, "\n")
}

func nameCountRows(entries []stats.NameCount) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, statsPrinter.Sprintf("%d", entry.Count)})
	}
	return rows
}
