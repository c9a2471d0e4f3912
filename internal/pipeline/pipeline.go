package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"cinelytics/internal/chart"
	"cinelytics/internal/config"
	"cinelytics/internal/dataset"
	"cinelytics/internal/logging"
	"cinelytics/internal/relational"
	"cinelytics/internal/stats"
	"cinelytics/internal/store"
)

// Options adjusts a single pipeline run.
type Options struct {
	// SkipChart suppresses the chart render even when the config enables it.
	SkipChart bool
	// ChartWriter receives the rendered chart. Defaults to stdout.
	ChartWriter io.Writer
}

// Result collects what one run produced.
type Result struct {
	RunID        string
	RowCount     int
	Summary      *stats.Summary
	Tables       *relational.Tables
	Counts       *store.ExportCounts
	DatabasePath string
}

// Run executes the full pipeline: load, aggregate, chart, build, export.
//
// It is the single place failures are logged and classified; stages
// themselves return plain errors. A stage failure terminates the run with no
// rollback of tables written before it.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	log := logger.With(logging.String(logging.FieldRunID, runID))

	fail := func(marker error, stage, operation string, err error) error {
		wrapped := Wrap(marker, stage, operation, "", err)
		log.Error("pipeline stage failed",
			logging.String(logging.FieldStage, stage),
			logging.Error(err),
		)
		return wrapped
	}

	rows, err := dataset.Load(cfg.Paths.Dataset)
	if err != nil {
		return nil, fail(ErrLoad, "load", "read dataset", err)
	}
	log.Info("dataset loaded",
		logging.String(logging.FieldStage, "load"),
		logging.Int(logging.FieldRows, len(rows)),
		logging.String("path", cfg.Paths.Dataset),
	)

	summary, err := stats.Summarize(rows, cfg.Analytics.TopDirectors, cfg.Analytics.TopActors)
	if err != nil {
		return nil, fail(ErrVisualize, "visualize", "summarize", err)
	}
	log.Info("aggregates computed",
		logging.String(logging.FieldStage, "visualize"),
		logging.Int("decades", len(summary.RatingsByDecade)),
	)

	if cfg.Chart.Enabled && !opts.SkipChart {
		writer := opts.ChartWriter
		if writer == nil {
			writer = os.Stdout
		}
		rendered, err := chart.Render(rows, chart.Options{
			Width: cfg.Chart.Width,
			Color: chart.ColorForWriter(writer),
		})
		if err != nil {
			return nil, fail(ErrVisualize, "visualize", "render chart", err)
		}
		fmt.Fprintln(writer, rendered)
	}

	tables, err := relational.Build(rows)
	if err != nil {
		return nil, fail(ErrTableBuild, "build", "derive tables", err)
	}
	log.Info("tables derived",
		logging.String(logging.FieldStage, "build"),
		logging.Int("movies", len(tables.Movies)),
		logging.Int("directors", len(tables.Directors)),
		logging.Int("genres", len(tables.Genres)),
	)

	st, err := store.Open(cfg.Paths.Database)
	if err != nil {
		return nil, fail(ErrStorage, "export", "open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			log.Warn("close database", logging.Error(closeErr))
		}
	}()

	counts, err := st.Export(ctx, tables)
	if err != nil {
		return nil, fail(ErrStorage, "export", "write tables", err)
	}
	log.Info("export complete",
		logging.String(logging.FieldStage, "export"),
		logging.Int(logging.FieldRows, counts.Movies+counts.Directors+counts.Genres+counts.MovieDirectors+counts.MovieGenres),
		logging.String("database", st.Path()),
	)

	return &Result{
		RunID:        runID,
		RowCount:     len(rows),
		Summary:      summary,
		Tables:       tables,
		Counts:       counts,
		DatabasePath: st.Path(),
	}, nil
}
