// Package chart renders the decorative title-by-decade bar chart in the
// terminal. Nothing here is persisted; the render exists for the operator
// running the pipeline interactively.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"cinelytics/internal/dataset"
)

// Options controls chart geometry and styling.
type Options struct {
	// Width is the maximum bar width in characters.
	Width int
	// Color enables ANSI color on the bars.
	Color bool
}

// ColorForWriter reports whether w is an interactive terminal that can take
// ANSI color.
func ColorForWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render draws one horizontal bar per distinct title, scaled by the title's
// decade within the dataset's decade range. It rejects rows missing the
// title or decade fields.
func Render(rows []dataset.Row, opts Options) (string, error) {
	if len(rows) == 0 {
		return "", errors.New("flattened table is empty")
	}
	if opts.Width < 10 {
		opts.Width = 10
	}

	type entry struct {
		title  string
		decade string
		value  int64
	}

	seen := map[string]bool{}
	var entries []entry
	minDecade := int64(0)
	maxDecade := int64(0)
	for i, row := range rows {
		if row.Title == "" {
			return "", fmt.Errorf("row %d missing title", i)
		}
		value, err := decadeValue(row.Decade)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i, err)
		}
		if seen[row.Title] {
			continue
		}
		seen[row.Title] = true
		if len(entries) == 0 || value < minDecade {
			minDecade = value
		}
		if len(entries) == 0 || value > maxDecade {
			maxDecade = value
		}
		entries = append(entries, entry{title: row.Title, decade: row.Decade, value: value})
	}

	span := maxDecade - minDecade + 10
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Movies by Decade")
	tw.AppendHeader(table.Row{"Title", "", "Decade"})

	for _, e := range entries {
		length := int((e.value - minDecade + 10) * int64(opts.Width) / span)
		if length < 1 {
			length = 1
		}
		bar := strings.Repeat("█", length)
		if opts.Color {
			bar = text.FgHiYellow.Sprint(bar)
		}
		tw.AppendRow(table.Row{e.title, bar, e.decade})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 32},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignRight},
	})

	return tw.Render(), nil
}

func decadeValue(label string) (int64, error) {
	trimmed := strings.TrimSuffix(label, "s")
	if trimmed == label || trimmed == "" {
		return 0, fmt.Errorf("malformed decade %q", label)
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed decade %q", label)
	}
	return value, nil
}
