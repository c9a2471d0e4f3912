package stats

import (
	"errors"
	"fmt"
	"sort"

	"cinelytics/internal/dataset"
)

// DecadeRating is the mean rating of all flattened rows in one decade bucket.
type DecadeRating struct {
	Decade     string
	MeanRating float64
}

// NameCount is a name with its flattened-row frequency. Frequencies count
// exploded rows, so a movie with a large cast weighs its director more
// heavily; this matches the source dataset semantics.
type NameCount struct {
	Name  string
	Count int
}

// Summary holds the descriptive aggregates of one flattened table.
type Summary struct {
	RatingsByDecade []DecadeRating
	TopDirectors    []NameCount
	TopActors       []NameCount
}

// Summarize computes mean rating per decade and the most frequent directors
// and cast members. It rejects tables that are empty or missing the derived
// decade/title fields.
func Summarize(rows []dataset.Row, directorLimit, actorLimit int) (*Summary, error) {
	if len(rows) == 0 {
		return nil, errors.New("flattened table is empty")
	}
	for i, row := range rows {
		if row.Decade == "" {
			return nil, fmt.Errorf("row %d missing decade", i)
		}
		if row.Title == "" {
			return nil, fmt.Errorf("row %d missing title", i)
		}
	}
	if directorLimit < 1 || actorLimit < 1 {
		return nil, fmt.Errorf("invalid aggregate limits: directors=%d actors=%d", directorLimit, actorLimit)
	}

	return &Summary{
		RatingsByDecade: meanRatingByDecade(rows),
		TopDirectors:    topByFrequency(rows, func(r dataset.Row) string { return r.Director }, directorLimit),
		TopActors:       topByFrequency(rows, func(r dataset.Row) string { return r.Cast }, actorLimit),
	}, nil
}

func meanRatingByDecade(rows []dataset.Row) []DecadeRating {
	sums := map[string]float64{}
	counts := map[string]int{}
	var order []string
	for _, row := range rows {
		if _, ok := counts[row.Decade]; !ok {
			order = append(order, row.Decade)
		}
		sums[row.Decade] += row.Rating
		counts[row.Decade]++
	}
	sort.Strings(order)

	result := make([]DecadeRating, 0, len(order))
	for _, decade := range order {
		result = append(result, DecadeRating{
			Decade:     decade,
			MeanRating: sums[decade] / float64(counts[decade]),
		})
	}
	return result
}

func topByFrequency(rows []dataset.Row, key func(dataset.Row) string, limit int) []NameCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	var order []string
	for i, row := range rows {
		name := key(row)
		if name == "" {
			continue
		}
		if _, ok := counts[name]; !ok {
			order = append(order, name)
			firstSeen[name] = i
		}
		counts[name]++
	}

	// Count descending, first appearance breaking ties so output is stable.
	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	result := make([]NameCount, 0, len(order))
	for _, name := range order {
		result = append(result, NameCount{Name: name, Count: counts[name]})
	}
	return result
}
