package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingTopMovies indicates the document parsed but lacks the top_movies list.
var ErrMissingTopMovies = errors.New("dataset missing top_movies list")

type document struct {
	TopMovies *[]Record `json:"top_movies"`
}

// ReadRecords parses the JSON document at path and returns its raw records.
func ReadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if doc.TopMovies == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrMissingTopMovies)
	}

	return *doc.TopMovies, nil
}

// Load reads the dataset at path and returns the flattened rows.
func Load(path string) ([]Row, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	return Flatten(records), nil
}
