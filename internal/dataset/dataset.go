package dataset

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is one raw movie entry from the top_movies list. Numeric fields
// absent from the source default to zero during decoding.
type Record struct {
	Title    string     `json:"title"`
	Year     int64      `json:"year"`
	Rating   float64    `json:"rating"`
	Synopsis string     `json:"synopsis"`
	Director string     `json:"director"`
	Genre    StringList `json:"genre"`
	Cast     StringList `json:"cast"`
}

// Row is one flattened record: the raw movie expanded across a single
// (genre, cast) combination, with the derived main genre and decade bucket.
type Row struct {
	Title     string
	Year      int64
	Rating    float64
	Synopsis  string
	Director  string
	Genre     string
	Cast      string
	MainGenre string
	Decade    string
}

// StringList decodes a JSON value that is either a single string, a list of
// strings, or null.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = StringList(many)
		return nil
	}

	var null any
	if err := json.Unmarshal(data, &null); err == nil && null == nil {
		*l = nil
		return nil
	}

	return fmt.Errorf("expected string or list of strings, got %s", string(data))
}

// Flatten explodes every record across the cross product of its genre and
// cast lists. A record with genres [A B] and cast [X Y] yields four rows.
// Empty lists still produce rows with an empty value so no record is lost.
func Flatten(records []Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		mainGenre := ""
		if len(record.Genre) > 0 {
			mainGenre = record.Genre[0]
		}
		decade := DecadeLabel(record.Year)

		for _, genre := range orEmpty(record.Genre) {
			for _, member := range orEmpty(record.Cast) {
				rows = append(rows, Row{
					Title:     record.Title,
					Year:      record.Year,
					Rating:    record.Rating,
					Synopsis:  record.Synopsis,
					Director:  record.Director,
					Genre:     genre,
					Cast:      member,
					MainGenre: mainGenre,
					Decade:    decade,
				})
			}
		}
	}
	return rows
}

// DecadeLabel buckets a release year into its lower decade boundary,
// e.g. 1994 becomes "1990s".
func DecadeLabel(year int64) string {
	return strconv.FormatInt(year/10*10, 10) + "s"
}

func orEmpty(values StringList) StringList {
	if len(values) == 0 {
		return StringList{""}
	}
	return values
}
