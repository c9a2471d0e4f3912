package relational

import (
	"errors"

	"cinelytics/internal/dataset"
)

type movieKey struct {
	title    string
	year     int64
	rating   float64
	synopsis string
}

type pair struct {
	left  int64
	right int64
}

// Build derives the five relational tables from a flattened dataset.
//
// Surrogate ids are assigned sequentially from 1 in first-appearance order,
// so a given dataset always produces the same tables. Junction rows carry
// the movie id resolved through the same deduplication pass that built the
// movies table; two distinct movies sharing a title stay distinct.
func Build(rows []dataset.Row) (*Tables, error) {
	if len(rows) == 0 {
		return nil, errors.New("flattened table is empty")
	}

	tables := &Tables{}

	movieIDs := map[movieKey]int64{}
	directorIDs := map[string]int64{}
	genreIDs := map[string]int64{}
	seenMovieDirector := map[pair]bool{}
	seenMovieGenre := map[pair]bool{}

	for _, row := range rows {
		key := movieKey{title: row.Title, year: row.Year, rating: row.Rating, synopsis: row.Synopsis}
		movieID, ok := movieIDs[key]
		if !ok {
			movieID = int64(len(tables.Movies) + 1)
			movieIDs[key] = movieID
			tables.Movies = append(tables.Movies, Movie{
				ID:       movieID,
				Title:    row.Title,
				Year:     row.Year,
				Rating:   row.Rating,
				Synopsis: row.Synopsis,
			})
		}

		directorID, ok := directorIDs[row.Director]
		if !ok {
			directorID = int64(len(tables.Directors) + 1)
			directorIDs[row.Director] = directorID
			tables.Directors = append(tables.Directors, Director{ID: directorID, Name: row.Director})
		}

		genreID, ok := genreIDs[row.Genre]
		if !ok {
			genreID = int64(len(tables.Genres) + 1)
			genreIDs[row.Genre] = genreID
			tables.Genres = append(tables.Genres, Genre{ID: genreID, Name: row.Genre})
		}

		if md := (pair{movieID, directorID}); !seenMovieDirector[md] {
			seenMovieDirector[md] = true
			tables.MovieDirectors = append(tables.MovieDirectors, MovieDirector{MovieID: movieID, DirectorID: directorID})
		}
		if mg := (pair{movieID, genreID}); !seenMovieGenre[mg] {
			seenMovieGenre[mg] = true
			tables.MovieGenres = append(tables.MovieGenres, MovieGenre{MovieID: movieID, GenreID: genreID})
		}
	}

	return tables, nil
}
