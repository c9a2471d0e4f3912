package relational

// Movie is one deduplicated movie with its surrogate id.
type Movie struct {
	ID       int64
	Title    string
	Year     int64
	Rating   float64
	Synopsis string
}

// Director is one deduplicated director name with its surrogate id.
type Director struct {
	ID   int64
	Name string
}

// Genre is one deduplicated genre name with its surrogate id.
type Genre struct {
	ID   int64
	Name string
}

// MovieDirector links a movie to its director by surrogate ids.
type MovieDirector struct {
	MovieID    int64
	DirectorID int64
}

// MovieGenre links a movie to one of its genres by surrogate ids.
type MovieGenre struct {
	MovieID int64
	GenreID int64
}

// Tables holds the five derived relational tables for one run.
type Tables struct {
	Movies         []Movie
	Directors      []Director
	Genres         []Genre
	MovieDirectors []MovieDirector
	MovieGenres    []MovieGenre
}
