package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"cinelytics/internal/relational"
)

// Store manages the analytics database backed by SQLite. One Store owns the
// single writer connection of a run; a sibling lock file keeps a second
// exporter from opening the same database.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open connects to the database at path, acquires the writer lock, and
// applies the schema when the database is new.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	held, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire database lock: %w", err)
	}
	if !held {
		return nil, fmt.Errorf("database %s is locked by another export", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close releases the writer lock and closes the database connection. It is
// safe to call on a nil store and on every exit path.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	var unlockErr error
	if s.lock != nil {
		unlockErr = s.lock.Unlock()
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	return unlockErr
}

// DB exposes the underlying connection for read-side queries.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.db
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// ExportCounts reports how many rows one export appended per table.
type ExportCounts struct {
	Movies         int
	Directors      int
	Genres         int
	MovieDirectors int
	MovieGenres    int
}

// Export appends the derived tables to the database in one transaction.
//
// Exports are append-only and deliberately not idempotent: running the same
// dataset twice doubles every table. The database assigns its own entity ids
// on insert; junction rows are remapped through the assigned ids so primary
// and foreign keys hold across repeated exports.
func (s *Store) Export(ctx context.Context, tables *relational.Tables) (*ExportCounts, error) {
	if tables == nil {
		return nil, errors.New("tables are nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	movieIDs, err := insertMovies(ctx, tx, tables.Movies)
	if err != nil {
		return nil, err
	}
	directorIDs, err := insertNamed(ctx, tx, "directors", idsOfDirectors(tables.Directors))
	if err != nil {
		return nil, err
	}
	genreIDs, err := insertNamed(ctx, tx, "genres", idsOfGenres(tables.Genres))
	if err != nil {
		return nil, err
	}

	for _, link := range tables.MovieDirectors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO movie_director (movie_id, director_id) VALUES (?, ?)`,
			movieIDs[link.MovieID], directorIDs[link.DirectorID],
		); err != nil {
			return nil, fmt.Errorf("insert movie_director: %w", err)
		}
	}
	for _, link := range tables.MovieGenres {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO movie_genre (movie_id, genre_id) VALUES (?, ?)`,
			movieIDs[link.MovieID], genreIDs[link.GenreID],
		); err != nil {
			return nil, fmt.Errorf("insert movie_genre: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit export: %w", err)
	}

	return &ExportCounts{
		Movies:         len(tables.Movies),
		Directors:      len(tables.Directors),
		Genres:         len(tables.Genres),
		MovieDirectors: len(tables.MovieDirectors),
		MovieGenres:    len(tables.MovieGenres),
	}, nil
}

func insertMovies(ctx context.Context, tx *sql.Tx, movies []relational.Movie) (map[int64]int64, error) {
	assigned := make(map[int64]int64, len(movies))
	for _, movie := range movies {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO movies (title, year, rating, synopsis) VALUES (?, ?, ?, ?)`,
			movie.Title, movie.Year, movie.Rating, movie.Synopsis,
		)
		if err != nil {
			return nil, fmt.Errorf("insert movie %q: %w", movie.Title, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("movie last insert id: %w", err)
		}
		assigned[movie.ID] = id
	}
	return assigned, nil
}

type namedRow struct {
	id   int64
	name string
}

func idsOfDirectors(directors []relational.Director) []namedRow {
	rows := make([]namedRow, 0, len(directors))
	for _, d := range directors {
		rows = append(rows, namedRow{id: d.ID, name: d.Name})
	}
	return rows
}

func idsOfGenres(genres []relational.Genre) []namedRow {
	rows := make([]namedRow, 0, len(genres))
	for _, g := range genres {
		rows = append(rows, namedRow{id: g.ID, name: g.Name})
	}
	return rows
}

func insertNamed(ctx context.Context, tx *sql.Tx, table string, rows []namedRow) (map[int64]int64, error) {
	assigned := make(map[int64]int64, len(rows))
	for _, row := range rows {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (name) VALUES (?)`, row.name,
		)
		if err != nil {
			return nil, fmt.Errorf("insert into %s: %w", table, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("%s last insert id: %w", table, err)
		}
		assigned[row.id] = id
	}
	return assigned, nil
}

// TableCounts returns the current row count of each schema table, keyed by
// table name.
func (s *Store) TableCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(tableNames))
	for _, name := range tableNames {
		var count int64
		if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+name).Scan(&count); err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = count
	}
	return counts, nil
}
