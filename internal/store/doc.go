// Package store persists the derived relational tables to a single-file
// SQLite database.
//
// The store owns the only writer connection of a run, guarded by a sibling
// lock file. Exports are transactional and append-only; the database assigns
// entity ids on insert and junction rows are remapped through them, so
// repeated exports keep primary and foreign keys intact while doubling row
// counts.
package store
