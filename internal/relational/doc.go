// Package relational derives the five-table relational model (movies,
// directors, genres, and the two junction tables) from a flattened dataset,
// assigning deterministic surrogate ids.
package relational
