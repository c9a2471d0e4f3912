// Package dataset reads the raw movie JSON document and flattens it into
// tabular rows.
//
// Each movie is exploded across the cross product of its genre and cast
// lists. The explosion is a deliberate simplification: genres and cast are
// independent attributes, not paired, so a movie with two genres and two
// cast members contributes four rows. Flattening also derives the main genre
// (first list element) and the decade bucket from the release year.
package dataset
