// Package stats computes the descriptive aggregates of a flattened movie
// table: mean rating per decade and the most frequent directors and cast
// members.
package stats
