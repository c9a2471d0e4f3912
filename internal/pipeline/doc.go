// Package pipeline sequences the ETL run: load the dataset, compute
// aggregates, render the chart, derive the relational tables, and export
// them to SQLite.
//
// Error classification lives here too. Component packages return plain
// errors; Run wraps each failure with the sentinel marker of its stage and
// logs it exactly once, so there is a single diagnostic line per failing
// stage followed by propagation to the caller.
package pipeline
