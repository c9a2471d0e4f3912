// Package logging assembles the structured slog loggers used across
// cinelytics.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes standard field keys so pipeline code tags log lines
// consistently. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
