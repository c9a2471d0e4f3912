// Package main hosts the cinelytics CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the ETL pipeline, prints the descriptive
// aggregates, renders the decade chart, and scaffolds configuration. It
// centralizes configuration resolution and flag overrides so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
