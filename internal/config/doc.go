// Package config loads, normalizes, and validates cinelytics configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates every knob the CLI needs: the
// dataset input path, the database output path, aggregate cutoffs, chart
// rendering, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
