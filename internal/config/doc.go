// Package config loads, normalizes, and validates voxpick configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: catalog locations, curation thresholds and blacklists,
// prompt generation endpoints, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, deduplicated blacklists, and clear validation errors.
package config
