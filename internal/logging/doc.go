// Package logging builds slog loggers with console and JSON output formats
// and defines the standardized attribute keys used across the codebase.
package logging
