// Package logging wraps log/slog with the construction and attribute helpers
// the rest of the repository uses.
//
// Loggers are built from config (console or JSON format, optional mirror into
// the configured log directory) and carry standardized field names so batch
// runs can be correlated across the main log, report headers, and diagnostics.
package logging
