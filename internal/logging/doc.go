// Package logging builds the slog loggers used across mason.
//
// Two output formats are supported: "console", a compact single-line format
// for interactive use, and "json" for log files and machine consumption.
// Helpers mirror the slog attribute constructors so call sites stay terse,
// and NewNop supplies a discard logger for tests and optional collaborators.
package logging
