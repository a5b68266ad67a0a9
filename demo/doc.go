// Package demo walks through the logging features of the application:
// levels, structured fields, execution timing, error reporting, scoped
// context and the log/slog bridge. It is what the --demo flag runs.
package demo
