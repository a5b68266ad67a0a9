// Package formatter defines how log entries are serialized into bytes.
//
// Every sink owns exactly one Formatter. Three are built in:
//
//   - TextFormatter renders the plain line written to the standard and
//     error-only files:
//     "2026-10-16 09:30:00.123 [INFO    ] main:main.go:42 - started port=8080"
//   - ConsoleFormatter renders the same information for a terminal and
//     colors each line by level using lipgloss. Colors are dropped
//     automatically when the destination is not a terminal.
//   - JSONFormatter renders one JSON object per entry through zapcore's
//     JSON encoder, with every field as a top-level key.
//
// TextFormatter and ConsoleFormatter use a pooled bytes.Buffer
// internally. Buffers larger than 64 KiB are not returned to the pool to
// prevent a single large log line from permanently inflating memory usage.
package formatter
