// Package handler provides the Handler interface and the pieces shared by
// every sink.
//
// A Handler is a sink: it owns a minimum level, a formatter and a
// destination. Handle filters the entry against the sink's own level
// before formatting, so one entry fanned out to several sinks can land in
// some and be skipped by others. All handlers are synchronous; an entry
// is fully written (or rejected) when Handle returns, which lets callers
// recycle it immediately.
//
// Built-in pieces:
//
//   - consolehandler writes to any io.Writer (default: stdout).
//   - filehandler writes to a size-rotated file.
//   - MultiHandler fans out a single entry to multiple child handlers
//     and keeps going when one of them fails.
//   - SlogHandler adapts a Handler to log/slog.Handler, so code written
//     against the standard library logs into the same sinks.
//
// Handlers count processed, filtered and failed entries via the Stats
// type, which can be queried at runtime.
package handler
