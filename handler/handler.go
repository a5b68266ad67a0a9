package handler

import (
	"github.com/philipp01105/apptemplate/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Name identifies the sink (for example "console" or "json")
	Name() string

	// Enabled reports whether an entry at level would be written
	Enabled(level core.Level) bool

	// Handle filters, formats and writes a log entry. The entry is not
	// retained after Handle returns.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track Stats.
type StatsProvider interface {
	Stats() Snapshot
}
