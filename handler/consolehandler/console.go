package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/formatter"
	"github.com/philipp01105/apptemplate/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Name identifies the handler (default: "console")
	Name string
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: ConsoleFormatter bound to Writer)
	Formatter formatter.Formatter
	// Level is the minimum level written (default: DebugLevel)
	Level core.Level
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Name == "" {
		cfg.Name = "console"
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewConsoleFormatter(formatter.ConsoleConfig{Writer: cfg.Writer})
	}
}

// ConsoleHandler writes entries at or above its level to a writer.
// Writes are serialized so concurrent callers never interleave lines.
type ConsoleHandler struct {
	name      string
	writer    io.Writer
	formatter formatter.Formatter
	level     core.Level
	stats     *handler.Stats
	mu        sync.Mutex
	closed    bool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	return &ConsoleHandler{
		name:      cfg.Name,
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		level:     cfg.Level,
		stats:     handler.NewStats(),
	}
}

// Name returns the handler name.
func (h *ConsoleHandler) Name() string { return h.name }

// Enabled reports whether entries at level are written.
func (h *ConsoleHandler) Enabled(level core.Level) bool {
	return level >= h.level
}

// Handle formats the entry and writes it. Entries below the handler level
// are counted as filtered and dropped. Writing after Close is a no-op.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.Enabled(entry.Level) {
		h.stats.IncrementFiltered()
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	_, err = h.writer.Write(data)
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Close stops further writes. The writer itself is left open since it is
// usually a standard stream owned by the process.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
