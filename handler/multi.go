package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/apptemplate/core"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Name returns "multi".
func (h *MultiHandler) Name() string {
	return "multi"
}

// Handlers returns the child handlers in fan-out order.
func (h *MultiHandler) Handlers() []Handler {
	out := make([]Handler, len(h.handlers))
	copy(out, h.handlers)
	return out
}

// Enabled reports whether any child would write an entry at level.
func (h *MultiHandler) Enabled(level core.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(level) {
			return true
		}
	}
	return false
}

// Handle processes a log entry by sending it to all handlers. A failing
// child does not stop the others; all errors are combined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
