package handler

import (
	"github.com/philipp01105/apptemplate/core"
)

// LevelFilter raises the minimum level of a handler it does not own.
// Several loggers can share one sink while each applies its own
// threshold. The wrapped handler's level still applies, so a filter can
// only narrow what the sink writes.
type LevelFilter struct {
	handler Handler
	level   core.Level
}

// NewLevelFilter wraps h so entries below level are dropped.
func NewLevelFilter(h Handler, level core.Level) *LevelFilter {
	return &LevelFilter{handler: h, level: level}
}

// Name returns the wrapped handler's name.
func (f *LevelFilter) Name() string { return f.handler.Name() }

// Level returns the filter's minimum level.
func (f *LevelFilter) Level() core.Level { return f.level }

// Unwrap returns the wrapped handler.
func (f *LevelFilter) Unwrap() Handler { return f.handler }

func (f *LevelFilter) Enabled(level core.Level) bool {
	return level >= f.level && f.handler.Enabled(level)
}

func (f *LevelFilter) Handle(entry *core.Entry) error {
	if entry.Level < f.level {
		return nil
	}
	return f.handler.Handle(entry)
}

// Close is a no-op; the wrapped handler is closed by its owner.
func (f *LevelFilter) Close() error { return nil }
