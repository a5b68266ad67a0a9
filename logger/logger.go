package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/handler"
)

// defaultCallerSkip reaches the user's frame from Logger.log:
// runtime.Caller -> GetCaller -> log -> Info -> user.
const defaultCallerSkip = 3

// Logger is an immutable named logger. A nil *Logger discards everything.
type Logger struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	context       *ContextStack
	now           func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	context       *ContextStack
	now           func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: defaultCallerSkip,
		now:        time.Now,
	}
}

// WithName sets the logger name written with every entry
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithContext attaches a context stack whose live frames are added to
// every entry
func (b *Builder) WithContext(s *ContextStack) *Builder {
	b.context = s
	return b
}

// WithClock replaces time.Now as the source of entry timestamps
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		name:          b.name,
		handler:       b.handler,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		context:       b.context,
		now:           b.now,
	}
}

// Name returns the logger name.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Level returns the minimum level the logger passes to its handlers.
func (l *Logger) Level() core.Level {
	if l == nil {
		return core.CriticalLevel + 1
	}
	return l.level
}

// Handlers returns the sinks the logger writes to. A MultiHandler is
// expanded into its children.
func (l *Logger) Handlers() []handler.Handler {
	if l == nil || l.handler == nil {
		return nil
	}
	if m, ok := l.handler.(*handler.MultiHandler); ok {
		return m.Handlers()
	}
	return []handler.Handler{l.handler}
}

// Enabled reports whether an entry at level would reach at least one sink.
func (l *Logger) Enabled(level core.Level) bool {
	if l == nil || l.handler == nil || level < l.level {
		return false
	}
	return l.handler.Enabled(level)
}

// With creates a new Logger with additional fields (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	if l == nil {
		return nil
	}
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	c := *l
	c.fields = newFields
	return &c
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	l.log(0, level, msg, fields)
}

// log builds the entry and hands it to the handler. depth counts the
// frames between the exported method and the user's call site beyond
// the usual one.
func (l *Logger) log(depth int, level core.Level, msg string, fields []core.Field) {
	// Level check first so filtered entries cost nothing
	if l == nil || level < l.level || l.handler == nil {
		return
	}

	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg

	// Logger fields, then live context frames, then call fields. Later
	// keys win when the entry is rendered as a JSON object.
	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if l.context != nil {
		entry.Fields = l.context.AppendFields(entry.Fields)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip + depth)
	}

	// Sink failures are counted by each sink; a log call never fails.
	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(0, core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(0, core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(0, core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(0, core.ErrorLevel, msg, fields)
}

// Critical logs a critical message. Unlike Fatal in other loggers it
// does not exit the process.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.log(0, core.CriticalLevel, msg, fields)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Level() > core.DebugLevel {
		return
	}
	l.log(0, core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Level() > core.InfoLevel {
		return
	}
	l.log(0, core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.Level() > core.WarnLevel {
		return
	}
	l.log(0, core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.Level() > core.ErrorLevel {
		return
	}
	l.log(0, core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if l.Level() > core.CriticalLevel {
		return
	}
	l.log(0, core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}
