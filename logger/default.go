package logger

import (
	"fmt"
	"sync"

	"github.com/philipp01105/apptemplate/core"
)

// DefaultLoggerName is the logger used by the package-level functions.
const DefaultLoggerName = "default"

var (
	defaultRegistry *Registry
	defaultMu       sync.RWMutex
)

// SetDefault installs r as the registry behind the package-level
// functions. Passing nil uninstalls it.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// DefaultRegistry returns the installed registry, or nil.
func DefaultRegistry() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// Default returns the "default" logger of the installed registry. With
// no registry installed it returns nil, which discards everything.
func Default() *Logger {
	r := DefaultRegistry()
	if r == nil {
		return nil
	}
	return r.Get(DefaultLoggerName)
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, fields ...core.Field) {
	Default().log(0, core.DebugLevel, msg, fields)
}

// Info logs an info message using the default logger
func Info(msg string, fields ...core.Field) {
	Default().log(0, core.InfoLevel, msg, fields)
}

// Warn logs a warning message using the default logger
func Warn(msg string, fields ...core.Field) {
	Default().log(0, core.WarnLevel, msg, fields)
}

// Error logs an error message using the default logger
func Error(msg string, fields ...core.Field) {
	Default().log(0, core.ErrorLevel, msg, fields)
}

// Critical logs a critical message using the default logger
func Critical(msg string, fields ...core.Field) {
	Default().log(0, core.CriticalLevel, msg, fields)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	logf(core.DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	logf(core.ErrorLevel, format, args)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	logf(core.CriticalLevel, format, args)
}

func logf(level core.Level, format string, args []interface{}) {
	l := Default()
	if l.Level() > level {
		return
	}
	l.log(1, level, fmt.Sprintf(format, args...), nil)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}
