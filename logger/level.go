package logger

import (
	"github.com/philipp01105/apptemplate/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel for
// unknown names. The boolean reports whether s was recognized.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
