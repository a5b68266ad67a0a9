package core

import "strings"

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures that need immediate attention
	CriticalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Levels returns every defined level, lowest severity first.
func Levels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel}
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively; WARN and FATAL are accepted as aliases of WARNING
// and CRITICAL. The boolean reports whether s named a known level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL", "FATAL":
		return CriticalLevel, true
	default:
		return InfoLevel, false
	}
}
