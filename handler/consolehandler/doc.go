// Package consolehandler provides a handler that writes formatted log
// entries to any io.Writer (default: os.Stdout).
//
// The default formatter colors every line by level when the writer is a
// terminal and falls back to plain text otherwise, so output captured in
// tests or piped to a file stays readable.
package consolehandler
