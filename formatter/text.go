package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/apptemplate/core"
)

// TextFormatter formats log entries as human-readable lines for log files
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg.withDefaults()}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	return detach(buf), nil
}

// formatToBuffer writes
// "<time> [LEVEL   ] <logger>[:<file>:<line>] - <message> k=v...\n".
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(entry.Level))
	buf.WriteString(entry.Logger)

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte(':')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
	}

	buf.WriteString(" - ")
	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)
	buf.WriteByte('\n')
}
