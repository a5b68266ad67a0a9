package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/apptemplate/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes. The returned slice is owned
	// by the caller.
	Format(entry *core.Entry) ([]byte, error)
}

// DefaultTimestampFormat renders local time with millisecond precision.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

func (c Config) withDefaults() Config {
	if c.TimestampFormat == "" {
		c.TimestampFormat = DefaultTimestampFormat
	}
	return c
}

// levelLabels pads level names to a fixed width so messages line up.
var levelLabels = [...]string{
	core.DebugLevel:    "[DEBUG   ] ",
	core.InfoLevel:     "[INFO    ] ",
	core.WarnLevel:     "[WARNING ] ",
	core.ErrorLevel:    "[ERROR   ] ",
	core.CriticalLevel: "[CRITICAL] ",
}

func levelLabel(l core.Level) string {
	if l >= 0 && int(l) < len(levelLabels) {
		return levelLabels[l]
	}
	return "[UNKNOWN ] "
}

// writeFields appends " key=value" for every field.
func writeFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// detach copies the buffer contents so the buffer can go back to the pool.
func detach(buf *bytes.Buffer) []byte {
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
