package formatter

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/philipp01105/apptemplate/core"
)

// ConsoleConfig holds configuration for the console formatter
type ConsoleConfig struct {
	Config
	// Writer is the destination whose terminal capabilities decide
	// whether colors are emitted (default: os.Stdout)
	Writer io.Writer
	// ForceColor emits ANSI colors even when Writer is not a terminal
	ForceColor bool
	// NoColor disables colors regardless of the terminal
	NoColor bool
}

// levelColors mirrors the classic colorlog palette.
var levelColors = [...]struct{ fg, bg string }{
	core.DebugLevel:    {fg: "6"},
	core.InfoLevel:     {fg: "2"},
	core.WarnLevel:     {fg: "3"},
	core.ErrorLevel:    {fg: "1"},
	core.CriticalLevel: {fg: "1", bg: "7"},
}

// ConsoleFormatter formats log entries for a terminal, coloring each line
// by level
type ConsoleFormatter struct {
	Config
	styles [len(levelColors)]lipgloss.Style
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg ConsoleConfig) *ConsoleFormatter {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	r := lipgloss.NewRenderer(w)
	switch {
	case cfg.NoColor:
		r.SetColorProfile(termenv.Ascii)
	case cfg.ForceColor:
		r.SetColorProfile(termenv.ANSI)
	}

	f := &ConsoleFormatter{Config: cfg.Config.withDefaults()}
	for lvl, c := range levelColors {
		s := r.NewStyle().
			Foreground(lipgloss.Color(c.fg)).
			TabWidth(lipgloss.NoTabConversion)
		if c.bg != "" {
			s = s.Background(lipgloss.Color(c.bg))
		}
		f.styles[lvl] = s
	}
	return f
}

// Format formats an entry as a colored console line
func (f *ConsoleFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Render line by line: lipgloss pads multi-line blocks to equal width.
	text := buf.String()
	if entry.Level < 0 || int(entry.Level) >= len(f.styles) {
		return []byte(text + "\n"), nil
	}
	style := f.styles[entry.Level]

	var out strings.Builder
	out.Grow(len(text) + 16)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(style.Render(line))
	}
	out.WriteByte('\n')
	return []byte(out.String()), nil
}

// formatToBuffer writes "<time> [LEVEL   ] <logger>: <message> k=v..."
// without the trailing newline.
func (f *ConsoleFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(entry.Level))
	buf.WriteString(entry.Logger)
	buf.WriteString(": ")
	buf.WriteString(entry.Message)
	writeFields(buf, entry.Fields)
}
