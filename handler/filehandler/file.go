package filehandler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/formatter"
	"github.com/philipp01105/apptemplate/handler"
)

// Rotation defaults used when FileConfig leaves them unset.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 5
)

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
var ErrNoFilename = errors.New("filehandler: filename is required")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file; parent directories are created
	Filename string
	// Name identifies the handler (default: "file")
	Name string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the minimum level written (default: DebugLevel)
	Level core.Level
	// MaxSizeMB is the size in megabytes at which the file rotates (default: 10)
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep (default: 5)
	MaxBackups int
	// MaxAgeDays removes backups older than this many days (0 = keep by count only)
	MaxAgeDays int
	// Compress gzips rotated backups
	Compress bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Name == "" {
		cfg.Name = "file"
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = DefaultMaxSizeMB
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}
}

// FileHandler writes entries at or above its level to a rotating file.
type FileHandler struct {
	name      string
	filename  string
	formatter formatter.Formatter
	level     core.Level
	out       *lumberjack.Logger
	stats     *handler.Stats
	mu        sync.Mutex
	closed    bool
}

// NewFileHandler creates a new file handler.
// The parent directory is created and the file opened once up front so
// that an unwritable location is reported here rather than on first write.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	applyFileDefaults(&cfg)

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %q: %w", dir, err)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", cfg.Filename, err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close log file %q: %w", cfg.Filename, err)
	}

	return &FileHandler{
		name:      cfg.Name,
		filename:  cfg.Filename,
		formatter: cfg.Formatter,
		level:     cfg.Level,
		stats:     handler.NewStats(),
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		},
	}, nil
}

// Name returns the handler name.
func (h *FileHandler) Name() string { return h.name }

// Filename returns the path of the active log file.
func (h *FileHandler) Filename() string { return h.filename }

// Enabled reports whether entries at level are written.
func (h *FileHandler) Enabled(level core.Level) bool {
	return level >= h.level
}

// Handle formats the entry and appends it to the file, rotating first if
// the entry would overflow MaxSizeMB. Writing after Close is a no-op.
func (h *FileHandler) Handle(entry *core.Entry) error {
	if !h.Enabled(entry.Level) {
		h.stats.IncrementFiltered()
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	_, err = h.out.Write(data)
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed()
		return fmt.Errorf("write %s: %w", h.filename, err)
	}
	h.stats.IncrementProcessed(entry.Level)
	return nil
}

// Rotate closes the active file, renames it to a timestamped backup and
// opens a new one.
func (h *FileHandler) Rotate() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	return h.out.Rotate()
}

// Close flushes and closes the underlying file. It is safe to call more
// than once.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	return h.out.Close()
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
