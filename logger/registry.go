package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/apptemplate/config"
	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/formatter"
	"github.com/philipp01105/apptemplate/handler"
	"github.com/philipp01105/apptemplate/handler/consolehandler"
	"github.com/philipp01105/apptemplate/handler/filehandler"
)

// Sink names as reported by Handler.Name.
const (
	ConsoleSink   = "console"
	FileSink      = "file"
	JSONSink      = "json"
	ErrorFileSink = "error_file"
)

// DefaultName is used by Get for an empty logger name.
const DefaultName = "app"

// Registry hands out named loggers that share one set of sinks.
//
// The sinks are opened by the first Get: a console sink and, inside the
// configured log directory, a standard file, a JSON file and an
// error-only file. If the directory or a file cannot be created the
// registry keeps only the console and says so once at WARNING.
type Registry struct {
	cfg     *config.Config
	console io.Writer
	now     func() time.Time
	ctx     *ContextStack

	initOnce sync.Once
	sinks    *handler.MultiHandler
	fileErr  error

	mu      sync.Mutex
	loggers map[string]*Logger
	closed  bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithConsoleWriter sets the console sink destination (default: os.Stdout).
func WithConsoleWriter(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w != nil {
			r.console = w
		}
	}
}

// WithClock sets the timestamp source for every logger of the registry.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry creates a registry for cfg. A nil cfg is resolved from the
// environment. No sink is opened until the first Get.
func NewRegistry(cfg *config.Config, opts ...RegistryOption) *Registry {
	if cfg == nil {
		cfg = config.FromEnv()
	}
	r := &Registry{
		cfg:     cfg,
		console: os.Stdout,
		now:     time.Now,
		ctx:     NewContextStack(),
		loggers: make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() *config.Config { return r.cfg }

// Context returns the stack shared by every logger of the registry.
func (r *Registry) Context() *ContextStack { return r.ctx }

// Get returns the logger bound to name, creating it on first use.
// Repeated calls with the same name return the same *Logger.
func (r *Registry) Get(name string) *Logger {
	return r.GetWith(name)
}

// LoggerOption customizes a logger created by GetWith.
type LoggerOption func(*loggerSettings)

type loggerSettings struct {
	level        *core.Level
	consoleLevel *core.Level
	fileLevel    *core.Level
	sinks        map[string]bool
}

// WithLoggerLevel replaces Config.Level for one logger.
func WithLoggerLevel(level core.Level) LoggerOption {
	return func(s *loggerSettings) { s.level = &level }
}

// WithConsoleLevel sets the console threshold for one logger. It can
// only be stricter than Config.ConsoleLevel, which the shared sink keeps.
func WithConsoleLevel(level core.Level) LoggerOption {
	return func(s *loggerSettings) { s.consoleLevel = &level }
}

// WithFileLevel sets the threshold of the standard and JSON file sinks
// for one logger. Like WithConsoleLevel it can only narrow.
func WithFileLevel(level core.Level) LoggerOption {
	return func(s *loggerSettings) { s.fileLevel = &level }
}

// WithSinks limits a logger to the named sinks (ConsoleSink, FileSink,
// JSONSink, ErrorFileSink). Unknown names are ignored.
func WithSinks(names ...string) LoggerOption {
	return func(s *loggerSettings) {
		s.sinks = make(map[string]bool, len(names))
		for _, n := range names {
			s.sinks[n] = true
		}
	}
}

// GetWith is Get with per-logger levels and sink selection. The logger
// still writes through the registry's shared sinks, so no file is opened
// twice. Options only apply when name is first created; later calls
// return the existing logger unchanged.
func (r *Registry) GetWith(name string, opts ...LoggerOption) *Logger {
	if name == "" {
		name = DefaultName
	}
	r.init()

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}

	var settings loggerSettings
	for _, opt := range opts {
		opt(&settings)
	}
	l := r.newLogger(name, settings)
	r.loggers[name] = l
	return l
}

func (r *Registry) newLogger(name string, s loggerSettings) *Logger {
	level := r.cfg.Level
	if s.level != nil {
		level = *s.level
	}

	var h handler.Handler = r.sinks
	if s.sinks != nil || s.consoleLevel != nil || s.fileLevel != nil {
		h = r.selectSinks(s)
	}

	return NewBuilder().
		WithName(name).
		WithHandler(h).
		WithLevel(level).
		WithCaller(true).
		WithContext(r.ctx).
		WithClock(r.now).
		Build()
}

// selectSinks builds a per-logger fan-out over a subset of the shared
// sinks.
func (r *Registry) selectSinks(s loggerSettings) *handler.MultiHandler {
	var picked []handler.Handler
	for _, h := range r.sinks.Handlers() {
		if s.sinks != nil && !s.sinks[h.Name()] {
			continue
		}
		var override *core.Level
		switch h.Name() {
		case ConsoleSink:
			override = s.consoleLevel
		case FileSink, JSONSink:
			override = s.fileLevel
		}
		if override != nil {
			h = handler.NewLevelFilter(h, *override)
		}
		picked = append(picked, h)
	}
	return handler.NewMultiHandler(picked...)
}

// Slog returns a log/slog logger named name whose records go through the
// registry's sinks and carry the live context fields.
func (r *Registry) Slog(name string) *slog.Logger {
	if name == "" {
		name = DefaultName
	}
	r.init()
	return slog.New(handler.NewSlogHandler(r.sinks, handler.SlogOptions{
		Name:  name,
		Level: r.cfg.Level,
		Extra: r.ctx.AppendFields,
	}))
}

// Handlers returns the sinks in the order console, file, json,
// error_file. Only the console is present after a file system failure.
func (r *Registry) Handlers() []handler.Handler {
	r.init()
	return r.sinks.Handlers()
}

// Stats returns the counters of every sink keyed by sink name.
func (r *Registry) Stats() map[string]handler.Snapshot {
	stats := make(map[string]handler.Snapshot)
	for _, h := range r.Handlers() {
		if sp, ok := h.(handler.StatsProvider); ok {
			stats[h.Name()] = sp.Stats()
		}
	}
	return stats
}

// FileError returns the error that disabled the file sinks, or nil.
func (r *Registry) FileError() error {
	r.init()
	return r.fileErr
}

// Close closes every sink. Loggers stay usable but write nothing.
// Closing a registry that never opened its sinks does not open them.
func (r *Registry) Close() error {
	r.initOnce.Do(func() {
		r.sinks = handler.NewMultiHandler()
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true

	var err error
	for _, h := range r.sinks.Handlers() {
		err = multierr.Append(err, h.Close())
	}
	return err
}

func (r *Registry) init() {
	r.initOnce.Do(func() {
		consoleFormat := formatter.NewConsoleFormatter(formatter.ConsoleConfig{
			Config: formatter.Config{TimestampFormat: r.cfg.TimeFormat},
			Writer: r.console,
		})
		console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Name:      ConsoleSink,
			Writer:    r.console,
			Formatter: consoleFormat,
			Level:     r.cfg.ConsoleLevel,
		})

		files, err := r.openFiles()
		if err != nil {
			r.fileErr = err
			r.sinks = handler.NewMultiHandler(console)

			// The notice ignores ConsoleLevel: it is the only sign that
			// nothing reaches the log files.
			notice := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
				Name:      ConsoleSink,
				Writer:    r.console,
				Formatter: consoleFormat,
				Level:     core.WarnLevel,
			})
			NewBuilder().
				WithName("logging").
				WithHandler(notice).
				WithLevel(core.WarnLevel).
				WithClock(r.now).
				Build().
				Warn("File logging disabled, writing to console only",
					String("log_dir", r.cfg.LogDir),
					Err(err),
				)
			return
		}
		r.sinks = handler.NewMultiHandler(append([]handler.Handler{console}, files...)...)
	})
}

// openFiles opens the three file sinks. On failure the sinks opened so
// far are closed again.
func (r *Registry) openFiles() ([]handler.Handler, error) {
	cfg := r.cfg
	fileFormat := formatter.Config{IncludeCaller: true, TimestampFormat: cfg.TimeFormat}

	var standard formatter.Formatter = formatter.NewTextFormatter(fileFormat)
	if cfg.JSONFileFormat() {
		standard = formatter.NewJSONFormatter(fileFormat)
	}

	specs := []filehandler.FileConfig{
		{
			Filename:  cfg.Path(cfg.LogFile),
			Name:      FileSink,
			Formatter: standard,
			Level:     cfg.FileLevel,
		},
		{
			Filename:  cfg.Path(cfg.JSONLogFile),
			Name:      JSONSink,
			Formatter: formatter.NewJSONFormatter(fileFormat),
			Level:     cfg.FileLevel,
		},
		{
			Filename:  cfg.Path(cfg.ErrorLogFile),
			Name:      ErrorFileSink,
			Formatter: formatter.NewTextFormatter(fileFormat),
			Level:     core.ErrorLevel,
		},
	}

	var opened []handler.Handler
	for _, spec := range specs {
		spec.MaxSizeMB = cfg.MaxSizeMB
		spec.MaxBackups = cfg.MaxBackups

		h, err := filehandler.NewFileHandler(spec)
		if err != nil {
			for _, o := range opened {
				err = multierr.Append(err, o.Close())
			}
			return nil, err
		}
		opened = append(opened, h)
	}
	return opened, nil
}
