package demo

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/philipp01105/apptemplate/core"
	"github.com/philipp01105/apptemplate/logger"
)

// LoggerName is the name of the logger the demo writes through.
const LoggerName = "logger_demo"

// DefaultDelay is how long the simulated slow operation takes.
const DefaultDelay = 100 * time.Millisecond

// ErrDemo is the error raised on purpose by the error logging step.
var ErrDemo = errors.New("this is a test error for demonstration")

// Demo runs the logging walkthrough against a registry.
type Demo struct {
	reg   *logger.Registry
	log   *logger.Logger
	delay   time.Duration
	newID   func() string
	started time.Time
}

// Option configures a Demo.
type Option func(*Demo)

// WithDelay sets the duration of the simulated slow operation.
func WithDelay(d time.Duration) Option {
	return func(demo *Demo) {
		if d >= 0 {
			demo.delay = d
		}
	}
}

// WithRequestID replaces the generator of the request id used by the
// context step (default: random UUIDs).
func WithRequestID(fn func() string) Option {
	return func(demo *Demo) {
		if fn != nil {
			demo.newID = fn
		}
	}
}

// New creates a demo that logs through reg.
func New(reg *logger.Registry, opts ...Option) *Demo {
	d := &Demo{
		reg:   reg,
		log:   reg.Get(LoggerName),
		delay:   DefaultDelay,
		newID:   uuid.NewString,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes every step in order. The failure staged by the error step
// is handled inside the step; Run only fails when ctx is cancelled.
func (d *Demo) Run(ctx context.Context) error {
	d.log.Info("Logger Demo Started")

	d.BasicLogging()
	d.StructuredLogging()
	if err := d.PerformanceLogging(ctx); err != nil {
		return err
	}
	if err := d.ErrorLogging(); err != nil {
		return err
	}
	if err := d.ContextLogging(); err != nil {
		return err
	}
	d.SlogLogging()

	summary := append(d.sinkCounts(), logger.Duration("run_time", time.Since(d.started)))
	d.log.Info("Logger Demo Completed", summary...)
	return nil
}

// BasicLogging writes one message at every level.
func (d *Demo) BasicLogging() {
	d.log.Info("=== Basic Logging Demo ===")
	d.log.Debug("Debug message")
	d.log.Info("Info message")
	d.log.Warn("Warning message")
	d.log.Error("Error message")
	d.log.Critical("Critical message")
}

// StructuredLogging attaches fields of every kind to messages.
func (d *Demo) StructuredLogging() {
	d.log.Info("=== Structured Logging Demo ===")
	d.log.Info("Message with extra data", logger.Int("data", 0))
	d.log.Info("Message with typed data",
		logger.Bool("cached", false),
		logger.Time("demo_started", d.started),
		logger.Any("tags", []string{"demo", "structured"}),
	)
}

// PerformanceLogging times a slow operation.
func (d *Demo) PerformanceLogging(ctx context.Context) error {
	d.log.Info("=== Performance Logging Demo ===")

	result, err := logger.Timed(d.log, "slow_operation", func() (string, error) {
		return d.slowOperation(ctx)
	})
	if err != nil {
		return err
	}
	d.log.Infof("Demo operation completed: %s", result)
	return nil
}

func (d *Demo) slowOperation(ctx context.Context) (string, error) {
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return "Operation completed successfully", nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ErrorLogging times an operation that fails and reports the error it
// catches. Any error other than ErrDemo is returned.
func (d *Demo) ErrorLogging() error {
	d.log.Info("=== Error Logging Demo ===")

	err := logger.LogExecutionTime(d.log, "error_operation", func() error {
		return ErrDemo
	})
	if !errors.Is(err, ErrDemo) {
		return err
	}
	d.log.Error("Caught expected error: "+err.Error(), logger.Err(err))
	return nil
}

// ContextLogging logs inside a scope that carries context_data and a
// fresh request id.
func (d *Demo) ContextLogging() error {
	d.log.Info("=== Context Logging Demo ===")

	fields := []core.Field{
		logger.Int("context_data", 0),
		logger.String("request_id", d.newID()),
	}
	return logger.LogContext(d.log, fields, func(l *logger.Logger) error {
		l.Info("Example message with context")
		return nil
	})
}

// SlogLogging logs through the standard library's log/slog API.
func (d *Demo) SlogLogging() {
	d.log.Info("=== log/slog Demo ===")
	d.reg.Slog(LoggerName).Info("Message from log/slog", "api", "log/slog")
}

// sinkCounts reports how many entries each sink has written so far.
func (d *Demo) sinkCounts() []core.Field {
	stats := d.reg.Stats()
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]core.Field, 0, len(names))
	for _, name := range names {
		fields = append(fields, logger.Int64(name+"_entries", int64(stats[name].ProcessedTotal)))
	}
	return fields
}
