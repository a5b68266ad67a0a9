package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/apptemplate/core"
)

// SlogLevelCritical is the slog level mapped to core.CriticalLevel.
const SlogLevelCritical = slog.LevelError + 4

// SlogOptions configures a SlogHandler.
type SlogOptions struct {
	// Name is written as the logger name of every entry
	Name string
	// Level is the minimum level passed through to the wrapped handler
	Level core.Level
	// Extra, when set, appends fields to every entry after the handler's
	// own attributes and before the record's attributes
	Extra func(dst []core.Field) []core.Field
}

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// This lets code written against log/slog share the application's sinks.
type SlogHandler struct {
	handler Handler
	opts    SlogOptions
	attrs   []core.Field
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, opts SlogOptions) *SlogHandler {
	return &SlogHandler{
		handler: h,
		opts:    opts,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return l >= s.opts.Level && s.handler.Enabled(l)
}

// Handle processes a slog.Record by converting it to a core.Entry and passing it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Logger = s.opts.Name
	entry.Message = record.Message

	if record.PC != 0 {
		entry.Caller = callerFromPC(record.PC)
	}

	// Add pre-configured attrs
	if len(s.attrs) > 0 {
		entry.Fields = append(entry.Fields, s.attrs...)
	}

	if s.opts.Extra != nil {
		entry.Fields = s.opts.Extra(entry.Fields)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendSlogAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		opts:    s.opts,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]core.Field, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		opts:    s.opts,
		attrs:   newAttrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= SlogLevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendSlogAttr converts a slog.Attr to core.Fields, prepending the
// group prefix if present. Group attrs are flattened into dotted keys.
func appendSlogAttr(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + a.Key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return append(dst, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: int64(a.Value.Uint64())})
	case slog.KindFloat64:
		return append(dst, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return append(dst, core.Field{Key: key, Type: core.BoolType, Int64: val})
	case slog.KindTime:
		return append(dst, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(dst, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			dst = appendSlogAttr(dst, key, ga)
		}
		return dst
	default:
		if err, ok := a.Value.Any().(error); ok {
			return append(dst, core.Field{Key: key, Type: core.ErrorType, Str: err.Error()})
		}
		return append(dst, core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()})
	}
}
