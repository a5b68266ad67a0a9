package formatter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/apptemplate/core"
)

// JSON object keys written for every entry.
const (
	TimeKey    = "time"
	LevelKey   = "level"
	LoggerKey  = "logger"
	MessageKey = "message"
	CallerKey  = "caller"
)

// ReservedKeyPrefix is put in front of an extra field whose key clashes
// with one of the entry keys above, so "level" is written as
// "fields.level".
const ReservedKeyPrefix = "fields."

func fieldKey(key string) string {
	switch key {
	case TimeKey, LevelKey, LoggerKey, MessageKey, CallerKey:
		return ReservedKeyPrefix + key
	}
	return key
}

// JSONFormatter formats log entries as one JSON object per line
type JSONFormatter struct {
	Config
	enc zapcore.Encoder
}

// NewJSONFormatter creates a new JSON formatter. Timestamps default to
// RFC 3339 with nanoseconds; durations are written as seconds.
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        TimeKey,
		LevelKey:       LevelKey,
		NameKey:        LoggerKey,
		MessageKey:     MessageKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.TimeEncoderOfLayout(cfg.TimestampFormat),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if cfg.IncludeCaller {
		encCfg.CallerKey = CallerKey
	}

	return &JSONFormatter{
		Config: cfg,
		enc:    zapcore.NewJSONEncoder(encCfg),
	}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	ze := zapcore.Entry{
		Level:      zapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Logger,
		Message:    entry.Message,
	}
	if f.IncludeCaller && entry.Caller.Defined {
		ze.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     entry.Caller.File,
			Line:     entry.Caller.Line,
			Function: entry.Caller.Function,
		}
	}

	fields := make([]zapcore.Field, len(entry.Fields))
	for i, field := range entry.Fields {
		field.Key = fieldKey(field.Key)
		fields[i] = zapField(field)
	}

	buf, err := f.enc.EncodeEntry(ze, fields)
	if err != nil {
		return nil, err
	}
	defer buf.Free()

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// zapLevel maps onto zap's scale; CRITICAL has no zap equivalent and
// borrows DPanic, which encodeLevel turns back into "CRITICAL".
func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString(core.DebugLevel.String())
	case zapcore.InfoLevel:
		enc.AppendString(core.InfoLevel.String())
	case zapcore.WarnLevel:
		enc.AppendString(core.WarnLevel.String())
	case zapcore.ErrorLevel:
		enc.AppendString(core.ErrorLevel.String())
	default:
		enc.AppendString(core.CriticalLevel.String())
	}
}

// zapField converts a core.Field into the equivalent zap field.
func zapField(f core.Field) zapcore.Field {
	switch f.Type {
	case core.StringType, core.ErrorType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType:
		return zap.Time(f.Key, time.Unix(0, f.Int64))
	case core.DurationType:
		return zap.Duration(f.Key, time.Duration(f.Int64))
	default:
		return zap.Any(f.Key, f.Any)
	}
}
