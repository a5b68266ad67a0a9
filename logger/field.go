package logger

import (
	"time"

	"github.com/philipp01105/apptemplate/core"
)

// ErrorKey is the field key used by Err and by failed timings.
const ErrorKey = "error"

// String returns a string field.
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Int returns an integer field.
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 returns an integer field, used for counters such as sink totals.
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 returns a float field. Timings store seconds this way.
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

func Bool(key string, val bool) core.Field {
	f := core.Field{Key: key, Type: core.BoolType}
	if val {
		f.Int64 = 1
	}
	return f
}

// Time returns a field rendered with the sink's timestamp layout in JSON
// and as RFC 3339 in text.
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration returns a field written as seconds in JSON and as
// time.Duration.String in text.
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err returns the error field. A nil error gives an empty message.
func Err(err error) core.Field {
	f := core.Field{Key: ErrorKey, Type: core.ErrorType}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Any returns a field holding an arbitrary value, such as a slice of tags.
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Type: core.AnyType, Any: val}
}
