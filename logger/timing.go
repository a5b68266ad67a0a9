package logger

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/philipp01105/apptemplate/core"
)

// Status values written in the status field by LogExecutionTime and Timed.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusPanic   = "panic"
)

// LogExecutionTime runs fn and logs how long it took under the given name.
//
// Success is logged at INFO as "<name> completed in 0.1234s"; an error at
// ERROR as "<name> failed after 0.1234s: <err>". Both carry the fields
// function, execution_time (seconds), elapsed and status, and failures
// add error. fn's error is returned as is. A panic is logged with
// status=panic and the goroutine stack, then re-raised with the original
// value.
//
// A nil l falls back to Default().
func LogExecutionTime(l *Logger, name string, fn func() error) error {
	_, err := timed(l, name, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// Timed is LogExecutionTime for functions that also return a value.
func Timed[T any](l *Logger, name string, fn func() (T, error)) (T, error) {
	return timed(l, name, fn)
}

// timed must be called directly from an exported wrapper so the caller
// skip resolves to the wrapper's caller.
func timed[T any](l *Logger, name string, fn func() (T, error)) (result T, err error) {
	if l == nil {
		l = Default()
	}
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			elapsed := time.Since(start)
			fields := timingFields(name, elapsed, StatusPanic, fmt.Sprint(p))
			fields = append(fields, String("stack", string(debug.Stack())))
			l.log(1, core.ErrorLevel,
				fmt.Sprintf("%s panicked after %.4fs: %v", name, elapsed.Seconds(), p),
				fields)
			panic(p)
		}
	}()

	result, err = fn()
	elapsed := time.Since(start)

	if err != nil {
		l.log(1, core.ErrorLevel,
			fmt.Sprintf("%s failed after %.4fs: %v", name, elapsed.Seconds(), err),
			timingFields(name, elapsed, StatusError, err.Error()))
		return result, err
	}

	l.log(1, core.InfoLevel,
		fmt.Sprintf("%s completed in %.4fs", name, elapsed.Seconds()),
		timingFields(name, elapsed, StatusSuccess, ""))
	return result, nil
}

func timingFields(name string, elapsed time.Duration, status, errMsg string) []core.Field {
	fields := []core.Field{
		String("function", name),
		Float64("execution_time", elapsed.Seconds()),
		Duration("elapsed", elapsed),
		String("status", status),
	}
	if errMsg != "" {
		fields = append(fields, core.Field{Key: ErrorKey, Type: core.ErrorType, Str: errMsg})
	}
	return fields
}
