// Package logger is the logging API of the application. Most code only
// needs this package.
//
// A Registry owns the sinks and hands out named loggers:
//
//	reg := logger.NewRegistry(config.FromEnv())
//	defer reg.Close()
//
//	log := reg.Get("api")
//	log.Info("ready", logger.Int("port", 8080))
//
// The first Get opens four sinks: a colored console, a rotating text file,
// a rotating JSON file and a rotating file that only receives ERROR and
// CRITICAL. Every logger of the registry shares them, so asking for the
// same name twice never duplicates output.
//
// A Logger is immutable after construction. Child loggers with extra
// fields are created via With:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Fields can also be attached to a block of code instead of a logger.
// LogContext pushes a frame on the registry's ContextStack for the
// duration of a function, and every entry logged through the registry
// meanwhile carries the frame's fields:
//
//	err := logger.LogContext(log, []core.Field{logger.String("job", "sync")}, func(l *logger.Logger) error {
//	    return runJob(l)
//	})
//
// LogExecutionTime and Timed log how long a function took and whether it
// failed, returning its error untouched.
//
// For quick scripts the package-level Info, Error and friends write
// through the "default" logger of a registry installed with SetDefault.
// Without one they do nothing.
package logger
