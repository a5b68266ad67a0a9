// Package config resolves the logging configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. Environment values that do not parse are ignored
// and the previous value is kept, so a typo in LOG_LEVEL never stops the
// application from starting. A YAML file the user named explicitly is
// different: reading or parsing errors are returned to the caller.
//
// Recognized environment variables:
//
//	LOG_LEVEL          minimum level of every logger (default INFO)
//	FILE_LOG_LEVEL     minimum level of the standard and JSON files (default DEBUG)
//	CONSOLE_LOG_LEVEL  minimum level of the console (default DEBUG)
//	LOG_DIR            directory holding the log files (default logs)
//	ENVIRONMENT        "production" switches the standard file to JSON
//	USE_JSON_FORMAT    boolean, switches the standard file to JSON
//	LOG_MAX_SIZE_MB    rotation size per file in megabytes (default 10)
//	LOG_MAX_BACKUPS    rotated files kept per sink (default 5)
package config
