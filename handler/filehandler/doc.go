// Package filehandler provides a handler that writes formatted log entries
// to a file, rotating it by size and keeping a bounded number of backups.
//
// Rotation is delegated to lumberjack: when the next write would push the
// active file past MaxSizeMB, the file is renamed with a timestamp suffix
// (app.log becomes app-2006-01-02T15-04-05.000.log) and a fresh file is
// opened. Backups beyond MaxBackups are removed in the background.
package filehandler
