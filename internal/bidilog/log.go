// Package bidilog is the shared logger for cmd/bidi: a thin set of leveled
// helpers over the standard library's log.Logger, the way the teacher
// codebase's own CLI logs (log.Printf/log.Fatalf), not a structured logging
// dependency.
package bidilog

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects the package logger, for tests and for the visualizer
// server to capture its own request log separately from stderr.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	std.Printf("INFO: "+format, args...)
}

// Warn logs a recoverable problem worth surfacing but not fatal to the
// current command.
func Warn(format string, args ...any) {
	std.Printf("WARN: "+format, args...)
}

// Error logs a failure the caller is about to report as a non-zero exit.
func Error(format string, args ...any) {
	std.Printf("ERROR: "+format, args...)
}

// Fatal logs the message and exits with status 1, matching the teacher's
// log.Fatalf call sites in cmd/sentra/main.go.
func Fatal(format string, args ...any) {
	std.Printf("ERROR: "+format, args...)
	os.Exit(1)
}
