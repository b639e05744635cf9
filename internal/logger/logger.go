package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// CommandApplied logs a successfully handled editing command
func (l *Logger) CommandApplied(command string, duration time.Duration) {
	l.Debug("command applied",
		"command", command,
		"duration", duration.Round(time.Microsecond))
}

// CommandNotHandled logs a command the engine declined
func (l *Logger) CommandNotHandled(command, reason string) {
	l.Debug("command not handled",
		"command", command,
		"reason", reason)
}

// CommandRecovered logs an internal fault caught at the command boundary
func (l *Logger) CommandRecovered(command string, fault any) {
	l.Error("command recovered",
		"command", command,
		"fault", fault)
}

// CaretFallback logs a caret restoration that could not be verified
func (l *Logger) CaretFallback(block string, wanted, placed int) {
	l.Debug("caret restored without verification",
		"block", block,
		"wanted_offset", wanted,
		"placed_offset", placed)
}

// MetadataSkipped logs a metadata comment the importer could not parse
func (l *Logger) MetadataSkipped(line int, raw string) {
	l.Debug("metadata comment skipped",
		"line", line,
		"comment", raw)
}

// ExportFallback logs a block the exporter rendered as plain text
func (l *Logger) ExportFallback(block string, fault any) {
	l.Warn("export fell back to plain text",
		"block", block,
		"fault", fault)
}

// AnchorFallback logs a tree mutation whose anchor did not resolve
func (l *Logger) AnchorFallback(operation, anchor string) {
	l.Debug("anchor not resolvable, appended at document end",
		"operation", operation,
		"anchor", anchor)
}
