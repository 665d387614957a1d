// Package log provides the leveled logger used by huffpack.
//
// Log messages are intended for the person running the command,
// not for machines: they are printed as a single line each,
// with attributes appended as key=value pairs.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Level specifies the level of logging.
type Level = slog.Level

// Supported log levels.
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// Logger is a leveled logger.
type Logger struct{ *slog.Logger }

// Options customizes a Logger.
type Options struct {
	// Minimum level of messages to log.
	// The zero value is Info.
	Level Level

	// Color highlights levels and messages with ANSI escape codes.
	// This should be set only when writing to a terminal.
	Color bool
}

// New builds a logger that writes to the given writer.
// opts may be nil.
func New(w io.Writer, opts *Options) *Logger {
	if opts == nil {
		opts = &Options{}
	}
	h := &handler{
		w:     w,
		level: opts.Level,
		color: opts.Color,
		mu:    new(sync.Mutex),
	}
	return &Logger{slog.New(h)}
}

// WithName builds a new logger with the provided name.
// Attributes logged with the returned logger are prefixed with the name.
// The returned logger is safe to use concurrently with this logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{l.WithGroup(name)}
}

// With builds a new logger that includes the given attributes in every
// message.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}
