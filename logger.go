package dynbitset

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynbitset-specific context.
//
// Only the text and stream boundaries (Parse, Read, Scan) log. Bit
// operations never do.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

var noopLogger = NoopLogger()

// WithBlockBits adds the block width field to the logger.
func (l *Logger) WithBlockBits(w int) *Logger {
	return &Logger{
		Logger: l.Logger.With("block_bits", w),
	}
}

// LogParse logs a string parse.
func (l *Logger) LogParse(length int, err error) {
	if err != nil {
		l.Warn("parse failed",
			"length", length,
			"error", err,
		)
		return
	}
	l.Debug("parse completed",
		"bits", length,
	)
}

// LogRead logs a stream read. stop is the rune that ended the read, or
// zero at end of input.
func (l *Logger) LogRead(bits int, stop rune, err error) {
	switch {
	case err != nil:
		l.Warn("read failed",
			"bits", bits,
			"error", err,
		)
	case stop != 0:
		l.Debug("read stopped at delimiter",
			"bits", bits,
			"stop", string(stop),
		)
	default:
		l.Debug("read completed",
			"bits", bits,
		)
	}
}
