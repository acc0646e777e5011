package slidemacro

import (
	"fmt"
	"io"
	"log/slog"
)

// Diagnostic severity levels passed to a LogFunc.
const (
	LevelWarning = "warning"
	LevelNotice  = "notice"
)

// LogFunc is the diagnostic sink macros report through. Macros call it for
// recoverable problems (unknown language, missing image) and informational
// events (embedded image), then continue processing. Implementations must be
// safe for concurrent use if slides are processed in parallel.
type LogFunc func(message, level string)

// NopLog discards all messages. It is the default sink.
func NopLog(message, level string) {}

// WriterLog returns a LogFunc that writes "level: message" lines to w.
// Write errors are ignored: sink failures are not handled by the core.
func WriterLog(w io.Writer) LogFunc {
	return func(message, level string) {
		fmt.Fprintf(w, "%s: %s\n", level, message)
	}
}

// SlogLog returns a LogFunc that forwards messages to a slog.Logger,
// mapping LevelWarning to Warn and everything else to Info.
func SlogLog(l *slog.Logger) LogFunc {
	return func(message, level string) {
		switch level {
		case LevelWarning:
			l.Warn(message)
		default:
			l.Info(message)
		}
	}
}
