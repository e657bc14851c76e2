package util

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LevelTrace is below slog.LevelDebug and is used for per-frame detail.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel parses a level name. Names are case insensitive and "warning" is accepted for warn.
func ParseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewLogger returns a logger writing human readable lines to w through a zerolog console writer.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: consoleAttr,
	}))
}

// consoleAttr renames the record's built-in attributes to the field names the console writer
// formats.
func consoleAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}
	switch a.Key {
	case slog.MessageKey:
		a.Key = zerolog.MessageFieldName
	case slog.LevelKey:
		a.Key = zerolog.LevelFieldName
		a.Value = slog.StringValue(levelName(a.Value.Any().(slog.Level)))
	case slog.TimeKey:
		a.Key = zerolog.TimestampFieldName
	}
	return a
}

func levelName(l slog.Level) string {
	switch {
	case l < slog.LevelDebug:
		return zerolog.TraceLevel.String()
	case l < slog.LevelInfo:
		return zerolog.DebugLevel.String()
	case l < slog.LevelWarn:
		return zerolog.InfoLevel.String()
	case l < slog.LevelError:
		return zerolog.WarnLevel.String()
	}
	return zerolog.ErrorLevel.String()
}
